package cmdcheck

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/vertti/eden/pkg/version"
)

// VersionFlags are tried in order until one yields output.
var VersionFlags = []string{"--version", "-version", "-V", "version"}

// lenientFlag is accepted even on a non-zero exit: some tools print their
// version for -V to stderr and exit 1. No other flag gets this treatment.
const lenientFlag = "-V"

// DetectVersion probes the binary with each of VersionFlags and returns the
// version from the first one that produces a usable line.
func (c *Check) DetectVersion(ctx context.Context) (string, bool) {
	for _, flag := range VersionFlags {
		if v, ok := c.tryVersionFlag(ctx, flag); ok {
			return v, true
		}
	}
	return "", false
}

func (c *Check) tryVersionFlag(ctx context.Context, flag string) (string, bool) {
	name := c.Spec.Name()
	log := c.logger().With("binary", name, "flag", flag)

	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	stdout, stderr, exitCode, err := c.Runner.RunCommandContext(ctx, name, flag)
	if err != nil {
		log.Debug("version probe failed", "err", err)
		return "", false
	}
	if exitCode != 0 && flag != lenientFlag {
		log.Debug("version probe exited non-zero", "exit", exitCode)
		return "", false
	}
	if !utf8.ValidString(stdout) || !utf8.ValidString(stderr) {
		log.Debug("version probe output is not UTF-8")
		return "", false
	}

	line, ok := firstNonBlankLine(stdout, stderr)
	if !ok {
		log.Debug("version probe produced no output", "exit", exitCode)
		return "", false
	}

	v := version.Extract(line)
	log.Debug("version detected", "exit", exitCode, "version", v)
	return v, true
}

// firstNonBlankLine returns the first line with non-whitespace content,
// searching each output in order.
func firstNonBlankLine(outputs ...string) (string, bool) {
	for _, out := range outputs {
		for _, line := range strings.Split(out, "\n") {
			line = strings.TrimSuffix(line, "\r")
			if strings.TrimSpace(line) != "" {
				return line, true
			}
		}
	}
	return "", false
}
