// Package version extracts human-readable versions from tool output and
// checks them against semver constraints.
package version

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// maxFallbackLen is how much of an unrecognised version line is kept.
const maxFallbackLen = 50

// ErrNotSemver is returned when a detected version cannot be compared.
var ErrNotSemver = errors.New("version is not semver")

// Extract returns the version found in a line of --version output, such as
// "v20.10.8" from "docker version 20.10.8". When no token looks like a
// version the line itself is returned, shortened to 50 characters.
func Extract(line string) string {
	for _, word := range strings.Fields(line) {
		clean := strings.TrimFunc(word, notVersionChar)
		if clean != "" && isDigit(rune(clean[0])) && strings.Contains(clean, ".") {
			return "v" + clean
		}
	}

	runes := []rune(line)
	if len(runes) > maxFallbackLen {
		return string(runes[:maxFallbackLen]) + "..."
	}
	return line
}

func notVersionChar(r rune) bool {
	return !isDigit(r) && r != '.'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// ParseConstraint parses a semver constraint such as ">=1.21" or "^18".
func ParseConstraint(s string) (*semver.Constraints, error) {
	c, err := semver.NewConstraint(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("invalid version constraint %s: %w", s, err)
	}
	return c, nil
}

// Satisfies reports whether a version produced by Extract meets the constraint.
func Satisfies(detected string, c *semver.Constraints) (bool, error) {
	v, err := semver.NewVersion(detected)
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrNotSemver, detected)
	}
	return c.Check(v), nil
}
