package cmdcheck

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vertti/eden/pkg/check"
	"github.com/vertti/eden/pkg/config"
	"github.com/vertti/eden/pkg/version"
)

// DefaultTimeout is the default limit for a single version probe.
const DefaultTimeout = 30 * time.Second

const (
	notFoundMessage = "not found in PATH"
	unknownVersion  = "unknown version"
)

// Check verifies that a binary is on the search path and reports its version.
type Check struct {
	Spec           config.BinaryCheck // binary to look for
	Timeout        time.Duration      // per version probe (default: 30s)
	StrictVersions bool               // fail when Spec's version constraint is not met
	Runner         CmdRunner          // injected for testing
	Logger         *slog.Logger
}

// Run executes the binary check.
func (c *Check) Run(ctx context.Context) check.Result {
	name := c.Spec.Name()

	path, err := c.Runner.LookPath(name)
	if err != nil {
		c.logger().Debug("binary lookup failed", "binary", name, "err", err)
		return check.Fail(check.TypeBinary, name, notFoundMessage)
	}

	detected, found := c.DetectVersion(ctx)
	shown := detected
	if !found {
		shown = unknownVersion
	}
	message := fmt.Sprintf("%s (%s)", shown, path)

	if constraint, ok := c.Spec.Version(); ok && c.StrictVersions {
		return c.enforce(name, message, detected, found, constraint)
	}
	return check.Pass(check.TypeBinary, name, message)
}

func (c *Check) enforce(name, message, detected string, found bool, constraint string) check.Result {
	cons, err := version.ParseConstraint(constraint)
	if err != nil {
		return check.Fail(check.TypeBinary, name, err.Error())
	}
	if !found {
		return check.Failf(check.TypeBinary, name, "%s cannot verify %s", message, constraint)
	}

	ok, err := version.Satisfies(detected, cons)
	if err != nil {
		c.logger().Debug("version not comparable", "binary", name, "err", err)
		return check.Failf(check.TypeBinary, name, "%s cannot verify %s", message, constraint)
	}
	if !ok {
		return check.Failf(check.TypeBinary, name, "%s does not satisfy %s", message, constraint)
	}
	return check.Pass(check.TypeBinary, name, message)
}

func (c *Check) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return DefaultTimeout
}

func (c *Check) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
