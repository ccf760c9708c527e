package envcheck

import (
	"context"
	"strings"

	"github.com/vertti/eden/pkg/check"
)

// maxDisplayLen is the longest value shown masked; longer values are truncated.
const maxDisplayLen = 20

// Check verifies that an environment variable is set.
type Check struct {
	Name   string    // env var name
	Getter EnvGetter // injected for testing
}

// Run executes the environment variable check.
func (c *Check) Run(_ context.Context) check.Result {
	value, exists := c.Getter.LookupEnv(c.Name)
	if !exists {
		return check.Fail(check.TypeEnv, c.Name, "not set")
	}
	return check.Passf(check.TypeEnv, c.Name, "set (%s)", DisplayValue(value))
}

// DisplayValue redacts a value for console output. Values longer than 20
// characters are truncated, shorter ones are masked.
func DisplayValue(value string) string {
	runes := []rune(value)
	switch {
	case len(runes) > maxDisplayLen:
		return string(runes[:maxDisplayLen]) + "..."
	case len(runes) == 0:
		return "(empty)"
	default:
		return MaskValue(value)
	}
}

// MaskValue keeps the first and last two characters and stars the rest.
// Values of four characters or fewer are starred entirely.
func MaskValue(value string) string {
	runes := []rune(value)
	n := len(runes)
	if n <= 4 {
		return strings.Repeat("*", n)
	}
	return string(runes[:2]) + strings.Repeat("*", n-4) + string(runes[n-2:])
}
