package check

import "context"

// Checker is implemented by all check types.
// Each check probes one configured item on the host
// and returns a Result indicating success or failure.
//
// Implementations:
//   - cmdcheck.Check: verifies a binary is on the search path and detects its version
//   - envcheck.Check: verifies an environment variable is set
type Checker interface {
	Run(ctx context.Context) Result
}
