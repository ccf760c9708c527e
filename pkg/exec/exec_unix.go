//go:build unix

package exec

import (
	"syscall"
)

// execFunc is swapped out in tests; a successful syscall.Exec never returns.
var execFunc = syscall.Exec

// Exec replaces the current process with the specified command.
func (e *RealExecutor) Exec(name string, args []string) error {
	binary, err := lookPath(name)
	if err != nil {
		return err
	}

	// argv[0] must be the program name by convention.
	argv := append([]string{name}, args...)
	// #nosec G204 -- the command comes from the user's own command line after "--".
	return execFunc(binary, argv, environ())
}
