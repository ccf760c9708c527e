// Package exec hands the process over to a command once every check passes,
// so eden can front a dev server: `eden -- npm run dev`.
package exec

import (
	"os"
	"os/exec"
)

// Executor handles process replacement after successful checks.
type Executor interface {
	// Exec replaces the current process with the specified command.
	// On Unix, this uses syscall.Exec. On Windows, returns an error.
	Exec(name string, args []string) error
}

// RealExecutor is the production implementation.
type RealExecutor struct{}

// MockExecutor is a test double for Executor.
type MockExecutor struct {
	ExecFunc func(name string, args []string) error
}

func (m *MockExecutor) Exec(name string, args []string) error {
	if m.ExecFunc != nil {
		return m.ExecFunc(name, args)
	}
	return nil
}

// lookPath finds the executable in PATH.
func lookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// environ returns the current environment.
func environ() []string {
	return os.Environ()
}
