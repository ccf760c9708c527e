package cmdcheck

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// waitDelay bounds how long Wait blocks on output pipes after the process
// is killed, e.g. when a grandchild still holds them open.
const waitDelay = time.Second

// CmdRunner abstracts command execution for testability.
type CmdRunner interface {
	LookPath(file string) (string, error)
	// RunCommandContext runs name with args and no stdin. A non-zero exit is
	// reported through exitCode; err is set only when the process could not
	// be started or was stopped by ctx.
	RunCommandContext(ctx context.Context, name string, args ...string) (stdout, stderr string, exitCode int, err error)
}

// RealCmdRunner implements CmdRunner using actual OS commands.
type RealCmdRunner struct{}

// LookPath searches for an executable in PATH.
func (r *RealCmdRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// RunCommandContext executes a command and returns its output.
func (r *RealCmdRunner) RunCommandContext(ctx context.Context, name string, args ...string) (stdout, stderr string, exitCode int, err error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // binary names come from the user's config
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	cmd.WaitDelay = waitDelay

	err = cmd.Run()
	if ctx.Err() != nil {
		return outBuf.String(), errBuf.String(), -1, ctx.Err()
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return outBuf.String(), errBuf.String(), exitErr.ExitCode(), nil
	}
	if err != nil {
		return outBuf.String(), errBuf.String(), -1, err
	}
	return outBuf.String(), errBuf.String(), 0, nil
}

// MockCmdRunner is a test double for CmdRunner.
type MockCmdRunner struct {
	LookPathFunc   func(file string) (string, error)
	RunCommandFunc func(ctx context.Context, name string, args ...string) (string, string, int, error)
}

// LookPath calls the mock function.
func (m *MockCmdRunner) LookPath(file string) (string, error) {
	return m.LookPathFunc(file)
}

// RunCommandContext calls the mock function.
func (m *MockCmdRunner) RunCommandContext(ctx context.Context, name string, args ...string) (stdout, stderr string, exitCode int, err error) {
	return m.RunCommandFunc(ctx, name, args...)
}
