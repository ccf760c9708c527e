//go:build windows

package exec

import "errors"

// ErrExecNotSupported indicates exec mode is not available on Windows.
var ErrExecNotSupported = errors.New("exec mode not supported on Windows; run the command after eden instead")

// Exec always fails: Windows cannot replace the running process image.
func (e *RealExecutor) Exec(string, []string) error {
	return ErrExecNotSupported
}
