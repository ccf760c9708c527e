//go:build unix

package exec

import (
	"errors"
	"testing"
)

// stubExec replaces execFunc for one test and records what it was given.
func stubExec(t *testing.T, ret error) (binary *string, argv *[]string, env *[]string) {
	t.Helper()
	original := execFunc
	t.Cleanup(func() { execFunc = original })

	var b string
	var a, e []string
	execFunc = func(bin string, args []string, envv []string) error {
		b, a, e = bin, args, envv
		return ret
	}
	return &b, &a, &e
}

func TestRealExecutor_Exec_Success(t *testing.T) {
	binary, argv, env := stubExec(t, nil)

	e := &RealExecutor{}
	if err := e.Exec("sh", []string{"-c", "true"}); err != nil {
		t.Fatalf("Exec() error = %v, want nil", err)
	}

	if *binary == "" || *binary == "sh" {
		t.Errorf("binary = %q, want resolved absolute path", *binary)
	}
	if len(*argv) != 3 || (*argv)[0] != "sh" || (*argv)[1] != "-c" || (*argv)[2] != "true" {
		t.Errorf("argv = %v, want [sh -c true]", *argv)
	}
	if len(*env) == 0 {
		t.Error("expected environment to be passed")
	}
}

func TestRealExecutor_Exec_EmptyArgs(t *testing.T) {
	_, argv, _ := stubExec(t, nil)

	e := &RealExecutor{}
	if err := e.Exec("sh", nil); err != nil {
		t.Fatalf("Exec() error = %v, want nil", err)
	}
	if len(*argv) != 1 || (*argv)[0] != "sh" {
		t.Errorf("argv = %v, want [sh]", *argv)
	}
}

func TestRealExecutor_Exec_ExecFuncError(t *testing.T) {
	expectedErr := errors.New("exec failed")
	stubExec(t, expectedErr)

	e := &RealExecutor{}
	err := e.Exec("sh", []string{})

	if !errors.Is(err, expectedErr) {
		t.Errorf("Exec() error = %v, want %v", err, expectedErr)
	}
}
