package exec

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestExecutorInterface(t *testing.T) {
	var _ Executor = &MockExecutor{}
	var _ Executor = &RealExecutor{}
}

func TestMockExecutor(t *testing.T) {
	var gotName string
	var gotArgs []string
	m := &MockExecutor{ExecFunc: func(name string, args []string) error {
		gotName, gotArgs = name, args
		return errors.New("exec failed")
	}}

	err := m.Exec("npm", []string{"run", "dev"})

	if err == nil {
		t.Error("Exec() error = nil, want error from ExecFunc")
	}
	if gotName != "npm" || strings.Join(gotArgs, " ") != "run dev" {
		t.Errorf("ExecFunc got (%q, %v), want (npm, [run dev])", gotName, gotArgs)
	}
}

func TestMockExecutor_NilFunc(t *testing.T) {
	m := &MockExecutor{}
	if err := m.Exec("test", []string{"arg1"}); err != nil {
		t.Errorf("expected nil error when ExecFunc is nil, got %v", err)
	}
}

func TestRealExecutor_CommandNotFound(t *testing.T) {
	e := &RealExecutor{}
	err := e.Exec("nonexistent-command-that-does-not-exist-12345", []string{})
	if err == nil {
		t.Error("expected error for nonexistent command")
	}
}

func TestLookPath_NotFound(t *testing.T) {
	_, err := lookPath("nonexistent-command-xyz-12345")
	if err == nil {
		t.Error("expected error for nonexistent command")
	}
}

func TestEnviron(t *testing.T) {
	env := environ()

	hasPath := false
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			hasPath = true
			break
		}
	}
	if !hasPath && os.Getenv("PATH") != "" {
		t.Error("expected PATH in environment")
	}
}
