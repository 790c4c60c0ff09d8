package techzen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/techzen-lang/techzen/internal/interp"
)

type stubIO struct {
	out strings.Builder
}

func (s *stubIO) Write(str string)              { s.out.WriteString(str) }
func (s *stubIO) WriteLine(str string)          { s.out.WriteString(str + "\n") }
func (s *stubIO) Clear()                        {}
func (s *stubIO) ReadLine(prompt string) string { return "" }

func TestRunEvaluatesExpressionResult(t *testing.T) {
	rt := New(&stubIO{}, FileLoader{})
	value, err := rt.Run("<test>", "1 + 2 * 3")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	n, ok := value.(*interp.Number)
	if !ok {
		t.Fatalf("value is %T, want *interp.Number", value)
	}
	if n.Value != int64(7) {
		t.Fatalf("got %v, want 7", n.Value)
	}
}

func TestRunPrintsThroughIOHost(t *testing.T) {
	io := &stubIO{}
	rt := New(io, FileLoader{})
	if _, err := rt.Run("<test>", `print("hello")`); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if io.out.String() != "hello\n" {
		t.Fatalf("got output %q, want %q", io.out.String(), "hello\n")
	}
}

func TestRunReturnsErrorOnSyntaxFailure(t *testing.T) {
	rt := New(&stubIO{}, FileLoader{})
	_, err := rt.Run("<test>", "VAR = 5")
	if err == nil {
		t.Fatal("expected a syntax error")
	}
}

func TestRunSharesGlobalScopeAcrossCalls(t *testing.T) {
	rt := New(&stubIO{}, FileLoader{})
	if _, err := rt.Run("<test>", "VAR counter = 1"); err != nil {
		t.Fatalf("first Run returned error: %v", err)
	}
	value, err := rt.Run("<test>", "VAR counter = counter + 1\ncounter")
	if err != nil {
		t.Fatalf("second Run returned error: %v", err)
	}
	n := value.(*interp.Number)
	if n.Value != int64(2) {
		t.Fatalf("got %v, want 2 (global scope should persist across Run calls)", n.Value)
	}
}

func TestRunUntilExitReportsExit(t *testing.T) {
	rt := New(&stubIO{}, FileLoader{})
	_, err, shouldExit := rt.RunUntilExit("<test>", "exit()")
	if err != nil {
		t.Fatalf("RunUntilExit returned error: %v", err)
	}
	if !shouldExit {
		t.Fatal("expected shouldExit to be true after calling exit()")
	}
}

func TestRunNestedScriptSharesGlobalScopeAndPropagatesExit(t *testing.T) {
	dir := t.TempDir()
	childPath := filepath.Join(dir, "child.tz")
	if err := os.WriteFile(childPath, []byte("VAR shared = 99\nexit()"), 0o644); err != nil {
		t.Fatalf("failed to write temp script: %v", err)
	}

	rt := New(&stubIO{}, FileLoader{})
	_, err, shouldExit := rt.RunUntilExit("<test>", `run("`+childPath+`")`)
	if err != nil {
		t.Fatalf("RunUntilExit returned error: %v", err)
	}
	if !shouldExit {
		t.Fatal("expected exit() inside the nested script to propagate back up")
	}

	value, err := rt.Run("<test>", "shared")
	if err != nil {
		t.Fatalf("Run returned error reading shared var: %v", err)
	}
	n := value.(*interp.Number)
	if n.Value != int64(99) {
		t.Fatalf("got %v, want 99 (nested run() should share the global scope)", n.Value)
	}
}
