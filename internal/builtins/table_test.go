package builtins

import (
	"strings"
	"testing"

	"github.com/techzen-lang/techzen/internal/interp"
)

// stubIO captures output and replays canned input lines, standing in for
// a terminal in tests.
type stubIO struct {
	out     strings.Builder
	lines   []string
	cursor  int
	cleared bool
}

func (s *stubIO) Write(str string)     { s.out.WriteString(str) }
func (s *stubIO) WriteLine(str string) { s.out.WriteString(str + "\n") }
func (s *stubIO) Clear()               { s.cleared = true }
func (s *stubIO) ReadLine(prompt string) string {
	if s.cursor >= len(s.lines) {
		return ""
	}
	line := s.lines[s.cursor]
	s.cursor++
	return line
}

// stubLoader serves canned script sources by name, standing in for disk
// access in tests that exercise the `run` built-in.
type stubLoader struct {
	scripts map[string]string
}

func (l *stubLoader) Load(name string) (string, string, error) {
	src, ok := l.scripts[name]
	if !ok {
		return "", "", errNotFound(name)
	}
	return src, name, nil
}

type notFoundError string

func (e notFoundError) Error() string { return "script not found: " + string(e) }

func errNotFound(name string) error { return notFoundError(name) }

func lookupBuiltin(t *testing.T, env *Env, name string) *BuiltInFunction {
	t.Helper()
	registry := NewRegistry(All(env))
	fn, ok := registry.Lookup(name)
	if !ok {
		t.Fatalf("built-in %q not found in registry", name)
	}
	return fn
}

func TestPrintWritesLineToIOHost(t *testing.T) {
	io := &stubIO{}
	env := &Env{IO: io}
	fn := lookupBuiltin(t, env, "print")

	res := fn.Execute([]interp.Value{interp.NewString("hello")})
	if res.Err != nil {
		t.Fatalf("print returned error: %v", res.Err)
	}
	if io.out.String() != "hello\n" {
		t.Fatalf("got output %q, want %q", io.out.String(), "hello\n")
	}
}

func TestPrintRetReturnsString(t *testing.T) {
	env := &Env{IO: &stubIO{}}
	fn := lookupBuiltin(t, env, "print_ret")

	res := fn.Execute([]interp.Value{interp.NewNumber(int64(42))})
	if res.Err != nil {
		t.Fatalf("print_ret returned error: %v", res.Err)
	}
	s, ok := res.Value.(*interp.String)
	if !ok {
		t.Fatalf("result is %T, want *interp.String", res.Value)
	}
	if s.Value != "42" {
		t.Fatalf("got %q, want %q", s.Value, "42")
	}
}

func TestInputReadsFromIOHost(t *testing.T) {
	io := &stubIO{lines: []string{"world"}}
	env := &Env{IO: io}
	fn := lookupBuiltin(t, env, "input")

	res := fn.Execute([]interp.Value{interp.NewString("name? ")})
	if res.Err != nil {
		t.Fatalf("input returned error: %v", res.Err)
	}
	s := res.Value.(*interp.String)
	if s.Value != "world" {
		t.Fatalf("got %q, want %q", s.Value, "world")
	}
}

func TestInputIntRetriesOnNonInteger(t *testing.T) {
	io := &stubIO{lines: []string{"abc", "7"}}
	env := &Env{IO: io}
	fn := lookupBuiltin(t, env, "input_int")

	res := fn.Execute([]interp.Value{interp.NewString("n? ")})
	if res.Err != nil {
		t.Fatalf("input_int returned error: %v", res.Err)
	}
	n := res.Value.(*interp.Number)
	if n.Value != int64(7) {
		t.Fatalf("got %v, want 7", n.Value)
	}
	if !strings.Contains(io.out.String(), "must be an integer") {
		t.Fatalf("expected a retry message, got %q", io.out.String())
	}
}

func TestTypeCheckBuiltins(t *testing.T) {
	env := &Env{IO: &stubIO{}}

	tests := []struct {
		name  string
		value interp.Value
		want  bool
	}{
		{"is_number", interp.NewNumber(int64(1)), true},
		{"is_number", interp.NewString("x"), false},
		{"is_string", interp.NewString("x"), true},
		{"is_list", interp.NewList(nil), true},
		{"is_list", interp.NewNumber(int64(1)), false},
	}

	for _, tt := range tests {
		fn := lookupBuiltin(t, env, tt.name)
		res := fn.Execute([]interp.Value{tt.value})
		if res.Err != nil {
			t.Fatalf("%s returned error: %v", tt.name, res.Err)
		}
		got := res.Value.IsTrue()
		if got != tt.want {
			t.Fatalf("%s(%s) = %v, want %v", tt.name, tt.value.String(), got, tt.want)
		}
	}
}

func TestAppendPopExtendUpdateListLen(t *testing.T) {
	env := &Env{IO: &stubIO{}}

	list := interp.NewList([]interp.Value{interp.NewNumber(int64(1)), interp.NewNumber(int64(2))})

	appendFn := lookupBuiltin(t, env, "append")
	if res := appendFn.Execute([]interp.Value{list, interp.NewNumber(int64(3))}); res.Err != nil {
		t.Fatalf("append returned error: %v", res.Err)
	}
	if len(list.Elements) != 3 {
		t.Fatalf("got %d elements after append, want 3", len(list.Elements))
	}

	lenFn := lookupBuiltin(t, env, "len")
	res := lenFn.Execute([]interp.Value{list})
	if res.Err != nil {
		t.Fatalf("len returned error: %v", res.Err)
	}
	if res.Value.(*interp.Number).Value != int64(3) {
		t.Fatalf("got length %v, want 3", res.Value.(*interp.Number).Value)
	}

	popFn := lookupBuiltin(t, env, "pop")
	res = popFn.Execute([]interp.Value{list, interp.NewNumber(int64(0))})
	if res.Err != nil {
		t.Fatalf("pop returned error: %v", res.Err)
	}
	if res.Value.(*interp.Number).Value != int64(1) {
		t.Fatalf("popped %v, want 1", res.Value.(*interp.Number).Value)
	}
	if len(list.Elements) != 2 {
		t.Fatalf("got %d elements after pop, want 2", len(list.Elements))
	}

	other := interp.NewList([]interp.Value{interp.NewNumber(int64(9))})
	extendFn := lookupBuiltin(t, env, "extend")
	if res := extendFn.Execute([]interp.Value{list, other}); res.Err != nil {
		t.Fatalf("extend returned error: %v", res.Err)
	}
	if len(list.Elements) != 3 {
		t.Fatalf("got %d elements after extend, want 3", len(list.Elements))
	}

	updateFn := lookupBuiltin(t, env, "update_list")
	res = updateFn.Execute([]interp.Value{list, interp.NewNumber(int64(0)), interp.NewNumber(int64(100))})
	if res.Err != nil {
		t.Fatalf("update_list returned error: %v", res.Err)
	}
	updated := res.Value.(*interp.List)
	if updated.Elements[0].(*interp.Number).Value != int64(100) {
		t.Fatalf("updated[0] = %v, want 100", updated.Elements[0].(*interp.Number).Value)
	}
	if list.Elements[0].(*interp.Number).Value != int64(2) {
		t.Fatalf("update_list mutated the original list in place")
	}
}

func TestLowerUpperString(t *testing.T) {
	env := &Env{IO: &stubIO{}}

	lowerFn := lookupBuiltin(t, env, "lower")
	res := lowerFn.Execute([]interp.Value{interp.NewString("HeLLo")})
	if res.Err != nil {
		t.Fatalf("lower returned error: %v", res.Err)
	}
	if res.Value.(*interp.String).Value != "hello" {
		t.Fatalf("got %q, want %q", res.Value.(*interp.String).Value, "hello")
	}

	upperFn := lookupBuiltin(t, env, "upper")
	res = upperFn.Execute([]interp.Value{interp.NewString("HeLLo")})
	if res.Err != nil {
		t.Fatalf("upper returned error: %v", res.Err)
	}
	if res.Value.(*interp.String).Value != "HELLO" {
		t.Fatalf("got %q, want %q", res.Value.(*interp.String).Value, "HELLO")
	}

	stringFn := lookupBuiltin(t, env, "string")
	res = stringFn.Execute([]interp.Value{interp.NewNumber(3.5)})
	if res.Err != nil {
		t.Fatalf("string returned error: %v", res.Err)
	}
	if res.Value.(*interp.String).Value != "3.5" {
		t.Fatalf("got %q, want %q", res.Value.(*interp.String).Value, "3.5")
	}
}

func TestRunLoadsAndExecutesNestedScript(t *testing.T) {
	ran := false
	env := &Env{
		IO:     &stubIO{},
		Loader: &stubLoader{scripts: map[string]string{"lib.tz": "VAR unused = 1"}},
		Run: func(filename, source string) (bool, error) {
			ran = true
			if filename != "lib.tz" {
				t.Fatalf("got filename %q, want %q", filename, "lib.tz")
			}
			return false, nil
		},
	}
	fn := lookupBuiltin(t, env, "run")

	res := fn.Execute([]interp.Value{interp.NewString("lib.tz")})
	if res.Err != nil {
		t.Fatalf("run returned error: %v", res.Err)
	}
	if !ran {
		t.Fatal("expected the Env.Run hook to be called")
	}
}

func TestExitSetsShouldExit(t *testing.T) {
	env := &Env{IO: &stubIO{}}
	fn := lookupBuiltin(t, env, "exit")

	res := fn.Execute(nil)
	if res.Err != nil {
		t.Fatalf("exit returned error: %v", res.Err)
	}
	if !res.ShouldExit {
		t.Fatal("expected ShouldExit to be set")
	}
}

func TestArityMismatchReturnsRuntimeError(t *testing.T) {
	env := &Env{IO: &stubIO{}}
	fn := lookupBuiltin(t, env, "print")

	res := fn.Execute(nil)
	if res.Err == nil {
		t.Fatal("expected a too-few-args error")
	}
}
