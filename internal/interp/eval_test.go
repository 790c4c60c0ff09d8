package interp

import (
	"testing"

	"github.com/techzen-lang/techzen/internal/lexer"
	"github.com/techzen-lang/techzen/internal/parser"
)

// unwrapProgram mirrors the host-visible result of a top-level program
// (pkg/techzen.Run): the parser always wraps a program in a top-level
// ast.ListNode, so Eval always returns a *List of every statement's
// value. The reported result is the last statement's value.
func unwrapProgram(v Value) Value {
	list, ok := v.(*List)
	if !ok || len(list.Elements) == 0 {
		return v
	}
	return list.Elements[len(list.Elements)-1]
}

// testEval parses input as a complete program and evaluates it against a
// fresh global context, returning the value of its last statement.
func testEval(t *testing.T, input string) Value {
	t.Helper()
	toks, err := lexer.New("<test>", input).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize(%q) returned error: %v", input, err)
	}
	tree, err := parser.New(toks).Parse()
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", input, err)
	}
	ctx := NewContext("<program>")
	ctx.Symbols = NewSymbolTable(nil)
	res := Eval(tree, ctx)
	if res.Err != nil {
		t.Fatalf("Eval(%q) returned error: %v", input, res.Err)
	}
	return unwrapProgram(res.Value)
}

// testEvalErr behaves like testEval but expects a runtime error and
// returns it instead of failing the test.
func testEvalErr(t *testing.T, input string) error {
	t.Helper()
	toks, err := lexer.New("<test>", input).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize(%q) returned error: %v", input, err)
	}
	tree, err := parser.New(toks).Parse()
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", input, err)
	}
	ctx := NewContext("<program>")
	ctx.Symbols = NewSymbolTable(nil)
	res := Eval(tree, ctx)
	if res.Err == nil {
		t.Fatalf("Eval(%q) succeeded with %v, want an error", input, res.Value)
	}
	return res.Err
}

func testNumberValue(t *testing.T, v Value, want any) {
	t.Helper()
	n, ok := v.(*Number)
	if !ok {
		t.Fatalf("value is %T, want *Number", v)
	}
	if n.Value != want {
		t.Fatalf("got %v (%T), want %v (%T)", n.Value, n.Value, want, want)
	}
}

func TestEvalArithmetic(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{"1 + 2", int64(3)},
		{"10 - 4", int64(6)},
		{"3 * 4", int64(12)},
		{"7 // 2", int64(3)},
		{"-7 // 2", int64(-4)},
		{"7 % 2", int64(1)},
		{"-7 % 2", int64(1)},
		{"2 ^ 10", int64(1024)},
		{"1 + 2 * 3", int64(7)},
		{"(1 + 2) * 3", int64(9)},
		{"10 / 4", 2.5},
		{"-5", int64(-5)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			testNumberValue(t, testEval(t, tt.input), tt.want)
		})
	}
}

func TestEvalComparisons(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"1 == 1", 1},
		{"1 == 2", 0},
		{"1 != 2", 1},
		{"1 < 2", 1},
		{"2 <= 2", 1},
		{"3 > 2", 1},
		{"3 >= 4", 0},
		{"1 AND 0", 0},
		{"1 AND 1", 1},
		{"0 OR 1", 1},
		{"NOT 0", 1},
		{"NOT 1", 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			testNumberValue(t, testEval(t, tt.input), tt.want)
		})
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	err := testEvalErr(t, "1 / 0")
	if err == nil {
		t.Fatal("expected division by zero error")
	}
}

func TestEvalStringConcatAndRepeat(t *testing.T) {
	v := testEval(t, `"foo" + "bar"`)
	s, ok := v.(*String)
	if !ok {
		t.Fatalf("value is %T, want *String", v)
	}
	if s.Value != "foobar" {
		t.Fatalf("got %q, want %q", s.Value, "foobar")
	}

	v = testEval(t, `"ab" * 3`)
	s = v.(*String)
	if s.Value != "ababab" {
		t.Fatalf("got %q, want %q", s.Value, "ababab")
	}
}

func TestEvalListAppendRemoveIndex(t *testing.T) {
	v := testEval(t, "([1, 2] + 3) / 2")
	testNumberValue(t, v, int64(3))

	v = testEval(t, "([1, 2, 3] - 1) / 1")
	testNumberValue(t, v, int64(3))

	v = testEval(t, "[1, 2] * [3, 4]")
	list, ok := v.(*List)
	if !ok {
		t.Fatalf("value is %T, want *List", v)
	}
	if len(list.Elements) != 4 {
		t.Fatalf("got %d elements, want 4", len(list.Elements))
	}
}

func TestEvalListCopyIsIndependent(t *testing.T) {
	toks, err := lexer.New("<test>", "VAR a = [1, 2]\nVAR b = a + 3\na").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	tree, err := parser.New(toks).Parse()
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	ctx := NewContext("<program>")
	ctx.Symbols = NewSymbolTable(nil)
	res := Eval(tree, ctx)
	if res.Err != nil {
		t.Fatalf("Eval returned error: %v", res.Err)
	}
	list := unwrapProgram(res.Value).(*List)
	if len(list.Elements) != 2 {
		t.Fatalf("mutating b's copy leaked into a: got %d elements, want 2", len(list.Elements))
	}
}

func TestEvalVarAssignAndAccess(t *testing.T) {
	v := testEval(t, "VAR x = 10\nVAR y = x + 5\ny")
	testNumberValue(t, v, int64(15))
}

func TestEvalIfInline(t *testing.T) {
	testNumberValue(t, testEval(t, "IF 1 THEN 10 ELSE 20"), int64(10))
	testNumberValue(t, testEval(t, "IF 0 THEN 10 ELSE 20"), int64(20))
}

func TestEvalIfBlockReturnsNull(t *testing.T) {
	v := testEval(t, "IF 1 THEN\nVAR x = 5\nEND")
	if v != NumberNull {
		t.Fatalf("block-form IF should evaluate to NumberNull, got %v", v)
	}
}

func TestEvalForLoopCollectsAndLeaksVar(t *testing.T) {
	toks, err := lexer.New("<test>", "VAR xs = FOR i = 0 TO 3 THEN i * i\ni").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	tree, err := parser.New(toks).Parse()
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	ctx := NewContext("<program>")
	ctx.Symbols = NewSymbolTable(nil)
	res := Eval(tree, ctx)
	if res.Err != nil {
		t.Fatalf("Eval returned error: %v", res.Err)
	}
	testNumberValue(t, unwrapProgram(res.Value), int64(2))
}

func TestEvalWhileLoopWithBreakAndContinue(t *testing.T) {
	v := testEval(t, "VAR i = 0\nVAR out = []\nWHILE i < 10 THEN\nVAR i = i + 1\nIF i == 5 THEN BREAK\nIF i % 2 == 0 THEN CONTINUE\nVAR out = out + i\nEND\nout")
	list, ok := v.(*List)
	if !ok {
		t.Fatalf("value is %T, want *List", v)
	}
	want := []int64{1, 3}
	if len(list.Elements) != len(want) {
		t.Fatalf("got %d elements, want %d: %v", len(list.Elements), len(want), list.Elements)
	}
	for i, w := range want {
		testNumberValue(t, list.Elements[i], w)
	}
}

func TestEvalFuncDefAndCall(t *testing.T) {
	v := testEval(t, "FUN add(a, b) -> a + b\nadd(2, 3)")
	testNumberValue(t, v, int64(5))
}

func TestEvalFuncRecursion(t *testing.T) {
	v := testEval(t, "FUN fact(n) -> IF n <= 1 THEN 1 ELSE n * fact(n - 1)\nfact(5)")
	testNumberValue(t, v, int64(120))
}

func TestEvalFuncBlockReturn(t *testing.T) {
	v := testEval(t, "FUN double(n)\nRETURN n * 2\nENDF\ndouble(21)")
	testNumberValue(t, v, int64(42))
}

func TestEvalClassInstanceAndMethodCall(t *testing.T) {
	v := testEval(t, "CLASS Counter\nFUN Counter()\nVAR self.count = 0\nENDF\nFUN bump()\nVAR self.count = self.count + 1\nRETURN self.count\nENDF\nENDC\nVAR c = Counter()\nc.bump()\nc.bump()")
	testNumberValue(t, v, int64(2))
}

func TestEvalTryExceptRecoversFromRuntimeError(t *testing.T) {
	v := testEval(t, "TRY VAR x = 1 / 0 EXCEPT VAR x = -1")
	if v != NumberNull {
		t.Fatalf("TRY/EXCEPT should evaluate to NumberNull, got %v", v)
	}
}

func TestEvalUndefinedVariable(t *testing.T) {
	err := testEvalErr(t, "missing_var")
	if err == nil {
		t.Fatal("expected an undefined-variable error")
	}
}
