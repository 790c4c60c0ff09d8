package errors

import (
	"strings"
	"testing"

	"github.com/techzen-lang/techzen/pkg/token"
)

func pos(filename, source string, index, line, col int) token.Position {
	return token.Position{Index: index, Line: line, Column: col, Filename: filename, Source: source}
}

func TestIllegalCharErrorMessage(t *testing.T) {
	start := pos("<test>", "1 @ 2", 2, 0, 2)
	end := pos("<test>", "1 @ 2", 3, 0, 3)
	err := NewIllegalCharError(start, end, "'@'")

	if !strings.Contains(err.Error(), "Illegal Character") {
		t.Fatalf("got %q, want it to contain %q", err.Error(), "Illegal Character")
	}
	if !strings.Contains(err.Error(), "'@'") {
		t.Fatalf("got %q, want it to contain %q", err.Error(), "'@'")
	}
	if !strings.Contains(err.Error(), "File <test>, line 1") {
		t.Fatalf("got %q, want it to report the 1-indexed line", err.Error())
	}
}

func TestExpectedCharErrorMessage(t *testing.T) {
	err := NewExpectedCharError(pos("<test>", "x !", 2, 0, 2), pos("<test>", "x !", 3, 0, 3), "'=' (after '!')")
	if !strings.Contains(err.Error(), "Expected Character") {
		t.Fatalf("got %q, want it to contain %q", err.Error(), "Expected Character")
	}
}

func TestInvalidSyntaxErrorMessage(t *testing.T) {
	err := NewInvalidSyntaxError(pos("<test>", "VAR = 5", 4, 0, 4), pos("<test>", "VAR = 5", 5, 0, 5), "Expected identifier")
	if !strings.Contains(err.Error(), "Invalid Syntax") {
		t.Fatalf("got %q, want it to contain %q", err.Error(), "Invalid Syntax")
	}
	if !strings.Contains(err.Error(), "Expected identifier") {
		t.Fatalf("got %q, want it to contain %q", err.Error(), "Expected identifier")
	}
}

func TestFormatColorWrapsNameInRed(t *testing.T) {
	err := NewIllegalCharError(pos("<test>", "@", 0, 0, 0), pos("<test>", "@", 1, 0, 1), "'@'")

	colored := err.Format(true)
	if !strings.Contains(colored, "\033[1;31m") {
		t.Fatalf("expected colorized output to contain red ANSI escape, got %q", colored)
	}
	plain := err.Format(false)
	if strings.Contains(plain, "\033[1;31m") {
		t.Fatalf("expected plain output to contain no ANSI escapes, got %q", plain)
	}
}

func TestStringWithArrowsPointsAtSpan(t *testing.T) {
	source := "VAR x = @"
	rendered := StringWithArrows(source, pos("<test>", source, 8, 0, 8), pos("<test>", source, 9, 0, 9))

	lines := strings.Split(rendered, "\n")
	if len(lines) < 2 {
		t.Fatalf("expected at least two lines (source + arrows), got %q", rendered)
	}
	if lines[0] != source {
		t.Fatalf("got source line %q, want %q", lines[0], source)
	}
	if !strings.HasSuffix(lines[1], "^") {
		t.Fatalf("expected the arrow line to end in '^', got %q", lines[1])
	}
	if len(lines[1]) != 9 {
		t.Fatalf("expected the caret to align under column 8, got arrow line %q (len %d)", lines[1], len(lines[1]))
	}
}

// fakeFrame is a minimal ContextFrame for exercising RuntimeError's
// traceback rendering without pulling in internal/interp.
type fakeFrame struct {
	name      string
	parent    *fakeFrame
	entryPos  token.Position
	hasParent bool
}

func (f *fakeFrame) DisplayName() string { return f.name }

func (f *fakeFrame) Parent() ContextFrame {
	if f.parent == nil {
		return nil
	}
	return f.parent
}

func (f *fakeFrame) ParentEntryPos() (token.Position, bool) {
	return f.entryPos, f.hasParent
}

func TestRuntimeErrorTracebackWalksParentChain(t *testing.T) {
	source := "1 / 0"
	callerPos := pos("<test>", source, 0, 0, 0)
	root := &fakeFrame{name: "<program>"}
	callee := &fakeFrame{name: "divide", parent: root, entryPos: callerPos, hasParent: true}

	err := NewRuntimeError(pos("<test>", source, 4, 0, 4), pos("<test>", source, 5, 0, 5), "Division by zero", callee)

	out := err.Error()
	if !strings.Contains(out, "Traceback (most recent call last):") {
		t.Fatalf("got %q, want it to contain a traceback header", out)
	}
	if !strings.Contains(out, "in divide") {
		t.Fatalf("got %q, want it to mention the failing frame %q", out, "divide")
	}
	if !strings.Contains(out, "in <program>") {
		t.Fatalf("got %q, want it to mention the root frame", out)
	}
	if !strings.Contains(out, "Runtime Error: Division by zero") {
		t.Fatalf("got %q, want it to contain the error name and details", out)
	}
}
