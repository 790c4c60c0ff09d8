package lexer

import (
	"errors"
	"strings"
	"testing"

	techerrors "github.com/techzen-lang/techzen/internal/errors"
	"github.com/techzen-lang/techzen/pkg/token"
)

func TestTokenizeBasicProgram(t *testing.T) {
	input := "VAR x = 5\nx = x + 10"

	tests := []struct {
		typ     token.Type
		literal any
	}{
		{token.KEYWORD, "VAR"},
		{token.IDENTIFIER, "x"},
		{token.EQ, nil},
		{token.INT, int64(5)},
		{token.NEWLINE, nil},
		{token.IDENTIFIER, "x"},
		{token.EQ, nil},
		{token.IDENTIFIER, "x"},
		{token.PLUS, nil},
		{token.INT, int64(10)},
		{token.EOF, nil},
	}

	toks, err := New("<test>", input).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	if len(toks) != len(tests) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(tests), toks)
	}

	for i, tt := range tests {
		if toks[i].Type != tt.typ {
			t.Fatalf("tests[%d] - type wrong. expected=%s, got=%s", i, tt.typ, toks[i].Type)
		}
		if toks[i].Literal != tt.literal {
			t.Fatalf("tests[%d] - literal wrong. expected=%v, got=%v", i, tt.literal, toks[i].Literal)
		}
	}
}

func TestTokenizeNumbers(t *testing.T) {
	toks, err := New("<test>", "5 3.14 0.5").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}

	want := []struct {
		typ     token.Type
		literal any
	}{
		{token.INT, int64(5)},
		{token.FLOAT, 3.14},
		{token.FLOAT, 0.5},
		{token.EOF, nil},
	}
	for i, w := range want {
		if toks[i].Type != w.typ || toks[i].Literal != w.literal {
			t.Fatalf("tests[%d] - got %s:%v, want %s:%v", i, toks[i].Type, toks[i].Literal, w.typ, w.literal)
		}
	}
}

func TestTokenizeStringEscapes(t *testing.T) {
	toks, err := New("<test>", `"hello\nworld"`).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	if toks[0].Type != token.STRING {
		t.Fatalf("got type %s, want STRING", toks[0].Type)
	}
	if toks[0].Literal != "hello\nworld" {
		t.Fatalf("got literal %q, want %q", toks[0].Literal, "hello\nworld")
	}
}

func TestTokenizeOperators(t *testing.T) {
	input := "+ - * / // ^ % = == != < <= > >= -> , . : ( ) [ ] { }"
	want := []token.Type{
		token.PLUS, token.MINUS, token.MUL, token.DIV, token.DFL, token.POW, token.MOD,
		token.EQ, token.EE, token.NE, token.LT, token.LTE, token.GT, token.GTE,
		token.ARROW, token.COMMA, token.DOT, token.COLON,
		token.LPAREN, token.RPAREN, token.LSQUARE, token.RSQUARE, token.LCURLY, token.RCURLY,
		token.EOF,
	}

	toks, err := New("<test>", input).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, typ := range want {
		if toks[i].Type != typ {
			t.Fatalf("tests[%d] - got %s, want %s", i, toks[i].Type, typ)
		}
	}
}

func TestTokenizeComments(t *testing.T) {
	input := "VAR x = 1 # line comment\nVAR y = 2 #[ block comment ]# VAR z = 3"

	toks, err := New("<test>", input).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}

	var identifiers []string
	for _, tok := range toks {
		if tok.Type == token.IDENTIFIER {
			identifiers = append(identifiers, tok.Literal.(string))
		}
	}
	want := []string{"x", "y"}
	if len(identifiers) != len(want) {
		t.Fatalf("got identifiers %v, want %v", identifiers, want)
	}
	for i, w := range want {
		if identifiers[i] != w {
			t.Fatalf("identifiers[%d] = %q, want %q", i, identifiers[i], w)
		}
	}
}

func TestTokenizeKeywordsCaseInsensitive(t *testing.T) {
	toks, err := New("<test>", "if IF If").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	for i := 0; i < 3; i++ {
		if toks[i].Type != token.KEYWORD {
			t.Fatalf("tests[%d] - got type %s, want KEYWORD", i, toks[i].Type)
		}
		if !toks[i].Matches(token.KEYWORD, token.IF) {
			t.Fatalf("tests[%d] - token %v does not match IF keyword", i, toks[i])
		}
	}
}

func TestTokenizeIllegalCharacter(t *testing.T) {
	_, err := New("<test>", "VAR x = 5\n@").Tokenize()
	if err == nil {
		t.Fatal("expected an error for illegal character '@'")
	}

	var illegal *techerrors.IllegalCharError
	if !errors.As(err, &illegal) {
		t.Fatalf("expected *errors.IllegalCharError, got %T", err)
	}

	if !strings.Contains(err.Error(), "Illegal Character") {
		t.Fatalf("error message missing name: %q", err.Error())
	}
	if !strings.Contains(err.Error(), "'@'") {
		t.Fatalf("error message missing offending character: %q", err.Error())
	}

	formatter, ok := err.(techerrors.Formatter)
	if !ok {
		t.Fatalf("expected error to implement errors.Formatter, got %T", err)
	}
	colored := formatter.Format(true)
	if !strings.Contains(colored, "\033[1;31m") {
		t.Fatalf("expected colorized format to contain red ANSI escape, got %q", colored)
	}
	plain := formatter.Format(false)
	if strings.Contains(plain, "\033[1;31m") {
		t.Fatalf("expected plain format to be free of ANSI escapes, got %q", plain)
	}
}

func TestTokenizeExpectedCharAfterBang(t *testing.T) {
	_, err := New("<test>", "x ! y").Tokenize()
	if err == nil {
		t.Fatal("expected an error for bare '!' not followed by '='")
	}

	var expected *techerrors.ExpectedCharError
	if !errors.As(err, &expected) {
		t.Fatalf("expected *errors.ExpectedCharError, got %T", err)
	}
	if !strings.Contains(err.Error(), "Expected Character") {
		t.Fatalf("error message missing name: %q", err.Error())
	}
}

func TestTokenizeExpectedCharUnclosedBlockComment(t *testing.T) {
	_, err := New("<test>", "#[ unterminated ]\nVAR x = 1").Tokenize()
	if err == nil {
		t.Fatal("expected an error for a block comment missing its closing '#'")
	}

	var expected *techerrors.ExpectedCharError
	if !errors.As(err, &expected) {
		t.Fatalf("expected *errors.ExpectedCharError, got %T", err)
	}
}
