// Package lexer turns TechZen source text into a token sequence.
package lexer

import (
	"strconv"
	"strings"

	techerrors "github.com/techzen-lang/techzen/internal/errors"
	"github.com/techzen-lang/techzen/pkg/token"
)

const (
	digits        = "0123456789"
	letters       = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lettersDigits = letters + digits
	skipLetters   = " \t"
)

var escapeChars = map[rune]rune{
	'n': '\n',
	't': '\t',
	'r': '\r',
	'v': '\v',
	'0': 0,
}

// Lexer scans one source file into a token sequence.
type Lexer struct {
	filename string
	text     []rune
	pos      token.Position
	current  rune
	hasChar  bool
}

// New creates a lexer positioned on the first character of text.
func New(filename, text string) *Lexer {
	l := &Lexer{
		filename: filename,
		text:     []rune(text),
		pos:      token.NewPosition(filename, text),
	}
	l.advance()
	return l
}

func (l *Lexer) advance() {
	var cur rune
	if l.hasChar {
		cur = l.current
	}
	l.pos = l.pos.Advance(cur)
	if l.pos.Index < len(l.text) {
		l.current = l.text[l.pos.Index]
		l.hasChar = true
	} else {
		l.current = 0
		l.hasChar = false
	}
}

func (l *Lexer) peekIs(r rune) bool {
	return l.hasChar && l.current == r
}

// Tokenize scans the complete source into tokens terminated by EOF, or
// returns the first lex error encountered.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var tokens []token.Token

	for l.hasChar {
		switch {
		case strings.ContainsRune(skipLetters, l.current):
			l.advance()
		case l.current == '#':
			if err := l.skipComment(); err != nil {
				return nil, err
			}
		case strings.ContainsRune(digits, l.current):
			tokens = append(tokens, l.makeNumber())
		case strings.ContainsRune(letters, l.current):
			tokens = append(tokens, l.makeIdentifier())
		case l.current == '"' || l.current == '\'':
			tokens = append(tokens, l.makeString(l.current))
		case l.current == '-':
			tokens = append(tokens, l.makeMinusOrArrow())
		case l.current == '/':
			tokens = append(tokens, l.makeDivision())
		case l.current == '!':
			tok, err := l.makeNotEquals()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case l.current == '=':
			tokens = append(tokens, l.makeEquals())
		case l.current == '<':
			tokens = append(tokens, l.makeLessThan())
		case l.current == '>':
			tokens = append(tokens, l.makeGreaterThan())
		default:
			if typ, ok := token.SingleCharTokens[l.current]; ok {
				tokens = append(tokens, token.New(typ, nil, l.pos))
				l.advance()
			} else {
				start := l.pos.Copy()
				ch := l.current
				l.advance()
				return nil, techerrors.NewIllegalCharError(start, l.pos, "'"+string(ch)+"'")
			}
		}
	}

	tokens = append(tokens, token.New(token.EOF, nil, l.pos))
	return tokens, nil
}

func (l *Lexer) skipComment() error {
	start := l.pos.Copy()
	l.advance()
	if l.peekIs('[') {
		l.advance()
		for l.hasChar && l.current != ']' {
			l.advance()
		}
		l.advance() // consume ']'
		if !l.peekIs('#') {
			return techerrors.NewExpectedCharError(start, l.pos, "'#' (after ']' closing a block comment)")
		}
		l.advance() // consume trailing '#'
	}
	for l.hasChar && l.current != '\n' {
		l.advance()
	}
	return nil
}

func (l *Lexer) makeNumber() token.Token {
	var sb strings.Builder
	start := l.pos.Copy()
	dotCount := 0

	for l.hasChar && (strings.ContainsRune(digits, l.current) || l.current == '.') {
		if l.current == '.' {
			if dotCount == 1 {
				break
			}
			dotCount++
		}
		sb.WriteRune(l.current)
		l.advance()
	}

	text := sb.String()
	if dotCount == 0 {
		n, _ := strconv.ParseInt(text, 10, 64)
		return token.NewSpan(token.INT, n, start, l.pos)
	}
	f, _ := strconv.ParseFloat(text, 64)
	return token.NewSpan(token.FLOAT, f, start, l.pos)
}

func (l *Lexer) makeString(quote rune) token.Token {
	var sb strings.Builder
	start := l.pos.Copy()
	escaping := false
	l.advance() // consume opening quote

	for l.hasChar && (l.current != quote || escaping) {
		if escaping {
			if mapped, ok := escapeChars[l.current]; ok {
				sb.WriteRune(mapped)
			} else {
				sb.WriteRune(l.current)
			}
			escaping = false
		} else if l.current == '\\' {
			escaping = true
		} else {
			sb.WriteRune(l.current)
		}
		l.advance()
	}
	l.advance() // consume closing quote

	return token.NewSpan(token.STRING, sb.String(), start, l.pos)
}

func (l *Lexer) makeIdentifier() token.Token {
	var sb strings.Builder
	start := l.pos.Copy()

	for l.hasChar && (strings.ContainsRune(lettersDigits, l.current) || l.current == '_') {
		sb.WriteRune(l.current)
		l.advance()
	}

	text := sb.String()
	typ := token.IDENTIFIER
	if token.IsKeyword(text) {
		typ = token.KEYWORD
	}
	return token.NewSpan(typ, text, start, l.pos)
}

func (l *Lexer) makeMinusOrArrow() token.Token {
	typ := token.MINUS
	start := l.pos.Copy()
	l.advance()
	if l.peekIs('>') {
		l.advance()
		typ = token.ARROW
	}
	return token.NewSpan(typ, nil, start, l.pos)
}

func (l *Lexer) makeNotEquals() (token.Token, error) {
	start := l.pos.Copy()
	l.advance()
	if l.peekIs('=') {
		l.advance()
		return token.NewSpan(token.NE, nil, start, l.pos), nil
	}
	l.advance()
	return token.Token{}, techerrors.NewExpectedCharError(start, l.pos, "'=' (after '!')")
}

func (l *Lexer) makeDivision() token.Token {
	typ := token.DIV
	start := l.pos.Copy()
	l.advance()
	if l.peekIs('/') {
		l.advance()
		typ = token.DFL
	}
	return token.NewSpan(typ, nil, start, l.pos)
}

func (l *Lexer) makeEquals() token.Token {
	typ := token.EQ
	start := l.pos.Copy()
	l.advance()
	if l.peekIs('=') {
		l.advance()
		typ = token.EE
	}
	return token.NewSpan(typ, nil, start, l.pos)
}

func (l *Lexer) makeLessThan() token.Token {
	typ := token.LT
	start := l.pos.Copy()
	l.advance()
	if l.peekIs('=') {
		l.advance()
		typ = token.LTE
	}
	return token.NewSpan(typ, nil, start, l.pos)
}

func (l *Lexer) makeGreaterThan() token.Token {
	typ := token.GT
	start := l.pos.Copy()
	l.advance()
	if l.peekIs('=') {
		l.advance()
		typ = token.GTE
	}
	return token.NewSpan(typ, nil, start, l.pos)
}
