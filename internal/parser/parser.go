// Package parser implements TechZen's recursive-descent,
// precedence-climbing grammar over a token sequence, producing a single
// root AST node (spec.md §4.2).
package parser

import (
	"fmt"

	"github.com/techzen-lang/techzen/internal/ast"
	techerrors "github.com/techzen-lang/techzen/internal/errors"
	"github.com/techzen-lang/techzen/pkg/token"
)

// Result accumulates the outcome of one parse attempt along with how many
// tokens it consumed, so callers can implement backtracking: TryRegister
// records how far a failed attempt advanced so the caller can rewind the
// cursor by that amount.
type Result struct {
	Error                       error
	Node                        ast.Node
	LastRegisteredAdvanceCount int
	AdvanceCount                int
	ToReverseCount              int
}

// NewResult returns a zeroed Result ready for use.
func NewResult() *Result {
	return &Result{}
}

// RegisterAdvancement records that the parser consumed exactly one token
// that did not come from a nested Result (e.g. an explicit p.advance()).
func (r *Result) RegisterAdvancement() {
	r.LastRegisteredAdvanceCount = 1
	r.AdvanceCount++
}

// Register folds a nested Result into this one, propagating its error
// (if any) and its advance count.
func (r *Result) Register(res *Result) ast.Node {
	r.LastRegisteredAdvanceCount = res.AdvanceCount
	r.AdvanceCount += res.AdvanceCount
	if res.Error != nil {
		r.Error = res.Error
	}
	return res.Node
}

// TryRegister folds a nested Result in only if it succeeded; on failure it
// records how far the attempt advanced (in ToReverseCount) so the caller
// can reverse the parser's cursor, and returns nil without setting Error.
func (r *Result) TryRegister(res *Result) ast.Node {
	if res.Error != nil {
		r.ToReverseCount = res.AdvanceCount
		return nil
	}
	return r.Register(res)
}

// Success marks the result as having produced node.
func (r *Result) Success(node ast.Node) *Result {
	r.Node = node
	return r
}

// Failure records err. An error already registered from a nested attempt
// is kept if that attempt consumed at least one token; otherwise err
// replaces it.
func (r *Result) Failure(err error) *Result {
	if r.Error == nil || r.LastRegisteredAdvanceCount == 0 {
		r.Error = err
	}
	return r
}

// Parser walks a token sequence and builds the AST.
type Parser struct {
	tokens   []token.Token
	tokIdx   int
	Current  token.Token
}

// New creates a parser positioned at the first token.
func New(tokens []token.Token) *Parser {
	p := &Parser{tokens: tokens, tokIdx: -1}
	p.advance()
	return p
}

func (p *Parser) advance() token.Token {
	p.tokIdx++
	p.updateCurrent()
	return p.Current
}

func (p *Parser) reverse(amount int) token.Token {
	p.tokIdx -= amount
	p.updateCurrent()
	return p.Current
}

func (p *Parser) updateCurrent() {
	if p.tokIdx >= 0 && p.tokIdx < len(p.tokens) {
		p.Current = p.tokens[p.tokIdx]
	}
}

// Parse consumes the entire token stream and returns the root (a List
// node of top-level statements) or a syntax error.
func (p *Parser) Parse() (ast.Node, error) {
	res := p.statements()
	if res.Error != nil {
		return nil, res.Error
	}
	if p.Current.Type != token.EOF {
		return nil, techerrors.NewInvalidSyntaxError(
			p.Current.PosStart, p.Current.PosEnd,
			"Token cannot appear after previous tokens",
		)
	}
	return res.Node, nil
}

func expectedError(pos token.Token, what string) error {
	return techerrors.NewInvalidSyntaxError(pos.PosStart, pos.PosEnd, fmt.Sprintf("Expected %s", what))
}
