package parser

import (
	"github.com/techzen-lang/techzen/internal/ast"
	"github.com/techzen-lang/techzen/pkg/token"
)

// class_node := 'CLASS' IDENTIFIER NEWLINE statements 'ENDC'
func (p *Parser) classDef() *Result {
	res := NewResult()
	start := p.Current.PosStart

	if !p.Current.Matches(token.KEYWORD, token.CLASS) {
		return res.Failure(expectedError(p.Current, "'CLASS'"))
	}
	res.RegisterAdvancement()
	p.advance()

	if p.Current.Type != token.IDENTIFIER {
		return res.Failure(expectedError(p.Current, "identifier"))
	}
	name, _ := p.Current.Literal.(string)
	res.RegisterAdvancement()
	p.advance()

	if p.Current.Type != token.NEWLINE {
		return res.Failure(expectedError(p.Current, "NEWLINE"))
	}
	res.RegisterAdvancement()
	p.advance()

	body := res.Register(p.statements())
	if res.Error != nil {
		return res
	}

	if !p.Current.Matches(token.KEYWORD, token.ENDC) {
		return res.Failure(expectedError(p.Current, "'ENDC'"))
	}
	end := p.Current.PosEnd
	res.RegisterAdvancement()
	p.advance()

	return res.Success(ast.NewClassNode(name, body, start, end))
}
