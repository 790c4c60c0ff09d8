package parser

import (
	"github.com/techzen-lang/techzen/internal/ast"
	"github.com/techzen-lang/techzen/pkg/token"
)

// func_def := 'FUN' IDENTIFIER? '(' (IDENTIFIER (',' IDENTIFIER)*)? ')'
//            ('->' expr | NEWLINE statements 'ENDF')
func (p *Parser) funcDef() *Result {
	res := NewResult()
	start := p.Current.PosStart

	if !p.Current.Matches(token.KEYWORD, token.FUN) {
		return res.Failure(expectedError(p.Current, "'FUN'"))
	}
	res.RegisterAdvancement()
	p.advance()

	var name string
	if p.Current.Type == token.IDENTIFIER {
		name, _ = p.Current.Literal.(string)
		res.RegisterAdvancement()
		p.advance()
	}

	if p.Current.Type != token.LPAREN {
		if name == "" {
			return res.Failure(expectedError(p.Current, "'(' or identifier"))
		}
		return res.Failure(expectedError(p.Current, "'('"))
	}
	res.RegisterAdvancement()
	p.advance()

	var argNames []string
	if p.Current.Type == token.IDENTIFIER {
		arg, _ := p.Current.Literal.(string)
		argNames = append(argNames, arg)
		res.RegisterAdvancement()
		p.advance()

		for p.Current.Type == token.COMMA {
			res.RegisterAdvancement()
			p.advance()
			if p.Current.Type != token.IDENTIFIER {
				return res.Failure(expectedError(p.Current, "identifier"))
			}
			arg, _ = p.Current.Literal.(string)
			argNames = append(argNames, arg)
			res.RegisterAdvancement()
			p.advance()
		}

		if p.Current.Type != token.RPAREN {
			return res.Failure(expectedError(p.Current, "',' or ')'"))
		}
	} else if p.Current.Type != token.RPAREN {
		return res.Failure(expectedError(p.Current, "identifier or ')'"))
	}
	res.RegisterAdvancement()
	p.advance()

	if p.Current.Type == token.ARROW {
		res.RegisterAdvancement()
		p.advance()

		body := res.Register(p.expr())
		if res.Error != nil {
			return res
		}
		return res.Success(ast.NewFuncDefNode(name, argNames, body, true, start, body.End()))
	}

	if p.Current.Type != token.NEWLINE {
		return res.Failure(expectedError(p.Current, "'->' or NEWLINE"))
	}
	res.RegisterAdvancement()
	p.advance()

	body := res.Register(p.statements())
	if res.Error != nil {
		return res
	}

	if !p.Current.Matches(token.KEYWORD, token.ENDF) {
		return res.Failure(expectedError(p.Current, "'ENDF'"))
	}
	end := p.Current.PosEnd
	res.RegisterAdvancement()
	p.advance()

	return res.Success(ast.NewFuncDefNode(name, argNames, body, false, start, end))
}
