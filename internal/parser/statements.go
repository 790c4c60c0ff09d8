package parser

import (
	"github.com/techzen-lang/techzen/internal/ast"
	"github.com/techzen-lang/techzen/pkg/token"
)

// statements := NEWLINE* statement (NEWLINE+ statement)* NEWLINE*
func (p *Parser) statements() *Result {
	res := NewResult()
	var list []ast.Node
	posStart := p.Current.PosStart

	for p.Current.Type == token.NEWLINE {
		res.RegisterAdvancement()
		p.advance()
	}

	stmt := res.Register(p.statement())
	if res.Error != nil {
		return res
	}
	list = append(list, stmt)

	moreStatements := true
	for moreStatements {
		newlineCount := 0
		for p.Current.Type == token.NEWLINE {
			res.RegisterAdvancement()
			p.advance()
			newlineCount++
		}
		if newlineCount == 0 {
			moreStatements = false
			break
		}

		stmt = res.TryRegister(p.statement())
		if stmt == nil {
			p.reverse(res.ToReverseCount)
			moreStatements = false
			continue
		}
		list = append(list, stmt)
	}

	return res.Success(ast.NewListNode(list, posStart, p.Current.PosEnd))
}

// statement := 'RETURN' expr? | 'CONTINUE' | 'BREAK' | expr
func (p *Parser) statement() *Result {
	res := NewResult()
	posStart := p.Current.PosStart

	switch {
	case p.Current.Matches(token.KEYWORD, token.RETURN):
		res.RegisterAdvancement()
		p.advance()

		var value ast.Node
		exprResult := p.expr()
		if v := res.TryRegister(exprResult); v != nil {
			value = v
		} else {
			p.reverse(res.ToReverseCount)
		}
		return res.Success(ast.NewReturnNode(value, posStart, p.Current.PosStart))

	case p.Current.Matches(token.KEYWORD, token.CONTINUE):
		res.RegisterAdvancement()
		p.advance()
		return res.Success(ast.NewContinueNode(posStart, p.Current.PosStart))

	case p.Current.Matches(token.KEYWORD, token.BREAK):
		res.RegisterAdvancement()
		p.advance()
		return res.Success(ast.NewBreakNode(posStart, p.Current.PosStart))
	}

	expr := res.Register(p.expr())
	if res.Error != nil {
		return res.Failure(expectedError(p.Current,
			"'RETURN', 'CONTINUE', 'BREAK', 'VAR', 'IF', 'FOR', 'WHILE', 'FUN', 'CLASS', 'TRY', int, float, identifier, '+', '-', '(', '[', '{' or 'NOT'"))
	}
	return res.Success(expr)
}
