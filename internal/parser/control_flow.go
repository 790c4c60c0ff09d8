package parser

import (
	"github.com/techzen-lang/techzen/internal/ast"
	"github.com/techzen-lang/techzen/pkg/token"
)

// list_expr := '[' (expr (',' expr)*)? ']'
func (p *Parser) listExpr() *Result {
	res := NewResult()
	start := p.Current.PosStart

	if p.Current.Type != token.LSQUARE {
		return res.Failure(expectedError(p.Current, "'['"))
	}
	res.RegisterAdvancement()
	p.advance()

	var elements []ast.Node
	if p.Current.Type != token.RSQUARE {
		el := res.Register(p.expr())
		if res.Error != nil {
			return res.Failure(expectedError(p.Current,
				"']', 'VAR', int, float, identifier, '+', '-', '(', '[', '{' or 'NOT'"))
		}
		elements = append(elements, el)

		for p.Current.Type == token.COMMA {
			res.RegisterAdvancement()
			p.advance()
			el = res.Register(p.expr())
			if res.Error != nil {
				return res
			}
			elements = append(elements, el)
		}
	}

	if p.Current.Type != token.RSQUARE {
		return res.Failure(expectedError(p.Current, "',' or ']'"))
	}
	end := p.Current.PosEnd
	res.RegisterAdvancement()
	p.advance()

	return res.Success(ast.NewListNode(elements, start, end))
}

// dict_expr := '{' (expr ':' expr (',' expr ':' expr)*)? '}'
func (p *Parser) dictExpr() *Result {
	res := NewResult()
	start := p.Current.PosStart

	if p.Current.Type != token.LCURLY {
		return res.Failure(expectedError(p.Current, "'{'"))
	}
	res.RegisterAdvancement()
	p.advance()

	var keys, values []ast.Node
	if p.Current.Type != token.RCURLY {
		k := res.Register(p.expr())
		if res.Error != nil {
			return res.Failure(expectedError(p.Current,
				"'}', 'VAR', int, float, identifier, '+', '-', '(', '[', '{' or 'NOT'"))
		}
		if p.Current.Type != token.COLON {
			return res.Failure(expectedError(p.Current, "':'"))
		}
		res.RegisterAdvancement()
		p.advance()
		v := res.Register(p.expr())
		if res.Error != nil {
			return res
		}
		keys, values = append(keys, k), append(values, v)

		for p.Current.Type == token.COMMA {
			res.RegisterAdvancement()
			p.advance()
			k = res.Register(p.expr())
			if res.Error != nil {
				return res
			}
			if p.Current.Type != token.COLON {
				return res.Failure(expectedError(p.Current, "':'"))
			}
			res.RegisterAdvancement()
			p.advance()
			v = res.Register(p.expr())
			if res.Error != nil {
				return res
			}
			keys, values = append(keys, k), append(values, v)
		}
	}

	if p.Current.Type != token.RCURLY {
		return res.Failure(expectedError(p.Current, "',' or '}'"))
	}
	end := p.Current.PosEnd
	res.RegisterAdvancement()
	p.advance()

	return res.Success(ast.NewDictNode(keys, values, start, end))
}

// if_expr := 'IF' expr 'THEN' (statement if_expr_b|if_expr_c?) | NEWLINE statements if_expr_b_or_c
func (p *Parser) ifExpr() *Result {
	res := NewResult()
	start := p.Current.PosStart

	cases, elseCase, err := p.ifCasesFrom(token.IF)
	if err != nil {
		res.Error = err
		return res
	}
	return res.Success(ast.NewIfNode(cases, elseCase, start, p.Current.PosStart))
}

// ifCasesFrom parses a single IF/ELIF header (keyed by kw) followed by its
// body, then recurses through any ELIF/ELSE tail, mirroring the Python
// parser's if_expr/if_expr_b/if_expr_c/if_expr_b_or_c split.
func (p *Parser) ifCasesFrom(kw token.Keyword) ([]ast.IfCase, *ast.ElseCase, error) {
	res := NewResult()

	if !p.Current.Matches(token.KEYWORD, kw) {
		return nil, nil, expectedError(p.Current, "'"+string(kw)+"'")
	}
	res.RegisterAdvancement()
	p.advance()

	condition := res.Register(p.expr())
	if res.Error != nil {
		return nil, nil, res.Error
	}

	if !p.Current.Matches(token.KEYWORD, token.THEN) {
		return nil, nil, expectedError(p.Current, "'THEN'")
	}
	res.RegisterAdvancement()
	p.advance()

	var cases []ast.IfCase
	var elseCase *ast.ElseCase

	if p.Current.Type == token.NEWLINE {
		res.RegisterAdvancement()
		p.advance()

		body := res.Register(p.statements())
		if res.Error != nil {
			return nil, nil, res.Error
		}
		cases = append(cases, ast.IfCase{Condition: condition, Body: body, ShouldReturnNull: true})

		if p.Current.Matches(token.KEYWORD, token.END) {
			res.RegisterAdvancement()
			p.advance()
		} else {
			moreCases, moreElse, err := p.ifExprBOrC()
			if err != nil {
				return nil, nil, err
			}
			cases = append(cases, moreCases...)
			elseCase = moreElse
		}
		return cases, elseCase, nil
	}

	body := res.Register(p.statement())
	if res.Error != nil {
		return nil, nil, res.Error
	}
	cases = append(cases, ast.IfCase{Condition: condition, Body: body, ShouldReturnNull: false})

	moreCases, moreElse, err := p.ifExprBOrC()
	if err != nil {
		return nil, nil, err
	}
	cases = append(cases, moreCases...)
	elseCase = moreElse

	return cases, elseCase, nil
}

func (p *Parser) ifExprBOrC() ([]ast.IfCase, *ast.ElseCase, error) {
	if p.Current.Matches(token.KEYWORD, token.ELIF) {
		return p.ifCasesFrom(token.ELIF)
	}
	return p.ifExprC()
}

func (p *Parser) ifExprC() ([]ast.IfCase, *ast.ElseCase, error) {
	res := NewResult()
	if !p.Current.Matches(token.KEYWORD, token.ELSE) {
		return nil, nil, nil
	}
	res.RegisterAdvancement()
	p.advance()

	if p.Current.Type == token.NEWLINE {
		res.RegisterAdvancement()
		p.advance()

		body := res.Register(p.statements())
		if res.Error != nil {
			return nil, nil, res.Error
		}
		if !p.Current.Matches(token.KEYWORD, token.END) {
			return nil, nil, expectedError(p.Current, "'END'")
		}
		res.RegisterAdvancement()
		p.advance()
		return nil, &ast.ElseCase{Body: body, ShouldReturnNull: true}, nil
	}

	body := res.Register(p.statement())
	if res.Error != nil {
		return nil, nil, res.Error
	}
	return nil, &ast.ElseCase{Body: body, ShouldReturnNull: false}, nil
}

// for_expr := 'FOR' IDENTIFIER '=' expr 'TO' expr ('STEP' expr)? 'THEN'
//            statement | NEWLINE statements 'END'
func (p *Parser) forExpr() *Result {
	res := NewResult()
	start := p.Current.PosStart

	if !p.Current.Matches(token.KEYWORD, token.FOR) {
		return res.Failure(expectedError(p.Current, "'FOR'"))
	}
	res.RegisterAdvancement()
	p.advance()

	if p.Current.Type != token.IDENTIFIER {
		return res.Failure(expectedError(p.Current, "identifier"))
	}
	varName, _ := p.Current.Literal.(string)
	res.RegisterAdvancement()
	p.advance()

	if p.Current.Type != token.EQ {
		return res.Failure(expectedError(p.Current, "'='"))
	}
	res.RegisterAdvancement()
	p.advance()

	startValue := res.Register(p.expr())
	if res.Error != nil {
		return res
	}

	if !p.Current.Matches(token.KEYWORD, token.TO) {
		return res.Failure(expectedError(p.Current, "'TO'"))
	}
	res.RegisterAdvancement()
	p.advance()

	endValue := res.Register(p.expr())
	if res.Error != nil {
		return res
	}

	var step ast.Node
	if p.Current.Matches(token.KEYWORD, token.STEP) {
		res.RegisterAdvancement()
		p.advance()
		step = res.Register(p.expr())
		if res.Error != nil {
			return res
		}
	}

	if !p.Current.Matches(token.KEYWORD, token.THEN) {
		return res.Failure(expectedError(p.Current, "'THEN'"))
	}
	res.RegisterAdvancement()
	p.advance()

	if p.Current.Type == token.NEWLINE {
		res.RegisterAdvancement()
		p.advance()

		body := res.Register(p.statements())
		if res.Error != nil {
			return res
		}
		if !p.Current.Matches(token.KEYWORD, token.END) {
			return res.Failure(expectedError(p.Current, "'END'"))
		}
		end := p.Current.PosEnd
		res.RegisterAdvancement()
		p.advance()
		return res.Success(ast.NewForNode(varName, startValue, endValue, step, body, true, start, end))
	}

	body := res.Register(p.statement())
	if res.Error != nil {
		return res
	}
	return res.Success(ast.NewForNode(varName, startValue, endValue, step, body, false, start, body.End()))
}

// while_expr := 'WHILE' expr 'THEN' statement | NEWLINE statements 'END'
func (p *Parser) whileExpr() *Result {
	res := NewResult()
	start := p.Current.PosStart

	if !p.Current.Matches(token.KEYWORD, token.WHILE) {
		return res.Failure(expectedError(p.Current, "'WHILE'"))
	}
	res.RegisterAdvancement()
	p.advance()

	condition := res.Register(p.expr())
	if res.Error != nil {
		return res
	}

	if !p.Current.Matches(token.KEYWORD, token.THEN) {
		return res.Failure(expectedError(p.Current, "'THEN'"))
	}
	res.RegisterAdvancement()
	p.advance()

	if p.Current.Type == token.NEWLINE {
		res.RegisterAdvancement()
		p.advance()

		body := res.Register(p.statements())
		if res.Error != nil {
			return res
		}
		if !p.Current.Matches(token.KEYWORD, token.END) {
			return res.Failure(expectedError(p.Current, "'END'"))
		}
		end := p.Current.PosEnd
		res.RegisterAdvancement()
		p.advance()
		return res.Success(ast.NewWhileNode(condition, body, true, start, end))
	}

	body := res.Register(p.statement())
	if res.Error != nil {
		return res
	}
	return res.Success(ast.NewWhileNode(condition, body, false, start, body.End()))
}

// try_expr := 'TRY' (statement | NEWLINE statements 'END') 'EXCEPT' (statement | NEWLINE statements 'END')
func (p *Parser) tryExpr() *Result {
	res := NewResult()
	start := p.Current.PosStart

	if !p.Current.Matches(token.KEYWORD, token.TRY) {
		return res.Failure(expectedError(p.Current, "'TRY'"))
	}
	res.RegisterAdvancement()
	p.advance()

	tryBody := res.Register(p.blockOrStatement())
	if res.Error != nil {
		return res
	}

	if !p.Current.Matches(token.KEYWORD, token.EXCEPT) {
		return res.Failure(expectedError(p.Current, "'EXCEPT'"))
	}
	res.RegisterAdvancement()
	p.advance()

	exceptBody := res.Register(p.blockOrStatement())
	if res.Error != nil {
		return res
	}

	return res.Success(ast.NewTryNode(tryBody, exceptBody, start, exceptBody.End()))
}

// blockOrStatement parses either a NEWLINE statements 'END' block or a
// single inline statement, a shape shared by try/except bodies.
func (p *Parser) blockOrStatement() *Result {
	res := NewResult()

	if p.Current.Type == token.NEWLINE {
		res.RegisterAdvancement()
		p.advance()

		body := res.Register(p.statements())
		if res.Error != nil {
			return res
		}
		if !p.Current.Matches(token.KEYWORD, token.END) {
			return res.Failure(expectedError(p.Current, "'END'"))
		}
		res.RegisterAdvancement()
		p.advance()
		return res.Success(body)
	}

	body := res.Register(p.statement())
	if res.Error != nil {
		return res
	}
	return res.Success(body)
}
