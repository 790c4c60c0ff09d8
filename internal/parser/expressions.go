package parser

import (
	"github.com/techzen-lang/techzen/internal/ast"
	"github.com/techzen-lang/techzen/pkg/token"
)

// expr := 'VAR' IDENTIFIER ('.' IDENTIFIER)* '=' expr
//        | comp_expr (('AND'|'OR') comp_expr)*
//
// The source grammar lists AND twice where one instance should read OR
// (spec.md §9); both keywords are recognized at this precedence level.
func (p *Parser) expr() *Result {
	res := NewResult()

	if p.Current.Matches(token.KEYWORD, token.VAR) {
		res.RegisterAdvancement()
		p.advance()

		if p.Current.Type != token.IDENTIFIER {
			return res.Failure(expectedError(p.Current, "identifier"))
		}
		name, _ := p.Current.Literal.(string)
		start := p.Current.PosStart
		res.RegisterAdvancement()
		p.advance()

		var extraNames []string
		for p.Current.Type == token.DOT {
			res.RegisterAdvancement()
			p.advance()
			if p.Current.Type != token.IDENTIFIER {
				return res.Failure(expectedError(p.Current, "identifier"))
			}
			extra, _ := p.Current.Literal.(string)
			extraNames = append(extraNames, extra)
			res.RegisterAdvancement()
			p.advance()
		}

		if p.Current.Type != token.EQ {
			return res.Failure(expectedError(p.Current, "'='"))
		}
		res.RegisterAdvancement()
		p.advance()

		value := res.Register(p.expr())
		if res.Error != nil {
			return res
		}
		return res.Success(ast.NewVarAssignNode(name, value, extraNames, start, value.End()))
	}

	left := res.Register(p.compExpr())
	if res.Error != nil {
		return res.Failure(expectedError(p.Current,
			"'VAR', int, float, identifier, '+', '-', '(', '[', '{' or 'NOT'"))
	}

	for p.Current.Matches(token.KEYWORD, token.AND) || p.Current.Matches(token.KEYWORD, token.OR) {
		opTok := p.Current
		res.RegisterAdvancement()
		p.advance()
		right := res.Register(p.compExpr())
		if res.Error != nil {
			return res
		}
		left = ast.NewBinOpNode(left, opTok, right)
	}

	return res.Success(left)
}

// comp_expr := 'NOT' comp_expr | arith_expr (('=='|'!='|'<'|'>'|'<='|'>=') arith_expr)*
func (p *Parser) compExpr() *Result {
	res := NewResult()

	if p.Current.Matches(token.KEYWORD, token.NOT) {
		opTok := p.Current
		res.RegisterAdvancement()
		p.advance()

		node := res.Register(p.compExpr())
		if res.Error != nil {
			return res
		}
		return res.Success(ast.NewUnaryOpNode(opTok, node))
	}

	left := res.Register(p.arithExpr())
	if res.Error != nil {
		return res.Failure(expectedError(p.Current,
			"int, float, identifier, '+', '-', '(', '[', '{' or 'NOT'"))
	}

	for isComparisonOp(p.Current.Type) {
		opTok := p.Current
		res.RegisterAdvancement()
		p.advance()
		right := res.Register(p.arithExpr())
		if res.Error != nil {
			return res
		}
		left = ast.NewBinOpNode(left, opTok, right)
	}

	return res.Success(left)
}

func isComparisonOp(t token.Type) bool {
	switch t {
	case token.EE, token.NE, token.LT, token.GT, token.LTE, token.GTE:
		return true
	}
	return false
}

// arith_expr := term (('+'|'-') term)*
func (p *Parser) arithExpr() *Result {
	return p.binOpLeft(p.term, token.PLUS, token.MINUS)
}

// term := factor (('*'|'/'|'%'|'//') factor)*
func (p *Parser) term() *Result {
	return p.binOpLeft(p.factor, token.MUL, token.DIV, token.MOD, token.DFL)
}

// binOpLeft implements a left-associative binary-operator level: operand
// (OP operand)* where OP is any of ops.
func (p *Parser) binOpLeft(operand func() *Result, ops ...token.Type) *Result {
	res := NewResult()
	left := res.Register(operand())
	if res.Error != nil {
		return res
	}

	for containsType(ops, p.Current.Type) {
		opTok := p.Current
		res.RegisterAdvancement()
		p.advance()
		right := res.Register(operand())
		if res.Error != nil {
			return res
		}
		left = ast.NewBinOpNode(left, opTok, right)
	}

	return res.Success(left)
}

func containsType(ops []token.Type, t token.Type) bool {
	for _, op := range ops {
		if op == t {
			return true
		}
	}
	return false
}

// factor := ('+'|'-') factor | power
func (p *Parser) factor() *Result {
	res := NewResult()
	tok := p.Current

	if tok.Type == token.PLUS || tok.Type == token.MINUS {
		res.RegisterAdvancement()
		p.advance()
		node := res.Register(p.factor())
		if res.Error != nil {
			return res
		}
		return res.Success(ast.NewUnaryOpNode(tok, node))
	}

	return p.power()
}

// power := call ('^' factor)*
//
// '^' is right-associative: its right side recurses through factor, which
// allows another '^' to chain.
func (p *Parser) power() *Result {
	res := NewResult()
	left := res.Register(p.call())
	if res.Error != nil {
		return res
	}

	if p.Current.Type == token.POW {
		opTok := p.Current
		res.RegisterAdvancement()
		p.advance()
		right := res.Register(p.factor())
		if res.Error != nil {
			return res
		}
		left = ast.NewBinOpNode(left, opTok, right)
	}

	return res.Success(left)
}

// call := atom ('.' call)? ('(' (expr (',' expr)*)? ')')?
func (p *Parser) call() *Result {
	res := NewResult()
	atomNode := res.Register(p.atom())
	if res.Error != nil {
		return res
	}

	if accessNode, ok := atomNode.(*ast.VarAccessNode); ok && p.Current.Type == token.DOT {
		res.RegisterAdvancement()
		p.advance()
		child := res.Register(p.call())
		if res.Error != nil {
			return res
		}
		accessNode.Child = child
		accessNode.PosEnd = child.End()
		atomNode = accessNode
	}

	if p.Current.Type != token.LPAREN {
		return res.Success(atomNode)
	}

	res.RegisterAdvancement()
	p.advance()

	var args []ast.Node
	if p.Current.Type != token.RPAREN {
		arg := res.Register(p.expr())
		if res.Error != nil {
			return res.Failure(expectedError(p.Current,
				"')', 'VAR', int, float, identifier, '+', '-', '(', '[', '{' or 'NOT'"))
		}
		args = append(args, arg)

		for p.Current.Type == token.COMMA {
			res.RegisterAdvancement()
			p.advance()
			arg = res.Register(p.expr())
			if res.Error != nil {
				return res
			}
			args = append(args, arg)
		}
	}

	if p.Current.Type != token.RPAREN {
		return res.Failure(expectedError(p.Current, "',' or ')'"))
	}
	end := p.Current.PosEnd
	res.RegisterAdvancement()
	p.advance()

	return res.Success(ast.NewCallNode(atomNode, args, end))
}

// atom := INT|FLOAT|STRING|IDENTIFIER
//        | '(' expr ')' | list_expr | dict_expr
//        | if_expr | for_expr | while_expr | func_def | class_node | try_expr
func (p *Parser) atom() *Result {
	res := NewResult()
	tok := p.Current

	switch {
	case tok.Type == token.INT || tok.Type == token.FLOAT:
		res.RegisterAdvancement()
		p.advance()
		return res.Success(ast.NewNumberNode(tok))

	case tok.Type == token.STRING:
		res.RegisterAdvancement()
		p.advance()
		return res.Success(ast.NewStringNode(tok))

	case tok.Type == token.IDENTIFIER:
		name, _ := tok.Literal.(string)
		res.RegisterAdvancement()
		p.advance()

		var child ast.Node
		if p.Current.Type == token.DOT {
			res.RegisterAdvancement()
			p.advance()
			child = res.Register(p.call())
			if res.Error != nil {
				return res
			}
		}
		end := tok.PosEnd
		if child != nil {
			end = child.End()
		}
		return res.Success(ast.NewVarAccessNode(name, tok, child, end))

	case tok.Type == token.LPAREN:
		res.RegisterAdvancement()
		p.advance()
		expr := res.Register(p.expr())
		if res.Error != nil {
			return res
		}
		if p.Current.Type != token.RPAREN {
			return res.Failure(expectedError(p.Current, "')'"))
		}
		res.RegisterAdvancement()
		p.advance()
		return res.Success(expr)

	case tok.Type == token.LSQUARE:
		list := res.Register(p.listExpr())
		if res.Error != nil {
			return res
		}
		return res.Success(list)

	case tok.Type == token.LCURLY:
		dict := res.Register(p.dictExpr())
		if res.Error != nil {
			return res
		}
		return res.Success(dict)

	case tok.Matches(token.KEYWORD, token.IF):
		ifNode := res.Register(p.ifExpr())
		if res.Error != nil {
			return res
		}
		return res.Success(ifNode)

	case tok.Matches(token.KEYWORD, token.FOR):
		forNode := res.Register(p.forExpr())
		if res.Error != nil {
			return res
		}
		return res.Success(forNode)

	case tok.Matches(token.KEYWORD, token.WHILE):
		whileNode := res.Register(p.whileExpr())
		if res.Error != nil {
			return res
		}
		return res.Success(whileNode)

	case tok.Matches(token.KEYWORD, token.FUN):
		funcNode := res.Register(p.funcDef())
		if res.Error != nil {
			return res
		}
		return res.Success(funcNode)

	case tok.Matches(token.KEYWORD, token.CLASS):
		classNode := res.Register(p.classDef())
		if res.Error != nil {
			return res
		}
		return res.Success(classNode)

	case tok.Matches(token.KEYWORD, token.TRY):
		tryNode := res.Register(p.tryExpr())
		if res.Error != nil {
			return res
		}
		return res.Success(tryNode)
	}

	return res.Failure(expectedError(tok,
		"int, float, identifier, '+', '-', '(', '[', '{', 'IF', 'FOR', 'WHILE', 'FUN', 'CLASS', 'TRY' or 'NOT'"))
}
