package interp

import (
	"fmt"

	"github.com/techzen-lang/techzen/internal/ast"
	techerrors "github.com/techzen-lang/techzen/internal/errors"
	"github.com/techzen-lang/techzen/pkg/token"
)

// Eval walks node, dispatching on its concrete type, and returns the
// accumulated control-flow result (spec.md §5.4). It is the sole entry
// point recursive evaluation uses, mirroring the original interpreter's
// single `visit` dispatcher.
func Eval(node ast.Node, ctx *Context) *RTResult {
	switch n := node.(type) {
	case *ast.NumberNode:
		return evalNumber(n, ctx)
	case *ast.StringNode:
		return evalString(n, ctx)
	case *ast.ListNode:
		return evalList(n, ctx)
	case *ast.DictNode:
		return evalDict(n, ctx)
	case *ast.VarAccessNode:
		return evalVarAccess(n, ctx)
	case *ast.VarAssignNode:
		return evalVarAssign(n, ctx)
	case *ast.BinOpNode:
		return evalBinOp(n, ctx)
	case *ast.UnaryOpNode:
		return evalUnaryOp(n, ctx)
	case *ast.IfNode:
		return evalIf(n, ctx)
	case *ast.ForNode:
		return evalFor(n, ctx)
	case *ast.WhileNode:
		return evalWhile(n, ctx)
	case *ast.FuncDefNode:
		return evalFuncDef(n, ctx)
	case *ast.CallNode:
		return evalCall(n, ctx)
	case *ast.ReturnNode:
		return evalReturn(n, ctx)
	case *ast.ContinueNode:
		return NewRTResult().SuccessContinue()
	case *ast.BreakNode:
		return NewRTResult().SuccessBreak()
	case *ast.ClassNode:
		return evalClass(n, ctx)
	case *ast.TryNode:
		return evalTry(n, ctx)
	}
	panic(fmt.Sprintf("interp: no Eval case for %T", node))
}

func evalNumber(n *ast.NumberNode, ctx *Context) *RTResult {
	value := NewNumber(n.Token.Literal).SetContext(ctx).SetPos(n.Start(), n.End())
	return NewRTResult().Success(value)
}

func evalString(n *ast.StringNode, ctx *Context) *RTResult {
	lit, _ := n.Token.Literal.(string)
	value := NewString(lit).SetContext(ctx).SetPos(n.Start(), n.End())
	return NewRTResult().Success(value)
}

func evalList(n *ast.ListNode, ctx *Context) *RTResult {
	res := NewRTResult()
	elements := make([]Value, 0, len(n.Elements))
	for _, elNode := range n.Elements {
		el := res.Register(Eval(elNode, ctx))
		if res.ShouldReturn() {
			return res
		}
		elements = append(elements, el)
	}
	return res.Success(NewList(elements).SetContext(ctx).SetPos(n.Start(), n.End()))
}

func evalDict(n *ast.DictNode, ctx *Context) *RTResult {
	res := NewRTResult()
	var entries []DictEntry
	for i, keyNode := range n.Keys {
		key := res.Register(Eval(keyNode, ctx))
		if res.ShouldReturn() {
			return res
		}
		value := res.Register(Eval(n.Values[i], ctx))
		if res.ShouldReturn() {
			return res
		}

		overwritten := false
		for j, e := range entries {
			if keyEquals(e.Key, key) {
				entries[j].Value = value
				overwritten = true
				break
			}
		}
		if !overwritten {
			entries = append(entries, DictEntry{Key: key, Value: value})
		}
	}
	return res.Success(NewDict(entries).SetContext(ctx).SetPos(n.Start(), n.End()))
}

func evalVarAccess(n *ast.VarAccessNode, ctx *Context) *RTResult {
	res := NewRTResult()

	value, ok := ctx.Symbols.Get(n.Name)
	if !ok {
		return res.Failure(techerrors.NewRuntimeError(n.Start(), n.End(),
			fmt.Sprintf("'%s' is not defined", n.Name), ctx))
	}

	if n.Child != nil {
		memberCtx, err := memberContext(n, value, ctx)
		if err != nil {
			return res.Failure(err)
		}
		child := res.Register(Eval(n.Child, memberCtx))
		if res.Err != nil {
			return res
		}
		value = child
	}

	value = value.Copy().SetPos(n.Start(), n.End()).SetContext(ctx)
	return res.Success(value)
}

// memberContext opens the scope a dotted access's right-hand side
// resolves in: an Instance's own symbol table, or a Class's for static
// member lookup.
func memberContext(n *ast.VarAccessNode, value Value, ctx *Context) (*Context, error) {
	switch v := value.(type) {
	case *Instance:
		memberCtx := NewChildContext(v.ParentClass.Name, ctx, n.Start())
		memberCtx.Symbols = v.Symbols
		return memberCtx, nil
	case *Class:
		memberCtx := NewChildContext(v.Name, ctx, n.Start())
		memberCtx.Symbols = v.Symbols
		return memberCtx, nil
	default:
		return nil, techerrors.NewRuntimeError(n.Start(), n.End(), "Value must be instance of class or class", ctx)
	}
}

func evalVarAssign(n *ast.VarAssignNode, ctx *Context) *RTResult {
	res := NewRTResult()

	value := res.Register(Eval(n.Value, ctx))
	if res.ShouldReturn() {
		return res
	}

	if len(n.ExtraNames) > 0 {
		nd, ok := ctx.Symbols.Get(n.Name)
		if !ok {
			return res.Failure(techerrors.NewRuntimeError(n.Start(), n.End(),
				fmt.Sprintf("'%s' not defined", n.Name), ctx))
		}

		var prevSymbols *SymbolTable
		lastName := ""
		for i, name := range n.ExtraNames {
			symbols := symbolsOf(nd)
			if symbols == nil {
				return res.Failure(techerrors.NewRuntimeError(n.Start(), n.End(),
					"Value must be instance of class or class", ctx))
			}
			prevSymbols = symbols
			lastName = name

			next, ok := symbols.GetOwn(name)
			if !ok && i != len(n.ExtraNames)-1 {
				return res.Failure(techerrors.NewRuntimeError(n.Start(), n.End(),
					fmt.Sprintf("'%s' not defined", name), ctx))
			}
			nd = next
		}

		prevSymbols.Set(lastName, value)
		return res.Success(value)
	}

	ctx.Symbols.Set(n.Name, value)
	return res.Success(value)
}

// symbolsOf returns the symbol table a dotted assignment chain walks
// through nd, or nil if nd is not a Class or Instance.
func symbolsOf(nd Value) *SymbolTable {
	switch v := nd.(type) {
	case *Instance:
		return v.Symbols
	case *Class:
		return v.Symbols
	default:
		return nil
	}
}

func evalBinOp(n *ast.BinOpNode, ctx *Context) *RTResult {
	res := NewRTResult()

	left := res.Register(Eval(n.Left, ctx))
	if res.ShouldReturn() {
		return res
	}
	right := res.Register(Eval(n.Right, ctx))
	if res.ShouldReturn() {
		return res
	}

	var result Value
	var err error

	switch {
	case n.Op.Type == token.PLUS:
		result, err = left.AddedTo(right)
	case n.Op.Type == token.MINUS:
		result, err = left.SubbedBy(right)
	case n.Op.Type == token.MUL:
		result, err = left.MultedBy(right)
	case n.Op.Type == token.POW:
		result, err = left.PowOf(right)
	case n.Op.Type == token.MOD:
		result, err = left.ModBy(right)
	case n.Op.Type == token.DIV:
		result, err = left.DivedBy(right)
	case n.Op.Type == token.DFL:
		result, err = left.FloorOf(right)
	case n.Op.Type == token.EE:
		result, err = left.ComparisonEq(right)
	case n.Op.Type == token.NE:
		result, err = left.ComparisonNe(right)
	case n.Op.Type == token.LT:
		result, err = left.ComparisonLt(right)
	case n.Op.Type == token.GT:
		result, err = left.ComparisonGt(right)
	case n.Op.Type == token.LTE:
		result, err = left.ComparisonLte(right)
	case n.Op.Type == token.GTE:
		result, err = left.ComparisonGte(right)
	case n.Op.Matches(token.KEYWORD, token.AND):
		result, err = left.AndedBy(right)
	case n.Op.Matches(token.KEYWORD, token.OR):
		result, err = left.OredBy(right)
	default:
		err = techerrors.NewRuntimeError(n.Start(), n.End(), "Illegal operation", ctx)
	}

	if err != nil {
		return res.Failure(err)
	}
	return res.Success(result.SetPos(n.Start(), n.End()))
}

func evalUnaryOp(n *ast.UnaryOpNode, ctx *Context) *RTResult {
	res := NewRTResult()

	value := res.Register(Eval(n.Node, ctx))
	if res.ShouldReturn() {
		return res
	}

	var result Value
	var err error

	switch {
	case n.Op.Type == token.MINUS:
		result, err = value.MultedBy(NewNumber(int64(-1)))
	case n.Op.Matches(token.KEYWORD, token.NOT):
		result, err = value.Notted()
	default:
		result = value
	}

	if err != nil {
		return res.Failure(err)
	}
	return res.Success(result.SetPos(n.Start(), n.End()))
}

func evalIf(n *ast.IfNode, ctx *Context) *RTResult {
	res := NewRTResult()

	for _, c := range n.Cases {
		condValue := res.Register(Eval(c.Condition, ctx))
		if res.ShouldReturn() {
			return res
		}
		if condValue.IsTrue() {
			exprValue := res.Register(Eval(c.Body, ctx))
			if res.ShouldReturn() {
				return res
			}
			if c.ShouldReturnNull {
				return res.Success(NumberNull)
			}
			return res.Success(exprValue)
		}
	}

	if n.Else != nil {
		elseValue := res.Register(Eval(n.Else.Body, ctx))
		if res.ShouldReturn() {
			return res
		}
		if n.Else.ShouldReturnNull {
			return res.Success(NumberNull)
		}
		return res.Success(elseValue)
	}

	return res.Success(NumberNull)
}

func evalFor(n *ast.ForNode, ctx *Context) *RTResult {
	res := NewRTResult()
	var elements []Value

	startValue := res.Register(Eval(n.Start_, ctx))
	if res.ShouldReturn() {
		return res
	}
	endValue := res.Register(Eval(n.End_, ctx))
	if res.ShouldReturn() {
		return res
	}

	stepValue := Value(NewNumber(int64(1)))
	if n.Step != nil {
		stepValue = res.Register(Eval(n.Step, ctx))
		if res.ShouldReturn() {
			return res
		}
	}

	startNum, ok1 := startValue.(*Number)
	endNum, ok2 := endValue.(*Number)
	stepNum, ok3 := stepValue.(*Number)
	if !ok1 || !ok2 || !ok3 {
		return res.Failure(techerrors.NewRuntimeError(n.Start(), n.End(), "FOR bounds must be numbers", ctx))
	}

	i := asFloat(startNum.Value)
	end := asFloat(endNum.Value)
	step := asFloat(stepNum.Value)
	_, _, intLoop := bothInt(startNum.Value, stepNum.Value)

	condition := func() bool {
		if step >= 0 {
			return i < end
		}
		return i > end
	}

	for condition() {
		var loopVar any = i
		if intLoop {
			loopVar = int64(i)
		}
		ctx.Symbols.Set(n.VarName, NewNumber(loopVar))
		i += step

		value := res.Register(Eval(n.Body, ctx))
		if res.ShouldReturn() && !res.LoopShouldContinue && !res.LoopShouldBreak {
			return res
		}

		loopShouldContinue := res.LoopShouldContinue
		loopShouldBreak := res.LoopShouldBreak
		if loopShouldContinue {
			continue
		}
		if loopShouldBreak {
			break
		}

		elements = append(elements, value)
	}

	if n.ShouldReturnNull {
		return res.Success(NumberNull)
	}
	return res.Success(NewList(elements).SetContext(ctx).SetPos(n.Start(), n.End()))
}

func evalWhile(n *ast.WhileNode, ctx *Context) *RTResult {
	res := NewRTResult()
	var elements []Value

	for {
		condValue := res.Register(Eval(n.Condition, ctx))
		if res.ShouldReturn() {
			return res
		}
		if !condValue.IsTrue() {
			break
		}

		value := res.Register(Eval(n.Body, ctx))
		if res.ShouldReturn() && !res.LoopShouldContinue && !res.LoopShouldBreak {
			return res
		}

		loopShouldContinue := res.LoopShouldContinue
		loopShouldBreak := res.LoopShouldBreak
		if loopShouldContinue {
			continue
		}
		if loopShouldBreak {
			break
		}

		elements = append(elements, value)
	}

	if n.ShouldReturnNull {
		return res.Success(NumberNull)
	}
	return res.Success(NewList(elements).SetContext(ctx).SetPos(n.Start(), n.End()))
}

func evalFuncDef(n *ast.FuncDefNode, ctx *Context) *RTResult {
	res := NewRTResult()
	funcValue := NewFunction(n.Name, n.Body, n.ArgNames, n.ShouldAutoReturn).SetContext(ctx).SetPos(n.Start(), n.End())
	if n.Name != "" {
		ctx.Symbols.Set(n.Name, funcValue)
	}
	return res.Success(funcValue)
}

func evalCall(n *ast.CallNode, ctx *Context) *RTResult {
	res := NewRTResult()

	calleeValue := res.Register(Eval(n.Callee, ctx))
	if res.ShouldReturn() {
		return res
	}
	calleeValue = calleeValue.Copy().SetPos(n.Start(), n.End())

	args := make([]Value, 0, len(n.Args))
	for _, argNode := range n.Args {
		arg := res.Register(Eval(argNode, ctx))
		if res.ShouldReturn() {
			return res
		}
		args = append(args, arg)
	}

	returnValue := res.Register(calleeValue.Execute(args))
	if res.ShouldReturn() {
		return res
	}
	returnValue = returnValue.Copy().SetPos(n.Start(), n.End()).SetContext(ctx)
	return res.Success(returnValue)
}

func evalReturn(n *ast.ReturnNode, ctx *Context) *RTResult {
	res := NewRTResult()

	var value Value = NumberNull
	if n.Value != nil {
		value = res.Register(Eval(n.Value, ctx))
		if res.ShouldReturn() {
			return res
		}
	}

	return res.SuccessReturn(value)
}

func evalClass(n *ast.ClassNode, ctx *Context) *RTResult {
	res := NewRTResult()

	classCtx := NewChildContext(n.Name, ctx, n.Start())
	classCtx.Symbols = NewSymbolTable(ctx.Symbols)

	res.Register(Eval(n.Body, classCtx))
	if res.ShouldReturn() {
		return res
	}

	classValue := NewClass(n.Name, classCtx.Symbols).SetContext(ctx).SetPos(n.Start(), n.End())
	ctx.Symbols.Set(n.Name, classValue)
	return res.Success(classValue)
}

func evalTry(n *ast.TryNode, ctx *Context) *RTResult {
	res := NewRTResult()

	res.Register(Eval(n.TryBody, ctx))
	if res.ShouldReturn() {
		res.Register(Eval(n.ExceptBody, ctx))
		if res.ShouldReturn() {
			return res
		}
	}
	return res.Success(NumberNull)
}
