package interp

import (
	"fmt"

	"github.com/techzen-lang/techzen/internal/ast"
	techerrors "github.com/techzen-lang/techzen/internal/errors"
)

// Function is a user-defined TechZen function: either auto-returning
// (`-> expr`) or requiring explicit RETURN statements in its body
// (spec.md §5.3, §5.4).
type Function struct {
	Base
	Name             string
	Body             ast.Node
	ArgNames         []string
	ShouldAutoReturn bool
}

// NewFunction builds a function value. name is "<anonymous>" when the
// function literal carries no name.
func NewFunction(name string, body ast.Node, argNames []string, shouldAutoReturn bool) *Function {
	if name == "" {
		name = "<anonymous>"
	}
	f := &Function{Name: name, Body: body, ArgNames: argNames, ShouldAutoReturn: shouldAutoReturn}
	f.self = f
	return f
}

func (f *Function) String() string { return fmt.Sprintf("<function %s>", f.Name) }

func (f *Function) Copy() Value {
	c := NewFunction(f.Name, f.Body, f.ArgNames, f.ShouldAutoReturn)
	c.SetPos(f.posStart, f.posEnd)
	c.SetContext(f.ctx)
	return c
}

// generateNewContext opens a fresh call frame chained to the function's
// defining context, entered at the function's own position.
func (f *Function) generateNewContext() *Context {
	newCtx := NewChildContext(f.Name, f.ctx, f.posStart)
	var parentSymbols *SymbolTable
	if newCtx.parent != nil {
		parentSymbols = newCtx.parent.Symbols
	}
	newCtx.Symbols = NewSymbolTable(parentSymbols)
	return newCtx
}

func (f *Function) checkAndPopulateArgs(argNames []string, args []Value, execCtx *Context) *RTResult {
	res := NewRTResult()
	if len(args) > len(argNames) {
		return res.Failure(techerrors.NewRuntimeError(f.posStart, f.posEnd,
			fmt.Sprintf("%d too many args passed into '%s'", len(args)-len(argNames), f.Name), f.ctx))
	}
	if len(args) < len(argNames) {
		return res.Failure(techerrors.NewRuntimeError(f.posStart, f.posEnd,
			fmt.Sprintf("%d too few args passed into '%s'", len(argNames)-len(args), f.Name), f.ctx))
	}
	for i, name := range argNames {
		args[i].SetContext(execCtx)
		execCtx.Symbols.Set(name, args[i])
	}
	return res.Success(nil)
}

func (f *Function) Execute(args []Value) *RTResult {
	res := NewRTResult()
	execCtx := f.generateNewContext()

	res.Register(f.checkAndPopulateArgs(f.ArgNames, args, execCtx))
	if res.ShouldReturn() {
		return res
	}

	value := res.Register(Eval(f.Body, execCtx))
	if res.ShouldReturn() && res.FuncReturnValue == nil {
		return res
	}

	var retValue Value
	switch {
	case f.ShouldAutoReturn:
		retValue = value
	case res.FuncReturnValue != nil:
		retValue = res.FuncReturnValue
	default:
		retValue = NumberNull
	}

	return res.Success(retValue)
}
