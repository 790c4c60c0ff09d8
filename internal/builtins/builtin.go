package builtins

import (
	"fmt"

	techerrors "github.com/techzen-lang/techzen/internal/errors"
	"github.com/techzen-lang/techzen/internal/interp"
)

// handler implements one built-in's body once its arguments have been
// bound into execCtx's symbol table by checkAndPopulateArgs, mirroring
// BuiltInFunction.execute's method_name = f"execute_{self.name}" dispatch.
// It receives the function itself so it can report errors at the call
// site's position, the same way execute_* methods reach back to self.pos_start.
type handler func(b *BuiltInFunction, execCtx *interp.Context) *interp.RTResult

// BuiltInFunction is a native TechZen function: a fixed name, fixed
// argument-name list, and a Go handler closure in place of an AST body
// (spec.md §5.6; original_source/TechZen/types/builtin_function_.py).
type BuiltInFunction struct {
	interp.Base
	Name     string
	ArgNames []string
	run      handler
}

func newBuiltIn(name string, argNames []string, run handler) *BuiltInFunction {
	b := &BuiltInFunction{Name: name, ArgNames: argNames, run: run}
	b.SetSelf(b)
	return b
}

func (b *BuiltInFunction) String() string { return fmt.Sprintf("<built-in function %s>", b.Name) }

func (b *BuiltInFunction) Copy() interp.Value {
	c := newBuiltIn(b.Name, b.ArgNames, b.run)
	c.SetPos(b.PosStart(), b.PosEnd())
	c.SetContext(b.Ctx())
	return c
}

// Execute binds args to ArgNames in a fresh child context and runs the
// handler, following the same check-populate-run shape as
// interp.Function.Execute.
func (b *BuiltInFunction) Execute(args []interp.Value) *interp.RTResult {
	res := interp.NewRTResult()
	execCtx := interp.NewChildContext(b.Name, b.Ctx(), b.PosStart())
	var parentSymbols *interp.SymbolTable
	if b.Ctx() != nil {
		parentSymbols = b.Ctx().Symbols
	}
	execCtx.Symbols = interp.NewSymbolTable(parentSymbols)

	res.Register(checkAndPopulateArgs(b, b.ArgNames, args, execCtx))
	if res.ShouldReturn() {
		return res
	}

	value := res.Register(b.run(b, execCtx))
	if res.ShouldReturn() {
		return res
	}
	return res.Success(value)
}

func checkAndPopulateArgs(b *BuiltInFunction, argNames []string, args []interp.Value, execCtx *interp.Context) *interp.RTResult {
	res := interp.NewRTResult()
	if len(args) > len(argNames) {
		return res.Failure(techerrors.NewRuntimeError(b.PosStart(), b.PosEnd(),
			fmt.Sprintf("%d too many args passed into '%s'", len(args)-len(argNames), b.Name), b.Ctx()))
	}
	if len(args) < len(argNames) {
		return res.Failure(techerrors.NewRuntimeError(b.PosStart(), b.PosEnd(),
			fmt.Sprintf("%d too few args passed into '%s'", len(argNames)-len(args), b.Name), b.Ctx()))
	}
	for i, name := range argNames {
		args[i].SetContext(execCtx)
		execCtx.Symbols.Set(name, args[i])
	}
	return res.Success(nil)
}
