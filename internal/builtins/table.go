package builtins

import (
	"strconv"
	"strings"

	techerrors "github.com/techzen-lang/techzen/internal/errors"
	"github.com/techzen-lang/techzen/internal/interp"
)

// Env bundles the collaborators a handful of built-ins need beyond their
// bound arguments: console I/O for print/input/clear, and script loading
// plus recursive execution for run. A program that never calls those
// built-ins never touches these fields.
type Env struct {
	IO     IOHost
	Loader SourceLoader
	Run    RunScript
}

func argErr(b *BuiltInFunction, msg string) *interp.RTResult {
	return interp.NewRTResult().Failure(techerrors.NewRuntimeError(b.PosStart(), b.PosEnd(), msg, b.Ctx()))
}

func wantArg(ctx *interp.Context, name string) interp.Value {
	v, _ := ctx.Symbols.Get(name)
	return v
}

// All returns every built-in function bound to env, ready for insertion
// into a root symbol table.
func All(env *Env) []*BuiltInFunction {
	return []*BuiltInFunction{
		newBuiltIn("print", []string{"value"}, func(b *BuiltInFunction, ctx *interp.Context) *interp.RTResult {
			env.IO.WriteLine(wantArg(ctx, "value").String())
			return interp.NewRTResult().Success(interp.NumberNull)
		}),
		newBuiltIn("print_ret", []string{"value"}, func(b *BuiltInFunction, ctx *interp.Context) *interp.RTResult {
			return interp.NewRTResult().Success(interp.NewString(wantArg(ctx, "value").String()))
		}),
		newBuiltIn("input", []string{"value"}, func(b *BuiltInFunction, ctx *interp.Context) *interp.RTResult {
			prompt := ""
			if v := wantArg(ctx, "value"); v != nil {
				prompt = v.String()
			}
			return interp.NewRTResult().Success(interp.NewString(env.IO.ReadLine(prompt)))
		}),
		newBuiltIn("input_int", []string{"value"}, func(b *BuiltInFunction, ctx *interp.Context) *interp.RTResult {
			prompt := ""
			if v := wantArg(ctx, "value"); v != nil {
				prompt = v.String()
			}
			for {
				text := env.IO.ReadLine(prompt)
				n, err := strconv.ParseInt(text, 10, 64)
				if err == nil {
					return interp.NewRTResult().Success(interp.NewNumber(n))
				}
				env.IO.WriteLine("'" + text + "' must be an integer. Try again!")
			}
		}),
		newBuiltIn("clear", nil, func(b *BuiltInFunction, ctx *interp.Context) *interp.RTResult {
			env.IO.Clear()
			return interp.NewRTResult().Success(interp.NumberNull)
		}),
		typeCheckBuiltIn("is_number", func(v interp.Value) bool { _, ok := v.(*interp.Number); return ok }),
		typeCheckBuiltIn("is_string", func(v interp.Value) bool { _, ok := v.(*interp.String); return ok }),
		typeCheckBuiltIn("is_list", func(v interp.Value) bool { _, ok := v.(*interp.List); return ok }),
		typeCheckBuiltIn("is_function", func(v interp.Value) bool {
			switch v.(type) {
			case *interp.Function, *BuiltInFunction:
				return true
			default:
				return false
			}
		}),
		newBuiltIn("append", []string{"list", "value"}, func(b *BuiltInFunction, ctx *interp.Context) *interp.RTResult {
			list, ok := wantArg(ctx, "list").(*interp.List)
			if !ok {
				return argErr(b, "First argument must be list")
			}
			list.Elements = append(list.Elements, wantArg(ctx, "value"))
			return interp.NewRTResult().Success(interp.NumberNull)
		}),
		newBuiltIn("pop", []string{"list", "index"}, func(b *BuiltInFunction, ctx *interp.Context) *interp.RTResult {
			list, ok := wantArg(ctx, "list").(*interp.List)
			if !ok {
				return argErr(b, "First argument must be list")
			}
			index, ok := wantArg(ctx, "index").(*interp.Number)
			if !ok {
				return argErr(b, "Second argument must be number")
			}
			idx, ok := intIndex(index)
			if !ok || idx < 0 || idx >= len(list.Elements) {
				return argErr(b, "Element at this index could not be removed from list because index is out of bounds")
			}
			element := list.Elements[idx]
			list.Elements = append(list.Elements[:idx], list.Elements[idx+1:]...)
			return interp.NewRTResult().Success(element)
		}),
		newBuiltIn("extend", []string{"listA", "listB"}, func(b *BuiltInFunction, ctx *interp.Context) *interp.RTResult {
			listA, ok := wantArg(ctx, "listA").(*interp.List)
			if !ok {
				return argErr(b, "First argument must be list")
			}
			listB, ok := wantArg(ctx, "listB").(*interp.List)
			if !ok {
				return argErr(b, "Second argument must be list")
			}
			listA.Elements = append(listA.Elements, listB.Elements...)
			return interp.NewRTResult().Success(interp.NumberNull)
		}),
		newBuiltIn("update_list", []string{"list", "index", "replacement"}, func(b *BuiltInFunction, ctx *interp.Context) *interp.RTResult {
			list, ok := wantArg(ctx, "list").(*interp.List)
			if !ok {
				return argErr(b, "First argument must be list")
			}
			index, ok := wantArg(ctx, "index").(*interp.Number)
			if !ok {
				return argErr(b, "Second argument must be number")
			}
			idx, ok := intIndex(index)
			if !ok || idx < 0 || idx >= len(list.Elements) {
				return argErr(b, "Index is out of bounds")
			}
			updated := append([]interp.Value(nil), list.Elements...)
			updated[idx] = wantArg(ctx, "replacement")
			return interp.NewRTResult().Success(interp.NewList(updated))
		}),
		newBuiltIn("len", []string{"list"}, func(b *BuiltInFunction, ctx *interp.Context) *interp.RTResult {
			list, ok := wantArg(ctx, "list").(*interp.List)
			if !ok {
				return argErr(b, "Argument must be list")
			}
			return interp.NewRTResult().Success(interp.NewNumber(int64(len(list.Elements))))
		}),
		newBuiltIn("lower", []string{"value"}, func(b *BuiltInFunction, ctx *interp.Context) *interp.RTResult {
			s, ok := wantArg(ctx, "value").(*interp.String)
			if !ok {
				return argErr(b, "Argument must be string")
			}
			return interp.NewRTResult().Success(interp.NewString(strings.ToLower(s.Value)))
		}),
		newBuiltIn("upper", []string{"value"}, func(b *BuiltInFunction, ctx *interp.Context) *interp.RTResult {
			s, ok := wantArg(ctx, "value").(*interp.String)
			if !ok {
				return argErr(b, "Argument must be string")
			}
			return interp.NewRTResult().Success(interp.NewString(strings.ToUpper(s.Value)))
		}),
		newBuiltIn("string", []string{"value"}, func(b *BuiltInFunction, ctx *interp.Context) *interp.RTResult {
			n, ok := wantArg(ctx, "value").(*interp.Number)
			if !ok {
				return argErr(b, "Argument must be number")
			}
			return interp.NewRTResult().Success(interp.NewString(n.String()))
		}),
		newBuiltIn("run", []string{"fn"}, func(b *BuiltInFunction, ctx *interp.Context) *interp.RTResult {
			fn, ok := wantArg(ctx, "fn").(*interp.String)
			if !ok {
				return argErr(b, "Argument must be string")
			}
			source, filename, err := env.Loader.Load(fn.Value)
			if err != nil {
				return argErr(b, "Failed to load script \""+fn.Value+"\"\n"+err.Error())
			}
			shouldExit, err := env.Run(filename, source)
			if err != nil {
				return argErr(b, "Failed to finish executing script \""+fn.Value+"\"\n"+err.Error())
			}
			if shouldExit {
				return interp.NewRTResult().SuccessExit(interp.NumberNull)
			}
			return interp.NewRTResult().Success(interp.NumberNull)
		}),
		newBuiltIn("exit", nil, func(b *BuiltInFunction, ctx *interp.Context) *interp.RTResult {
			return interp.NewRTResult().SuccessExit(interp.NumberNull)
		}),
	}
}

// typeCheckBuiltIn builds one of the is_number/is_string/is_list/is_function
// predicates, each sharing the same "value" argument and boolean-Number
// result shape.
func typeCheckBuiltIn(name string, pred func(interp.Value) bool) *BuiltInFunction {
	return newBuiltIn(name, []string{"value"}, func(b *BuiltInFunction, ctx *interp.Context) *interp.RTResult {
		if pred(wantArg(ctx, "value")) {
			return interp.NewRTResult().Success(interp.NumberTrue)
		}
		return interp.NewRTResult().Success(interp.NumberFalse)
	})
}

// intIndex converts a Number index argument to an int, rejecting
// non-integral floats the way Python's list[index.value] would raise
// TypeError for a float index.
func intIndex(n *interp.Number) (int, bool) {
	switch v := n.Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), v == float64(int64(v))
	}
	return 0, false
}
