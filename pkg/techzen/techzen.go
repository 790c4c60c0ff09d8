// Package techzen is the public embeddable facade over the lexer,
// parser, and evaluator: lex, parse, and run a TechZen program without
// the caller touching any internal package directly (spec.md §1,
// grounded on go-dws's pkg/dwscript facade).
package techzen

import (
	"fmt"

	"github.com/techzen-lang/techzen/internal/builtins"
	"github.com/techzen-lang/techzen/internal/interp"
	"github.com/techzen-lang/techzen/internal/lexer"
	"github.com/techzen-lang/techzen/internal/parser"
)

// IOHost is re-exported so callers never need to import internal/builtins
// directly to supply one.
type IOHost = builtins.IOHost

// SourceLoader is re-exported for the same reason; it resolves the
// argument to the `run` built-in to a script's source and filename.
type SourceLoader = builtins.SourceLoader

// StdIO and FileLoader are the default host implementations, talking to
// the real console and filesystem.
type StdIO = builtins.StdIO
type FileLoader = builtins.FileLoader
type PathLoader = builtins.PathLoader

// NewStdIO builds the default console IOHost.
func NewStdIO() *StdIO { return builtins.NewStdIO() }

// Value is the runtime value type a successful Run returns.
type Value = interp.Value

// Runtime holds one global scope, so programs run through it share
// variables and function definitions across successive Run calls (the
// same symbol table original_source's `shell.py` REPL reuses).
type Runtime struct {
	globalCtx *interp.Context
	env       *builtins.Env
}

// New builds a Runtime bound to io for console built-ins and loader for
// the `run` built-in's nested script loading.
func New(io IOHost, loader SourceLoader) *Runtime {
	rt := &Runtime{}
	env := &builtins.Env{IO: io, Loader: loader, Run: rt.runNested}
	rt.env = env
	rt.globalCtx = interp.NewContext("<program>")
	rt.globalCtx.Symbols = builtins.NewGlobalSymbolTable(env)
	return rt
}

// Run lexes, parses, and evaluates source, returning the value of its
// final expression statement. A syntax or runtime failure is returned as
// an error whose message is the fully-rendered, traceback-annotated
// report from internal/errors.
func (rt *Runtime) Run(filename, source string) (Value, error) {
	value, err, _ := rt.run(filename, source)
	return value, err
}

// RunUntilExit behaves like Run, additionally reporting whether the
// script called the `exit` built-in (or `run`-ed a script that did),
// which callers may use to stop a REPL or batch runner early.
func (rt *Runtime) RunUntilExit(filename, source string) (Value, error, bool) {
	return rt.run(filename, source)
}

func (rt *Runtime) run(filename, source string) (Value, error, bool) {
	toks, err := lexer.New(filename, source).Tokenize()
	if err != nil {
		return nil, err, false
	}

	tree, err := parser.New(toks).Parse()
	if err != nil {
		return nil, err, false
	}

	result := interp.Eval(tree, rt.globalCtx)
	if result.Err != nil {
		return nil, result.Err, false
	}
	return unwrapTopLevel(result.Value), nil, result.ShouldExit
}

// unwrapTopLevel mirrors the REPL contract (spec.md §6): the parser always
// wraps a program in a top-level ast.ListNode (statements.go), so Eval
// always hands back a *interp.List of every top-level statement's value,
// not just the last. The host-visible result is the last statement's
// value (spec §8 scenario 3: three statements, one reported result); an
// empty program has no last statement and is returned as-is.
func unwrapTopLevel(value Value) Value {
	list, ok := value.(*interp.List)
	if !ok || len(list.Elements) == 0 {
		return value
	}
	return list.Elements[len(list.Elements)-1]
}

// runNested backs the `run` built-in: it executes a script against the
// same global scope as its caller, the way original_source's Runner.run
// shares `global_symbol_table` across nested `run()` calls.
func (rt *Runtime) runNested(filename, source string) (bool, error) {
	_, err, shouldExit := rt.run(filename, source)
	if err != nil {
		return false, fmt.Errorf("%w", err)
	}
	return shouldExit, nil
}
