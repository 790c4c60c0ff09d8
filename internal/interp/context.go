// Package interp is the tree-walking evaluator: a lexically-scoped
// Context/SymbolTable chain, the Value sum type and its per-operator
// dispatch table, and the node-variant evaluator (spec.md §5).
package interp

import (
	techerrors "github.com/techzen-lang/techzen/internal/errors"
	"github.com/techzen-lang/techzen/pkg/token"
)

// Context names one frame of execution — the program itself, a function
// call, or a class body — for error tracebacks and dotted member-access
// scoping. It implements errors.ContextFrame.
type Context struct {
	name           string
	parent         *Context
	parentEntry    token.Position
	hasParentEntry bool
	Symbols        *SymbolTable
}

// NewContext builds a root context with no parent (the top-level program).
func NewContext(name string) *Context {
	return &Context{name: name}
}

// NewChildContext builds a context entered from parent at entryPos, e.g. a
// function call site or a class body's defining position.
func NewChildContext(name string, parent *Context, entryPos token.Position) *Context {
	return &Context{name: name, parent: parent, parentEntry: entryPos, hasParentEntry: true}
}

func (c *Context) DisplayName() string { return c.name }

func (c *Context) Parent() techerrors.ContextFrame {
	if c.parent == nil {
		return nil
	}
	return c.parent
}

func (c *Context) ParentEntryPos() (token.Position, bool) {
	return c.parentEntry, c.hasParentEntry
}
