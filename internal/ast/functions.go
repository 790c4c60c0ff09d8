package ast

import "github.com/techzen-lang/techzen/pkg/token"

// FuncDefNode defines a function, optionally named (bound into the
// defining scope) and either auto-returning (`-> expr`) or requiring
// explicit RETURN statements in a block body.
type FuncDefNode struct {
	base
	Name             string // "" if anonymous
	ArgNames         []string
	Body             Node
	ShouldAutoReturn bool
}

func NewFuncDefNode(name string, argNames []string, body Node, shouldAutoReturn bool, start, end token.Position) *FuncDefNode {
	return &FuncDefNode{
		base: NewBase(start, end), Name: name,
		ArgNames: argNames, Body: body, ShouldAutoReturn: shouldAutoReturn,
	}
}

// CallNode invokes Callee with Args.
type CallNode struct {
	base
	Callee Node
	Args   []Node
}

func NewCallNode(callee Node, args []Node, end token.Position) *CallNode {
	return &CallNode{base: NewBase(callee.Start(), end), Callee: callee, Args: args}
}

// ReturnNode captures an optional return value for the enclosing function.
type ReturnNode struct {
	base
	Value Node // nil => return null
}

func NewReturnNode(value Node, start, end token.Position) *ReturnNode {
	return &ReturnNode{base: NewBase(start, end), Value: value}
}

// ContinueNode sets the loop-should-continue control flag.
type ContinueNode struct{ base }

func NewContinueNode(start, end token.Position) *ContinueNode {
	return &ContinueNode{base: NewBase(start, end)}
}

// BreakNode sets the loop-should-break control flag.
type BreakNode struct{ base }

func NewBreakNode(start, end token.Position) *BreakNode {
	return &BreakNode{base: NewBase(start, end)}
}
