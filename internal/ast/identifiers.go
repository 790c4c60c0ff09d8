package ast

import "github.com/techzen-lang/techzen/pkg/token"

// VarAccessNode reads a variable, optionally followed by a dotted member
// access chain resolved in the value's own context.
type VarAccessNode struct {
	base
	Name  string
	Child Node // nil if no ".member" chain follows
}

func NewVarAccessNode(name string, nameTok token.Token, child Node, end token.Position) *VarAccessNode {
	return &VarAccessNode{base: NewBase(nameTok.PosStart, end), Name: name, Child: child}
}

// VarAssignNode assigns Value to Name, optionally walking ExtraNames as a
// dotted left-hand side (`VAR a.b.c = value`).
type VarAssignNode struct {
	base
	Name       string
	Value      Node
	ExtraNames []string
}

func NewVarAssignNode(name string, value Node, extraNames []string, start, end token.Position) *VarAssignNode {
	return &VarAssignNode{base: NewBase(start, end), Name: name, Value: value, ExtraNames: extraNames}
}
