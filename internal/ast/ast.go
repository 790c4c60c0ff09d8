// Package ast defines the TechZen abstract syntax tree: a tagged union
// of node variants produced by the parser and walked by the evaluator.
package ast

import "github.com/techzen-lang/techzen/pkg/token"

// Node is implemented by every AST node variant. Every node carries the
// source span it covers.
type Node interface {
	Start() token.Position
	End() token.Position
	node()
}

// base embeds the position span shared by every node variant.
type base struct {
	PosStart token.Position
	PosEnd   token.Position
}

func (b base) Start() token.Position { return b.PosStart }
func (b base) End() token.Position   { return b.PosEnd }
func (base) node()                   {}

// NewBase constructs the common position span for a node.
func NewBase(start, end token.Position) base {
	return base{PosStart: start, PosEnd: end}
}
