package ast

import "github.com/techzen-lang/techzen/pkg/token"

// BinOpNode is a binary operator expression.
type BinOpNode struct {
	base
	Left  Node
	Op    token.Token
	Right Node
}

func NewBinOpNode(left Node, op token.Token, right Node) *BinOpNode {
	return &BinOpNode{base: NewBase(left.Start(), right.End()), Left: left, Op: op, Right: right}
}

// UnaryOpNode is a prefix operator expression (`-x`, `NOT x`).
type UnaryOpNode struct {
	base
	Op   token.Token
	Node Node
}

func NewUnaryOpNode(op token.Token, node Node) *UnaryOpNode {
	return &UnaryOpNode{base: NewBase(op.PosStart, node.End()), Op: op, Node: node}
}
