package ast

import "github.com/techzen-lang/techzen/pkg/token"

// NumberNode is an integer or float literal.
type NumberNode struct {
	base
	Token token.Token
}

func NewNumberNode(tok token.Token) *NumberNode {
	return &NumberNode{base: NewBase(tok.PosStart, tok.PosEnd), Token: tok}
}

// StringNode is a string literal.
type StringNode struct {
	base
	Token token.Token
}

func NewStringNode(tok token.Token) *StringNode {
	return &StringNode{base: NewBase(tok.PosStart, tok.PosEnd), Token: tok}
}

// ListNode is an ordered `[a, b, c]` literal.
type ListNode struct {
	base
	Elements []Node
}

func NewListNode(elements []Node, start, end token.Position) *ListNode {
	return &ListNode{base: NewBase(start, end), Elements: elements}
}

// DictNode is a `{k: v, ...}` literal; Keys and Values are parallel,
// insertion-ordered slices.
type DictNode struct {
	base
	Keys   []Node
	Values []Node
}

func NewDictNode(keys, values []Node, start, end token.Position) *DictNode {
	return &DictNode{base: NewBase(start, end), Keys: keys, Values: values}
}
