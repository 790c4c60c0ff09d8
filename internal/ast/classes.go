package ast

import "github.com/techzen-lang/techzen/pkg/token"

// ClassNode declares a class: Body is the statements list evaluated in a
// fresh lexical frame that becomes the class's symbol table.
type ClassNode struct {
	base
	Name string
	Body Node // *ListNode of the class body's statements
}

func NewClassNode(name string, body Node, start, end token.Position) *ClassNode {
	return &ClassNode{base: NewBase(start, end), Name: name, Body: body}
}
