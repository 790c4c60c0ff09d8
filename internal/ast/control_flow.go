package ast

import "github.com/techzen-lang/techzen/pkg/token"

// IfCase is one `cond THEN body` branch of an IfNode.
type IfCase struct {
	Condition        Node
	Body             Node
	ShouldReturnNull bool
}

// ElseCase is the trailing `ELSE body` branch, if present.
type ElseCase struct {
	Body             Node
	ShouldReturnNull bool
}

// IfNode is an if/elif/else chain. The first truthy case's body is
// evaluated; ShouldReturnNull means the block form (NEWLINE...END) was
// used and the branch's value is discarded in favor of null.
type IfNode struct {
	base
	Cases []IfCase
	Else  *ElseCase
}

func NewIfNode(cases []IfCase, elseCase *ElseCase, start, end token.Position) *IfNode {
	return &IfNode{base: NewBase(start, end), Cases: cases, Else: elseCase}
}

// ForNode is a counting loop: `FOR var = start TO end (STEP step) THEN body`.
type ForNode struct {
	base
	VarName          string
	Start_           Node
	End_             Node
	Step             Node // nil => default step of 1
	Body             Node
	ShouldReturnNull bool
}

func NewForNode(varName string, start, end, step, body Node, shouldReturnNull bool, posStart, posEnd token.Position) *ForNode {
	return &ForNode{
		base: NewBase(posStart, posEnd), VarName: varName,
		Start_: start, End_: end, Step: step, Body: body, ShouldReturnNull: shouldReturnNull,
	}
}

// WhileNode is a condition-checked loop.
type WhileNode struct {
	base
	Condition        Node
	Body             Node
	ShouldReturnNull bool
}

func NewWhileNode(condition, body Node, shouldReturnNull bool, start, end token.Position) *WhileNode {
	return &WhileNode{base: NewBase(start, end), Condition: condition, Body: body, ShouldReturnNull: shouldReturnNull}
}

// TryNode evaluates TryBody; on any error or control-flow flag, it resets
// and evaluates ExceptBody instead. Either way the final value is null.
type TryNode struct {
	base
	TryBody    Node
	ExceptBody Node
}

func NewTryNode(tryBody, exceptBody Node, start, end token.Position) *TryNode {
	return &TryNode{base: NewBase(start, end), TryBody: tryBody, ExceptBody: exceptBody}
}
