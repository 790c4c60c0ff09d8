package interp

import "strings"

// String is a TechZen text value (spec.md §5.3).
type String struct {
	Base
	Value string
}

// NewString wraps a Go string as a String value.
func NewString(value string) *String {
	s := &String{Value: value}
	s.self = s
	return s
}

func (s *String) String() string { return s.Value }

func (s *String) IsTrue() bool { return len(s.Value) > 0 }

func (s *String) Copy() Value {
	c := NewString(s.Value)
	c.SetPos(s.posStart, s.posEnd)
	c.SetContext(s.ctx)
	return c
}

func (s *String) AddedTo(other Value) (Value, error) {
	o, ok := other.(*String)
	if !ok {
		return nil, s.illegalOperation(other)
	}
	return NewString(s.Value + o.Value).SetContext(s.ctx), nil
}

func (s *String) MultedBy(other Value) (Value, error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, s.illegalOperation(other)
	}
	n, ok := o.Value.(int64)
	if !ok {
		n = int64(asFloat(o.Value))
	}
	if n < 0 {
		n = 0
	}
	return NewString(strings.Repeat(s.Value, int(n))).SetContext(s.ctx), nil
}

func (s *String) ComparisonEq(other Value) (Value, error) {
	o, ok := other.(*String)
	if !ok {
		return nil, s.illegalOperation(other)
	}
	return boolNumber(s.Value == o.Value).SetContext(s.ctx), nil
}

func (s *String) ComparisonNe(other Value) (Value, error) {
	o, ok := other.(*String)
	if !ok {
		return nil, s.illegalOperation(other)
	}
	return boolNumber(s.Value != o.Value).SetContext(s.ctx), nil
}
