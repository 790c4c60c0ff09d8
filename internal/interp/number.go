package interp

import (
	"math"
	"strconv"

	techerrors "github.com/techzen-lang/techzen/internal/errors"
)

// Number is TechZen's sole numeric type; Value holds either an int64 or a
// float64 depending on how the literal was written (spec.md §5.3).
type Number struct {
	Base
	Value any // int64 or float64
}

// NewNumber wraps an int64 or float64 as a Number.
func NewNumber(value any) *Number {
	n := &Number{Value: value}
	n.self = n
	return n
}

var (
	// NumberNull, NumberFalse and NumberTrue are the shared null/falsy/truthy
	// sentinels, mirroring the original's class-level Number.null/false/true
	// singletons. Comparison and NOT operators return fresh Numbers
	// (boolNumber) rather than these sentinels.
	NumberNull  = NewNumber(int64(0))
	NumberFalse = NewNumber(int64(0))
	NumberTrue  = NewNumber(int64(1))
)

func boolNumber(b bool) *Number {
	if b {
		return NewNumber(int64(1))
	}
	return NewNumber(int64(0))
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case float64:
		return n
	}
	return 0
}

func bothInt(a, b any) (int64, int64, bool) {
	ai, aok := a.(int64)
	bi, bok := b.(int64)
	return ai, bi, aok && bok
}

func (n *Number) String() string {
	switch v := n.Value.(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return ""
}

func (n *Number) IsTrue() bool { return asFloat(n.Value) != 0 }

func (n *Number) Copy() Value {
	c := NewNumber(n.Value)
	c.SetPos(n.posStart, n.posEnd)
	c.SetContext(n.ctx)
	return c
}

func (n *Number) asNumber(other Value) (*Number, bool) {
	o, ok := other.(*Number)
	return o, ok
}

func (n *Number) AddedTo(other Value) (Value, error) {
	o, ok := n.asNumber(other)
	if !ok {
		return nil, n.illegalOperation(other)
	}
	var result *Number
	if a, b, ok := bothInt(n.Value, o.Value); ok {
		result = NewNumber(a + b)
	} else {
		result = NewNumber(asFloat(n.Value) + asFloat(o.Value))
	}
	return result.SetContext(n.ctx), nil
}

func (n *Number) SubbedBy(other Value) (Value, error) {
	o, ok := n.asNumber(other)
	if !ok {
		return nil, n.illegalOperation(other)
	}
	var result *Number
	if a, b, ok := bothInt(n.Value, o.Value); ok {
		result = NewNumber(a - b)
	} else {
		result = NewNumber(asFloat(n.Value) - asFloat(o.Value))
	}
	return result.SetContext(n.ctx), nil
}

func (n *Number) MultedBy(other Value) (Value, error) {
	o, ok := n.asNumber(other)
	if !ok {
		return nil, n.illegalOperation(other)
	}
	var result *Number
	if a, b, ok := bothInt(n.Value, o.Value); ok {
		result = NewNumber(a * b)
	} else {
		result = NewNumber(asFloat(n.Value) * asFloat(o.Value))
	}
	return result.SetContext(n.ctx), nil
}

func (n *Number) DivedBy(other Value) (Value, error) {
	o, ok := n.asNumber(other)
	if !ok {
		return nil, n.illegalOperation(other)
	}
	if asFloat(o.Value) == 0 {
		return nil, techerrors.NewRuntimeError(o.posStart, o.posEnd, "Division by zero", n.ctx)
	}
	return NewNumber(asFloat(n.Value) / asFloat(o.Value)).SetContext(n.ctx), nil
}

func (n *Number) FloorOf(other Value) (Value, error) {
	o, ok := n.asNumber(other)
	if !ok {
		return nil, n.illegalOperation(other)
	}
	if asFloat(o.Value) == 0 {
		return nil, techerrors.NewRuntimeError(o.posStart, o.posEnd, "Division by zero", n.ctx)
	}
	if a, b, ok := bothInt(n.Value, o.Value); ok {
		q := a / b
		if (a%b != 0) && ((a < 0) != (b < 0)) {
			q--
		}
		return NewNumber(q).SetContext(n.ctx), nil
	}
	return NewNumber(float64(int64(asFloat(n.Value) / asFloat(o.Value)))).SetContext(n.ctx), nil
}

func (n *Number) PowOf(other Value) (Value, error) {
	o, ok := n.asNumber(other)
	if !ok {
		return nil, n.illegalOperation(other)
	}
	if a, b, ok := bothInt(n.Value, o.Value); ok && b >= 0 {
		r := int64(1)
		for i := int64(0); i < b; i++ {
			r *= a
		}
		return NewNumber(r).SetContext(n.ctx), nil
	}
	return NewNumber(math.Pow(asFloat(n.Value), asFloat(o.Value))).SetContext(n.ctx), nil
}

func (n *Number) ModBy(other Value) (Value, error) {
	o, ok := n.asNumber(other)
	if !ok {
		return nil, n.illegalOperation(other)
	}
	if asFloat(o.Value) == 0 {
		return nil, techerrors.NewRuntimeError(o.posStart, o.posEnd, "Division by zero", n.ctx)
	}
	if a, b, ok := bothInt(n.Value, o.Value); ok {
		m := a % b
		if m != 0 && ((m < 0) != (b < 0)) {
			m += b
		}
		return NewNumber(m).SetContext(n.ctx), nil
	}
	a, b := asFloat(n.Value), asFloat(o.Value)
	m := a - b*float64(int64(a/b))
	return NewNumber(m).SetContext(n.ctx), nil
}

func (n *Number) ComparisonEq(other Value) (Value, error) {
	o, ok := n.asNumber(other)
	if !ok {
		return nil, n.illegalOperation(other)
	}
	return boolNumber(asFloat(n.Value) == asFloat(o.Value)).SetContext(n.ctx), nil
}

func (n *Number) ComparisonNe(other Value) (Value, error) {
	o, ok := n.asNumber(other)
	if !ok {
		return nil, n.illegalOperation(other)
	}
	return boolNumber(asFloat(n.Value) != asFloat(o.Value)).SetContext(n.ctx), nil
}

func (n *Number) ComparisonLt(other Value) (Value, error) {
	o, ok := n.asNumber(other)
	if !ok {
		return nil, n.illegalOperation(other)
	}
	return boolNumber(asFloat(n.Value) < asFloat(o.Value)).SetContext(n.ctx), nil
}

func (n *Number) ComparisonGt(other Value) (Value, error) {
	o, ok := n.asNumber(other)
	if !ok {
		return nil, n.illegalOperation(other)
	}
	return boolNumber(asFloat(n.Value) > asFloat(o.Value)).SetContext(n.ctx), nil
}

func (n *Number) ComparisonLte(other Value) (Value, error) {
	o, ok := n.asNumber(other)
	if !ok {
		return nil, n.illegalOperation(other)
	}
	return boolNumber(asFloat(n.Value) <= asFloat(o.Value)).SetContext(n.ctx), nil
}

func (n *Number) ComparisonGte(other Value) (Value, error) {
	o, ok := n.asNumber(other)
	if !ok {
		return nil, n.illegalOperation(other)
	}
	return boolNumber(asFloat(n.Value) >= asFloat(o.Value)).SetContext(n.ctx), nil
}

// AndedBy mirrors Python's `and`: the left operand if falsy, else the
// right, preserving whichever operand's own value rather than collapsing
// to a boolean (so `2 AND 3` is `3`, not `1`).
func (n *Number) AndedBy(other Value) (Value, error) {
	o, ok := n.asNumber(other)
	if !ok {
		return nil, n.illegalOperation(other)
	}
	if !n.IsTrue() {
		return n.SetContext(n.ctx), nil
	}
	return o.SetContext(n.ctx), nil
}

// OredBy mirrors Python's `or`: the left operand if truthy, else the right.
func (n *Number) OredBy(other Value) (Value, error) {
	o, ok := n.asNumber(other)
	if !ok {
		return nil, n.illegalOperation(other)
	}
	if n.IsTrue() {
		return n.SetContext(n.ctx), nil
	}
	return o.SetContext(n.ctx), nil
}

func (n *Number) Notted() (Value, error) {
	return boolNumber(!n.IsTrue()).SetContext(n.ctx), nil
}
