package interp

import (
	"strings"

	techerrors "github.com/techzen-lang/techzen/internal/errors"
)

// List is TechZen's ordered, value-copied sequence type (spec.md §5.3).
// `list + x` appends x and returns a new list; `list * otherList` merges
// two lists; `list - index` removes an element; `list / index` reads one.
type List struct {
	Base
	Elements []Value
}

// NewList wraps elements as a List value. elements is not retained — the
// slice passed in is copied so later mutation through one List cannot
// leak into another, matching spec.md's value-copy invariant for lists.
func NewList(elements []Value) *List {
	l := &List{Elements: append([]Value(nil), elements...)}
	l.self = l
	return l
}

func (l *List) String() string {
	parts := make([]string, len(l.Elements))
	for i, el := range l.Elements {
		parts[i] = el.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (l *List) IsTrue() bool { return len(l.Elements) > 0 }

func (l *List) Copy() Value {
	c := NewList(l.Elements)
	c.SetPos(l.posStart, l.posEnd)
	c.SetContext(l.ctx)
	return c
}

func (l *List) AddedTo(other Value) (Value, error) {
	newList := l.Copy().(*List)
	newList.Elements = append(newList.Elements, other)
	return newList, nil
}

func (l *List) MultedBy(other Value) (Value, error) {
	o, ok := other.(*List)
	if !ok {
		return nil, l.illegalOperation(other)
	}
	newList := l.Copy().(*List)
	newList.Elements = append(newList.Elements, o.Elements...)
	return newList, nil
}

func indexOf(n *Number, length int) (int, bool) {
	i, ok := n.Value.(int64)
	if !ok {
		i = int64(asFloat(n.Value))
	}
	idx := int(i)
	if idx < 0 || idx >= length {
		return 0, false
	}
	return idx, true
}

func (l *List) SubbedBy(other Value) (Value, error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, l.illegalOperation(other)
	}
	idx, ok := indexOf(o, len(l.Elements))
	if !ok {
		return nil, techerrors.NewRuntimeError(o.posStart, o.posEnd,
			"Element at this index could not be removed from list, because index is out of bounds", l.ctx)
	}
	newList := l.Copy().(*List)
	newList.Elements = append(newList.Elements[:idx], newList.Elements[idx+1:]...)
	return newList, nil
}

func (l *List) DivedBy(other Value) (Value, error) {
	o, ok := other.(*Number)
	if !ok {
		return nil, l.illegalOperation(other)
	}
	idx, ok := indexOf(o, len(l.Elements))
	if !ok {
		return nil, techerrors.NewRuntimeError(o.posStart, o.posEnd,
			"Element at this index could not be retrieved from list, because index is out of bounds", l.ctx)
	}
	return l.Elements[idx], nil
}
