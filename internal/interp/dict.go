package interp

import (
	"strings"

	techerrors "github.com/techzen-lang/techzen/internal/errors"
)

// DictEntry is one insertion-ordered key/value pair of a Dict.
type DictEntry struct {
	Key   Value
	Value Value
}

// Dict is TechZen's insertion-ordered key/value mapping (spec.md §5.3).
// Lookups and removal compare keys structurally (Number-to-Number,
// String-to-String) rather than by identity, since TechZen has no
// notion of hashing.
type Dict struct {
	Base
	Entries []DictEntry
}

// NewDict wraps entries as a Dict value, copying the slice.
func NewDict(entries []DictEntry) *Dict {
	d := &Dict{Entries: append([]DictEntry(nil), entries...)}
	d.self = d
	return d
}

func keyEquals(a, b Value) bool {
	switch av := a.(type) {
	case *Number:
		bv, ok := b.(*Number)
		return ok && asFloat(av.Value) == asFloat(bv.Value)
	case *String:
		bv, ok := b.(*String)
		return ok && av.Value == bv.Value
	default:
		return a == b
	}
}

func (d *Dict) indexOfKey(key Value) int {
	for i, e := range d.Entries {
		if keyEquals(e.Key, key) {
			return i
		}
	}
	return -1
}

func (d *Dict) String() string {
	parts := make([]string, len(d.Entries))
	for i, e := range d.Entries {
		parts[i] = e.Key.String() + ": " + e.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (d *Dict) IsTrue() bool { return len(d.Entries) > 0 }

func (d *Dict) Copy() Value {
	c := NewDict(d.Entries)
	c.SetPos(d.posStart, d.posEnd)
	c.SetContext(d.ctx)
	return c
}

// AddedTo merges other's entries into a copy, overwriting keys already
// present and appending new ones, matching Python `dict.update`.
func (d *Dict) AddedTo(other Value) (Value, error) {
	o, ok := other.(*Dict)
	if !ok {
		return nil, d.illegalOperation(other)
	}
	newDict := d.Copy().(*Dict)
	for _, e := range o.Entries {
		if idx := newDict.indexOfKey(e.Key); idx >= 0 {
			newDict.Entries[idx].Value = e.Value
		} else {
			newDict.Entries = append(newDict.Entries, e)
		}
	}
	return newDict, nil
}

func (d *Dict) SubbedBy(other Value) (Value, error) {
	idx := d.indexOfKey(other)
	if idx < 0 {
		return nil, techerrors.NewRuntimeError(other.PosStart(), other.PosEnd(), "Key does not exist", d.ctx)
	}
	newDict := d.Copy().(*Dict)
	newDict.Entries = append(newDict.Entries[:idx], newDict.Entries[idx+1:]...)
	return newDict, nil
}

func (d *Dict) DivedBy(other Value) (Value, error) {
	idx := d.indexOfKey(other)
	if idx < 0 {
		return nil, techerrors.NewRuntimeError(other.PosStart(), other.PosEnd(), "Key does not exist", d.ctx)
	}
	return d.Entries[idx].Value, nil
}
