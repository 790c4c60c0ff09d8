package interp

import (
	techerrors "github.com/techzen-lang/techzen/internal/errors"
	"github.com/techzen-lang/techzen/pkg/token"
)

// Value is the tagged union of every runtime value: Number, String, List,
// Dict, Function, BuiltInFunction (defined in internal/builtins), Class,
// and Instance (spec.md §5.3). Number/String/List/Dict are copied by
// value on every Copy call; Class/Instance return themselves, so they are
// shared by reference.
type Value interface {
	SetPos(start, end token.Position) Value
	PosStart() token.Position
	PosEnd() token.Position
	SetContext(ctx *Context) Value
	Ctx() *Context
	IsTrue() bool
	Copy() Value
	String() string

	AddedTo(other Value) (Value, error)
	SubbedBy(other Value) (Value, error)
	MultedBy(other Value) (Value, error)
	DivedBy(other Value) (Value, error)
	PowOf(other Value) (Value, error)
	FloorOf(other Value) (Value, error)
	ModBy(other Value) (Value, error)
	ComparisonEq(other Value) (Value, error)
	ComparisonNe(other Value) (Value, error)
	ComparisonLt(other Value) (Value, error)
	ComparisonGt(other Value) (Value, error)
	ComparisonLte(other Value) (Value, error)
	ComparisonGte(other Value) (Value, error)
	AndedBy(other Value) (Value, error)
	OredBy(other Value) (Value, error)
	Notted() (Value, error)

	Execute(args []Value) *RTResult
}

// Base carries the position span and defining context shared by every
// value variant, and supplies "illegal operation" as the default for any
// operator a variant does not override.
type Base struct {
	posStart, posEnd token.Position
	ctx              *Context
	self             Value // set by each concrete constructor; used to report illegal operations
}

func (b *Base) SetPos(start, end token.Position) Value {
	b.posStart, b.posEnd = start, end
	return b.self
}

func (b *Base) PosStart() token.Position { return b.posStart }
func (b *Base) PosEnd() token.Position   { return b.posEnd }

func (b *Base) SetContext(ctx *Context) Value {
	b.ctx = ctx
	return b.self
}

func (b *Base) Ctx() *Context { return b.ctx }

// SetSelf records the concrete value embedding this Base, so illegal
// operations and position/context setters can hand back the right
// pointer. Constructors outside package interp (e.g. internal/builtins)
// must call this since self is otherwise unexported.
func (b *Base) SetSelf(self Value) { b.self = self }

func (b *Base) IsTrue() bool { return false }

func (b *Base) illegalOperation(other Value) error {
	end := b.posEnd
	if other != nil {
		end = other.PosEnd()
	}
	return techerrors.NewRuntimeError(b.posStart, end, "Illegal operation", b.ctx)
}

func (b *Base) AddedTo(other Value) (Value, error)       { return nil, b.illegalOperation(other) }
func (b *Base) SubbedBy(other Value) (Value, error)      { return nil, b.illegalOperation(other) }
func (b *Base) MultedBy(other Value) (Value, error)      { return nil, b.illegalOperation(other) }
func (b *Base) DivedBy(other Value) (Value, error)       { return nil, b.illegalOperation(other) }
func (b *Base) PowOf(other Value) (Value, error)         { return nil, b.illegalOperation(other) }
func (b *Base) FloorOf(other Value) (Value, error)       { return nil, b.illegalOperation(other) }
func (b *Base) ModBy(other Value) (Value, error)         { return nil, b.illegalOperation(other) }
func (b *Base) ComparisonEq(other Value) (Value, error)  { return nil, b.illegalOperation(other) }
func (b *Base) ComparisonNe(other Value) (Value, error)  { return nil, b.illegalOperation(other) }
func (b *Base) ComparisonLt(other Value) (Value, error)  { return nil, b.illegalOperation(other) }
func (b *Base) ComparisonGt(other Value) (Value, error)  { return nil, b.illegalOperation(other) }
func (b *Base) ComparisonLte(other Value) (Value, error) { return nil, b.illegalOperation(other) }
func (b *Base) ComparisonGte(other Value) (Value, error) { return nil, b.illegalOperation(other) }
func (b *Base) AndedBy(other Value) (Value, error)       { return nil, b.illegalOperation(other) }
func (b *Base) OredBy(other Value) (Value, error)        { return nil, b.illegalOperation(other) }
func (b *Base) Notted() (Value, error)                   { return nil, b.illegalOperation(nil) }

func (b *Base) Execute(args []Value) *RTResult {
	return NewRTResult().Failure(b.illegalOperation(nil))
}
