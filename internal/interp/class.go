package interp

import (
	"fmt"

	techerrors "github.com/techzen-lang/techzen/internal/errors"
)

// Class is a TechZen class declaration: a name bound to the symbol table
// built while evaluating its body (spec.md §5.3, §5.5). Class values are
// shared by reference — Copy returns the receiver unchanged.
type Class struct {
	Base
	Name    string
	Symbols *SymbolTable
}

// NewClass wraps name/symbols as a Class value.
func NewClass(name string, symbols *SymbolTable) *Class {
	c := &Class{Name: name, Symbols: symbols}
	c.self = c
	return c
}

func (c *Class) String() string { return fmt.Sprintf("<class %s>", c.Name) }

func (c *Class) Copy() Value { return c }

// DivedBy implements `ClassName / "member"` static lookup.
func (c *Class) DivedBy(other Value) (Value, error) {
	o, ok := other.(*String)
	if !ok {
		return nil, c.illegalOperation(other)
	}
	value, ok := c.Symbols.Get(o.Value)
	if !ok {
		return nil, techerrors.NewRuntimeError(c.posStart, c.posEnd,
			fmt.Sprintf("'%s' is not defined", o.Value), c.ctx)
	}
	return value, nil
}

// Execute instantiates the class: a fresh Instance receives a copy of
// every class-level binding re-contexted to the new call frame, `this`
// and `self` are bound to the instance, and the method whose name equals
// the class's own name runs as the constructor. A class without such a
// method cannot be instantiated: the call fails with a runtime error.
func (c *Class) Execute(args []Value) *RTResult {
	res := NewRTResult()

	execCtx := NewChildContext(c.Name, c.ctx, c.posStart)

	inst := NewInstance(c)
	inst.Symbols = NewSymbolTable(c.Symbols)
	execCtx.Symbols = inst.Symbols

	c.Symbols.Each(func(name string, value Value) {
		inst.Symbols.Set(name, value.Copy())
	})
	inst.Symbols.Each(func(name string, value Value) {
		value.SetContext(execCtx)
	})
	inst.Symbols.Set("this", inst)
	inst.Symbols.Set("self", inst)

	method, ok := inst.Symbols.GetOwn(c.Name)
	ctor, isFunc := method.(*Function)
	if !ok || !isFunc {
		return res.Failure(techerrors.NewRuntimeError(c.posStart, c.posEnd,
			fmt.Sprintf("Function '%s' not defined", c.Name), c.ctx))
	}

	res.Register(ctor.Execute(args))
	if res.ShouldReturn() {
		return res
	}

	return res.Success(inst.SetContext(c.ctx).SetPos(c.posStart, c.posEnd))
}

// Instance is one instantiation of a Class, carrying its own copy of the
// class's symbol table. Instance values are shared by reference — Copy
// returns the receiver unchanged.
type Instance struct {
	Base
	ParentClass *Class
	Symbols     *SymbolTable
}

// NewInstance wraps parentClass as a fresh, symbol-table-less Instance;
// callers populate Symbols before use (see Class.Execute).
func NewInstance(parentClass *Class) *Instance {
	i := &Instance{ParentClass: parentClass}
	i.self = i
	return i
}

func (i *Instance) String() string { return fmt.Sprintf("<instance of class %s>", i.ParentClass.Name) }

func (i *Instance) Copy() Value { return i }
