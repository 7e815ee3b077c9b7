package runtime

import (
	"fmt"

	"github.com/dolthub/swiss"
)

// Environment is a single frame in the lexically-scoped chain of
// name->value bindings (spec §3, §4.5). Each frame's store is backed
// by a SwissTable (github.com/dolthub/swiss, wired the way
// mna-nenuphar uses it for its own runtime maps) instead of a plain Go
// map, giving the O(1) get/assign-at-distance the Environment contract
// calls for even as a frame grows.
type Environment struct {
	store *swiss.Map[string, Value]
	outer *Environment
}

// NewEnvironment creates the root global frame, with no enclosing
// scope.
func NewEnvironment() *Environment {
	return &Environment{store: swiss.NewMap[string, Value](8)}
}

// NewEnclosedEnvironment creates a frame nested inside outer — used
// for block bodies, function calls, and the `this`/`super` frames a
// class definition and bound method construct.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: swiss.NewMap[string, Value](8), outer: outer}
}

// Define always writes into the current frame, creating or
// overwriting the binding. Unlike Assign, it never walks the chain —
// this is what lets a block-local `var x` shadow an outer `x` instead
// of mutating it.
func (e *Environment) Define(name string, value Value) {
	e.store.Put(name, value)
}

// Get walks the chain outward looking for name, returning a runtime
// error if it is undefined anywhere in the chain.
func (e *Environment) Get(name string) (Value, error) {
	if v, ok := e.store.Get(name); ok {
		return v, nil
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, fmt.Errorf("Undefined variable '%s'.", name)
}

// Assign walks the chain outward looking for an existing binding of
// name to mutate; it never creates a new binding (spec §4.5).
func (e *Environment) Assign(name string, value Value) error {
	if e.store.Has(name) {
		e.store.Put(name, value)
		return nil
	}
	if e.outer != nil {
		return e.outer.Assign(name, value)
	}
	return fmt.Errorf("Undefined variable '%s'.", name)
}

// ancestor walks exactly distance links outward.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.outer
	}
	return env
}

// GetAt reads name from the frame exactly distance steps up the
// chain, unconditionally (the resolver has already proven it is
// there).
func (e *Environment) GetAt(distance int, name string) Value {
	v, _ := e.ancestor(distance).store.Get(name)
	return v
}

// AssignAt writes name into the frame exactly distance steps up the
// chain, unconditionally.
func (e *Environment) AssignAt(distance int, name string, value Value) {
	e.ancestor(distance).store.Put(name, value)
}
