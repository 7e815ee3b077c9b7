package runtime

import "fmt"

// Class is a Lox class value: a name, an optional single superclass,
// and its own method table. Method lookup walks self -> superclass ->
// ... and returns the first match (spec §3).
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*UserFunction
}

func NewClass(name string, superclass *Class, methods map[string]*UserFunction) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

func (c *Class) String() string { return c.Name }

// FindMethod walks the inheritance chain for name, starting at c.
func (c *Class) FindMethod(name string) *UserFunction {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

// Arity is the arity of `init` (declared on the class or inherited),
// or 0 if neither the class nor any superclass declares one (spec
// §4.4 "Calling a class").
func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

var _ Callable = (*Class)(nil)

// Instance is a runtime instance of a Class: a field map created
// lazily by assignment (spec §3).
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]Value)}
}

func (i *Instance) String() string { return fmt.Sprintf("%s instance", i.Class.Name) }

// Get reads a field first, then falls back to a bound method lookup
// (spec §4.4 Get). ok is false if neither is found.
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.Fields[name]; ok {
		return v, true
	}
	if method := i.Class.FindMethod(name); method != nil {
		return method.Bind(i), true
	}
	return nil, false
}

// Set assigns into the instance's field map, creating the field if
// it's the first assignment (spec §3, §4.4 Set).
func (i *Instance) Set(name string, value Value) {
	i.Fields[name] = value
}
