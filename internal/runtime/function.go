package runtime

import "github.com/BaLiKfromUA/pylox/internal/ast"

// NativeFunction wraps a Go function as a Lox callable (spec §6: clock,
// input, len), grounded on the original pylox's builtin_function.py
// FUNCTIONS_MAPPING registry.
type NativeFunction struct {
	Name   string
	ArityN int
	Fn     func(args []Value) (Value, error)
}

func (n *NativeFunction) Arity() int     { return n.ArityN }
func (n *NativeFunction) String() string { return "<native fn>" }

// UserFunction is a function value created by a `fun` declaration or a
// class method: the declaration AST plus the environment it closed
// over (spec §3). A bound method is a UserFunction whose Closure is a
// fresh frame defining `this` inside the original closure (spec §4.4
// Get, "Calling a user function").
type UserFunction struct {
	Declaration   *ast.Function
	Closure       *Environment
	IsInitializer bool
}

func NewUserFunction(decl *ast.Function, closure *Environment, isInitializer bool) *UserFunction {
	return &UserFunction{Declaration: decl, Closure: closure, IsInitializer: isInitializer}
}

func (f *UserFunction) Arity() int { return len(f.Declaration.Params) }

func (f *UserFunction) String() string {
	return "<fn " + f.Declaration.Name.Lexeme + ">"
}

// Bind returns a copy of f whose closure is a fresh frame that defines
// `this = instance` inside f's original closure — the shape the
// evaluator's Get expression and the class's method table both use to
// produce bound methods (spec §3 "Bound method").
func (f *UserFunction) Bind(instance *Instance) *UserFunction {
	env := NewEnclosedEnvironment(f.Closure)
	env.Define("this", instance)
	return NewUserFunction(f.Declaration, env, f.IsInitializer)
}

var (
	_ Callable = (*NativeFunction)(nil)
	_ Callable = (*UserFunction)(nil)
)
