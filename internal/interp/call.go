package interp

import (
	"errors"

	"github.com/BaLiKfromUA/pylox/internal/ast"
	"github.com/BaLiKfromUA/pylox/internal/runtime"
)

func (in *Interpreter) VisitCallExpr(expr *ast.Call) (any, error) {
	callee, err := in.evaluate(expr.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]runtime.Value, len(expr.Args))
	for i, a := range expr.Args {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(runtime.Callable)
	if !ok {
		return nil, in.runtimeErrorf(expr.Paren.Line, "Can only call functions and classes.")
	}

	if len(args) != callable.Arity() {
		return nil, in.runtimeErrorf(expr.Paren.Line, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}

	return in.call(callable, args, expr.Paren.Line)
}

// call dispatches on the concrete Callable kind: a native function
// invokes its Go closure directly, a user function executes its body
// in a fresh frame, and a class constructs an instance and runs its
// `init` method if it has one (spec §4.4 "Calling a user function",
// "Calling a class").
func (in *Interpreter) call(callable runtime.Callable, args []runtime.Value, line int) (runtime.Value, error) {
	switch fn := callable.(type) {
	case *runtime.NativeFunction:
		v, err := fn.Fn(args)
		if err != nil {
			return nil, in.runtimeErrorf(line, "%s", err.Error())
		}
		return v, nil

	case *runtime.UserFunction:
		return in.callUserFunction(fn, args)

	case *runtime.Class:
		instance := runtime.NewInstance(fn)
		if init := fn.FindMethod("init"); init != nil {
			if _, err := in.callUserFunction(init.Bind(instance), args); err != nil {
				return nil, err
			}
		}
		return instance, nil

	default:
		return nil, in.runtimeErrorf(line, "Can only call functions and classes.")
	}
}

func (in *Interpreter) callUserFunction(fn *runtime.UserFunction, args []runtime.Value) (runtime.Value, error) {
	env := runtime.NewEnclosedEnvironment(fn.Closure)
	for i, param := range fn.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := in.ExecuteBlock(fn.Declaration.Body, env)

	var ret returnSignal
	if errors.As(err, &ret) {
		if fn.IsInitializer {
			return fn.Closure.GetAt(0, "this"), nil
		}
		return ret.Value, nil
	}
	if err != nil {
		return nil, err
	}

	if fn.IsInitializer {
		return fn.Closure.GetAt(0, "this"), nil
	}
	return nil, nil
}
