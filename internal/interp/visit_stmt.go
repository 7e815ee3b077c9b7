package interp

import (
	"fmt"

	"github.com/BaLiKfromUA/pylox/internal/ast"
	"github.com/BaLiKfromUA/pylox/internal/runtime"
)

func (in *Interpreter) VisitExpressionStmt(stmt *ast.ExpressionStmt) error {
	_, err := in.evaluate(stmt.Expr)
	return err
}

func (in *Interpreter) VisitPrintStmt(stmt *ast.PrintStmt) error {
	value, err := in.evaluate(stmt.Expr)
	if err != nil {
		return err
	}
	fmt.Fprintln(in.stdout, runtime.Stringify(value))
	return nil
}

func (in *Interpreter) VisitVarStmt(stmt *ast.VarStmt) error {
	var value runtime.Value
	if stmt.Initializer != nil {
		v, err := in.evaluate(stmt.Initializer)
		if err != nil {
			return err
		}
		value = v
	}
	in.env.Define(stmt.Name.Lexeme, value)
	return nil
}

func (in *Interpreter) VisitBlockStmt(stmt *ast.Block) error {
	return in.ExecuteBlock(stmt.Statements, runtime.NewEnclosedEnvironment(in.env))
}

func (in *Interpreter) VisitIfStmt(stmt *ast.If) error {
	cond, err := in.evaluate(stmt.Condition)
	if err != nil {
		return err
	}
	switch {
	case runtime.IsTruthy(cond):
		return in.execute(stmt.Then)
	case stmt.Else != nil:
		return in.execute(stmt.Else)
	}
	return nil
}

func (in *Interpreter) VisitWhileStmt(stmt *ast.While) error {
	for {
		cond, err := in.evaluate(stmt.Condition)
		if err != nil {
			return err
		}
		if !runtime.IsTruthy(cond) {
			return nil
		}
		if err := in.execute(stmt.Body); err != nil {
			if _, ok := err.(breakSignal); ok {
				return nil
			}
			return err
		}
	}
}

func (in *Interpreter) VisitBreakStmt(stmt *ast.Break) error {
	return breakSignal{}
}

func (in *Interpreter) VisitFunctionStmt(stmt *ast.Function) error {
	fn := runtime.NewUserFunction(stmt, in.env, false)
	in.env.Define(stmt.Name.Lexeme, fn)
	return nil
}

func (in *Interpreter) VisitReturnStmt(stmt *ast.Return) error {
	var value runtime.Value
	if stmt.Value != nil {
		v, err := in.evaluate(stmt.Value)
		if err != nil {
			return err
		}
		value = v
	}
	return returnSignal{Value: value}
}

func (in *Interpreter) VisitClassStmt(stmt *ast.Class) error {
	var superclass *runtime.Class
	if stmt.Superclass != nil {
		sc, err := in.evaluate(stmt.Superclass)
		if err != nil {
			return err
		}
		sup, ok := sc.(*runtime.Class)
		if !ok {
			return in.runtimeErrorf(stmt.Superclass.Name.Line, "Superclass must be a class.")
		}
		superclass = sup
	}

	in.env.Define(stmt.Name.Lexeme, nil)

	classEnv := in.env
	if superclass != nil {
		classEnv = runtime.NewEnclosedEnvironment(in.env)
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]*runtime.UserFunction, len(stmt.Methods))
	for _, m := range stmt.Methods {
		isInit := m.Name.Lexeme == "init"
		methods[m.Name.Lexeme] = runtime.NewUserFunction(m, classEnv, isInit)
	}

	class := runtime.NewClass(stmt.Name.Lexeme, superclass, methods)

	if err := in.env.Assign(stmt.Name.Lexeme, class); err != nil {
		return in.runtimeErrorf(stmt.Name.Line, "%s", err.Error())
	}
	return nil
}
