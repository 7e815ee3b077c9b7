package interp

import (
	"github.com/BaLiKfromUA/pylox/internal/ast"
	"github.com/BaLiKfromUA/pylox/internal/runtime"
	"github.com/BaLiKfromUA/pylox/internal/token"
)

func (in *Interpreter) VisitLiteralExpr(expr *ast.Literal) (any, error) {
	return expr.Value, nil
}

func (in *Interpreter) VisitGroupingExpr(expr *ast.Grouping) (any, error) {
	return in.evaluate(expr.Inner)
}

func (in *Interpreter) VisitUnaryExpr(expr *ast.Unary) (any, error) {
	right, err := in.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Kind {
	case token.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, in.runtimeErrorf(expr.Operator.Line, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return !runtime.IsTruthy(right), nil
	}
	return nil, in.runtimeErrorf(expr.Operator.Line, "Unknown unary operator '%s'.", expr.Operator.Lexeme)
}

func (in *Interpreter) VisitBinaryExpr(expr *ast.Binary) (any, error) {
	left, err := in.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	op := expr.Operator

	switch op.Kind {
	case token.BANG_EQUAL:
		return !runtime.IsEqual(left, right), nil
	case token.EQUAL_EQUAL:
		return runtime.IsEqual(left, right), nil
	case token.PLUS:
		ln, lok := left.(float64)
		rn, rok := right.(float64)
		if lok && rok {
			return ln + rn, nil
		}
		if _, ok := left.(string); ok {
			return runtime.Stringify(left) + runtime.Stringify(right), nil
		}
		if _, ok := right.(string); ok {
			return runtime.Stringify(left) + runtime.Stringify(right), nil
		}
		return nil, in.runtimeErrorf(op.Line, "Operands must be two numbers or two strings.")
	case token.MINUS, token.SLASH, token.STAR,
		token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL:
		ln, rn, err := in.numberOperands(op.Line, left, right)
		if err != nil {
			return nil, err
		}
		switch op.Kind {
		case token.MINUS:
			return ln - rn, nil
		case token.STAR:
			return ln * rn, nil
		case token.SLASH:
			if rn == 0 {
				return nil, in.runtimeErrorf(op.Line, "Division by zero.")
			}
			return ln / rn, nil
		case token.GREATER:
			return ln > rn, nil
		case token.GREATER_EQUAL:
			return ln >= rn, nil
		case token.LESS:
			return ln < rn, nil
		case token.LESS_EQUAL:
			return ln <= rn, nil
		}
	}

	return nil, in.runtimeErrorf(op.Line, "Unknown binary operator '%s'.", op.Lexeme)
}

func (in *Interpreter) numberOperands(line int, left, right runtime.Value) (float64, float64, error) {
	ln, lok := left.(float64)
	rn, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, in.runtimeErrorf(line, "Operands must be numbers.")
	}
	return ln, rn, nil
}

func (in *Interpreter) VisitLogicalExpr(expr *ast.Logical) (any, error) {
	left, err := in.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}

	if expr.Operator.Kind == token.OR {
		if runtime.IsTruthy(left) {
			return left, nil
		}
	} else {
		if !runtime.IsTruthy(left) {
			return left, nil
		}
	}
	return in.evaluate(expr.Right)
}

func (in *Interpreter) VisitVariableExpr(expr *ast.Variable) (any, error) {
	return in.lookUpVariable(expr.Name.Lexeme, expr)
}

func (in *Interpreter) VisitAssignExpr(expr *ast.Assign) (any, error) {
	value, err := in.evaluate(expr.Value)
	if err != nil {
		return nil, err
	}

	if distance, ok := in.locals.Distance(expr); ok {
		in.env.AssignAt(distance, expr.Name.Lexeme, value)
		return value, nil
	}
	if err := in.Globals.Assign(expr.Name.Lexeme, value); err != nil {
		return nil, in.runtimeErrorf(expr.Name.Line, "%s", err.Error())
	}
	return value, nil
}

func (in *Interpreter) VisitGetExpr(expr *ast.Get) (any, error) {
	object, err := in.evaluate(expr.Object)
	if err != nil {
		return nil, err
	}

	instance, ok := object.(*runtime.Instance)
	if !ok {
		return nil, in.runtimeErrorf(expr.Name.Line, "Only instances have properties.")
	}

	value, found := instance.Get(expr.Name.Lexeme)
	if !found {
		return nil, in.runtimeErrorf(expr.Name.Line, "Undefined property '%s'.", expr.Name.Lexeme)
	}
	return value, nil
}

func (in *Interpreter) VisitSetExpr(expr *ast.Set) (any, error) {
	object, err := in.evaluate(expr.Object)
	if err != nil {
		return nil, err
	}

	instance, ok := object.(*runtime.Instance)
	if !ok {
		return nil, in.runtimeErrorf(expr.Name.Line, "Only instances have fields.")
	}

	value, err := in.evaluate(expr.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(expr.Name.Lexeme, value)
	return value, nil
}

func (in *Interpreter) VisitThisExpr(expr *ast.This) (any, error) {
	return in.lookUpVariable("this", expr)
}

func (in *Interpreter) VisitSuperExpr(expr *ast.Super) (any, error) {
	distance, _ := in.locals.Distance(expr)
	superValue := in.env.GetAt(distance, "super")
	superclass, _ := superValue.(*runtime.Class)

	thisValue := in.env.GetAt(distance-1, "this")
	instance, _ := thisValue.(*runtime.Instance)

	method := superclass.FindMethod(expr.Method.Lexeme)
	if method == nil {
		return nil, in.runtimeErrorf(expr.Method.Line, "Undefined property '%s'.", expr.Method.Lexeme)
	}
	return method.Bind(instance), nil
}
