package resolver

import "github.com/BaLiKfromUA/pylox/internal/ast"

func (r *Resolver) VisitLiteralExpr(expr *ast.Literal) (any, error) { return nil, nil }

func (r *Resolver) VisitGroupingExpr(expr *ast.Grouping) (any, error) {
	r.resolveExpr(expr.Inner)
	return nil, nil
}

func (r *Resolver) VisitUnaryExpr(expr *ast.Unary) (any, error) {
	r.resolveExpr(expr.Right)
	return nil, nil
}

func (r *Resolver) VisitBinaryExpr(expr *ast.Binary) (any, error) {
	r.resolveExpr(expr.Left)
	r.resolveExpr(expr.Right)
	return nil, nil
}

func (r *Resolver) VisitLogicalExpr(expr *ast.Logical) (any, error) {
	r.resolveExpr(expr.Left)
	r.resolveExpr(expr.Right)
	return nil, nil
}

func (r *Resolver) VisitVariableExpr(expr *ast.Variable) (any, error) {
	if sc := r.currentScope(); sc != nil {
		if defined, declared := sc[expr.Name.Lexeme]; declared && !defined {
			r.report_(expr.Name.Line, "Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(expr, expr.Name.Lexeme)
	return nil, nil
}

func (r *Resolver) VisitAssignExpr(expr *ast.Assign) (any, error) {
	r.resolveExpr(expr.Value)
	r.resolveLocal(expr, expr.Name.Lexeme)
	return nil, nil
}

func (r *Resolver) VisitCallExpr(expr *ast.Call) (any, error) {
	r.resolveExpr(expr.Callee)
	for _, arg := range expr.Args {
		r.resolveExpr(arg)
	}
	return nil, nil
}

func (r *Resolver) VisitGetExpr(expr *ast.Get) (any, error) {
	r.resolveExpr(expr.Object)
	return nil, nil
}

func (r *Resolver) VisitSetExpr(expr *ast.Set) (any, error) {
	r.resolveExpr(expr.Value)
	r.resolveExpr(expr.Object)
	return nil, nil
}

func (r *Resolver) VisitThisExpr(expr *ast.This) (any, error) {
	if r.currCls == classNone {
		r.report_(expr.Keyword.Line, "Can't use 'this' outside of a class.")
		return nil, nil
	}
	r.resolveLocal(expr, "this")
	return nil, nil
}

func (r *Resolver) VisitSuperExpr(expr *ast.Super) (any, error) {
	switch r.currCls {
	case classNone:
		r.report_(expr.Keyword.Line, "Can't use 'super' outside of a class.")
	case classClass:
		r.report_(expr.Keyword.Line, "Can't use 'super' in a class with no superclass.")
	}
	r.resolveLocal(expr, "super")
	return nil, nil
}
