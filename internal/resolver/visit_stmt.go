package resolver

import "github.com/BaLiKfromUA/pylox/internal/ast"

func (r *Resolver) VisitExpressionStmt(stmt *ast.ExpressionStmt) error {
	r.resolveExpr(stmt.Expr)
	return nil
}

func (r *Resolver) VisitPrintStmt(stmt *ast.PrintStmt) error {
	r.resolveExpr(stmt.Expr)
	return nil
}

func (r *Resolver) VisitVarStmt(stmt *ast.VarStmt) error {
	r.declare(stmt.Name.Lexeme, stmt.Name.Line)
	if stmt.Initializer != nil {
		r.resolveExpr(stmt.Initializer)
	}
	r.define(stmt.Name.Lexeme)
	return nil
}

func (r *Resolver) VisitBlockStmt(stmt *ast.Block) error {
	r.beginScope()
	r.resolveStmts(stmt.Statements)
	r.endScope()
	return nil
}

func (r *Resolver) VisitIfStmt(stmt *ast.If) error {
	r.resolveExpr(stmt.Condition)
	r.resolveStmt(stmt.Then)
	if stmt.Else != nil {
		r.resolveStmt(stmt.Else)
	}
	return nil
}

func (r *Resolver) VisitWhileStmt(stmt *ast.While) error {
	r.resolveExpr(stmt.Condition)
	r.loopDep++
	r.resolveStmt(stmt.Body)
	r.loopDep--
	return nil
}

func (r *Resolver) VisitBreakStmt(stmt *ast.Break) error {
	if r.loopDep == 0 {
		r.report_(stmt.Keyword.Line, "Must be inside a loop to use 'break'.")
	}
	return nil
}

func (r *Resolver) VisitFunctionStmt(stmt *ast.Function) error {
	r.declare(stmt.Name.Lexeme, stmt.Name.Line)
	// Functions are defined eagerly, before resolving the body, so a
	// function may reference itself recursively (spec §4.3).
	r.define(stmt.Name.Lexeme)
	r.resolveFunction(stmt, fnFunction)
	return nil
}

func (r *Resolver) VisitReturnStmt(stmt *ast.Return) error {
	if r.currFn == fnNone {
		r.report_(stmt.Keyword.Line, "Can't return from top-level code.")
	}
	if stmt.Value != nil {
		if r.currFn == fnInitializer {
			r.report_(stmt.Keyword.Line, "Can't return a value from an initializer.")
		}
		r.resolveExpr(stmt.Value)
	}
	return nil
}

func (r *Resolver) VisitClassStmt(stmt *ast.Class) error {
	enclosingCls := r.currCls
	r.currCls = classClass

	r.declare(stmt.Name.Lexeme, stmt.Name.Line)
	r.define(stmt.Name.Lexeme)

	if stmt.Superclass != nil {
		if stmt.Superclass.Name.Lexeme == stmt.Name.Lexeme {
			r.report_(stmt.Superclass.Name.Line, "A class can't inherit from itself.")
		}
		r.currCls = classSubclass
		r.resolveExpr(stmt.Superclass)

		r.beginScope()
		r.currentScope()["super"] = true
	}

	r.beginScope()
	r.currentScope()["this"] = true

	for _, method := range stmt.Methods {
		kind := fnMethod
		if method.Name.Lexeme == "init" {
			kind = fnInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()
	if stmt.Superclass != nil {
		r.endScope()
	}

	r.currCls = enclosingCls
	return nil
}
