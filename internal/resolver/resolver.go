// Package resolver performs pylox's static lexical-resolution pass: it
// walks the parsed AST once, annotates every Variable/Assign/This/Super
// node with a scope distance (or leaves it unannotated for a global),
// and rejects a handful of static errors spec §4.3 and §7 call for.
package resolver

import (
	"github.com/BaLiKfromUA/pylox/internal/ast"
	pyloxerrors "github.com/BaLiKfromUA/pylox/internal/errors"
)

type functionKind int

const (
	fnNone functionKind = iota
	fnFunction
	fnMethod
	fnInitializer
)

type classKind int

const (
	classNone classKind = iota
	classClass
	classSubclass
)

type scope map[string]bool

// Locals is the resolver's identity-keyed side-table: expression node
// identity (ast.NodeID) to scope distance. The evaluator consults it
// via Distance.
type Locals map[ast.NodeID]int

func (l Locals) Distance(e ast.Expr) (int, bool) {
	d, ok := l[e.ID()]
	return d, ok
}

// Resolver implements ast.ExprVisitor and ast.StmtVisitor purely for
// its side effect of populating Locals; every Visit* method returns a
// nil result and a nil error, and static errors go to the Reporter.
type Resolver struct {
	report   pyloxerrors.Reporter
	scopes   []scope
	locals   Locals
	currFn   functionKind
	currCls  classKind
	loopDep  int
	hadError bool
}

func New(report pyloxerrors.Reporter) *Resolver {
	return &Resolver{report: report, locals: make(Locals)}
}

var (
	_ ast.ExprVisitor = (*Resolver)(nil)
	_ ast.StmtVisitor = (*Resolver)(nil)
)

// Resolve walks every top-level statement and returns the populated
// side-table.
func (r *Resolver) Resolve(stmts []ast.Stmt) Locals {
	r.resolveStmts(stmts)
	return r.locals
}

func (r *Resolver) HadError() bool { return r.hadError }

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	_ = s.Accept(r)
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	_, _ = e.Accept(r)
}

// --- scope stack ---

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, scope{}) }

func (r *Resolver) endScope() { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) currentScope() scope {
	if len(r.scopes) == 0 {
		return nil
	}
	return r.scopes[len(r.scopes)-1]
}

func (r *Resolver) declare(name string, line int) {
	sc := r.currentScope()
	if sc == nil {
		return
	}
	if _, exists := sc[name]; exists {
		r.report.Report(&pyloxerrors.ParseError{
			Line: line, Where: name,
			Message: "Already a variable with this name in this scope.",
		})
		r.hadError = true
	}
	sc[name] = false
}

func (r *Resolver) define(name string) {
	sc := r.currentScope()
	if sc == nil {
		return
	}
	sc[name] = true
}

func (r *Resolver) resolveLocal(e ast.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.locals[e.ID()] = len(r.scopes) - 1 - i
			return
		}
	}
	// not found in any scope: treat as global, no annotation
}

func (r *Resolver) resolveFunction(fn *ast.Function, kind functionKind) {
	enclosingFn := r.currFn
	r.currFn = kind
	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param.Lexeme, param.Line)
		r.define(param.Lexeme)
	}
	r.resolveStmts(fn.Body)
	r.endScope()
	r.currFn = enclosingFn
}

// report_ is a small helper so every Visit* method can surface a
// ParseError without repeating the boilerplate.
func (r *Resolver) report_(line int, message string) {
	r.report.Report(&pyloxerrors.ParseError{Line: line, Message: message})
	r.hadError = true
}
