package ast

import "github.com/BaLiKfromUA/pylox/internal/token"

// Literal is a literal value: number, string, boolean, or nil.
type Literal struct {
	base
	Value any
}

func NewLiteral(value any) *Literal {
	return &Literal{base: newBase(), Value: value}
}

func (e *Literal) Accept(v ExprVisitor) (any, error) { return v.VisitLiteralExpr(e) }

// Grouping is a parenthesized expression.
type Grouping struct {
	base
	Inner Expr
}

func NewGrouping(inner Expr) *Grouping {
	return &Grouping{base: newBase(), Inner: inner}
}

func (e *Grouping) Accept(v ExprVisitor) (any, error) { return v.VisitGroupingExpr(e) }

// Unary is a prefix operator application: "-x" or "!x".
type Unary struct {
	base
	Operator token.Token
	Right    Expr
}

func NewUnary(operator token.Token, right Expr) *Unary {
	return &Unary{base: newBase(), Operator: operator, Right: right}
}

func (e *Unary) Accept(v ExprVisitor) (any, error) { return v.VisitUnaryExpr(e) }

// Binary is an infix operator application.
type Binary struct {
	base
	Left     Expr
	Operator token.Token
	Right    Expr
}

func NewBinary(left Expr, operator token.Token, right Expr) *Binary {
	return &Binary{base: newBase(), Left: left, Operator: operator, Right: right}
}

func (e *Binary) Accept(v ExprVisitor) (any, error) { return v.VisitBinaryExpr(e) }

// Logical is "and"/"or", evaluated with short-circuiting.
type Logical struct {
	base
	Left     Expr
	Operator token.Token
	Right    Expr
}

func NewLogical(left Expr, operator token.Token, right Expr) *Logical {
	return &Logical{base: newBase(), Left: left, Operator: operator, Right: right}
}

func (e *Logical) Accept(v ExprVisitor) (any, error) { return v.VisitLogicalExpr(e) }

// Variable is a reference to a named binding.
type Variable struct {
	base
	Name token.Token
}

func NewVariable(name token.Token) *Variable {
	return &Variable{base: newBase(), Name: name}
}

func (e *Variable) Accept(v ExprVisitor) (any, error) { return v.VisitVariableExpr(e) }

// Assign is "name = value".
type Assign struct {
	base
	Name  token.Token
	Value Expr
}

func NewAssign(name token.Token, value Expr) *Assign {
	return &Assign{base: newBase(), Name: name, Value: value}
}

func (e *Assign) Accept(v ExprVisitor) (any, error) { return v.VisitAssignExpr(e) }

// Call is "callee(args...)".
type Call struct {
	base
	Callee Expr
	Paren  token.Token // closing ')', used to report arity/type errors
	Args   []Expr
}

func NewCall(callee Expr, paren token.Token, args []Expr) *Call {
	return &Call{base: newBase(), Callee: callee, Paren: paren, Args: args}
}

func (e *Call) Accept(v ExprVisitor) (any, error) { return v.VisitCallExpr(e) }

// Get is "object.name" property/method access.
type Get struct {
	base
	Object Expr
	Name   token.Token
}

func NewGet(object Expr, name token.Token) *Get {
	return &Get{base: newBase(), Object: object, Name: name}
}

func (e *Get) Accept(v ExprVisitor) (any, error) { return v.VisitGetExpr(e) }

// Set is "object.name = value" field assignment.
type Set struct {
	base
	Object Expr
	Name   token.Token
	Value  Expr
}

func NewSet(object Expr, name token.Token, value Expr) *Set {
	return &Set{base: newBase(), Object: object, Name: name, Value: value}
}

func (e *Set) Accept(v ExprVisitor) (any, error) { return v.VisitSetExpr(e) }

// This is a "this" reference inside a method.
type This struct {
	base
	Keyword token.Token
}

func NewThis(keyword token.Token) *This {
	return &This{base: newBase(), Keyword: keyword}
}

func (e *This) Accept(v ExprVisitor) (any, error) { return v.VisitThisExpr(e) }

// Super is a "super.method" reference inside a subclass method.
type Super struct {
	base
	Keyword token.Token
	Method  token.Token
}

func NewSuper(keyword, method token.Token) *Super {
	return &Super{base: newBase(), Keyword: keyword, Method: method}
}

func (e *Super) Accept(v ExprVisitor) (any, error) { return v.VisitSuperExpr(e) }
