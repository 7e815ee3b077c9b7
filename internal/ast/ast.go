// Package ast defines the Lox abstract syntax tree: a sum type of
// expressions and a sum type of statements, dispatched via a visitor
// protocol (spec §3). Every expression node carries a stable identity
// assigned at construction, which the resolver's side-table keys on
// and the evaluator later consults (spec §9: "a map keyed on a stable
// numeric id assigned at AST-construction time is the portable
// choice").
package ast

import "sync/atomic"

var nextID int64

// NodeID is the stable identity of an expression node, assigned once
// at construction and never reused.
type NodeID int64

func newNodeID() NodeID {
	return NodeID(atomic.AddInt64(&nextID, 1))
}

// Expr is the sum type of all expression nodes.
type Expr interface {
	ID() NodeID
	Accept(v ExprVisitor) (any, error)
}

// Stmt is the sum type of all statement nodes.
type Stmt interface {
	Accept(v StmtVisitor) error
}

// base gives every expression node a stable identity without every
// constructor having to manage a counter by hand.
type base struct {
	id NodeID
}

func newBase() base { return base{id: newNodeID()} }

func (b base) ID() NodeID { return b.id }
