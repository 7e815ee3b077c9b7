package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Printer renders an expression as a fully-parenthesized S-expression,
// grounded on the original pylox's util/ast_printer.py. It is used by
// the parser's precedence tests and by the printer tests, which compare
// the printed form of two separate parses of the same source; the
// printed text is not parsed again.
type Printer struct{}

func (p *Printer) Print(e Expr) string {
	s, err := e.Accept(p)
	if err != nil {
		return fmt.Sprintf("<error: %v>", err)
	}
	return s.(string)
}

func (p *Printer) parenthesize(name string, exprs ...Expr) (any, error) {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		s, err := e.Accept(p)
		if err != nil {
			return nil, err
		}
		b.WriteString(s.(string))
	}
	b.WriteByte(')')
	return b.String(), nil
}

func (p *Printer) VisitLiteralExpr(expr *Literal) (any, error) {
	switch v := expr.Value.(type) {
	case nil:
		return "nil", nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case string:
		return strconv.Quote(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return fmt.Sprint(v), nil
	}
}

func (p *Printer) VisitGroupingExpr(expr *Grouping) (any, error) {
	return p.parenthesize("group", expr.Inner)
}

func (p *Printer) VisitUnaryExpr(expr *Unary) (any, error) {
	return p.parenthesize(expr.Operator.Lexeme, expr.Right)
}

func (p *Printer) VisitBinaryExpr(expr *Binary) (any, error) {
	return p.parenthesize(expr.Operator.Lexeme, expr.Left, expr.Right)
}

func (p *Printer) VisitLogicalExpr(expr *Logical) (any, error) {
	return p.parenthesize(expr.Operator.Lexeme, expr.Left, expr.Right)
}

func (p *Printer) VisitVariableExpr(expr *Variable) (any, error) {
	return expr.Name.Lexeme, nil
}

func (p *Printer) VisitAssignExpr(expr *Assign) (any, error) {
	return p.parenthesize("= "+expr.Name.Lexeme, expr.Value)
}

func (p *Printer) VisitCallExpr(expr *Call) (any, error) {
	return p.parenthesize("call", append([]Expr{expr.Callee}, expr.Args...)...)
}

func (p *Printer) VisitGetExpr(expr *Get) (any, error) {
	return p.parenthesize("get "+expr.Name.Lexeme, expr.Object)
}

func (p *Printer) VisitSetExpr(expr *Set) (any, error) {
	return p.parenthesize("set "+expr.Name.Lexeme, expr.Object, expr.Value)
}

func (p *Printer) VisitThisExpr(expr *This) (any, error) {
	return "this", nil
}

func (p *Printer) VisitSuperExpr(expr *Super) (any, error) {
	return "(super " + expr.Method.Lexeme + ")", nil
}
