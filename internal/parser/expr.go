package parser

import (
	"github.com/BaLiKfromUA/pylox/internal/ast"
	"github.com/BaLiKfromUA/pylox/internal/token"
)

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment parses a right-associative assignment. The left side is
// parsed as an ordinary expression first; if '=' follows, a Variable
// rewrites to Assign and a Get rewrites to Set. Any other left side is
// an "Invalid assignment target" error that does not abort parsing
// (spec §4.2 Assignment).
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return ast.NewAssign(target.Name, value)
		case *ast.Get:
			return ast.NewSet(target.Object, target.Name, value)
		default:
			p.errorAt(equals, "Invalid assignment target.")
			return expr
		}
	}

	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.OR) {
		op := p.previous()
		right := p.and()
		expr = ast.NewLogical(expr, op, right)
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.previous()
		right := p.equality()
		expr = ast.NewLogical(expr, op, right)
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		op := p.previous()
		right := p.unary()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.unary()
		return ast.NewUnary(op, right)
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for {
		switch {
		case p.match(token.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			name := p.consume(token.IDENTIFIER, "Expect property name after '.'.")
			expr = ast.NewGet(expr, name)
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.consume(token.RIGHT_PAREN, "Expect ')' after arguments.")
	return ast.NewCall(callee, paren, args)
}

// binaryOpKinds are every operator kind that can start a binary
// expression, used to detect a leading operator with no left operand
// (spec §4.2 "Binary-without-left-operand trap").
var binaryOpKinds = []token.Kind{
	token.BANG_EQUAL, token.EQUAL_EQUAL,
	token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL,
	token.PLUS, token.SLASH, token.STAR,
	token.AND, token.OR,
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return ast.NewLiteral(false)
	case p.match(token.TRUE):
		return ast.NewLiteral(true)
	case p.match(token.NIL):
		return ast.NewLiteral(nil)
	case p.match(token.NUMBER, token.STRING):
		return ast.NewLiteral(p.previous().Literal)
	case p.match(token.THIS):
		return ast.NewThis(p.previous())
	case p.match(token.SUPER):
		keyword := p.previous()
		p.consume(token.DOT, "Expect '.' after 'super'.")
		method := p.consume(token.IDENTIFIER, "Expect superclass method name.")
		return ast.NewSuper(keyword, method)
	case p.match(token.IDENTIFIER):
		return ast.NewVariable(p.previous())
	case p.match(token.LEFT_PAREN):
		expr := p.expression()
		p.consume(token.RIGHT_PAREN, "Expect ')' after expression.")
		return ast.NewGrouping(expr)
	}

	if p.match(binaryOpKinds...) {
		op := p.previous()
		p.errorAt(op, "Missing left-hand operand.")
		// parse and discard the right-hand side at the matching
		// precedence so the resync point lands after the whole
		// expression, not mid-expression.
		switch op.Kind {
		case token.OR:
			p.and()
		case token.AND:
			p.equality()
		case token.BANG_EQUAL, token.EQUAL_EQUAL:
			p.comparison()
		case token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL:
			p.term()
		case token.PLUS:
			p.factor()
		default:
			p.unary()
		}
		panic(parseError{err: &missingOperandSentinel{}})
	}

	panic(p.errorAt(p.peek(), "Expect expression."))
}

type missingOperandSentinel struct{}

func (*missingOperandSentinel) Error() string { return "missing left-hand operand" }
