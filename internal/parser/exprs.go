package parser

import (
	"github.com/aemreaydin/olox/internal/ast"
	"github.com/aemreaydin/olox/internal/lexer"
)

// The grammar, one method per precedence level, loosest first:
//
//	expression → comma
//	comma      → ternary ( ',' ternary )*
//	ternary    → equality ( '?' expression ':' ternary )?
//	equality   → comparison ( ('==' | '!=') comparison )*
//	comparison → term ( ('>' | '>=' | '<' | '<=') term )*
//	term       → factor ( ('+' | '-') factor )*
//	factor     → unary ( ('*' | '/') unary )*
//	unary      → ('-' | '!') unary | primary
//	primary    → NUMBER | STRING | TRUE | FALSE | NIL | '(' expression ')'

// expression parses the loosest rule.
func (p *Parser) expression() (ast.Expr, error) {
	return p.comma()
}

// comma parses comma sequences into a left-leaning Binary chain.
func (p *Parser) comma() (ast.Expr, error) {
	expr, err := p.ternary()
	if err != nil {
		return nil, err
	}

	for p.match(lexer.COMMA) {
		op := p.previous()
		right, err := p.ternary()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, op, right, mergeSpan(expr.Span(), right.Span()))
	}

	return expr, nil
}

// ternary parses the conditional operator. The then branch re-enters
// expression and the else branch re-enters ternary, which makes
// nesting right associative: a ? b : c ? d : e groups as
// a ? b : (c ? d : e).
func (p *Parser) ternary() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}

	if !p.match(lexer.QUESTION) {
		return expr, nil
	}

	then, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(lexer.COLON); err != nil {
		return nil, err
	}
	els, err := p.ternary()
	if err != nil {
		return nil, err
	}

	return ast.NewCondition(expr, then, els, mergeSpan(expr.Span(), els.Span())), nil
}

// equality parses == and != chains, left associative.
func (p *Parser) equality() (ast.Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}

	for p.match(lexer.EQ, lexer.NOT_EQ) {
		op := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, op, right, mergeSpan(expr.Span(), right.Span()))
	}

	return expr, nil
}

// comparison parses the ordering operators, left associative.
func (p *Parser) comparison() (ast.Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}

	for p.match(lexer.GT, lexer.GE, lexer.LT, lexer.LE) {
		op := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, op, right, mergeSpan(expr.Span(), right.Span()))
	}

	return expr, nil
}

// term parses addition and subtraction, left associative.
func (p *Parser) term() (ast.Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}

	for p.match(lexer.PLUS, lexer.MINUS) {
		op := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, op, right, mergeSpan(expr.Span(), right.Span()))
	}

	return expr, nil
}

// factor parses multiplication and division, left associative.
func (p *Parser) factor() (ast.Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}

	for p.match(lexer.ASTERISK, lexer.SLASH) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, op, right, mergeSpan(expr.Span(), right.Span()))
	}

	return expr, nil
}

// unary parses prefix operators by right recursion, so --5 nests as
// -(-5).
func (p *Parser) unary() (ast.Expr, error) {
	if p.match(lexer.MINUS, lexer.BANG) {
		op := p.previous()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(op, operand, mergeSpan(op.Span, operand.Span())), nil
	}
	return p.primary()
}

// primary parses literals and parenthesized groupings.
func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(lexer.NUMBER, lexer.STRING, lexer.TRUE, lexer.FALSE, lexer.NIL):
		tok := p.previous()
		return ast.NewLiteral(tok.Literal, tok.Span), nil

	case p.match(lexer.LPAREN):
		open := p.previous()
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		closing, err := p.need(lexer.RPAREN)
		if err != nil {
			return nil, err
		}
		return ast.NewGrouping(inner, mergeSpan(open.Span, closing.Span)), nil

	default:
		return nil, expectedExpression(p.peek())
	}
}
