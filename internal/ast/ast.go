package ast

import "github.com/aemreaydin/olox/internal/lexer"

// Node represents any AST node with an associated source span.
type Node interface {
	Span() lexer.Span
}

// Expr represents an expression node. The variant set is closed: only
// types in this package satisfy the interface, so a type switch over
// them is total.
type Expr interface {
	Node
	exprNode()
}

// Literal represents a number, string, boolean or nil literal. The
// value was materialized by the scanner; the node never re-reads the
// lexeme.
type Literal struct {
	Value lexer.Value
	span  lexer.Span
}

// Span returns the literal span.
func (e *Literal) Span() lexer.Span { return e.span }

// exprNode marks Literal as an expression.
func (*Literal) exprNode() {}

// NewLiteral constructs a literal node.
func NewLiteral(value lexer.Value, span lexer.Span) *Literal {
	return &Literal{
		Value: value,
		span:  span,
	}
}

// Grouping represents a parenthesized expression. The node stays in
// the tree so later stages can tell (1 + 2) apart from 1 + 2.
type Grouping struct {
	Expression Expr
	span       lexer.Span
}

// Span returns the grouping span, opening through closing parenthesis.
func (e *Grouping) Span() lexer.Span { return e.span }

// exprNode marks Grouping as an expression.
func (*Grouping) exprNode() {}

// NewGrouping constructs a grouping node.
func NewGrouping(expression Expr, span lexer.Span) *Grouping {
	return &Grouping{
		Expression: expression,
		span:       span,
	}
}

// Unary represents a prefix operator applied to an operand.
type Unary struct {
	Operator   lexer.Token // MINUS or BANG
	Expression Expr
	span       lexer.Span
}

// Span returns the expression span, operator through operand.
func (e *Unary) Span() lexer.Span { return e.span }

// exprNode marks Unary as an expression.
func (*Unary) exprNode() {}

// NewUnary constructs a unary expression node.
func NewUnary(operator lexer.Token, expression Expr, span lexer.Span) *Unary {
	return &Unary{
		Operator:   operator,
		Expression: expression,
		span:       span,
	}
}

// Binary represents an infix operator with two operands. Comma
// sequences parse into left-leaning Binary chains too.
type Binary struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
	span     lexer.Span
}

// Span returns the expression span, left operand through right.
func (e *Binary) Span() lexer.Span { return e.span }

// exprNode marks Binary as an expression.
func (*Binary) exprNode() {}

// NewBinary constructs a binary expression node.
func NewBinary(left Expr, operator lexer.Token, right Expr, span lexer.Span) *Binary {
	return &Binary{
		Left:     left,
		Operator: operator,
		Right:    right,
		span:     span,
	}
}

// Condition represents the ternary conditional operator.
type Condition struct {
	Cond Expr
	Then Expr
	Else Expr
	span lexer.Span
}

// Span returns the expression span, condition through else branch.
func (e *Condition) Span() lexer.Span { return e.span }

// exprNode marks Condition as an expression.
func (*Condition) exprNode() {}

// NewCondition constructs a ternary conditional node.
func NewCondition(cond, then, els Expr, span lexer.Span) *Condition {
	return &Condition{
		Cond: cond,
		Then: then,
		Else: els,
		span: span,
	}
}
