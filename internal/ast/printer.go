package ast

import "strings"

// Render returns the debug form of an expression tree. The layout
// mirrors source text: infix operators are space padded, unary
// operators attach directly to their operand, groupings keep their
// parentheses. Output is for inspection and is not guaranteed to
// re-parse to the same tree.
func Render(expr Expr) string {
	var b strings.Builder
	render(&b, expr)
	return b.String()
}

func render(b *strings.Builder, expr Expr) {
	switch e := expr.(type) {
	case *Literal:
		b.WriteString(e.Value.String())

	case *Grouping:
		b.WriteString("( ")
		render(b, e.Expression)
		b.WriteString(" )")

	case *Unary:
		b.WriteString(e.Operator.Lexeme)
		render(b, e.Expression)

	case *Binary:
		render(b, e.Left)
		b.WriteByte(' ')
		b.WriteString(e.Operator.Lexeme)
		b.WriteByte(' ')
		render(b, e.Right)

	case *Condition:
		render(b, e.Cond)
		b.WriteString(" ? ")
		render(b, e.Then)
		b.WriteString(" : ")
		render(b, e.Else)
	}
}
