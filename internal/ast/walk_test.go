package ast_test

import (
	"reflect"
	"testing"

	"github.com/aemreaydin/olox/internal/ast"
	"github.com/aemreaydin/olox/internal/lexer"
)

func kindOf(n ast.Node) string {
	return reflect.TypeOf(n).Elem().Name()
}

func TestWalk_Preorder(t *testing.T) {
	// 1 + ( 2 )
	expr := ast.NewBinary(
		number(1),
		op(lexer.PLUS, "+"),
		ast.NewGrouping(number(2), lexer.Span{}),
		lexer.Span{},
	)

	var visited []string
	ast.Walk(expr, func(n ast.Node) bool {
		visited = append(visited, kindOf(n))
		return true
	})

	expected := []string{"Binary", "Literal", "Grouping", "Literal"}
	if !reflect.DeepEqual(visited, expected) {
		t.Fatalf("visit order wrong. expected=%v, got=%v", expected, visited)
	}
}

func TestWalk_ConditionVisitsAllBranches(t *testing.T) {
	expr := ast.NewCondition(number(1), number(2), number(3), lexer.Span{})

	var visited []string
	ast.Walk(expr, func(n ast.Node) bool {
		visited = append(visited, kindOf(n))
		return true
	})

	expected := []string{"Condition", "Literal", "Literal", "Literal"}
	if !reflect.DeepEqual(visited, expected) {
		t.Fatalf("visit order wrong. expected=%v, got=%v", expected, visited)
	}
}

func TestWalk_PruneSkipsChildren(t *testing.T) {
	// 1 + ( 2 )
	expr := ast.NewBinary(
		number(1),
		op(lexer.PLUS, "+"),
		ast.NewGrouping(number(2), lexer.Span{}),
		lexer.Span{},
	)

	var visited []string
	ast.Walk(expr, func(n ast.Node) bool {
		visited = append(visited, kindOf(n))
		_, prune := n.(*ast.Grouping)
		return !prune
	})

	expected := []string{"Binary", "Literal", "Grouping"}
	if !reflect.DeepEqual(visited, expected) {
		t.Fatalf("visit order wrong. expected=%v, got=%v", expected, visited)
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		expr     ast.Expr
		expected int
	}{
		{number(1), 1},
		{ast.NewGrouping(number(1), lexer.Span{}), 2},
		{ast.NewUnary(op(lexer.MINUS, "-"), number(1), lexer.Span{}), 2},
		{ast.NewBinary(number(1), op(lexer.PLUS, "+"), number(2), lexer.Span{}), 3},
		{ast.NewCondition(number(1), number(2), number(3), lexer.Span{}), 4},
	}

	for i, tt := range tests {
		if got := ast.Count(tt.expr); got != tt.expected {
			t.Fatalf("tests[%d] - count wrong. expected=%d, got=%d",
				i, tt.expected, got)
		}
	}
}
