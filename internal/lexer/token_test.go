package lexer

import "testing"

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		ident    string
		expected TokenType
	}{
		{"and", AND},
		{"class", CLASS},
		{"else", ELSE},
		{"false", FALSE},
		{"fn", FN},
		{"for", FOR},
		{"if", IF},
		{"nil", NIL},
		{"or", OR},
		{"print", PRINT},
		{"return", RETURN},
		{"super", SUPER},
		{"this", THIS},
		{"true", TRUE},
		{"var", VAR},
		{"while", WHILE},
		{"andy", IDENT},
		{"clazz", IDENT},
		{"And", IDENT},
		{"TRUE", IDENT},
		{"_", IDENT},
	}

	for i, tt := range tests {
		if got := LookupIdent(tt.ident); got != tt.expected {
			t.Fatalf("tests[%d] - type wrong. expected=%q, got=%q",
				i, tt.expected, got)
		}
	}
}
