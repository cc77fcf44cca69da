package parser

import (
	"fmt"

	"github.com/aemreaydin/olox/internal/diag"
	"github.com/aemreaydin/olox/internal/lexer"
)

// ParseErrorKind discriminates the ways a parse can fail.
type ParseErrorKind int

const (
	// ErrUnexpectedToken reports a required token that was absent,
	// such as the ')' closing a grouping.
	ErrUnexpectedToken ParseErrorKind = iota
	// ErrExpectedExpression reports a token that cannot begin an
	// expression standing where one was required.
	ErrExpectedExpression
)

// ParseError describes the mismatch that aborted a parse. The parser
// unwinds on the first mismatch, so one failed parse produces exactly
// one of these.
type ParseError struct {
	Kind     ParseErrorKind
	Message  string
	Expected lexer.TokenType // set for ErrUnexpectedToken
	Found    lexer.Token
	Span     lexer.Span
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Span.Filename != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.Span.Filename, e.Span.Line, e.Span.Column, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s", e.Span.Line, e.Span.Column, e.Message)
}

func (k ParseErrorKind) diagnosticCode() diag.Code {
	switch k {
	case ErrExpectedExpression:
		return diag.CodeParserExpectedExpression
	default:
		return diag.CodeParserUnexpectedToken
	}
}

// ToDiagnostic converts the parse error into the shared diagnostic structure.
func (e *ParseError) ToDiagnostic() diag.Diagnostic {
	d := diag.Diagnostic{
		Stage:    diag.StageParser,
		Severity: diag.SeverityError,
		Code:     e.Kind.diagnosticCode(),
		Message:  e.Message,
		Span: diag.Span{
			Filename: e.Span.Filename,
			Line:     e.Span.Line,
			Column:   e.Span.Column,
			Start:    e.Span.Start,
			End:      e.Span.End,
		},
	}
	if e.Kind == ErrUnexpectedToken {
		d = d.WithLabel(fmt.Sprintf("expected '%s'", e.Expected))
	}
	return d
}

// unexpectedToken builds the error for a required token that is absent.
func unexpectedToken(expected lexer.TokenType, found lexer.Token) *ParseError {
	return &ParseError{
		Kind:     ErrUnexpectedToken,
		Message:  fmt.Sprintf("expected '%s', found %s", expected, describeToken(found)),
		Expected: expected,
		Found:    found,
		Span:     found.Span,
	}
}

// expectedExpression builds the error for a token that cannot begin an
// expression.
func expectedExpression(found lexer.Token) *ParseError {
	return &ParseError{
		Kind:    ErrExpectedExpression,
		Message: fmt.Sprintf("expected expression, found %s", describeToken(found)),
		Found:   found,
		Span:    found.Span,
	}
}

// describeToken renders a token for error messages.
func describeToken(tok lexer.Token) string {
	if tok.Type == lexer.EOF {
		return "end of input"
	}
	if tok.Lexeme != "" {
		return "`" + tok.Lexeme + "`"
	}
	return "`" + string(tok.Type) + "`"
}
