package diag

import "fmt"

// Stage identifies which front-end phase produced the diagnostic.
type Stage string

const (
	StageLexer  Stage = "lexer"
	StageParser Stage = "parser"
)

// Severity captures how impactful the diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Code is a stable identifier for a diagnostic.
type Code string

const (
	// Lexer errors
	CodeLexerUnterminatedString       Code = "LEXER_UNTERMINATED_STRING"
	CodeLexerUnterminatedBlockComment Code = "LEXER_UNTERMINATED_BLOCK_COMMENT"
	CodeLexerUnexpectedChar           Code = "LEXER_UNEXPECTED_CHARACTER"
	CodeLexerInvalidNumber            Code = "LEXER_INVALID_NUMBER"

	// Parser errors
	CodeParserUnexpectedToken    Code = "PARSER_UNEXPECTED_TOKEN"
	CodeParserExpectedExpression Code = "PARSER_EXPECTED_EXPRESSION"
)

// Span represents a location in source code.
type Span struct {
	Filename string
	Line     int
	Column   int
	Start    int
	End      int
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsValid returns true if the span has valid location information.
func (s Span) IsValid() bool {
	return s.Line > 0 && s.Column > 0
}

// Width returns the number of runes the span covers, at least 1 so an
// underline is always drawable.
func (s Span) Width() int {
	if s.End-s.Start < 1 {
		return 1
	}
	return s.End - s.Start
}

// Diagnostic is a front-end diagnostic surfaced to end-users.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Code     Code
	Message  string
	Span     Span
	Label    string   // optional text printed inline with the underline
	Notes    []string // additional notes to display
	Help     string   // optional help text
}

// WithLabel returns a new diagnostic carrying an underline label.
func (d Diagnostic) WithLabel(label string) Diagnostic {
	d.Label = label
	return d
}

// WithNote adds a note to the diagnostic.
func (d Diagnostic) WithNote(note string) Diagnostic {
	d.Notes = append(d.Notes, note)
	return d
}

// WithHelp adds help text to the diagnostic.
func (d Diagnostic) WithHelp(help string) Diagnostic {
	d.Help = help
	return d
}

// OneLine renders the diagnostic in its compact single-line form,
// location first: file:line:col: severity: message.
func (d Diagnostic) OneLine() string {
	severity := d.Severity
	if severity == "" {
		severity = SeverityError
	}
	if d.Span.IsValid() {
		return fmt.Sprintf("%s: %s: %s", d.Span, severity, d.Message)
	}
	return fmt.Sprintf("%s: %s", severity, d.Message)
}
