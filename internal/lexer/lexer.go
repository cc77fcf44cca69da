package lexer

import (
	"strconv"
	"strings"

	"github.com/aemreaydin/olox/internal/diag"
)

type ScanErrorKind int

const (
	ErrUnterminatedString ScanErrorKind = iota
	ErrUnterminatedBlockComment
	ErrUnexpectedChar
	ErrInvalidNumber
)

// ScanError records a single lexical problem. The scanner never stops
// on one; every error of a pass accumulates in Scanner.Errors.
type ScanError struct {
	Kind    ScanErrorKind
	Message string
	Span    Span
}

func (k ScanErrorKind) diagnosticCode() diag.Code {
	switch k {
	case ErrUnterminatedString:
		return diag.CodeLexerUnterminatedString
	case ErrUnterminatedBlockComment:
		return diag.CodeLexerUnterminatedBlockComment
	case ErrUnexpectedChar:
		return diag.CodeLexerUnexpectedChar
	case ErrInvalidNumber:
		return diag.CodeLexerInvalidNumber
	default:
		return diag.Code("LEXER_UNKNOWN_ERROR")
	}
}

// ToDiagnostic converts a scan error into the shared diagnostic structure.
func (e ScanError) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageLexer,
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
}

// Scanner turns source text into a token slice in a single forward
// pass. Malformed input never stops the pass: each problem is recorded
// and scanning resumes at the next rune.
type Scanner struct {
	source   []rune
	filename string

	start   int // index of the first rune of the lexeme being scanned
	current int // index one past the last consumed rune
	line    int // line of the rune at current (1-based)
	column  int // column of the rune at current (1-based)

	startLine   int // line where the current lexeme began
	startColumn int // column where the current lexeme began

	tokens []Token

	Errors []ScanError
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithFilename records name in every span the scanner produces.
func WithFilename(name string) Option {
	return func(s *Scanner) {
		s.filename = name
	}
}

// New creates a scanner for the given source text.
func New(source string, opts ...Option) *Scanner {
	s := &Scanner{
		source: []rune(source),
		line:   1,
		column: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan tokenizes source in one call and returns the tokens alongside
// every lexical error encountered.
func Scan(source string) ([]Token, []ScanError) {
	s := New(source)
	return s.ScanTokens(), s.Errors
}

// ScanTokens scans the entire source. The returned slice always ends
// with a zero-width EOF token, whatever errors were collected.
func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		s.beginLexeme()
		s.scanToken()
	}
	s.beginLexeme()
	s.tokens = append(s.tokens, Token{Type: EOF, Span: s.lexemeSpan()})
	return s.tokens
}

func (s *Scanner) addError(kind ScanErrorKind, msg string, span Span) {
	s.Errors = append(s.Errors, ScanError{
		Kind:    kind,
		Message: msg,
		Span:    span,
	})
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// beginLexeme marks the current position as the start of the next lexeme.
func (s *Scanner) beginLexeme() {
	s.start = s.current
	s.startLine = s.line
	s.startColumn = s.column
}

// advance consumes and returns the rune at current, keeping the
// line/column counters in step.
func (s *Scanner) advance() rune {
	ch := s.source[s.current]
	s.current++
	if ch == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return ch
}

// match consumes the next rune only when it equals expected.
func (s *Scanner) match(expected rune) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

// peek returns the next rune without advancing (0 = EOF)
func (s *Scanner) peek() rune {
	if s.current >= len(s.source) {
		return 0
	}
	return s.source[s.current]
}

// peekNext returns the rune after the next one without advancing (0 = EOF)
func (s *Scanner) peekNext() rune {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

// lexeme returns the source runes of the lexeme being scanned.
func (s *Scanner) lexeme() string {
	return string(s.source[s.start:s.current])
}

// lexemeSpan returns the span of the lexeme being scanned.
func (s *Scanner) lexemeSpan() Span {
	return Span{
		Filename: s.filename,
		Line:     s.startLine,
		Column:   s.startColumn,
		Start:    s.start,
		End:      s.current,
	}
}

func (s *Scanner) addToken(tokType TokenType) {
	s.addTokenValue(tokType, Value{})
}

func (s *Scanner) addTokenValue(tokType TokenType, value Value) {
	s.tokens = append(s.tokens, Token{
		Type:    tokType,
		Lexeme:  s.lexeme(),
		Literal: value,
		Span:    s.lexemeSpan(),
	})
}

// scanToken consumes one lexeme and appends its token, if any. Exactly
// one rune has to be consumed before returning so the pass always makes
// progress.
func (s *Scanner) scanToken() {
	ch := s.advance()
	switch ch {
	case '(':
		s.addToken(LPAREN)
	case ')':
		s.addToken(RPAREN)
	case '{':
		s.addToken(LBRACE)
	case '}':
		s.addToken(RBRACE)
	case ',':
		s.addToken(COMMA)
	case '.':
		s.addToken(DOT)
	case '-':
		s.addToken(MINUS)
	case '+':
		s.addToken(PLUS)
	case ';':
		s.addToken(SEMICOLON)
	case '*':
		s.addToken(ASTERISK)
	case '?':
		s.addToken(QUESTION)
	case ':':
		s.addToken(COLON)

	case '!':
		if s.match('=') {
			s.addToken(NOT_EQ)
		} else {
			s.addToken(BANG)
		}
	case '=':
		if s.match('=') {
			s.addToken(EQ)
		} else {
			s.addToken(ASSIGN)
		}
	case '<':
		if s.match('=') {
			s.addToken(LE)
		} else {
			s.addToken(LT)
		}
	case '>':
		if s.match('=') {
			s.addToken(GE)
		} else {
			s.addToken(GT)
		}

	case '/':
		switch {
		case s.match('/'):
			s.scanLineComment()
		case s.match('*'):
			s.scanBlockComment()
		default:
			s.addToken(SLASH)
		}

	case ' ', '\t', '\r':
		// insignificant whitespace
	case '\n':
		// advance already moved the line counter

	case '"':
		s.scanString()

	default:
		switch {
		case isDigit(ch):
			s.scanNumber()
		case isLetter(ch):
			s.scanIdentifier()
		default:
			s.addError(
				ErrUnexpectedChar,
				"unexpected character "+strconv.Quote(string(ch)),
				s.lexemeSpan(),
			)
		}
	}
}

// scanLineComment reads a // comment up to, but not including, the
// terminating newline. The comment surfaces as a COMMENT token whose
// payload is the text after the slashes with leading blanks trimmed.
func (s *Scanner) scanLineComment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
	body := string(s.source[s.start+2 : s.current])
	s.addTokenValue(COMMENT, StringValue(strings.TrimLeft(body, " \t")))
}

// scanBlockComment reads a /* */ comment, tracking nesting depth so
// inner comment pairs balance. A balanced comment surfaces as a single
// COMMENT token carrying the interior between the outermost delimiters;
// hitting EOF while depth is still positive records an error and emits
// no token.
func (s *Scanner) scanBlockComment() {
	depth := 1
	for depth > 0 {
		if s.isAtEnd() {
			s.addError(
				ErrUnterminatedBlockComment,
				"unterminated block comment",
				s.lexemeSpan(),
			)
			return
		}
		switch {
		case s.peek() == '/' && s.peekNext() == '*':
			s.advance()
			s.advance()
			depth++
		case s.peek() == '*' && s.peekNext() == '/':
			s.advance()
			s.advance()
			depth--
		default:
			s.advance()
		}
	}
	body := string(s.source[s.start+2 : s.current-2])
	s.addTokenValue(COMMENT, StringValue(body))
}

// scanString reads a string literal. There is no escape processing and
// literals may span lines; reaching EOF before the closing quote
// records an error and emits no token.
func (s *Scanner) scanString() {
	for s.peek() != '"' && !s.isAtEnd() {
		s.advance()
	}
	if s.isAtEnd() {
		s.addError(
			ErrUnterminatedString,
			"unterminated string literal",
			s.lexemeSpan(),
		)
		return
	}
	s.advance() // closing quote
	value := string(s.source[s.start+1 : s.current-1])
	s.addTokenValue(STRING, StringValue(value))
}

// scanNumber reads an integer or decimal literal. A '.' joins the
// number only when a digit follows it, so "123.abc" lexes as NUMBER,
// DOT, IDENT.
func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // the '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	lexeme := s.lexeme()
	n, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		s.addError(
			ErrInvalidNumber,
			"invalid number literal "+strconv.Quote(lexeme),
			s.lexemeSpan(),
		)
		return
	}
	s.addTokenValue(NUMBER, NumberValue(n))
}

// scanIdentifier reads an identifier and classifies exact keyword
// matches. The literal keywords true, false and nil materialize their
// values here so no later stage re-reads the lexeme.
func (s *Scanner) scanIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	tokType := LookupIdent(s.lexeme())
	switch tokType {
	case TRUE:
		s.addTokenValue(TRUE, BoolValue(true))
	case FALSE:
		s.addTokenValue(FALSE, BoolValue(false))
	case NIL:
		s.addTokenValue(NIL, NilValue())
	default:
		s.addToken(tokType)
	}
}

// Identifiers and numbers are ASCII only.

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isAlphaNumeric(ch rune) bool {
	return isLetter(ch) || isDigit(ch)
}
