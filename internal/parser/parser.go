package parser

import (
	"github.com/aemreaydin/olox/internal/ast"
	"github.com/aemreaydin/olox/internal/lexer"
)

// Parser implements recursive descent over a scanned token slice, one
// method per precedence level (see exprs.go). Parsing is fail fast:
// the first mismatch unwinds the whole parse as a *ParseError and no
// partial tree escapes.
type Parser struct {
	tokens  []lexer.Token
	current int
}

// New returns a parser over tokens. COMMENT tokens are grammar
// transparent and dropped here, so the grammar methods never see them;
// the scanner keeps emitting them for every other consumer.
func New(tokens []lexer.Token) *Parser {
	kept := make([]lexer.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Type == lexer.COMMENT {
			continue
		}
		kept = append(kept, tok)
	}
	return &Parser{tokens: kept}
}

// Parse consumes the tokens and returns the expression tree, or the
// *ParseError describing the first mismatch.
func (p *Parser) Parse() (ast.Expr, error) {
	return p.expression()
}

// peek returns the token under examination without consuming it. Once
// the terminal EOF token is reached every further peek keeps returning
// it, so EOF is its own sentinel and matches no operator set.
func (p *Parser) peek() lexer.Token {
	if p.current >= len(p.tokens) {
		if len(p.tokens) == 0 {
			return lexer.Token{Type: lexer.EOF}
		}
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current]
}

// previous returns the most recently consumed token.
func (p *Parser) previous() lexer.Token {
	if p.current == 0 {
		return p.peek()
	}
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF
}

// advance consumes the current token and returns it. The terminal EOF
// token is never consumed.
func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

// match consumes the current token when its type is among types.
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, tt := range types {
		if p.peek().Type == tt {
			p.advance()
			return true
		}
	}
	return false
}

// need consumes the current token when it has the expected type and
// fails the parse otherwise.
func (p *Parser) need(tt lexer.TokenType) (lexer.Token, error) {
	if p.peek().Type == tt {
		return p.advance(), nil
	}
	return lexer.Token{}, unexpectedToken(tt, p.peek())
}

// synchronize advances to a likely statement boundary after a failed
// parse: it steps past the offending token, then discards tokens until
// it has consumed a ';' or stands in front of a keyword that begins a
// statement. Recovery is the entry point for statement-level parsing
// built on this parser; the expression grammar itself fails fast and
// does not call it.
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}

		switch p.peek().Type {
		case lexer.CLASS, lexer.FOR, lexer.FN, lexer.IF,
			lexer.PRINT, lexer.RETURN, lexer.VAR, lexer.WHILE:
			return
		}

		p.advance()
	}
}

// mergeSpan returns a span covering start through end. Callers pass
// the earlier span first; spans are half-open, so the merged End is
// simply the larger of the two.
func mergeSpan(start, end lexer.Span) lexer.Span {
	span := start

	if span.Filename == "" {
		span.Filename = end.Filename
	}

	if span.Line == 0 && end.Line != 0 {
		span.Line = end.Line
		span.Column = end.Column
		span.Start = end.Start
	}

	if end.End > span.End {
		span.End = end.End
	}

	return span
}
