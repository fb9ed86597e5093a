// Package parser turns noir source into a core.Program.
//
// # Usage
//
//	prog, err := parser.Parse(src, grammar.Standard)
//	if err != nil {
//	    // handle error (prog holds whatever was assembled)
//	}
//	abi, ok := prog.ABI()
//
// Expressions are parsed by precedence climbing: every token type may carry a
// prefix handler and an infix handler in a grammar.Grammar, and
// spi.PrecedenceOf decides how far an expression extends. See parser_expr.go.
//
// # Grammar Overview
//
//	program    → item* EOF
//	item       → fn_decl | directive | statement
//	fn_decl    → "fn" IDENT "(" params ")" block
//	directive  → "directive" [ "(" IDENT ")" ] fn_decl
//	params     → [ IDENT ":" IDENT { "," IDENT ":" IDENT } [","] ]
//	statement  → ("let" | "priv" | "const") IDENT "=" expr ";"
//	           | "constrain" expr ";"
//	           | block
//	           | expr ";"
//	block      → "{" statement* "}"
package parser

import (
	"fmt"
	"log/slog"

	"github.com/aybehrouz/noir/pkg/core"
	"github.com/aybehrouz/noir/pkg/grammar"
	"github.com/aybehrouz/noir/pkg/token"
)

// Parser holds a two-token window (current and upcoming) over a forward-only
// token stream. It is not safe for concurrent use.
type Parser struct {
	source  TokenSource
	token   token.Token // current token
	peek    token.Token // lookahead token
	grammar *grammar.Grammar
	logger  *slog.Logger

	errors    []error
	maxErrors int
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for classification diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithMaxErrors stops ParseProgram after n recorded errors. Zero means no
// limit.
func WithMaxErrors(n int) Option {
	return func(p *Parser) {
		p.maxErrors = n
	}
}

// New creates a parser over src using the bundled lexer. A nil grammar
// selects grammar.Standard.
func New(src string, g *grammar.Grammar, opts ...Option) *Parser {
	return NewFromSource(NewLexer(src), g, opts...)
}

// NewFromSource creates a parser over an arbitrary token stream.
func NewFromSource(src TokenSource, g *grammar.Grammar, opts ...Option) *Parser {
	if g == nil {
		g = grammar.Standard
	}
	p := &Parser{
		source:  src,
		grammar: g,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	// Read two tokens to initialize current and peek
	p.nextToken()
	p.nextToken()
	return p
}

// Parse parses a whole program. On error the returned program holds every
// item that parsed successfully.
func Parse(src string, g *grammar.Grammar, opts ...Option) (*core.Program, error) {
	return New(src, g, opts...).ParseProgram()
}

// Grammar returns the parser's grammar.
func (p *Parser) Grammar() *grammar.Grammar {
	return p.grammar
}

// Errors returns the errors recorded by ParseProgram.
func (p *Parser) Errors() []error {
	return p.errors
}

// ---------- Token Helpers ----------

// nextToken shifts the window by one token.
func (p *Parser) nextToken() {
	p.token = p.peek
	p.peek = p.source.NextToken()
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t token.TokenType) bool {
	return p.token.Type == t
}

// checkPeek returns true if the peek token is of the given type.
func (p *Parser) checkPeek(t token.TokenType) bool {
	return p.peek.Type == t
}

// expectPeek advances onto the peek token if it matches, otherwise returns
// an error and leaves the cursor where it is.
func (p *Parser) expectPeek(t token.TokenType) error {
	if p.checkPeek(t) {
		p.nextToken()
		return nil
	}
	return p.errorAt(p.peek.Pos, ErrSyntax, fmt.Sprintf(ErrUnexpectedToken, p.peek, t))
}

func (p *Parser) errorAt(pos token.Position, kind error, msg string) *ParseError {
	return &ParseError{Pos: pos, Message: msg, Err: kind}
}

// addError records a parse error.
func (p *Parser) addError(err error) {
	p.errors = append(p.errors, err)
}

// ---------- spi.ParserOps Implementation ----------
// These methods implement the spi.ParserOps interface for grammar handlers.

// Token returns the current token (implements spi.ParserOps).
func (p *Parser) Token() token.Token {
	return p.token
}

// Peek returns the lookahead token (implements spi.ParserOps).
func (p *Parser) Peek() token.Token {
	return p.peek
}

// NextToken advances to the next token (implements spi.ParserOps).
func (p *Parser) NextToken() {
	p.nextToken()
}

// Check returns true if the current token is of the given type (implements spi.ParserOps).
func (p *Parser) Check(t token.TokenType) bool {
	return p.check(t)
}

// CheckPeek returns true if the peek token is of the given type (implements spi.ParserOps).
func (p *Parser) CheckPeek(t token.TokenType) bool {
	return p.checkPeek(t)
}

// ExpectPeek advances onto the peek token if it matches (implements spi.ParserOps).
func (p *Parser) ExpectPeek(t token.TokenType) error {
	return p.expectPeek(t)
}

// Position returns the current token's position (implements spi.ParserOps).
func (p *Parser) Position() token.Position {
	return p.token.Pos
}
