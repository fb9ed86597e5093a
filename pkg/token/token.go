// Package token defines the token types produced by the lexer and consumed
// by the expression and statement parsers.
package token

import "fmt"

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	IDENT  // identifier
	INT    // 123, 0x7f
	STRING // "hello"

	// Operators
	PLUS      // +
	MINUS     // -
	STAR      // *
	SLASH     // /
	PERCENT   // %
	BANG      // !
	ASSIGN    // =
	EQ        // ==
	NE        // !=
	LT        // <
	GT        // >
	COMMA     // ,
	SEMICOLON // ;
	COLON     // :
	LPAREN    // (
	RPAREN    // )
	LBRACKET  // [
	RBRACKET  // ]
	LBRACE    // {
	RBRACE    // }

	// Keywords (alphabetical)
	CONST
	CONSTRAIN
	DIRECTIVE
	FALSE
	FN
	LET
	PRIV
	TRUE
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:  "IDENT",
	INT:    "INT",
	STRING: "STRING",

	PLUS:      "+",
	MINUS:     "-",
	STAR:      "*",
	SLASH:     "/",
	PERCENT:   "%",
	BANG:      "!",
	ASSIGN:    "=",
	EQ:        "==",
	NE:        "!=",
	LT:        "<",
	GT:        ">",
	COMMA:     ",",
	SEMICOLON: ";",
	COLON:     ":",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACKET:  "[",
	RBRACKET:  "]",
	LBRACE:    "{",
	RBRACE:    "}",

	CONST:     "const",
	CONSTRAIN: "constrain",
	DIRECTIVE: "directive",
	FALSE:     "false",
	FN:        "fn",
	LET:       "let",
	PRIV:      "priv",
	TRUE:      "true",
}

// keywords maps keyword spellings to their token types. Keywords are case
// sensitive.
var keywords = map[string]TokenType{
	"const":     CONST,
	"constrain": CONSTRAIN,
	"directive": DIRECTIVE,
	"false":     FALSE,
	"fn":        FN,
	"let":       LET,
	"priv":      PRIV,
	"true":      TRUE,
}

// LookupIdent returns the keyword token type for ident, or IDENT.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword returns true if the token type is a keyword.
func IsKeyword(t TokenType) bool {
	return t >= CONST && t <= TRUE
}

// IsOperator returns true if the token type is an operator or delimiter.
func IsOperator(t TokenType) bool {
	return t >= PLUS && t <= RBRACE
}

// IsLiteral returns true if the token type carries a literal value.
func IsLiteral(t TokenType) bool {
	return t >= IDENT && t <= STRING
}

// Token represents a lexical token with position information.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// String renders the token for diagnostics, e.g. IDENT(x) or "+".
func (t Token) String() string {
	switch {
	case IsLiteral(t.Type):
		return fmt.Sprintf("%s(%s)", t.Type, t.Literal)
	case t.Type == ILLEGAL:
		return fmt.Sprintf("ILLEGAL(%q)", t.Literal)
	default:
		return fmt.Sprintf("%q", t.Type.String())
	}
}

// End returns the position immediately after the token's text. Escapes
// inside string literals are not accounted for.
func (t Token) End() Position {
	n := len(t.Literal)
	if t.Type == STRING {
		n += 2
	}
	return Position{Line: t.Pos.Line, Column: t.Pos.Column + n, Offset: t.Pos.Offset + n}
}
