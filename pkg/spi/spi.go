// Package spi provides Service Provider Interface types for grammar
// handlers to interact with the parser without circular dependencies.
package spi

import (
	"github.com/aybehrouz/noir/pkg/core"
	"github.com/aybehrouz/noir/pkg/token"
)

// ParserOps exposes parser operations to grammar handlers.
// This interface allows grammar code to drive the parser without creating
// circular dependencies between pkg/grammar and pkg/parser.
type ParserOps interface {
	// Token access
	Token() token.Token
	Peek() token.Token

	// Consumption
	NextToken()
	Check(t token.TokenType) bool
	CheckPeek(t token.TokenType) bool
	// ExpectPeek advances onto the upcoming token if it has type t,
	// otherwise it returns an error and leaves the cursor untouched.
	ExpectPeek(t token.TokenType) error

	// Sub-parsers
	ParseExpression(minPrecedence Precedence) (core.Expr, error)
	// ParseExpressionList parses a comma-separated list. The cursor must be
	// on the opening delimiter; on return it is on the closing end token.
	ParseExpressionList(end token.TokenType) ([]core.Expr, error)

	Position() token.Position
}

// PrefixHandler begins an expression. It is invoked with the cursor on the
// token that triggered it and leaves the cursor on the last token it
// consumed.
type PrefixHandler func(p ParserOps) (core.Expr, error)

// InfixHandler continues an expression given the already-parsed left
// operand. It is invoked with the cursor on the operator token and leaves the
// cursor on the last token it consumed.
type InfixHandler func(p ParserOps, left core.Expr) (core.Expr, error)
