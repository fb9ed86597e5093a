package parser

import (
	"errors"
	"fmt"

	"github.com/aybehrouz/noir/pkg/token"
)

// ErrNoPrefixHandler is reported when an expression is expected but the
// current token cannot begin one. It is the only failure of the expression
// loop itself.
var ErrNoPrefixHandler = errors.New("no prefix parse function")

// ErrSyntax is wrapped by statement- and function-level errors.
var ErrSyntax = errors.New("syntax error")

// ParseError represents a parsing error with position information.
type ParseError struct {
	Pos     token.Position
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Unwrap returns the sentinel the error was classified under.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Common error messages
const (
	ErrUnexpectedToken   = "unexpected token %s, expected %s"
	ErrNoPrefixFor       = "no prefix parse function for %s"
	ErrUnterminatedBlock = "unterminated block, expected }"
	ErrTrailingTokens    = "unexpected token %s after expression"
)
