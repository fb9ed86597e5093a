package spi

import (
	"fmt"

	"github.com/aybehrouz/noir/pkg/token"
)

// Precedence is an operator binding strength. Levels carry explicit ranks so
// comparisons do not depend on declaration order.
type Precedence int

// Precedence levels, lowest to highest.
const (
	PrecedenceLowest      Precedence = 1
	PrecedenceEquals      Precedence = 2 // ==, !=
	PrecedenceLessGreater Precedence = 3 // <, >
	PrecedenceSum         Precedence = 4 // +, -
	PrecedenceProduct     Precedence = 5 // *, /
	PrecedencePrefix      Precedence = 6 // -x, !x (requested by prefix handlers only)
	PrecedenceCall        Precedence = 7 // f(x)
	PrecedenceIndex       Precedence = 8 // a[i]
)

var precedenceNames = map[Precedence]string{
	PrecedenceLowest:      "Lowest",
	PrecedenceEquals:      "Equals",
	PrecedenceLessGreater: "LessGreater",
	PrecedenceSum:         "Sum",
	PrecedenceProduct:     "Product",
	PrecedencePrefix:      "Prefix",
	PrecedenceCall:        "Call",
	PrecedenceIndex:       "Index",
}

// String returns the level name.
func (p Precedence) String() string {
	if name, ok := precedenceNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Precedence(%d)", int(p))
}

// PrecedenceOf returns the binding strength of t in infix position. Every
// token without an entry, including identifiers, literals, keywords and EOF,
// is PrecedenceLowest, which ends the current expression.
func PrecedenceOf(t token.TokenType) Precedence {
	switch t {
	case token.EQ, token.NE:
		return PrecedenceEquals
	case token.LT, token.GT:
		return PrecedenceLessGreater
	case token.PLUS, token.MINUS:
		return PrecedenceSum
	case token.STAR, token.SLASH:
		return PrecedenceProduct
	case token.LPAREN:
		return PrecedenceCall
	case token.LBRACKET:
		return PrecedenceIndex
	default:
		return PrecedenceLowest
	}
}
