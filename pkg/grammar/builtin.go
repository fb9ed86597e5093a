package grammar

import "github.com/aybehrouz/noir/pkg/token"

// Standard is the full expression grammar: literals, identifiers, unary
// operators, grouping, array literals, every binary operator of the
// precedence table, calls and indexing.
var Standard = NewGrammar(DefaultName).
	Describe("full expression grammar with calls, indexing and arrays").
	AddPrefix(token.IDENT, ParseIdentifier).
	AddPrefix(token.INT, ParseIntLiteral).
	AddPrefix(token.STRING, ParseStringLiteral).
	AddPrefix(token.TRUE, ParseBoolLiteral).
	AddPrefix(token.FALSE, ParseBoolLiteral).
	AddPrefix(token.MINUS, ParsePrefixOperator).
	AddPrefix(token.BANG, ParsePrefixOperator).
	AddPrefix(token.LPAREN, ParseGrouped).
	AddPrefix(token.LBRACKET, ParseArrayLiteral).
	BinaryOperators(
		EqualityOperators,
		ComparisonOperators,
		AdditiveOperators,
		MultiplicativeOperators,
	).
	AddInfix(token.LPAREN, ParseCall).
	AddInfix(token.LBRACKET, ParseIndex).
	Build()

// Arithmetic is a reduced grammar with integer arithmetic only: no
// comparisons, calls, indexing, strings or booleans.
var Arithmetic = NewGrammar("arithmetic").
	Describe("integer arithmetic over identifiers and literals").
	AddPrefix(token.IDENT, ParseIdentifier).
	AddPrefix(token.INT, ParseIntLiteral).
	AddPrefix(token.MINUS, ParsePrefixOperator).
	AddPrefix(token.LPAREN, ParseGrouped).
	BinaryOperators(AdditiveOperators, MultiplicativeOperators).
	Build()

func init() {
	Register(Standard)
	Register(Arithmetic)
}
