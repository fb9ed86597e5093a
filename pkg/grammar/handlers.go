package grammar

// This file contains the stateless handlers that form the "toolbox" of
// reusable expression parsing logic. They accept spi.ParserOps and can be
// composed into any grammar.

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/aybehrouz/noir/pkg/core"
	"github.com/aybehrouz/noir/pkg/spi"
	"github.com/aybehrouz/noir/pkg/token"
)

// ErrInvalidLiteral is returned when a literal token cannot be interpreted.
var ErrInvalidLiteral = errors.New("invalid literal")

// ---------- Prefix Handlers ----------

// ParseIdentifier handles a bare identifier.
func ParseIdentifier(p spi.ParserOps) (core.Expr, error) {
	tok := p.Token()
	return &core.Ident{
		NodeInfo: nodeInfo(tok.Pos, tok.End()),
		Name:     tok.Literal,
	}, nil
}

// ParseIntLiteral handles decimal and 0x-prefixed hexadecimal integers.
// Values are validated but kept as written; they may exceed 64 bits.
func ParseIntLiteral(p spi.ParserOps) (core.Expr, error) {
	tok := p.Token()
	if !validInt(tok.Literal) {
		return nil, fmt.Errorf("%w: integer %q at %s", ErrInvalidLiteral, tok.Literal, tok.Pos)
	}
	return &core.Literal{
		NodeInfo: nodeInfo(tok.Pos, tok.End()),
		Type:     core.LiteralInt,
		Value:    tok.Literal,
	}, nil
}

// validInt accepts plain decimal digits, or hex digits after a 0x prefix.
// Go's other forms (0b, 0o, leading-zero octal, underscores) are rejected.
func validInt(lit string) bool {
	for _, c := range lit {
		if c == '+' || c == '-' || c == '_' {
			return false
		}
	}
	base := 10
	if len(lit) > 2 && lit[0] == '0' && (lit[1] == 'x' || lit[1] == 'X') {
		lit, base = lit[2:], 16
	}
	_, ok := new(big.Int).SetString(lit, base)
	return ok
}

// ParseStringLiteral handles a double-quoted string.
func ParseStringLiteral(p spi.ParserOps) (core.Expr, error) {
	tok := p.Token()
	return &core.Literal{
		NodeInfo: nodeInfo(tok.Pos, tok.End()),
		Type:     core.LiteralString,
		Value:    tok.Literal,
	}, nil
}

// ParseBoolLiteral handles true and false.
func ParseBoolLiteral(p spi.ParserOps) (core.Expr, error) {
	tok := p.Token()
	return &core.Literal{
		NodeInfo: nodeInfo(tok.Pos, tok.End()),
		Type:     core.LiteralBool,
		Value:    tok.Literal,
	}, nil
}

// ParsePrefixOperator handles unary operators such as -x and !x. The operand
// is parsed at spi.PrecedencePrefix so that -a * b is (-a) * b while -f(x)
// and -a[i] still apply the call or index first.
func ParsePrefixOperator(p spi.ParserOps) (core.Expr, error) {
	op := p.Token()
	p.NextToken()
	operand, err := p.ParseExpression(spi.PrecedencePrefix)
	if err != nil {
		return nil, err
	}
	return &core.UnaryExpr{
		NodeInfo: nodeInfo(op.Pos, operand.End()),
		Op:       op.Type,
		Expr:     operand,
	}, nil
}

// ParseGrouped handles a parenthesised expression. Grouping leaves no node
// behind; the inner expression is returned as is.
func ParseGrouped(p spi.ParserOps) (core.Expr, error) {
	p.NextToken()
	inner, err := p.ParseExpression(spi.PrecedenceLowest)
	if err != nil {
		return nil, err
	}
	if err := p.ExpectPeek(token.RPAREN); err != nil {
		return nil, err
	}
	return inner, nil
}

// ParseArrayLiteral handles [a, b, c].
func ParseArrayLiteral(p spi.ParserOps) (core.Expr, error) {
	start := p.Token()
	elems, err := p.ParseExpressionList(token.RBRACKET)
	if err != nil {
		return nil, err
	}
	return &core.ArrayLiteral{
		NodeInfo: nodeInfo(start.Pos, p.Token().End()),
		Elements: elems,
	}, nil
}

// ---------- Infix Handlers ----------

// ParseBinary handles a left-associative binary operator. The right operand
// is parsed at the operator's own precedence, so a - b - c groups as
// (a - b) - c.
func ParseBinary(p spi.ParserOps, left core.Expr) (core.Expr, error) {
	return parseBinary(p, left, 0)
}

// RightAssoc returns a binary handler that parses its right operand one level
// below the operator's precedence, so a op b op c groups as a op (b op c).
func RightAssoc() spi.InfixHandler {
	return func(p spi.ParserOps, left core.Expr) (core.Expr, error) {
		return parseBinary(p, left, 1)
	}
}

func parseBinary(p spi.ParserOps, left core.Expr, lower spi.Precedence) (core.Expr, error) {
	op := p.Token()
	prec := spi.PrecedenceOf(op.Type) - lower
	p.NextToken()
	right, err := p.ParseExpression(prec)
	if err != nil {
		return nil, err
	}
	return &core.BinaryExpr{
		NodeInfo: nodeInfo(left.Pos(), right.End()),
		Left:     left,
		Op:       op.Type,
		Right:    right,
	}, nil
}

// ParseCall handles f(a, b). The cursor is on the opening parenthesis.
func ParseCall(p spi.ParserOps, left core.Expr) (core.Expr, error) {
	args, err := p.ParseExpressionList(token.RPAREN)
	if err != nil {
		return nil, err
	}
	return &core.CallExpr{
		NodeInfo: nodeInfo(left.Pos(), p.Token().End()),
		Func:     left,
		Args:     args,
	}, nil
}

// ParseIndex handles a[i]. The cursor is on the opening bracket.
func ParseIndex(p spi.ParserOps, left core.Expr) (core.Expr, error) {
	p.NextToken()
	index, err := p.ParseExpression(spi.PrecedenceLowest)
	if err != nil {
		return nil, err
	}
	if err := p.ExpectPeek(token.RBRACKET); err != nil {
		return nil, err
	}
	return &core.IndexExpr{
		NodeInfo: nodeInfo(left.Pos(), p.Token().End()),
		Expr:     left,
		Index:    index,
	}, nil
}

func nodeInfo(start, end token.Position) core.NodeInfo {
	return core.NodeInfo{Span: token.Span{Start: start, End: end}}
}
