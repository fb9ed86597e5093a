package parser

import (
	"fmt"

	"github.com/aybehrouz/noir/pkg/core"
	"github.com/aybehrouz/noir/pkg/grammar"
	"github.com/aybehrouz/noir/pkg/spi"
	"github.com/aybehrouz/noir/pkg/token"
)

// Expression parsing by precedence climbing over the grammar registry.
//
// Precedence levels (from spi package):
//
//	PrecedenceLowest      = 1  (everything not listed below, including EOF)
//	PrecedenceEquals      = 2  (==, !=)
//	PrecedenceLessGreater = 3  (<, >)
//	PrecedenceSum         = 4  (+, -)
//	PrecedenceProduct     = 5  (*, /)
//	PrecedencePrefix      = 6  (operand of -x, !x)
//	PrecedenceCall        = 7  (f(x))
//	PrecedenceIndex       = 8  (a[i])
//
// A token of Lowest precedence can never continue an expression, so an
// unrecognised token ends the current expression instead of failing; the
// caller decides whether what follows is acceptable.

// ParseExpression parses an expression whose operators all bind tighter
// than minPrecedence (implements spi.ParserOps).
//
// The cursor must be on the first token of the expression; on return it is
// on the last token consumed.
func (p *Parser) ParseExpression(minPrecedence spi.Precedence) (core.Expr, error) {
	prefix := p.grammar.PrefixHandler(p.token.Type)
	if prefix == nil {
		return nil, p.errorAt(p.token.Pos, ErrNoPrefixHandler, fmt.Sprintf(ErrNoPrefixFor, p.token))
	}

	left, err := prefix(p)
	if err != nil {
		return nil, err
	}

	// Continue while the upcoming operator binds tighter than minPrecedence
	for minPrecedence < spi.PrecedenceOf(p.peek.Type) {
		infix := p.grammar.InfixHandler(p.peek.Type)
		if infix == nil {
			break
		}

		p.nextToken()
		left, err = infix(p, left)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

// ParseExpressionList parses a comma-separated expression list terminated by
// end (implements spi.ParserOps). The cursor must be on the opening
// delimiter; on return it is on end. A trailing comma is accepted.
func (p *Parser) ParseExpressionList(end token.TokenType) ([]core.Expr, error) {
	var list []core.Expr

	if p.checkPeek(end) {
		p.nextToken()
		return list, nil
	}

	p.nextToken()
	expr, err := p.ParseExpression(spi.PrecedenceLowest)
	if err != nil {
		return nil, err
	}
	list = append(list, expr)

	for p.checkPeek(token.COMMA) {
		p.nextToken()
		if p.checkPeek(end) {
			break
		}
		p.nextToken()
		expr, err := p.ParseExpression(spi.PrecedenceLowest)
		if err != nil {
			return nil, err
		}
		list = append(list, expr)
	}

	if err := p.expectPeek(end); err != nil {
		return nil, err
	}
	return list, nil
}

// ParseExpr parses src as a single expression that must span the whole
// input.
func ParseExpr(src string, g *grammar.Grammar) (core.Expr, error) {
	p := New(src, g)
	expr, err := p.ParseExpression(spi.PrecedenceLowest)
	if err != nil {
		return nil, err
	}
	if !p.checkPeek(token.EOF) {
		return nil, p.errorAt(p.peek.Pos, ErrSyntax, fmt.Sprintf(ErrTrailingTokens, p.peek))
	}
	return expr, nil
}
