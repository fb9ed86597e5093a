package format

import (
	"strings"

	"github.com/aybehrouz/noir/pkg/core"
	"github.com/aybehrouz/noir/pkg/spi"
	"github.com/aybehrouz/noir/pkg/token"
)

// precedenceAtom ranks nodes that never need parentheses.
const precedenceAtom = spi.PrecedenceIndex + 1

func (p *Printer) formatExpr(e core.Expr) {
	if e == nil {
		return
	}

	switch expr := e.(type) {
	case *core.Ident:
		p.write(expr.Name)
	case *core.Literal:
		p.formatLiteral(expr)
	case *core.UnaryExpr:
		p.formatUnaryExpr(expr)
	case *core.BinaryExpr:
		p.formatBinaryExpr(expr)
	case *core.CallExpr:
		p.formatCallExpr(expr)
	case *core.IndexExpr:
		p.formatIndexExpr(expr)
	case *core.ArrayLiteral:
		p.write("[")
		p.list(len(expr.Elements), func(i int) { p.formatExpr(expr.Elements[i]) })
		p.write("]")
	}
}

// exprPrecedence returns how tightly e binds when printed without
// parentheses.
func exprPrecedence(e core.Expr) spi.Precedence {
	switch expr := e.(type) {
	case *core.BinaryExpr:
		return spi.PrecedenceOf(expr.Op)
	case *core.UnaryExpr:
		return spi.PrecedencePrefix
	case *core.CallExpr:
		return spi.PrecedenceCall
	case *core.IndexExpr:
		return spi.PrecedenceIndex
	default:
		return precedenceAtom
	}
}

// formatOperand prints e, parenthesised when it binds looser than min.
func (p *Printer) formatOperand(e core.Expr, minPrecedence spi.Precedence) {
	if exprPrecedence(e) < minPrecedence {
		p.write("(")
		p.formatExpr(e)
		p.write(")")
		return
	}
	p.formatExpr(e)
}

func (p *Printer) formatLiteral(lit *core.Literal) {
	switch lit.Type {
	case core.LiteralString:
		p.write(quote(lit.Value))
	case core.LiteralBool:
		if lit.Value == "true" {
			p.kw(token.TRUE)
		} else {
			p.kw(token.FALSE)
		}
	default:
		p.write(lit.Value)
	}
}

func (p *Printer) formatUnaryExpr(expr *core.UnaryExpr) {
	p.kw(expr.Op)
	p.formatOperand(expr.Expr, spi.PrecedencePrefix)
}

// formatBinaryExpr assumes left associativity: a right operand of equal
// precedence keeps its parentheses.
func (p *Printer) formatBinaryExpr(expr *core.BinaryExpr) {
	prec := spi.PrecedenceOf(expr.Op)
	p.formatOperand(expr.Left, prec)
	p.space()
	p.kw(expr.Op)
	p.space()
	p.formatOperand(expr.Right, prec+1)
}

func (p *Printer) formatCallExpr(expr *core.CallExpr) {
	p.formatOperand(expr.Func, spi.PrecedenceCall)
	p.write("(")
	p.list(len(expr.Args), func(i int) { p.formatExpr(expr.Args[i]) })
	p.write(")")
}

func (p *Printer) formatIndexExpr(expr *core.IndexExpr) {
	p.formatOperand(expr.Expr, spi.PrecedenceIndex)
	p.write("[")
	p.formatExpr(expr.Index)
	p.write("]")
}

// quote is the inverse of the lexer's string decoding, where only \" and
// \\ are escapes. Any other backslash is written as is.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			if i+1 == len(s) || s[i+1] == '"' || s[i+1] == '\\' {
				b.WriteString(`\\`)
			} else {
				b.WriteByte(c)
			}
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func writeSExpr(b *strings.Builder, e core.Expr) {
	switch expr := e.(type) {
	case nil:
		b.WriteString("()")
	case *core.Ident:
		b.WriteString(expr.Name)
	case *core.Literal:
		if expr.Type == core.LiteralString {
			b.WriteString(quote(expr.Value))
		} else {
			b.WriteString(expr.Value)
		}
	case *core.UnaryExpr:
		writeForm(b, expr.Op.String(), expr.Expr)
	case *core.BinaryExpr:
		writeForm(b, expr.Op.String(), expr.Left, expr.Right)
	case *core.CallExpr:
		writeForm(b, "call", append([]core.Expr{expr.Func}, expr.Args...)...)
	case *core.IndexExpr:
		writeForm(b, "index", expr.Expr, expr.Index)
	case *core.ArrayLiteral:
		writeForm(b, "array", expr.Elements...)
	default:
		b.WriteString("?")
	}
}

func writeForm(b *strings.Builder, head string, args ...core.Expr) {
	b.WriteByte('(')
	b.WriteString(head)
	for _, arg := range args {
		b.WriteByte(' ')
		writeSExpr(b, arg)
	}
	b.WriteByte(')')
}
