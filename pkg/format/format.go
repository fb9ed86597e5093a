package format

import (
	"strings"

	"github.com/aybehrouz/noir/pkg/core"
)

// Expr renders an expression as source with the fewest parentheses that
// preserve its structure.
func Expr(e core.Expr) string {
	p := newPrinter()
	p.formatExpr(e)
	return strings.TrimSuffix(p.String(), "\n")
}

// SExpr renders an expression in fully parenthesised prefix form, e.g.
// (+ 1 (* 2 3)).
func SExpr(e core.Expr) string {
	var b strings.Builder
	writeSExpr(&b, e)
	return b.String()
}

// Program renders a program canonically: top-level statements first, then
// constrained functions, main, unnamed directives and custom directives,
// each group in insertion order.
func Program(prog *core.Program) string {
	p := newPrinter()
	p.formatProgram(prog)
	return p.String()
}

// Function renders a single function definition.
func Function(fn *core.FunctionDefinition) string {
	p := newPrinter()
	p.formatFunction(fn)
	return p.String()
}
