package core_test

import (
	"testing"

	"github.com/aybehrouz/noir/pkg/core"
	"github.com/aybehrouz/noir/pkg/token"
	"github.com/stretchr/testify/assert"
)

func ident(name string) *core.Ident { return &core.Ident{Name: name} }

func TestInspect(t *testing.T) {
	// fn f() { let a = g(x, [y]) ; constrain a[0] == -z; { w; } }
	fn := &core.FunctionDefinition{
		Name: "f",
		Body: &core.BlockStmt{Statements: []core.Stmt{
			&core.DeclStmt{Kind: core.DeclLet, Name: "a", Value: &core.CallExpr{
				Func: ident("g"),
				Args: []core.Expr{ident("x"), &core.ArrayLiteral{Elements: []core.Expr{ident("y")}}},
			}},
			&core.ConstrainStmt{Expr: &core.BinaryExpr{
				Left:  &core.IndexExpr{Expr: ident("a"), Index: &core.Literal{Type: core.LiteralInt, Value: "0"}},
				Op:    token.EQ,
				Right: &core.UnaryExpr{Op: token.MINUS, Expr: ident("z")},
			}},
			&core.BlockStmt{Statements: []core.Stmt{&core.ExprStmt{Expr: ident("w")}}},
		}},
	}

	var names []string
	core.Inspect(fn, func(n core.Node) bool {
		if id, ok := n.(*core.Ident); ok {
			names = append(names, id.Name)
		}
		return true
	})
	assert.Equal(t, []string{"g", "x", "y", "a", "z", "w"}, names)
}

func TestInspect_SkipChildren(t *testing.T) {
	expr := &core.BinaryExpr{
		Left:  &core.CallExpr{Func: ident("f"), Args: []core.Expr{ident("hidden")}},
		Op:    token.PLUS,
		Right: ident("visible"),
	}

	var names []string
	core.Inspect(expr, func(n core.Node) bool {
		switch n := n.(type) {
		case *core.CallExpr:
			return false
		case *core.Ident:
			names = append(names, n.Name)
		}
		return true
	})
	assert.Equal(t, []string{"visible"}, names)
}

func TestInspect_NilBody(t *testing.T) {
	count := 0
	core.Inspect(&core.FunctionDefinition{Name: "f"}, func(core.Node) bool {
		count++
		return true
	})
	assert.Equal(t, 1, count)
}

func TestSeverity(t *testing.T) {
	for _, s := range []core.Severity{core.SeverityError, core.SeverityWarning, core.SeverityInfo, core.SeverityHint} {
		parsed, ok := core.ParseSeverity(s.String())
		assert.True(t, ok)
		assert.Equal(t, s, parsed)
	}

	parsed, ok := core.ParseSeverity("WARNING")
	assert.True(t, ok)
	assert.Equal(t, core.SeverityWarning, parsed)

	_, ok = core.ParseSeverity("fatal")
	assert.False(t, ok)
	assert.Equal(t, "unknown", core.Severity(42).String())
}
