package format

import (
	"testing"

	"github.com/aybehrouz/noir/pkg/grammar"
	"github.com/aybehrouz/noir/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpr_MinimalParens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "product binds tighter", input: "1 + 2 * 3", expected: "1 + 2 * 3"},
		{name: "grouped sum", input: "(1 + 2) * 3", expected: "(1 + 2) * 3"},
		{name: "redundant parens dropped", input: "((a)) + (b * c)", expected: "a + b * c"},
		{name: "left assoc chain", input: "(a - b) - c", expected: "a - b - c"},
		{name: "right nested keeps parens", input: "a - (b - c)", expected: "a - (b - c)"},
		{name: "comparison over sum", input: "a + 1 < b", expected: "a + 1 < b"},
		{name: "equality", input: "x == (y != z)", expected: "x == (y != z)"},
		{name: "prefix over product", input: "-a * b", expected: "-a * b"},
		{name: "prefix over group", input: "-(a + b)", expected: "-(a + b)"},
		{name: "bang", input: "!ok", expected: "!ok"},
		{name: "call", input: "f(a, b + 1)", expected: "f(a, b + 1)"},
		{name: "call on group", input: "(f + g)(x)", expected: "(f + g)(x)"},
		{name: "index", input: "xs[i + 1] * 2", expected: "xs[i + 1] * 2"},
		{name: "array literal", input: "[1, 2, 3,]", expected: "[1, 2, 3]"},
		{name: "string escapes", input: `"say \"hi\""`, expected: `"say \"hi\""`},
		{name: "bools", input: "true == !false", expected: "true == !false"},
		{name: "hex literal kept", input: "0xff + 1", expected: "0xff + 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := parser.ParseExpr(tt.input, grammar.Standard)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, Expr(expr))
		})
	}
}

func TestExpr_RoundTrip(t *testing.T) {
	inputs := []string{
		"a - (b - c) * -d",
		"f(x)[0] + g(y, z) / 2",
		"(a < b) == (c > d)",
		"[[1, 2], [3]][0][1]",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			first, err := parser.ParseExpr(in, grammar.Standard)
			require.NoError(t, err)

			second, err := parser.ParseExpr(Expr(first), grammar.Standard)
			require.NoError(t, err)
			assert.Equal(t, SExpr(first), SExpr(second))
		})
	}
}

func TestSExpr(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "1 + 2 * 3", expected: "(+ 1 (* 2 3))"},
		{input: "a - b - c", expected: "(- (- a b) c)"},
		{input: "-x", expected: "(- x)"},
		{input: "f(a, 1)", expected: "(call f a 1)"},
		{input: "f()", expected: "(call f)"},
		{input: "a[i]", expected: "(index a i)"},
		{input: "[a, \"s\"]", expected: `(array a "s")`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr, err := parser.ParseExpr(tt.input, grammar.Standard)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, SExpr(expr))
		})
	}
}

func TestProgram(t *testing.T) {
	src := `
let k = 3;
directive(gadget) fn g(a: Field) { a; }
fn main(x: Field, y: Field) { constrain x == y * k; }
fn helper() {}
directive fn d() { priv t = 1; { const u = t; } }
`
	prog, err := parser.Parse(src, grammar.Standard)
	require.NoError(t, err)

	expected := `let k = 3;

fn helper() {}

fn main(x: Field, y: Field) {
    constrain x == y * k;
}

directive fn d() {
    priv t = 1;
    {
        const u = t;
    }
}

directive(gadget) fn g(a: Field) {
    a;
}
`
	assert.Equal(t, expected, Program(prog))

	// Canonical output is a fixed point
	again, err := parser.Parse(Program(prog), grammar.Standard)
	require.NoError(t, err)
	assert.Equal(t, expected, Program(again))
}

func TestProgram_Empty(t *testing.T) {
	prog, err := parser.Parse("", grammar.Standard)
	require.NoError(t, err)
	assert.Equal(t, "\n", Program(prog))
}

func TestFunction(t *testing.T) {
	prog, err := parser.Parse("fn main(a: Field,) { let b = a; }", nil)
	require.NoError(t, err)
	require.NotNil(t, prog.Main)

	assert.Equal(t, "fn main(a: Field) {\n    let b = a;\n}\n", Function(prog.Main))
}

func TestProgram_StringEscapesAreStable(t *testing.T) {
	tests := []string{
		`let s = "a\nb";` + "\n",
		`let s = "tab\there";` + "\n",
		`let s = "q\"q";` + "\n",
		`let s = "end\\";` + "\n",
		`let s = "\\\"";` + "\n",
	}

	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			prog, err := parser.Parse(src, grammar.Standard)
			require.NoError(t, err)
			assert.Equal(t, src, Program(prog))
		})
	}
}

func TestProgram_RedundantEscapeIsCanonicalised(t *testing.T) {
	prog, err := parser.Parse(`let s = "back\\slash";`, grammar.Standard)
	require.NoError(t, err)

	out := Program(prog)
	assert.Equal(t, `let s = "back\slash";`+"\n", out)

	again, err := parser.Parse(out, grammar.Standard)
	require.NoError(t, err)
	assert.Equal(t, out, Program(again))
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"a\nb"`, quote(`a\nb`))
	assert.Equal(t, `"a\\"`, quote(`a\`))
	assert.Equal(t, `"\\\""`, quote(`\"`))
	assert.Equal(t, `"\\\\"`, quote(`\\`))
}
