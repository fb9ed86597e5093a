package parser_test

import (
	"testing"

	"github.com/aybehrouz/noir/pkg/parser"
	"github.com/aybehrouz/noir/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTypes(tokens []token.Token) []token.TokenType {
	types := make([]token.TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestLexer_Tokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.TokenType
	}{
		{
			name:  "operators",
			input: "+ - * / % ! = == != < > , ; : ( ) [ ] { }",
			want: []token.TokenType{
				token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT,
				token.BANG, token.ASSIGN, token.EQ, token.NE, token.LT, token.GT,
				token.COMMA, token.SEMICOLON, token.COLON, token.LPAREN, token.RPAREN,
				token.LBRACKET, token.RBRACKET, token.LBRACE, token.RBRACE, token.EOF,
			},
		},
		{
			name:  "keywords",
			input: "fn let priv const constrain directive true false",
			want: []token.TokenType{
				token.FN, token.LET, token.PRIV, token.CONST, token.CONSTRAIN,
				token.DIRECTIVE, token.TRUE, token.FALSE, token.EOF,
			},
		},
		{
			name:  "keywords are case sensitive",
			input: "Fn LET main",
			want:  []token.TokenType{token.IDENT, token.IDENT, token.IDENT, token.EOF},
		},
		{
			name:  "adjacent operators",
			input: "a==-b!=!c",
			want: []token.TokenType{
				token.IDENT, token.EQ, token.MINUS, token.IDENT, token.NE,
				token.BANG, token.IDENT, token.EOF,
			},
		},
		{
			name:  "comments skipped",
			input: "a // line\n/* block\n comment */ b",
			want:  []token.TokenType{token.IDENT, token.IDENT, token.EOF},
		},
		{
			name:  "unterminated block comment",
			input: "a /* never closed",
			want:  []token.TokenType{token.IDENT, token.EOF},
		},
		{
			name:  "illegal byte",
			input: "a @ b",
			want:  []token.TokenType{token.IDENT, token.ILLEGAL, token.IDENT, token.EOF},
		},
		{
			name:  "unterminated string",
			input: `"abc`,
			want:  []token.TokenType{token.ILLEGAL, token.EOF},
		},
		{
			name:  "empty input",
			input: "",
			want:  []token.TokenType{token.EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenTypes(parser.Tokenize(tt.input)))
		})
	}
}

func TestLexer_Literals(t *testing.T) {
	tests := []struct {
		input   string
		typ     token.TokenType
		literal string
	}{
		{input: "42", typ: token.INT, literal: "42"},
		{input: "0x1F", typ: token.INT, literal: "0x1F"},
		{input: "12ab", typ: token.INT, literal: "12ab"},
		{input: "_x1", typ: token.IDENT, literal: "_x1"},
		{input: `"hello"`, typ: token.STRING, literal: "hello"},
		{input: `"a \"q\" \\ b"`, typ: token.STRING, literal: `a "q" \ b`},
		{input: `"\n"`, typ: token.STRING, literal: `\n`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := parser.Tokenize(tt.input)
			require.Len(t, tokens, 2)
			assert.Equal(t, tt.typ, tokens[0].Type)
			assert.Equal(t, tt.literal, tokens[0].Literal)
		})
	}
}

func TestLexer_Positions(t *testing.T) {
	tokens := parser.Tokenize("fn main() {\n  x == y;\n}")
	require.Len(t, tokens, 11)

	expected := []struct {
		typ  token.TokenType
		line int
		col  int
	}{
		{token.FN, 1, 1},
		{token.IDENT, 1, 4},
		{token.LPAREN, 1, 8},
		{token.RPAREN, 1, 9},
		{token.LBRACE, 1, 11},
		{token.IDENT, 2, 3},
		{token.EQ, 2, 5},
		{token.IDENT, 2, 8},
		{token.SEMICOLON, 2, 9},
		{token.RBRACE, 3, 1},
		{token.EOF, 3, 2},
	}
	for i, want := range expected {
		got := tokens[i]
		assert.Equal(t, want.typ, got.Type, "token %d", i)
		assert.Equal(t, want.line, got.Pos.Line, "token %d line", i)
		assert.Equal(t, want.col, got.Pos.Column, "token %d column", i)
	}
	assert.Equal(t, 14, tokens[5].Pos.Offset)
}

func TestLexer_EOFIsSticky(t *testing.T) {
	l := parser.NewLexer("x")
	assert.Equal(t, token.IDENT, l.NextToken().Type)
	for range 3 {
		assert.Equal(t, token.EOF, l.NextToken().Type)
	}
}

func TestLexer_NULIsNotEOF(t *testing.T) {
	tokens := parser.Tokenize("a +\x00 b")
	assert.Equal(t, []token.TokenType{token.IDENT, token.PLUS, token.ILLEGAL, token.IDENT, token.EOF}, tokenTypes(tokens))
	assert.Equal(t, "\x00", tokens[2].Literal)
	assert.Equal(t, 3, tokens[2].Pos.Offset)

	tests := []struct {
		name    string
		input   string
		typ     token.TokenType
		literal string
	}{
		{name: "inside string", input: "\"a\x00b\"", typ: token.STRING, literal: "a\x00b"},
		{name: "inside line comment", input: "// c\x00d\nx", typ: token.IDENT, literal: "x"},
		{name: "inside block comment", input: "/* \x00 */ y", typ: token.IDENT, literal: "y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := parser.Tokenize(tt.input)
			require.Len(t, tokens, 2)
			assert.Equal(t, tt.typ, tokens[0].Type)
			assert.Equal(t, tt.literal, tokens[0].Literal)
		})
	}
}
