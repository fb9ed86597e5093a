// Package grammar provides the capability registry that drives expression
// parsing: for each token type, an optional prefix handler (begins an
// expression) and an optional infix handler (continues one).
//
// Grammars are immutable once built. Named grammars are registered in a
// process-wide registry so callers can select one by name:
//
//	g, ok := grammar.Get("standard")
//	prog, err := parser.Parse(src, g)
package grammar

import (
	"sort"

	"github.com/aybehrouz/noir/pkg/spi"
	"github.com/aybehrouz/noir/pkg/token"
)

// Grammar is a static token-to-handler registry.
type Grammar struct {
	Name        string
	Description string

	prefixHandlers map[token.TokenType]spi.PrefixHandler
	infixHandlers  map[token.TokenType]spi.InfixHandler
}

// PrefixHandler returns the handler that begins an expression at t, or nil.
func (g *Grammar) PrefixHandler(t token.TokenType) spi.PrefixHandler {
	if h, ok := g.prefixHandlers[t]; ok {
		return h
	}
	return nil
}

// InfixHandler returns the handler that continues an expression at t, or nil.
func (g *Grammar) InfixHandler(t token.TokenType) spi.InfixHandler {
	if h, ok := g.infixHandlers[t]; ok {
		return h
	}
	return nil
}

// HasPrefix reports whether an expression can begin at t.
func (g *Grammar) HasPrefix(t token.TokenType) bool {
	return g.PrefixHandler(t) != nil
}

// HasInfix reports whether an expression can continue at t.
func (g *Grammar) HasInfix(t token.TokenType) bool {
	return g.InfixHandler(t) != nil
}

// PrefixTokens returns the token types with a prefix handler, sorted.
func (g *Grammar) PrefixTokens() []token.TokenType {
	return sortedKeys(g.prefixHandlers)
}

// InfixTokens returns the token types with an infix handler, sorted.
func (g *Grammar) InfixTokens() []token.TokenType {
	return sortedKeys(g.infixHandlers)
}

func sortedKeys[V any](m map[token.TokenType]V) []token.TokenType {
	tokens := make([]token.TokenType, 0, len(m))
	for t := range m {
		tokens = append(tokens, t)
	}
	sort.Slice(tokens, func(i, j int) bool { return tokens[i] < tokens[j] })
	return tokens
}

// Builder provides a fluent API for constructing grammars.
type Builder struct {
	grammar *Grammar
}

// NewGrammar creates a new grammar builder with the given name.
func NewGrammar(name string) *Builder {
	return &Builder{
		grammar: &Grammar{
			Name:           name,
			prefixHandlers: make(map[token.TokenType]spi.PrefixHandler),
			infixHandlers:  make(map[token.TokenType]spi.InfixHandler),
		},
	}
}

// Extend copies every handler of base into the grammar being built.
// Handlers registered afterwards replace the copied ones.
func (b *Builder) Extend(base *Grammar) *Builder {
	for t, h := range base.prefixHandlers {
		b.grammar.prefixHandlers[t] = h
	}
	for t, h := range base.infixHandlers {
		b.grammar.infixHandlers[t] = h
	}
	return b
}

// Describe sets a one-line description shown by `noirc grammars`.
func (b *Builder) Describe(description string) *Builder {
	b.grammar.Description = description
	return b
}

// AddPrefix registers the handler that begins an expression at t.
func (b *Builder) AddPrefix(t token.TokenType, handler spi.PrefixHandler) *Builder {
	b.grammar.prefixHandlers[t] = handler
	return b
}

// AddInfix registers the handler that continues an expression at t.
// Whether the loop ever reaches it is decided by spi.PrecedenceOf(t).
func (b *Builder) AddInfix(t token.TokenType, handler spi.InfixHandler) *Builder {
	b.grammar.infixHandlers[t] = handler
	return b
}

// BinaryOperators registers ParseBinary as the infix handler for every token
// in the given sets.
func (b *Builder) BinaryOperators(sets ...[]token.TokenType) *Builder {
	for _, set := range sets {
		for _, t := range set {
			b.AddInfix(t, ParseBinary)
		}
	}
	return b
}

// RemovePrefix drops the prefix handler for t.
func (b *Builder) RemovePrefix(t token.TokenType) *Builder {
	delete(b.grammar.prefixHandlers, t)
	return b
}

// RemoveInfix drops the infix handler for t.
func (b *Builder) RemoveInfix(t token.TokenType) *Builder {
	delete(b.grammar.infixHandlers, t)
	return b
}

// Build returns the constructed grammar.
func (b *Builder) Build() *Grammar {
	return b.grammar
}
