package parser

import "github.com/aybehrouz/noir/pkg/token"

// TokenSource is a forward-only token stream. After the last token it must
// keep returning EOF.
type TokenSource interface {
	NextToken() token.Token
}

// SliceSource replays a fixed token sequence, then EOF forever. A trailing
// EOF in the slice is optional.
type SliceSource struct {
	tokens []token.Token
	pos    int
}

// NewSliceSource returns a TokenSource over tokens.
func NewSliceSource(tokens []token.Token) *SliceSource {
	return &SliceSource{tokens: tokens}
}

// NextToken implements TokenSource.
func (s *SliceSource) NextToken() token.Token {
	if s.pos >= len(s.tokens) {
		return token.Token{Type: token.EOF}
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok
}
