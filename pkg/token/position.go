package token

import "fmt"

// Position is a location in source text. The zero value means unknown.
type Position struct {
	Line   int // 1-based
	Column int // 1-based, in bytes
	Offset int // 0-based byte offset
}

// IsValid reports whether the position refers to real source text.
func (p Position) IsValid() bool { return p.Line > 0 }

// String renders the position as line:column, or "-" when unknown.
func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is the half-open range [Start, End) of a node.
type Span struct {
	Start Position
	End   Position
}

// IsValid reports whether both ends are known.
func (s Span) IsValid() bool { return s.Start.IsValid() && s.End.IsValid() }

// Contains reports whether offset falls inside the span.
func (s Span) Contains(offset int) bool {
	return s.Start.Offset <= offset && offset < s.End.Offset
}
