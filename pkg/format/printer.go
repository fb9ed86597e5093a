// Package format renders noir syntax trees back to source text.
package format

import (
	"strings"

	"github.com/aybehrouz/noir/pkg/token"
)

const indentWidth = 4

// Printer accumulates formatted source. Indentation is emitted lazily by
// the first write on each line so blank lines carry no trailing spaces.
type Printer struct {
	buf     strings.Builder
	depth   int
	pending bool // a line was started and not yet indented
}

func newPrinter() *Printer {
	return &Printer{pending: true}
}

// String returns the formatted output with exactly one trailing newline.
func (p *Printer) String() string {
	return strings.TrimRight(p.buf.String(), "\n") + "\n"
}

func (p *Printer) write(s string) {
	if s == "" {
		return
	}
	if p.pending {
		p.buf.WriteString(strings.Repeat(" ", p.depth*indentWidth))
		p.pending = false
	}
	p.buf.WriteString(s)
}

func (p *Printer) writeln() {
	p.buf.WriteByte('\n')
	p.pending = true
}

func (p *Printer) indent() { p.depth++ }

func (p *Printer) dedent() {
	if p.depth > 0 {
		p.depth--
	}
}

func (p *Printer) space() { p.write(" ") }

// kw prints keywords and operators by token type, space separated.
func (p *Printer) kw(tokens ...token.TokenType) {
	for i, t := range tokens {
		if i > 0 {
			p.space()
		}
		p.write(t.String())
	}
}

// list prints n items separated by ", ".
func (p *Printer) list(n int, item func(i int)) {
	for i := range n {
		if i > 0 {
			p.write(", ")
		}
		item(i)
	}
}
