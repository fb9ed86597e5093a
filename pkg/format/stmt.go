package format

import (
	"github.com/aybehrouz/noir/pkg/core"
	"github.com/aybehrouz/noir/pkg/token"
)

func (p *Printer) formatProgram(prog *core.Program) {
	if prog == nil {
		return
	}

	for _, stmt := range prog.Statements {
		p.formatStmt(stmt)
		p.writeln()
	}

	first := len(prog.Statements) == 0
	item := func(format func()) {
		if !first {
			p.writeln()
		}
		first = false
		format()
		p.writeln()
	}

	for _, fn := range prog.Functions {
		item(func() { p.formatFunction(fn) })
	}
	if prog.Main != nil {
		item(func() { p.formatFunction(prog.Main) })
	}
	for _, fn := range prog.Directives {
		item(func() {
			p.kw(token.DIRECTIVE)
			p.space()
			p.formatFunction(fn)
		})
	}
	for _, cd := range prog.CustomDirectives {
		item(func() {
			p.kw(token.DIRECTIVE)
			p.write("(" + cd.Name + ") ")
			p.formatFunction(cd.Func)
		})
	}
}

func (p *Printer) formatFunction(fn *core.FunctionDefinition) {
	if fn == nil {
		return
	}
	p.kw(token.FN)
	p.space()
	p.write(fn.Name)
	p.write("(")
	p.list(len(fn.Parameters), func(i int) {
		param := fn.Parameters[i]
		p.write(param.Name)
		if param.Type.Name != "" {
			p.write(": " + param.Type.Name)
		}
	})
	p.write(") ")
	p.formatBlock(fn.Body)
}

func (p *Printer) formatBlock(block *core.BlockStmt) {
	if block == nil || len(block.Statements) == 0 {
		p.write("{}")
		return
	}
	p.write("{")
	p.writeln()
	p.indent()
	for _, stmt := range block.Statements {
		p.formatStmt(stmt)
		p.writeln()
	}
	p.dedent()
	p.write("}")
}

func (p *Printer) formatStmt(s core.Stmt) {
	switch stmt := s.(type) {
	case *core.DeclStmt:
		p.write(stmt.Kind.String())
		p.space()
		p.write(stmt.Name)
		p.write(" = ")
		p.formatExpr(stmt.Value)
		p.write(";")
	case *core.ConstrainStmt:
		p.kw(token.CONSTRAIN)
		p.space()
		p.formatExpr(stmt.Expr)
		p.write(";")
	case *core.ExprStmt:
		p.formatExpr(stmt.Expr)
		p.write(";")
	case *core.BlockStmt:
		p.formatBlock(stmt)
	}
}
