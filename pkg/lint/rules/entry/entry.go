// Package entry contains rules about the program entry point.
package entry

import (
	"fmt"

	"github.com/aybehrouz/noir/pkg/core"
	"github.com/aybehrouz/noir/pkg/lint"
	"github.com/aybehrouz/noir/pkg/token"
)

func init() {
	lint.Register(MissingMain)
	lint.Register(DirectiveNamedMain)
}

// MissingMain reports programs without an entry point.
var MissingMain = lint.RuleDef{
	ID:          "EN01",
	Name:        "entry.missing_main",
	Group:       "entry",
	Description: "Program defines no main function, so it has no ABI.",
	Severity:    lint.SeverityInfo,
	Check:       checkMissingMain,
	Rationale:   "Only main's parameters become circuit inputs. Libraries of helpers are fine, but a program meant to be proven needs main.",
	BadExample:  "fn check(x: Field) { constrain x == 1; }",
	GoodExample: "fn main(x: Field) { constrain x == 1; }",
}

func checkMissingMain(prog *core.Program) []lint.Diagnostic {
	if prog.Main != nil {
		return nil
	}
	return []lint.Diagnostic{{
		Message: "program has no main function",
		Pos:     token.Position{Line: 1, Column: 1},
	}}
}

// DirectiveNamedMain reports directive functions named main. Only a plain
// function definition can be the entry point.
var DirectiveNamedMain = lint.RuleDef{
	ID:          "EN02",
	Name:        "entry.directive_named_main",
	Group:       "entry",
	Description: "A directive function is named main but is not the entry point.",
	Severity:    lint.SeverityWarning,
	Check:       checkDirectiveNamedMain,
	BadExample:  "directive fn main(x: Field) {}",
	GoodExample: "fn main(x: Field) {}",
}

func checkDirectiveNamedMain(prog *core.Program) []lint.Diagnostic {
	var diags []lint.Diagnostic
	report := func(fn *core.FunctionDefinition, kind string) {
		if fn != nil && fn.Name == core.MainFunction {
			diags = append(diags, lint.Diagnostic{
				Message: fmt.Sprintf("%s named %q is not the program entry point", kind, core.MainFunction),
				Pos:     fn.Pos(),
			})
		}
	}
	for _, fn := range prog.Directives {
		report(fn, "directive")
	}
	for _, cd := range prog.CustomDirectives {
		report(cd.Func, "custom directive")
	}
	return diags
}
