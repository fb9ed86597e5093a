// Package structure contains rules about function and directive
// definitions.
package structure

import (
	"fmt"

	"github.com/aybehrouz/noir/pkg/core"
	"github.com/aybehrouz/noir/pkg/lint"
	"github.com/aybehrouz/noir/pkg/token"
)

func init() {
	lint.Register(DuplicateFunction)
	lint.Register(DuplicateDirective)
	lint.Register(EmptyFunction)
	lint.Register(UnusedParameter)
}

// DuplicateFunction reports constrained functions defined more than once.
var DuplicateFunction = lint.RuleDef{
	ID:          "ST01",
	Name:        "structure.duplicate_function",
	Group:       "structure",
	Description: "A function name is defined more than once.",
	Severity:    lint.SeverityWarning,
	Check:       checkDuplicateFunction,
	Rationale:   "Every definition is kept, so calls by name are ambiguous for later stages.",
	BadExample:  "fn f() {}\nfn f() {}",
}

func checkDuplicateFunction(prog *core.Program) []lint.Diagnostic {
	var diags []lint.Diagnostic
	seen := make(map[string]token.Position)
	for _, fn := range prog.Functions {
		if first, ok := seen[fn.Name]; ok {
			diags = append(diags, lint.Diagnostic{
				Message: fmt.Sprintf("function %q already defined at %s", fn.Name, first),
				Pos:     fn.Pos(),
			})
			continue
		}
		seen[fn.Name] = fn.Pos()
	}
	return diags
}

// DuplicateDirective reports custom directive names used more than once.
var DuplicateDirective = lint.RuleDef{
	ID:          "ST02",
	Name:        "structure.duplicate_directive",
	Group:       "structure",
	Description: "A custom directive name is used more than once.",
	Severity:    lint.SeverityWarning,
	Check:       checkDuplicateDirective,
	Rationale:   "All bindings are retained in order; later stages may resolve the name to either function.",
	BadExample:  "directive(gate) fn a() {}\ndirective(gate) fn b() {}",
}

func checkDuplicateDirective(prog *core.Program) []lint.Diagnostic {
	var diags []lint.Diagnostic
	seen := make(map[string]string)
	for _, cd := range prog.CustomDirectives {
		if first, ok := seen[cd.Name]; ok {
			diags = append(diags, lint.Diagnostic{
				Message: fmt.Sprintf("custom directive %q already bound to %s", cd.Name, first),
				Pos:     cd.Func.Pos(),
			})
			continue
		}
		seen[cd.Name] = cd.Func.Name
	}
	return diags
}

// EmptyFunction suggests removing functions without statements.
var EmptyFunction = lint.RuleDef{
	ID:          "ST03",
	Name:        "structure.empty_function",
	Group:       "structure",
	Description: "Function body has no statements.",
	Severity:    lint.SeverityHint,
	Check:       checkEmptyFunction,
}

func checkEmptyFunction(prog *core.Program) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, fn := range allFunctions(prog) {
		if fn.Body == nil || len(fn.Body.Statements) == 0 {
			diags = append(diags, lint.Diagnostic{
				Message: fmt.Sprintf("function %q has an empty body", fn.Name),
				Pos:     fn.Pos(),
			})
		}
	}
	return diags
}

// UnusedParameter reports parameters never referenced in the body.
var UnusedParameter = lint.RuleDef{
	ID:          "ST04",
	Name:        "structure.unused_parameter",
	Group:       "structure",
	Description: "Function parameter is never referenced.",
	Severity:    lint.SeverityWarning,
	Check:       checkUnusedParameter,
	Rationale:   "An unused main parameter is still part of the ABI and becomes an unconstrained input.",
	BadExample:  "fn main(x: Field, y: Field) { constrain x == 1; }",
	GoodExample: "fn main(x: Field) { constrain x == 1; }",
}

func checkUnusedParameter(prog *core.Program) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, fn := range allFunctions(prog) {
		if len(fn.Parameters) == 0 || fn.Body == nil || len(fn.Body.Statements) == 0 {
			continue
		}

		used := make(map[string]bool)
		core.Inspect(fn.Body, func(n core.Node) bool {
			if id, ok := n.(*core.Ident); ok {
				used[id.Name] = true
			}
			return true
		})

		for _, param := range fn.Parameters {
			if !used[param.Name] {
				diags = append(diags, lint.Diagnostic{
					Message: fmt.Sprintf("parameter %q of %q is never used", param.Name, fn.Name),
					Pos:     fn.Pos(),
				})
			}
		}
	}
	return diags
}

// allFunctions returns every function of the program in classification
// order: constrained functions, main, directives, custom directives.
func allFunctions(prog *core.Program) []*core.FunctionDefinition {
	fns := make([]*core.FunctionDefinition, 0, len(prog.Functions)+1+len(prog.Directives)+len(prog.CustomDirectives))
	fns = append(fns, prog.Functions...)
	if prog.Main != nil {
		fns = append(fns, prog.Main)
	}
	fns = append(fns, prog.Directives...)
	for _, cd := range prog.CustomDirectives {
		fns = append(fns, cd.Func)
	}
	return fns
}
