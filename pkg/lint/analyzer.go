package lint

import (
	"sort"

	"github.com/aybehrouz/noir/pkg/core"
)

// Analyzer runs registered lint rules against assembled programs.
type Analyzer struct {
	config *Config
}

// NewAnalyzer creates an analyzer. A nil config runs every rule at its
// default severity.
func NewAnalyzer(config *Config) *Analyzer {
	return &Analyzer{config: config}
}

// Analyze runs every enabled rule and returns the diagnostics ordered by
// source position, then rule ID.
func (a *Analyzer) Analyze(prog *core.Program) []Diagnostic {
	if prog == nil {
		return nil
	}

	var diagnostics []Diagnostic
	for _, rule := range GetAll() {
		if !a.config.Enabled(rule.ID) {
			continue
		}

		diags := rule.Check(prog)
		for i := range diags {
			diags[i].RuleID = rule.ID
			diags[i].Severity = a.config.SeverityOf(rule)
		}
		diagnostics = append(diagnostics, diags...)
	}

	sort.SliceStable(diagnostics, func(i, j int) bool {
		pi, pj := diagnostics[i].Pos, diagnostics[j].Pos
		if pi.Line != pj.Line {
			return pi.Line < pj.Line
		}
		if pi.Column != pj.Column {
			return pi.Column < pj.Column
		}
		return diagnostics[i].RuleID < diagnostics[j].RuleID
	})
	return diagnostics
}

// HasErrors reports whether any diagnostic has error severity.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.IsError() {
			return true
		}
	}
	return false
}
