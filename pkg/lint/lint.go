package lint

import (
	"github.com/aybehrouz/noir/pkg/core"
	"github.com/aybehrouz/noir/pkg/token"
)

// Severity is re-exported from core so rule packages need a single import.
type Severity = core.Severity

// Severity levels.
const (
	SeverityError   = core.SeverityError
	SeverityWarning = core.SeverityWarning
	SeverityInfo    = core.SeverityInfo
	SeverityHint    = core.SeverityHint
)

// RuleDef is a data-driven rule definition. Rules are stateless; all context
// comes through the Check function.
type RuleDef struct {
	ID          string        // Unique identifier, e.g., "EN01"
	Name        string        // Human-readable name, e.g., "entry.missing_main"
	Group       string        // Category, e.g., "entry", "structure"
	Description string        // One-line description
	Severity    core.Severity // Default severity
	Check       CheckFunc

	Rationale   string
	BadExample  string
	GoodExample string
}

// Info returns the rule's metadata.
func (r RuleDef) Info() core.RuleInfo {
	return core.RuleInfo{
		ID:              r.ID,
		Name:            r.Name,
		Group:           r.Group,
		Description:     r.Description,
		DefaultSeverity: r.Severity,
		Rationale:       r.Rationale,
		BadExample:      r.BadExample,
		GoodExample:     r.GoodExample,
	}
}

// CheckFunc analyzes a program and returns diagnostics.
type CheckFunc func(prog *core.Program) []Diagnostic

// Diagnostic represents a lint finding.
type Diagnostic struct {
	RuleID   string         `json:"rule" yaml:"rule"`
	Severity core.Severity  `json:"severity" yaml:"severity"`
	Message  string         `json:"message" yaml:"message"`
	Pos      token.Position `json:"pos" yaml:"pos"`
}

// IsError reports whether the diagnostic should fail a check.
func (d Diagnostic) IsError() bool {
	return d.Severity == core.SeverityError
}
