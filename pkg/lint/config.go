package lint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aybehrouz/noir/pkg/core"
)

// ErrUnknownRule is returned by ConfigFrom for a rule ID that is not
// registered.
var ErrUnknownRule = errors.New("unknown lint rule")

// Config selects rules and overrides their severity. A nil *Config runs
// every rule at its default severity. Rule IDs are matched case
// insensitively.
type Config struct {
	disabled  map[string]bool
	overrides map[string]Severity
}

// NewConfig returns a configuration with every rule enabled.
func NewConfig() *Config {
	return &Config{disabled: map[string]bool{}, overrides: map[string]Severity{}}
}

// ConfigFrom builds a Config from the lint section of the project
// configuration: rule IDs to skip and severity names keyed by rule ID.
// Every ID must name a registered rule; blank entries are ignored.
func ConfigFrom(disabled []string, severities map[string]string) (*Config, error) {
	c := NewConfig()
	for _, id := range disabled {
		if strings.TrimSpace(id) == "" {
			continue
		}
		if err := checkRule(id); err != nil {
			return nil, fmt.Errorf("lint.disabled: %w", err)
		}
		c.Disable(id)
	}
	for id, name := range severities {
		if err := checkRule(id); err != nil {
			return nil, fmt.Errorf("lint.severity: %w", err)
		}
		sev, ok := core.ParseSeverity(name)
		if !ok {
			return nil, fmt.Errorf("rule %s: unknown severity %q", id, name)
		}
		c.SetSeverity(id, sev)
	}
	return c, nil
}

func checkRule(id string) error {
	if _, ok := GetByID(ruleKey(id)); !ok {
		return fmt.Errorf("%w %q", ErrUnknownRule, id)
	}
	return nil
}

// Disable turns a rule off.
func (c *Config) Disable(ruleID string) *Config {
	c.disabled[ruleKey(ruleID)] = true
	return c
}

// SetSeverity reports a rule's findings at sev instead of its default.
func (c *Config) SetSeverity(ruleID string, sev Severity) *Config {
	c.overrides[ruleKey(ruleID)] = sev
	return c
}

// Enabled reports whether the rule runs.
func (c *Config) Enabled(ruleID string) bool {
	return c == nil || !c.disabled[ruleKey(ruleID)]
}

// SeverityOf returns the severity findings of rule r are reported at.
func (c *Config) SeverityOf(r RuleDef) Severity {
	if c != nil {
		if sev, ok := c.overrides[ruleKey(r.ID)]; ok {
			return sev
		}
	}
	return r.Severity
}

func ruleKey(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
