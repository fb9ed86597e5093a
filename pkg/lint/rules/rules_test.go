package rules

import (
	"testing"

	"github.com/aybehrouz/noir/pkg/lint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllGroupsRegistered(t *testing.T) {
	groups := make(map[string]int)
	for _, r := range lint.AllRules() {
		groups[r.Group]++
	}
	assert.Equal(t, map[string]int{"entry": 2, "structure": 4}, groups)
}

func TestConfigFrom(t *testing.T) {
	cfg, err := lint.ConfigFrom([]string{"st03", " ", ""}, map[string]string{"EN01": "error"})
	require.NoError(t, err)
	assert.False(t, cfg.Enabled("ST03"))
	assert.True(t, cfg.Enabled("ST04"))

	en01, ok := lint.GetByID("EN01")
	require.True(t, ok)
	assert.Equal(t, lint.SeverityError, cfg.SeverityOf(en01))
}

func TestConfigFrom_Errors(t *testing.T) {
	tests := []struct {
		name       string
		disabled   []string
		severities map[string]string
		want       string
	}{
		{name: "unknown disabled rule", disabled: []string{"ST01", "ST99"}, want: `lint.disabled: unknown lint rule "ST99"`},
		{name: "unknown severity rule", severities: map[string]string{"XX01": "error"}, want: `lint.severity: unknown lint rule "XX01"`},
		{name: "unknown severity name", severities: map[string]string{"ST01": "fatal"}, want: `unknown severity "fatal"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lint.ConfigFrom(tt.disabled, tt.severities)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := lint.ConfigFrom([]string{"NOPE"}, nil)
	assert.ErrorIs(t, err, lint.ErrUnknownRule)
}
