package commands

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesCommand_ListAll(t *testing.T) {
	out, _, err := runCommand(t, NewRulesCommand(), "")
	require.NoError(t, err)

	assert.Contains(t, out, "# Lint Rules")
	assert.Contains(t, out, "## Entry")
	assert.Contains(t, out, "## Structure")
	assert.Contains(t, out, "- **EN01** - entry.missing_main (`info`)")
	assert.Contains(t, out, "- **ST04** - structure.unused_parameter (`warning`)")

	// Entry rules come before structure rules
	assert.Less(t, strings.Index(out, "EN02"), strings.Index(out, "ST01"))
}

func TestRulesCommand_FilterByGroup(t *testing.T) {
	out, _, err := runCommand(t, NewRulesCommand(), "", "--group", "structure")
	require.NoError(t, err)

	assert.Contains(t, out, "## Structure")
	assert.NotContains(t, out, "## Entry")
	assert.NotContains(t, out, "EN01")
}

func TestRulesCommand_Docs(t *testing.T) {
	out, _, err := runCommand(t, NewRulesCommand(), "", "--docs", "--group", "entry")
	require.NoError(t, err)
	assert.Contains(t, out, "  > ")
}

func TestRulesCommand_JSON(t *testing.T) {
	out, _, err := runCommand(t, NewRulesCommand(), "", "--format", "json")
	require.NoError(t, err)

	var result RulesOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 6, result.Total)
	assert.Equal(t, map[string]int{"entry": 2, "structure": 4}, result.ByGroup)
	assert.Equal(t, "EN01", result.Rules[0].ID)
	assert.Equal(t, "ST04", result.Rules[len(result.Rules)-1].ID)
}

func TestRulesCommand_ShowRule(t *testing.T) {
	t.Run("markdown", func(t *testing.T) {
		out, _, err := runCommand(t, NewRulesCommand(), "", "st04")
		require.NoError(t, err)
		assert.Contains(t, out, "# ST04 - structure.unused_parameter")
		assert.Contains(t, out, "**Group:** structure | **Severity:** `warning`")
		assert.Contains(t, out, "```noir")
	})

	t.Run("json", func(t *testing.T) {
		out, _, err := runCommand(t, NewRulesCommand(), "", "--format", "json", "ST04")
		require.NoError(t, err)

		var rule map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &rule))
		assert.Equal(t, "ST04", rule["id"])
		assert.Equal(t, "warning", rule["default_severity"])
	})

	t.Run("text", func(t *testing.T) {
		out, _, err := runCommand(t, NewRulesCommand(), "", "--format", "text", "EN01")
		require.NoError(t, err)
		assert.Contains(t, out, "EN01 - entry.missing_main")
		assert.Contains(t, out, "Description")
	})

	t.Run("not found", func(t *testing.T) {
		_, _, err := runCommand(t, NewRulesCommand(), "", "XX99")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `rule "XX99" not found`)
	})
}

func TestCapitalizeFirst(t *testing.T) {
	assert.Equal(t, "Entry", capitalizeFirst("entry"))
	assert.Equal(t, "", capitalizeFirst(""))
}

func TestTruncateOneLine(t *testing.T) {
	assert.Equal(t, "a b", truncateOneLine("a\nb", 10))
	assert.Equal(t, "abcdefg...", truncateOneLine("abcdefghijklmnop", 10))
}
