package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

// runCommand executes cmd with args and stdin, returning stdout and stderr.
func runCommand(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, string, error) {
	t.Helper()

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(strings.NewReader(stdin))
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCommandMetadata(t *testing.T) {
	tests := []struct {
		cmd   *cobra.Command
		use   string
		flags []string
	}{
		{NewTokensCommand(), "tokens <file|->", []string{"eof"}},
		{NewParseCommand(), "parse <file|->", []string{"expr", "sexpr"}},
		{NewABICommand(), "abi <file|->", nil},
		{NewCheckCommand(), "check [path...]", []string{"watch", "no-lint", "jobs", "debounce"}},
		{NewFmtCommand(), "fmt <file|->", []string{"write", "check"}},
		{NewREPLCommand(), "repl", []string{"sexpr"}},
		{NewGrammarsCommand(), "grammars [name]", nil},
		{NewRulesCommand(), "rules [rule-id]", []string{"group", "docs", "format"}},
		{NewInitCommand(), "init [directory]", []string{"force"}},
	}

	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.NotEmpty(t, tt.cmd.Short, "Short should not be empty")
			assert.NotEmpty(t, tt.cmd.Long, "Long should not be empty")
			for _, flag := range tt.flags {
				assert.NotNil(t, tt.cmd.Flags().Lookup(flag), "flag %q should exist", flag)
			}
		})
	}
}

func TestCommandsRequireArgs(t *testing.T) {
	for _, cmd := range []*cobra.Command{NewTokensCommand(), NewParseCommand(), NewABICommand(), NewFmtCommand()} {
		t.Run(cmd.Name(), func(t *testing.T) {
			_, _, err := runCommand(t, cmd, "")
			assert.Error(t, err)
		})
	}
}
