package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aybehrouz/noir/internal/cli/testutil"
	"github.com/aybehrouz/noir/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	unformattedSource = "fn main(x: Field) { constrain (x) == 1; }"
	formattedSource   = "fn main(x: Field) {\n    constrain x == 1;\n}\n"
)

func TestFmtCommand_Print(t *testing.T) {
	out, _, err := runCommand(t, NewFmtCommand(), unformattedSource, "-")
	require.NoError(t, err)
	assert.Equal(t, formattedSource, out)

	// Formatting is a fixed point
	again, _, err := runCommand(t, NewFmtCommand(), out, "-")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestFmtCommand_Check(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr bool
	}{
		{"formatted", formattedSource, false},
		{"unformatted", unformattedSource, true},
		{"string escapes", "let s = \"a\\nb\\t\\\"\";\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteFile(t, t.TempDir(), "main.nr", tt.src)

			out, _, err := runCommand(t, NewFmtCommand(), "", "--check", path)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrNotFormatted)
				assert.Contains(t, err.Error(), path)
			} else {
				require.NoError(t, err)
			}
			assert.Empty(t, out)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.src, string(data), "--check never rewrites")
		})
	}
}

func TestFmtCommand_Write(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "main.nr", unformattedSource)

	out, _, err := runCommand(t, NewFmtCommand(), "", "--write", path)
	require.NoError(t, err)
	assert.Contains(t, out, "formatted "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, formattedSource, string(data))

	// Second run is a no-op
	out, _, err = runCommand(t, NewFmtCommand(), "", "--write", path)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFmtCommand_WriteStdin(t *testing.T) {
	_, _, err := runCommand(t, NewFmtCommand(), formattedSource, "--write", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdin")
}

func TestFmtCommand_BrokenSourceUntouched(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), filepath.Join("src", "broken.nr"), testutil.BrokenSource)

	_, _, err := runCommand(t, NewFmtCommand(), "", "--write", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, parser.ErrSyntax)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testutil.BrokenSource, string(data))
}
