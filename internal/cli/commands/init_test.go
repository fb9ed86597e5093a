package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/aybehrouz/noir/internal/cli/config"
	"github.com/aybehrouz/noir/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInitCommand(t *testing.T) {
	tests := []struct {
		name      string
		setupDir  func(t *testing.T, dir string)
		args      []string
		wantErr   bool
		wantFiles []string
	}{
		{
			name: "init empty directory",
			args: []string{},
			wantFiles: []string{
				"noir.yaml",
				".gitignore",
				"src",
				"src/main.nr",
			},
		},
		{
			name: "init existing config without force",
			setupDir: func(_ *testing.T, dir string) {
				_ = os.WriteFile(filepath.Join(dir, "noir.yaml"), []byte("existing"), 0o600)
			},
			args:    []string{},
			wantErr: true,
		},
		{
			name: "init existing config with force",
			setupDir: func(_ *testing.T, dir string) {
				_ = os.WriteFile(filepath.Join(dir, "noir.yaml"), []byte("existing"), 0o600)
			},
			args:      []string{"--force"},
			wantFiles: []string{"noir.yaml", "src/main.nr"},
		},
		{
			name:      "init into subdirectory",
			args:      []string{"circuit"},
			wantFiles: []string{"circuit/noir.yaml", "circuit/src/main.nr"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			t.Chdir(tmpDir)

			if tt.setupDir != nil {
				tt.setupDir(t, tmpDir)
			}

			cmd := NewInitCommand()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, buf.String(), "noir project initialized")

			for _, f := range tt.wantFiles {
				_, err := os.Stat(filepath.Join(tmpDir, f))
				assert.False(t, os.IsNotExist(err), "expected file/dir %q to exist", f)
			}
		})
	}
}

func TestInitCommandMetadata(t *testing.T) {
	cmd := NewInitCommand()

	assert.Equal(t, "init [directory]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("force"), "--force flag should exist")
}

func TestInitCreatesLoadableProject(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	t.Cleanup(config.ResetConfig)

	cmd := NewInitCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	cfg, err := config.LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "standard", cfg.Grammar)
	assert.Equal(t, ".nr", cfg.SourceExt)
	assert.Equal(t, 200, cfg.Watch.DebounceMS)

	src, err := os.ReadFile(filepath.Join("src", "main.nr"))
	require.NoError(t, err)
	prog, err := parser.Parse(string(src), nil)
	require.NoError(t, err)
	abi, ok := prog.ABI()
	require.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, abi)
}

func TestInstallTemplate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "noir.yaml"), []byte("grammar: arithmetic\n"), 0o600))

	res, err := installTemplate("minimal", dir, false)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{".gitignore", "src/main.nr"}, res.Written)
	assert.Equal(t, []string{"noir.yaml"}, res.Skipped)

	data, err := os.ReadFile(filepath.Join(dir, "noir.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "grammar: arithmetic\n", string(data))

	res, err = installTemplate("minimal", dir, true)
	require.NoError(t, err)
	assert.Len(t, res.Written, 3)
	assert.Empty(t, res.Skipped)
}

func TestInstalledName(t *testing.T) {
	assert.Equal(t, ".gitignore", installedName("gitignore"))
	assert.Equal(t, "sub/.gitignore", installedName("sub/gitignore"))
	assert.Equal(t, "src/main.nr", installedName("src/main.nr"))
}
