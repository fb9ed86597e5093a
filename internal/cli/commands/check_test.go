package commands

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aybehrouz/noir/internal/cli/config"
	"github.com/aybehrouz/noir/internal/cli/output"
	"github.com/aybehrouz/noir/internal/cli/testutil"
	rootutil "github.com/aybehrouz/noir/internal/testutil"
	"github.com/aybehrouz/noir/pkg/grammar"
	"github.com/aybehrouz/noir/pkg/lint"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChecker(t *testing.T, tr *testutil.TestRenderer, lintCfg *lint.Config) *checker {
	t.Helper()
	return &checker{
		cc: &CommandContext{
			Cfg:      config.Default(),
			Logger:   rootutil.NewTestLogger(t),
			Renderer: tr.Renderer,
			Grammar:  grammar.Standard,
		},
		analyzer: lint.NewAnalyzer(lintCfg),
		lint:     true,
		jobs:     2,
	}
}

func TestCheckCommand_Project(t *testing.T) {
	dir := testutil.SetupTestProject(t)

	out, _, err := runCommand(t, NewCheckCommand(), "", dir)
	require.NoError(t, err)

	testutil.AssertValidMarkdown(t, out)
	assert.Contains(t, out, "# Check results")
	assert.Contains(t, out, filepath.Join(dir, "src", "main.nr")+"` ok (4 functions)")
	assert.Contains(t, out, filepath.Join(dir, "src", "lib", "helpers.nr")+"` ok (1 functions)")
	assert.Contains(t, out, "**info** [EN01] program has no main function")
	assert.NotContains(t, out, "notes.txt")
	assert.Contains(t, out, "2 files checked, 0 failed, 0 errors, 0 warnings")
}

func TestCheckCommand_NoLint(t *testing.T) {
	dir := testutil.SetupTestProject(t)

	out, _, err := runCommand(t, NewCheckCommand(), "", "--no-lint", dir)
	require.NoError(t, err)
	assert.NotContains(t, out, "EN01")
}

func TestCheckCommand_ParseErrorFails(t *testing.T) {
	dir := testutil.SetupTestProject(t)
	testutil.WriteFile(t, dir, filepath.Join("src", "broken.nr"), testutil.BrokenSource)

	out, _, err := runCommand(t, NewCheckCommand(), "", dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCheckFailed)
	assert.Contains(t, err.Error(), "1 of 3 files")
	assert.Contains(t, out, "broken.nr` failed")
	assert.Contains(t, out, "[parse] unexpected token")
}

func TestCheckCommand_MissingPath(t *testing.T) {
	_, _, err := runCommand(t, NewCheckCommand(), "", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to access")
}

func TestChecker_Run(t *testing.T) {
	dir := testutil.SetupTestProject(t)
	testutil.WriteFile(t, dir, filepath.Join("src", "dup.nr"), "fn f(a: Field) { 1; }\nfn f(b: Field) { b; }\nfn main() {}\n")

	tr := testutil.NewTestRendererJSON()
	c := newTestChecker(t, tr, nil)

	out, err := c.Run(t.Context(), []string{dir})
	require.NoError(t, err)
	require.Len(t, out.Results, 3)

	// Results are sorted by path
	assert.Equal(t, filepath.Join(dir, "src", "dup.nr"), out.Results[0].File)
	assert.Equal(t, filepath.Join(dir, "src", "lib", "helpers.nr"), out.Results[1].File)
	assert.Equal(t, filepath.Join(dir, "src", "main.nr"), out.Results[2].File)

	dup := out.Results[0]
	assert.True(t, dup.OK, "warnings do not fail a file")
	assert.Equal(t, []string{}, dup.ABI)
	rules := make([]string, len(dup.Diagnostics))
	for i, d := range dup.Diagnostics {
		rules[i] = d.Rule
	}
	assert.ElementsMatch(t, []string{"ST04", "ST01", "ST03"}, rules)

	main := out.Results[2]
	assert.Equal(t, []string{"x", "y"}, main.ABI)
	assert.Empty(t, main.Diagnostics)

	assert.Equal(t, output.CheckSummary{Files: 3, Failed: 0, Errors: 0, Warnings: 2}, out.Summary)

	require.NoError(t, renderCheck(tr.Renderer, out))
	var decoded output.CheckOutput
	require.NoError(t, json.Unmarshal(tr.Out.Bytes(), &decoded))
	assert.Equal(t, out.Summary, decoded.Summary)
}

func TestChecker_SeverityOverride(t *testing.T) {
	dir := testutil.SetupTestProject(t)

	lintCfg, err := lint.ConfigFrom([]string{"ST03"}, map[string]string{"EN01": "error"})
	require.NoError(t, err)

	tr := testutil.NewTestRendererMarkdown()
	c := newTestChecker(t, tr, lintCfg)

	out, err := c.Run(t.Context(), []string{dir})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Summary.Failed)
	assert.Equal(t, 1, out.Summary.Errors)
	assert.False(t, out.Results[0].OK, "helpers.nr has no main")
	assert.True(t, out.Results[1].OK)
}

func TestChecker_CancelledContext(t *testing.T) {
	dir := testutil.SetupTestProject(t)
	c := newTestChecker(t, testutil.NewTestRendererMarkdown(), nil)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := c.Run(ctx, []string{dir})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRenderCheck_Text(t *testing.T) {
	out := output.CheckOutput{
		Results: []output.FileResult{{
			File: "a.nr",
			Diagnostics: []output.DiagnosticInfo{
				{File: "a.nr", Line: 2, Column: 5, Severity: "error", Rule: "parse", Message: "boom"},
			},
		}},
		Summary: output.CheckSummary{Files: 1, Failed: 1, Errors: 1},
	}

	tr := testutil.NewTestRenderer(output.ModeText, false)
	require.NoError(t, renderCheck(tr.Renderer, out))

	s := tr.Output()
	testutil.AssertNoANSI(t, s)
	assert.Contains(t, s, "a.nr")
	assert.Contains(t, s, "failed")
	assert.Contains(t, s, "a.nr:2:5 error [parse] boom")
	assert.Contains(t, s, "1 files checked, 1 failed, 1 errors, 0 warnings")
}

func TestCollectSources(t *testing.T) {
	dir := t.TempDir()
	a := testutil.WriteFile(t, dir, "a.nr", "")
	b := testutil.WriteFile(t, dir, filepath.Join("sub", "b.nr"), "")
	testutil.WriteFile(t, dir, filepath.Join(".hidden", "c.nr"), "")
	testutil.WriteFile(t, dir, "notes.md", "")
	other := testutil.WriteFile(t, dir, "explicit.txt", "")

	files, err := collectSources([]string{dir, a, other}, ".nr")
	require.NoError(t, err)
	assert.Equal(t, []string{a, other, b}, files)
}

func TestSourceWatcher(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "main.nr", "fn main() {}\n")

	w, err := newSourceWatcher([]string{dir}, ".nr", 20*time.Millisecond, rootutil.NewTestLogger(t))
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	changed := make(chan struct{}, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() { changed <- struct{}{} })
	}()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.nr"), []byte("fn main(x: Field) {}\n"), 0o600))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestSourceWatcher_Relevant(t *testing.T) {
	w := &sourceWatcher{ext: ".nr"}
	assert.True(t, w.relevant(fsnotify.Event{Name: "a.nr", Op: fsnotify.Write}))
	assert.True(t, w.relevant(fsnotify.Event{Name: "a.nr", Op: fsnotify.Remove}))
	assert.False(t, w.relevant(fsnotify.Event{Name: "a.txt", Op: fsnotify.Write}))
	assert.False(t, w.relevant(fsnotify.Event{Name: "a.nr", Op: fsnotify.Chmod}))
}
