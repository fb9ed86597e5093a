package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/aybehrouz/noir/internal/cli/config"
	"github.com/aybehrouz/noir/internal/cli/output"
	"github.com/aybehrouz/noir/pkg/core"
	"github.com/aybehrouz/noir/pkg/lint"
	_ "github.com/aybehrouz/noir/pkg/lint/rules" // register lint rules
	"github.com/aybehrouz/noir/pkg/parser"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// ErrCheckFailed is returned when at least one checked file has errors.
var ErrCheckFailed = errors.New("check failed")

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Watch  bool // Re-check on change
	NoLint bool // Parse only
	Jobs   int  // Files checked in parallel
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Parse and lint source files",
		Long: `Parse every source file under the given paths and run the lint rules
on each assembled program. Directories are searched recursively for files
with the configured source extension (source_ext, default .nr).

The command fails when any file has a parse error or an error-severity
diagnostic. With --watch it keeps running and re-checks on every change.`,
		Example: `  # Check the project
  noirc check

  # Check a directory without lint rules
  noirc check src --no-lint

  # Re-check whenever a file changes
  noirc check src --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Watch the paths and re-check on change")
	cmd.Flags().BoolVar(&opts.NoLint, "no-lint", false, "Only parse, skip lint rules")
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", runtime.NumCPU(), "Number of files checked in parallel")
	cmd.Flags().Int("debounce", config.DefaultDebounceMS, "Milliseconds to wait for changes to settle in watch mode")

	return cmd
}

func runCheck(cmd *cobra.Command, paths []string, opts *CheckOptions) error {
	cc := NewCommandContext(cmd)

	lintCfg, err := lint.ConfigFrom(cc.Cfg.Lint.Disabled, cc.Cfg.Lint.Severity)
	if err != nil {
		return err
	}

	c := &checker{
		cc:       cc,
		analyzer: lint.NewAnalyzer(lintCfg),
		lint:     !opts.NoLint,
		jobs:     opts.Jobs,
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out, err := c.Run(ctx, paths)
	if err != nil {
		return err
	}
	if err := renderCheck(cc.Renderer, out); err != nil {
		return err
	}

	if opts.Watch {
		return c.watch(ctx, paths)
	}

	if out.Summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrCheckFailed, out.Summary.Failed, out.Summary.Files)
	}
	return nil
}

// checker parses and lints files concurrently.
type checker struct {
	cc       *CommandContext
	analyzer *lint.Analyzer
	lint     bool
	jobs     int
}

// Run checks every source file under paths. Results are ordered by path.
func (c *checker) Run(ctx context.Context, paths []string) (output.CheckOutput, error) {
	files, err := collectSources(paths, c.cc.Cfg.SourceExt)
	if err != nil {
		return output.CheckOutput{}, err
	}
	c.cc.Logger.Debug("checking sources", "files", len(files), "jobs", c.jobs)

	results := make([]output.FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	if c.jobs > 0 {
		g.SetLimit(c.jobs)
	}
	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = c.checkFile(file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return output.CheckOutput{}, err
	}

	return output.CheckOutput{Results: results, Summary: summarize(results)}, nil
}

func (c *checker) checkFile(path string) output.FileResult {
	res := output.FileResult{File: path, Diagnostics: []output.DiagnosticInfo{}}

	data, err := os.ReadFile(path) //nolint:gosec // paths come from the user
	if err != nil {
		res.Diagnostics = append(res.Diagnostics, output.DiagnosticInfo{
			File: path, Severity: core.SeverityError.String(), Message: err.Error(),
		})
		return res
	}

	p := parser.New(string(data), c.cc.Grammar, c.cc.ParserOptions()...)
	prog, parseErr := p.ParseProgram()
	for _, err := range p.Errors() {
		res.Diagnostics = append(res.Diagnostics, parseDiagnostic(path, err))
	}
	res.Functions = len(prog.Functions) + len(prog.Directives) + len(prog.CustomDirectives)
	if prog.Main != nil {
		res.Functions++
	}
	if abi, ok := prog.ABI(); ok {
		res.ABI = abi
	}

	if c.lint && parseErr == nil {
		for _, d := range c.analyzer.Analyze(prog) {
			res.Diagnostics = append(res.Diagnostics, output.DiagnosticInfo{
				File:     path,
				Line:     d.Pos.Line,
				Column:   d.Pos.Column,
				Severity: d.Severity.String(),
				Rule:     d.RuleID,
				Message:  d.Message,
			})
		}
	}

	res.OK = true
	for _, d := range res.Diagnostics {
		if d.Severity == core.SeverityError.String() {
			res.OK = false
			break
		}
	}
	c.cc.Logger.Debug("checked", "file", path, "ok", res.OK, "diagnostics", len(res.Diagnostics))
	return res
}

func parseDiagnostic(path string, err error) output.DiagnosticInfo {
	d := output.DiagnosticInfo{File: path, Severity: core.SeverityError.String(), Rule: "parse", Message: err.Error()}
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		d.Line = pe.Pos.Line
		d.Column = pe.Pos.Column
		d.Message = pe.Message
	}
	return d
}

func summarize(results []output.FileResult) output.CheckSummary {
	s := output.CheckSummary{Files: len(results)}
	for _, r := range results {
		if !r.OK {
			s.Failed++
		}
		for _, d := range r.Diagnostics {
			switch d.Severity {
			case core.SeverityError.String():
				s.Errors++
			case core.SeverityWarning.String():
				s.Warnings++
			}
		}
	}
	return s
}

// collectSources expands paths into a sorted, de-duplicated file list.
// Directories contribute files ending in ext; hidden directories are
// skipped. Files named explicitly are kept whatever their extension.
func collectSources(paths []string, ext string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("failed to access %s: %w", root, err)
		}
		if !info.IsDir() {
			add(root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) == ext {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", root, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

// watch re-runs the check after every burst of changes until ctx ends.
func (c *checker) watch(ctx context.Context, paths []string) error {
	debounce := time.Duration(c.cc.Cfg.Watch.DebounceMS) * time.Millisecond
	w, err := newSourceWatcher(paths, c.cc.Cfg.SourceExt, debounce, c.cc.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	r := c.cc.Renderer
	r.Muted(fmt.Sprintf("watching %s for changes (ctrl-c to stop)", strings.Join(paths, ", ")))

	return w.Run(ctx, func() {
		out, err := c.Run(ctx, paths)
		if err != nil {
			r.Error(err.Error())
			return
		}
		r.Println("")
		if err := renderCheck(r, out); err != nil {
			r.Error(err.Error())
		}
	})
}

func renderCheck(r *output.Renderer, out output.CheckOutput) error {
	if done, err := r.Structured(out); done {
		return err
	}
	if r.EffectiveMode() == output.ModeMarkdown {
		renderCheckMarkdown(r, out)
		return nil
	}
	renderCheckText(r, out)
	return nil
}

func renderCheckText(r *output.Renderer, out output.CheckOutput) {
	styles := r.Styles()
	for _, res := range out.Results {
		status := "ok"
		if !res.OK {
			status = "failed"
		}
		r.StatusLine(res.File, status, fmt.Sprintf("%d functions", res.Functions))
		for _, d := range res.Diagnostics {
			r.Printf("    %s %s %s\n",
				styles.Muted.Render(diagnosticLocation(d)),
				styles.ForSeverity(d.Severity).Render(d.Severity),
				diagnosticMessage(d))
		}
	}
	r.Println("")
	r.Println(styles.Bold.Render(summaryLine(out.Summary)))
}

func renderCheckMarkdown(r *output.Renderer, out output.CheckOutput) {
	r.Println(output.FormatHeader(1, "Check results"))
	r.Println("")
	for _, res := range out.Results {
		status := "ok"
		if !res.OK {
			status = "failed"
		}
		r.Printf("- `%s` %s (%d functions)\n", res.File, status, res.Functions)
		for _, d := range res.Diagnostics {
			r.Printf("  - `%s` **%s** %s\n", diagnosticLocation(d), d.Severity, diagnosticMessage(d))
		}
	}
	r.Println("")
	r.Println(summaryLine(out.Summary))
}

func diagnosticLocation(d output.DiagnosticInfo) string {
	if d.Line == 0 {
		return d.File
	}
	return fmt.Sprintf("%s:%d:%d", d.File, d.Line, d.Column)
}

func diagnosticMessage(d output.DiagnosticInfo) string {
	if d.Rule == "" {
		return d.Message
	}
	return fmt.Sprintf("[%s] %s", d.Rule, d.Message)
}

func summaryLine(s output.CheckSummary) string {
	return fmt.Sprintf("%d files checked, %d failed, %d errors, %d warnings", s.Files, s.Failed, s.Errors, s.Warnings)
}
