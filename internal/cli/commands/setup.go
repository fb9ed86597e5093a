package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aybehrouz/noir/internal/cli/config"
	"github.com/aybehrouz/noir/internal/cli/output"
	"github.com/aybehrouz/noir/pkg/core"
	"github.com/aybehrouz/noir/pkg/grammar"
	"github.com/aybehrouz/noir/pkg/parser"
	"github.com/spf13/cobra"
)

// stdinPath names standard input as a source argument.
const stdinPath = "-"

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
	Grammar  *grammar.Grammar
}

// NewCommandContext builds a CommandContext from the loaded configuration,
// falling back to defaults when the command runs outside the root command.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
		Grammar:  cfg.GrammarOrDefault(),
	}
}

// ParserOptions returns the parser options implied by the configuration.
func (c *CommandContext) ParserOptions() []parser.Option {
	return []parser.Option{
		parser.WithLogger(c.Logger),
		parser.WithMaxErrors(c.Cfg.MaxErrors),
	}
}

// ParseFile reads and parses path. The program is returned even when
// parsing fails.
func (c *CommandContext) ParseFile(cmd *cobra.Command, path string) (*core.Program, error) {
	src, err := readSource(cmd, path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("parsing", slog.String("file", path), slog.String("grammar", c.Grammar.Name))
	return parser.Parse(src, c.Grammar, c.ParserOptions()...)
}

// getConfig returns the current configuration, or defaults when none was
// loaded.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}

// readSource reads a file, or standard input when path is "-".
func readSource(cmd *cobra.Command, path string) (string, error) {
	if path == stdinPath {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // user-supplied source path
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// programInfo builds the structured summary of prog.
func programInfo(file string, prog *core.Program) output.ProgramInfo {
	info := output.ProgramInfo{
		File:       file,
		Statements: len(prog.Statements),
		Functions:  []output.FunctionInfo{},
		ABI:        []string{},
	}
	for _, fn := range prog.Functions {
		info.Functions = append(info.Functions, functionInfo(fn, "function", ""))
	}
	if prog.Main != nil {
		info.Functions = append(info.Functions, functionInfo(prog.Main, "main", ""))
	}
	for _, fn := range prog.Directives {
		info.Functions = append(info.Functions, functionInfo(fn, "directive", ""))
	}
	for _, cd := range prog.CustomDirectives {
		info.Functions = append(info.Functions, functionInfo(cd.Func, "custom_directive", cd.Name))
	}
	if abi, ok := prog.ABI(); ok {
		info.ABI = abi
		info.HasMain = true
	}
	return info
}

func functionInfo(fn *core.FunctionDefinition, kind, gate string) output.FunctionInfo {
	return output.FunctionInfo{
		Name:   fn.Name,
		Kind:   kind,
		Gate:   gate,
		Params: paramInfos(fn),
		Line:   fn.Pos().Line,
	}
}

func paramInfos(fn *core.FunctionDefinition) []output.ParamInfo {
	params := make([]output.ParamInfo, len(fn.Parameters))
	for i, p := range fn.Parameters {
		params[i] = output.ParamInfo{Name: p.Name, Type: p.Type.Name}
	}
	return params
}
