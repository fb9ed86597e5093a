package commands

import (
	"fmt"
	"strings"

	"github.com/aybehrouz/noir/internal/cli/output"
	"github.com/aybehrouz/noir/pkg/format"
	"github.com/aybehrouz/noir/pkg/parser"
	"github.com/spf13/cobra"
)

// ParseOptions holds options for the parse command.
type ParseOptions struct {
	Expr  bool // Treat the input as a single expression
	SExpr bool // Print expressions in prefix form
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}
	cmd := &cobra.Command{
		Use:   "parse <file|->",
		Short: "Parse a source file and show the assembled program",
		Long: `Parse a source file and show how its top-level items were classified:
constrained functions, the main entry point, directives and custom directives.

With --expr the input is parsed as one expression and printed back with
minimal parentheses, or in prefix form with --sexpr.`,
		Example: `  # Summarise a program
  noirc parse src/main.nr

  # Show how an expression groups
  echo '1 + 2 * 3 == x' | noirc parse --expr --sexpr -

  # Machine-readable summary
  noirc parse src/main.nr -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Expr, "expr", false, "Parse the input as a single expression")
	cmd.Flags().BoolVar(&opts.SExpr, "sexpr", false, "Print expressions in fully parenthesised prefix form")

	return cmd
}

func runParse(cmd *cobra.Command, path string, opts *ParseOptions) error {
	cc := NewCommandContext(cmd)
	r := cc.Renderer

	if opts.Expr {
		src, err := readSource(cmd, path)
		if err != nil {
			return err
		}
		expr, err := parser.ParseExpr(strings.TrimSpace(src), cc.Grammar)
		if err != nil {
			return err
		}
		info := output.ExprInfo{Source: format.Expr(expr), SExpr: format.SExpr(expr)}
		if done, err := r.Structured(info); done {
			return err
		}
		if opts.SExpr {
			r.Println(info.SExpr)
		} else {
			r.Println(info.Source)
		}
		return nil
	}

	prog, err := cc.ParseFile(cmd, path)
	if err != nil {
		return err
	}

	info := programInfo(path, prog)
	if done, err := r.Structured(info); done {
		return err
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		renderProgramMarkdown(r, info, format.Program(prog))
		return nil
	}
	renderProgramText(r, info, format.Program(prog))
	return nil
}

func renderProgramText(r *output.Renderer, info output.ProgramInfo, src string) {
	styles := r.Styles()

	r.Println(styles.Header1.Render("Program " + info.File))
	r.Println("")
	r.Printf("  %s %d\n", styles.Bold.Render("Statements:"), info.Statements)
	for _, fn := range info.Functions {
		r.Printf("  %-18s %s(%s)\n", styles.Muted.Render(kindLabel(fn)), fn.Name, joinParams(fn.Params))
	}
	r.Printf("  %s %s\n", styles.Bold.Render("ABI:"), abiLabel(info))
	r.Println("")
	r.Println(styles.Code.Render(strings.TrimRight(src, "\n")))
}

func renderProgramMarkdown(r *output.Renderer, info output.ProgramInfo, src string) {
	r.Println(output.FormatHeader(1, "Program "+info.File))
	r.Println("")
	r.Println(output.FormatKeyValue("Statements", fmt.Sprintf("%d", info.Statements)))
	r.Println(output.FormatKeyValue("ABI", abiLabel(info)))
	r.Println("")

	if len(info.Functions) > 0 {
		r.Println(output.FormatHeader(2, "Functions"))
		r.Println("")
		for _, fn := range info.Functions {
			r.Printf("- `%s(%s)` %s\n", fn.Name, joinParams(fn.Params), kindLabel(fn))
		}
		r.Println("")
	}

	r.Println(output.FormatCode("noir", src))
}

func kindLabel(fn output.FunctionInfo) string {
	if fn.Gate != "" {
		return fmt.Sprintf("%s(%s)", fn.Kind, fn.Gate)
	}
	return fn.Kind
}

func joinParams(params []output.ParamInfo) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Name + ": " + p.Type
	}
	return strings.Join(parts, ", ")
}

func abiLabel(info output.ProgramInfo) string {
	if !info.HasMain {
		return "(no main)"
	}
	if len(info.ABI) == 0 {
		return "(empty)"
	}
	return strings.Join(info.ABI, ", ")
}
