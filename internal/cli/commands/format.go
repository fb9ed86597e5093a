package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/aybehrouz/noir/pkg/format"
	"github.com/aybehrouz/noir/pkg/parser"
	"github.com/spf13/cobra"
)

// ErrNotFormatted is returned by fmt --check when a file would change.
var ErrNotFormatted = errors.New("file is not formatted")

// FmtOptions holds options for the fmt command.
type FmtOptions struct {
	Write bool // Rewrite the file in place
	Check bool // Fail if the file is not formatted
}

// NewFmtCommand creates the fmt command.
func NewFmtCommand() *cobra.Command {
	opts := &FmtOptions{}
	cmd := &cobra.Command{
		Use:   "fmt <file|->",
		Short: "Print a source file in canonical form",
		Long: `Parse a source file and print it in canonical form: top-level statements,
then functions, main, directives and custom directives, with minimal
parentheses and four-space indentation. Comments are not preserved.

Files with parse errors are never rewritten.`,
		Example: `  # Print the formatted program
  noirc fmt src/main.nr

  # Rewrite in place
  noirc fmt --write src/main.nr

  # Fail in CI when a file is not formatted
  noirc fmt --check src/main.nr`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Write, "write", false, "Write the result back to the file")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "Exit with an error if the file is not formatted")

	return cmd
}

func runFmt(cmd *cobra.Command, path string, opts *FmtOptions) error {
	if opts.Write && path == stdinPath {
		return fmt.Errorf("--write cannot be used with stdin")
	}

	cc := NewCommandContext(cmd)
	src, err := readSource(cmd, path)
	if err != nil {
		return err
	}

	prog, err := parser.Parse(src, cc.Grammar, cc.ParserOptions()...)
	if err != nil {
		return err
	}
	formatted := format.Program(prog)

	switch {
	case opts.Check:
		if formatted != src {
			return fmt.Errorf("%s: %w", path, ErrNotFormatted)
		}
		return nil
	case opts.Write:
		if formatted == src {
			cc.Logger.Debug("already formatted", "file", path)
			return nil
		}
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(formatted), info.Mode().Perm()); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		cc.Renderer.Success("formatted " + path)
		return nil
	default:
		_, err := fmt.Fprint(cmd.OutOrStdout(), formatted)
		return err
	}
}
