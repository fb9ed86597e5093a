package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/aybehrouz/noir/internal/cli/output"
	"github.com/spf13/cobra"
)

// ErrNoMain is returned by the abi command for programs without a main
// function.
var ErrNoMain = errors.New("program has no main function")

// NewABICommand creates the abi command.
func NewABICommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "abi <file|->",
		Short: "Print the ABI of a program",
		Long: `Print the ABI of a program: the ordered parameter names of its main
function. Programs without a main function have no ABI and the command
fails.`,
		Example: `  # ABI as a table
  noirc abi src/main.nr

  # ABI as JSON
  noirc abi src/main.nr -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)
			prog, err := cc.ParseFile(cmd, args[0])
			if err != nil {
				return err
			}

			abi, ok := prog.ABI()
			if !ok {
				return fmt.Errorf("%s: %w", args[0], ErrNoMain)
			}

			out := output.ABIOutput{File: args[0], ABI: abi, Params: paramInfos(prog.Main)}
			return renderABI(cc.Renderer, out)
		},
	}
	return cmd
}

func renderABI(r *output.Renderer, out output.ABIOutput) error {
	if done, err := r.Structured(out); done {
		return err
	}

	if len(out.Params) == 0 {
		r.Muted("main takes no parameters")
		return nil
	}

	rows := make([][]string, len(out.Params))
	for i, p := range out.Params {
		rows[i] = []string{strconv.Itoa(i), p.Name, p.Type}
	}
	r.Table([]string{"#", "Name", "Type"}, rows)
	return nil
}
