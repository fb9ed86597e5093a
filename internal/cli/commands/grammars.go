package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aybehrouz/noir/internal/cli/output"
	"github.com/aybehrouz/noir/pkg/grammar"
	"github.com/aybehrouz/noir/pkg/spi"
	"github.com/aybehrouz/noir/pkg/token"
	"github.com/spf13/cobra"
)

// NewGrammarsCommand creates the grammars command.
func NewGrammarsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grammars [name]",
		Short: "List registered expression grammars",
		Long: `List the registered expression grammars, or show the prefix and infix
capabilities of one grammar together with the binding precedence of each
infix token.`,
		Example: `  # List grammars
  noirc grammars

  # Show the capabilities of the arithmetic grammar
  noirc grammars arithmetic`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return grammar.List(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			r := NewCommandContext(cmd).Renderer
			if len(args) == 1 {
				g, ok := grammar.Get(args[0])
				if !ok {
					return fmt.Errorf("unknown grammar %q (available: %s)", args[0], strings.Join(grammar.List(), ", "))
				}
				return showGrammar(r, g)
			}
			return listGrammars(r)
		},
	}
	return cmd
}

func grammarInfo(g *grammar.Grammar) output.GrammarInfo {
	return output.GrammarInfo{
		Name:        g.Name,
		Description: g.Description,
		Prefix:      tokenNames(g.PrefixTokens()),
		Infix:       tokenNames(g.InfixTokens()),
	}
}

func tokenNames(types []token.TokenType) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return names
}

func listGrammars(r *output.Renderer) error {
	var infos []output.GrammarInfo
	for _, name := range grammar.List() {
		g, _ := grammar.Get(name)
		infos = append(infos, grammarInfo(g))
	}

	if done, err := r.Structured(infos); done {
		return err
	}

	rows := make([][]string, len(infos))
	for i, info := range infos {
		rows[i] = []string{info.Name, strconv.Itoa(len(info.Prefix)), strconv.Itoa(len(info.Infix)), info.Description}
	}
	r.Table([]string{"Name", "Prefix", "Infix", "Description"}, rows)
	return nil
}

func showGrammar(r *output.Renderer, g *grammar.Grammar) error {
	info := grammarInfo(g)
	if done, err := r.Structured(info); done {
		return err
	}

	r.Header(1, "Grammar "+g.Name)
	if g.Description != "" {
		r.Println(g.Description)
	}
	r.Println("")

	r.Header(2, "Prefix")
	r.Println(strings.Join(info.Prefix, " "))
	r.Println("")

	r.Header(2, "Infix")
	infix := g.InfixTokens()
	rows := make([][]string, len(infix))
	for i, t := range infix {
		prec := spi.PrecedenceOf(t)
		rows[i] = []string{t.String(), prec.String(), strconv.Itoa(int(prec))}
	}
	r.Table([]string{"Token", "Precedence", "Rank"}, rows)
	return nil
}
