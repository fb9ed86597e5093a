package commands

import (
	"github.com/aybehrouz/noir/internal/cli/output"
	"github.com/aybehrouz/noir/pkg/parser"
	"github.com/aybehrouz/noir/pkg/token"
	"github.com/spf13/cobra"
)

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	var withEOF bool

	cmd := &cobra.Command{
		Use:   "tokens <file|->",
		Short: "Print the token stream of a source file",
		Long: `Lex a source file and print every token with its position.

Unknown characters appear as ILLEGAL tokens; lexing never fails.`,
		Example: `  # Tokens of a file
  noirc tokens src/main.nr

  # Tokens from stdin as JSON
  echo 'a + b' | noirc tokens - -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)
			src, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}
			return renderTokens(cc.Renderer, parser.Tokenize(src), withEOF)
		},
	}

	cmd.Flags().BoolVar(&withEOF, "eof", false, "Include the trailing EOF token")

	return cmd
}

func renderTokens(r *output.Renderer, toks []token.Token, withEOF bool) error {
	infos := make([]output.TokenInfo, 0, len(toks))
	for _, tok := range toks {
		if tok.Type == token.EOF && !withEOF {
			continue
		}
		infos = append(infos, output.TokenInfo{
			Pos:     tok.Pos.String(),
			Type:    tok.Type.String(),
			Literal: tokenLiteral(tok),
		})
	}

	if done, err := r.Structured(infos); done {
		return err
	}

	rows := make([][]string, len(infos))
	for i, info := range infos {
		rows[i] = []string{info.Pos, info.Type, info.Literal}
	}
	r.Table([]string{"Pos", "Type", "Literal"}, rows)
	return nil
}

// tokenLiteral returns the literal for tokens whose text is not implied by
// their type.
func tokenLiteral(tok token.Token) string {
	if token.IsLiteral(tok.Type) || tok.Type == token.ILLEGAL {
		return tok.Literal
	}
	return ""
}
