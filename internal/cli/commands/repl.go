package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aybehrouz/noir/pkg/core"
	"github.com/aybehrouz/noir/pkg/format"
	"github.com/aybehrouz/noir/pkg/grammar"
	"github.com/aybehrouz/noir/pkg/parser"
	"github.com/aybehrouz/noir/pkg/token"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

const (
	replPrompt         = "noir> "
	replContinuePrompt = "  ... "
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	var sexpr bool

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive expression and program shell",
		Long: `Start an interactive shell.

Expressions are parsed and echoed back with minimal parentheses (or in
prefix form after .sexpr). Lines starting with fn, directive, let, priv,
const or constrain are added to a session program whose ABI and canonical
form can be inspected with .abi and .program. Input with unclosed braces
continues on the next line.

Type .help for commands, .quit to exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			s := newREPLSession(cmd.OutOrStdout(), cc.Grammar)
			s.sexpr = sexpr
			return runREPL(cmd, s)
		},
	}

	cmd.Flags().BoolVar(&sexpr, "sexpr", false, "Start in prefix-form mode")

	return cmd
}

func runREPL(cmd *cobra.Command, s *replSession) error {
	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".noirc_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdin:           io.NopCloser(cmd.InOrStdin()),
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "noir REPL (grammar: %s)\n", s.grammar.Name)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			s.pending.Reset()
			rl.SetPrompt(replPrompt)
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if s.Feed(line) {
			return nil
		}
		if s.pending.Len() > 0 {
			rl.SetPrompt(replContinuePrompt)
		} else {
			rl.SetPrompt(replPrompt)
		}
	}
}

// replSession holds the state of one interactive session.
type replSession struct {
	out     io.Writer
	grammar *grammar.Grammar
	sexpr   bool
	program *core.Program
	pending strings.Builder
}

func newREPLSession(out io.Writer, g *grammar.Grammar) *replSession {
	if g == nil {
		g = grammar.Standard
	}
	return &replSession{out: out, grammar: g, program: core.NewProgram()}
}

// Feed consumes one input line and reports whether the session should end.
func (s *replSession) Feed(line string) bool {
	if s.pending.Len() == 0 {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			return false
		}
		if strings.HasPrefix(trimmed, ".") {
			return s.command(trimmed)
		}
	}

	s.pending.WriteString(line)
	s.pending.WriteByte('\n')
	input := s.pending.String()
	if braceDepth(input) > 0 {
		return false
	}
	s.pending.Reset()
	s.eval(strings.TrimSpace(input))
	return false
}

// braceDepth returns the number of unclosed braces in src.
func braceDepth(src string) int {
	depth := 0
	for _, tok := range parser.Tokenize(src) {
		switch tok.Type {
		case token.LBRACE:
			depth++
		case token.RBRACE:
			depth--
		}
	}
	return depth
}

func (s *replSession) eval(input string) {
	if startsItem(input) {
		s.addItems(input)
		return
	}

	expr, err := parser.ParseExpr(strings.TrimSuffix(input, ";"), s.grammar)
	if err != nil {
		s.printf("error: %v\n", err)
		return
	}
	if s.sexpr {
		s.printf("%s\n", format.SExpr(expr))
		return
	}
	s.printf("%s\n", format.Expr(expr))
}

// startsItem reports whether input begins with a keyword that introduces a
// program item rather than a bare expression.
func startsItem(input string) bool {
	l := parser.NewLexer(input)
	switch l.NextToken().Type {
	case token.FN, token.DIRECTIVE, token.LET, token.PRIV, token.CONST, token.CONSTRAIN, token.LBRACE:
		return true
	default:
		return false
	}
}

// addItems parses input as program items and pushes them into the session
// program.
func (s *replSession) addItems(input string) {
	prog, err := parser.Parse(input, s.grammar)
	if err != nil {
		s.printf("error: %v\n", err)
		return
	}

	for _, stmt := range prog.Statements {
		s.program.PushStatement(stmt)
	}
	for _, fn := range prog.Functions {
		s.program.PushConstraintFunction(fn)
		s.printf("added function %s\n", fn.Name)
	}
	if prog.Main != nil {
		if s.program.Main != nil {
			s.printf("replaced main\n")
		} else {
			s.printf("added main\n")
		}
		s.program.PushConstraintFunction(prog.Main)
	}
	for _, fn := range prog.Directives {
		s.program.PushDirectiveFunction(nil, fn)
		s.printf("added directive %s\n", fn.Name)
	}
	for _, cd := range prog.CustomDirectives {
		name := cd.Name
		s.program.PushDirectiveFunction(&name, cd.Func)
		s.printf("added directive %s as %s\n", cd.Func.Name, name)
	}
	if n := len(prog.Statements); n > 0 {
		s.printf("added %d statement(s)\n", n)
	}
}

// command runs a dot-command and reports whether the session should end.
func (s *replSession) command(line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ".quit", ".exit":
		return true
	case ".help":
		s.printf("%s", replHelp)
	case ".sexpr":
		s.sexpr = !s.sexpr
		s.printf("prefix form %s\n", onOff(s.sexpr))
	case ".grammars":
		s.printf("%s\n", strings.Join(grammar.List(), "\n"))
	case ".grammar":
		if len(fields) < 2 {
			s.printf("%s\n", s.grammar.Name)
			break
		}
		g, ok := grammar.Get(fields[1])
		if !ok {
			s.printf("unknown grammar %q\n", fields[1])
			break
		}
		s.grammar = g
		s.printf("grammar set to %s\n", g.Name)
	case ".abi":
		abi, ok := s.program.ABI()
		if !ok {
			s.printf("no main function\n")
			break
		}
		s.printf("[%s]\n", strings.Join(abi, ", "))
	case ".program":
		s.printf("%s", format.Program(s.program))
	case ".tokens":
		for _, tok := range parser.Tokenize(strings.TrimSpace(strings.TrimPrefix(line, ".tokens"))) {
			if tok.Type == token.EOF {
				break
			}
			s.printf("%s %s\n", tok.Pos, tok)
		}
	case ".reset":
		s.program = core.NewProgram()
		s.printf("program cleared\n")
	default:
		s.printf("unknown command %s (try .help)\n", fields[0])
	}
	return false
}

func (s *replSession) printf(msg string, a ...any) {
	_, _ = fmt.Fprintf(s.out, msg, a...)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

const replHelp = `.help             show this help
.quit, .exit      leave the REPL
.sexpr            toggle prefix-form output
.grammar [name]   show or switch the grammar
.grammars         list registered grammars
.tokens <src>     show the tokens of src
.abi              show the session program's ABI
.program          print the session program
.reset            clear the session program
`
