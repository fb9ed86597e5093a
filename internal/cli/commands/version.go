package commands

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/aybehrouz/noir/pkg/grammar"
	"github.com/spf13/cobra"
)

// BuildInfo identifies a noirc build.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewVersionCommand creates the version command.
func NewVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the noirc version, build metadata and the registered grammars.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "noirc v%s\n", info.Version)
			_, _ = fmt.Fprintf(w, "commit %s, built %s with %s\n", info.Commit, info.Date, runtime.Version())
			_, _ = fmt.Fprintf(w, "grammars: %s\n", strings.Join(grammar.List(), ", "))
		},
	}
}
