package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new noir project",
		Long: `Initialize a new noir project with a configuration file and a starter
program.

This creates:
  - noir.yaml configuration file
  - src/main.nr with a minimal main function
  - .gitignore`,
		Example: `  # Initialize in current directory
  noirc init

  # Initialize in a new directory
  noirc init my-circuit

  # Force overwrite existing files
  noirc init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(cmd, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, force bool) error {
	r := NewCommandContext(cmd).Renderer

	if dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, "noir.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("noir.yaml already exists. Use --force to overwrite")
	}

	res, err := installTemplate("minimal", dir, force)
	if err != nil {
		return fmt.Errorf("failed to initialize project: %w", err)
	}
	for _, f := range res.Written {
		r.StatusLine(f, "created", "")
	}
	for _, f := range res.Skipped {
		r.StatusLine(f, "skipped", "already exists")
	}

	r.Println("")
	r.Success("noir project initialized!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  noirc check       Parse and lint every source file")
	r.Println("  noirc abi src/main.nr")
	r.Println("  noirc repl        Experiment with expressions")

	return nil
}
