// Package main provides the noirc command.
package main

import (
	"os"

	"github.com/aybehrouz/noir/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
