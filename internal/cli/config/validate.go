package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/aybehrouz/noir/pkg/core"
	"github.com/aybehrouz/noir/pkg/grammar"
)

// OutputModes lists the accepted values of the output key.
var OutputModes = []string{"auto", "text", "markdown", "json", "yaml"}

// ParseLogLevel converts a level name to a slog.Level. Unknown names yield
// slog.LevelWarn and false.
func ParseLogLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelWarn, false
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, ok := grammar.Get(c.Grammar); !ok {
		return fmt.Errorf("unknown grammar %q (available: %s)", c.Grammar, strings.Join(grammar.List(), ", "))
	}

	validOutput := false
	for _, m := range OutputModes {
		if c.OutputFormat == m {
			validOutput = true
			break
		}
	}
	if !validOutput {
		return fmt.Errorf("unknown output mode %q (available: %s)", c.OutputFormat, strings.Join(OutputModes, ", "))
	}

	if _, ok := ParseLogLevel(c.LogLevel); !ok {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}

	if c.MaxErrors < 0 {
		return fmt.Errorf("max_errors must not be negative, got %d", c.MaxErrors)
	}
	if c.Watch.DebounceMS < 0 {
		return fmt.Errorf("watch.debounce_ms must not be negative, got %d", c.Watch.DebounceMS)
	}
	if c.SourceExt != "" && !strings.HasPrefix(c.SourceExt, ".") {
		return fmt.Errorf("source_ext must start with a dot, got %q", c.SourceExt)
	}

	for id, sev := range c.Lint.Severity {
		if _, ok := core.ParseSeverity(sev); !ok {
			return fmt.Errorf("lint.severity.%s: unknown severity %q", id, sev)
		}
	}
	return nil
}

// GrammarOrDefault returns the configured grammar, falling back to the
// standard grammar.
func (c *Config) GrammarOrDefault() *grammar.Grammar {
	if g, ok := grammar.Get(c.Grammar); ok {
		return g
	}
	return grammar.Standard
}
