// Package config provides configuration management for the noirc CLI.
//
// Values are layered, lowest to highest precedence: built-in defaults,
// noir.yaml (or noir.yml) in the project root, NOIR_* environment
// variables, then explicitly set command-line flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	Grammar      string      `koanf:"grammar"`
	OutputFormat string      `koanf:"output"`
	Verbose      bool        `koanf:"verbose"`
	LogLevel     string      `koanf:"log_level"`
	SourceExt    string      `koanf:"source_ext"`
	MaxErrors    int         `koanf:"max_errors"`
	Watch        WatchConfig `koanf:"watch"`
	Lint         LintConfig  `koanf:"lint"`

	// ProjectRoot is the directory holding the config file, or the working
	// directory when none was found. Not read from configuration.
	ProjectRoot string `koanf:"-"`
}

// WatchConfig controls check --watch.
type WatchConfig struct {
	DebounceMS int `koanf:"debounce_ms"`
}

// LintConfig selects lint rules and overrides their severity.
type LintConfig struct {
	Disabled []string          `koanf:"disabled"`
	Severity map[string]string `koanf:"severity"`
}

// Default configuration values.
const (
	DefaultGrammar    = "standard"
	DefaultOutput     = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogLevel   = "warn"
	DefaultSourceExt  = ".nr"
	DefaultMaxErrors  = 0 // no limit
	DefaultDebounceMS = 200
)

// ConfigFileNames are searched in order in the project root.
var ConfigFileNames = []string{"noir.yaml", "noir.yml"}

// EnvPrefix is the prefix of environment variables read as configuration.
const EnvPrefix = "NOIR_"
