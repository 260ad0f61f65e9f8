// Package config loads the orgtree CLI configuration.
//
// Values are layered with koanf, highest precedence first: command-line
// flags, ORGTREE_* environment variables, the project's orgtree.yaml, and
// built-in defaults.
package config

import intconfig "github.com/leapstack-labs/orgtree/internal/config"

// Config holds all CLI configuration options.
type Config struct {
	// Chart is the org chart file. Empty means DefaultChartFile in the
	// project root if present, otherwise the built-in sample.
	Chart   string `koanf:"chart"`
	Output  string `koanf:"output"`
	Locale  string `koanf:"locale"`
	Verbose bool   `koanf:"verbose"`

	// ProjectRoot is the directory relative paths resolve against.
	ProjectRoot string `koanf:"-"`
}

// knownKeys are the keys accepted from the environment and flags.
var knownKeys = map[string]bool{
	"chart":   true,
	"output":  true,
	"locale":  true,
	"verbose": true,
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: intconfig.DefaultOutput,
		Locale: intconfig.DefaultLocale,
	}
}
