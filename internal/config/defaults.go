// Package config holds defaults and project discovery shared by the CLI.
package config

// Default configuration values.
const (
	// DefaultChartFile is looked up in the project root when no chart is
	// configured.
	DefaultChartFile = "org.yaml"
	DefaultOutput    = "auto"
	DefaultLocale    = "en"

	// EnvPrefix prefixes environment variables, e.g. ORGTREE_CHART.
	EnvPrefix = "ORGTREE_"
)
