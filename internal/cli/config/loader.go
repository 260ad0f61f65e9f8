package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/leapstack-labs/orgtree/internal/cli/output"
	intconfig "github.com/leapstack-labs/orgtree/internal/config"
	"github.com/spf13/pflag"
)

type (
	configKey struct{}
	loggerKey struct{}
)

// Load builds the configuration from defaults, the project config file,
// ORGTREE_* environment variables and explicitly set flags.
// cfgFile overrides config file discovery.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, string, error) {
	k := koanf.New(".")

	projectRoot := inferProjectRoot(cfgFile)

	// 1. Defaults
	def := Default()
	if err := k.Load(confmap.Provider(map[string]any{
		"chart":   def.Chart,
		"output":  def.Output,
		"locale":  def.Locale,
		"verbose": def.Verbose,
	}, "."), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	configFile := cfgFile
	if configFile == "" {
		configFile = intconfig.FindConfigFile(projectRoot)
	}
	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, "", fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	}

	// 3. Environment: ORGTREE_CHART -> chart
	if err := k.Load(env.Provider(intconfig.EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, intconfig.EnvPrefix))
		if !knownKeys[key] {
			return ""
		}
		return key
	}), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags that were set explicitly
	var flagChart string
	if flags != nil {
		if f := flags.Lookup("chart"); f != nil && f.Changed && f.Value.String() != "" {
			flagChart, _ = filepath.Abs(f.Value.String())
		}
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			if !knownKeys[key] {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, "", fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Decode, rejecting keys the config does not know about
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			ErrorUnused:      true,
		},
	}); err != nil {
		return nil, "", fmt.Errorf("unable to decode config: %w", err)
	}

	// 6. Resolve paths. A --chart flag is relative to the working
	// directory; a chart from the config file or env is relative to the
	// project root.
	cfg.ProjectRoot = projectRoot
	if flagChart != "" {
		cfg.Chart = flagChart
	} else {
		cfg.Chart = intconfig.ResolvePath(cfg.Chart, projectRoot)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, configFile, nil
}

// Validate checks option values.
func (c *Config) Validate() error {
	if _, err := output.ParseMode(c.Output); err != nil {
		return fmt.Errorf("invalid output: %w", err)
	}
	if _, err := output.NewNumberFormatter(c.Locale); err != nil {
		return err
	}
	return nil
}

// ChartPath returns the chart file to read, or "" to use the built-in
// sample chart.
func (c *Config) ChartPath() string {
	if c.Chart != "" {
		return c.Chart
	}
	candidate := filepath.Join(c.ProjectRoot, intconfig.DefaultChartFile)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return ""
}

// inferProjectRoot picks the directory relative paths resolve against:
// the explicit config file's directory, else the nearest ancestor holding
// orgtree.yaml, else the working directory.
func inferProjectRoot(cfgFile string) string {
	if cfgFile != "" {
		if abs, err := filepath.Abs(cfgFile); err == nil {
			return filepath.Dir(abs)
		}
	}
	cwd, err := os.Getwd()
	if err != nil || cwd == "" {
		return "."
	}
	if root := intconfig.FindProjectRoot(cwd); root != "" {
		return root
	}
	return cwd
}

// WithConfig stores cfg in ctx.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext returns the config stored in ctx, or Default().
func FromContext(ctx context.Context) *Config {
	if ctx != nil {
		if c, ok := ctx.Value(configKey{}).(*Config); ok {
			return c
		}
	}
	return Default()
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			return l
		}
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}

// NewLogger creates the CLI logger: warnings and errors on w, or
// everything down to debug when verbose.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
