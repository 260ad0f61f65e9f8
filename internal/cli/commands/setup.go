package commands

import (
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/orgtree/internal/chart"
	"github.com/leapstack-labs/orgtree/internal/cli/config"
	"github.com/leapstack-labs/orgtree/internal/cli/output"
	"github.com/leapstack-labs/orgtree/pkg/orgunit"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the configuration and
// logger stored in the command's context.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output))
	if err := r.SetLocale(cfg.Locale); err != nil {
		return nil, err
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}, nil
}

// LoadChart reads the configured chart, falling back to the built-in sample
// when no chart file is configured or present.
func (c *CommandContext) LoadChart() (*chart.Chart, error) {
	path := c.Cfg.ChartPath()
	if path == "" {
		c.Logger.Debug("no chart file, using sample chart")
		return chart.Sample(), nil
	}
	ch, err := chart.NewLoader(c.Logger).Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load chart: %w", err)
	}
	return ch, nil
}

// lookupUnit returns the named unit, or the chart root when name is empty.
func lookupUnit(ch *chart.Chart, name string) (orgunit.Unit, error) {
	if name == "" {
		return ch.Root, nil
	}
	u, ok := ch.Unit(name)
	if !ok {
		return nil, fmt.Errorf("unit %q not found in chart", name)
	}
	return u, nil
}

// completeUnitNames offers the unit names of the configured chart.
func completeUnitNames(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	// PersistentPreRunE is skipped during completion.
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, _, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	cmdCtx := &CommandContext{Cfg: cfg, Logger: config.GetLogger(cmd.Context())}
	ch, err := cmdCtx.LoadChart()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names := make([]string, 0, ch.Len())
	for _, n := range ch.Graph.GetAllNodes() {
		names = append(names, n.ID)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// ownValue returns a leaf's own value, or nil for composites.
func ownValue(u orgunit.Unit) *float64 {
	if l, ok := u.(*orgunit.Leaf); ok {
		v := l.Value()
		return &v
	}
	return nil
}
