package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/orgtree/internal/chart"
	"github.com/leapstack-labs/orgtree/internal/cli/output"
	"github.com/leapstack-labs/orgtree/pkg/orgunit"
	"github.com/spf13/cobra"
)

// NewLevelsCommand creates the levels command.
func NewLevelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "Group units by tier below the root",
		Long: `Group the units of the chart by tier: tier 0 is the root, tier 1 the
units reporting to it, and so on. Each tier shows the sum of the own values
of the members placed on it.`,
		Example: `  orgtree levels
  orgtree levels -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			ch, err := cmdCtx.LoadChart()
			if err != nil {
				return err
			}
			return runLevels(cmdCtx.Renderer, ch)
		},
	}
}

// chartTiers groups the chart's units by tier. Only members contribute to
// a tier's subtotal, so the subtotals add up to the chart total.
func chartTiers(ch *chart.Chart) (output.LevelsOutput, error) {
	tiers, err := ch.Graph.Tiers()
	if err != nil {
		return output.LevelsOutput{}, fmt.Errorf("failed to compute tiers: %w", err)
	}

	out := output.LevelsOutput{Tiers: make([]output.TierOutput, 0, len(tiers))}
	for i, ids := range tiers {
		tier := output.TierOutput{Tier: i, Units: ids}
		for _, id := range ids {
			u, ok := ch.Unit(id)
			if !ok {
				continue
			}
			if l, isLeaf := u.(*orgunit.Leaf); isLeaf {
				tier.Subtotal += l.Value()
			}
		}
		out.Total += tier.Subtotal
		out.Tiers = append(out.Tiers, tier)
	}
	return out, nil
}

func runLevels(r *output.Renderer, ch *chart.Chart) error {
	levels, err := chartTiers(ch)
	if err != nil {
		return err
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(levels)
	}

	r.Header(1, fmt.Sprintf("Tiers (%d)", len(levels.Tiers)))
	rows := make([][]string, 0, len(levels.Tiers))
	for _, t := range levels.Tiers {
		rows = append(rows, []string{
			strconv.Itoa(t.Tier),
			strings.Join(t.Units, ", "),
			r.Number(t.Subtotal),
		})
	}
	r.Table([]string{"Tier", "Units", "Subtotal"}, rows, 1, 3)
	r.Println("")
	r.KeyValue("Total", r.Number(levels.Total))
	return nil
}
