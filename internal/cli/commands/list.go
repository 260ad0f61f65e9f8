package commands

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/orgtree/internal/chart"
	"github.com/leapstack-labs/orgtree/internal/cli/output"
	"github.com/leapstack-labs/orgtree/pkg/orgunit"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all units with their values",
		Long: `List every unit of the chart in hierarchy order with its kind, depth,
own value, aggregate value and share of the total.

Output adapts to environment:
  - Terminal: Box table
  - Piped/Scripted: Markdown table (agent-friendly)

Use --output to override: auto, text, markdown, json`,
		Example: `  # List all units (auto-detect output format)
  orgtree list

  # List units as JSON
  orgtree list --output json`,
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
			return runList(cmdCtx.Renderer, ch)
		},
	}
}

// listRows flattens the chart in pre-order.
func listRows(ch *chart.Chart) ([]output.UnitRow, float64, error) {
	total := orgunit.Total(ch.Root)
	var (
		rows  []output.UnitRow
		trail []string
	)
	err := orgunit.Walk(ch.Root, func(u orgunit.Unit, depth int) error {
		trail = append(trail[:depth], u.ID())
		row := output.UnitRow{
			Name:      u.ID(),
			Kind:      output.KindOf(u),
			Depth:     depth,
			Value:     ownValue(u),
			Aggregate: u.AggregateValue(),
		}
		if depth > 0 {
			row.Parent = trail[depth-1]
		}
		if total != 0 {
			share := row.Aggregate / total
			row.Share = &share
		}
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to walk chart: %w", err)
	}
	return rows, total, nil
}

func runList(r *output.Renderer, ch *chart.Chart) error {
	rows, total, err := listRows(ch)
	if err != nil {
		return err
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(output.ListOutput{Source: ch.Source, Units: rows, Total: total})
	}

	r.Header(1, fmt.Sprintf("Units (%d total)", len(rows)))

	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		value := "-"
		if row.Value != nil {
			value = r.Number(*row.Value)
		}
		cells = append(cells, []string{
			row.Name,
			row.Kind,
			strconv.Itoa(row.Depth),
			row.Parent,
			value,
			r.Number(row.Aggregate),
			output.FormatPercent(row.Aggregate, total),
		})
	}
	r.Table([]string{"Unit", "Kind", "Depth", "Reports to", "Value", "Aggregate", "Share"}, cells, 3, 5, 6, 7)
	return nil
}
