package commands

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/orgtree/internal/chart"
	"github.com/leapstack-labs/orgtree/internal/cli/output"
	"github.com/leapstack-labs/orgtree/pkg/orgunit"
	"github.com/spf13/cobra"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the chart and print summary statistics",
		Long: `Load the chart, check that every unit has at most one parent and that no
unit is its own ancestor, then print unit counts, height and total.`,
		Example: `  orgtree validate -c org.yaml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			ch, err := cmdCtx.LoadChart()
			if err != nil {
				return err
			}
			return runValidate(cmdCtx.Renderer, ch)
		},
	}
}

func runValidate(r *output.Renderer, ch *chart.Chart) error {
	out := output.ValidateOutput{Source: ch.Source, Valid: true}
	if err := orgunit.Validate(ch.Root); err != nil {
		out.Valid = false
		out.Error = err.Error()
	} else {
		out.Stats = orgunit.Summarize(ch.Root)
	}

	if r.EffectiveMode() == output.ModeJSON {
		if err := r.JSON(out); err != nil {
			return err
		}
	} else {
		r.Header(1, "Chart "+ch.Name)
		if out.Source != "" {
			r.KeyValue("Source", out.Source)
		}
		if out.Valid {
			r.KeyValue("Units", strconv.Itoa(out.Stats.Units))
			r.KeyValue("Groups", strconv.Itoa(out.Stats.Composites))
			r.KeyValue("Members", strconv.Itoa(out.Stats.Leaves))
			r.KeyValue("Height", strconv.Itoa(out.Stats.Height))
			r.KeyValue("Total", r.Number(out.Stats.Total))
			r.Success("chart is valid")
		}
	}

	if !out.Valid {
		return fmt.Errorf("chart is not valid: %s", out.Error)
	}
	return nil
}
