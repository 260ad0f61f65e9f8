package commands

import (
	"github.com/leapstack-labs/orgtree/internal/cli/output"
	"github.com/leapstack-labs/orgtree/pkg/orgunit"
	"github.com/spf13/cobra"
)

// NewTotalCommand creates the total command.
func NewTotalCommand() *cobra.Command {
	var iterative bool

	cmd := &cobra.Command{
		Use:   "total [unit]",
		Short: "Print the aggregate value of the chart or of one unit",
		Long: `Print the aggregate value of the chart root, or of the named unit.

A member contributes its own value; a group contributes the sum over its
members. --iterative computes the sum with an explicit stack instead of
recursion, which suits very deep charts.`,
		Example: `  orgtree total
  orgtree total IT
  orgtree total --iterative -c big.yaml -o json`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeUnitNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			var name string
			if len(args) == 1 {
				name = args[0]
			}
			return runTotal(cmdCtx, name, iterative)
		},
	}

	cmd.Flags().BoolVar(&iterative, "iterative", false, "Sum with an explicit stack instead of recursion")

	return cmd
}

func runTotal(cmdCtx *CommandContext, name string, iterative bool) error {
	ch, err := cmdCtx.LoadChart()
	if err != nil {
		return err
	}
	u, err := lookupUnit(ch, name)
	if err != nil {
		return err
	}

	out := output.TotalOutput{Unit: u.ID(), Method: "recursive", Source: ch.Source}
	if iterative {
		out.Method = "iterative"
		out.Total = orgunit.Total(u)
	} else {
		out.Total = u.AggregateValue()
	}
	cmdCtx.Logger.Debug("computed total", "unit", out.Unit, "method", out.Method, "total", out.Total)

	r := cmdCtx.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(out)
	case output.ModeMarkdown:
		r.Println(output.FormatKeyValue(out.Unit, r.Number(out.Total)))
	default:
		r.Printf("%s %s\n", r.Styles().Bold.Render(out.Unit+":"), r.Styles().Value.Render(r.Number(out.Total)))
	}
	return nil
}
