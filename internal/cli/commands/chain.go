package commands

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/orgtree/internal/cli/output"
	"github.com/leapstack-labs/orgtree/pkg/orgunit"
	"github.com/spf13/cobra"
)

// NewChainCommand creates the chain command.
func NewChainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chain <unit>",
		Short: "Show the reporting chain from the root to a unit",
		Long: `Show every unit from the chart root down to the named unit, each with its
aggregate value. Every unit on the chain includes the named unit's value
in its aggregate.`,
		Example: `  orgtree chain Dev1`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeUnitNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			ch, err := cmdCtx.LoadChart()
			if err != nil {
				return err
			}
			return runChain(cmdCtx.Renderer, ch.Root, args[0])
		},
	}
}

func runChain(r *output.Renderer, root orgunit.Unit, name string) error {
	path, ok := orgunit.PathTo(root, name)
	if !ok {
		return fmt.Errorf("unit %q not found in chart", name)
	}

	out := output.ChainOutput{Unit: name, Chain: make([]output.ChainLink, 0, len(path))}
	for depth, u := range path {
		out.Chain = append(out.Chain, output.ChainLink{
			Name:      u.ID(),
			Kind:      output.KindOf(u),
			Depth:     depth,
			Aggregate: u.AggregateValue(),
		})
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(out)
	case output.ModeMarkdown:
		r.Header(1, "Chain to "+name)
		for i, link := range out.Chain {
			r.Printf("%d. **%s** (%s): %s\n", i+1, link.Name, link.Kind, r.Number(link.Aggregate))
		}
	default:
		s := r.Styles()
		for _, link := range out.Chain {
			prefix := ""
			if link.Depth > 0 {
				prefix = strings.Repeat("  ", link.Depth-1) + s.Branch.Render("└─ ")
			}
			r.Printf("%s%s  %s\n", prefix, s.Bold.Render(link.Name), s.Value.Render(r.Number(link.Aggregate)))
		}
	}
	return nil
}
