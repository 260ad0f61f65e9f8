package commands

import (
	"github.com/leapstack-labs/orgtree/internal/cli/output"
	"github.com/leapstack-labs/orgtree/pkg/orgunit"
	"github.com/spf13/cobra"
)

// NewDemoCommand creates the demo command.
func NewDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Build the sample organisation in code and print its totals",
		Long: `Build the sample organisation directly with the orgunit API:

  Company
  ├── CEO   100000
  └── IT
      ├── Dev1  60000
      ├── Dev2  60000
      └── CTO   80000

and print the aggregate value of IT and of the whole company.`,
		Example: `  orgtree demo
  orgtree demo -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			return runDemo(cmdCtx.Renderer)
		},
	}
}

// buildDemoTree assembles the sample organisation bottom-up.
func buildDemoTree() (company, it *orgunit.Composite) {
	it = orgunit.NewComposite("IT")
	it.AddChild(orgunit.NewLeaf("Dev1", 60000))
	it.AddChild(orgunit.NewLeaf("Dev2", 60000))
	it.AddChild(orgunit.NewLeaf("CTO", 80000))

	company = orgunit.NewComposite("Company")
	company.AddChild(orgunit.NewLeaf("CEO", 100000))
	company.AddChild(it)
	return company, it
}

func runDemo(r *output.Renderer) error {
	company, it := buildDemoTree()
	totals := []output.TotalOutput{
		{Unit: it.ID(), Total: it.AggregateValue(), Method: "recursive"},
		{Unit: company.ID(), Total: company.AggregateValue(), Method: "recursive"},
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(totals)
	}

	r.Header(1, "Demo organisation")
	for _, t := range totals {
		r.KeyValue(t.Unit, r.Number(t.Total))
	}
	return nil
}
