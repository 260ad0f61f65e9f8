package commands

import (
	"strings"

	"github.com/charmbracelet/lipgloss/tree"
	"github.com/leapstack-labs/orgtree/internal/chart"
	"github.com/leapstack-labs/orgtree/internal/cli/output"
	"github.com/leapstack-labs/orgtree/pkg/orgunit"
	"github.com/spf13/cobra"
)

// NewTreeCommand creates the tree command.
func NewTreeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tree [unit]",
		Short: "Show the unit hierarchy with aggregate values",
		Long: `Show the chart as a tree, each unit followed by its aggregate value.

Output adapts to environment:
  - Terminal: Styled tree
  - Piped/Scripted: Nested Markdown list

Use --output to override: auto, text, markdown, json`,
		Example: `  orgtree tree
  orgtree tree IT -o markdown`,
		Args:              cobra.MaximumNArgs(1),
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
			var name string
			if len(args) == 1 {
				name = args[0]
			}
			root, err := lookupUnit(ch, name)
			if err != nil {
				return err
			}
			return runTree(cmdCtx.Renderer, ch, root)
		},
	}
}

func runTree(r *output.Renderer, ch *chart.Chart, root orgunit.Unit) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(unitNode(root))
	case output.ModeMarkdown:
		return treeMarkdown(r, ch, root)
	default:
		treeText(r, root)
		return nil
	}
}

// treeText renders the hierarchy with lipgloss box-drawing branches.
func treeText(r *output.Renderer, root orgunit.Unit) {
	t := styledTree(r, root).
		EnumeratorStyle(r.Styles().Branch)
	r.Println(t.String())
}

func styledTree(r *output.Renderer, u orgunit.Unit) *tree.Tree {
	t := tree.Root(unitLabel(r, u))
	if p, ok := u.(orgunit.Parent); ok {
		for _, child := range p.Children() {
			if _, isParent := child.(orgunit.Parent); isParent {
				t.Child(styledTree(r, child))
				continue
			}
			t.Child(unitLabel(r, child))
		}
	}
	return t
}

func unitLabel(r *output.Renderer, u orgunit.Unit) string {
	s := r.Styles()
	name := s.Member.Render(u.ID())
	if output.KindOf(u) == output.KindGroup {
		name = s.Group.Render(u.ID())
	}
	return name + "  " + s.Value.Render(r.Number(u.AggregateValue()))
}

// treeMarkdown renders the hierarchy as a nested list.
func treeMarkdown(r *output.Renderer, ch *chart.Chart, root orgunit.Unit) error {
	r.Header(1, "Org chart: "+ch.Name)
	if ch.Source != "" {
		r.KeyValue("Source", ch.Source)
		r.Println("")
	}
	return orgunit.Walk(root, func(u orgunit.Unit, depth int) error {
		r.Printf("%s- **%s** (%s): %s\n",
			strings.Repeat("  ", depth), u.ID(), output.KindOf(u), r.Number(u.AggregateValue()))
		return nil
	})
}

// unitNode converts a unit subtree into its JSON form.
func unitNode(u orgunit.Unit) output.UnitNode {
	n := output.UnitNode{
		Name:      u.ID(),
		Kind:      output.KindOf(u),
		Value:     ownValue(u),
		Aggregate: u.AggregateValue(),
	}
	if p, ok := u.(orgunit.Parent); ok {
		for _, child := range p.Children() {
			n.Children = append(n.Children, unitNode(child))
		}
	}
	return n
}
