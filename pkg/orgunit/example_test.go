package orgunit_test

import (
	"fmt"

	"github.com/leapstack-labs/orgtree/pkg/orgunit"
)

func Example() {
	it := orgunit.NewComposite("IT")
	it.AddChild(orgunit.NewLeaf("Dev1", 60000))
	it.AddChild(orgunit.NewLeaf("Dev2", 60000))
	it.AddChild(orgunit.NewLeaf("CTO", 80000))

	company := orgunit.NewComposite("Company")
	company.AddChild(orgunit.NewLeaf("CEO", 100000))
	company.AddChild(it)

	fmt.Println(it.AggregateValue())
	fmt.Println(company.AggregateValue())
	// Output:
	// 200000
	// 300000
}

func ExampleWalk() {
	team := orgunit.NewComposite("Team")
	team.AddChild(orgunit.NewLeaf("Lead", 90))
	team.AddChild(orgunit.NewLeaf("Dev", 70))

	_ = orgunit.Walk(team, func(u orgunit.Unit, depth int) error {
		fmt.Printf("%d %s %v\n", depth, u.ID(), u.AggregateValue())
		return nil
	})
	// Output:
	// 0 Team 160
	// 1 Lead 90
	// 1 Dev 70
}
