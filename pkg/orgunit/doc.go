// Package orgunit models an organisation as a tree of units.
//
// A unit is either a Leaf, an individual with an intrinsic value such as a
// salary, or a Composite, a named group that owns an ordered list of child
// units. Both kinds answer the same query through the Unit interface:
//
//	it := orgunit.NewComposite("IT")
//	it.AddChild(orgunit.NewLeaf("Dev1", 60000))
//	it.AddChild(orgunit.NewLeaf("CTO", 80000))
//	it.AggregateValue() // 140000
//
// A Composite's aggregate value is the sum of its children's aggregate
// values; an empty Composite is worth 0.
//
// The package does not lock. Reading a tree that is no longer being
// mutated is safe from any number of goroutines; AddChild calls on the same
// Composite must be serialized by the caller.
//
// Tree shape is the caller's responsibility: a unit must not be added under
// two parents or below itself. Validate checks an untrusted structure, and
// Total computes the aggregate with an explicit work stack instead of
// recursion.
package orgunit
