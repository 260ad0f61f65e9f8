// Package dag holds the reporting lines of an org chart as a directed graph.
// Edges run from a group to the units that report into it. The graph detects
// cycles, orders units top-down and groups them into tiers, which lets the
// chart loader reject malformed charts before any unit tree is built.
package dag

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownNode is returned when an edge references a missing node.
	ErrUnknownNode = errors.New("unknown node")
	// ErrSelfLoop is returned when a unit is made to report to itself.
	ErrSelfLoop = errors.New("unit reports to itself")
	// ErrCycle is returned by ordering operations on a cyclic graph.
	ErrCycle = errors.New("reporting cycle")
)

// Node is a unit in the reporting graph.
type Node struct {
	// ID is the unit name
	ID string
	// Data holds the declaration the node was built from
	Data any
}

// Graph is a set of units and the reporting lines between them.
type Graph struct {
	nodes   map[string]*Node
	reports map[string][]string // group -> direct reports, in insertion order
	parents map[string][]string // unit -> groups it reports to
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:   make(map[string]*Node),
		reports: make(map[string][]string),
		parents: make(map[string][]string),
	}
}

// AddNode adds a unit. Adding an existing ID replaces its data.
func (g *Graph) AddNode(id string, data any) {
	if n, exists := g.nodes[id]; exists {
		n.Data = data
		return
	}
	g.nodes[id] = &Node{ID: id, Data: data}
	g.reports[id] = []string{}
	g.parents[id] = []string{}
}

// AddEdge records that childID reports to parentID. Duplicate edges are ignored.
func (g *Graph) AddEdge(parentID, childID string) error {
	if _, exists := g.nodes[parentID]; !exists {
		return fmt.Errorf("%w: %q", ErrUnknownNode, parentID)
	}
	if _, exists := g.nodes[childID]; !exists {
		return fmt.Errorf("%w: %q", ErrUnknownNode, childID)
	}
	if parentID == childID {
		return fmt.Errorf("%w: %s", ErrSelfLoop, parentID)
	}

	if !contains(g.reports[parentID], childID) {
		g.reports[parentID] = append(g.reports[parentID], childID)
	}
	if !contains(g.parents[childID], parentID) {
		g.parents[childID] = append(g.parents[childID], parentID)
	}
	return nil
}

// GetNode returns a node by ID.
func (g *Graph) GetNode(id string) (*Node, bool) {
	node, exists := g.nodes[id]
	return node, exists
}

// GetParents returns the groups id reports to.
func (g *Graph) GetParents(id string) []string {
	return g.parents[id]
}

// GetChildren returns the direct reports of id in the order they were added.
func (g *Graph) GetChildren(id string) []string {
	return g.reports[id]
}

// GetAllNodes returns all nodes sorted by ID.
func (g *Graph) GetAllNodes() []*Node {
	nodes := make([]*Node, 0, len(g.nodes))
	for _, node := range g.nodes {
		nodes = append(nodes, node)
	}
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].ID < nodes[j].ID
	})
	return nodes
}

// NodeCount returns the number of units.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of reporting lines.
func (g *Graph) EdgeCount() int {
	count := 0
	for _, children := range g.reports {
		count += len(children)
	}
	return count
}

// HasCycle reports whether some unit is its own (indirect) manager, along
// with the cycle path starting and ending at the same unit.
func (g *Graph) HasCycle() (bool, []string) {
	visited := make(map[string]bool)
	onStack := make(map[string]bool)
	via := make(map[string]string)

	var cyclePath []string

	var dfs func(id string) bool
	dfs = func(id string) bool {
		visited[id] = true
		onStack[id] = true

		for _, childID := range g.reports[id] {
			if !visited[childID] {
				via[childID] = id
				if dfs(childID) {
					return true
				}
			} else if onStack[childID] {
				cyclePath = []string{childID}
				for curr := id; curr != childID; curr = via[curr] {
					cyclePath = append([]string{curr}, cyclePath...)
				}
				cyclePath = append([]string{childID}, cyclePath...)
				return true
			}
		}

		onStack[id] = false
		return false
	}

	for _, id := range g.sortedIDs() {
		if !visited[id] {
			if dfs(id) {
				return true, cyclePath
			}
		}
	}
	return false, nil
}

// TopologicalSort returns nodes with every group ahead of its reports.
// Ties are broken by ID so the order is deterministic.
func (g *Graph) TopologicalSort() ([]*Node, error) {
	if hasCycle, cyclePath := g.HasCycle(); hasCycle {
		return nil, fmt.Errorf("%w: %v", ErrCycle, cyclePath)
	}

	visited := make(map[string]bool)
	result := make([]*Node, 0, len(g.nodes))

	var visit func(id string)
	visit = func(id string) {
		if visited[id] {
			return
		}
		visited[id] = true
		for _, parentID := range g.parents[id] {
			visit(parentID)
		}
		result = append(result, g.nodes[id])
	}

	for _, id := range g.sortedIDs() {
		visit(id)
	}
	return result, nil
}

// Tiers groups units by their distance from the top of the chart.
// Tier 0 holds units that report to nobody; a unit's tier is one below its
// lowest-placed manager. IDs within a tier are sorted.
func (g *Graph) Tiers() ([][]string, error) {
	if hasCycle, cyclePath := g.HasCycle(); hasCycle {
		return nil, fmt.Errorf("%w: %v", ErrCycle, cyclePath)
	}

	assigned := make(map[string]int, len(g.nodes))

	var tierOf func(id string) int
	tierOf = func(id string) int {
		if tier, ok := assigned[id]; ok {
			return tier
		}
		tier := 0
		for _, parentID := range g.parents[id] {
			if t := tierOf(parentID) + 1; t > tier {
				tier = t
			}
		}
		assigned[id] = tier
		return tier
	}

	maxTier := -1
	for id := range g.nodes {
		if t := tierOf(id); t > maxTier {
			maxTier = t
		}
	}

	tiers := make([][]string, maxTier+1)
	for id, tier := range assigned {
		tiers[tier] = append(tiers[tier], id)
	}
	for i := range tiers {
		sort.Strings(tiers[i])
	}
	return tiers, nil
}

// GetRoots returns units that report to nobody.
func (g *Graph) GetRoots() []string {
	var roots []string
	for id := range g.nodes {
		if len(g.parents[id]) == 0 {
			roots = append(roots, id)
		}
	}
	sort.Strings(roots)
	return roots
}

// GetLeaves returns units with no reports.
func (g *Graph) GetLeaves() []string {
	var leaves []string
	for id := range g.nodes {
		if len(g.reports[id]) == 0 {
			leaves = append(leaves, id)
		}
	}
	sort.Strings(leaves)
	return leaves
}

func (g *Graph) sortedIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func contains(slice []string, str string) bool {
	for _, s := range slice {
		if s == str {
			return true
		}
	}
	return false
}
