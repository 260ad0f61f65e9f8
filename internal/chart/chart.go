package chart

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/orgtree/internal/dag"
	"github.com/leapstack-labs/orgtree/pkg/orgunit"
	"gopkg.in/yaml.v3"
)

// ErrInvalidChart is wrapped by every error describing a malformed chart.
var ErrInvalidChart = errors.New("invalid chart")

// Chart is a loaded org chart.
type Chart struct {
	// Name is the name of the root unit.
	Name string
	// Root is the top of the unit tree.
	Root orgunit.Unit
	// Graph holds the reporting lines; node data is the orgunit.Unit.
	Graph *dag.Graph
	// Source is the file the chart was read from, if any.
	Source string

	units map[string]orgunit.Unit
}

// Unit returns the unit with the given name.
func (c *Chart) Unit(name string) (orgunit.Unit, bool) {
	u, ok := c.units[name]
	return u, ok
}

// Len returns the number of units in the chart.
func (c *Chart) Len() int {
	return len(c.units)
}

// unitSpec is one unit as declared in YAML.
type unitSpec struct {
	Name      string      `yaml:"name"`
	Value     *float64    `yaml:"value"`
	Group     bool        `yaml:"group"`
	ReportsTo string      `yaml:"reports_to"`
	Units     *[]unitSpec `yaml:"units"`
}

// unitFields are the keys a unit declaration may use.
var unitFields = map[string]bool{
	"name":       true,
	"value":      true,
	"group":      true,
	"reports_to": true,
	"units":      true,
}

// UnmarshalYAML rejects unknown keys and treats a units key without a value
// as an empty list, so the unit is still a group.
func (s *unitSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: a unit must be a mapping", node.Line)
	}
	hasUnits := false
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if !unitFields[key.Value] {
			return fmt.Errorf("line %d: field %s not found in unit", key.Line, key.Value)
		}
		if key.Value == "units" {
			hasUnits = true
		}
	}

	type plain unitSpec
	if err := node.Decode((*plain)(s)); err != nil {
		return err
	}
	if hasUnits && s.Units == nil {
		s.Units = &[]unitSpec{}
	}
	return nil
}

func (s *unitSpec) hasValue() bool { return s.Value != nil }

func (s *unitSpec) value() float64 {
	if s.Value == nil {
		return 0
	}
	return *s.Value
}
