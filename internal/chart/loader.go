package chart

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/leapstack-labs/orgtree/internal/dag"
	"github.com/leapstack-labs/orgtree/pkg/orgunit"
	"gopkg.in/yaml.v3"
)

// Loader reads charts from files or bytes.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a loader. A nil logger discards output.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{logger: logger}
}

// Load reads a chart with a discarding logger.
func Load(path string) (*Chart, error) {
	return NewLoader(nil).Load(path)
}

// Parse decodes a chart with a discarding logger.
func Parse(data []byte) (*Chart, error) {
	return NewLoader(nil).Parse(data)
}

// Load reads and decodes the chart file at path.
func (l *Loader) Load(path string) (*Chart, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the CLI user
	if err != nil {
		return nil, fmt.Errorf("failed to read chart: %w", err)
	}

	l.logger.Debug("loading chart", slog.String("path", path), slog.Int("bytes", len(data)))

	c, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.Source = path
	return c, nil
}

// Parse decodes a chart in either the nested or the flat layout.
func (l *Loader) Parse(data []byte) (*Chart, error) {
	var top unitSpec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&top); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidChart)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidChart, err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: a chart file holds exactly one YAML document", ErrInvalidChart)
	}

	if strings.TrimSpace(top.Name) == "" {
		if top.Units == nil {
			return nil, fmt.Errorf("%w: chart needs a root name or a units list", ErrInvalidChart)
		}
		if top.hasValue() || top.Group || top.ReportsTo != "" {
			return nil, fmt.Errorf("%w: flat chart only takes a units list at the top level", ErrInvalidChart)
		}
		l.logger.Debug("parsing flat chart", slog.Int("units", len(*top.Units)))
		return l.buildFlat(*top.Units)
	}

	l.logger.Debug("parsing nested chart", slog.String("root", top.Name))
	return l.buildNested(&top)
}

// buildNested converts a nested declaration, recording every unit in a graph
// so names are checked for uniqueness and tiers can be computed later.
func (l *Loader) buildNested(top *unitSpec) (*Chart, error) {
	if top.ReportsTo != "" {
		return nil, fmt.Errorf("%w: reports_to is only valid in flat charts (unit %q)", ErrInvalidChart, top.Name)
	}

	c := &Chart{
		Name:  top.Name,
		Graph: dag.NewGraph(),
		units: make(map[string]orgunit.Unit),
	}

	root, err := l.nestedUnit(c, top, "")
	if err != nil {
		return nil, err
	}
	c.Root = root

	l.logger.Debug("chart built",
		slog.String("root", c.Name),
		slog.Int("units", c.Graph.NodeCount()),
		slog.Int("edges", c.Graph.EdgeCount()))
	return c, nil
}

func (l *Loader) nestedUnit(c *Chart, s *unitSpec, parent string) (orgunit.Unit, error) {
	if err := l.register(c, s); err != nil {
		return nil, err
	}
	if parent != "" {
		if s.ReportsTo != "" {
			return nil, fmt.Errorf("%w: reports_to is only valid in flat charts (unit %q)", ErrInvalidChart, s.Name)
		}
		if err := c.Graph.AddEdge(parent, s.Name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidChart, err)
		}
	}

	if s.Units == nil && !s.Group {
		leaf := orgunit.NewLeaf(s.Name, s.value())
		c.bind(leaf)
		return leaf, nil
	}

	if s.hasValue() {
		return nil, fmt.Errorf("%w: group %q cannot declare a value", ErrInvalidChart, s.Name)
	}

	group := orgunit.NewComposite(s.Name)
	c.bind(group)
	if s.Units != nil {
		for i := range *s.Units {
			child, err := l.nestedUnit(c, &(*s.Units)[i], s.Name)
			if err != nil {
				return nil, err
			}
			group.AddChild(child)
		}
	}
	return group, nil
}

// buildFlat links units through their reports_to names. The reporting graph
// is checked for unknown managers, cycles and a single root before units
// are assembled bottom-up.
func (l *Loader) buildFlat(specs []unitSpec) (*Chart, error) {
	c := &Chart{
		Graph: dag.NewGraph(),
		units: make(map[string]orgunit.Unit, len(specs)),
	}

	for i := range specs {
		s := &specs[i]
		if s.Units != nil {
			return nil, fmt.Errorf("%w: unit %q nests units in a flat chart; use group: true and reports_to", ErrInvalidChart, s.Name)
		}
		if err := l.register(c, s); err != nil {
			return nil, err
		}
	}

	for i := range specs {
		s := &specs[i]
		if s.ReportsTo == "" {
			continue
		}
		if err := c.Graph.AddEdge(s.ReportsTo, s.Name); err != nil {
			return nil, fmt.Errorf("%w: unit %q: %w", ErrInvalidChart, s.Name, err)
		}
	}

	if hasCycle, path := c.Graph.HasCycle(); hasCycle {
		return nil, fmt.Errorf("%w: reporting cycle %s", ErrInvalidChart, strings.Join(path, " -> "))
	}

	roots := c.Graph.GetRoots()
	switch len(roots) {
	case 0:
		return nil, fmt.Errorf("%w: chart has no units", ErrInvalidChart)
	case 1:
	default:
		return nil, fmt.Errorf("%w: chart has %d roots (%s); exactly one unit may omit reports_to",
			ErrInvalidChart, len(roots), strings.Join(roots, ", "))
	}

	sorted, err := c.Graph.TopologicalSort()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidChart, err)
	}

	// Reverse topological order builds every report before its group.
	for i := len(sorted) - 1; i >= 0; i-- {
		node := sorted[i]
		s := node.Data.(*unitSpec)
		reports := c.Graph.GetChildren(node.ID)

		if len(reports) == 0 && !s.Group {
			c.bind(orgunit.NewLeaf(s.Name, s.value()))
			continue
		}
		if s.hasValue() {
			return nil, fmt.Errorf("%w: unit %q declares a value but has reports", ErrInvalidChart, s.Name)
		}

		group := orgunit.NewComposite(s.Name)
		for _, id := range reports {
			group.AddChild(c.units[id])
		}
		c.bind(group)
	}

	c.Name = roots[0]
	c.Root = c.units[roots[0]]

	l.logger.Debug("chart built",
		slog.String("root", c.Name),
		slog.Int("units", c.Graph.NodeCount()),
		slog.Int("edges", c.Graph.EdgeCount()))
	return c, nil
}

// register validates a declaration's name and adds it to the graph.
func (l *Loader) register(c *Chart, s *unitSpec) error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: unit without a name", ErrInvalidChart)
	}
	if _, exists := c.Graph.GetNode(s.Name); exists {
		return fmt.Errorf("%w: duplicate unit %q", ErrInvalidChart, s.Name)
	}
	if s.Group && s.hasValue() {
		return fmt.Errorf("%w: group %q cannot declare a value", ErrInvalidChart, s.Name)
	}
	if v := s.value(); math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: unit %q has non-finite value %v", ErrInvalidChart, s.Name, v)
	}
	c.Graph.AddNode(s.Name, s)
	return nil
}

// bind records a built unit and replaces the graph node's data with it.
func (c *Chart) bind(u orgunit.Unit) {
	c.units[u.ID()] = u
	c.Graph.AddNode(u.ID(), u)
}
