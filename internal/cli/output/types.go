package output

import "github.com/leapstack-labs/orgtree/pkg/orgunit"

// Unit kinds as they appear in output.
const (
	KindGroup  = "group"
	KindMember = "member"
)

// TotalOutput is the JSON payload of the total and demo commands.
type TotalOutput struct {
	Unit   string  `json:"unit"`
	Total  float64 `json:"total"`
	Method string  `json:"method,omitempty"`
	Source string  `json:"source,omitempty"`
}

// UnitNode is one unit in the JSON tree.
type UnitNode struct {
	Name      string     `json:"name"`
	Kind      string     `json:"kind"`
	Value     *float64   `json:"value,omitempty"`
	Aggregate float64    `json:"aggregate"`
	Children  []UnitNode `json:"children,omitempty"`
}

// UnitRow is one unit in the list command output.
type UnitRow struct {
	Name      string   `json:"name"`
	Kind      string   `json:"kind"`
	Depth     int      `json:"depth"`
	Parent    string   `json:"parent,omitempty"`
	Value     *float64 `json:"value,omitempty"`
	Aggregate float64  `json:"aggregate"`
	Share     *float64 `json:"share,omitempty"`
}

// ListOutput is the JSON payload of the list command.
type ListOutput struct {
	Source string    `json:"source,omitempty"`
	Units  []UnitRow `json:"units"`
	Total  float64   `json:"total"`
}

// TierOutput is one tier of the levels command.
type TierOutput struct {
	Tier     int      `json:"tier"`
	Units    []string `json:"units"`
	Subtotal float64  `json:"subtotal"`
}

// LevelsOutput is the JSON payload of the levels command.
type LevelsOutput struct {
	Tiers []TierOutput `json:"tiers"`
	Total float64      `json:"total"`
}

// ChainLink is one unit on a chain from the root.
type ChainLink struct {
	Name      string  `json:"name"`
	Kind      string  `json:"kind"`
	Depth     int     `json:"depth"`
	Aggregate float64 `json:"aggregate"`
}

// ChainOutput is the JSON payload of the chain command.
type ChainOutput struct {
	Unit  string      `json:"unit"`
	Chain []ChainLink `json:"chain"`
}

// ValidateOutput is the JSON payload of the validate command.
type ValidateOutput struct {
	Source string        `json:"source,omitempty"`
	Valid  bool          `json:"valid"`
	Error  string        `json:"error,omitempty"`
	Stats  orgunit.Stats `json:"stats"`
}

// KindOf returns KindGroup for units that hold children and KindMember
// otherwise.
func KindOf(u orgunit.Unit) string {
	if _, ok := u.(orgunit.Parent); ok {
		return KindGroup
	}
	return KindMember
}
