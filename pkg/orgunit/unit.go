package orgunit

// Unit is a node in an organisation tree.
type Unit interface {
	// ID returns the unit's identifier.
	ID() string

	// AggregateValue returns the value of the unit and everything below it.
	AggregateValue() float64
}

// Parent is a Unit that owns child units.
type Parent interface {
	Unit

	// Children returns the direct children in insertion order.
	Children() []Unit
}

// Leaf is an individual unit with an intrinsic value.
type Leaf struct {
	id    string
	value float64
}

// NewLeaf creates a leaf. Any value is accepted, including negative
// adjustments.
func NewLeaf(id string, value float64) *Leaf {
	return &Leaf{id: id, value: value}
}

// ID returns the leaf identifier.
func (l *Leaf) ID() string { return l.id }

// Value returns the intrinsic value.
func (l *Leaf) Value() float64 { return l.value }

// AggregateValue returns the intrinsic value.
func (l *Leaf) AggregateValue() float64 { return l.value }

// Composite is a named group of units.
type Composite struct {
	id       string
	children []Unit
}

// NewComposite creates a composite with no children.
func NewComposite(id string) *Composite {
	return &Composite{id: id}
}

// ID returns the composite identifier.
func (c *Composite) ID() string { return c.id }

// AddChild appends u to the children. A nil unit, including a nil *Leaf or
// *Composite, is ignored.
//
// The caller must not add the same unit twice, anywhere in the tree.
func (c *Composite) AddChild(u Unit) {
	if isNil(u) {
		return
	}
	c.children = append(c.children, u)
}

func isNil(u Unit) bool {
	switch v := u.(type) {
	case nil:
		return true
	case *Leaf:
		return v == nil
	case *Composite:
		return v == nil
	default:
		return false
	}
}

// Children returns a copy of the children in insertion order.
func (c *Composite) Children() []Unit {
	out := make([]Unit, len(c.children))
	copy(out, c.children)
	return out
}

// Len returns the number of direct children.
func (c *Composite) Len() int { return len(c.children) }

// AggregateValue returns the sum of the children's aggregate values.
// Recursion depth equals the height of the tree; see Total for a
// stack-independent alternative.
func (c *Composite) AggregateValue() float64 {
	var sum float64
	for _, child := range c.children {
		sum += child.AggregateValue()
	}
	return sum
}

var (
	_ Unit   = (*Leaf)(nil)
	_ Parent = (*Composite)(nil)
)
