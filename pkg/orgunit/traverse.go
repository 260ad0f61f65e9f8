package orgunit

import "errors"

// WalkFunc is called by Walk for each unit. depth is 0 for the root.
type WalkFunc func(u Unit, depth int) error

// frame is a pending unit on the explicit work stack.
type frame struct {
	unit  Unit
	depth int
}

// children returns the direct children of u, or nil if u has none.
// It reads a Composite's slice directly instead of copying it.
func children(u Unit) ([]Unit, bool) {
	switch p := u.(type) {
	case *Composite:
		return p.children, true
	case Parent:
		return p.Children(), true
	default:
		return nil, false
	}
}

// Total returns the aggregate value of root without recursing.
//
// Units that implement Parent are expanded onto a LIFO work stack; every
// other unit contributes its AggregateValue. For integral values the result
// equals root.AggregateValue(). Floating-point sums may differ in the last
// bits because additions are grouped differently.
func Total(root Unit) float64 {
	if root == nil {
		return 0
	}

	var sum float64
	stack := []Unit{root}
	for len(stack) > 0 {
		n := len(stack) - 1
		u := stack[n]
		stack = stack[:n]

		kids, ok := children(u)
		if !ok {
			sum += u.AggregateValue()
			continue
		}
		// Push in reverse so units are summed in insertion order.
		for i := len(kids) - 1; i >= 0; i-- {
			if kids[i] != nil {
				stack = append(stack, kids[i])
			}
		}
	}
	return sum
}

// Walk visits root and its descendants in pre-order, children in insertion
// order, using an explicit stack.
//
// If fn returns SkipChildren the current unit's descendants are skipped.
// Any other non-nil error stops the walk and is returned. Walk assumes a
// well-formed tree; run Validate first on untrusted structures.
func Walk(root Unit, fn WalkFunc) error {
	if root == nil {
		return ErrNilUnit
	}

	stack := []frame{{unit: root}}
	for len(stack) > 0 {
		n := len(stack) - 1
		f := stack[n]
		stack = stack[:n]

		if err := fn(f.unit, f.depth); err != nil {
			if errors.Is(err, SkipChildren) {
				continue
			}
			return err
		}

		kids, _ := children(f.unit)
		for i := len(kids) - 1; i >= 0; i-- {
			if kids[i] != nil {
				stack = append(stack, frame{unit: kids[i], depth: f.depth + 1})
			}
		}
	}
	return nil
}

var errFound = errors.New("found")

// PathTo returns the units from root down to the first unit, in pre-order,
// whose ID is id. The result includes both ends. ok is false when no unit
// matches.
func PathTo(root Unit, id string) (path []Unit, ok bool) {
	var trail []Unit
	err := Walk(root, func(u Unit, depth int) error {
		// In pre-order the first depth entries are always u's ancestors.
		trail = append(trail[:depth], u)
		if u.ID() == id {
			return errFound
		}
		return nil
	})
	if !errors.Is(err, errFound) {
		return nil, false
	}
	path = make([]Unit, len(trail))
	copy(path, trail)
	return path, true
}

// Stats summarises a tree.
type Stats struct {
	Units      int     `json:"units"`
	Leaves     int     `json:"leaves"`
	Composites int     `json:"composites"`
	Height     int     `json:"height"`
	Total      float64 `json:"total"`
}

// Summarize counts the units below root and computes its total.
// A nil root yields zero Stats.
func Summarize(root Unit) Stats {
	var s Stats
	_ = Walk(root, func(u Unit, depth int) error {
		s.Units++
		if _, ok := children(u); ok {
			s.Composites++
		} else {
			s.Leaves++
		}
		if depth > s.Height {
			s.Height = depth
		}
		return nil
	})
	s.Total = Total(root)
	return s
}
