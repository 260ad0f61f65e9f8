package orgunit

import "fmt"

// Validate reports whether root is the top of a proper tree: every unit
// reachable from it is reached exactly once.
//
// A unit that is its own ancestor yields a *StructureError with
// ReasonCycle; a unit reachable under two parents yields ReasonShared. Both
// match ErrInvalidStructure with errors.Is. Validate terminates on cyclic
// input. Units are compared by identity, so implementations must be
// comparable; *Leaf and *Composite are.
func Validate(root Unit) error {
	if root == nil {
		return ErrNilUnit
	}

	seen := make(map[Unit]bool)
	var path []Unit

	stack := []frame{{unit: root}}
	for len(stack) > 0 {
		n := len(stack) - 1
		f := stack[n]
		stack = stack[:n]

		path = path[:f.depth]
		if seen[f.unit] {
			reason := ReasonShared
			for _, anc := range path {
				if anc == f.unit {
					reason = ReasonCycle
					break
				}
			}
			return &StructureError{ID: f.unit.ID(), Reason: reason}
		}
		seen[f.unit] = true
		path = append(path, f.unit)

		kids, _ := children(f.unit)
		for i := len(kids) - 1; i >= 0; i-- {
			if kids[i] == nil {
				return fmt.Errorf("%w: child %d of %q", ErrNilUnit, i, f.unit.ID())
			}
			stack = append(stack, frame{unit: kids[i], depth: f.depth + 1})
		}
	}
	return nil
}
