package orgunit

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStructure reports a unit graph that is not a tree.
	ErrInvalidStructure = errors.New("orgunit: invalid structure")

	// ErrNilUnit reports a nil root unit.
	ErrNilUnit = errors.New("orgunit: nil unit")

	// SkipChildren is returned from a WalkFunc to skip the children of the
	// current unit. Walk itself never returns it.
	SkipChildren = errors.New("orgunit: skip children")
)

// Reasons carried by a StructureError.
const (
	ReasonCycle  = "cycle"
	ReasonShared = "shared"
)

// StructureError describes where a unit graph stops being a tree.
type StructureError struct {
	// ID of the unit that was reached more than once.
	ID string
	// Reason is ReasonCycle when the unit is its own ancestor and
	// ReasonShared when it has more than one parent.
	Reason string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("%s: unit %q is %s", ErrInvalidStructure, e.ID, describe(e.Reason))
}

// Unwrap returns ErrInvalidStructure.
func (e *StructureError) Unwrap() error { return ErrInvalidStructure }

func describe(reason string) string {
	switch reason {
	case ReasonCycle:
		return "its own ancestor"
	case ReasonShared:
		return "attached to more than one parent"
	default:
		return reason
	}
}
