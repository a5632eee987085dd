package maze

import "fmt"

// Flag is the per-cell scratch value used while a generator runs. It holds
// exactly one of:
//
//   - Unvisited: the cell has not been touched this run.
//   - Walking(d): a walk or trace leaves this cell towards d. The value is d's ordinal (0-3).
//   - InTree: the cell already belongs to the spanning tree.
//
// The markers sit outside the 0-3 range so they never read as a direction.
type Flag uint8

const (
	// FlagInTree marks a cell that is part of the spanning tree.
	FlagInTree Flag = 4
	// FlagUnvisited is the value every cell holds after Fill.
	FlagUnvisited Flag = 5
)

// WalkingFlag encodes an exit direction.
func WalkingFlag(d Direction) Flag {
	if !d.IsValid() {
		panic(fmt.Sprintf("maze: invalid direction %d", d))
	}
	return Flag(d)
}

// IsWalking reports whether f records an exit direction.
func (f Flag) IsWalking() bool {
	return f <= Flag(West)
}

// InTree reports whether f is the in-tree marker.
func (f Flag) InTree() bool {
	return f == FlagInTree
}

// Unvisited reports whether f is the unvisited marker.
func (f Flag) Unvisited() bool {
	return f == FlagUnvisited
}

// Direction decodes the exit direction. It panics if f is not a walking flag.
func (f Flag) Direction() Direction {
	if !f.IsWalking() {
		panic(fmt.Sprintf("maze: flag %s carries no direction", f))
	}
	return Direction(f)
}

func (f Flag) String() string {
	switch {
	case f.IsWalking():
		return "Walking(" + Direction(f).String() + ")"
	case f == FlagInTree:
		return "InTree"
	case f == FlagUnvisited:
		return "Unvisited"
	default:
		return fmt.Sprintf("Flag(%d)", uint8(f))
	}
}
