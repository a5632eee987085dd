package maze

// Direction is one of the four grid-axis moves. Its ordinal doubles as the
// direction code stored in a cell's scratch flag during a random walk.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every direction in ordinal order.
var Directions = [4]Direction{North, East, South, West}

var deltas = [4]struct{ dx, dy int }{
	North: {0, -1},
	East:  {1, 0},
	South: {0, 1},
	West:  {-1, 0},
}

// IsValid reports whether d is one of the four directions.
func (d Direction) IsValid() bool {
	return d <= West
}

// Delta returns the column and row offsets of a single step in d.
func (d Direction) Delta() (dx, dy int) {
	delta := deltas[d]
	return delta.dx, delta.dy
}

// Opposite returns the direction pointing back the way d came.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// bit is d's position in a cell's wall bitmask.
func (d Direction) bit() uint8 {
	return 1 << d
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}
