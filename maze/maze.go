/*
Package maze generates perfect mazes on rectangular grids.

A Maze owns the wall topology of a width × height grid of cells together with
a parallel array of scratch flags that generators use while they run. Every
generator carves a spanning tree: once it returns, exactly one simple path
joins any two cells.

Wilson's algorithm is the default generator and samples uniformly among all
spanning trees of the grid. A recursive backtracker and a randomised Kruskal
are provided as siblings behind the same Generator contract.

Consumers that only need to know where the walls are should read the maze
through its tile projection (see Tiles), which answers IsWall for every tile.
*/
package maze

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// allWalls has a bit set for each of the four sides.
const allWalls uint8 = 1<<4 - 1

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrInvalidBitmap     = errors.New("invalid wall bitmap")
)

// Maze is a rectangular grid of cells with walls between them.
type Maze struct {
	width  int     // Width of the maze (number of columns)
	height int     // Height of the maze (number of rows)
	walls  []uint8 // Wall bitmask per cell, row-major, one bit per Direction
	flags  []Flag  // Scratch flags, only meaningful while a generator runs
}

// New allocates a fully walled maze of the given dimensions.
func New(width, height int) (*Maze, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	// The tile view is (2w+1)x(2h+1); its size must fit in an int, which
	// also bounds the cell count.
	if width > (math.MaxInt-1)/2 || height > (math.MaxInt-1)/2 ||
		2*width+1 > math.MaxInt/(2*height+1) {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, width, height)
	}

	m := &Maze{
		width:  width,
		height: height,
		walls:  make([]uint8, width*height),
		flags:  make([]Flag, width*height),
	}
	m.Fill()
	return m, nil
}

// FromBitmap rebuilds a maze from a bitmap produced by Bitmap.
func FromBitmap(width, height int, bitmap []byte) (*Maze, error) {
	m, err := New(width, height)
	if err != nil {
		return nil, err
	}
	if len(bitmap) != width*height {
		return nil, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidBitmap, len(bitmap), width*height)
	}

	for i, b := range bitmap {
		if b&^allWalls != 0 {
			return nil, fmt.Errorf("%w: cell %d has stray bits %#x", ErrInvalidBitmap, i, b)
		}
		m.walls[i] = b
	}

	// Outward sides are always walled and inner walls must agree on both sides.
	var c Coordinate
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c.Set(x, y)
			for _, d := range Directions {
				n, ok := m.neighbor(c, d)
				if !ok {
					if m.walls[m.index(x, y)]&d.bit() == 0 {
						return nil, fmt.Errorf("%w: (%d,%d) is open to the %s border", ErrInvalidBitmap, x, y, d)
					}
					continue
				}
				here := m.walls[m.index(x, y)]&d.bit() != 0
				there := m.walls[m.index(n.X, n.Y)]&d.Opposite().bit() != 0
				if here != there {
					return nil, fmt.Errorf("%w: asymmetric wall at (%d,%d) %s", ErrInvalidBitmap, x, y, d)
				}
			}
		}
	}
	return m, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.height
}

// Fill walls every side of every cell and clears the scratch flags.
func (m *Maze) Fill() {
	for i := range m.walls {
		m.walls[i] = allWalls
		m.flags[i] = FlagUnvisited
	}
}

// RemoveWall opens the passage between c and its neighbour in d.
// Both sides are cleared together. Panics if either cell is outside the grid.
func (m *Maze) RemoveWall(c Coordinate, d Direction) {
	n, ok := m.neighbor(c, d)
	if !ok {
		panic(fmt.Sprintf("maze: no neighbour %s of (%d,%d) in %dx%d grid", d, c.X, c.Y, m.width, m.height))
	}
	m.walls[m.index(c.X, c.Y)] &^= d.bit()
	m.walls[m.index(n.X, n.Y)] &^= d.Opposite().bit()
}

// HasWall reports whether the d side of cell (x, y) is closed.
// Sides facing the outside of the grid are always closed. Panics if d is not
// one of the four directions.
func (m *Maze) HasWall(x, y int, d Direction) bool {
	if !d.IsValid() {
		panic(fmt.Sprintf("maze: invalid direction %d", d))
	}
	return m.walls[m.mustIndex(x, y)]&d.bit() != 0
}

// Flags returns the scratch flag of c.
func (m *Maze) Flags(c Coordinate) Flag {
	return m.flags[m.mustIndex(c.X, c.Y)]
}

// SetFlags stores f as the scratch flag of c.
func (m *Maze) SetFlags(c Coordinate, f Flag) {
	m.flags[m.mustIndex(c.X, c.Y)] = f
}

// Moves writes the directions leading to an in-bounds neighbour of c into
// moves, in North, East, South, West order, and returns how many there are.
func (m *Maze) Moves(c Coordinate, moves *[4]Direction) int {
	count := 0
	if c.Y > 0 {
		moves[count] = North
		count++
	}
	if c.X < m.width-1 {
		moves[count] = East
		count++
	}
	if c.Y < m.height-1 {
		moves[count] = South
		count++
	}
	if c.X > 0 {
		moves[count] = West
		count++
	}
	return count
}

// OpenEdges counts the passages between adjacent cells.
func (m *Maze) OpenEdges() int {
	open := 0
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			w := m.walls[m.index(x, y)]
			if x < m.width-1 && w&East.bit() == 0 {
				open++
			}
			if y < m.height-1 && w&South.bit() == 0 {
				open++
			}
		}
	}
	return open
}

// Bitmap returns a copy of the wall bitmasks in row-major order.
func (m *Maze) Bitmap() []byte {
	out := make([]byte, len(m.walls))
	copy(out, m.walls)
	return out
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	var b strings.Builder

	// Top boundary
	b.WriteString("+" + strings.Repeat("---+", m.width) + "\n")

	for y := 0; y < m.height; y++ {
		b.WriteString("|")
		for x := 0; x < m.width; x++ {
			if m.HasWall(x, y, East) {
				b.WriteString("   |")
			} else {
				b.WriteString("    ")
			}
		}
		b.WriteString("\n+")
		for x := 0; x < m.width; x++ {
			if m.HasWall(x, y, South) {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m *Maze) inBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

func (m *Maze) index(x, y int) int {
	return y*m.width + x
}

func (m *Maze) mustIndex(x, y int) int {
	if !m.inBounds(x, y) {
		panic(fmt.Sprintf("maze: cell (%d,%d) outside %dx%d grid", x, y, m.width, m.height))
	}
	return m.index(x, y)
}

// neighbor returns the cell next to c in d, if it lies inside the grid.
func (m *Maze) neighbor(c Coordinate, d Direction) (Coordinate, bool) {
	if !m.inBounds(c.X, c.Y) {
		return Coordinate{}, false
	}
	n := c
	n.Translate(d)
	return n, m.inBounds(n.X, n.Y)
}
