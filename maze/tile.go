package maze

import "fmt"

// Layout is the read-only view that renderers and physics consume.
type Layout interface {
	Width() int
	Height() int
	IsWall(x, y int) bool
}

// TileMaze projects a cell maze onto a (2w+1) × (2h+1) tile grid. Tile
// (2x+1, 2y+1) is cell (x, y); the tiles between two cells are open when the
// wall between them has been removed; lattice corners and the frame are walls.
type TileMaze struct {
	maze *Maze
}

// Tiles returns the tile projection of m. The projection reads m live.
func Tiles(m *Maze) *TileMaze {
	return &TileMaze{maze: m}
}

// Width returns the number of tile columns.
func (t *TileMaze) Width() int {
	return 2*t.maze.width + 1
}

// Height returns the number of tile rows.
func (t *TileMaze) Height() int {
	return 2*t.maze.height + 1
}

// IsWall reports whether tile (x, y) is impassable.
func (t *TileMaze) IsWall(x, y int) bool {
	if x < 0 || x >= t.Width() || y < 0 || y >= t.Height() {
		panic(fmt.Sprintf("maze: tile (%d,%d) outside %dx%d tiles", x, y, t.Width(), t.Height()))
	}

	oddX, oddY := x%2 == 1, y%2 == 1
	switch {
	case oddX && oddY:
		return false
	case !oddX && !oddY:
		return true
	case oddX:
		// Horizontal wall row between cell rows y/2-1 and y/2.
		if y == 0 || y == t.Height()-1 {
			return true
		}
		return t.maze.HasWall(x/2, y/2-1, South)
	default:
		// Vertical wall column between cell columns x/2-1 and x/2.
		if x == 0 || x == t.Width()-1 {
			return true
		}
		return t.maze.HasWall(x/2-1, y/2, East)
	}
}

// Start returns the first open tile in raster order.
func (t *TileMaze) Start() (x, y int) {
	for y := 0; y < t.Height(); y++ {
		for x := 0; x < t.Width(); x++ {
			if !t.IsWall(x, y) {
				return x, y
			}
		}
	}
	return -1, -1
}

// Rows renders the tiles as one string per row, '#' for walls.
func (t *TileMaze) Rows() []string {
	rows := make([]string, t.Height())
	line := make([]byte, t.Width())
	for y := range rows {
		for x := range line {
			if t.IsWall(x, y) {
				line[x] = '#'
			} else {
				line[x] = '.'
			}
		}
		rows[y] = string(line)
	}
	return rows
}
