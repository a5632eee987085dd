package maze

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

var ErrNotSpanningTree = errors.New("maze is not a spanning tree")

// Validate checks that the open passages of m form a spanning tree:
// walls agree on both sides, there are exactly w·h−1 passages, and every
// cell is reachable from (0, 0).
func Validate(m *Maze) error {
	if _, err := FromBitmap(m.width, m.height, m.walls); err != nil {
		return fmt.Errorf("%w: %v", ErrNotSpanningTree, err)
	}

	cells := m.width * m.height
	if open := m.OpenEdges(); open != cells-1 {
		return fmt.Errorf("%w: %d open edges, want %d", ErrNotSpanningTree, open, cells-1)
	}

	if reached := m.reachable(Coordinate{}); reached != cells {
		return fmt.Errorf("%w: reached %d of %d cells", ErrNotSpanningTree, reached, cells)
	}
	return nil
}

// reachable counts the cells connected to start through open passages.
func (m *Maze) reachable(start Coordinate) int {
	visited := mapset.New[int]()
	visited.Put(m.index(start.X, start.Y))
	queue := []Coordinate{start}

	var moves [4]Direction
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, d := range moves[:m.Moves(current, &moves)] {
			if m.HasWall(current.X, current.Y, d) {
				continue
			}
			next := current
			next.Translate(d)
			idx := m.index(next.X, next.Y)
			if visited.Has(idx) {
				continue
			}
			visited.Put(idx)
			queue = append(queue, next)
		}
	}
	return visited.Size()
}
