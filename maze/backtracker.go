package maze

import "math/rand/v2"

// RecursiveBacktracker carves a maze by depth-first search from the top-left
// cell, backing up whenever the current cell has no unvisited neighbour.
// Mazes come out with long corridors and few branches; they are spanning
// trees but not uniformly distributed.
type RecursiveBacktracker struct{}

// Name implements Generator.
func (RecursiveBacktracker) Name() string {
	return "backtracker"
}

// Carve implements Generator.
func (RecursiveBacktracker) Carve(g Grid, rng *rand.Rand) {
	var (
		moves      [4]Direction
		candidates [4]Direction
	)

	stack := make([]Coordinate, 0, g.Width()+g.Height())
	stack = append(stack, Coordinate{})
	g.SetFlags(Coordinate{}, FlagInTree)

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		count := 0
		for _, d := range moves[:g.Moves(current, &moves)] {
			next := current
			next.Translate(d)
			if !g.Flags(next).InTree() {
				candidates[count] = d
				count++
			}
		}

		if count == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.IntN(count)]
		g.RemoveWall(current, d)
		current.Translate(d)
		g.SetFlags(current, FlagInTree)
		stack = append(stack, current)
	}
}
