package maze

import "math/rand/v2"

// Wilson carves a uniform spanning tree with loop-erased random walks.
//
// The last cell in raster order seeds the tree. Remaining cells are scanned in
// reverse raster order; from each cell not yet in the tree a random walk runs
// until it hits the tree, recording at every cell the direction it left by.
// Revisiting a cell overwrites its record, which erases the loop. The walk is
// then traced again from its start along the recorded directions, carving
// and adding each cell to the tree.
type Wilson struct{}

// Name implements Generator.
func (Wilson) Name() string {
	return "wilson"
}

// Carve implements Generator.
func (Wilson) Carve(g Grid, rng *rand.Rand) {
	width, height := g.Width(), g.Height()

	var (
		moves   [4]Direction
		walk    Coordinate
		trace   Coordinate
		current Coordinate
	)

	current.Set(width-1, height-1)
	g.SetFlags(current, FlagInTree)

	i := width*height - 2
	if i < 0 {
		return
	}
	current.Set(i%width, i/width)

	for i >= 0 {
		walk.SetFrom(current)

		// Walk until the tree is hit, keeping only the last exit from each cell.
		for !g.Flags(walk).InTree() {
			count := g.Moves(walk, &moves)
			d := moves[rng.IntN(count)]
			g.SetFlags(walk, WalkingFlag(d))
			walk.Translate(d)
		}

		// Carve the loop-erased path.
		trace.SetFrom(current)
		for f := g.Flags(trace); !f.InTree(); f = g.Flags(trace) {
			d := f.Direction()
			g.RemoveWall(trace, d)
			g.SetFlags(trace, FlagInTree)
			trace.Translate(d)
		}

		// Next cell still outside the tree.
		for ; i >= 0; i-- {
			current.Set(i%width, i/width)
			if !g.Flags(current).InTree() {
				break
			}
		}
	}
}
