package maze

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/katalvlaran/lvlath/graph/algorithms"
	"github.com/katalvlaran/lvlath/graph/core"
)

// Kruskal carves a maze by weighting every inner wall with a random rank and
// taking the minimum spanning tree of the cell graph. Each tree edge is a
// wall to knock down.
type Kruskal struct{}

type edge struct {
	from Coordinate
	dir  Direction
}

// Name implements Generator.
func (Kruskal) Name() string {
	return "kruskal"
}

// Carve implements Generator.
func (Kruskal) Carve(g Grid, rng *rand.Rand) {
	width, height := g.Width(), g.Height()

	graph := core.NewGraph(false, true)
	for i := 0; i < width*height; i++ {
		graph.AddVertex(&core.Vertex{ID: strconv.Itoa(i)})
	}

	// Only east and south walls, every inner wall exactly once.
	edges := make([]edge, 0, 2*width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x < width-1 {
				edges = append(edges, edge{from: Coordinate{X: x, Y: y}, dir: East})
			}
			if y < height-1 {
				edges = append(edges, edge{from: Coordinate{X: x, Y: y}, dir: South})
			}
		}
	}

	// Distinct weights make the spanning tree independent of the order the
	// graph hands its edges back in.
	ranks := rng.Perm(len(edges))
	byPair := make(map[[2]int]edge, len(edges))
	for i, e := range edges {
		to := e.from
		to.Translate(e.dir)
		a, b := e.from.Y*width+e.from.X, to.Y*width+to.X
		byPair[[2]int{a, b}] = e
		graph.AddEdge(strconv.Itoa(a), strconv.Itoa(b), int64(ranks[i]))
	}

	tree, _, err := algorithms.Kruskal(graph)
	if err != nil {
		panic(fmt.Sprintf("maze: kruskal on cell graph: %v", err))
	}

	for _, te := range tree {
		a, _ := strconv.Atoi(te.From.ID)
		b, _ := strconv.Atoi(te.To.ID)
		if a > b {
			a, b = b, a
		}
		e := byPair[[2]int{a, b}]
		to := e.from
		to.Translate(e.dir)
		g.RemoveWall(e.from, e.dir)
		g.SetFlags(e.from, FlagInTree)
		g.SetFlags(to, FlagInTree)
	}

	if width*height == 1 {
		g.SetFlags(Coordinate{}, FlagInTree)
	}
}
