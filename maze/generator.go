package maze

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
)

var ErrUnknownAlgorithm = errors.New("unknown maze algorithm")

// Grid is what a generator needs from the maze it carves.
type Grid interface {
	Width() int
	Height() int
	Moves(c Coordinate, moves *[4]Direction) int
	RemoveWall(c Coordinate, d Direction)
	Flags(c Coordinate) Flag
	SetFlags(c Coordinate, f Flag)
}

// Generator carves a spanning tree into a freshly filled grid.
// Carve must draw all of its randomness from rng so that a seeded rng
// reproduces the same maze.
type Generator interface {
	Name() string
	Carve(g Grid, rng *rand.Rand)
}

// Generate resets the maze to fully walled and runs gen over it.
// Calling it again on the same maze produces a fresh maze.
func (m *Maze) Generate(gen Generator, rng *rand.Rand) {
	m.Fill()
	gen.Carve(m, rng)
}

// NewRand returns a deterministic random source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

var registry = map[string]Generator{
	Wilson{}.Name():               Wilson{},
	RecursiveBacktracker{}.Name(): RecursiveBacktracker{},
	Kruskal{}.Name():              Kruskal{},
}

// Lookup returns the generator registered under name.
func Lookup(name string) (Generator, error) {
	gen, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return gen, nil
}

// Algorithms lists the registered generator names in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
