package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// MazeCache keeps recently generated mazes close at hand.
type MazeCache interface {
	// Get returns a cached maze or ErrCacheMiss.
	Get(ctx context.Context, id uuid.UUID) (*dmn.Maze, error)

	// BySeed returns the cached maze for the generation parameters or ErrCacheMiss.
	BySeed(ctx context.Context, algorithm string, width, height int, seed int64) (*dmn.Maze, error)

	// Set stores the maze under its ID and its generation parameters.
	Set(ctx context.Context, maze *dmn.Maze) error
}

// Locker serialises work on a key across service instances.
type Locker interface {
	// Lock blocks until key is held and returns the function that releases it.
	Lock(ctx context.Context, key string) (func(), error)
}
