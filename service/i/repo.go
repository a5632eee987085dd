package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// MazeRepo defines the interface for maze persistence operations.
type MazeRepo interface {
	// Save inserts or updates a maze in the repository.
	Save(ctx context.Context, maze *dmn.Maze) error

	// ByID retrieves a maze by its unique ID.
	// Returns ErrMazeNotFound if no such maze is stored.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error)

	// BySeed retrieves the maze generated with the given parameters, if one was stored.
	BySeed(ctx context.Context, algorithm string, width, height int, seed int64) (*dmn.Maze, error)
}
