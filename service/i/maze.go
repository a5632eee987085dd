package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// GenerateRequest describes the maze a caller wants.
type GenerateRequest struct {
	Algorithm string // empty means the configured default
	Width     int
	Height    int
	Seed      int64 // 0 means pick one at random
}

// MazeService generates, stores and serves mazes.
type MazeService interface {
	Generate(ctx context.Context, req GenerateRequest) (*dmn.Maze, error)
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error)
	Render(record *dmn.Maze) (*maze.Maze, error)
	Algorithms() []string
}
