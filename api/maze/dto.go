// Package mazeapi exposes maze generation over HTTP.
package mazeapi

import (
	"time"

	"github.com/google/uuid"
)

// GenerateRequest is the body of a generation request.
type GenerateRequest struct {
	Algorithm string `json:"algorithm"`
	Width     int    `json:"width" binding:"required,gt=0"`
	Height    int    `json:"height" binding:"required,gt=0"`
	Seed      int64  `json:"seed" binding:"gte=0"`
}

// MazeResponse describes a stored maze and its tile layout.
type MazeResponse struct {
	ID         uuid.UUID `json:"id"`
	Algorithm  string    `json:"algorithm"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Seed       int64     `json:"seed"`
	CreatedAt  time.Time `json:"created_at"`
	TileWidth  int       `json:"tile_width"`
	TileHeight int       `json:"tile_height"`
	Tiles      []string  `json:"tiles"` // '#' wall, '.' open
	StartX     int       `json:"start_x"`
	StartY     int       `json:"start_y"`
}

// AlgorithmsResponse lists the available generators.
type AlgorithmsResponse struct {
	Algorithms []string `json:"algorithms"`
	Default    string   `json:"default"`
}
