// Package domain holds the records the service persists and returns.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Maze is a generated maze as stored and served. Walls is the per-cell wall
// bitmap produced by maze.Maze.Bitmap, row-major.
type Maze struct {
	ID        uuid.UUID `bson:"_id" json:"id"`
	Algorithm string    `bson:"algorithm" json:"algorithm"`
	Width     int       `bson:"width" json:"width"`
	Height    int       `bson:"height" json:"height"`
	Seed      int64     `bson:"seed" json:"seed"`
	Walls     []byte    `bson:"walls" json:"walls"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}
