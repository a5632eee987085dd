package i

import "errors"

var (
	ErrMazeNotFound      = errors.New("maze not found")
	ErrCacheMiss         = errors.New("maze not cached")
	ErrDimensionTooLarge = errors.New("maze dimension too large")
)
