package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirection(t *testing.T) {
	t.Run("Opposite pairs", func(t *testing.T) {
		assert.Equal(t, South, North.Opposite())
		assert.Equal(t, North, South.Opposite())
		assert.Equal(t, West, East.Opposite())
		assert.Equal(t, East, West.Opposite())
	})

	t.Run("Deltas are unit steps that cancel with the opposite", func(t *testing.T) {
		for _, d := range Directions {
			dx, dy := d.Delta()
			ox, oy := d.Opposite().Delta()
			assert.Equal(t, 1, abs(dx)+abs(dy), d.String())
			assert.Equal(t, 0, dx+ox, d.String())
			assert.Equal(t, 0, dy+oy, d.String())
		}
	})

	t.Run("North decreases y and east increases x", func(t *testing.T) {
		dx, dy := North.Delta()
		assert.Equal(t, 0, dx)
		assert.Equal(t, -1, dy)
		dx, dy = East.Delta()
		assert.Equal(t, 1, dx)
		assert.Equal(t, 0, dy)
	})

	t.Run("Ordinals", func(t *testing.T) {
		for i, d := range Directions {
			assert.Equal(t, i, int(d))
			assert.True(t, d.IsValid())
		}
		assert.False(t, Direction(4).IsValid())
		assert.Equal(t, "Unknown", Direction(9).String())
	})
}

func TestCoordinate(t *testing.T) {
	var c Coordinate
	c.Set(2, 3)
	c.Translate(North)
	assert.Equal(t, Coordinate{X: 2, Y: 2}, c)
	c.Translate(West)
	assert.Equal(t, Coordinate{X: 1, Y: 2}, c)

	var other Coordinate
	other.SetFrom(c)
	other.Translate(East)
	assert.Equal(t, Coordinate{X: 1, Y: 2}, c)
	assert.Equal(t, Coordinate{X: 2, Y: 2}, other)
}

func TestFlag(t *testing.T) {
	t.Run("Walking flags carry their direction", func(t *testing.T) {
		for _, d := range Directions {
			f := WalkingFlag(d)
			assert.True(t, f.IsWalking())
			assert.False(t, f.InTree())
			assert.False(t, f.Unvisited())
			assert.Equal(t, d, f.Direction())
		}
	})

	t.Run("Markers are not directions", func(t *testing.T) {
		assert.False(t, FlagInTree.IsWalking())
		assert.False(t, FlagUnvisited.IsWalking())
		assert.True(t, FlagInTree.InTree())
		assert.True(t, FlagUnvisited.Unvisited())
		assert.Panics(t, func() { _ = FlagInTree.Direction() })
		assert.Panics(t, func() { _ = FlagUnvisited.Direction() })
	})

	t.Run("Invalid direction cannot be encoded", func(t *testing.T) {
		assert.Panics(t, func() { _ = WalkingFlag(Direction(7)) })
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "Walking(East)", WalkingFlag(East).String())
		assert.Equal(t, "InTree", FlagInTree.String())
		assert.Equal(t, "Unvisited", FlagUnvisited.String())
	})
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
