package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileMaze(t *testing.T) {
	t.Run("Dimensions", func(t *testing.T) {
		m, err := New(4, 3)
		require.NoError(t, err)
		tiles := Tiles(m)
		assert.Equal(t, 9, tiles.Width())
		assert.Equal(t, 7, tiles.Height())
	})

	t.Run("Walled grid shows only cell tiles", func(t *testing.T) {
		m, err := New(2, 1)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"#####",
			"#.#.#",
			"#####",
		}, Tiles(m).Rows())
	})

	t.Run("Removed walls open the tile between cells", func(t *testing.T) {
		m, err := New(2, 2)
		require.NoError(t, err)
		m.RemoveWall(Coordinate{X: 0, Y: 0}, East)
		m.RemoveWall(Coordinate{X: 1, Y: 0}, South)
		m.RemoveWall(Coordinate{X: 1, Y: 1}, West)
		assert.Equal(t, []string{
			"#####",
			"#...#",
			"###.#",
			"#...#",
			"#####",
		}, Tiles(m).Rows())
	})

	t.Run("Open tiles match carved passages", func(t *testing.T) {
		m := generate(t, Wilson{}, 6, 6, 8)
		tiles := Tiles(m)

		open := 0
		for y := 0; y < tiles.Height(); y++ {
			for x := 0; x < tiles.Width(); x++ {
				if !tiles.IsWall(x, y) {
					open++
				}
			}
		}
		// One tile per cell plus one per passage.
		assert.Equal(t, 36+35, open)
	})

	t.Run("Frame is closed", func(t *testing.T) {
		m := generate(t, Kruskal{}, 5, 4, 1)
		tiles := Tiles(m)
		for x := 0; x < tiles.Width(); x++ {
			assert.True(t, tiles.IsWall(x, 0))
			assert.True(t, tiles.IsWall(x, tiles.Height()-1))
		}
		for y := 0; y < tiles.Height(); y++ {
			assert.True(t, tiles.IsWall(0, y))
			assert.True(t, tiles.IsWall(tiles.Width()-1, y))
		}
	})

	t.Run("Start is the first cell", func(t *testing.T) {
		m := generate(t, Wilson{}, 3, 3, 0)
		x, y := Tiles(m).Start()
		assert.Equal(t, 1, x)
		assert.Equal(t, 1, y)
	})

	t.Run("Out of range panics", func(t *testing.T) {
		m, err := New(1, 1)
		require.NoError(t, err)
		tiles := Tiles(m)
		assert.Panics(t, func() { tiles.IsWall(3, 0) })
		assert.Panics(t, func() { tiles.IsWall(0, -1) })
	})

	var _ Layout = Tiles(&Maze{})
}
