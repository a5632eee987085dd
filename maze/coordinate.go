package maze

// Coordinate is a mutable cell position. Generators keep a handful of these
// as cursors and move them in place instead of allocating per step.
type Coordinate struct {
	X int
	Y int
}

// Set moves the coordinate to (x, y).
func (c *Coordinate) Set(x, y int) {
	c.X = x
	c.Y = y
}

// SetFrom copies other into c.
func (c *Coordinate) SetFrom(other Coordinate) {
	c.X = other.X
	c.Y = other.Y
}

// Translate steps the coordinate one cell in d.
func (c *Coordinate) Translate(d Direction) {
	dx, dy := d.Delta()
	c.X += dx
	c.Y += dy
}
