package world

// Cell is a grid cell code: 0 is traversable, 1-9 are wall materials
type Cell uint8

const (
	Open Cell = 0

	// MaxCode is the highest valid wall material
	MaxCode Cell = 9

	// ImplicitWall is reported for coordinates outside the grid
	ImplicitWall Cell = 1
)

// IsWall reports whether the cell blocks movement and rays
func (c Cell) IsWall() bool {
	return c != Open
}

// TextureIndex maps a wall material to its texture slot, -1 for open cells
func (c Cell) TextureIndex() int {
	if c == Open {
		return -1
	}
	return int(c) - 1
}
