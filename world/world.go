package world

import (
	"fmt"
	"math"
)

// MinSize is the smallest grid with an interior
const MinSize = 3

// World is an immutable square grid of cells indexed [x][y]
type World struct {
	size  int
	cells []Cell // x*size + y
}

// New validates grid against the declared size and builds a World.
// The first offending coordinate in row-major order is reported.
func New(grid [][]int, size int) (*World, error) {
	if size < MinSize {
		return nil, fmt.Errorf("world size %d below minimum %d", size, MinSize)
	}
	if len(grid) != size {
		return nil, &ValidationError{Kind: ErrDimension, X: -1, Y: -1, Got: len(grid), Size: size}
	}

	w := &World{
		size:  size,
		cells: make([]Cell, size*size),
	}

	for x, row := range grid {
		if len(row) != size {
			return nil, &ValidationError{Kind: ErrDimension, X: x, Y: -1, Got: len(row), Size: size}
		}
		for y, code := range row {
			if code < 0 || code > int(MaxCode) {
				return nil, &ValidationError{Kind: ErrCodeRange, X: x, Y: y, Code: code, Size: size}
			}
			if code == int(Open) && w.onBoundary(x, y) {
				return nil, &ValidationError{Kind: ErrOpenBoundary, X: x, Y: y, Code: code, Size: size}
			}
			w.cells[x*size+y] = Cell(code)
		}
	}

	return w, nil
}

// MustNew panics on invalid grids, for literals known to be valid
func MustNew(grid [][]int, size int) *World {
	w, err := New(grid, size)
	if err != nil {
		panic(err)
	}
	return w
}

func (w *World) onBoundary(x, y int) bool {
	return x == 0 || y == 0 || x == w.size-1 || y == w.size-1
}

// Size returns N for an N×N grid
func (w *World) Size() int {
	return w.size
}

// InBounds returns true if (x, y) is a grid coordinate
func (w *World) InBounds(x, y int) bool {
	return x >= 0 && x < w.size && y >= 0 && y < w.size
}

// At returns the cell at (x, y); outside the grid reads as ImplicitWall
func (w *World) At(x, y int) Cell {
	if !w.InBounds(x, y) {
		return ImplicitWall
	}
	return w.cells[x*w.size+y]
}

// OpenAt reports whether the continuous position (px, py) lies in an open cell
func (w *World) OpenAt(px, py float64) bool {
	return w.At(int(math.Floor(px)), int(math.Floor(py))) == Open
}

// Grid returns a copy of the cell codes as [x][y]
func (w *World) Grid() [][]int {
	grid := make([][]int, w.size)
	for x := range grid {
		grid[x] = make([]int, w.size)
		for y := range grid[x] {
			grid[x][y] = int(w.cells[x*w.size+y])
		}
	}
	return grid
}

// OpenCells counts traversable cells
func (w *World) OpenCells() int {
	n := 0
	for _, c := range w.cells {
		if c == Open {
			n++
		}
	}
	return n
}
