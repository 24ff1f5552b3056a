package vmath

import (
	"math"
)

// Axis identifies which grid axis the last traversal step crossed
type Axis uint8

const (
	AxisX Axis = iota // Stepped along x, crossed a vertical grid line
	AxisY             // Stepped along y, crossed a horizontal grid line
)

// RayTraverser is a zero-allocation float DDA iterator over unit grid cells.
// Unlike a segment traverser it has no target; the caller stops it.
type RayTraverser struct {
	mapX, mapY   int
	stepX, stepY int

	sideDistX, sideDistY   float64
	deltaDistX, deltaDistY float64

	side Axis
}

// NewRayTraverser starts a traversal at the cell containing origin along dir.
// dir does not need to be normalized; distances are in units of |dir|.
func NewRayTraverser(origin, dir Vec2) RayTraverser {
	mx, my := V2Floor(origin)

	t := RayTraverser{
		mapX:       mx,
		mapY:       my,
		deltaDistX: deltaDist(dir.X),
		deltaDistY: deltaDist(dir.Y),
	}

	if dir.X < 0 {
		t.stepX = -1
		t.sideDistX = (origin.X - float64(mx)) * t.deltaDistX
	} else {
		t.stepX = 1
		t.sideDistX = (float64(mx) + 1 - origin.X) * t.deltaDistX
	}

	if dir.Y < 0 {
		t.stepY = -1
		t.sideDistY = (origin.Y - float64(my)) * t.deltaDistY
	} else {
		t.stepY = 1
		t.sideDistY = (float64(my) + 1 - origin.Y) * t.deltaDistY
	}

	return t
}

// deltaDist is the ray length between successive grid lines on one axis.
// MaxFloat64 instead of +Inf keeps 0*delta finite.
func deltaDist(d float64) float64 {
	if d == 0 {
		return math.MaxFloat64
	}
	return math.Abs(1 / d)
}

// Next steps into the neighbouring cell on the axis with the nearer grid line.
// Ties step y.
func (t *RayTraverser) Next() (int, int) {
	if t.sideDistX < t.sideDistY {
		t.sideDistX += t.deltaDistX
		t.mapX += t.stepX
		t.side = AxisX
	} else {
		t.sideDistY += t.deltaDistY
		t.mapY += t.stepY
		t.side = AxisY
	}
	return t.mapX, t.mapY
}

// Pos returns the current cell
func (t *RayTraverser) Pos() (int, int) {
	return t.mapX, t.mapY
}

// Side returns the axis crossed by the last step
func (t *RayTraverser) Side() Axis {
	return t.side
}

// Step returns the per-axis step direction, each -1 or +1
func (t *RayTraverser) Step() (int, int) {
	return t.stepX, t.stepY
}

// PerpDist is the distance to the last crossed grid line measured along the
// camera direction, not the euclidean ray length
func (t *RayTraverser) PerpDist() float64 {
	if t.side == AxisX {
		return t.sideDistX - t.deltaDistX
	}
	return t.sideDistY - t.deltaDistY
}
