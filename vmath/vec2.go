package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector for world-space positions and directions
type Vec2 struct {
	X, Y float64
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2IsZero reports whether both components are exactly zero
func V2IsZero(v Vec2) bool {
	return v.X == 0 && v.Y == 0
}

// V2Rotate applies the standard rotation matrix, positive angle turns counter-clockwise
func V2Rotate(v Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// V2Floor returns the integer cell containing v
func V2Floor(v Vec2) (int, int) {
	return int(math.Floor(v.X)), int(math.Floor(v.Y))
}

// V2Near reports whether a and b differ by at most eps on each axis
func V2Near(a, b Vec2, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}
