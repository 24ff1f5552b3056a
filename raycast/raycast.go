// Package raycast casts one ray per screen column through the world grid
package raycast

import (
	"math"

	"github.com/lixenwraith/raycaster/player"
	"github.com/lixenwraith/raycaster/vmath"
	"github.com/lixenwraith/raycaster/world"
)

// Side is the axis the ray crossed when it entered the hit cell
type Side = vmath.Axis

const (
	SideX = vmath.AxisX // x-facing wall
	SideY = vmath.AxisY // y-facing wall
)

// Hit describes the wall seen by one screen column
type Hit struct {
	PerpDist     float64 // distance along the camera direction, no fisheye
	Side         Side
	MapX, MapY   int
	Cell         world.Cell
	Ray          vmath.Vec2
	StepX, StepY int
	Point        vmath.Vec2 // exact intersection on the wall face
	WallX        float64    // offset along the face in [0, 1)

	// Outside is set when the ray left the grid before meeting a wall
	Outside bool
}

// CameraX maps column i of width to [-1, 1)
func CameraX(i, width int) float64 {
	return 2*float64(i)/float64(width) - 1
}

// RayDir is the ray direction through camera offset cameraX
func RayDir(p *player.Player, cameraX float64) vmath.Vec2 {
	return vmath.V2Add(p.Direction, vmath.V2Scale(p.Plane, cameraX))
}

// Cast fills one Hit per column, reusing hits when it has capacity
func Cast(p *player.Player, w *world.World, width int, hits []Hit) []Hit {
	if cap(hits) < width {
		hits = make([]Hit, width)
	}
	hits = hits[:width]
	for i := range hits {
		hits[i] = CastRay(p, w, RayDir(p, CameraX(i, width)))
	}
	return hits
}

// CastRay walks the grid from the player along ray until a wall.
// A ray that leaves the grid stops on the edge with Outside set.
func CastRay(p *player.Player, w *world.World, ray vmath.Vec2) Hit {
	tr := vmath.NewRayTraverser(p.Position, ray)
	maxSteps := 4*w.Size() + 4

	var (
		mx, my  int
		outside bool
	)
	for steps := 0; ; steps++ {
		mx, my = tr.Next()
		if !w.InBounds(mx, my) || steps >= maxSteps {
			outside = true
			break
		}
		if w.At(mx, my).IsWall() {
			break
		}
	}

	h := Hit{
		PerpDist: tr.PerpDist(),
		Side:     tr.Side(),
		MapX:     mx,
		MapY:     my,
		Cell:     w.At(mx, my),
		Ray:      ray,
		Outside:  outside,
	}
	h.StepX, h.StepY = tr.Step()
	h.Point, h.WallX = intersect(p.Position, h)

	if outside {
		h.Point.X = clamp(h.Point.X, 0, float64(w.Size()))
		h.Point.Y = clamp(h.Point.Y, 0, float64(w.Size()))
	}
	return h
}

// intersect locates the hit on the face nearest the player.
// A ray moving toward -x meets cell mapX on its far side mapX+1.
func intersect(pos vmath.Vec2, h Hit) (vmath.Vec2, float64) {
	var pt vmath.Vec2
	if h.Side == SideX {
		pt.X = float64(h.MapX)
		if h.StepX < 0 {
			pt.X++
		}
		pt.Y = pos.Y + h.PerpDist*h.Ray.Y
		return pt, pt.Y - math.Floor(pt.Y)
	}

	pt.Y = float64(h.MapY)
	if h.StepY < 0 {
		pt.Y++
	}
	pt.X = pos.X + h.PerpDist*h.Ray.X
	return pt, pt.X - math.Floor(pt.X)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
