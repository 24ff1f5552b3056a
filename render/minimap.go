package render

import (
	"math"

	"github.com/lixenwraith/raycaster/core"
	"github.com/lixenwraith/raycaster/parameter"
	"github.com/lixenwraith/raycaster/player"
	"github.com/lixenwraith/raycaster/raycast"
	"github.com/lixenwraith/raycaster/vmath"
	"github.com/lixenwraith/raycaster/world"
)

// cellColors indexed by cell code; codes past the table are white
var cellColors = [...]core.Color{
	1: core.Red,
	2: core.Green,
	3: core.Blue,
	4: core.Yellow,
	5: core.Cyan,
	6: core.Magenta,
}

// CellColor is the minimap color of a cell code
func CellColor(c world.Cell) core.Color {
	if int(c) < len(cellColors) && cellColors[c] != core.Transparent {
		return cellColors[c]
	}
	return core.White
}

// minimapPoint maps world coordinates to minimap pixels.
// The outer grid index runs down the image, so world x becomes pixel y.
func minimapPoint(v vmath.Vec2, scale int) (int, int) {
	s := float64(scale)
	return int(math.Floor(v.Y * s)), int(math.Floor(v.X * s))
}

// drawMinimap paints every stride-th ray, the cells, the heading line and the player
func drawMinimap(buf *core.PixelBuffer, w *world.World, p *player.Player, hits []raycast.Hit, cfg MinimapConfig) {
	buf.Clear()
	s := cfg.Scale
	px, py := minimapPoint(p.Position, s)

	// rays first, the cells cover their stamps
	if cfg.RayStride > 0 {
		for i := 0; i < len(hits); i += cfg.RayStride {
			hx, hy := minimapPoint(hits[i].Point, s)
			DrawLine(buf, hx, hy, px, py, core.White, parameter.MinimapRayThickness)
		}
	}

	n := w.Size()
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			c := w.At(x, y)
			if c == world.Open {
				continue
			}
			buf.FillRect(y*s, x*s, y*s+s, x*s+s, CellColor(c))
		}
	}

	tip := vmath.V2Add(p.Position, vmath.V2Scale(p.Direction, parameter.MinimapHeadingCells))
	tx, ty := minimapPoint(tip, s)
	DrawLine(buf, px, py, tx, ty, core.Green, parameter.MinimapHeadingThickness)

	DrawFilledCircle(buf, px, py, parameter.MinimapPlayerRadius, core.Red)
}
