package render

import (
	"github.com/lixenwraith/raycaster/core"
)

// DrawLine draws an integer Bresenham line.
// Each point stamps a thickness×thickness square offset by -thickness/2.
func DrawLine(buf *core.PixelBuffer, x0, y0, x1, y1 int, c core.Color, thickness int) {
	thickness = max(thickness, 1)
	off := thickness / 2

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		if thickness == 1 {
			buf.Set(x0, y0, c)
		} else {
			buf.FillRect(x0-off, y0-off, x0-off+thickness, y0-off+thickness, c)
		}

		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawFilledCircle fills a midpoint circle with horizontal spans
func DrawFilledCircle(buf *core.PixelBuffer, cx, cy, radius int, c core.Color) {
	if radius <= 0 {
		buf.Set(cx, cy, c)
		return
	}

	span := func(xa, xb, y int) {
		buf.FillRect(xa, y, xb+1, y+1, c)
	}

	x, y := radius, 0
	d := 1 - radius
	for x >= y {
		span(cx-x, cx+x, cy+y)
		span(cx-x, cx+x, cy-y)
		span(cx-y, cx+y, cy+x)
		span(cx-y, cx+y, cy-x)

		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
