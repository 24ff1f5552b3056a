package render

import (
	"math"

	"github.com/lixenwraith/raycaster/core"
	"github.com/lixenwraith/raycaster/parameter"
	"github.com/lixenwraith/raycaster/raycast"
)

// DrawBackground paints the ceiling over the top half and the floor over the rest
func DrawBackground(buf *core.PixelBuffer, ceiling, floor core.Color) {
	half := buf.Height() / 2
	buf.FillRows(0, half, ceiling)
	buf.FillRows(half, buf.Height(), floor)
}

// LineHeight projects a wall at perpDist onto a surface of the given height.
// Non-positive distances and extreme heights clamp to MaxLineHeightFactor×surface.
func LineHeight(perpDist float64, surfaceHeight int, factor float64) int {
	limit := parameter.MaxLineHeightFactor * surfaceHeight
	if perpDist <= 0 {
		return limit
	}
	h := float64(surfaceHeight) * factor / perpDist
	if h >= float64(limit) || math.IsNaN(h) {
		return limit
	}
	return int(h)
}

// DrawRange returns the rows [start, end) covered by a wall strip
func DrawRange(lineHeight, surfaceHeight int) (start, end int) {
	start = max(-lineHeight/2+surfaceHeight/2, 0)
	end = min(lineHeight/2+surfaceHeight/2, surfaceHeight-1)
	return start, end
}

// TextureColumn maps a wall offset in [0, 1) to a texture column, mirrored
func TextureColumn(wallX float64, textureWidth int) int {
	col := textureWidth - 1 - int(math.Floor(wallX*float64(textureWidth)))
	return min(max(col, 0), textureWidth-1)
}

// Shade halves x-facing walls, y-facing walls keep full brightness
func Shade(c core.Color, side raycast.Side) core.Color {
	if side == raycast.SideX {
		return c.Halve()
	}
	return c
}

// drawWallStrip renders one column of wall for hit h.
// tex nil draws the strip flat in fallback.
func drawWallStrip(buf *core.PixelBuffer, col int, h raycast.Hit, lineHeight int, tex *core.Texture, fallback core.Color) {
	H := buf.Height()
	start, end := DrawRange(lineHeight, H)
	if start >= end {
		return
	}

	if tex == nil || tex.Size == 0 {
		c := Shade(fallback, h.Side)
		for y := start; y < end; y++ {
			buf.Set(col, y, c)
		}
		return
	}

	texX := TextureColumn(h.WallX, tex.Size)
	step := float64(tex.Size) / float64(max(lineHeight, 1))
	texPos := math.Max(0, float64(start-H/2+lineHeight/2)*step)

	for y := start; y < end; y++ {
		texY := min(int(texPos), tex.Size-1)
		texPos += step
		buf.Set(col, y, Shade(tex.At(texX, texY), h.Side))
	}
}
