package render

import (
	"github.com/lixenwraith/raycaster/core"
)

// MinimapOrigin returns the top-left pixel of a minimap anchored bottom-right with margin
func MinimapOrigin(viewW, viewH, mapW, mapH, margin int) (int, int) {
	return viewW - mapW - margin, viewH - mapH - margin
}

// Composite overlays the minimap's non-transparent pixels onto dst at the bottom-right
func Composite(dst, minimap *core.PixelBuffer, margin int) {
	if minimap == nil {
		return
	}
	ox, oy := MinimapOrigin(dst.Width(), dst.Height(), minimap.Width(), minimap.Height(), margin)
	src := minimap.Pixels()
	for y := 0; y < minimap.Height(); y++ {
		row := src[y*minimap.Width() : (y+1)*minimap.Width()]
		for x, c := range row {
			if c.A() == 0 {
				continue
			}
			dst.Set(ox+x, oy+y, c)
		}
	}
}
