// Package render projects ray cast hits into the main view and draws the minimap
package render

import (
	"fmt"

	"github.com/lixenwraith/raycaster/core"
	"github.com/lixenwraith/raycaster/engine"
	"github.com/lixenwraith/raycaster/raycast"
)

// Renderer owns the main view and minimap buffers across frames
type Renderer struct {
	cfg      Config
	textures []*core.Texture // indexed by cell code-1, nil entries draw flat

	main    *core.PixelBuffer
	minimap *core.PixelBuffer
	hits    []raycast.Hit
}

// New creates a renderer; textures may be nil or shorter than nine entries.
// Codes without a texture draw flat, loaded textures are sampled as they are.
func New(cfg Config, textures []*core.Texture) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("render config: %w", err)
	}
	return &Renderer{
		cfg:      cfg,
		textures: textures,
		main:     core.NewPixelBuffer(cfg.Width, cfg.Height),
		minimap:  core.NewPixelBuffer(0, 0),
	}, nil
}

func (r *Renderer) Config() Config { return r.cfg }

// Hits returns the hits of the last drawn frame
func (r *Renderer) Hits() []raycast.Hit { return r.hits }

// Resize changes the main view dimensions
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 || (width == r.cfg.Width && height == r.cfg.Height) {
		return
	}
	r.cfg.Width, r.cfg.Height = width, height
	r.main.Resize(width, height)
}

// Draw renders one frame; the returned buffers stay valid until the next Draw
func (r *Renderer) Draw(ctx *engine.GameContext) (main, minimap *core.PixelBuffer) {
	w := ctx.World()
	p := ctx.Player()

	r.hits = raycast.Cast(p, w, r.main.Width(), r.hits)

	DrawBackground(r.main, r.cfg.CeilingColor, r.cfg.FloorColor)
	for col, h := range r.hits {
		if h.Outside {
			continue
		}
		lineHeight := r.cfg.FixedWallHeightValue
		if !r.cfg.FixedWallHeight {
			lineHeight = LineHeight(h.PerpDist, r.main.Height(), r.cfg.WallHeight)
		}
		drawWallStrip(r.main, col, h, lineHeight, r.texture(h), CellColor(h.Cell))
	}

	if !r.cfg.Minimap.Enabled {
		return r.main, nil
	}

	size := w.Size() * r.cfg.Minimap.Scale
	if r.minimap.Width() != size {
		r.minimap.Resize(size, size)
	}
	drawMinimap(r.minimap, w, p, r.hits, r.cfg.Minimap)
	return r.main, r.minimap
}

func (r *Renderer) texture(h raycast.Hit) *core.Texture {
	if r.cfg.Flat {
		return nil
	}
	idx := h.Cell.TextureIndex()
	if idx < 0 || idx >= len(r.textures) {
		return nil
	}
	if t := r.textures[idx]; t != nil && t.Size > 0 {
		return t
	}
	return nil
}
