package engine

import (
	"errors"

	"github.com/lixenwraith/raycaster/core"
)

// Presenters fans a frame out to every presenter in order.
// All presenters see the frame; errors are joined.
type Presenters []Presenter

func (ps Presenters) Present(main, minimap *core.PixelBuffer) error {
	var errs []error
	for _, p := range ps {
		if err := p.Present(main, minimap); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// InputSources polls every source each frame; any source may quit
type InputSources []InputSource

func (is InputSources) Poll(ctx *GameContext) bool {
	quit := false
	for _, s := range is {
		if s.Poll(ctx) {
			quit = true
		}
	}
	return quit
}
