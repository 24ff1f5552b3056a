package render

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/raycaster/core"
	"github.com/lixenwraith/raycaster/parameter"
)

// Config controls projection, colors and the minimap
type Config struct {
	Width, Height int

	// WallHeight scales projected wall height
	WallHeight float64

	// FixedWallHeight replaces distance projection with FixedWallHeightValue, for debugging
	FixedWallHeight      bool
	FixedWallHeightValue int

	FloorColor   core.Color
	CeilingColor core.Color

	// Flat draws walls in their minimap color instead of sampling textures
	Flat bool

	Minimap MinimapConfig
}

// MinimapConfig controls the top-down overlay
type MinimapConfig struct {
	Enabled   bool
	Scale     int // pixels per cell
	RayStride int // draw every Nth column ray, 0 disables rays
}

// DefaultConfig mirrors the reference renderer settings
func DefaultConfig() Config {
	return Config{
		Width:                parameter.WindowWidth,
		Height:               parameter.WindowHeight,
		WallHeight:           parameter.WallHeightFactor,
		FixedWallHeightValue: parameter.FixedWallHeightValue,
		FloorColor:           parameter.FloorColor,
		CeilingColor:         parameter.CeilingColor,
		Minimap: MinimapConfig{
			Enabled:   parameter.MinimapEnabled,
			Scale:     parameter.MinimapScale,
			RayStride: parameter.MinimapRayStride,
		},
	}
}

// Validate rejects unusable surface sizes and scales
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("surface %dx%d must be positive", c.Width, c.Height))
	}
	if c.WallHeight <= 0 {
		errs = append(errs, fmt.Errorf("wall height factor %g must be positive", c.WallHeight))
	}
	if c.FixedWallHeight && c.FixedWallHeightValue <= 0 {
		errs = append(errs, fmt.Errorf("fixed wall height %d must be positive", c.FixedWallHeightValue))
	}
	if c.Minimap.Enabled && c.Minimap.Scale <= 0 {
		errs = append(errs, fmt.Errorf("minimap scale %d must be positive", c.Minimap.Scale))
	}
	if c.Minimap.RayStride < 0 {
		errs = append(errs, errors.New("minimap ray stride is negative"))
	}
	return errors.Join(errs...)
}
