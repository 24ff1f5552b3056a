package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/raycaster/core"
)

// Color decodes "0xRRGGBBAA" and "#RRGGBB[AA]" scalars
type Color core.Color

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: color must be a scalar", value.Line)
	}
	parsed, err := core.ParseColor(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = Color(parsed)
	return nil
}

func (c Color) MarshalYAML() (any, error) {
	return core.Color(c).String(), nil
}
