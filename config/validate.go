package config

import (
	"fmt"
	"strings"
)

// ValidationError lists every invalid field found
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid config: " + strings.Join(e.Problems, "; ")
}

// Validate checks ranges the rest of the program relies on
func (c Config) Validate() error {
	v := &ValidationError{}
	add := func(format string, args ...any) {
		v.Problems = append(v.Problems, fmt.Sprintf(format, args...))
	}

	if c.MaxTick < 0 {
		add("max_tick %s is negative", c.MaxTick)
	}
	if err := c.RenderConfig().Validate(); err != nil {
		for _, line := range strings.Split(err.Error(), "\n") {
			add("render: %s", line)
		}
	}
	if err := c.PlayerConfig().Validate(); err != nil {
		for _, line := range strings.Split(err.Error(), "\n") {
			add("player: %s", line)
		}
	}
	if c.Minimap.Margin < 0 {
		add("minimap.margin %d is negative", c.Minimap.Margin)
	}
	if c.Textures.Size <= 0 {
		add("textures.size %d must be positive", c.Textures.Size)
	}
	if c.Audio.Volume < 0 {
		add("audio.volume %g is negative", c.Audio.Volume)
	}
	if c.Audio.StepDistance <= 0 {
		add("audio.step_distance %g must be positive", c.Audio.StepDistance)
	}
	if c.Terminal.Hold <= 0 {
		add("terminal.hold %s must be positive", c.Terminal.Hold)
	}
	if c.Stream.Addr != "" {
		if c.Stream.Every <= 0 {
			add("stream.every %d must be positive", c.Stream.Every)
		}
		if c.Stream.ClientBuffer <= 0 {
			add("stream.client_buffer %d must be positive", c.Stream.ClientBuffer)
		}
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error", "":
	default:
		add("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}

	if len(v.Problems) == 0 {
		return nil
	}
	return v
}
