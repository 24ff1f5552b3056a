// Package config loads the YAML game configuration over built-in defaults
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/raycaster/core"
	"github.com/lixenwraith/raycaster/logger"
	"github.com/lixenwraith/raycaster/parameter"
	"github.com/lixenwraith/raycaster/player"
	"github.com/lixenwraith/raycaster/render"
	"github.com/lixenwraith/raycaster/vmath"
)

// Config is the complete file layout; absent keys keep their defaults
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	FPS      int            `yaml:"fps"`
	MaxTick  time.Duration  `yaml:"max_tick"`
	World    WorldConfig    `yaml:"world"`
	Player   PlayerConfig   `yaml:"player"`
	Render   RenderConfig   `yaml:"render"`
	Minimap  MinimapConfig  `yaml:"minimap"`
	Textures TextureConfig  `yaml:"textures"`
	Audio    AudioConfig    `yaml:"audio"`
	Terminal TerminalConfig `yaml:"terminal"`
	Stream   StreamConfig   `yaml:"stream"`
	Log      logger.Config  `yaml:"log"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// WorldConfig selects the map; an empty Map uses the built-in reference world
type WorldConfig struct {
	Map string `yaml:"map"`
}

type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v Vec) Vec2() vmath.Vec2 { return vmath.Vec2{X: v.X, Y: v.Y} }

type PlayerConfig struct {
	MoveSpeed float64 `yaml:"move_speed"`
	RotSpeed  float64 `yaml:"rot_speed"`
	Position  Vec     `yaml:"position"`
	Direction Vec     `yaml:"direction"`
	Plane     Vec     `yaml:"plane"`
}

type RenderConfig struct {
	WallHeight           float64 `yaml:"wall_height"`
	FixedWallHeight      bool    `yaml:"fixed_wall_height"`
	FixedWallHeightValue int     `yaml:"fixed_wall_height_value"`
	FloorColor           Color   `yaml:"floor_color"`
	CeilingColor         Color   `yaml:"ceiling_color"`
	Flat                 bool    `yaml:"flat"`
}

type MinimapConfig struct {
	Enabled   bool `yaml:"enabled"`
	Scale     int  `yaml:"scale"`
	RayStride int  `yaml:"ray_stride"`
	Margin    int  `yaml:"margin"`
}

type TextureConfig struct {
	Dir   string   `yaml:"dir"`
	Size  int      `yaml:"size"`
	Files []string `yaml:"files"`
}

type AudioConfig struct {
	Enabled      bool          `yaml:"enabled"`
	Volume       float64       `yaml:"volume"`
	StepDistance float64       `yaml:"step_distance"`
	BumpCooldown time.Duration `yaml:"bump_cooldown"`
}

type TerminalConfig struct {
	// Hold is how long a key stays pressed after its last event
	Hold time.Duration `yaml:"hold"`
}

// StreamConfig controls the spectator server; an empty Addr disables it
type StreamConfig struct {
	Addr         string        `yaml:"addr"`
	Every        int           `yaml:"every"`
	ClientBuffer int           `yaml:"client_buffer"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// Default mirrors the reference instance
func Default() Config {
	rc := render.DefaultConfig()
	pc := player.DefaultConfig()
	return Config{
		Window: WindowConfig{
			Title:  parameter.WindowTitle,
			Width:  parameter.WindowWidth,
			Height: parameter.WindowHeight,
		},
		FPS:     parameter.TargetFPS,
		MaxTick: parameter.MaxTickDuration,
		Player: PlayerConfig{
			MoveSpeed: pc.MoveSpeed,
			RotSpeed:  pc.RotSpeed,
			Position:  Vec{X: pc.Position.X, Y: pc.Position.Y},
			Direction: Vec{X: pc.Direction.X, Y: pc.Direction.Y},
			Plane:     Vec{X: pc.Plane.X, Y: pc.Plane.Y},
		},
		Render: RenderConfig{
			WallHeight:           rc.WallHeight,
			FixedWallHeightValue: rc.FixedWallHeightValue,
			FloorColor:           Color(rc.FloorColor),
			CeilingColor:         Color(rc.CeilingColor),
		},
		Minimap: MinimapConfig{
			Enabled:   rc.Minimap.Enabled,
			Scale:     rc.Minimap.Scale,
			RayStride: rc.Minimap.RayStride,
			Margin:    parameter.MinimapMargin,
		},
		Textures: TextureConfig{
			Dir:   parameter.TextureDir,
			Size:  parameter.TextureWidth,
			Files: append([]string(nil), parameter.TextureFiles[:]...),
		},
		Audio: AudioConfig{
			Enabled:      true,
			Volume:       parameter.AudioVolume,
			StepDistance: parameter.StepDistance,
			BumpCooldown: parameter.BumpCooldown,
		},
		Terminal: TerminalConfig{Hold: parameter.KeyHoldWindow},
		Stream: StreamConfig{
			Every:        parameter.StreamEvery,
			ClientBuffer: parameter.StreamClientBuffer,
			WriteTimeout: parameter.StreamWriteTimeout,
		},
		Log: logger.DefaultConfig(),
	}
}

// Load overlays the YAML file at path on Default and validates the result
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Encode renders cfg as YAML
func Encode(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// PlayerConfig converts the player section
func (c Config) PlayerConfig() player.Config {
	return player.Config{
		MoveSpeed: c.Player.MoveSpeed,
		RotSpeed:  c.Player.RotSpeed,
		Position:  c.Player.Position.Vec2(),
		Direction: c.Player.Direction.Vec2(),
		Plane:     c.Player.Plane.Vec2(),
	}
}

// RenderConfig converts the window, render and minimap sections
func (c Config) RenderConfig() render.Config {
	return render.Config{
		Width:                c.Window.Width,
		Height:               c.Window.Height,
		WallHeight:           c.Render.WallHeight,
		FixedWallHeight:      c.Render.FixedWallHeight,
		FixedWallHeightValue: c.Render.FixedWallHeightValue,
		FloorColor:           core.Color(c.Render.FloorColor),
		CeilingColor:         core.Color(c.Render.CeilingColor),
		Flat:                 c.Render.Flat,
		Minimap: render.MinimapConfig{
			Enabled:   c.Minimap.Enabled,
			Scale:     c.Minimap.Scale,
			RayStride: c.Minimap.RayStride,
		},
	}
}
