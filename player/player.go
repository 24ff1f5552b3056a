package player

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/raycaster/parameter"
	"github.com/lixenwraith/raycaster/vmath"
)

// Config is the starting pose and speeds of a player
type Config struct {
	MoveSpeed float64 // world units per second
	RotSpeed  float64 // radians per second
	Position  vmath.Vec2
	Direction vmath.Vec2
	Plane     vmath.Vec2
}

// DefaultConfig returns the reference starting pose
func DefaultConfig() Config {
	return Config{
		MoveSpeed: parameter.PlayerMoveSpeed,
		RotSpeed:  parameter.PlayerRotSpeed,
		Position:  vmath.Vec2{X: parameter.PlayerStartX, Y: parameter.PlayerStartY},
		Direction: vmath.Vec2{X: parameter.PlayerDirX, Y: parameter.PlayerDirY},
		Plane:     vmath.Vec2{X: parameter.PlayerPlaneX, Y: parameter.PlayerPlaneY},
	}
}

// Validate rejects degenerate vectors and non-finite values
func (c Config) Validate() error {
	var errs []error
	for name, v := range map[string]float64{
		"move speed":  c.MoveSpeed,
		"rot speed":   c.RotSpeed,
		"position x":  c.Position.X,
		"position y":  c.Position.Y,
		"direction x": c.Direction.X,
		"direction y": c.Direction.Y,
		"plane x":     c.Plane.X,
		"plane y":     c.Plane.Y,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s is not finite", name))
		}
	}
	if c.MoveSpeed < 0 {
		errs = append(errs, errors.New("move speed is negative"))
	}
	if c.RotSpeed < 0 {
		errs = append(errs, errors.New("rot speed is negative"))
	}
	if vmath.V2IsZero(c.Direction) {
		errs = append(errs, errors.New("direction is zero"))
	}
	if vmath.V2IsZero(c.Plane) {
		errs = append(errs, errors.New("camera plane is zero"))
	}
	if !vmath.V2IsZero(c.Direction) && !vmath.V2IsZero(c.Plane) &&
		c.Direction.X*c.Plane.Y-c.Direction.Y*c.Plane.X == 0 {
		errs = append(errs, errors.New("camera plane is parallel to direction"))
	}
	return errors.Join(errs...)
}

// Player is the mutable pose of the viewer
type Player struct {
	MoveSpeed float64
	RotSpeed  float64
	Position  vmath.Vec2
	Direction vmath.Vec2
	Plane     vmath.Vec2 // perpendicular to Direction, length sets field of view
}

// New creates a player at the configured pose
func New(cfg Config) (*Player, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("player config: %w", err)
	}
	return &Player{
		MoveSpeed: cfg.MoveSpeed,
		RotSpeed:  cfg.RotSpeed,
		Position:  cfg.Position,
		Direction: cfg.Direction,
		Plane:     cfg.Plane,
	}, nil
}

// Rotate turns direction and camera plane together by angle radians
func (p *Player) Rotate(angle float64) {
	p.Direction = vmath.V2Rotate(p.Direction, angle)
	p.Plane = vmath.V2Rotate(p.Plane, angle)
}

// FOV returns the horizontal field of view in radians
func (p *Player) FOV() float64 {
	return 2 * math.Atan2(vmath.V2Mag(p.Plane), vmath.V2Mag(p.Direction))
}
