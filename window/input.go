package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/raycaster/engine"
)

// Input samples held keys each frame
type Input struct {
	pressed func(ebiten.Key) bool
}

func NewInput() *Input {
	return &Input{pressed: ebiten.IsKeyPressed}
}

// Poll implements engine.InputSource
func (in *Input) Poll(ctx *engine.GameContext) bool {
	if in.pressed(ebiten.KeyEscape) {
		return true
	}
	if in.pressed(ebiten.KeyW) || in.pressed(ebiten.KeyUp) {
		ctx.MoveForward()
	}
	if in.pressed(ebiten.KeyS) || in.pressed(ebiten.KeyDown) {
		ctx.MoveBackward()
	}
	if in.pressed(ebiten.KeyA) || in.pressed(ebiten.KeyLeft) {
		ctx.TurnLeft()
	}
	if in.pressed(ebiten.KeyD) || in.pressed(ebiten.KeyRight) {
		ctx.TurnRight()
	}
	return false
}
