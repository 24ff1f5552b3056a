package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/raycaster/player"
	"github.com/lixenwraith/raycaster/world"
)

// GameContext aggregates the world, the player and pending intents.
// Owned by the frame loop goroutine; renderers only read it.
type GameContext struct {
	world  *world.World
	player *player.Player

	intents Intent

	// MaxTick clamps elapsed time per tick, 0 disables clamping
	MaxTick time.Duration
}

// NewGameContext binds a player to a world; the player must start in an open cell
func NewGameContext(w *world.World, p *player.Player) (*GameContext, error) {
	if w == nil || p == nil {
		return nil, fmt.Errorf("game context requires a world and a player")
	}
	if !w.OpenAt(p.Position.X, p.Position.Y) {
		return nil, fmt.Errorf("player start (%.2f, %.2f) is not in an open cell", p.Position.X, p.Position.Y)
	}
	return &GameContext{world: w, player: p}, nil
}

func (ctx *GameContext) World() *world.World    { return ctx.world }
func (ctx *GameContext) Player() *player.Player { return ctx.player }

// Intents returns the pending intent mask
func (ctx *GameContext) Intents() Intent {
	return ctx.intents
}

// ===== Intent Setters =====

func (ctx *GameContext) MoveForward()  { ctx.intents |= IntentForward }
func (ctx *GameContext) MoveBackward() { ctx.intents |= IntentBackward }
func (ctx *GameContext) TurnLeft()     { ctx.intents |= IntentTurnLeft }
func (ctx *GameContext) TurnRight()    { ctx.intents |= IntentTurnRight }

// Tick applies pending intents over elapsed time then clears them
func (ctx *GameContext) Tick(elapsed time.Duration) TickResult {
	if ctx.MaxTick > 0 && elapsed > ctx.MaxTick {
		elapsed = ctx.MaxTick
	}
	result := handlePlayerMovement(ctx.player, ctx.world, ctx.intents, elapsed)
	ctx.intents = IntentNone
	return result
}
