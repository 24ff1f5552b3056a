package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/raycaster/player"
	"github.com/lixenwraith/raycaster/world"
)

// TickResult summarizes one tick for feedback consumers
type TickResult struct {
	Elapsed  time.Duration
	Distance float64 // sum of per-axis displacement actually applied
	Blocked  int     // axis moves refused by a wall
	Turned   float64 // net rotation in radians, positive is left
}

// handlePlayerMovement applies translation then rotation.
// Elapsed time is truncated to whole milliseconds.
func handlePlayerMovement(p *player.Player, w *world.World, intents Intent, elapsed time.Duration) TickResult {
	secs := float64(elapsed.Milliseconds()) / 1000
	move := p.MoveSpeed * secs
	rot := p.RotSpeed * secs

	result := TickResult{Elapsed: elapsed}

	if intents.Has(IntentForward) {
		slide(p, w, move, &result)
	}
	if intents.Has(IntentBackward) {
		slide(p, w, -move, &result)
	}

	// Both turns may apply in one tick
	if intents.Has(IntentTurnLeft) {
		p.Rotate(rot)
		result.Turned += rot
	}
	if intents.Has(IntentTurnRight) {
		p.Rotate(-rot)
		result.Turned -= rot
	}

	return result
}

// slide moves along the facing direction one axis at a time.
// The y test uses the already updated x so the player slides along walls.
func slide(p *player.Player, w *world.World, amount float64, result *TickResult) {
	dx := p.Direction.X * amount
	dy := p.Direction.Y * amount

	if dx != 0 {
		if w.At(cellOf(p.Position.X+dx), cellOf(p.Position.Y)) == world.Open {
			p.Position.X += dx
			result.Distance += math.Abs(dx)
		} else {
			result.Blocked++
		}
	}

	if dy != 0 {
		if w.At(cellOf(p.Position.X), cellOf(p.Position.Y+dy)) == world.Open {
			p.Position.Y += dy
			result.Distance += math.Abs(dy)
		} else {
			result.Blocked++
		}
	}
}

func cellOf(v float64) int {
	return int(math.Floor(v))
}
