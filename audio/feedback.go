package audio

import (
	"math"
	"time"

	"github.com/lixenwraith/raycaster/engine"
)

// Feedback turns tick results into footsteps and wall bumps
type Feedback struct {
	player       Player
	stepDistance float64
	cooldown     time.Duration

	travelled float64
	sinceBump time.Duration
}

// NewFeedback plays a step every stepDistance world units and at most one bump per cooldown
func NewFeedback(p Player, stepDistance float64, cooldown time.Duration) *Feedback {
	return &Feedback{
		player:       p,
		stepDistance: stepDistance,
		cooldown:     cooldown,
		sinceBump:    cooldown,
	}
}

// OnTick implements engine.TickObserver
func (f *Feedback) OnTick(r engine.TickResult) {
	f.sinceBump += r.Elapsed
	if r.Blocked > 0 && f.sinceBump >= f.cooldown {
		f.player.Play(SoundBump)
		f.sinceBump = 0
	}

	if f.stepDistance <= 0 {
		return
	}
	f.travelled += r.Distance
	if f.travelled >= f.stepDistance {
		f.player.Play(SoundStep)
		f.travelled = math.Mod(f.travelled, f.stepDistance)
	}
}
