package window

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/raycaster/engine"
)

// Game adapts the frame loop to ebiten's update/draw cycle.
// Ebiten owns pacing, each Update runs one loop step with the measured frame time.
type Game struct {
	loop      *engine.Loop
	presenter *Presenter
	clock     engine.Clock

	width, height int
	last          time.Time
}

// NewGame wraps loop; presenter must be among the loop's presenters
func NewGame(loop *engine.Loop, presenter *Presenter, width, height int, clock engine.Clock) *Game {
	if clock == nil {
		clock = engine.NewTimeProvider()
	}
	return &Game{
		loop:      loop,
		presenter: presenter,
		clock:     clock,
		width:     width,
		height:    height,
	}
}

func (g *Game) Update() error {
	now := g.clock.Now()
	var elapsed time.Duration
	if !g.last.IsZero() {
		elapsed = now.Sub(g.last)
	}
	g.last = now

	quit, err := g.loop.Step(elapsed)
	if err != nil {
		return err
	}
	if quit {
		return ebiten.Termination
	}
	g.loop.Stats().AddFrame(g.clock.Now().Sub(now), false)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.presenter.Draw(screen)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed or the loop quits.
// fps <= 0 ties updates to the display refresh rate.
func Run(g *Game, title string, fps int) error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	if fps <= 0 {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	} else {
		ebiten.SetTPS(fps)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
