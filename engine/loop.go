package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/raycaster/core"
)

//go:generate mockgen -destination=mock/presenter.go -package=mock github.com/lixenwraith/raycaster/engine Presenter,InputSource

// InputSource samples input once per frame and asserts intents on ctx
type InputSource interface {
	Poll(ctx *GameContext) (quit bool)
}

// Renderer fills the main view and minimap from a read-only view of ctx.
// minimap is nil when disabled. Buffers stay owned by the renderer.
type Renderer interface {
	Draw(ctx *GameContext) (main, minimap *core.PixelBuffer)
}

// Presenter consumes finished buffers; it must copy anything it keeps past the call
type Presenter interface {
	Present(main, minimap *core.PixelBuffer) error
}

// TickObserver is notified after every tick, on the loop goroutine
type TickObserver interface {
	OnTick(result TickResult)
}

// ErrQuit is returned by presenters or sources that end the session
var ErrQuit = errors.New("quit requested")

// TargetFrameTime converts an FPS cap to whole milliseconds per frame, 0 when uncapped
func TargetFrameTime(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(1000/fps) * time.Millisecond
}

// Loop drives input, tick, render and present on a single goroutine
type Loop struct {
	game      *GameContext
	input     InputSource
	renderer  Renderer
	presenter Presenter
	observers []TickObserver

	clock  Clock
	stats  *Stats
	logger *zap.SugaredLogger

	frameTime time.Duration
	elapsed   time.Duration // previous frame time including the pacing wait
}

// LoopOption configures a Loop
type LoopOption func(*Loop)

// WithTargetFPS caps the frame rate, fps <= 0 disables the cap
func WithTargetFPS(fps int) LoopOption {
	return func(l *Loop) { l.frameTime = TargetFrameTime(fps) }
}

func WithClock(c Clock) LoopOption {
	return func(l *Loop) { l.clock = c }
}

func WithStats(s *Stats) LoopOption {
	return func(l *Loop) { l.stats = s }
}

func WithLogger(logger *zap.SugaredLogger) LoopOption {
	return func(l *Loop) { l.logger = logger }
}

func WithObserver(o TickObserver) LoopOption {
	return func(l *Loop) { l.observers = append(l.observers, o) }
}

// NewLoop wires the frame pipeline around game
func NewLoop(game *GameContext, input InputSource, renderer Renderer, presenter Presenter, opts ...LoopOption) *Loop {
	l := &Loop{
		game:      game,
		input:     input,
		renderer:  renderer,
		presenter: presenter,
		clock:     NewTimeProvider(),
		stats:     &Stats{},
		logger:    zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loop) Stats() *Stats              { return l.stats }
func (l *Loop) Game() *GameContext         { return l.game }
func (l *Loop) FrameTime() time.Duration   { return l.frameTime }
func (l *Loop) LastElapsed() time.Duration { return l.elapsed }

// Step runs one frame with the given elapsed time.
// Returns quit=true without ticking when the input source requests exit.
func (l *Loop) Step(elapsed time.Duration) (quit bool, err error) {
	if l.input.Poll(l.game) {
		return true, nil
	}

	result := l.game.Tick(elapsed)
	if result.Blocked > 0 {
		l.stats.AddBlocked(result.Blocked)
	}
	for _, o := range l.observers {
		o.OnTick(result)
	}

	main, minimap := l.renderer.Draw(l.game)
	if err := l.presenter.Present(main, minimap); err != nil {
		if errors.Is(err, ErrQuit) {
			return true, nil
		}
		return false, fmt.Errorf("present frame: %w", err)
	}
	return false, nil
}

// Run loops until quit, a presenter error, or ctx cancellation between frames
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Infow("frame loop started", "target_frame_time", l.frameTime)
	defer func() {
		l.logger.Infow("frame loop stopped", "stats", l.stats.Snapshot())
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		start := l.clock.Now()
		quit, err := l.Step(l.elapsed)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		l.elapsed = l.wait(start)
	}
}

// wait sleeps out the remainder of the target frame time.
// Returns the frame time to feed the next tick.
func (l *Loop) wait(start time.Time) time.Duration {
	work := l.clock.Now().Sub(start)
	overrun := l.frameTime > 0 && work > l.frameTime
	l.stats.AddFrame(work, overrun)

	if l.frameTime <= 0 || overrun {
		return work
	}
	l.clock.Sleep(l.frameTime - work)
	return l.frameTime
}
