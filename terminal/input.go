package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/raycaster/engine"
	"github.com/lixenwraith/raycaster/parameter"
)

// Input turns terminal key events into held intents.
// Terminals report presses and auto-repeats but never releases, so a key
// stays held for the hold window after its most recent event.
type Input struct {
	events chan tcell.Event
	hold   time.Duration
	clock  engine.Clock

	lastSeen map[engine.Intent]time.Time
	quit     bool
	onResize func()
}

// NewInput creates an input source; a nil clock uses wall time
func NewInput(hold time.Duration, clock engine.Clock) *Input {
	if clock == nil {
		clock = engine.NewTimeProvider()
	}
	return &Input{
		events:   make(chan tcell.Event, parameter.InputEventBuffer),
		hold:     hold,
		clock:    clock,
		lastSeen: make(map[engine.Intent]time.Time, 4),
	}
}

// Start pumps screen events into the input channel until the screen is finalized
func (in *Input) Start(screen tcell.Screen) {
	in.onResize = screen.Sync
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case in.events <- ev:
			default:
				// loop is behind; a dropped repeat is refreshed by the next one
			}
		}
	}()
}

// Feed queues an event directly, bypassing the screen pump
func (in *Input) Feed(ev tcell.Event) {
	select {
	case in.events <- ev:
	default:
	}
}

// Poll implements engine.InputSource
func (in *Input) Poll(ctx *engine.GameContext) bool {
	now := in.clock.Now()
	for drained := false; !drained; {
		select {
		case ev := <-in.events:
			in.handle(ev, now)
		default:
			drained = true
		}
	}
	if in.quit {
		return true
	}

	for intent, seen := range in.lastSeen {
		if now.Sub(seen) >= in.hold {
			delete(in.lastSeen, intent)
			continue
		}
		switch intent {
		case engine.IntentForward:
			ctx.MoveForward()
		case engine.IntentBackward:
			ctx.MoveBackward()
		case engine.IntentTurnLeft:
			ctx.TurnLeft()
		case engine.IntentTurnRight:
			ctx.TurnRight()
		}
	}
	return false
}

func (in *Input) handle(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			in.quit = true
			return
		}
		if intent := keyIntent(ev); intent != engine.IntentNone {
			in.lastSeen[intent] = now
		}
	case *tcell.EventResize:
		if in.onResize != nil {
			in.onResize()
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		r := ev.Rune()
		return r == 'q' || r == 'Q' || (r == 'c' && ev.Modifiers()&tcell.ModCtrl != 0)
	}
	return false
}

// keyIntent maps WASD and arrow keys
func keyIntent(ev *tcell.EventKey) engine.Intent {
	switch ev.Key() {
	case tcell.KeyUp:
		return engine.IntentForward
	case tcell.KeyDown:
		return engine.IntentBackward
	case tcell.KeyLeft:
		return engine.IntentTurnLeft
	case tcell.KeyRight:
		return engine.IntentTurnRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return engine.IntentForward
		case 's', 'S':
			return engine.IntentBackward
		case 'a', 'A':
			return engine.IntentTurnLeft
		case 'd', 'D':
			return engine.IntentTurnRight
		}
	}
	return engine.IntentNone
}
