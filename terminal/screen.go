// Package terminal presents frames on a tcell screen with half-block cells
// and reads movement keys from the same screen.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Open initializes the real terminal screen
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.Clear()
	return screen, nil
}

// RestoreOnPanic finalizes the screen before re-panicking so the shell is usable.
// Use as: defer terminal.RestoreOnPanic(screen)
func RestoreOnPanic(screen tcell.Screen) {
	if r := recover(); r != nil {
		screen.Fini()
		panic(r)
	}
}
