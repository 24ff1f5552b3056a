package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/raycaster/core"
	"github.com/lixenwraith/raycaster/render"
)

// halfBlock draws the upper pixel as foreground and the lower as background
const halfBlock = '▀'

// Presenter scales frames to the terminal, two pixel rows per cell
type Presenter struct {
	screen tcell.Screen
	margin int
	frame  *core.PixelBuffer
}

// NewPresenter draws onto screen; margin is the minimap inset in source pixels
func NewPresenter(screen tcell.Screen, margin int) *Presenter {
	return &Presenter{
		screen: screen,
		margin: margin,
		frame:  core.NewPixelBuffer(0, 0),
	}
}

// Present implements engine.Presenter
func (p *Presenter) Present(main, minimap *core.PixelBuffer) error {
	p.frame.CopyFrom(main)
	render.Composite(p.frame, minimap, p.margin)

	cols, rows := p.screen.Size()
	if cols <= 0 || rows <= 0 || p.frame.Width() == 0 || p.frame.Height() == 0 {
		return nil
	}

	srcW, srcH := p.frame.Width(), p.frame.Height()
	dstH := rows * 2
	for cy := 0; cy < rows; cy++ {
		top := (cy * 2) * srcH / dstH
		bottom := (cy*2 + 1) * srcH / dstH
		for cx := 0; cx < cols; cx++ {
			sx := cx * srcW / cols
			style := tcell.StyleDefault.
				Foreground(toTcell(p.frame.Get(sx, top))).
				Background(toTcell(p.frame.Get(sx, bottom)))
			p.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
	p.screen.Show()
	return nil
}

func toTcell(c core.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B()))
}
