// Package window runs the renderer in a desktop window through ebiten
package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/raycaster/core"
	"github.com/lixenwraith/raycaster/render"
)

// Presenter uploads frames into ebiten images and blits them in Draw
type Presenter struct {
	margin int

	view    *ebiten.Image
	minimap *ebiten.Image
	showMap bool
	pix     []byte
}

// NewPresenter creates a presenter; images are allocated on the first frame
func NewPresenter(margin int) *Presenter {
	return &Presenter{margin: margin}
}

// Present implements engine.Presenter; it must run on the ebiten update goroutine
func (p *Presenter) Present(main, minimap *core.PixelBuffer) error {
	p.view = upload(p.view, main, &p.pix)
	p.showMap = minimap != nil
	if p.showMap {
		p.minimap = upload(p.minimap, minimap, &p.pix)
	}
	return nil
}

// upload writes buf into img, reallocating when the size changed.
// Pixels are opaque or fully transparent, so straight and premultiplied alpha agree.
func upload(img *ebiten.Image, buf *core.PixelBuffer, scratch *[]byte) *ebiten.Image {
	w, h := buf.Width(), buf.Height()
	if w == 0 || h == 0 {
		return img
	}
	if img == nil || img.Bounds().Dx() != w || img.Bounds().Dy() != h {
		if img != nil {
			img.Deallocate()
		}
		img = ebiten.NewImage(w, h)
	}
	*scratch = buf.AppendBytes((*scratch)[:0])
	img.WritePixels(*scratch)
	return img
}

// Draw blits the last presented frame with the minimap anchored bottom-right
func (p *Presenter) Draw(screen *ebiten.Image) {
	if p.view == nil {
		return
	}
	screen.DrawImage(p.view, nil)

	if !p.showMap || p.minimap == nil {
		return
	}
	b := screen.Bounds()
	mb := p.minimap.Bounds()
	x, y := render.MinimapOrigin(b.Dx(), b.Dy(), mb.Dx(), mb.Dy(), p.margin)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(p.minimap, op)
}
