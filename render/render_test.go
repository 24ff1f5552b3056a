package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/raycaster/core"
	"github.com/lixenwraith/raycaster/engine"
	"github.com/lixenwraith/raycaster/player"
	"github.com/lixenwraith/raycaster/raycast"
	"github.com/lixenwraith/raycaster/vmath"
	"github.com/lixenwraith/raycaster/world"
)

func TestTextureColumnMirrors(t *testing.T) {
	assert.Equal(t, 511, TextureColumn(0.0, 512))
	assert.Equal(t, 0, TextureColumn(0.999, 512))
	assert.Equal(t, 255, TextureColumn(0.5, 512))
	assert.Equal(t, 3, TextureColumn(0.0, 4))
}

func TestShade(t *testing.T) {
	c := core.Color(0xc864327f)
	assert.Equal(t, core.Color(0x6432197f), Shade(c, raycast.SideX))
	assert.Equal(t, c, Shade(c, raycast.SideY))
}

func TestDrawBackground(t *testing.T) {
	buf := core.NewPixelBuffer(3, 600)
	DrawBackground(buf, 0x828282ff, 0x505050ff)
	assert.Equal(t, core.Color(0x828282ff), buf.Get(0, 0))
	assert.Equal(t, core.Color(0x828282ff), buf.Get(2, 299))
	assert.Equal(t, core.Color(0x505050ff), buf.Get(1, 300))
	assert.Equal(t, core.Color(0x505050ff), buf.Get(1, 599))

	odd := core.NewPixelBuffer(1, 5)
	DrawBackground(odd, core.White, core.Black)
	assert.Equal(t, core.White, odd.Get(0, 1))
	assert.Equal(t, core.Black, odd.Get(0, 2))
}

func TestLineHeightAndRange(t *testing.T) {
	assert.Equal(t, 60, LineHeight(10, 600, 1))
	assert.Equal(t, 120, LineHeight(10, 600, 2))
	assert.Equal(t, 4800, LineHeight(0, 600, 1))
	assert.Equal(t, 4800, LineHeight(1e-9, 600, 1))

	start, end := DrawRange(60, 600)
	assert.Equal(t, 270, start)
	assert.Equal(t, 330, end)

	start, end = DrawRange(1000, 600)
	assert.Equal(t, 0, start)
	assert.Equal(t, 599, end)
}

func gradientTexture(size int) *core.Texture {
	tex := core.NewTexture(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			tex.Pix[y*size+x] = core.RGBA(uint8(x), uint8(y), 0, 255)
		}
	}
	return tex
}

func TestWallStripSamplesTexture(t *testing.T) {
	buf := core.NewPixelBuffer(2, 8)
	h := raycast.Hit{Side: raycast.SideY, WallX: 0, Cell: 1}

	drawWallStrip(buf, 1, h, 8, gradientTexture(4), core.Red)

	wantRows := []uint8{0, 0, 1, 1, 2, 2, 3}
	for y, want := range wantRows {
		c := buf.Get(1, y)
		assert.Equal(t, uint8(3), c.R(), "row %d column", y)
		assert.Equal(t, want, c.G(), "row %d", y)
	}
	assert.Equal(t, core.Transparent, buf.Get(1, 7))
	assert.Equal(t, core.Transparent, buf.Get(0, 3))
}

func TestWallStripTallWallStartsMidTexture(t *testing.T) {
	buf := core.NewPixelBuffer(1, 8)
	h := raycast.Hit{Side: raycast.SideX, WallX: 0.9, Cell: 1}

	// lineHeight 16 on an 8 row surface: rows start a quarter into the texture
	drawWallStrip(buf, 0, h, 16, gradientTexture(4), core.Red)

	first := buf.Get(0, 0)
	assert.Equal(t, uint8(0), first.R(), "column mirrored from 0.9")
	assert.Equal(t, uint8(1>>1), first.G(), "shaded row 1")
	assert.Equal(t, uint8(255), first.A())
}

func TestWallStripFlatFallback(t *testing.T) {
	buf := core.NewPixelBuffer(1, 10)
	h := raycast.Hit{Side: raycast.SideX, Cell: 2}

	drawWallStrip(buf, 0, h, 4, nil, CellColor(2))
	assert.Equal(t, core.Green.Halve(), buf.Get(0, 5))
	assert.Equal(t, core.Transparent, buf.Get(0, 0))
}

func TestCellColor(t *testing.T) {
	assert.Equal(t, core.Color(0xff0000ff), CellColor(1))
	assert.Equal(t, core.Color(0x00ff00ff), CellColor(2))
	assert.Equal(t, core.Color(0x0000ffff), CellColor(3))
	assert.Equal(t, core.Color(0xffff00ff), CellColor(4))
	assert.Equal(t, core.Color(0x00ffffff), CellColor(5))
	assert.Equal(t, core.Color(0xff00ffff), CellColor(6))
	for _, c := range []world.Cell{0, 7, 8, 9} {
		assert.Equal(t, core.White, CellColor(c), "code %d", c)
	}
}

func TestDrawLine(t *testing.T) {
	buf := core.NewPixelBuffer(10, 10)
	DrawLine(buf, 1, 1, 4, 4, core.White, 1)
	for i := 1; i <= 4; i++ {
		assert.Equal(t, core.White, buf.Get(i, i))
	}
	assert.Equal(t, core.Transparent, buf.Get(2, 1))

	buf.Clear()
	DrawLine(buf, 5, 2, 5, 2, core.Red, 2)
	assert.Equal(t, core.Red, buf.Get(4, 1))
	assert.Equal(t, core.Red, buf.Get(5, 2))
	assert.Equal(t, core.Transparent, buf.Get(6, 2))

	// clipped endpoints must not panic
	DrawLine(buf, -20, -5, 30, 40, core.Green, 3)
}

func TestDrawFilledCircle(t *testing.T) {
	buf := core.NewPixelBuffer(11, 11)
	DrawFilledCircle(buf, 5, 5, 3, core.Red)

	for _, p := range [][2]int{{5, 5}, {8, 5}, {2, 5}, {5, 8}, {5, 2}, {7, 7}} {
		assert.Equal(t, core.Red, buf.Get(p[0], p[1]), "(%d,%d)", p[0], p[1])
	}
	for _, p := range [][2]int{{8, 8}, {9, 5}, {2, 2}} {
		assert.Equal(t, core.Transparent, buf.Get(p[0], p[1]), "(%d,%d)", p[0], p[1])
	}

	DrawFilledCircle(buf, 0, 0, 3, core.Blue)
	assert.Equal(t, core.Blue, buf.Get(0, 0))
}

func TestComposite(t *testing.T) {
	dst := core.NewPixelBuffer(20, 20)
	dst.Fill(core.Black)
	mm := core.NewPixelBuffer(4, 4)
	mm.Set(0, 0, core.Red)

	Composite(dst, mm, 2)
	assert.Equal(t, core.Red, dst.Get(14, 14))
	assert.Equal(t, core.Black, dst.Get(15, 14))

	Composite(dst, nil, 2)
}

func TestMinimapCellsCoverRayStamps(t *testing.T) {
	w := world.MustNew([][]int{
		{1, 1, 1, 1, 1},
		{1, 0, 0, 0, 1},
		{1, 0, 0, 0, 1},
		{1, 0, 0, 0, 1},
		{1, 1, 1, 1, 1},
	}, 5)
	p, err := player.New(player.Config{
		MoveSpeed: 1,
		RotSpeed:  1,
		Position:  vmath.Vec2{X: 2.5, Y: 2.5},
		Direction: vmath.Vec2{X: -1, Y: 0},
		Plane:     vmath.Vec2{X: 0, Y: 0.66},
	})
	require.NoError(t, err)

	buf := core.NewPixelBuffer(30, 30)
	hits := []raycast.Hit{{Point: vmath.Vec2{X: 2.5, Y: 1}}}
	drawMinimap(buf, w, p, hits, MinimapConfig{Enabled: true, Scale: 6, RayStride: 1})

	assert.Equal(t, core.Red, buf.Get(5, 15), "stamp inside the wall cell")
	assert.Equal(t, core.White, buf.Get(8, 15), "ray over open floor")
}

func referenceContext(t *testing.T) *engine.GameContext {
	t.Helper()
	p, err := player.New(player.DefaultConfig())
	require.NoError(t, err)
	ctx, err := engine.NewGameContext(world.Reference(), p)
	require.NoError(t, err)
	return ctx
}

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 64, 48
	return cfg
}

func TestRendererDrawsFrame(t *testing.T) {
	r, err := New(smallConfig(), nil)
	require.NoError(t, err)

	main, mm := r.Draw(referenceContext(t))
	require.NotNil(t, main)
	require.NotNil(t, mm)

	assert.Equal(t, core.Color(0x828282ff), main.Get(32, 0))
	assert.Equal(t, core.Color(0x505050ff), main.Get(32, 47))

	// Center ray meets the x-facing red wall at (16, 12), five cells away
	h := r.Hits()[32]
	assert.Equal(t, 16, h.MapX)
	assert.Equal(t, raycast.SideX, h.Side)
	assert.Equal(t, core.Red.Halve(), main.Get(32, 24))
	assert.Equal(t, core.Color(0x828282ff), main.Get(32, 19))

	assert.Equal(t, 144, mm.Width())
	assert.Equal(t, 144, mm.Height())
	assert.Equal(t, core.Red, mm.Get(72, 132), "player")
	assert.Equal(t, core.Red, mm.Get(1, 1), "code 1 at (0,0)")
	assert.Equal(t, core.Green, mm.Get(13, 1), "code 2 at (0,2)")
	assert.Equal(t, core.White, mm.Get(50, 134), "code 9 at (22,8)")
	assert.Equal(t, core.Green, mm.Get(72, 118), "heading line")
	assert.Equal(t, core.Transparent, mm.Get(20, 20))
}

func TestRendererMinimapDisabled(t *testing.T) {
	cfg := smallConfig()
	cfg.Minimap.Enabled = false
	r, err := New(cfg, nil)
	require.NoError(t, err)

	main, mm := r.Draw(referenceContext(t))
	assert.NotNil(t, main)
	assert.Nil(t, mm)
}

func TestRendererUsesTextures(t *testing.T) {
	tex := core.NewTexture(4)
	for i := range tex.Pix {
		tex.Pix[i] = core.Cyan
	}
	r, err := New(smallConfig(), []*core.Texture{tex})
	require.NoError(t, err)

	main, _ := r.Draw(referenceContext(t))
	assert.Equal(t, core.Cyan.Halve(), main.Get(32, 24))

	cfg := smallConfig()
	cfg.Flat = true
	r, err = New(cfg, []*core.Texture{tex})
	require.NoError(t, err)
	main, _ = r.Draw(referenceContext(t))
	assert.Equal(t, core.Red.Halve(), main.Get(32, 24))
}

func TestRendererFixedWallHeight(t *testing.T) {
	cfg := smallConfig()
	cfg.FixedWallHeight = true
	cfg.FixedWallHeightValue = 20
	r, err := New(cfg, nil)
	require.NoError(t, err)

	main, _ := r.Draw(referenceContext(t))
	for col := 0; col < 64; col++ {
		assert.NotEqual(t, core.Color(0x828282ff), main.Get(col, 14), "column %d", col)
		assert.Equal(t, core.Color(0x828282ff), main.Get(col, 13), "column %d", col)
		assert.Equal(t, core.Color(0x505050ff), main.Get(col, 34), "column %d", col)
	}
}

func TestRendererResizeAndValidate(t *testing.T) {
	r, err := New(smallConfig(), nil)
	require.NoError(t, err)

	r.Resize(32, 16)
	main, _ := r.Draw(referenceContext(t))
	assert.Equal(t, 32, main.Width())
	assert.Len(t, r.Hits(), 32)

	bad := smallConfig()
	bad.Width = 0
	bad.Minimap.Scale = 0
	_, err = New(bad, nil)
	assert.Error(t, err)
}

func TestRendererBlankTextureDrawsZero(t *testing.T) {
	r, err := New(smallConfig(), []*core.Texture{core.NewTexture(4)})
	require.NoError(t, err)

	main, _ := r.Draw(referenceContext(t))
	assert.Equal(t, core.Transparent, main.Get(32, 24))
	assert.Equal(t, core.Color(0x828282ff), main.Get(32, 0))
}

func TestRendererMissingTextureSlotDrawsFlat(t *testing.T) {
	r, err := New(smallConfig(), []*core.Texture{nil, core.NewTexture(4)})
	require.NoError(t, err)

	main, _ := r.Draw(referenceContext(t))
	assert.Equal(t, core.Red.Halve(), main.Get(32, 24))
}
