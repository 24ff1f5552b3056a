package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorChannels(t *testing.T) {
	c := RGBA(0x12, 0x34, 0x56, 0x78)
	assert.Equal(t, Color(0x12345678), c)
	assert.Equal(t, uint8(0x12), c.R())
	assert.Equal(t, uint8(0x34), c.G())
	assert.Equal(t, uint8(0x56), c.B())
	assert.Equal(t, uint8(0x78), c.A())
}

func TestColorHalveKeepsAlpha(t *testing.T) {
	assert.Equal(t, Color(0x7f7f7fff), White.Halve())
	assert.Equal(t, Color(0x28282880), RGBA(0x50, 0x50, 0x50, 0x80).Halve())
	assert.Equal(t, Transparent, Transparent.Halve())
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"0x505050ff", 0x505050ff},
		{"#828282FF", 0x828282ff},
		{"#ff0000", Red},
		{" 0X00000000 ", Transparent},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "505050ff", "#12345", "0xzzzzzzzz", "#1234567890"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestPixelBufferBounds(t *testing.T) {
	b := NewPixelBuffer(4, 3)
	require.Len(t, b.Pixels(), 12)

	b.Set(3, 2, Red)
	b.Set(-1, 0, Red)
	b.Set(4, 0, Red)
	b.Set(0, 3, Red)

	assert.Equal(t, Red, b.Get(3, 2))
	assert.Equal(t, Red, b.Pixels()[11])
	assert.Equal(t, Transparent, b.Get(-1, 0))

	count := 0
	for _, c := range b.Pixels() {
		if c == Red {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestPixelBufferFillRows(t *testing.T) {
	b := NewPixelBuffer(5, 4)
	b.FillRows(0, 2, Blue)
	b.FillRows(2, 99, Green)

	for y := 0; y < 4; y++ {
		want := Blue
		if y >= 2 {
			want = Green
		}
		for x := 0; x < 5; x++ {
			assert.Equal(t, want, b.Get(x, y), "pixel (%d,%d)", x, y)
		}
	}

	b.Clear()
	assert.Equal(t, Transparent, b.Get(2, 3))
}

func TestPixelBufferFillRectClamps(t *testing.T) {
	b := NewPixelBuffer(4, 4)
	b.FillRect(-2, 2, 2, 10, Yellow)

	assert.Equal(t, Yellow, b.Get(0, 2))
	assert.Equal(t, Yellow, b.Get(1, 3))
	assert.Equal(t, Transparent, b.Get(2, 2))
	assert.Equal(t, Transparent, b.Get(0, 1))
}

func TestPixelBufferAppendBytes(t *testing.T) {
	b := NewPixelBuffer(2, 1)
	b.Set(0, 0, RGBA(1, 2, 3, 4))
	b.Set(1, 0, RGBA(5, 6, 7, 8))

	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, b.AppendBytes(nil))

	img := b.Image()
	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, uint8(5), img.NRGBAAt(1, 0).R)
}

func TestPixelBufferResizeAndCopy(t *testing.T) {
	src := NewPixelBuffer(3, 2)
	src.Fill(Cyan)

	dst := NewPixelBuffer(1, 1)
	dst.CopyFrom(src)
	assert.Equal(t, 3, dst.Width())
	assert.Equal(t, 2, dst.Height())
	assert.Equal(t, Cyan, dst.Get(2, 1))

	dst.Resize(2, 2)
	assert.Len(t, dst.Pixels(), 4)
	assert.Equal(t, Transparent, dst.Get(1, 1))
}
