package core

import (
	"image"
)

// PixelBuffer is a dense row-major surface of packed RGBA pixels
type PixelBuffer struct {
	pix    []Color
	width  int
	height int
}

// NewPixelBuffer creates a transparent buffer with the specified dimensions
func NewPixelBuffer(width, height int) *PixelBuffer {
	width, height = max(width, 0), max(height, 0)
	return &PixelBuffer{
		pix:    make([]Color, width*height),
		width:  width,
		height: height,
	}
}

func (b *PixelBuffer) Width() int  { return b.width }
func (b *PixelBuffer) Height() int { return b.height }

// Pixels exposes the backing slice, index y*width+x
func (b *PixelBuffer) Pixels() []Color {
	return b.pix
}

// Resize adjusts dimensions, reallocates only if capacity insufficient
func (b *PixelBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.pix) < size {
		b.pix = make([]Color, size)
	} else {
		b.pix = b.pix[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// InBounds returns true if (x, y) addresses a pixel
func (b *PixelBuffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes one pixel, out of bounds writes are dropped
func (b *PixelBuffer) Set(x, y int, c Color) {
	if !b.InBounds(x, y) {
		return
	}
	b.pix[y*b.width+x] = c
}

// Get reads one pixel, Transparent when out of bounds
func (b *PixelBuffer) Get(x, y int) Color {
	if !b.InBounds(x, y) {
		return Transparent
	}
	return b.pix[y*b.width+x]
}

// Clear resets every pixel to Transparent
func (b *PixelBuffer) Clear() {
	clear(b.pix)
}

// Fill sets every pixel to c
func (b *PixelBuffer) Fill(c Color) {
	fillColors(b.pix, c)
}

// FillRows sets rows [y0, y1) to c, clamped to the buffer
func (b *PixelBuffer) FillRows(y0, y1 int, c Color) {
	y0, y1 = max(y0, 0), min(y1, b.height)
	if y0 >= y1 {
		return
	}
	fillColors(b.pix[y0*b.width:y1*b.width], c)
}

// FillRect sets the clamped rectangle [x0,x1)×[y0,y1) to c
func (b *PixelBuffer) FillRect(x0, y0, x1, y1 int, c Color) {
	x0, x1 = max(x0, 0), min(x1, b.width)
	y0, y1 = max(y0, 0), min(y1, b.height)
	if x0 >= x1 {
		return
	}
	for y := y0; y < y1; y++ {
		row := y * b.width
		fillColors(b.pix[row+x0:row+x1], c)
	}
}

// fillColors fills dst using exponential copy
func fillColors(dst []Color, c Color) {
	if len(dst) == 0 {
		return
	}
	dst[0] = c
	for filled := 1; filled < len(dst); filled *= 2 {
		copy(dst[filled:], dst[:filled])
	}
}

// AppendBytes appends R, G, B, A bytes per pixel in row-major order
func (b *PixelBuffer) AppendBytes(dst []byte) []byte {
	for _, c := range b.pix {
		dst = append(dst, c.R(), c.G(), c.B(), c.A())
	}
	return dst
}

// CopyFrom resizes b to match src and copies its pixels
func (b *PixelBuffer) CopyFrom(src *PixelBuffer) {
	if b.width != src.width || b.height != src.height {
		b.Resize(src.width, src.height)
	}
	copy(b.pix, src.pix)
}

// Image converts to a standard library image, straight alpha
func (b *PixelBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	img.Pix = b.AppendBytes(img.Pix[:0])
	return img
}
