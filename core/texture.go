package core

// Texture is a square packed RGBA image indexed [y*Size+x]
type Texture struct {
	Size int
	Pix  []Color
}

// NewTexture creates an all-zero texture
func NewTexture(size int) *Texture {
	size = max(size, 0)
	return &Texture{Size: size, Pix: make([]Color, size*size)}
}

// At samples with coordinates clamped to the texture
func (t *Texture) At(x, y int) Color {
	if t.Size == 0 {
		return Transparent
	}
	x = min(max(x, 0), t.Size-1)
	y = min(max(y, 0), t.Size-1)
	return t.Pix[y*t.Size+x]
}

// IsBlank reports whether every texel is zero
func (t *Texture) IsBlank() bool {
	for _, c := range t.Pix {
		if c != Transparent {
			return false
		}
	}
	return true
}
