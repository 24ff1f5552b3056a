package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a packed 8-bit RGBA value: r<<24 | g<<16 | b<<8 | a
type Color uint32

// Predefined colors
const (
	Transparent Color = 0x00000000
	Black       Color = 0x000000ff
	White       Color = 0xffffffff
	Red         Color = 0xff0000ff
	Green       Color = 0x00ff00ff
	Blue        Color = 0x0000ffff
	Yellow      Color = 0xffff00ff
	Cyan        Color = 0x00ffffff
	Magenta     Color = 0xff00ffff
)

// RGBA packs explicit channels
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

func (c Color) R() uint8 { return uint8(c >> 24) }
func (c Color) G() uint8 { return uint8(c >> 16) }
func (c Color) B() uint8 { return uint8(c >> 8) }
func (c Color) A() uint8 { return uint8(c) }

// Halve shifts r, g and b right by one bit, alpha unchanged
func (c Color) Halve() Color {
	return RGBA(c.R()>>1, c.G()>>1, c.B()>>1, c.A())
}

// String formats as 0xRRGGBBAA
func (c Color) String() string {
	return fmt.Sprintf("0x%08x", uint32(c))
}

// ParseColor accepts "0xRRGGBBAA", "#RRGGBBAA" or "#RRGGBB" (opaque)
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	var hex string
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		hex = s[2:]
	case strings.HasPrefix(s, "#"):
		hex = s[1:]
	default:
		return 0, fmt.Errorf("color %q: missing 0x or # prefix", s)
	}

	switch len(hex) {
	case 6:
		hex += "ff"
	case 8:
	default:
		return 0, fmt.Errorf("color %q: expected 6 or 8 hex digits", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	return Color(v), nil
}
