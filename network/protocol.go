package network

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/raycaster/core"
)

// MessageType identifies a stream message
type MessageType uint8

const (
	MsgFrame MessageType = 0x01
)

// Header precedes every frame on the wire
// Fixed 12 bytes: [Type:1][Flags:1][Seq:4][Width:2][Height:2][MapSize:2]
const HeaderSize = 12

// Header flags
const (
	FlagNone    uint8 = 0x00
	FlagMinimap uint8 = 0x01 // MapSize×MapSize RGBA follows the main view
)

var (
	ErrShortMessage = errors.New("message shorter than header")
	ErrMessageType  = errors.New("unknown message type")
	ErrFrameSize    = errors.New("frame dimensions exceed wire limits")
)

// Frame is a decoded stream message; pixel data is R, G, B, A per pixel
type Frame struct {
	Seq     uint32
	Width   int
	Height  int
	Main    []byte
	MapSize int
	Minimap []byte
}

// EncodeFrame appends one frame message to dst.
// A nil or non-square minimap is omitted.
func EncodeFrame(dst []byte, seq uint32, main, minimap *core.PixelBuffer) ([]byte, error) {
	w, h := main.Width(), main.Height()
	if w > math.MaxUint16 || h > math.MaxUint16 {
		return dst, fmt.Errorf("%w: %dx%d", ErrFrameSize, w, h)
	}

	flags, mapSize := FlagNone, 0
	if minimap != nil && minimap.Width() == minimap.Height() && minimap.Width() > 0 {
		if minimap.Width() > math.MaxUint16 {
			return dst, fmt.Errorf("%w: minimap %d", ErrFrameSize, minimap.Width())
		}
		flags, mapSize = FlagMinimap, minimap.Width()
	}

	var header [HeaderSize]byte
	header[0] = byte(MsgFrame)
	header[1] = flags
	binary.BigEndian.PutUint32(header[2:6], seq)
	binary.BigEndian.PutUint16(header[6:8], uint16(w))
	binary.BigEndian.PutUint16(header[8:10], uint16(h))
	binary.BigEndian.PutUint16(header[10:12], uint16(mapSize))

	dst = append(dst, header[:]...)
	dst = main.AppendBytes(dst)
	if flags&FlagMinimap != 0 {
		dst = minimap.AppendBytes(dst)
	}
	return dst, nil
}

// DecodeFrame parses a frame message; pixel slices alias data
func DecodeFrame(data []byte) (*Frame, error) {
	if len(data) < HeaderSize {
		return nil, ErrShortMessage
	}
	if MessageType(data[0]) != MsgFrame {
		return nil, fmt.Errorf("%w: 0x%02x", ErrMessageType, data[0])
	}

	f := &Frame{
		Seq:    binary.BigEndian.Uint32(data[2:6]),
		Width:  int(binary.BigEndian.Uint16(data[6:8])),
		Height: int(binary.BigEndian.Uint16(data[8:10])),
	}
	if data[1]&FlagMinimap != 0 {
		f.MapSize = int(binary.BigEndian.Uint16(data[10:12]))
	}

	mainLen := f.Width * f.Height * 4
	mapLen := f.MapSize * f.MapSize * 4
	body := data[HeaderSize:]
	if len(body) != mainLen+mapLen {
		return nil, fmt.Errorf("frame body %d bytes, want %d", len(body), mainLen+mapLen)
	}
	f.Main = body[:mainLen]
	if mapLen > 0 {
		f.Minimap = body[mainLen:]
	}
	return f, nil
}
