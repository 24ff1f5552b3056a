package network

import (
	"github.com/lixenwraith/raycaster/core"
)

// Stream is an engine.Presenter that broadcasts every Nth frame to the hub
type Stream struct {
	hub   *Hub
	every int

	presented uint64
	seq       uint32
	size      int // last encoded message length, used to presize the next
}

func NewStream(hub *Hub, every int) *Stream {
	return &Stream{hub: hub, every: max(every, 1)}
}

// Present implements engine.Presenter; frames are skipped while nobody watches
func (s *Stream) Present(main, minimap *core.PixelBuffer) error {
	s.presented++
	if s.presented%uint64(s.every) != 0 || s.hub.Clients() == 0 {
		return nil
	}

	// each message gets its own buffer since writers read it after Present returns
	msg, err := EncodeFrame(make([]byte, 0, s.size), s.seq, main, minimap)
	if err != nil {
		return err
	}
	s.size = len(msg)
	s.seq++
	s.hub.Broadcast(msg)
	return nil
}
