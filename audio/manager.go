// Package audio plays movement feedback through the system speaker
package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/raycaster/parameter"
)

// Player plays feedback sounds
type Player interface {
	Play(s Sound)
}

// SoundManager owns the speaker and a mixer of one-shot sounds
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a manager; nothing plays until Initialize succeeds
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		volume: volume,
		mixer:  &beep.Mixer{},
	}
}

// Initialize opens the speaker; calling it again is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sm.rate, sm.rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues s on the mixer, silently dropped when the speaker is unavailable
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	streamer := newVolume(NewSound(s, sm.rate), sm.volume)
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// Close stops every queued sound
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	sm.initialized = false
}

// Nop discards every sound, used when muted
type Nop struct{}

func (Nop) Play(Sound) {}
