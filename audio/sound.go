package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/raycaster/parameter"
)

// Sound identifies a feedback effect
type Sound int

const (
	SoundStep Sound = iota
	SoundBump
)

func (s Sound) String() string {
	switch s {
	case SoundStep:
		return "step"
	case SoundBump:
		return "bump"
	default:
		return "unknown"
	}
}

// NewSound builds a fresh, finite streamer for s
func NewSound(s Sound, rate beep.SampleRate) beep.Streamer {
	switch s {
	case SoundStep:
		return newStepSound(rate)
	case SoundBump:
		return newBumpSound(rate)
	default:
		return beep.Silence(0)
	}
}

// newStepSound is a soft low thump with a scuff of noise
func newStepSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.StepSoundDuration
	thump := NewEnvelope(NewOscillator(parameter.StepSoundFreq, d, WaveSine, rate), d, d/20, d/2, rate)
	scuff := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 0, d*3/4, rate)
	return beep.Mix(newVolume(thump, 0.6), newVolume(scuff, 0.15))
}

// newBumpSound is a short square-wave knock
func newBumpSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.BumpSoundDuration
	knock := NewOscillator(parameter.BumpSoundFreq, d, WaveSquare, rate)
	return newVolume(NewEnvelope(knock, d, d/40, d*2/3, rate), 0.4)
}
