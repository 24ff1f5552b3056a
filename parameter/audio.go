package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate     = 48000
	AudioBufferDuration = 100 * time.Millisecond
)

// Feedback Sounds
const (
	AudioVolume = 0.5

	// StepDistance is world units travelled per footstep
	StepDistance = 1.0

	StepSoundDuration = 60 * time.Millisecond
	StepSoundFreq     = 140.0

	BumpSoundDuration = 120 * time.Millisecond
	BumpSoundFreq     = 70.0

	// BumpCooldown suppresses repeated bumps while pressing into a wall
	BumpCooldown = 250 * time.Millisecond
)
