package parameter

import "time"

// Game Loop Timing
const (
	// TargetFPS of 0 or below disables frame capping
	TargetFPS = 0

	// MaxTickDuration of 0 disables elapsed time clamping
	MaxTickDuration = 0 * time.Millisecond
)

// Terminal Input
const (
	// KeyHoldWindow is how long a key counts as held after its last press or repeat
	KeyHoldWindow = 150 * time.Millisecond

	// InputEventBuffer is the capacity of the terminal event channel
	InputEventBuffer = 64
)

// Spectator Stream
const (
	// StreamEvery sends one frame out of every N presented
	StreamEvery = 2

	// StreamClientBuffer is the per-client outbound frame queue depth
	StreamClientBuffer = 4

	StreamWriteTimeout    = 5 * time.Second
	StreamShutdownTimeout = 3 * time.Second
)

// Maze Generation
const (
	MazeDefaultSize     = 24
	MazeDefaultBraiding = 0.3
)
