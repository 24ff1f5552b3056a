package engine

import "time"

// Clock is the time source of the frame loop
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// Sleep blocks the calling goroutine
func (p *TimeProvider) Sleep(d time.Duration) {
	time.Sleep(d)
}
