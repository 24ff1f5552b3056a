package engine

import (
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for testing.
// Sleep advances time instantly and records the requested duration.
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
	sleeps      []time.Duration

	// OnNow runs on every Now call before reading, used to simulate work
	OnNow func(m *MockTimeProvider)
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	if m.OnNow != nil {
		m.OnNow(m)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Sleep advances the mocked time by d
func (m *MockTimeProvider) Sleep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sleeps = append(m.sleeps, d)
	m.currentTime = m.currentTime.Add(d)
}

// Advance advances the current time by the given duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// Sleeps returns every duration passed to Sleep
func (m *MockTimeProvider) Sleeps() []time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]time.Duration(nil), m.sleeps...)
}
