package shared

import "time"

// Clock supplies timestamps to aggregates so tests can pin them
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time in UTC
type RealClock struct{}

// Now returns the current system time in UTC
func (r *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// NewRealClock creates a RealClock instance
func NewRealClock() Clock {
	return &RealClock{}
}

// MockClock returns a fixed time until moved
type MockClock struct {
	CurrentTime time.Time
}

// NewMockClock creates a MockClock starting at the given time.
// A zero time starts at the current time.
func NewMockClock(startTime time.Time) *MockClock {
	if startTime.IsZero() {
		startTime = time.Now()
	}
	return &MockClock{CurrentTime: startTime}
}

// Now returns the mock's current time
func (m *MockClock) Now() time.Time {
	return m.CurrentTime
}

// Advance moves the mock clock forward
func (m *MockClock) Advance(d time.Duration) {
	m.CurrentTime = m.CurrentTime.Add(d)
}
