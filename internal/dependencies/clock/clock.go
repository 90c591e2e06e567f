package clock

import "time"

// Clock provides the current time so token expiry and activity timestamps can
// be controlled in tests
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time in UTC
func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// Func adapts a function to the Clock interface
type Func func() time.Time

// Now calls f
func (f Func) Now() time.Time {
	return f()
}
