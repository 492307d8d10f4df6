package clock

import "time"

// Clock provides the current time to timing-sensitive components
// The gesture gate and toast expiry take a Clock so tests can drive
// time deterministically
type Clock interface {
	Now() time.Time
}

// System provides the real system time with monotonic clock readings
type System struct{}

// NewSystem creates a new monotonic time provider
func NewSystem() *System {
	return &System{}
}

// Now returns the current time with monotonic clock reading
func (s *System) Now() time.Time {
	return time.Now()
}
