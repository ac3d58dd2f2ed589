package engine

import "time"

// TimeProvider supplies the scheduler's clock. Injected so tests can
// drive tick timing deterministically.
type TimeProvider interface {
	Now() time.Time
}

// SystemTimeProvider provides the real system time with monotonic clock
// readings
type SystemTimeProvider struct{}

// Now returns the current time with monotonic clock reading
func (SystemTimeProvider) Now() time.Time {
	return time.Now()
}
