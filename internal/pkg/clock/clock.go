// Package clock hides time.Now behind an interface so validation timestamps
// can be pinned in tests.
package clock

import "time"

// Clocker reports the current time.
type Clocker interface {
	Now() time.Time
}

// System reads the wall clock and reports it in UTC.
type System struct{}

// New returns the system clock.
func New() *System {
	return &System{}
}

// Now returns the current time in UTC.
func (*System) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always reports the same instant.
type Fixed time.Time

// Now returns the pinned instant.
func (f Fixed) Now() time.Time {
	return time.Time(f)
}
