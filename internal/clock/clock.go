// Package clock supplies the current instant. Repositories and the timer
// engine take a Clock instead of calling time.Now directly so tests can drive
// the wall clock deterministically.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns a Clock backed by time.Now.
func System() Clock { return systemClock{} }

// Mock is a manually advanced clock for tests.
type Mock struct {
	now time.Time
}

func NewMock(start time.Time) *Mock {
	return &Mock{now: start}
}

func (m *Mock) Now() time.Time { return m.now }

// Advance moves the mock clock forward by d.
func (m *Mock) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}

// Set jumps the mock clock to t.
func (m *Mock) Set(t time.Time) {
	m.now = t
}
