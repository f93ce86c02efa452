package clock

import "time"

// Clock allows injecting time into the engine. All instants are UTC.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystem returns a clock backed by time.Now.
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always returns the instant it was set to. Useful for tests.
type FixedClock struct {
	now time.Time
}

// NewFixed returns a clock pinned to t.
func NewFixed(t time.Time) *FixedClock {
	return &FixedClock{now: t.UTC()}
}

func (f *FixedClock) Now() time.Time {
	return f.now
}

// Advance moves the fixed clock forward by d.
func (f *FixedClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

// Set pins the fixed clock to t.
func (f *FixedClock) Set(t time.Time) {
	f.now = t.UTC()
}
