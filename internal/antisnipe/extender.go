package antisnipe

import "time"

// Default extension parameters.
const (
	DefaultThreshold = 60 * time.Second
	DefaultExtension = 10 * time.Minute
)

// Extender decides whether a bid landing near the deadline pushes it back.
// MaxExtensions caps how many times a single lot's deadline may be pushed;
// zero means unbounded. Extender is pure and safe for concurrent use.
type Extender struct {
	Threshold     time.Duration
	Extension     time.Duration
	MaxExtensions int
}

// NewDefaultExtender returns an extender with the standard 60s window and
// 10 minute extension, uncapped.
func NewDefaultExtender() *Extender {
	return &Extender{
		Threshold: DefaultThreshold,
		Extension: DefaultExtension,
	}
}

// ShouldExtend reports whether a bid arriving at now, against the given
// deadline and prior extension count, qualifies for an extension. A bid on a
// lot that already ended never extends.
func (e *Extender) ShouldExtend(endTime, now time.Time, extensions int) bool {
	if e.MaxExtensions > 0 && extensions >= e.MaxExtensions {
		return false
	}
	remaining := endTime.Sub(now)
	return remaining > 0 && remaining <= e.Threshold
}

// Extend returns the pushed-back deadline.
func (e *Extender) Extend(endTime time.Time) time.Time {
	return endTime.Add(e.Extension)
}
