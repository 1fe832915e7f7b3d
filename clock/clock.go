package clock

import (
	"time"

	"github.com/aatuh/ulid-toolkit/ports"
)

// SystemClock implements ports.Clock using time.Now().
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// NewSystemClock creates a new system clock that implements ports.Clock.
func NewSystemClock() ports.Clock {
	return &SystemClock{}
}

// FixedClock always reports the same instant. Useful for deterministic
// tests and for re-encoding historical timestamps.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// NewFixedClock creates a clock pinned to t.
func NewFixedClock(t time.Time) ports.Clock {
	return &FixedClock{T: t}
}
