package clock

import "time"

// Epoch measures time elapsed since a fixed starting instant.  Performers
// share one epoch across a session so that the relative timestamps they
// transmit are monotonic.
type Epoch struct {
	clock Interface
	start time.Time
}

// NewEpoch starts an epoch at the clock's current instant.  A nil clock
// uses System().
func NewEpoch(c Interface) *Epoch {
	if c == nil {
		c = System()
	}
	return &Epoch{clock: c, start: c.Now()}
}

// Start returns the instant the epoch began.
func (e *Epoch) Start() time.Time {
	return e.start
}

// Elapsed returns the time elapsed since the epoch began.
func (e *Epoch) Elapsed() time.Duration {
	return e.clock.Now().Sub(e.start)
}

// ElapsedSeconds returns the elapsed time in seconds, in the precision the
// wire carries.
func (e *Epoch) ElapsedSeconds() float32 {
	return float32(e.Elapsed().Seconds())
}
