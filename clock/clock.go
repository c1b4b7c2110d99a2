// Package clock abstracts the time package so that time-dependent behavior,
// such as the relative frame timestamps performers transmit, can be driven
// deterministically in tests.
package clock

import "time"

// Interface represents a clock with the same core functionality available
// in the stdlib time package.
type Interface interface {
	Now() time.Time
	Sleep(time.Duration)
	NewTicker(time.Duration) Ticker
	NewTimer(time.Duration) Timer
}

// Ticker is the equivalent of time.Ticker with the channel exposed behind
// an accessor so it can be mocked.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Timer is the equivalent of time.Timer with the channel exposed behind an
// accessor so it can be mocked.
type Timer interface {
	C() <-chan time.Time
	Reset(time.Duration) bool
	Stop() bool
}

type systemClock struct{}

func (sc systemClock) Now() time.Time {
	return time.Now()
}

func (sc systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

func (sc systemClock) NewTicker(d time.Duration) Ticker {
	return systemTicker{time.NewTicker(d)}
}

func (sc systemClock) NewTimer(d time.Duration) Timer {
	return systemTimer{time.NewTimer(d)}
}

type systemTicker struct {
	*time.Ticker
}

func (st systemTicker) C() <-chan time.Time {
	return st.Ticker.C
}

type systemTimer struct {
	*time.Timer
}

func (st systemTimer) C() <-chan time.Time {
	return st.Timer.C
}

// System returns a clock backed by the time package.
func System() Interface {
	return systemClock{}
}
