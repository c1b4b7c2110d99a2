package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stubClock struct {
	systemClock
	now time.Time
}

func (sc *stubClock) Now() time.Time {
	return sc.now
}

func TestEpoch(t *testing.T) {
	assert := assert.New(t)

	start := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	c := &stubClock{now: start}

	epoch := NewEpoch(c)
	assert.Equal(start, epoch.Start())
	assert.Zero(epoch.Elapsed())

	c.now = start.Add(1500 * time.Millisecond)
	assert.Equal(1500*time.Millisecond, epoch.Elapsed())
	assert.InDelta(1.5, float64(epoch.ElapsedSeconds()), 1e-6)
}

func TestEpochNilClock(t *testing.T) {
	epoch := NewEpoch(nil)
	assert.False(t, epoch.Start().IsZero())
	assert.GreaterOrEqual(t, epoch.Elapsed(), time.Duration(0))
}
