package vmc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pykeio/vmc/clock"
	"github.com/pykeio/vmc/clock/clocktest"
	"github.com/pykeio/vmc/osc"
)

func TestStateArgumentOrder(t *testing.T) {
	assert := assert.New(t)

	// On the wire, calibration state precedes calibration mode.
	msg := NewStateTracking(ModelLoaded, CalibrationModeMixedRealityHand, Calibrating, TrackingPoor).OSC()
	assert.Equal(AddressState, msg.Addr)
	assert.Equal([]osc.Type{osc.Int(1), osc.Int(2), osc.Int(1), osc.Int(0)}, msg.Args)

	// Tracking is dropped without calibration.
	partial := &State{Model: ModelLoaded, Tracking: new(TrackingState)}
	assert.Equal([]osc.Type{osc.Int(1)}, partial.OSC().Args)
}

func TestRootTransformArguments(t *testing.T) {
	assert := assert.New(t)

	msg := NewRootTransform(Vec3{1, 2, 3}, QuatIdentity).OSC()
	require.Len(t, msg.Args, 8)
	assert.Equal(osc.String("root"), msg.Args[0])

	msg = NewRootTransformMR(Vec3{1, 2, 3}, QuatIdentity, Vec3{1, 1, 1}, Vec3{0, 0, 0}).OSC()
	assert.Len(msg.Args, 14)
}

func TestElapsedTime(t *testing.T) {
	start := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	c := new(clocktest.Mock)
	c.OnNow(start).Once()
	epoch := clock.NewEpoch(c)

	c.OnNow(start.Add(2500 * time.Millisecond))
	assert.InDelta(t, 2.5, float64(ElapsedTime(epoch)), 1e-6)

	c.AssertExpectations(t)
}
