package osc

import (
	"errors"
	"math"
	"time"
)

// TimeTag is an OSC time tag (tag 't'): two 32-bit integers, the first the
// number of seconds since 1900-01-01 00:00:00 UTC and the second the
// fraction of a second in 1/2^32 units.
//
// Conversions between TimeTag and time.Time are lossy, but round-trip
// within 5 nanoseconds in either direction.  Only times at or after the
// unix epoch can be represented.
type TimeTag struct {
	Seconds    uint32
	Fractional uint32
}

// TimeTagImmediate is the special time tag value directing receivers to
// process a bundle as soon as it arrives.
var TimeTagImmediate = TimeTag{Seconds: 0, Fractional: 1}

// unixOffset is the number of seconds between the OSC (NTP) epoch,
// 1900-01-01, and the unix epoch, 1970-01-01.  From RFC 5905.
const unixOffset = 2_208_988_800

const (
	twoPow32        = float64(math.MaxUint32) + 1.0
	nanosPerSecond  = 1.0e9
	secondsPerNano  = 1.0 / nanosPerSecond
	oneOverTwoPow32 = 1.0 / twoPow32
)

var (
	// ErrTimeBeforeEpoch is returned when converting a time that predates
	// the unix epoch.
	ErrTimeBeforeEpoch = errors.New("osc: time is before the unix epoch and cannot be stored")

	// ErrTimeOverflow is returned when a time's seconds do not fit in the
	// 32 bits a time tag can store.
	ErrTimeOverflow = errors.New("osc: time overflows what an OSC time tag can store")
)

// TimeTagFromTime converts a wall-clock time into a TimeTag.  It fails if
// the time is before the unix epoch or too far in the future for 32-bit
// seconds.
func TimeTagFromTime(t time.Time) (TimeTag, error) {
	unixSeconds := t.Unix()
	if unixSeconds < 0 {
		return TimeTag{}, ErrTimeBeforeEpoch
	}

	seconds := uint64(unixSeconds) + unixOffset
	if seconds > math.MaxUint32 {
		return TimeTag{}, ErrTimeOverflow
	}

	nanos := float64(t.Nanosecond())
	fractional := uint32(math.Round(nanos * secondsPerNano * twoPow32))

	return TimeTag{Seconds: uint32(seconds), Fractional: fractional}, nil
}

// Time converts the tag back to a wall-clock time.
func (tt TimeTag) Time() time.Time {
	nanos := math.Round(float64(tt.Fractional) * oneOverTwoPow32 * nanosPerSecond)
	return time.Unix(int64(tt.Seconds)-unixOffset, int64(nanos)).UTC()
}
