package osc

import (
	"errors"
	"fmt"
)

// ErrIncomplete is returned by DecodeStream when the buffer does not yet
// hold a full packet.  It indicates "read more and retry", not a malformed
// packet.
var ErrIncomplete = errors.New("osc: incomplete packet")

// BadPacketError indicates a malformed packet at the framing level: an
// empty buffer, or a leading string that is neither a '/' address nor the
// '#bundle' tag.
type BadPacketError struct {
	Reason string
}

func (e *BadPacketError) Error() string {
	return fmt.Sprintf("bad OSC packet: %s", e.Reason)
}

// BadBundleError indicates a malformed bundle, such as an element shorter
// than its declared length.
type BadBundleError struct {
	Reason string
}

func (e *BadBundleError) Error() string {
	return fmt.Sprintf("bad OSC bundle: %s", e.Reason)
}

// BadMessageError indicates a malformed message, such as unbalanced array
// tags in the type tag string.
type BadMessageError struct {
	Reason string
}

func (e *BadMessageError) Error() string {
	return fmt.Sprintf("bad OSC message: %s", e.Reason)
}

// BadArgError indicates a malformed or unsupported argument.  Tag is the
// type tag character the argument was declared with.
type BadArgError struct {
	Tag    byte
	Reason string
}

func (e *BadArgError) Error() string {
	return fmt.Sprintf("bad OSC argument %q: %s", e.Tag, e.Reason)
}

// BadStringError indicates a string field that is not valid UTF-8 or is
// not properly terminated.
type BadStringError struct {
	Reason string
}

func (e *BadStringError) Error() string {
	return fmt.Sprintf("bad OSC string: %s", e.Reason)
}
