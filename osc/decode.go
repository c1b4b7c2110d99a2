package osc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"unicode/utf8"
)

// MTU is a common Ethernet MTU, a reasonable receive buffer size for
// datagram transports.
const MTU = 1536

// MaxArrayDepth bounds array nesting in a type tag string.  Nesting past
// this depth fails with a BadMessageError rather than letting adversarial
// input grow the accumulator stack without bound.
const MaxArrayDepth = 32

// reader tracks a position within the outermost packet buffer.  OSC
// padding is computed against the absolute offset in that buffer, not the
// start of the current field, so nested bundle elements keep decoding
// against the top-level slice and restrict themselves with limit.
type reader struct {
	buf   []byte
	off   int
	limit int
}

func (r *reader) remaining() int {
	return r.limit - r.off
}

func (r *reader) take(n int) ([]byte, error) {
	if n < 0 || r.remaining() < n {
		return nil, &BadPacketError{Reason: "unexpected end of packet"}
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *reader) uint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *reader) uint64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// string reads a NUL-terminated string and consumes padding up to the next
// 4-byte boundary of the outermost buffer.
func (r *reader) string() (string, error) {
	rel := bytes.IndexByte(r.buf[r.off:r.limit], 0)
	if rel < 0 {
		return "", &BadStringError{Reason: "missing NUL terminator"}
	}

	content := r.buf[r.off : r.off+rel]
	if !utf8.Valid(content) {
		return "", &BadStringError{Reason: "invalid UTF-8"}
	}

	// The terminator is mandatory, so at least one byte is always consumed
	// past the content.
	padding := 4 - (r.off+rel)%4
	if _, err := r.take(rel + padding); err != nil {
		return "", err
	}
	return string(content), nil
}

func (r *reader) timeTag() (TimeTag, error) {
	seconds, err := r.uint32()
	if err != nil {
		return TimeTag{}, err
	}
	fractional, err := r.uint32()
	if err != nil {
		return TimeTag{}, err
	}
	return TimeTag{Seconds: seconds, Fractional: fractional}, nil
}

func (r *reader) blob() (Blob, error) {
	size, err := r.uint32()
	if err != nil {
		return nil, err
	}
	data, err := r.take(int(size))
	if err != nil {
		return nil, err
	}
	if padding := (4 - r.off%4) % 4; padding > 0 {
		if _, err := r.take(padding); err != nil {
			return nil, err
		}
	}
	out := make(Blob, len(data))
	copy(out, data)
	return out, nil
}

// args decodes one argument per tag character.  Array tags maintain an
// explicit accumulator stack: '[' stashes the frame in progress, ']' wraps
// the current frame as an Array and appends it to the popped frame.
func (r *reader) args(tags string) ([]Type, error) {
	args := make([]Type, 0, len(tags))
	var stack [][]Type

	for i := 0; i < len(tags); i++ {
		switch tag := tags[i]; tag {
		case '[':
			if len(stack) >= MaxArrayDepth {
				return nil, &BadMessageError{Reason: "array nesting exceeds maximum depth"}
			}
			stack = append(stack, args)
			args = nil
		case ']':
			if len(stack) == 0 {
				return nil, &BadMessageError{Reason: "encountered ] outside array"}
			}
			array := Array(args)
			args = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			args = append(args, array)
		default:
			arg, err := r.arg(tag)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
	}
	return args, nil
}

func (r *reader) arg(tag byte) (Type, error) {
	switch tag {
	case 'f':
		v, err := r.uint32()
		if err != nil {
			return nil, err
		}
		return Float(math.Float32frombits(v)), nil
	case 'd':
		v, err := r.uint64()
		if err != nil {
			return nil, err
		}
		return Double(math.Float64frombits(v)), nil
	case 'i':
		v, err := r.uint32()
		if err != nil {
			return nil, err
		}
		return Int(int32(v)), nil
	case 'h':
		v, err := r.uint64()
		if err != nil {
			return nil, err
		}
		return Long(int64(v)), nil
	case 's':
		s, err := r.string()
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case 't':
		tt, err := r.timeTag()
		if err != nil {
			return nil, err
		}
		return tt, nil
	case 'b':
		return r.blob()
	case 'r':
		b, err := r.take(4)
		if err != nil {
			return nil, err
		}
		return Color{R: b[0], G: b[1], B: b[2], A: b[3]}, nil
	case 'c':
		v, err := r.uint32()
		if err != nil {
			return nil, err
		}
		if v > utf8.MaxRune || !utf8.ValidRune(rune(v)) {
			return nil, &BadArgError{Tag: tag, Reason: "not a valid character"}
		}
		return Char(rune(v)), nil
	case 'm':
		b, err := r.take(4)
		if err != nil {
			return nil, err
		}
		return Midi{Port: b[0], Status: b[1], Data1: b[2], Data2: b[3]}, nil
	case 'T':
		return Bool(true), nil
	case 'F':
		return Bool(false), nil
	case 'N':
		return Nil, nil
	case 'I':
		return Inf, nil
	default:
		return nil, &BadArgError{Tag: tag, Reason: "type tag not implemented"}
	}
}

func (r *reader) message(addr string) (*Message, error) {
	tags, err := r.string()
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 || tags[0] != ',' {
		return nil, &BadMessageError{Reason: "type tag string must begin with ','"}
	}

	msg := &Message{Addr: addr}
	if len(tags) > 1 {
		if msg.Args, err = r.args(tags[1:]); err != nil {
			return nil, err
		}
	}
	return msg, nil
}

func (r *reader) bundle() (*Bundle, error) {
	tt, err := r.timeTag()
	if err != nil {
		return nil, err
	}

	bundle := &Bundle{TimeTag: tt}
	for r.remaining() > 0 {
		size, err := r.uint32()
		if err != nil {
			return nil, &BadBundleError{Reason: "truncated element length"}
		}
		if int(size) > r.remaining() {
			return nil, &BadBundleError{Reason: "bundle element shorter than declared length"}
		}

		end := r.off + int(size)
		limit := r.limit
		r.limit = end
		packet, err := r.packet()
		if err != nil {
			return nil, err
		}
		r.off = end
		r.limit = limit

		bundle.Content = append(bundle.Content, packet)
	}
	return bundle, nil
}

func (r *reader) packet() (Packet, error) {
	if r.remaining() == 0 {
		return nil, &BadPacketError{Reason: "empty packet"}
	}

	addr, err := r.string()
	if err != nil {
		return nil, err
	}

	switch {
	case strings.HasPrefix(addr, "/"):
		return r.message(addr)
	case addr == "#bundle":
		return r.bundle()
	default:
		return nil, &BadPacketError{Reason: "invalid message address or bundle tag"}
	}
}

// Decode parses one OSC packet from a datagram and returns it along with
// any bytes remaining after the packet.  Decode never panics on malformed
// input and never reads past the end of buf.
func Decode(buf []byte) (Packet, []byte, error) {
	r := &reader{buf: buf, limit: len(buf)}
	packet, err := r.packet()
	if err != nil {
		return nil, nil, err
	}
	return packet, buf[r.off:], nil
}

// DecodeStream parses the first packet from a stream-framed buffer, where
// each packet is preceded by a big-endian uint32 byte length.  If the
// buffer does not yet hold the whole packet, DecodeStream returns
// ErrIncomplete and the caller should buffer more bytes and retry.
func DecodeStream(buf []byte) (Packet, []byte, error) {
	if len(buf) < 4 {
		return nil, buf, ErrIncomplete
	}
	size := binary.BigEndian.Uint32(buf)
	if int(size) > len(buf)-4 {
		return nil, buf, ErrIncomplete
	}

	end := 4 + int(size)
	r := &reader{buf: buf, off: 4, limit: end}
	packet, err := r.packet()
	if err != nil {
		return nil, nil, err
	}
	return packet, buf[end:], nil
}

// DecodeStreamAll repeatedly applies DecodeStream until the buffer is
// exhausted or an incomplete packet is hit, returning all decoded packets
// and the unconsumed remainder.
func DecodeStreamAll(buf []byte) ([]Packet, []byte, error) {
	var packets []Packet
	for len(buf) > 0 {
		packet, rest, err := DecodeStream(buf)
		if errors.Is(err, ErrIncomplete) {
			return packets, buf, nil
		}
		if err != nil {
			return nil, nil, err
		}
		packets = append(packets, packet)
		buf = rest
	}
	return packets, buf, nil
}
