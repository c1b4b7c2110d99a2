package osc

import (
	"encoding/binary"
	"io"
	"math"
)

// Mark records the location of a fixed-length placeholder reserved with
// Output.Mark, to be filled in later with Output.Place.
type Mark struct {
	start, end int64
}

// Output receives encoded OSC bytes.  The Mark/Place pair exists for
// bundle elements, whose length must precede content of a size not known
// until encoding completes: Mark reserves a placeholder, Place backfills
// it.  This keeps the encoding logic single-sourced across a growable
// in-memory buffer and a seekable stream.
//
// Unlike io.Writer, Write must consume all of the given data before
// returning.
type Output interface {
	Write(data []byte) (int, error)
	Mark(size int) (Mark, error)
	Place(m Mark, data []byte) error
}

// Buffer is a growable in-memory Output.  Its methods never fail.
type Buffer struct {
	data []byte
}

// Bytes returns the encoded bytes accumulated so far.
func (b *Buffer) Bytes() []byte {
	return b.data
}

func (b *Buffer) Write(data []byte) (int, error) {
	b.data = append(b.data, data...)
	return len(data), nil
}

func (b *Buffer) Mark(size int) (Mark, error) {
	start := len(b.data)
	b.data = append(b.data, make([]byte, size)...)
	return Mark{start: int64(start), end: int64(start + size)}, nil
}

func (b *Buffer) Place(m Mark, data []byte) error {
	copy(b.data[m.start:m.end], data)
	return nil
}

// SeekOutput adapts an io.WriteSeeker (such as a file) into an Output.
// Mark records the current position and writes zero filler; Place seeks
// back, overwrites, and seeks forward again.
type SeekOutput struct {
	W io.WriteSeeker
}

func (s *SeekOutput) Write(data []byte) (int, error) {
	if _, err := s.W.Write(data); err != nil {
		return 0, err
	}
	return len(data), nil
}

func (s *SeekOutput) Mark(size int) (Mark, error) {
	pos, err := s.W.Seek(0, io.SeekCurrent)
	if err != nil {
		return Mark{}, err
	}

	var filler [8]byte
	for left := size; left > 0; {
		n := left
		if n > len(filler) {
			n = len(filler)
		}
		if _, err := s.W.Write(filler[:n]); err != nil {
			return Mark{}, err
		}
		left -= n
	}
	return Mark{start: pos, end: pos + int64(size)}, nil
}

func (s *SeekOutput) Place(m Mark, data []byte) error {
	pos, err := s.W.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	if _, err := s.W.Seek(m.start, io.SeekStart); err != nil {
		return err
	}
	if _, err := s.W.Write(data); err != nil {
		return err
	}
	_, err = s.W.Seek(pos, io.SeekStart)
	return err
}

// Encode encodes a packet into a byte slice.  Encoding into the in-memory
// buffer cannot fail.
func Encode(packet Packet) ([]byte, error) {
	var buf Buffer
	if _, err := EncodeTo(packet, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeTo encodes a packet into the given output and returns the number
// of bytes written.  If the output fails mid-encode, the output may have
// been partially written.
func EncodeTo(packet Packet, out Output) (int, error) {
	switch p := packet.(type) {
	case *Message:
		return encodeMessage(p, out)
	case *Bundle:
		return encodeBundle(p, out)
	default:
		return 0, &BadPacketError{Reason: "unknown packet type"}
	}
}

func encodeMessage(msg *Message, out Output) (int, error) {
	written, err := writeString(msg.Addr, out)
	if err != nil {
		return written, err
	}

	n, err := out.Write([]byte{','})
	written += n
	if err != nil {
		return written, err
	}
	for _, arg := range msg.Args {
		n, err = encodeArgTag(arg, out)
		written += n
		if err != nil {
			return written, err
		}
	}

	// The address is already padded, so only the tag string contributes to
	// the boundary arithmetic here.
	padding := int(pad(uint64(written)+1)) - written
	n, err = out.Write(zeros[:padding])
	written += n
	if err != nil {
		return written, err
	}

	for _, arg := range msg.Args {
		n, err = encodeArgData(arg, out)
		written += n
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

func encodeBundle(bundle *Bundle, out Output) (int, error) {
	written, err := writeString("#bundle", out)
	if err != nil {
		return written, err
	}
	n, err := writeTimeTag(bundle.TimeTag, out)
	written += n
	if err != nil {
		return written, err
	}

	for _, packet := range bundle.Content {
		mark, err := out.Mark(4)
		if err != nil {
			return written, err
		}

		length, err := EncodeTo(packet, out)
		if err != nil {
			return written + length, err
		}

		var size [4]byte
		binary.BigEndian.PutUint32(size[:], uint32(length))
		if err := out.Place(mark, size[:]); err != nil {
			return written + length, err
		}
		written += 4 + length
	}
	return written, nil
}

func encodeArgTag(arg Type, out Output) (int, error) {
	switch a := arg.(type) {
	case Int:
		return out.Write([]byte{'i'})
	case Long:
		return out.Write([]byte{'h'})
	case Float:
		return out.Write([]byte{'f'})
	case Double:
		return out.Write([]byte{'d'})
	case Char:
		return out.Write([]byte{'c'})
	case String:
		return out.Write([]byte{'s'})
	case Blob:
		return out.Write([]byte{'b'})
	case TimeTag:
		return out.Write([]byte{'t'})
	case Midi:
		return out.Write([]byte{'m'})
	case Color:
		return out.Write([]byte{'r'})
	case Bool:
		if a {
			return out.Write([]byte{'T'})
		}
		return out.Write([]byte{'F'})
	case NilType:
		return out.Write([]byte{'N'})
	case InfType:
		return out.Write([]byte{'I'})
	case Array:
		written, err := out.Write([]byte{'['})
		if err != nil {
			return written, err
		}
		for _, v := range a {
			n, err := encodeArgTag(v, out)
			written += n
			if err != nil {
				return written, err
			}
		}
		n, err := out.Write([]byte{']'})
		return written + n, err
	default:
		return 0, &BadArgError{Reason: "unknown argument type"}
	}
}

func encodeArgData(arg Type, out Output) (int, error) {
	switch a := arg.(type) {
	case Int:
		return writeUint32(uint32(a), out)
	case Long:
		return writeUint64(uint64(a), out)
	case Float:
		return writeUint32(math.Float32bits(float32(a)), out)
	case Double:
		return writeUint64(math.Float64bits(float64(a)), out)
	case Char:
		return writeUint32(uint32(a), out)
	case String:
		return writeString(string(a), out)
	case Blob:
		paddedLength := int(pad(uint64(len(a))))
		if _, err := writeUint32(uint32(len(a)), out); err != nil {
			return 0, err
		}
		if _, err := out.Write(a); err != nil {
			return 0, err
		}
		if padding := paddedLength - len(a); padding > 0 {
			if _, err := out.Write(zeros[:padding]); err != nil {
				return 0, err
			}
		}
		return 4 + paddedLength, nil
	case TimeTag:
		return writeTimeTag(a, out)
	case Midi:
		return out.Write([]byte{a.Port, a.Status, a.Data1, a.Data2})
	case Color:
		return out.Write([]byte{a.R, a.G, a.B, a.A})
	case Bool, NilType, InfType:
		// The type tag is the entire encoding.
		return 0, nil
	case Array:
		written := 0
		for _, v := range a {
			n, err := encodeArgData(v, out)
			written += n
			if err != nil {
				return written, err
			}
		}
		return written, nil
	default:
		return 0, &BadArgError{Reason: "unknown argument type"}
	}
}

var zeros [4]byte

// EncodeString null-terminates s and pads it with additional zero bytes
// until its length is a multiple of 4.
func EncodeString(s string) []byte {
	out := make([]byte, pad(uint64(len(s))+1))
	copy(out, s)
	return out
}

// writeString writes s followed by 1-4 zero bytes such that the total
// length written is a multiple of 4.
func writeString(s string, out Output) (int, error) {
	paddedLength := int(pad(uint64(len(s)) + 1))
	if _, err := out.Write([]byte(s)); err != nil {
		return 0, err
	}
	if _, err := out.Write(zeros[:paddedLength-len(s)]); err != nil {
		return len(s), err
	}
	return paddedLength, nil
}

func writeUint32(v uint32, out Output) (int, error) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return out.Write(b[:])
}

func writeUint64(v uint64, out Output) (int, error) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return out.Write(b[:])
}

func writeTimeTag(tt TimeTag, out Output) (int, error) {
	if _, err := writeUint32(tt.Seconds, out); err != nil {
		return 0, err
	}
	if _, err := writeUint32(tt.Fractional, out); err != nil {
		return 4, err
	}
	return 8, nil
}

// pad rounds pos up to the next multiple of 4.
func pad(pos uint64) uint64 {
	if d := pos % 4; d != 0 {
		return pos + (4 - d)
	}
	return pos
}
