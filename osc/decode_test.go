package osc

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEmptyPacket(t *testing.T) {
	_, _, err := Decode(nil)
	var bad *BadPacketError
	assert.ErrorAs(t, err, &bad)
}

func TestDecodeInvalidAddress(t *testing.T) {
	_, _, err := Decode(EncodeString("#notabundle"))
	var bad *BadPacketError
	require.ErrorAs(t, err, &bad)
	assert.Contains(t, bad.Reason, "address or bundle tag")
}

func TestDecodeRoundTripArguments(t *testing.T) {
	original := NewMessage(
		"/every/type",
		Int(-3),
		Long(1<<40),
		Float(1.5),
		Double(-2.25),
		String("hello"),
		Blob{1, 2, 3, 4, 5},
		TimeTag{Seconds: 7, Fractional: 9},
		Char('é'),
		Color{R: 1, G: 2, B: 3, A: 4},
		Midi{Port: 5, Status: 6, Data1: 7, Data2: 8},
		Bool(true),
		Bool(false),
		Nil,
		Inf,
		Array{Int(1), Array{String("nested")}, Float(3)},
	)

	encoded, err := Encode(original)
	require.NoError(t, err)

	decoded, rest, err := Decode(encoded)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, Packet(original), decoded)
}

func TestDecodeBundlePreservesOrder(t *testing.T) {
	original := NewBundle(
		TimeTag{Seconds: 1, Fractional: 2},
		NewMessage("/first", Int(1)),
		NewBundle(
			TimeTag{Seconds: 3, Fractional: 4},
			NewMessage("/second", String("abc")),
		),
		NewMessage("/third"),
	)

	encoded, err := Encode(original)
	require.NoError(t, err)

	decoded, rest, err := Decode(encoded)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, Packet(original), decoded)
}

func TestDecodeBundleShorterThanDeclared(t *testing.T) {
	buf := EncodeString("#bundle")
	buf = append(buf, 0, 0, 0, 0, 0, 0, 0, 0) // time tag
	buf = append(buf, 0, 0, 0, 64)            // element claims 64 bytes
	buf = append(buf, 1, 2, 3, 4)             // only 4 present

	_, _, err := Decode(buf)
	var bad *BadBundleError
	require.ErrorAs(t, err, &bad)
	assert.Contains(t, bad.Reason, "shorter than declared")
}

func TestDecodeUnimplementedTag(t *testing.T) {
	buf := EncodeString("/x")
	buf = append(buf, EncodeString(",q")...)

	_, _, err := Decode(buf)
	var bad *BadArgError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, byte('q'), bad.Tag)
}

func TestDecodeUnbalancedArrayClose(t *testing.T) {
	buf := EncodeString("/x")
	buf = append(buf, EncodeString(",]")...)

	_, _, err := Decode(buf)
	var bad *BadMessageError
	require.ErrorAs(t, err, &bad)
	assert.Contains(t, bad.Reason, "outside array")
}

func TestDecodeArrayDepthBound(t *testing.T) {
	tags := ","
	for i := 0; i <= MaxArrayDepth; i++ {
		tags += "["
	}
	for i := 0; i <= MaxArrayDepth; i++ {
		tags += "]"
	}

	buf := EncodeString("/x")
	buf = append(buf, EncodeString(tags)...)

	_, _, err := Decode(buf)
	var bad *BadMessageError
	require.ErrorAs(t, err, &bad)
	assert.Contains(t, bad.Reason, "depth")
}

func TestDecodeInvalidChar(t *testing.T) {
	buf := EncodeString("/x")
	buf = append(buf, EncodeString(",c")...)
	buf = append(buf, 0x00, 0x00, 0xD8, 0x00) // UTF-16 surrogate, not a scalar value

	_, _, err := Decode(buf)
	var bad *BadArgError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, byte('c'), bad.Tag)
}

func TestDecodeInvalidUTF8String(t *testing.T) {
	buf := EncodeString("/x")
	buf = append(buf, ',', 's', 0, 0)
	buf = append(buf, 0xFF, 0xFE, 0, 0)

	_, _, err := Decode(buf)
	var bad *BadStringError
	assert.ErrorAs(t, err, &bad)
}

// Padding inside a bundle element must be computed against the element's
// absolute position in the outer buffer, which the encoder guarantees by
// keeping every element 4-byte aligned.  A message whose address length
// forces mid-element padding still round-trips through a bundle.
func TestDecodeBundleElementAlignment(t *testing.T) {
	original := NewBundle(
		TimeTag{Seconds: 0, Fractional: 0},
		NewMessage("/odd1", String("x"), String("yz"), Int(5)),
		NewMessage("/a", String("pad-sensitive"), Float(1)),
	)

	encoded, err := Encode(original)
	require.NoError(t, err)

	decoded, _, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, Packet(original), decoded)
}

func TestDecodeTrailingBytesReturned(t *testing.T) {
	encoded, err := Encode(NewMessage("/foo"))
	require.NoError(t, err)
	withTrailer := append(encoded, 0xAA, 0xBB)

	packet, rest, err := Decode(withTrailer)
	require.NoError(t, err)
	assert.Equal(t, Packet(NewMessage("/foo")), packet)
	assert.Equal(t, []byte{0xAA, 0xBB}, rest)
}

func frame(t *testing.T, packet Packet) []byte {
	t.Helper()
	encoded, err := Encode(packet)
	require.NoError(t, err)

	framed := make([]byte, 4+len(encoded))
	binary.BigEndian.PutUint32(framed, uint32(len(encoded)))
	copy(framed[4:], encoded)
	return framed
}

func TestDecodeStreamIncomplete(t *testing.T) {
	framed := frame(t, NewMessage("/stream", Int(1)))

	// Every strict prefix is "no packet yet", not malformed.
	for cut := 0; cut < len(framed); cut++ {
		_, rest, err := DecodeStream(framed[:cut])
		assert.ErrorIs(t, err, ErrIncomplete)
		assert.Equal(t, framed[:cut], rest)
	}

	packet, rest, err := DecodeStream(framed)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, Packet(NewMessage("/stream", Int(1))), packet)
}

func TestDecodeStreamMalformed(t *testing.T) {
	framed := frame(t, NewMessage("/stream"))
	framed[4] = '#' // no longer a valid address

	_, _, err := DecodeStream(framed)
	var bad *BadPacketError
	assert.ErrorAs(t, err, &bad)
}

func TestDecodeStreamAll(t *testing.T) {
	first := frame(t, NewMessage("/one", Int(1)))
	second := frame(t, NewMessage("/two", Int(2)))
	partial := frame(t, NewMessage("/three", Int(3)))
	partial = partial[:len(partial)-2]

	buf := append(append(append([]byte{}, first...), second...), partial...)

	packets, rest, err := DecodeStreamAll(buf)
	require.NoError(t, err)
	require.Len(t, packets, 2)
	assert.Equal(t, Packet(NewMessage("/one", Int(1))), packets[0])
	assert.Equal(t, Packet(NewMessage("/two", Int(2))), packets[1])
	assert.Equal(t, partial, rest)
}
