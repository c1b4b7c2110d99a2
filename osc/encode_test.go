package osc

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePaddingLaw(t *testing.T) {
	// An argumentless message at "/foo" is the address padded to 8 bytes
	// followed by the type tag string "," padded to 4 bytes.
	encoded, err := Encode(NewMessage("/foo"))
	require.NoError(t, err)
	assert.Equal(
		t,
		[]byte{0x2F, 0x66, 0x6F, 0x6F, 0x00, 0x00, 0x00, 0x00, 0x2C, 0x00, 0x00, 0x00},
		encoded,
	)
}

func TestEncodeString(t *testing.T) {
	testData := []struct {
		value    string
		expected []byte
	}{
		{"", []byte{0, 0, 0, 0}},
		{"a", []byte{'a', 0, 0, 0}},
		{"abc", []byte{'a', 'b', 'c', 0}},
		{"abcd", []byte{'a', 'b', 'c', 'd', 0, 0, 0, 0}},
	}

	for _, record := range testData {
		assert.Equal(t, record.expected, EncodeString(record.value))
	}
}

func TestEncodeBlobPadding(t *testing.T) {
	testData := []struct {
		blob        Blob
		encodedSize int
	}{
		{Blob{}, 4},
		{Blob{1}, 8},
		{Blob{1, 2, 3}, 8},
		{Blob{1, 2, 3, 4}, 8},
		{Blob{1, 2, 3, 4, 5}, 12},
	}

	for _, record := range testData {
		var out Buffer
		n, err := encodeArgData(record.blob, &out)
		require.NoError(t, err)
		assert.Equal(t, record.encodedSize, n)
		assert.Len(t, out.Bytes(), record.encodedSize)
		assert.Zero(t, record.encodedSize%4)
	}
}

func TestEncodeTagOnlyArguments(t *testing.T) {
	// Bool, Nil, and Inf write no payload bytes; the tag alone encodes them.
	encoded, err := Encode(NewMessage("/x", Bool(true), Bool(false), Nil, Inf))
	require.NoError(t, err)
	assert.Equal(t, []byte("/x\x00\x00,TFNI\x00\x00\x00"), encoded)
}

func TestEncodeBundleLengths(t *testing.T) {
	inner, err := Encode(NewMessage("/foo"))
	require.NoError(t, err)

	encoded, err := Encode(NewBundle(
		TimeTag{Seconds: 1, Fractional: 2},
		NewMessage("/foo"),
		NewMessage("/foo"),
	))
	require.NoError(t, err)

	expected := []byte("#bundle\x00")
	expected = append(expected, 0, 0, 0, 1, 0, 0, 0, 2)
	for i := 0; i < 2; i++ {
		expected = append(expected, 0, 0, 0, byte(len(inner)))
		expected = append(expected, inner...)
	}
	assert.Equal(t, expected, encoded)
}

// writeSeeker is an in-memory io.WriteSeeker used to exercise SeekOutput.
type writeSeeker struct {
	data []byte
	pos  int64
}

func (ws *writeSeeker) Write(p []byte) (int, error) {
	if need := ws.pos + int64(len(p)); need > int64(len(ws.data)) {
		grown := make([]byte, need)
		copy(grown, ws.data)
		ws.data = grown
	}
	copy(ws.data[ws.pos:], p)
	ws.pos += int64(len(p))
	return len(p), nil
}

func (ws *writeSeeker) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		ws.pos = offset
	case io.SeekCurrent:
		ws.pos += offset
	case io.SeekEnd:
		ws.pos = int64(len(ws.data)) + offset
	default:
		return 0, errors.New("bad whence")
	}
	return ws.pos, nil
}

func TestSeekOutputMatchesBuffer(t *testing.T) {
	packet := NewBundle(
		TimeTag{Seconds: 10, Fractional: 20},
		NewMessage("/a/b", Int(1), String("hello"), Blob{9, 9, 9}),
		NewBundle(
			TimeTag{Seconds: 30, Fractional: 40},
			NewMessage("/c", Float(2.5), Array{Int(1), Array{Int(2)}}),
		),
	)

	buffered, err := Encode(packet)
	require.NoError(t, err)

	ws := new(writeSeeker)
	n, err := EncodeTo(packet, &SeekOutput{W: ws})
	require.NoError(t, err)
	assert.Equal(t, len(buffered), n)
	assert.True(t, bytes.Equal(buffered, ws.data), "seekable output diverged from buffered output")
}
