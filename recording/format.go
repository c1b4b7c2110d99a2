package recording

import (
	"io"

	"github.com/ugorji/go/codec"
)

// jsonHandle is the canonical codec.Handle for recording files: one JSON
// document per line, terminated by a newline so files can be processed
// with ordinary line-oriented tooling.
var jsonHandle = &codec.JsonHandle{
	BasicHandle: codec.BasicHandle{
		TypeInfos: codec.NewTypeInfos([]string{"json"}),
	},
	TermWhitespace: true,
}

// NewEncoder produces a ugorji Encoder using the recording file
// configuration.
func NewEncoder(output io.Writer) *codec.Encoder {
	return codec.NewEncoder(output, jsonHandle)
}

// NewDecoder produces a ugorji Decoder using the recording file
// configuration.
func NewDecoder(input io.Reader) *codec.Decoder {
	return codec.NewDecoder(input, jsonHandle)
}
