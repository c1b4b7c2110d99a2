package osc

// Type is the closed union of OSC argument types.  Every argument that can
// appear in a Message implements Type; the set cannot be extended outside
// this package.
type Type interface {
	// isType seals the union.
	isType()
}

// Int is an OSC int32 argument (tag 'i').
type Int int32

// Long is an OSC int64 argument (tag 'h').
type Long int64

// Float is an OSC float32 argument (tag 'f').
type Float float32

// Double is an OSC float64 argument (tag 'd').
type Double float64

// String is an OSC string argument (tag 's').
type String string

// Blob is an OSC binary blob argument (tag 'b').
type Blob []byte

// Char is an OSC character argument (tag 'c'), a single Unicode scalar value.
type Char rune

// Color is an OSC RGBA color argument (tag 'r').
type Color struct {
	R, G, B, A uint8
}

// Midi carries the parts of a MIDI message tunneled over OSC (tag 'm').
type Midi struct {
	Port, Status, Data1, Data2 uint8
}

// Bool is an OSC boolean argument.  It carries no payload bytes: the type
// tag alone ('T' or 'F') encodes the value.
type Bool bool

// Array is an ordered sequence of arguments (tags '[' ... ']').  Arrays may
// nest arbitrarily.
type Array []Type

// NilType is the OSC nil argument (tag 'N').  It carries no payload bytes.
type NilType struct{}

// InfType is the OSC infinitum argument (tag 'I').  It carries no payload
// bytes.
type InfType struct{}

var (
	// Nil is the singleton nil argument.
	Nil = NilType{}

	// Inf is the singleton infinitum argument.
	Inf = InfType{}
)

func (Int) isType()     {}
func (Long) isType()    {}
func (Float) isType()   {}
func (Double) isType()  {}
func (String) isType()  {}
func (Blob) isType()    {}
func (Char) isType()    {}
func (Color) isType()   {}
func (Midi) isType()    {}
func (Bool) isType()    {}
func (Array) isType()   {}
func (NilType) isType() {}
func (InfType) isType() {}
func (TimeTag) isType() {}

// Packet is either a *Message or a *Bundle.
type Packet interface {
	// isPacket seals the union.
	isPacket()
}

// Message is a single OSC message: an address pattern beginning with '/'
// and zero or more typed arguments.
type Message struct {
	Addr string
	Args []Type
}

// NewMessage constructs a message from an address and arguments.
func NewMessage(addr string, args ...Type) *Message {
	return &Message{Addr: addr, Args: args}
}

func (*Message) isPacket() {}

// Bundle groups packets under one time tag.  Bundles may contain nested
// bundles; consumers flatten them depth-first, left to right.
type Bundle struct {
	TimeTag TimeTag
	Content []Packet
}

// NewBundle constructs a bundle from a time tag and its content packets.
func NewBundle(tt TimeTag, content ...Packet) *Bundle {
	return &Bundle{TimeTag: tt, Content: content}
}

func (*Bundle) isPacket() {}
