// Package recording persists VMC sessions as newline-delimited JSON so
// motion data can be captured from a performer and replayed to a
// marionette later.
package recording

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/ugorji/go/codec"

	"github.com/pykeio/vmc"
	"github.com/pykeio/vmc/clock"
)

// Version is the recording file version this package writes.
const Version = 1

// ErrUnsupportedVersion is returned when opening a recording written by a
// newer version of this package.
var ErrUnsupportedVersion = errors.New("recording: unsupported file version")

// message kind discriminators, stored in each frame.
const (
	kindRoot       = "root"
	kindBone       = "bone"
	kindDevice     = "device"
	kindBlendShape = "blendShape"
	kindApply      = "apply"
	kindState      = "state"
	kindTime       = "time"
)

// header is the first line of every recording.
type header struct {
	Version   int       `json:"version"`
	Session   string    `json:"session"`
	CreatedAt time.Time `json:"createdAt"`
}

// frame is one recorded message.  T is seconds since the start of the
// session; exactly one of the message fields is set, selected by Kind.
type frame struct {
	T    float32 `json:"t"`
	Kind string  `json:"kind"`

	Root       *vmc.RootTransform   `json:"root,omitempty"`
	Bone       *vmc.BoneTransform   `json:"bone,omitempty"`
	Device     *vmc.DeviceTransform `json:"device,omitempty"`
	BlendShape *vmc.BlendShape      `json:"blendShape,omitempty"`
	State      *vmc.State           `json:"state,omitempty"`
	Time       *vmc.Time            `json:"time,omitempty"`
}

func (f *frame) message() (vmc.Message, error) {
	switch f.Kind {
	case kindRoot:
		if f.Root != nil {
			return f.Root, nil
		}
	case kindBone:
		if f.Bone != nil {
			return f.Bone, nil
		}
	case kindDevice:
		if f.Device != nil {
			return f.Device, nil
		}
	case kindBlendShape:
		if f.BlendShape != nil {
			return f.BlendShape, nil
		}
	case kindApply:
		return vmc.ApplyBlendShapes{}, nil
	case kindState:
		if f.State != nil {
			return f.State, nil
		}
	case kindTime:
		if f.Time != nil {
			return *f.Time, nil
		}
	}

	return nil, fmt.Errorf("recording: malformed frame of kind %q", f.Kind)
}

func frameFor(elapsed float32, m vmc.Message) (frame, error) {
	f := frame{T: elapsed}
	switch m := m.(type) {
	case *vmc.RootTransform:
		f.Kind, f.Root = kindRoot, m
	case *vmc.BoneTransform:
		f.Kind, f.Bone = kindBone, m
	case *vmc.DeviceTransform:
		f.Kind, f.Device = kindDevice, m
	case *vmc.BlendShape:
		f.Kind, f.BlendShape = kindBlendShape, m
	case vmc.ApplyBlendShapes:
		f.Kind = kindApply
	case *vmc.State:
		f.Kind, f.State = kindState, m
	case vmc.Time:
		f.Kind, f.Time = kindTime, &m
	default:
		return frame{}, fmt.Errorf("recording: unsupported message type %T", m)
	}

	return f, nil
}

// Recorder writes a session to an underlying writer.  It is safe for
// concurrent use.
type Recorder struct {
	lock    sync.Mutex
	encoder *codec.Encoder
	epoch   *clock.Epoch
	session ksuid.KSUID
}

// NewRecorder starts a new session on the given writer, stamping frame
// times from the given clock.  A nil clock uses the system clock.  The
// session header is written immediately.
func NewRecorder(output io.Writer, c clock.Interface) (*Recorder, error) {
	if c == nil {
		c = clock.System()
	}

	r := &Recorder{
		encoder: NewEncoder(output),
		epoch:   clock.NewEpoch(c),
		session: ksuid.New(),
	}

	err := r.encoder.Encode(header{
		Version:   Version,
		Session:   r.session.String(),
		CreatedAt: r.epoch.Start().UTC(),
	})
	if err != nil {
		return nil, err
	}

	return r, nil
}

// Session returns the unique identifier of this recording session.
func (r *Recorder) Session() ksuid.KSUID {
	return r.session
}

// Record appends one message, stamped with the time elapsed since the
// recorder was created.
func (r *Recorder) Record(m vmc.Message) error {
	f, err := frameFor(r.epoch.ElapsedSeconds(), m)
	if err != nil {
		return err
	}

	r.lock.Lock()
	defer r.lock.Unlock()
	return r.encoder.Encode(f)
}

// RecordAll appends messages in order, all stamped with the same time.
func (r *Recorder) RecordAll(messages ...vmc.Message) error {
	elapsed := r.epoch.ElapsedSeconds()

	frames := make([]frame, 0, len(messages))
	for _, m := range messages {
		f, err := frameFor(elapsed, m)
		if err != nil {
			return err
		}
		frames = append(frames, f)
	}

	r.lock.Lock()
	defer r.lock.Unlock()
	for _, f := range frames {
		if err := r.encoder.Encode(f); err != nil {
			return err
		}
	}

	return nil
}

// Replayer reads back a session written by a Recorder.
type Replayer struct {
	decoder *codec.Decoder
	header  header
}

// NewReplayer opens a recording, reading and validating its header.
func NewReplayer(input io.Reader) (*Replayer, error) {
	r := &Replayer{decoder: NewDecoder(input)}
	if err := r.decoder.Decode(&r.header); err != nil {
		return nil, err
	}
	if r.header.Version > Version {
		return nil, ErrUnsupportedVersion
	}

	return r, nil
}

// Session returns the identifier of the recorded session.
func (r *Replayer) Session() string {
	return r.header.Session
}

// CreatedAt returns the wall-clock time the recording started.
func (r *Replayer) CreatedAt() time.Time {
	return r.header.CreatedAt
}

// Next returns the next recorded message and its offset in seconds from
// the start of the session.  It returns io.EOF when the recording is
// exhausted.
func (r *Replayer) Next() (float32, vmc.Message, error) {
	var f frame
	if err := r.decoder.Decode(&f); err != nil {
		return 0, nil, err
	}

	m, err := f.message()
	if err != nil {
		return 0, nil, err
	}

	return f.T, m, nil
}
