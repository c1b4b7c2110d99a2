package vmc

import (
	"github.com/pykeio/vmc/clock"
	"github.com/pykeio/vmc/osc"
)

// Addresses of the VMC messages this package understands.
const (
	AddressRootTransform   = "/VMC/Ext/Root/Pos"
	AddressBoneTransform   = "/VMC/Ext/Bone/Pos"
	AddressBlendShape      = "/VMC/Ext/Blend/Val"
	AddressApplyBlendShape = "/VMC/Ext/Blend/Apply"
	AddressState           = "/VMC/Ext/OK"
	AddressTime            = "/VMC/Ext/T"
)

// Message is implemented by every VMC message type in this package.
// OSC produces the wire representation; the result is freshly allocated
// on each call.
type Message interface {
	OSC() *osc.Message
	isMessage()
}

// RootTransform sets the model root's absolute position and rotation,
// and optionally scale and offset for mixed reality adjustment
// (/VMC/Ext/Root/Pos).
type RootTransform struct {
	Position Vec3  `json:"position"`
	Rotation Quat  `json:"rotation"`
	Scale    *Vec3 `json:"scale,omitempty"`
	Offset   *Vec3 `json:"offset,omitempty"`
}

// NewRootTransform creates a root transform with no scale or offset.
func NewRootTransform(position Vec3, rotation Quat) *RootTransform {
	return &RootTransform{Position: position, Rotation: rotation}
}

// NewRootTransformMR creates a root transform with the additional scale
// and offset parameters used to align the virtual avatar with the
// physical body.
func NewRootTransformMR(position Vec3, rotation Quat, scale, offset Vec3) *RootTransform {
	return &RootTransform{
		Position: position,
		Rotation: rotation,
		Scale:    &scale,
		Offset:   &offset,
	}
}

func (m *RootTransform) OSC() *osc.Message {
	args := make([]osc.Type, 0, 14)
	args = append(args,
		osc.String("root"),
		osc.Float(m.Position.X), osc.Float(m.Position.Y), osc.Float(m.Position.Z),
		osc.Float(m.Rotation.X), osc.Float(m.Rotation.Y), osc.Float(m.Rotation.Z), osc.Float(m.Rotation.W),
	)
	if m.Scale != nil && m.Offset != nil {
		args = append(args,
			osc.Float(m.Scale.X), osc.Float(m.Scale.Y), osc.Float(m.Scale.Z),
			osc.Float(m.Offset.X), osc.Float(m.Offset.Y), osc.Float(m.Offset.Z),
		)
	}
	return osc.NewMessage(AddressRootTransform, args...)
}

func (*RootTransform) isMessage() {}

// BoneTransform sets the position and rotation of a single humanoid bone,
// relative to its parent (/VMC/Ext/Bone/Pos).
type BoneTransform struct {
	Bone     StandardVRM0Bone `json:"bone"`
	Position Vec3             `json:"position"`
	Rotation Quat             `json:"rotation"`
}

// NewBoneTransform creates a bone transform message.
func NewBoneTransform(bone StandardVRM0Bone, position Vec3, rotation Quat) *BoneTransform {
	return &BoneTransform{Bone: bone, Position: position, Rotation: rotation}
}

func (m *BoneTransform) OSC() *osc.Message {
	return osc.NewMessage(AddressBoneTransform,
		osc.String(m.Bone.String()),
		osc.Float(m.Position.X), osc.Float(m.Position.Y), osc.Float(m.Position.Z),
		osc.Float(m.Rotation.X), osc.Float(m.Rotation.Y), osc.Float(m.Rotation.Z), osc.Float(m.Rotation.W),
	)
}

func (*BoneTransform) isMessage() {}

// DeviceTransform reports the pose of a physical tracking device
// (/VMC/Ext/{Hmd,Con,Tra}/Pos, with a /Local suffix when Local is set).
type DeviceTransform struct {
	Device DeviceType `json:"device"`

	// Joint is the device identifier, e.g. an OpenVR serial number.
	Joint string `json:"joint"`

	Position Vec3 `json:"position"`
	Rotation Quat `json:"rotation"`

	// Local selects raw device scale rather than avatar scale.
	Local bool `json:"local"`
}

// NewDeviceTransform creates a device transform message.
func NewDeviceTransform(device DeviceType, joint string, position Vec3, rotation Quat, local bool) *DeviceTransform {
	return &DeviceTransform{
		Device:   device,
		Joint:    joint,
		Position: position,
		Rotation: rotation,
		Local:    local,
	}
}

// deviceAddress builds the OSC address for a device transform.
func deviceAddress(device DeviceType, local bool) string {
	addr := "/VMC/Ext/" + device.String() + "/Pos"
	if local {
		addr += "/Local"
	}
	return addr
}

func (m *DeviceTransform) OSC() *osc.Message {
	return osc.NewMessage(deviceAddress(m.Device, m.Local),
		osc.String(m.Joint),
		osc.Float(m.Position.X), osc.Float(m.Position.Y), osc.Float(m.Position.Z),
		osc.Float(m.Rotation.X), osc.Float(m.Rotation.Y), osc.Float(m.Rotation.Z), osc.Float(m.Rotation.W),
	)
}

func (*DeviceTransform) isMessage() {}

// BlendShape sets the weight of a single blend shape clip
// (/VMC/Ext/Blend/Val).  Weights do not take effect until an
// ApplyBlendShapes message arrives.
//
// Key may be one of the StandardVRMBlendShape names or an
// application-specific clip name.
type BlendShape struct {
	Key   string  `json:"key"`
	Value float32 `json:"value"`
}

// NewBlendShape creates a blend shape message for a standard preset.
func NewBlendShape(shape StandardVRMBlendShape, value float32) *BlendShape {
	return &BlendShape{Key: shape.String(), Value: value}
}

// NewCustomBlendShape creates a blend shape message for an
// application-specific clip.
func NewCustomBlendShape(key string, value float32) *BlendShape {
	return &BlendShape{Key: key, Value: value}
}

func (m *BlendShape) OSC() *osc.Message {
	return osc.NewMessage(AddressBlendShape, osc.String(m.Key), osc.Float(m.Value))
}

func (*BlendShape) isMessage() {}

// ApplyBlendShapes commits all blend shape weights sent since the last
// apply (/VMC/Ext/Blend/Apply).
type ApplyBlendShapes struct{}

func (ApplyBlendShapes) OSC() *osc.Message {
	return osc.NewMessage(AddressApplyBlendShape)
}

func (ApplyBlendShapes) isMessage() {}

// State reports the performer's availability (/VMC/Ext/OK): model loading
// state, optionally calibration mode and progress, and optionally tracking
// quality.  Tracking is only transmitted when Calibration is also present.
type State struct {
	Model       ModelState     `json:"model"`
	Calibration *Calibration   `json:"calibration,omitempty"`
	Tracking    *TrackingState `json:"tracking,omitempty"`
}

// NewState creates a status message carrying only the model loading state.
func NewState(model ModelState) *State {
	return &State{Model: model}
}

// NewStateCalibration creates a status message carrying the model loading
// state and calibration mode and progress.
func NewStateCalibration(model ModelState, mode CalibrationMode, state CalibrationState) *State {
	return &State{
		Model:       model,
		Calibration: &Calibration{Mode: mode, State: state},
	}
}

// NewStateTracking creates a status message carrying model, calibration,
// and tracking status.
func NewStateTracking(model ModelState, mode CalibrationMode, state CalibrationState, tracking TrackingState) *State {
	return &State{
		Model:       model,
		Calibration: &Calibration{Mode: mode, State: state},
		Tracking:    &tracking,
	}
}

func (m *State) OSC() *osc.Message {
	args := make([]osc.Type, 0, 4)
	args = append(args, osc.Int(m.Model))
	if m.Calibration != nil {
		args = append(args, osc.Int(m.Calibration.State), osc.Int(m.Calibration.Mode))
		if m.Tracking != nil {
			args = append(args, osc.Int(*m.Tracking))
		}
	}
	return osc.NewMessage(AddressState, args...)
}

func (*State) isMessage() {}

// Time is a relative time marker in seconds (/VMC/Ext/T).  Performers send
// it at the end of every frame so marionettes can measure latency.
type Time float32

// NewTime creates a time message with an explicit timestamp.
func NewTime(seconds float32) Time {
	return Time(seconds)
}

// ElapsedTime creates a time message from the seconds elapsed on an epoch.
func ElapsedTime(epoch *clock.Epoch) Time {
	return Time(epoch.ElapsedSeconds())
}

func (m Time) OSC() *osc.Message {
	return osc.NewMessage(AddressTime, osc.Float(m))
}

func (Time) isMessage() {}
