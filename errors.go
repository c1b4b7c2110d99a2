package vmc

import (
	"fmt"
	"strings"

	"github.com/pykeio/vmc/osc"
)

// UnknownBoneError indicates a bone name outside the VRM 0.x set.
type UnknownBoneError struct {
	Bone string
}

func (e *UnknownBoneError) Error() string {
	return fmt.Sprintf("unknown bone: %q", e.Bone)
}

// UnknownBlendShapeError indicates a blend shape name outside the VRM 0.x
// preset set.
type UnknownBlendShapeError struct {
	BlendShape string
}

func (e *UnknownBlendShapeError) Error() string {
	return fmt.Sprintf("unknown blend shape: %q", e.BlendShape)
}

// UnknownDeviceTypeError indicates a device segment other than Hmd, Con,
// or Tra.
type UnknownDeviceTypeError struct {
	DeviceType string
}

func (e *UnknownDeviceTypeError) Error() string {
	return fmt.Sprintf("unknown device type: %q", e.DeviceType)
}

// UnknownModelStateError indicates an out-of-range model state integer.
type UnknownModelStateError struct {
	Value int32
}

func (e *UnknownModelStateError) Error() string {
	return fmt.Sprintf("unknown model state: %d", e.Value)
}

// UnknownCalibrationStateError indicates an out-of-range calibration state
// integer.
type UnknownCalibrationStateError struct {
	Value int32
}

func (e *UnknownCalibrationStateError) Error() string {
	return fmt.Sprintf("unknown calibration state: %d", e.Value)
}

// UnknownCalibrationModeError indicates an out-of-range calibration mode
// integer.
type UnknownCalibrationModeError struct {
	Value int32
}

func (e *UnknownCalibrationModeError) Error() string {
	return fmt.Sprintf("unknown calibration mode: %d", e.Value)
}

// UnknownTrackingStateError indicates an out-of-range tracking state
// integer.
type UnknownTrackingStateError struct {
	Value int32
}

func (e *UnknownTrackingStateError) Error() string {
	return fmt.Sprintf("unknown tracking state: %d", e.Value)
}

// UnimplementedMessageError is returned by Parse for messages whose address
// is recognized but whose argument shape matches no defined form, and for
// addresses outside the VMC vocabulary.  It carries the raw message so
// callers can route or log it.
type UnimplementedMessageError struct {
	Addr string
	Args []osc.Type
}

func (e *UnimplementedMessageError) Error() string {
	tags := make([]string, 0, len(e.Args))
	for _, arg := range e.Args {
		tags = append(tags, fmt.Sprintf("%T", arg))
	}
	return fmt.Sprintf("unimplemented message %s [%s]", e.Addr, strings.Join(tags, " "))
}
