package vmc

import (
	"github.com/pykeio/vmc/osc"
)

// Flatten collapses a packet into its messages, depth first.  Bundle time
// tags are discarded; VMC treats all content as immediate.
func Flatten(packet osc.Packet) []*osc.Message {
	switch p := packet.(type) {
	case *osc.Message:
		return []*osc.Message{p}
	case *osc.Bundle:
		var messages []*osc.Message
		for _, element := range p.Content {
			messages = append(messages, Flatten(element)...)
		}
		return messages
	default:
		return nil
	}
}

// Parse flattens a packet and converts each contained message into its
// VMC representation, preserving order.  It fails on the first message
// that is not valid VMC; messages with a recognized address but an
// undefined argument shape, and messages outside the VMC vocabulary,
// produce an UnimplementedMessageError.
func Parse(packet osc.Packet) ([]Message, error) {
	flat := Flatten(packet)
	parsed := make([]Message, 0, len(flat))
	for _, msg := range flat {
		m, err := ParseMessage(msg)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, m)
	}
	return parsed, nil
}

// ParseMessage converts a single OSC message into its VMC representation.
func ParseMessage(msg *osc.Message) (Message, error) {
	switch msg.Addr {
	case AddressRootTransform:
		if _, f, ok := stringFloats(msg.Args, 7, true); ok {
			return NewRootTransform(
				Vec3{f[0], f[1], f[2]},
				Quat{f[3], f[4], f[5], f[6]},
			), nil
		}
		if _, f, ok := stringFloats(msg.Args, 13, false); ok {
			return NewRootTransformMR(
				Vec3{f[0], f[1], f[2]},
				Quat{f[3], f[4], f[5], f[6]},
				Vec3{f[7], f[8], f[9]},
				Vec3{f[10], f[11], f[12]},
			), nil
		}
	case AddressBoneTransform:
		if name, f, ok := stringFloats(msg.Args, 7, true); ok {
			bone, err := ParseBone(name)
			if err != nil {
				return nil, err
			}
			return NewBoneTransform(bone,
				Vec3{f[0], f[1], f[2]},
				Quat{f[3], f[4], f[5], f[6]},
			), nil
		}
	case "/VMC/Ext/Hmd/Pos", "/VMC/Ext/Con/Pos", "/VMC/Ext/Tra/Pos":
		if joint, f, ok := stringFloats(msg.Args, 7, false); ok {
			device, err := ParseDeviceType(msg.Addr[len("/VMC/Ext/") : len("/VMC/Ext/")+3])
			if err != nil {
				return nil, err
			}
			return NewDeviceTransform(device, joint,
				Vec3{f[0], f[1], f[2]},
				Quat{f[3], f[4], f[5], f[6]},
				false,
			), nil
		}
	case "/VMC/Ext/Hmd/Pos/Local", "/VMC/Ext/Con/Pos/Local", "/VMC/Ext/Tra/Pos/Local":
		if joint, f, ok := stringFloats(msg.Args, 7, false); ok {
			device, err := ParseDeviceType(msg.Addr[len("/VMC/Ext/") : len("/VMC/Ext/")+3])
			if err != nil {
				return nil, err
			}
			return NewDeviceTransform(device, joint,
				Vec3{f[0], f[1], f[2]},
				Quat{f[3], f[4], f[5], f[6]},
				true,
			), nil
		}
	case AddressBlendShape:
		if key, f, ok := stringFloats(msg.Args, 1, false); ok {
			return NewCustomBlendShape(key, f[0]), nil
		}
	case AddressApplyBlendShape:
		return ApplyBlendShapes{}, nil
	case AddressState:
		if v, ok := ints(msg.Args, 1, true); ok {
			model, err := ModelStateFromInt(v[0])
			if err != nil {
				return nil, err
			}
			return NewState(model), nil
		}
		if v, ok := ints(msg.Args, 3, true); ok {
			return parseStateCalibration(v[0], v[1], v[2], nil)
		}
		if v, ok := ints(msg.Args, 4, false); ok {
			return parseStateCalibration(v[0], v[1], v[2], &v[3])
		}
	case AddressTime:
		if len(msg.Args) >= 1 {
			if t, ok := msg.Args[0].(osc.Float); ok {
				return NewTime(float32(t)), nil
			}
		}
	}
	return nil, &UnimplementedMessageError{Addr: msg.Addr, Args: msg.Args}
}

// parseStateCalibration validates the integer arguments of a three- or
// four-argument availability message.  The wire order is model state,
// calibration state, calibration mode, then tracking state.
func parseStateCalibration(model, calState, calMode int32, tracking *int32) (Message, error) {
	m, err := ModelStateFromInt(model)
	if err != nil {
		return nil, err
	}
	cs, err := CalibrationStateFromInt(calState)
	if err != nil {
		return nil, err
	}
	cm, err := CalibrationModeFromInt(calMode)
	if err != nil {
		return nil, err
	}
	if tracking == nil {
		return NewStateCalibration(m, cm, cs), nil
	}
	ts, err := TrackingStateFromInt(*tracking)
	if err != nil {
		return nil, err
	}
	return NewStateTracking(m, cm, cs, ts), nil
}

// stringFloats matches arguments of the form [string, float × n].  When
// exact is set, trailing arguments beyond the pattern reject the match;
// otherwise they are ignored.
func stringFloats(args []osc.Type, n int, exact bool) (string, []float32, bool) {
	if len(args) < n+1 || (exact && len(args) != n+1) {
		return "", nil, false
	}
	s, ok := args[0].(osc.String)
	if !ok {
		return "", nil, false
	}
	floats := make([]float32, n)
	for i := 0; i < n; i++ {
		f, ok := args[i+1].(osc.Float)
		if !ok {
			return "", nil, false
		}
		floats[i] = float32(f)
	}
	return string(s), floats, true
}

// ints matches arguments of the form [int32 × n], with the same exactness
// rule as stringFloats.
func ints(args []osc.Type, n int, exact bool) ([]int32, bool) {
	if len(args) < n || (exact && len(args) != n) {
		return nil, false
	}
	values := make([]int32, n)
	for i := 0; i < n; i++ {
		v, ok := args[i].(osc.Int)
		if !ok {
			return nil, false
		}
		values[i] = int32(v)
	}
	return values, true
}
