package vmc

// DeviceType identifies the kind of tracking device reported by a
// DeviceTransform message.
type DeviceType int

const (
	// DeviceHMD is a head-mounted display.
	DeviceHMD DeviceType = iota

	// DeviceController is a hand controller.
	DeviceController

	// DeviceTracker is a generic tracking puck.
	DeviceTracker
)

var deviceTypeNames = [...]string{
	DeviceHMD:        "Hmd",
	DeviceController: "Con",
	DeviceTracker:    "Tra",
}

func (d DeviceType) String() string {
	if d < 0 || int(d) >= len(deviceTypeNames) {
		return InvalidBoneString
	}
	return deviceTypeNames[d]
}

// ParseDeviceType converts the device segment of a VMC address ("Hmd",
// "Con", or "Tra") into a DeviceType.
func ParseDeviceType(value string) (DeviceType, error) {
	switch value {
	case "Hmd":
		return DeviceHMD, nil
	case "Con":
		return DeviceController, nil
	case "Tra":
		return DeviceTracker, nil
	default:
		return DeviceType(-1), &UnknownDeviceTypeError{DeviceType: value}
	}
}
