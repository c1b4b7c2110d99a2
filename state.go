package vmc

// ModelState reports whether the performer has a model loaded.
type ModelState int

const (
	ModelNotLoaded ModelState = iota
	ModelLoaded
)

var modelStateNames = [...]string{
	ModelNotLoaded: "NotLoaded",
	ModelLoaded:    "Loaded",
}

func (s ModelState) String() string {
	if s < 0 || int(s) >= len(modelStateNames) {
		return InvalidBoneString
	}
	return modelStateNames[s]
}

// ModelStateFromInt validates a wire integer as a ModelState.
func ModelStateFromInt(value int32) (ModelState, error) {
	if value < 0 || value > 1 {
		return ModelState(-1), &UnknownModelStateError{Value: value}
	}
	return ModelState(value), nil
}

// CalibrationState reports the performer's calibration progress.
type CalibrationState int

const (
	Uncalibrated CalibrationState = iota
	WaitingForCalibration
	Calibrating
	Calibrated
)

var calibrationStateNames = [...]string{
	Uncalibrated:          "Uncalibrated",
	WaitingForCalibration: "WaitingForCalibration",
	Calibrating:           "Calibrating",
	Calibrated:            "Calibrated",
}

func (s CalibrationState) String() string {
	if s < 0 || int(s) >= len(calibrationStateNames) {
		return InvalidBoneString
	}
	return calibrationStateNames[s]
}

// CalibrationStateFromInt validates a wire integer as a CalibrationState.
func CalibrationStateFromInt(value int32) (CalibrationState, error) {
	if value < 0 || value > 3 {
		return CalibrationState(-1), &UnknownCalibrationStateError{Value: value}
	}
	return CalibrationState(value), nil
}

// CalibrationMode reports how the performer was calibrated.
type CalibrationMode int

const (
	CalibrationModeNormal CalibrationMode = iota
	CalibrationModeMixedRealityHand
	CalibrationModeMixedRealityFloor
)

var calibrationModeNames = [...]string{
	CalibrationModeNormal:            "Normal",
	CalibrationModeMixedRealityHand:  "MixedRealityHand",
	CalibrationModeMixedRealityFloor: "MixedRealityFloor",
}

func (m CalibrationMode) String() string {
	if m < 0 || int(m) >= len(calibrationModeNames) {
		return InvalidBoneString
	}
	return calibrationModeNames[m]
}

// CalibrationModeFromInt validates a wire integer as a CalibrationMode.
func CalibrationModeFromInt(value int32) (CalibrationMode, error) {
	if value < 0 || value > 2 {
		return CalibrationMode(-1), &UnknownCalibrationModeError{Value: value}
	}
	return CalibrationMode(value), nil
}

// TrackingState reports the quality of the performer's tracking.
type TrackingState int

const (
	TrackingPoor TrackingState = iota
	TrackingGood
)

var trackingStateNames = [...]string{
	TrackingPoor: "Poor",
	TrackingGood: "Good",
}

func (s TrackingState) String() string {
	if s < 0 || int(s) >= len(trackingStateNames) {
		return InvalidBoneString
	}
	return trackingStateNames[s]
}

// TrackingStateFromInt validates a wire integer as a TrackingState.
func TrackingStateFromInt(value int32) (TrackingState, error) {
	if value < 0 || value > 1 {
		return TrackingState(-1), &UnknownTrackingStateError{Value: value}
	}
	return TrackingState(value), nil
}

// Calibration pairs a calibration mode with its progress state, as carried
// by the three-argument form of the availability message.
type Calibration struct {
	Mode  CalibrationMode  `json:"mode"`
	State CalibrationState `json:"state"`
}
