package vmc

// StandardVRMBlendShape enumerates the preset blend shapes defined by
// VRM 0.x.  Applications may also exchange custom clips, which travel as
// plain strings; see BlendShape.
type StandardVRMBlendShape int

const (
	BlendShapeNeutral StandardVRMBlendShape = iota
	BlendShapeA
	BlendShapeI
	BlendShapeU
	BlendShapeE
	BlendShapeO
	BlendShapeBlink
	BlendShapeJoy
	BlendShapeAngry
	BlendShapeSorrow
	BlendShapeFun
	BlendShapeLookUp
	BlendShapeLookDown
	BlendShapeLookLeft
	BlendShapeLookRight
	BlendShapeBlinkL
	BlendShapeBlinkR
	lastBlendShape
)

var blendShapeNames = [...]string{
	BlendShapeNeutral:   "Neutral",
	BlendShapeA:         "A",
	BlendShapeI:         "I",
	BlendShapeU:         "U",
	BlendShapeE:         "E",
	BlendShapeO:         "O",
	BlendShapeBlink:     "Blink",
	BlendShapeJoy:       "Joy",
	BlendShapeAngry:     "Angry",
	BlendShapeSorrow:    "Sorrow",
	BlendShapeFun:       "Fun",
	BlendShapeLookUp:    "LookUp",
	BlendShapeLookDown:  "LookDown",
	BlendShapeLookLeft:  "LookLeft",
	BlendShapeLookRight: "LookRight",
	BlendShapeBlinkL:    "Blink_L",
	BlendShapeBlinkR:    "Blink_R",
}

var stringToBlendShape map[string]StandardVRMBlendShape

func init() {
	stringToBlendShape = make(map[string]StandardVRMBlendShape, lastBlendShape)
	for s := BlendShapeNeutral; s < lastBlendShape; s++ {
		stringToBlendShape[blendShapeNames[s]] = s
	}
}

func (s StandardVRMBlendShape) String() string {
	if s < 0 || s >= lastBlendShape {
		return InvalidBoneString
	}
	return blendShapeNames[s]
}

// ParseBlendShape converts a wire blend shape name into one of the VRM 0.x
// presets.  Custom clips fail with an UnknownBlendShapeError; callers that
// accept custom clips should keep the raw string instead.
func ParseBlendShape(value string) (StandardVRMBlendShape, error) {
	s, ok := stringToBlendShape[value]
	if !ok {
		return StandardVRMBlendShape(-1), &UnknownBlendShapeError{BlendShape: value}
	}
	return s, nil
}
