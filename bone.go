package vmc

// StandardVRM0Bone enumerates the humanoid bones defined by VRM 0.x.
//
// https://github.com/vrm-c/vrm-specification/blob/master/specification/0.0/README.md#defined-bones
type StandardVRM0Bone int

const (
	BoneHips StandardVRM0Bone = iota
	BoneLeftUpperLeg
	BoneRightUpperLeg
	BoneLeftLowerLeg
	BoneRightLowerLeg
	BoneLeftFoot
	BoneRightFoot
	BonePelvis
	BoneSpine
	BoneChest
	BoneUpperChest
	BoneNeck
	BoneHead
	BoneLeftShoulder
	BoneRightShoulder
	BoneLeftUpperArm
	BoneRightUpperArm
	BoneLeftLowerArm
	BoneRightLowerArm
	BoneLeftHand
	BoneRightHand
	BoneLeftToes
	BoneRightToes
	BoneLeftEye
	BoneRightEye
	BoneJaw
	BoneLeftThumbProximal
	BoneLeftThumbIntermediate
	BoneLeftThumbDistal
	BoneLeftIndexProximal
	BoneLeftIndexIntermediate
	BoneLeftIndexDistal
	BoneLeftMiddleProximal
	BoneLeftMiddleIntermediate
	BoneLeftMiddleDistal
	BoneLeftRingProximal
	BoneLeftRingIntermediate
	BoneLeftRingDistal
	BoneLeftLittleProximal
	BoneLeftLittleIntermediate
	BoneLeftLittleDistal
	BoneRightThumbProximal
	BoneRightThumbIntermediate
	BoneRightThumbDistal
	BoneRightIndexProximal
	BoneRightIndexIntermediate
	BoneRightIndexDistal
	BoneRightMiddleProximal
	BoneRightMiddleIntermediate
	BoneRightMiddleDistal
	BoneRightRingProximal
	BoneRightRingIntermediate
	BoneRightRingDistal
	BoneRightLittleProximal
	BoneRightLittleIntermediate
	BoneRightLittleDistal
	lastBone
)

// InvalidBoneString is returned by String for values outside the
// enumeration.  It never appears on the wire.
const InvalidBoneString = "!!INVALID!!"

var boneNames = [...]string{
	BoneHips:                    "Hips",
	BoneLeftUpperLeg:            "LeftUpperLeg",
	BoneRightUpperLeg:           "RightUpperLeg",
	BoneLeftLowerLeg:            "LeftLowerLeg",
	BoneRightLowerLeg:           "RightLowerLeg",
	BoneLeftFoot:                "LeftFoot",
	BoneRightFoot:               "RightFoot",
	BonePelvis:                  "Pelvis",
	BoneSpine:                   "Spine",
	BoneChest:                   "Chest",
	BoneUpperChest:              "UpperChest",
	BoneNeck:                    "Neck",
	BoneHead:                    "Head",
	BoneLeftShoulder:            "LeftShoulder",
	BoneRightShoulder:           "RightShoulder",
	BoneLeftUpperArm:            "LeftUpperArm",
	BoneRightUpperArm:           "RightUpperArm",
	BoneLeftLowerArm:            "LeftLowerArm",
	BoneRightLowerArm:           "RightLowerArm",
	BoneLeftHand:                "LeftHand",
	BoneRightHand:               "RightHand",
	BoneLeftToes:                "LeftToes",
	BoneRightToes:               "RightToes",
	BoneLeftEye:                 "LeftEye",
	BoneRightEye:                "RightEye",
	BoneJaw:                     "Jaw",
	BoneLeftThumbProximal:       "LeftThumbProximal",
	BoneLeftThumbIntermediate:   "LeftThumbIntermediate",
	BoneLeftThumbDistal:         "LeftThumbDistal",
	BoneLeftIndexProximal:       "LeftIndexProximal",
	BoneLeftIndexIntermediate:   "LeftIndexIntermediate",
	BoneLeftIndexDistal:         "LeftIndexDistal",
	BoneLeftMiddleProximal:      "LeftMiddleProximal",
	BoneLeftMiddleIntermediate:  "LeftMiddleIntermediate",
	BoneLeftMiddleDistal:        "LeftMiddleDistal",
	BoneLeftRingProximal:        "LeftRingProximal",
	BoneLeftRingIntermediate:    "LeftRingIntermediate",
	BoneLeftRingDistal:          "LeftRingDistal",
	BoneLeftLittleProximal:      "LeftLittleProximal",
	BoneLeftLittleIntermediate:  "LeftLittleIntermediate",
	BoneLeftLittleDistal:        "LeftLittleDistal",
	BoneRightThumbProximal:      "RightThumbProximal",
	BoneRightThumbIntermediate:  "RightThumbIntermediate",
	BoneRightThumbDistal:        "RightThumbDistal",
	BoneRightIndexProximal:      "RightIndexProximal",
	BoneRightIndexIntermediate:  "RightIndexIntermediate",
	BoneRightIndexDistal:        "RightIndexDistal",
	BoneRightMiddleProximal:     "RightMiddleProximal",
	BoneRightMiddleIntermediate: "RightMiddleIntermediate",
	BoneRightMiddleDistal:       "RightMiddleDistal",
	BoneRightRingProximal:       "RightRingProximal",
	BoneRightRingIntermediate:   "RightRingIntermediate",
	BoneRightRingDistal:         "RightRingDistal",
	BoneRightLittleProximal:     "RightLittleProximal",
	BoneRightLittleIntermediate: "RightLittleIntermediate",
	BoneRightLittleDistal:       "RightLittleDistal",
}

// stringToBone maps bone names, exactly as they appear on the wire, back
// to enumeration values.
var stringToBone map[string]StandardVRM0Bone

func init() {
	stringToBone = make(map[string]StandardVRM0Bone, lastBone)
	for b := BoneHips; b < lastBone; b++ {
		stringToBone[boneNames[b]] = b
	}
}

func (b StandardVRM0Bone) String() string {
	if b < 0 || b >= lastBone {
		return InvalidBoneString
	}
	return boneNames[b]
}

// ParseBone converts a wire bone name into an enumerated bone.  Bone names
// outside the VRM 0.x set fail with an UnknownBoneError carrying the raw
// string.
func ParseBone(value string) (StandardVRM0Bone, error) {
	b, ok := stringToBone[value]
	if !ok {
		return StandardVRM0Bone(-1), &UnknownBoneError{Bone: value}
	}
	return b, nil
}
