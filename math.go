package vmc

// Vec3 is a three-component vector in Unity's left-handed, Y-up coordinate
// system, matching what VMC applications put on the wire.
type Vec3 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Quat is a rotation quaternion.  Values are transmitted as-is; no
// normalization is applied on either side of the wire.
type Quat struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
	W float32 `json:"w"`
}

// QuatIdentity is the identity rotation.
var QuatIdentity = Quat{W: 1}
