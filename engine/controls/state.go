package controls

import "github.com/go-gl/mathgl/mgl32"

// DampingState holds one persistent velocity per smoothed quantity.
// It is owned by the controls, carried across frames, and written only by the
// damping step or zeroed when a quantity snaps to its end value.
type DampingState struct {
	Theta       float32
	Phi         float32
	Radius      float32
	Target      mgl32.Vec3
	FocalOffset mgl32.Vec3
	Zoom        float32
}

// Zero clears every velocity.
func (d *DampingState) Zero() {
	*d = DampingState{}
}

// MotionFlags selects, per axis group, whether the user is actively driving it.
// A set flag switches that group to Config.DraggingSmoothTime.
type MotionFlags struct {
	Rotate bool
	Dolly  bool
	Truck  bool
	Offset bool
	Zoom   bool
}

// Pose is a snapshot of what a renderer needs from the controls after a frame.
type Pose struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	Zoom     float32
}

type dollyDirection int8

const (
	dollyNone dollyDirection = 0
	dollyIn   dollyDirection = 1
	dollyOut  dollyDirection = -1
)
