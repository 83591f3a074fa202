package controls

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-orbit/common"
)

// orbitOffset converts s into a world-space offset from the target under the camera up vector.
func (oc *orbitControls) orbitOffset(s common.Spherical) mgl32.Vec3 {
	return oc.yAxisUpSpaceInverse.Rotate(s.Vec3())
}

// composePose writes the current orbit, target and focal offset into the camera.
func (oc *orbitControls) composePose() {
	offset := oc.orbitOffset(oc.spherical)
	position := oc.target.Add(offset)
	oc.camera.SetPosition(position)
	oc.camera.LookAt(oc.target)

	if !common.ApproxZeroVec3(oc.focalOffset, common.Epsilon) {
		world := oc.camera.WorldMatrix()
		// +y moves the camera down so content moves up; z has no visible effect on orthographic cameras
		shift := world.Col(0).Vec3().Mul(oc.focalOffset.X()).
			Add(world.Col(1).Vec3().Mul(-oc.focalOffset.Y())).
			Add(world.Col(2).Vec3().Mul(oc.focalOffset.Z()))
		oc.camera.SetPosition(position.Add(shift))
	}

	if oc.config.BoundaryEnclosesCamera {
		oc.camera.SetPosition(oc.encloseToBoundary(oc.target, offset, 1))
	}
}

// encloseToBoundary returns position moved by offset, with the part of the move that
// leaves the boundary removed. friction in (0, 1] trades sliding along the boundary for
// shortening the whole move; 0 slides freely.
func (oc *orbitControls) encloseToBoundary(position, offset mgl32.Vec3, friction float32) mgl32.Vec3 {
	offsetLengthSq := offset.Dot(offset)
	if offsetLengthSq == 0 {
		return position
	}

	newTarget := position.Add(offset)
	deltaClamped := oc.boundary.ClampPoint(newTarget).Sub(newTarget)
	deltaClampedLengthSq := deltaClamped.Dot(deltaClamped)

	switch {
	case deltaClampedLengthSq == 0:
		return newTarget
	case deltaClampedLengthSq == offsetLengthSq:
		return position
	case friction == 0:
		return newTarget.Add(deltaClamped)
	default:
		offsetFactor := 1 + friction*deltaClampedLengthSq/offset.Dot(deltaClamped)
		return position.Add(offset.Mul(offsetFactor)).Add(deltaClamped.Mul(1 - friction))
	}
}
