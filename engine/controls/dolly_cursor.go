package controls

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-orbit/common"
)

// cameraDirection returns the unit vector the camera looks along, taken from its
// orientation as of the last composed pose.
func (oc *orbitControls) cameraDirection() mgl32.Vec3 {
	back := oc.camera.WorldMatrix().Col(2).Vec3()
	return common.SafeNormalize(back, mgl32.Vec3{0, 0, 1}).Mul(-1)
}

// dollyToCursorPerspective moves the end target toward the cursor's world point by the
// fraction of distance consumed this frame, so the point under the cursor stays put.
func (oc *orbitControls) dollyToCursorPerspective() {
	dollyControlAmount := oc.spherical.Radius - oc.lastDistance
	direction := oc.cameraDirection()

	planeX := common.SafeNormalize(direction.Cross(oc.camera.Up()), mgl32.Vec3{1, 0, 0})
	planeY := planeX.Cross(direction)

	endRadius := oc.sphericalEnd.Radius
	worldToScreen := endRadius * math32.Tan(oc.camera.EffectiveFov()*0.5)
	prevRadius := endRadius - dollyControlAmount
	lerpRatio := (prevRadius - endRadius) / endRadius

	aspect := oc.camera.Projection().Aspect()
	cursor := oc.targetEnd.
		Add(planeX.Mul(oc.dollyControlCoord.X() * worldToScreen * aspect)).
		Add(planeY.Mul(oc.dollyControlCoord.Y() * worldToScreen))
	newTargetEnd := common.Lerp3(oc.targetEnd, cursor, lerpRatio)

	isMin := oc.lastDollyDirection == dollyIn && oc.spherical.Radius <= oc.config.MinDistance
	isMax := oc.lastDollyDirection == dollyOut && oc.config.MaxDistance <= oc.spherical.Radius
	if oc.config.InfinityDolly && (isMin || isMax) {
		oc.sphericalEnd.Radius -= dollyControlAmount
		oc.spherical.Radius -= dollyControlAmount
		newTargetEnd = newTargetEnd.Add(direction.Mul(-dollyControlAmount))
	}

	oc.commitTargetEnd(newTargetEnd)
	oc.changedDolly -= dollyControlAmount
	if common.ApproxZero(oc.changedDolly, common.Epsilon*math32.Max(1, oc.sphericalEnd.Radius)) {
		oc.changedDolly = 0
	}
}

// zoomToCursorOrthographic moves the end target toward the cursor within the plane
// through the end target facing the camera, so the point under the cursor stays put
// while the view scale changes.
func (oc *orbitControls) zoomToCursorOrthographic() {
	dollyControlAmount := oc.zoom - oc.lastZoom
	projection := oc.camera.Projection()
	direction := oc.cameraDirection()

	world := oc.camera.Unproject(mgl32.Vec3{
		oc.dollyControlCoord.X(),
		oc.dollyControlCoord.Y(),
		(projection.Near + projection.Far) / (projection.Near - projection.Far),
	})
	cursor := common.PlaneFromNormalAndPoint(direction, oc.targetEnd).ProjectPoint(world)

	prevZoom := oc.zoom - dollyControlAmount
	lerpRatio := -(prevZoom - oc.zoom) / oc.zoom

	prevPlaneConstant := oc.targetEnd.Dot(direction)
	newTargetEnd := common.Lerp3(oc.targetEnd, cursor, lerpRatio)
	newPlaneConstant := newTargetEnd.Dot(direction)
	// pull back whatever depth the lerp introduced; zoom changes scale, not position
	newTargetEnd = newTargetEnd.Sub(direction.Mul(newPlaneConstant - prevPlaneConstant))

	oc.commitTargetEnd(newTargetEnd)
	oc.changedZoom -= dollyControlAmount
	if common.ApproxZero(oc.changedZoom, common.Epsilon*math32.Max(1, oc.zoomEnd)) {
		oc.changedZoom = 0
	}
}

// commitTargetEnd clamps newTargetEnd into the boundary and moves the current target by
// the same amount as the end target so the smoothed motion stays continuous.
func (oc *orbitControls) commitTargetEnd(newTargetEnd mgl32.Vec3) {
	newTargetEnd = oc.boundary.ClampPoint(newTargetEnd)
	diff := newTargetEnd.Sub(oc.targetEnd)
	oc.targetEnd = newTargetEnd
	oc.target = oc.target.Add(diff)
}
