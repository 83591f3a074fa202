package controls

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-orbit/common"
)

// dollyStep is the per-unit scale of DollyAt and ZoomAt gestures.
const dollyStep float32 = 0.95

func (oc *orbitControls) RotateTo(theta, phi float32) {
	oc.sphericalEnd.Theta = common.Clamp(theta, oc.config.MinAzimuthAngle, oc.config.MaxAzimuthAngle)
	oc.sphericalEnd.Phi = common.Clamp(phi, oc.config.MinPolarAngle, oc.config.MaxPolarAngle)
	oc.sphericalEnd.MakeSafe()
}

func (oc *orbitControls) Rotate(deltaTheta, deltaPhi float32) {
	oc.RotateTo(oc.sphericalEnd.Theta+deltaTheta, oc.sphericalEnd.Phi+deltaPhi)
}

func (oc *orbitControls) DollyTo(distance float32) {
	oc.sphericalEnd.Radius = common.Clamp(distance, oc.config.MinDistance, oc.config.MaxDistance)
}

func (oc *orbitControls) Dolly(amount float32) {
	oc.DollyTo(oc.sphericalEnd.Radius - amount)
}

func (oc *orbitControls) DollyAt(delta, ndcX, ndcY float32) {
	cfg := oc.config
	lastDistance := oc.sphericalEnd.Radius
	distance := lastDistance * math32.Pow(dollyStep, -delta*cfg.DollySpeed)
	clampedDistance := common.Clamp(distance, cfg.MinDistance, cfg.MaxDistance)

	switch {
	case cfg.InfinityDolly && cfg.DollyToCursor:
		oc.sphericalEnd.Radius = distance
	case cfg.InfinityDolly:
		// push the target through by whatever the limits swallowed
		oc.targetEnd = oc.targetEnd.Add(oc.cameraDirection().Mul(clampedDistance - distance))
		oc.sphericalEnd.Radius = clampedDistance
	default:
		oc.sphericalEnd.Radius = clampedDistance
	}

	if cfg.DollyToCursor {
		if cfg.InfinityDolly {
			oc.changedDolly += distance - lastDistance
		} else {
			oc.changedDolly += clampedDistance - lastDistance
		}
		oc.dollyControlCoord = mgl32.Vec2{ndcX, ndcY}
	}
	switch {
	case delta < 0:
		oc.lastDollyDirection = dollyIn
	case delta > 0:
		oc.lastDollyDirection = dollyOut
	default:
		oc.lastDollyDirection = dollyNone
	}
}

func (oc *orbitControls) ZoomTo(zoom float32) {
	oc.zoomEnd = common.Clamp(zoom, oc.config.MinZoom, oc.config.MaxZoom)
}

func (oc *orbitControls) ZoomAt(delta, ndcX, ndcY float32) {
	prevZoomEnd := oc.zoomEnd
	oc.ZoomTo(oc.zoom * math32.Pow(dollyStep, delta*oc.config.DollySpeed))
	if oc.config.DollyToCursor {
		oc.changedZoom += oc.zoomEnd - prevZoomEnd
		oc.dollyControlCoord = mgl32.Vec2{ndcX, ndcY}
	}
}

func (oc *orbitControls) MoveTo(point mgl32.Vec3) {
	oc.targetEnd = oc.encloseToBoundary(oc.targetEnd, point.Sub(oc.targetEnd), oc.config.BoundaryFriction)
}

func (oc *orbitControls) Truck(x, y float32) {
	world := oc.camera.WorldMatrix()
	offset := world.Col(0).Vec3().Mul(x).Add(world.Col(1).Vec3().Mul(-y))
	oc.targetEnd = oc.encloseToBoundary(oc.targetEnd, offset, oc.config.BoundaryFriction)
}

func (oc *orbitControls) SetTarget(point mgl32.Vec3) {
	position := oc.targetEnd.Add(oc.orbitOffset(oc.sphericalEnd))
	oc.SetLookAt(position, point)
}

func (oc *orbitControls) SetFocalOffset(x, y, z float32) {
	oc.focalOffsetEnd = mgl32.Vec3{x, y, z}
}

func (oc *orbitControls) SetLookAt(position, target mgl32.Vec3) {
	oc.targetEnd = oc.boundary.ClampPoint(target)
	s := common.SphericalFromVec3(oc.yAxisUpSpace.Rotate(position.Sub(oc.targetEnd)))
	oc.RotateTo(s.Theta, s.Phi)
	oc.DollyTo(s.Radius)
}

func (oc *orbitControls) SetUserControlling(flags MotionFlags) {
	oc.flags = flags
}

func (oc *orbitControls) UserControlling() MotionFlags {
	return oc.flags
}

func (oc *orbitControls) Reset() {
	oc.spherical = oc.sphericalEnd
	oc.target = oc.targetEnd
	oc.focalOffset = oc.focalOffsetEnd
	oc.zoom = oc.zoomEnd
	oc.velocity.Zero()
	oc.changedDolly = 0
	oc.changedZoom = 0
	oc.needsUpdate = true
}

func (oc *orbitControls) Stop() {
	oc.sphericalEnd = oc.spherical
	oc.targetEnd = oc.target
	oc.focalOffsetEnd = oc.focalOffset
	oc.zoomEnd = oc.zoom
	oc.velocity.Zero()
	oc.changedDolly = 0
	oc.changedZoom = 0
}

func (oc *orbitControls) NormalizeRotations() {
	const fullTurn = 2 * math.Pi
	theta := math.Mod(float64(oc.sphericalEnd.Theta), fullTurn)
	if theta < 0 {
		theta += fullTurn
	}
	oc.sphericalEnd.Theta = float32(theta)
	turns := math.Round((theta - float64(oc.spherical.Theta)) / fullTurn)
	oc.spherical.Theta += float32(fullTurn * turns)
}

func (oc *orbitControls) UpdateCameraUp() {
	oc.yAxisUpSpace = mgl32.QuatBetweenVectors(oc.camera.Up(), common.AxisY)
	oc.yAxisUpSpaceInverse = oc.yAxisUpSpace.Inverse()
}

// clampEnd pulls every end value back inside the configured limits.
func (oc *orbitControls) clampEnd() {
	oc.RotateTo(oc.sphericalEnd.Theta, oc.sphericalEnd.Phi)
	if !oc.config.InfinityDolly {
		oc.DollyTo(oc.sphericalEnd.Radius)
	}
	oc.ZoomTo(oc.zoomEnd)
}
