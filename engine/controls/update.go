package controls

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/damping"
)

func (oc *orbitControls) Update(delta float32) bool {
	cfg := oc.config

	deltaTheta := oc.sphericalEnd.Theta - oc.spherical.Theta
	deltaPhi := oc.sphericalEnd.Phi - oc.spherical.Phi
	deltaRadius := oc.sphericalEnd.Radius - oc.spherical.Radius
	deltaTarget := oc.targetEnd.Sub(oc.target)
	deltaOffset := oc.focalOffsetEnd.Sub(oc.focalOffset)
	deltaZoom := oc.zoomEnd - oc.zoom

	rotateTime := cfg.smoothTimeFor(oc.flags.Rotate)
	var moved bool
	oc.spherical.Theta, moved = approach(oc.spherical.Theta, oc.sphericalEnd.Theta, &oc.velocity.Theta, rotateTime, damping.Unbounded, delta)
	oc.needsUpdate = oc.needsUpdate || moved
	oc.spherical.Phi, moved = approach(oc.spherical.Phi, oc.sphericalEnd.Phi, &oc.velocity.Phi, rotateTime, damping.Unbounded, delta)
	oc.needsUpdate = oc.needsUpdate || moved
	oc.spherical.Radius, moved = approach(oc.spherical.Radius, oc.sphericalEnd.Radius, &oc.velocity.Radius, cfg.smoothTimeFor(oc.flags.Dolly), cfg.MaxSpeed, delta)
	oc.needsUpdate = oc.needsUpdate || moved
	oc.target, moved = approachVec3(oc.target, oc.targetEnd, &oc.velocity.Target, cfg.smoothTimeFor(oc.flags.Truck), cfg.MaxSpeed, delta)
	oc.needsUpdate = oc.needsUpdate || moved
	oc.focalOffset, moved = approachVec3(oc.focalOffset, oc.focalOffsetEnd, &oc.velocity.FocalOffset, cfg.smoothTimeFor(oc.flags.Offset), cfg.MaxSpeed, delta)
	oc.needsUpdate = oc.needsUpdate || moved
	// zoom is visible only once it reaches the camera below
	oc.zoom, _ = approach(oc.zoom, oc.zoomEnd, &oc.velocity.Zoom, cfg.smoothTimeFor(oc.flags.Zoom), damping.Unbounded, delta)

	if cfg.DollyToCursor {
		switch oc.camera.Projection().Kind {
		case camera.ProjectionPerspective:
			if oc.changedDolly != 0 {
				oc.dollyToCursorPerspective()
			}
		case camera.ProjectionOrthographic:
			if oc.changedZoom != 0 {
				oc.zoomToCursorOrthographic()
			}
		}
	}

	if oc.camera.Zoom() != oc.zoom {
		oc.camera.SetZoom(oc.zoom)
		oc.needsUpdate = true
	}

	oc.limitRadius()
	oc.spherical.MakeSafe()
	oc.composePose()

	updated := oc.needsUpdate
	switch {
	case updated && !oc.updatedLastTime:
		oc.hasRested = false
		oc.dispatch(EventWake)
		oc.dispatch(EventUpdate)
	case updated:
		oc.dispatch(EventUpdate)
		rest := cfg.RestThreshold
		if !oc.hasRested &&
			common.ApproxZero(deltaTheta, rest) &&
			common.ApproxZero(deltaPhi, rest) &&
			common.ApproxZero(deltaRadius, rest) &&
			common.ApproxZeroVec3(deltaTarget, rest) &&
			common.ApproxZeroVec3(deltaOffset, rest) &&
			common.ApproxZero(deltaZoom, rest) {
			oc.hasRested = true
			oc.dispatch(EventRest)
		}
	case oc.updatedLastTime:
		oc.dispatch(EventSleep)
	}

	oc.lastDistance = oc.spherical.Radius
	oc.lastZoom = oc.zoom
	oc.updatedLastTime = updated
	oc.needsUpdate = false
	return updated
}

// approach moves current one damped step toward end.
// Values within common.Epsilon of end (relative to its magnitude) snap onto end with the
// velocity zeroed; that snap is not reported as motion. A step that float32 rounds back
// onto current also snaps, since it can make no further progress. A non-positive delta
// leaves current untouched.
func approach(current, end float32, velocity *float32, smoothTime, maxSpeed, delta float32) (float32, bool) {
	if common.ApproxEqual(current, end, common.Epsilon) {
		*velocity = 0
		return end, false
	}
	if !(delta > 0) {
		return current, false
	}
	next := damping.SmoothDamp(current, end, velocity, smoothTime, maxSpeed, delta)
	if next == current {
		*velocity = 0
		return end, true
	}
	return next, true
}

// approachVec3 is the vector form of approach. Every component must be within the
// scaled common.Epsilon for the vector to snap.
func approachVec3(current, end mgl32.Vec3, velocity *mgl32.Vec3, smoothTime, maxSpeed, delta float32) (mgl32.Vec3, bool) {
	if common.ApproxEqualVec3(current, end, common.Epsilon) {
		*velocity = mgl32.Vec3{}
		return end, false
	}
	if !(delta > 0) {
		return current, false
	}
	next := damping.SmoothDampVec3(current, end, velocity, smoothTime, maxSpeed, delta)
	if next == current {
		*velocity = mgl32.Vec3{}
		return end, true
	}
	return next, true
}

// limitRadius keeps the current radius inside the distance limits and the collision limit.
// InfinityDolly lets the radius leave [MinDistance, MaxDistance] while a cursor dolly
// is carrying the target forward.
func (oc *orbitControls) limitRadius() {
	if !oc.config.InfinityDolly {
		oc.spherical.Radius = common.Clamp(oc.spherical.Radius, oc.config.MinDistance, oc.config.MaxDistance)
	}
	if oc.collision == nil {
		return
	}
	limit := oc.collision.MaxAllowedRadius()
	if math32.IsInf(limit, 1) {
		return
	}
	if !common.IsFinite(limit) || limit < 0 {
		oc.logger.Debug("collision probe returned an invalid radius limit, falling back to min distance",
			"limit", limit, "min_distance", oc.config.MinDistance)
		oc.spherical.Radius = oc.config.MinDistance
		return
	}
	oc.spherical.Radius = math32.Min(oc.spherical.Radius, limit)
}
