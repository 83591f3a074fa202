package controls

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitControlsOption is a functional option for configuring OrbitControls.
type OrbitControlsOption func(*orbitControls)

// WithConfig replaces the whole configuration.
//
// Parameters:
//   - cfg: the configuration to start from
//
// Returns:
//   - OrbitControlsOption: functional option to set the configuration
func WithConfig(cfg Config) OrbitControlsOption {
	return func(oc *orbitControls) {
		oc.config = cfg
	}
}

// WithSmoothTime sets the free and dragging smooth times in seconds.
//
// Parameters:
//   - smoothTime: settling time for free motion
//   - draggingSmoothTime: settling time while the user drives an axis
//
// Returns:
//   - OrbitControlsOption: functional option to set the smooth times
func WithSmoothTime(smoothTime, draggingSmoothTime float32) OrbitControlsOption {
	return func(oc *orbitControls) {
		oc.config.SmoothTime = smoothTime
		oc.config.DraggingSmoothTime = draggingSmoothTime
	}
}

// WithMaxSpeed limits radius, target and focal offset speed.
//
// Parameters:
//   - maxSpeed: units per second
//
// Returns:
//   - OrbitControlsOption: functional option to set the max speed
func WithMaxSpeed(maxSpeed float32) OrbitControlsOption {
	return func(oc *orbitControls) {
		oc.config.MaxSpeed = maxSpeed
	}
}

// WithDistanceLimits sets the orbit radius range.
//
// Parameters:
//   - min: smallest distance to the target
//   - max: largest distance to the target
//
// Returns:
//   - OrbitControlsOption: functional option to set the distance limits
func WithDistanceLimits(min, max float32) OrbitControlsOption {
	return func(oc *orbitControls) {
		oc.config.MinDistance = min
		oc.config.MaxDistance = max
	}
}

// WithZoomLimits sets the zoom range.
//
// Parameters:
//   - min: smallest zoom factor
//   - max: largest zoom factor
//
// Returns:
//   - OrbitControlsOption: functional option to set the zoom limits
func WithZoomLimits(min, max float32) OrbitControlsOption {
	return func(oc *orbitControls) {
		oc.config.MinZoom = min
		oc.config.MaxZoom = max
	}
}

// WithPolarLimits sets the polar angle range in radians.
//
// Parameters:
//   - min: smallest angle from the up axis
//   - max: largest angle from the up axis
//
// Returns:
//   - OrbitControlsOption: functional option to set the polar limits
func WithPolarLimits(min, max float32) OrbitControlsOption {
	return func(oc *orbitControls) {
		oc.config.MinPolarAngle = min
		oc.config.MaxPolarAngle = max
	}
}

// WithAzimuthLimits sets the azimuth angle range in radians.
//
// Parameters:
//   - min: smallest azimuth
//   - max: largest azimuth
//
// Returns:
//   - OrbitControlsOption: functional option to set the azimuth limits
func WithAzimuthLimits(min, max float32) OrbitControlsOption {
	return func(oc *orbitControls) {
		oc.config.MinAzimuthAngle = min
		oc.config.MaxAzimuthAngle = max
	}
}

// WithDollyToCursor anchors dolly and zoom gestures to the cursor.
//
// Parameters:
//   - enabled: whether gestures keep the point under the cursor fixed
//
// Returns:
//   - OrbitControlsOption: functional option to toggle dolly-to-cursor
func WithDollyToCursor(enabled bool) OrbitControlsOption {
	return func(oc *orbitControls) {
		oc.config.DollyToCursor = enabled
	}
}

// WithInfinityDolly lets dolly gestures push the target forward once MinDistance is reached.
//
// Parameters:
//   - enabled: whether dolly continues past the distance limits
//
// Returns:
//   - OrbitControlsOption: functional option to toggle infinity dolly
func WithInfinityDolly(enabled bool) OrbitControlsOption {
	return func(oc *orbitControls) {
		oc.config.InfinityDolly = enabled
	}
}

// WithRestThreshold sets the per-axis delta under which the rest event fires.
//
// Parameters:
//   - threshold: positive rest threshold
//
// Returns:
//   - OrbitControlsOption: functional option to set the rest threshold
func WithRestThreshold(threshold float32) OrbitControlsOption {
	return func(oc *orbitControls) {
		oc.config.RestThreshold = threshold
	}
}

// WithBoundary keeps the look-at target inside b.
//
// Parameters:
//   - b: the boundary volume
//   - friction: BoundaryFriction in [0, 1] for truck motion along the boundary
//   - enclosesCamera: also keep the camera position inside b
//
// Returns:
//   - OrbitControlsOption: functional option to set the boundary
func WithBoundary(b Boundary, friction float32, enclosesCamera bool) OrbitControlsOption {
	return func(oc *orbitControls) {
		if b != nil {
			oc.boundary = b
		}
		oc.config.BoundaryFriction = friction
		oc.config.BoundaryEnclosesCamera = enclosesCamera
	}
}

// WithCollisionProbe limits the orbit radius to what the probe reports each frame.
//
// Parameters:
//   - p: the collision probe
//
// Returns:
//   - OrbitControlsOption: functional option to set the collision probe
func WithCollisionProbe(p CollisionProbe) OrbitControlsOption {
	return func(oc *orbitControls) {
		oc.collision = p
	}
}

// WithLogger sets the structured logger. Defaults to slog.Default().
//
// Parameters:
//   - logger: the logger to use
//
// Returns:
//   - OrbitControlsOption: functional option to set the logger
func WithLogger(logger *slog.Logger) OrbitControlsOption {
	return func(oc *orbitControls) {
		if logger != nil {
			oc.logger = logger
		}
	}
}

// WithTarget sets the initial look-at point.
//
// Parameters:
//   - x, y, z: world-space target
//
// Returns:
//   - OrbitControlsOption: functional option to set the target
func WithTarget(x, y, z float32) OrbitControlsOption {
	return func(oc *orbitControls) {
		oc.target = mgl32.Vec3{x, y, z}
	}
}

// WithFocalOffset sets the initial focal offset.
//
// Parameters:
//   - x, y, z: offset along the camera right, up and back axes
//
// Returns:
//   - OrbitControlsOption: functional option to set the focal offset
func WithFocalOffset(x, y, z float32) OrbitControlsOption {
	return func(oc *orbitControls) {
		oc.focalOffset = mgl32.Vec3{x, y, z}
	}
}

// WithListener registers a lifecycle listener at construction.
//
// Parameters:
//   - l: the listener to notify
//
// Returns:
//   - OrbitControlsOption: functional option to add a listener
func WithListener(l Listener) OrbitControlsOption {
	return func(oc *orbitControls) {
		oc.AddListener(l)
	}
}
