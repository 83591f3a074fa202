// Package controls drives an orbit camera toward user-requested end values with
// critically damped springs, anchors dolly and zoom gestures to the cursor, keeps the
// look-at target inside a boundary and reports wake/update/rest/sleep transitions.
package controls

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
)

// OrbitControls defines the per-frame orbit camera engine.
// Input code mutates end values between frames through the orbitInput methods;
// the host calls Update once per rendered frame, which moves the current values
// toward the end values and writes the resulting pose into the camera.
// OrbitControls is not safe for concurrent use; independent instances share nothing.
type OrbitControls interface {
	orbitInput

	// Update advances every smoothed quantity by one frame and writes the camera pose.
	// Non-positive deltas skip the damping step but still compose the pose.
	//
	// Parameters:
	//   - delta: elapsed time since the previous frame in seconds
	//
	// Returns:
	//   - bool: true if anything visible changed this frame
	Update(delta float32) bool

	// AddListener registers a lifecycle listener.
	//
	// Parameters:
	//   - l: the listener to notify
	//
	// Returns:
	//   - func(): unregisters the listener
	AddListener(l Listener) (remove func())

	// Camera returns the controlled camera.
	//
	// Returns:
	//   - camera.Camera: the camera written by Update
	Camera() camera.Camera

	// Config returns the active configuration.
	//
	// Returns:
	//   - Config: the configuration read by Update
	Config() Config

	// SetConfig replaces the configuration after validating it.
	// End values are clamped into the new limits.
	//
	// Parameters:
	//   - cfg: the new configuration
	//
	// Returns:
	//   - error: an error wrapping ErrInvalidConfig, in which case nothing changes
	SetConfig(cfg Config) error

	// SetBoundary replaces the boundary volume. A nil boundary removes the limit.
	//
	// Parameters:
	//   - b: the boundary to clamp targets into
	SetBoundary(b Boundary)

	// SetCollisionProbe replaces the collision probe. A nil probe removes the limit.
	//
	// Parameters:
	//   - p: the probe consulted once per frame
	SetCollisionProbe(p CollisionProbe)

	// Spherical returns the current (rendered) orbit offset.
	//
	// Returns:
	//   - common.Spherical: current radius, polar and azimuth angles
	Spherical() common.Spherical

	// SphericalEnd returns the orbit offset the controls are moving toward.
	//
	// Returns:
	//   - common.Spherical: end radius, polar and azimuth angles
	SphericalEnd() common.Spherical

	// Target returns the current look-at point.
	//
	// Returns:
	//   - mgl32.Vec3: world-space target
	Target() mgl32.Vec3

	// TargetEnd returns the look-at point the controls are moving toward.
	//
	// Returns:
	//   - mgl32.Vec3: world-space end target
	TargetEnd() mgl32.Vec3

	// FocalOffset returns the current screen-space focal offset.
	//
	// Returns:
	//   - mgl32.Vec3: offset along the camera right, up and back axes
	FocalOffset() mgl32.Vec3

	// Zoom returns the current zoom factor.
	//
	// Returns:
	//   - float32: current zoom
	Zoom() float32

	// Velocity returns a copy of the damping velocities.
	//
	// Returns:
	//   - DampingState: per-quantity velocities
	Velocity() DampingState

	// Pose returns what a renderer needs after the last Update.
	//
	// Returns:
	//   - Pose: camera position, target, up vector and zoom
	Pose() Pose
}

// orbitInput defines the end-state mutators driven by input handling code.
// None of them move the camera; the next Update does.
type orbitInput interface {
	// RotateTo sets the end azimuth and polar angles, clamped to the configured limits.
	//
	// Parameters:
	//   - theta: azimuth angle in radians around the up axis
	//   - phi: polar angle in radians from the up axis
	RotateTo(theta, phi float32)

	// Rotate adds to the end azimuth and polar angles.
	//
	// Parameters:
	//   - deltaTheta: azimuth change in radians
	//   - deltaPhi: polar change in radians
	Rotate(deltaTheta, deltaPhi float32)

	// DollyTo sets the end distance to the target, clamped to [MinDistance, MaxDistance].
	//
	// Parameters:
	//   - distance: the end orbit radius
	DollyTo(distance float32)

	// Dolly moves the end distance toward the target by amount.
	//
	// Parameters:
	//   - amount: positive moves closer, negative moves away
	Dolly(amount float32)

	// DollyAt applies a wheel or pinch dolly gesture anchored at a cursor position.
	// Positive delta moves away from the target, negative toward it.
	// With DollyToCursor the point under the cursor stays fixed on screen while the
	// camera moves; with InfinityDolly the camera keeps moving past MinDistance.
	//
	// Parameters:
	//   - delta: gesture amount scaled by DollySpeed
	//   - ndcX, ndcY: cursor position in normalized device coordinates
	DollyAt(delta, ndcX, ndcY float32)

	// ZoomTo sets the end zoom, clamped to [MinZoom, MaxZoom].
	//
	// Parameters:
	//   - zoom: the end zoom factor
	ZoomTo(zoom float32)

	// ZoomAt applies a zoom gesture anchored at a cursor position.
	// Positive delta zooms out, negative zooms in.
	//
	// Parameters:
	//   - delta: gesture amount scaled by DollySpeed
	//   - ndcX, ndcY: cursor position in normalized device coordinates
	ZoomAt(delta, ndcX, ndcY float32)

	// MoveTo moves the end target to point, kept inside the boundary.
	//
	// Parameters:
	//   - point: world-space destination of the look-at target
	MoveTo(point mgl32.Vec3)

	// Truck slides the end target across the screen plane.
	// Motion blocked by the boundary slides along it according to BoundaryFriction.
	//
	// Parameters:
	//   - x: distance along the camera right axis
	//   - y: distance along the camera down axis
	Truck(x, y float32)

	// SetTarget orbits around a new point while keeping the end camera position,
	// typically a point picked by a ray cast.
	//
	// Parameters:
	//   - point: world-space orbit point
	SetTarget(point mgl32.Vec3)

	// SetFocalOffset sets the end screen-space offset of the camera from its orbit.
	// Positive y moves the view content up on screen.
	//
	// Parameters:
	//   - x, y, z: offset along the camera right, up and back axes
	SetFocalOffset(x, y, z float32)

	// SetLookAt derives the end orbit from a camera position and a look-at point.
	//
	// Parameters:
	//   - position: world-space camera position
	//   - target: world-space look-at point
	SetLookAt(position, target mgl32.Vec3)

	// SetUserControlling selects which axis groups use DraggingSmoothTime.
	//
	// Parameters:
	//   - flags: per-axis user control flags
	SetUserControlling(flags MotionFlags)

	// UserControlling returns the current motion flags.
	//
	// Returns:
	//   - MotionFlags: per-axis user control flags
	UserControlling() MotionFlags

	// Reset snaps every current value to its end value and zeroes all velocities.
	// The next Update writes the final pose.
	Reset()

	// Stop freezes the camera where it is by moving every end value onto its current value.
	Stop()

	// NormalizeRotations wraps the end azimuth into [0, 2*pi) and shifts the current
	// azimuth by the same number of whole turns.
	NormalizeRotations()

	// UpdateCameraUp re-reads the camera up vector after it has been changed.
	UpdateCameraUp()
}

type orbitControls struct {
	camera    camera.Camera
	config    Config
	logger    *slog.Logger
	boundary  Boundary
	collision CollisionProbe

	spherical      common.Spherical
	sphericalEnd   common.Spherical
	target         mgl32.Vec3
	targetEnd      mgl32.Vec3
	focalOffset    mgl32.Vec3
	focalOffsetEnd mgl32.Vec3
	zoom           float32
	zoomEnd        float32

	velocity DampingState
	flags    MotionFlags

	// rotation from the camera up vector onto +Y, and back
	yAxisUpSpace        mgl32.Quat
	yAxisUpSpaceInverse mgl32.Quat

	dollyControlCoord  mgl32.Vec2
	changedDolly       float32
	changedZoom        float32
	lastDollyDirection dollyDirection

	lastDistance    float32
	lastZoom        float32
	needsUpdate     bool
	updatedLastTime bool
	hasRested       bool

	listeners      []listenerEntry
	nextListenerID int
}

var _ OrbitControls = &orbitControls{}

// NewOrbitControls creates orbit controls for cam.
// The initial orbit is derived from the camera's current position around the target
// (the origin unless WithTarget is given) and written back to the camera immediately.
// Construction does not count as motion: the first Update of an untouched controls
// instance returns false.
//
// Parameters:
//   - cam: the camera to drive
//   - options: functional options to configure the controls
//
// Returns:
//   - OrbitControls: the newly created controls
//   - error: an error wrapping ErrInvalidConfig if the assembled configuration is invalid
func NewOrbitControls(cam camera.Camera, options ...OrbitControlsOption) (OrbitControls, error) {
	if cam == nil {
		return nil, fmt.Errorf("%w: camera is required", ErrInvalidConfig)
	}
	oc := &orbitControls{
		camera:   cam,
		config:   DefaultConfig(),
		logger:   slog.Default(),
		boundary: UnboundedBox(),
	}
	for _, option := range options {
		option(oc)
	}
	if err := oc.config.Validate(); err != nil {
		return nil, err
	}

	oc.UpdateCameraUp()
	oc.target = oc.boundary.ClampPoint(oc.target)
	oc.targetEnd = oc.target
	initial := common.SphericalFromVec3(oc.yAxisUpSpace.Rotate(cam.Position().Sub(oc.target)))
	oc.RotateTo(initial.Theta, initial.Phi)
	oc.DollyTo(initial.Radius)
	oc.spherical = oc.sphericalEnd
	oc.focalOffsetEnd = oc.focalOffset
	oc.zoomEnd = common.Clamp(cam.Zoom(), oc.config.MinZoom, oc.config.MaxZoom)
	oc.zoom = oc.zoomEnd
	if cam.Zoom() != oc.zoom {
		cam.SetZoom(oc.zoom)
	}

	oc.composePose()
	oc.lastDistance = oc.spherical.Radius
	oc.lastZoom = oc.zoom
	return oc, nil
}

func (oc *orbitControls) Camera() camera.Camera {
	return oc.camera
}

func (oc *orbitControls) Config() Config {
	return oc.config
}

func (oc *orbitControls) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	oc.config = cfg
	oc.clampEnd()
	return nil
}

func (oc *orbitControls) SetBoundary(b Boundary) {
	if b == nil {
		b = UnboundedBox()
	}
	oc.boundary = b
	oc.targetEnd = b.ClampPoint(oc.targetEnd)
}

func (oc *orbitControls) SetCollisionProbe(p CollisionProbe) {
	oc.collision = p
}

func (oc *orbitControls) Spherical() common.Spherical {
	return oc.spherical
}

func (oc *orbitControls) SphericalEnd() common.Spherical {
	return oc.sphericalEnd
}

func (oc *orbitControls) Target() mgl32.Vec3 {
	return oc.target
}

func (oc *orbitControls) TargetEnd() mgl32.Vec3 {
	return oc.targetEnd
}

func (oc *orbitControls) FocalOffset() mgl32.Vec3 {
	return oc.focalOffset
}

func (oc *orbitControls) Zoom() float32 {
	return oc.zoom
}

func (oc *orbitControls) Velocity() DampingState {
	return oc.velocity
}

func (oc *orbitControls) Pose() Pose {
	return Pose{
		Position: oc.camera.Position(),
		Target:   oc.target,
		Up:       oc.camera.Up(),
		Zoom:     oc.zoom,
	}
}
