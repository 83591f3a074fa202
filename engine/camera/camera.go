package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-orbit/common"
)

type cameraImpl struct {
	mu *sync.Mutex

	up       mgl32.Vec3
	position mgl32.Vec3

	// camera-to-world basis; the camera looks down -back
	right mgl32.Vec3
	upDir mgl32.Vec3
	back  mgl32.Vec3

	projection Projection
	zoom       float32

	viewMatrix              mgl32.Mat4
	projectionMatrix        mgl32.Mat4
	viewProjectionMatrix    mgl32.Mat4
	inverseViewProjectionMx mgl32.Mat4
}

// Camera defines the camera abstraction consumed by the orbit controls.
// The camera holds a tagged projection (perspective or orthographic), a zoom factor,
// a world-space position and an orientation, and keeps its view/projection matrices
// current after every mutation.
type Camera interface {
	// Projection returns the current projection variant.
	//
	// Returns:
	//   - Projection: projection kind and payload
	Projection() Projection

	// SetProjection replaces the projection and recomputes matrices.
	//
	// Parameters:
	//   - p: the new projection
	SetProjection(p Projection)

	// SetFov sets the perspective field of view in radians and recomputes matrices.
	// Has no visible effect on orthographic projections.
	//
	// Parameters:
	//   - fov: vertical field of view in radians
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height) and recomputes matrices.
	// For orthographic projections the horizontal extents are rescaled around their center.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// EffectiveFov returns the perspective field of view narrowed by the current zoom.
	//
	// Returns:
	//   - float32: vertical field of view in radians, 0 for orthographic cameras
	EffectiveFov() float32

	// Up returns the camera's world up vector.
	//
	// Returns:
	//   - mgl32.Vec3: the up vector
	Up() mgl32.Vec3

	// SetUp sets the camera's world up vector.
	//
	// Parameters:
	//   - up: the new up vector
	SetUp(up mgl32.Vec3)

	// Zoom returns the zoom factor.
	//
	// Returns:
	//   - float32: current zoom
	Zoom() float32

	// SetZoom sets the zoom factor and applies the projection change.
	//
	// Parameters:
	//   - zoom: the new zoom factor (> 0)
	SetZoom(zoom float32)

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: the position
	Position() mgl32.Vec3

	// SetPosition moves the camera without changing its orientation.
	//
	// Parameters:
	//   - position: world-space position
	SetPosition(position mgl32.Vec3)

	// LookAt orients the camera from its current position toward target using its up vector.
	//
	// Parameters:
	//   - target: world-space point to look at
	LookAt(target mgl32.Vec3)

	// WorldMatrix returns the camera-to-world matrix. Columns 0, 1 and 2 are the camera's
	// right, up and backward axes; column 3 is the position.
	//
	// Returns:
	//   - mgl32.Mat4: the camera world matrix
	WorldMatrix() mgl32.Mat4

	// ViewMatrix returns the world-to-camera matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the projection matrix for the current zoom.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns the combined projection * view matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the view-projection matrix
	ViewProjectionMatrix() mgl32.Mat4

	// Project maps a world-space point to normalized device coordinates.
	//
	// Parameters:
	//   - point: world-space point
	//
	// Returns:
	//   - mgl32.Vec3: normalized device coordinates
	Project(point mgl32.Vec3) mgl32.Vec3

	// Unproject maps normalized device coordinates back to a world-space point.
	//
	// Parameters:
	//   - ndc: normalized device coordinates (x, y, z in [-1, 1])
	//
	// Returns:
	//   - mgl32.Vec3: world-space point
	Unproject(ndc mgl32.Vec3) mgl32.Vec3
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with a default perspective projection
// (45 degree vertical field of view, aspect 1, near 0.1, far 100), zoom 1,
// positioned at the origin looking down -Z.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:         &sync.Mutex{},
		up:         common.AxisY,
		right:      mgl32.Vec3{1, 0, 0},
		upDir:      mgl32.Vec3{0, 1, 0},
		back:       mgl32.Vec3{0, 0, 1},
		projection: PerspectiveProjection(45.0*(math.Pi/180.0), 1.0, 0.1, 100.0),
		zoom:       1,
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Projection() Projection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projection
}

func (c *cameraImpl) SetProjection(p Projection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.projection = p
	c.updateMatrices()
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.projection.Perspective.Fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.projection.Perspective.Aspect = aspect
	if c.projection.Kind == ProjectionOrthographic {
		o := &c.projection.Orthographic
		halfWidth := (o.Top - o.Bottom) * aspect / 2
		cx := (o.Right + o.Left) / 2
		o.Left, o.Right = cx-halfWidth, cx+halfWidth
	}
	c.updateMatrices()
}

func (c *cameraImpl) EffectiveFov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projection.EffectiveFov(c.zoom)
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) SetUp(up mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.up = up
}

func (c *cameraImpl) Zoom() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zoom
}

func (c *cameraImpl) SetZoom(zoom float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zoom = zoom
	c.updateMatrices()
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) SetPosition(position mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = position
	c.updateMatrices()
}

func (c *cameraImpl) LookAt(target mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.right, c.upDir, c.back = lookAtBasis(c.position, target, c.up)
	c.updateMatrices()
}

func (c *cameraImpl) WorldMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return mgl32.Mat4{
		c.right[0], c.right[1], c.right[2], 0,
		c.upDir[0], c.upDir[1], c.upDir[2], 0,
		c.back[0], c.back[1], c.back[2], 0,
		c.position[0], c.position[1], c.position[2], 1,
	}
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Project(point mgl32.Vec3) mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return transformPoint(c.viewProjectionMatrix, point)
}

func (c *cameraImpl) Unproject(ndc mgl32.Vec3) mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return transformPoint(c.inverseViewProjectionMx, ndc)
}

// updateMatrices recalculates the view, projection, view-projection and inverse view-projection
// matrices from the position, basis, projection and zoom.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	r, u, b, p := c.right, c.upDir, c.back, c.position
	c.viewMatrix = mgl32.Mat4{
		r[0], u[0], b[0], 0,
		r[1], u[1], b[1], 0,
		r[2], u[2], b[2], 0,
		-r.Dot(p), -u.Dot(p), -b.Dot(p), 1,
	}
	c.projectionMatrix = c.projection.Matrix(c.zoom)
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
	c.inverseViewProjectionMx = c.viewProjectionMatrix.Inv()
}

// lookAtBasis computes the camera-to-world basis for an eye looking at target.
// back points from target to eye; right = up x back; camera up = back x right.
// Coincident eye/target and up parallel to the view direction are nudged instead of
// producing a zero axis.
func lookAtBasis(eye, target, up mgl32.Vec3) (right, camUp, back mgl32.Vec3) {
	back = eye.Sub(target)
	if back.Dot(back) == 0 {
		back = mgl32.Vec3{0, 0, 1}
	}
	back = back.Normalize()

	right = up.Cross(back)
	if right.Dot(right) == 0 {
		if math.Abs(float64(up[2])) == 1 {
			back[0] += 0.0001
		} else {
			back[2] += 0.0001
		}
		back = back.Normalize()
		right = up.Cross(back)
	}
	right = right.Normalize()
	camUp = back.Cross(right)
	return right, camUp, back
}

// transformPoint applies m to point with perspective division.
func transformPoint(m mgl32.Mat4, point mgl32.Vec3) mgl32.Vec3 {
	v := m.Mul4x1(point.Vec4(1))
	if w := v.W(); w != 0 && w != 1 {
		return v.Vec3().Mul(1 / w)
	}
	return v.Vec3()
}
