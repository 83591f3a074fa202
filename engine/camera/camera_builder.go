package camera

import "github.com/go-gl/mathgl/mgl32"

type CameraBuilderOption func(*cameraImpl)

// WithUp sets the camera's world up vector.
//
// Parameters:
//   - x, y, z: up vector components
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's up vector
func WithUp(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.up = mgl32.Vec3{x, y, z}
	}
}

// WithFov sets the perspective field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.projection.Perspective.Fov = fov
	}
}

// WithAspect sets the perspective aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.projection.Perspective.Aspect = aspect
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the near plane
func WithNear(near float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.projection.Near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the far plane
func WithFar(far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.projection.Far = far
	}
}

// WithOrthographic switches the camera to an orthographic projection with the given extents.
// Near and far planes are kept.
//
// Parameters:
//   - left, right, top, bottom: view-space extents at zoom 1
//
// Returns:
//   - CameraBuilderOption: functional option to set an orthographic projection
func WithOrthographic(left, right, top, bottom float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.projection.Kind = ProjectionOrthographic
		c.projection.Orthographic = Orthographic{Left: left, Right: right, Top: top, Bottom: bottom}
	}
}

// WithProjection replaces the whole projection.
//
// Parameters:
//   - p: the projection to use
//
// Returns:
//   - CameraBuilderOption: functional option to set the projection
func WithProjection(p Projection) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.projection = p
	}
}

// WithZoom sets the initial zoom factor.
//
// Parameters:
//   - zoom: zoom factor (> 0)
//
// Returns:
//   - CameraBuilderOption: functional option to set the zoom
func WithZoom(zoom float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.zoom = zoom
	}
}

// WithPosition sets the initial world-space position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - CameraBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.position = mgl32.Vec3{x, y, z}
	}
}

// WithLookAt orients the camera toward a target. Apply after WithPosition and WithUp.
//
// Parameters:
//   - x, y, z: world-space point to look at
//
// Returns:
//   - CameraBuilderOption: functional option to orient the camera
func WithLookAt(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.right, c.upDir, c.back = lookAtBasis(c.position, mgl32.Vec3{x, y, z}, c.up)
	}
}
