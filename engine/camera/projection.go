package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ProjectionKind selects which payload of a Projection is active.
type ProjectionKind uint8

const (
	// ProjectionPerspective is a distance-based projection driven by field of view and aspect.
	ProjectionPerspective ProjectionKind = iota
	// ProjectionOrthographic is a parallel projection driven by frustum extents and zoom.
	ProjectionOrthographic
)

// String returns a readable name for the projection kind.
func (k ProjectionKind) String() string {
	switch k {
	case ProjectionPerspective:
		return "perspective"
	case ProjectionOrthographic:
		return "orthographic"
	default:
		return "unknown"
	}
}

// Perspective is the payload of a perspective projection.
type Perspective struct {
	// Fov is the vertical field of view in radians at zoom 1.
	Fov float32
	// Aspect is the viewport width divided by height.
	Aspect float32
}

// Orthographic is the payload of an orthographic projection.
// Extents are in view-space units at zoom 1.
type Orthographic struct {
	Left, Right, Top, Bottom float32
}

// Projection is a tagged variant over the two projection shapes.
// Only the payload matching Kind is meaningful; Near and Far apply to both.
type Projection struct {
	Kind         ProjectionKind
	Perspective  Perspective
	Orthographic Orthographic
	Near         float32
	Far          float32
}

// PerspectiveProjection builds a perspective Projection.
//
// Parameters:
//   - fov: vertical field of view in radians
//   - aspect: viewport aspect ratio (width / height)
//   - near, far: clipping plane distances
//
// Returns:
//   - Projection: the perspective projection
func PerspectiveProjection(fov, aspect, near, far float32) Projection {
	return Projection{
		Kind:        ProjectionPerspective,
		Perspective: Perspective{Fov: fov, Aspect: aspect},
		Near:        near,
		Far:         far,
	}
}

// OrthographicProjection builds an orthographic Projection.
//
// Parameters:
//   - left, right, top, bottom: view-space frustum extents at zoom 1
//   - near, far: clipping plane distances
//
// Returns:
//   - Projection: the orthographic projection
func OrthographicProjection(left, right, top, bottom, near, far float32) Projection {
	return Projection{
		Kind:         ProjectionOrthographic,
		Orthographic: Orthographic{Left: left, Right: right, Top: top, Bottom: bottom},
		Near:         near,
		Far:          far,
	}
}

// EffectiveFov returns the perspective field of view narrowed by zoom.
// Returns 0 for orthographic projections.
//
// Parameters:
//   - zoom: the camera zoom factor (> 0)
//
// Returns:
//   - float32: vertical field of view in radians
func (p Projection) EffectiveFov(zoom float32) float32 {
	if p.Kind != ProjectionPerspective {
		return 0
	}
	return 2 * math32.Atan(math32.Tan(p.Perspective.Fov*0.5)/zoom)
}

// Aspect returns the width/height ratio of the projection.
func (p Projection) Aspect() float32 {
	if p.Kind == ProjectionOrthographic {
		o := p.Orthographic
		if h := o.Top - o.Bottom; h != 0 {
			return (o.Right - o.Left) / h
		}
		return 1
	}
	return p.Perspective.Aspect
}

// Matrix returns the OpenGL-convention projection matrix (clip z in [-1, 1]) for the given zoom.
//
// Parameters:
//   - zoom: the camera zoom factor (> 0)
//
// Returns:
//   - mgl32.Mat4: the projection matrix
func (p Projection) Matrix(zoom float32) mgl32.Mat4 {
	if p.Kind == ProjectionOrthographic {
		o := p.Orthographic
		dx := (o.Right - o.Left) / (2 * zoom)
		dy := (o.Top - o.Bottom) / (2 * zoom)
		cx := (o.Right + o.Left) / 2
		cy := (o.Top + o.Bottom) / 2
		return mgl32.Ortho(cx-dx, cx+dx, cy-dy, cy+dy, p.Near, p.Far)
	}
	return mgl32.Perspective(p.EffectiveFov(zoom), p.Perspective.Aspect, p.Near, p.Far)
}
