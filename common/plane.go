package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Plane represents a plane in 3D space using the equation: n·p + d = 0
// where n is the unit normal and d is the signed distance term (the plane constant).
type Plane struct {
	Normal   mgl32.Vec3
	Distance float32
}

// PlaneFromNormalAndPoint builds the plane with the given normal passing through point.
// The normal is normalized; a zero normal yields a plane facing +Y.
//
// Parameters:
//   - normal: the plane normal (any length)
//   - point: a point lying on the plane
//
// Returns:
//   - Plane: the normalized plane
func PlaneFromNormalAndPoint(normal, point mgl32.Vec3) Plane {
	n := SafeNormalize(normal, AxisY)
	return Plane{Normal: n, Distance: -n.Dot(point)}
}

// DistanceToPoint returns the signed distance from the plane to point.
// Positive values lie on the side the normal points toward.
//
// Parameters:
//   - point: the point to measure
//
// Returns:
//   - float32: signed distance
func (p Plane) DistanceToPoint(point mgl32.Vec3) float32 {
	return p.Normal.Dot(point) + p.Distance
}

// ProjectPoint returns the orthogonal projection of point onto the plane.
//
// Parameters:
//   - point: the point to project
//
// Returns:
//   - mgl32.Vec3: the closest point on the plane
func (p Plane) ProjectPoint(point mgl32.Vec3) mgl32.Vec3 {
	return point.Sub(p.Normal.Mul(p.DistanceToPoint(point)))
}

// normalize rescales the plane so that the normal has unit length.
func (p *Plane) normalize() {
	length := math32.Sqrt(p.Normal.Dot(p.Normal))
	if length > 0 {
		invLen := 1.0 / length
		p.Normal = p.Normal.Mul(invLen)
		p.Distance *= invLen
	}
}

// NewPlane builds a plane from raw coefficients (a, b, c, d) of ax + by + cz + d = 0
// and normalizes it.
//
// Parameters:
//   - a, b, c: normal components
//   - d: plane constant
//
// Returns:
//   - Plane: the normalized plane
func NewPlane(a, b, c, d float32) Plane {
	p := Plane{Normal: mgl32.Vec3{a, b, c}, Distance: d}
	p.normalize()
	return p
}
