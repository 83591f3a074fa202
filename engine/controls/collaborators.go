package controls

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Boundary is an externally owned convex volume that the look-at target must stay inside.
type Boundary interface {
	// ClampPoint returns the point of the volume closest to point (point itself when inside).
	ClampPoint(point mgl32.Vec3) mgl32.Vec3
}

// BoxBoundary is an axis-aligned box. Infinite extents leave an axis unbounded.
type BoxBoundary struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

var _ Boundary = BoxBoundary{}

// NewBoxBoundary returns the box spanning min and max.
func NewBoxBoundary(min, max mgl32.Vec3) BoxBoundary {
	return BoxBoundary{Min: min, Max: max}
}

// UnboundedBox returns a box covering all of space.
func UnboundedBox() BoxBoundary {
	inf := math32.Inf(1)
	return BoxBoundary{
		Min: mgl32.Vec3{-inf, -inf, -inf},
		Max: mgl32.Vec3{inf, inf, inf},
	}
}

func (b BoxBoundary) ClampPoint(point mgl32.Vec3) mgl32.Vec3 {
	for i := range 3 {
		point[i] = math32.Max(b.Min[i], math32.Min(b.Max[i], point[i]))
	}
	return point
}

// ContainsPoint reports whether point lies inside or on the box.
func (b BoxBoundary) ContainsPoint(point mgl32.Vec3) bool {
	for i := range 3 {
		if point[i] < b.Min[i] || point[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// CollisionProbe reports how far the camera may orbit from its target before hitting geometry.
type CollisionProbe interface {
	// MaxAllowedRadius returns the largest permitted radius, or +Inf when unobstructed.
	MaxAllowedRadius() float32
}

// CollisionFunc adapts a plain function to CollisionProbe.
type CollisionFunc func() float32

func (f CollisionFunc) MaxAllowedRadius() float32 {
	return f()
}
