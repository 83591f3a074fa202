package common

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the unit-scale threshold below which a per-axis delta is treated as zero
// and the smoothed value is snapped to its end value (see ApproxEqual).
const Epsilon float32 = 1e-5

// sphericalSafeEpsilon keeps the polar angle off the poles in MakeSafe.
const sphericalSafeEpsilon float32 = 1e-6

// AxisY is the internal reference up axis used by spherical coordinates.
var AxisY = mgl32.Vec3{0, 1, 0}

// ApproxZero reports whether the magnitude of v is strictly below eps.
//
// Parameters:
//   - v: the value to test
//   - eps: the threshold
//
// Returns:
//   - bool: true if |v| < eps
func ApproxZero(v, eps float32) bool {
	return math32.Abs(v) < eps
}

// ApproxZeroVec3 reports whether every component of v is strictly below eps in magnitude.
//
// Parameters:
//   - v: the vector to test
//   - eps: the per-component threshold
//
// Returns:
//   - bool: true if all components satisfy ApproxZero
func ApproxZeroVec3(v mgl32.Vec3, eps float32) bool {
	return ApproxZero(v[0], eps) && ApproxZero(v[1], eps) && ApproxZero(v[2], eps)
}

// ApproxEqual reports whether a is within eps of b, with eps scaled by the magnitude of b
// once it exceeds 1. A float32 near 100 cannot resolve differences of 1e-5, so a fixed
// threshold would never be met there.
//
// Parameters:
//   - a: the value to test
//   - b: the reference value
//   - eps: the threshold at unit scale
//
// Returns:
//   - bool: true if |a-b| < eps*max(1, |b|)
func ApproxEqual(a, b, eps float32) bool {
	return math32.Abs(a-b) < eps*math32.Max(1, math32.Abs(b))
}

// ApproxEqualVec3 reports whether every component of a is within eps of b, with eps
// scaled by the largest component magnitude of b once it exceeds 1.
//
// Parameters:
//   - a: the vector to test
//   - b: the reference vector
//   - eps: the threshold at unit scale
//
// Returns:
//   - bool: true if all components are within the scaled threshold
func ApproxEqualVec3(a, b mgl32.Vec3, eps float32) bool {
	scale := math32.Max(1, math32.Max(math32.Abs(b[0]), math32.Max(math32.Abs(b[1]), math32.Abs(b[2]))))
	return ApproxZeroVec3(a.Sub(b), eps*scale)
}

// Clamp limits v to the closed range [lo, hi].
// Infinite bounds are allowed and leave the corresponding side unbounded.
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - float32: the clamped value
func Clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}

// SafeNormalize returns v scaled to unit length, or fallback when v has zero length.
//
// Parameters:
//   - v: the vector to normalize
//   - fallback: the vector returned for a zero-length input
//
// Returns:
//   - mgl32.Vec3: the normalized vector or the fallback
func SafeNormalize(v, fallback mgl32.Vec3) mgl32.Vec3 {
	lenSq := v.Dot(v)
	if lenSq == 0 {
		return fallback
	}
	return v.Mul(1 / math32.Sqrt(lenSq))
}

// Lerp3 linearly interpolates from a toward b by t (t is not clamped).
func Lerp3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Spherical describes an offset from an orbit target with the poles on the Y axis.
// Phi is the polar angle measured from +Y, Theta the azimuth around Y measured from +Z.
type Spherical struct {
	Radius float32
	Phi    float32
	Theta  float32
}

// SphericalFromVec3 converts a Y-up Cartesian offset into spherical coordinates.
// A zero-length offset yields a zero Spherical.
//
// Parameters:
//   - v: Cartesian offset from the orbit target
//
// Returns:
//   - Spherical: the equivalent spherical coordinates
func SphericalFromVec3(v mgl32.Vec3) Spherical {
	radius := v.Len()
	if radius == 0 {
		return Spherical{}
	}
	return Spherical{
		Radius: radius,
		Theta:  math32.Atan2(v[0], v[2]),
		Phi:    math32.Acos(Clamp(v[1]/radius, -1, 1)),
	}
}

// Vec3 converts the spherical coordinates back into a Y-up Cartesian offset.
//
// Returns:
//   - mgl32.Vec3: the Cartesian offset from the orbit target
func (s Spherical) Vec3() mgl32.Vec3 {
	sinPhi, cosPhi := math32.Sincos(s.Phi)
	sinTheta, cosTheta := math32.Sincos(s.Theta)
	sinPhiRadius := sinPhi * s.Radius
	return mgl32.Vec3{
		sinPhiRadius * sinTheta,
		cosPhi * s.Radius,
		sinPhiRadius * cosTheta,
	}
}

// MakeSafe clamps Phi away from the poles so the orbit never degenerates onto the up axis.
func (s *Spherical) MakeSafe() {
	s.Phi = Clamp(s.Phi, sphericalSafeEpsilon, math.Pi-sphericalSafeEpsilon)
}
