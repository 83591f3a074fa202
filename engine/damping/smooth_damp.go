// Package damping implements the critically-damped spring step used to ease camera
// quantities toward their end values (Game Programming Gems 4, chapter 1.10).
package damping

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// MinSmoothTime is the floor applied to every smooth time to keep the spring frequency finite.
const MinSmoothTime float32 = 1e-4

// Unbounded is a max speed that disables speed clamping.
var Unbounded = math32.Inf(1)

// decay returns the spring frequency and the per-step decay factor for the given smooth time and step.
// The factor is a rational approximation of e^-x that stays stable for large steps.
func decay(smoothTime, deltaTime float32) (omega, exp float32) {
	omega = 2 / smoothTime
	x := omega * deltaTime
	exp = 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)
	return omega, exp
}

// SmoothDamp advances current toward target by one step of a critically damped spring.
// The velocity is read and written through the pointer so it carries across frames.
// The per-step change is limited to maxSpeed*smoothTime, and a step that would cross
// target is snapped onto it with the velocity zeroed.
// deltaTime must be positive; callers skip the step for zero-length frames.
//
// Parameters:
//   - current: the current value
//   - target: the value to approach
//   - velocity: persistent velocity, updated in place
//   - smoothTime: approximate settling time in seconds (floored to MinSmoothTime)
//   - maxSpeed: maximum speed in units per second (Unbounded to disable)
//   - deltaTime: elapsed time in seconds
//
// Returns:
//   - float32: the new value
func SmoothDamp(current, target float32, velocity *float32, smoothTime, maxSpeed, deltaTime float32) float32 {
	smoothTime = math32.Max(MinSmoothTime, smoothTime)
	omega, exp := decay(smoothTime, deltaTime)

	originalTo := target
	change := current - target

	maxChange := maxSpeed * smoothTime
	change = math32.Max(-maxChange, math32.Min(maxChange, change))
	target = current - change

	temp := (*velocity + omega*change) * deltaTime
	*velocity = (*velocity - omega*temp) * exp
	output := target + (change+temp)*exp

	// moving up and landing above, or moving down and landing at or below
	if (originalTo-current > 0) == (output > originalTo) {
		output = originalTo
		*velocity = 0
	}
	return output
}

// SmoothDampVec3 is the three-component form of SmoothDamp.
// The speed limit clamps the length of the change vector so direction is preserved,
// and overshoot is detected with the dot product of the remaining and overshot offsets.
//
// Parameters:
//   - current: the current vector
//   - target: the vector to approach
//   - velocity: persistent velocity, updated in place
//   - smoothTime: approximate settling time in seconds (floored to MinSmoothTime)
//   - maxSpeed: maximum speed in units per second (Unbounded to disable)
//   - deltaTime: elapsed time in seconds
//
// Returns:
//   - mgl32.Vec3: the new vector
func SmoothDampVec3(current, target mgl32.Vec3, velocity *mgl32.Vec3, smoothTime, maxSpeed, deltaTime float32) mgl32.Vec3 {
	smoothTime = math32.Max(MinSmoothTime, smoothTime)
	omega, exp := decay(smoothTime, deltaTime)

	originalTo := target
	change := current.Sub(target)

	maxChange := maxSpeed * smoothTime
	if magnitudeSq := change.Dot(change); magnitudeSq > maxChange*maxChange {
		change = change.Mul(maxChange / math32.Sqrt(magnitudeSq))
	}
	target = current.Sub(change)

	temp := velocity.Add(change.Mul(omega)).Mul(deltaTime)
	*velocity = velocity.Sub(temp.Mul(omega)).Mul(exp)
	output := target.Add(change.Add(temp).Mul(exp))

	if originalTo.Sub(current).Dot(output.Sub(originalTo)) > 0 {
		output = originalTo
		*velocity = mgl32.Vec3{}
	}
	return output
}
