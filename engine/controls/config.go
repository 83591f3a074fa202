package controls

import (
	"errors"
	"fmt"
	"math"

	"github.com/chewxy/math32"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("controls: invalid config")

// Config is the read-only tuning of the orbit controls. The engine reads it every frame
// and never mutates it; hosts replace it between frames with SetConfig.
type Config struct {
	// SmoothTime is the approximate settling time in seconds for free (non-dragged) motion.
	SmoothTime float32
	// DraggingSmoothTime is the settling time used while the user drives an axis.
	DraggingSmoothTime float32
	// MaxSpeed bounds radius, target and focal offset speed in units per second.
	MaxSpeed float32

	MinDistance float32
	MaxDistance float32
	MinZoom     float32
	MaxZoom     float32

	MinPolarAngle   float32
	MaxPolarAngle   float32
	MinAzimuthAngle float32
	MaxAzimuthAngle float32

	// DollySpeed scales DollyAt and ZoomAt gestures.
	DollySpeed float32
	// RestThreshold is the per-axis delta below which the rest event fires.
	RestThreshold float32

	DollyToCursor bool
	InfinityDolly bool

	// BoundaryFriction in [0, 1] damps truck motion sliding along the boundary.
	BoundaryFriction float32
	// BoundaryEnclosesCamera keeps the camera position itself inside the boundary.
	BoundaryEnclosesCamera bool
}

// DefaultConfig returns the default tuning.
//
// Returns:
//   - Config: smooth time 0.25s, dragging smooth time 0.125s, unbounded speed,
//     distance and azimuth, polar angle [0, pi], zoom [0.01, inf), rest threshold 0.01
func DefaultConfig() Config {
	inf := math32.Inf(1)
	return Config{
		SmoothTime:         0.25,
		DraggingSmoothTime: 0.125,
		MaxSpeed:           inf,
		MinDistance:        1e-6,
		MaxDistance:        inf,
		MinZoom:            0.01,
		MaxZoom:            inf,
		MinPolarAngle:      0,
		MaxPolarAngle:      math.Pi,
		MinAzimuthAngle:    -inf,
		MaxAzimuthAngle:    inf,
		DollySpeed:         1,
		RestThreshold:      0.01,
		BoundaryFriction:   0,
	}
}

// Validate reports the first field that violates its documented range.
//
// Returns:
//   - error: nil, or an error wrapping ErrInvalidConfig
func (c Config) Validate() error {
	switch {
	case !(c.SmoothTime > 0):
		return fmt.Errorf("%w: smooth time must be positive, got %v", ErrInvalidConfig, c.SmoothTime)
	case !(c.DraggingSmoothTime > 0):
		return fmt.Errorf("%w: dragging smooth time must be positive, got %v", ErrInvalidConfig, c.DraggingSmoothTime)
	case !(c.MaxSpeed > 0):
		return fmt.Errorf("%w: max speed must be positive, got %v", ErrInvalidConfig, c.MaxSpeed)
	case !(c.MinDistance > 0) || math32.IsInf(c.MinDistance, 1):
		return fmt.Errorf("%w: min distance must be positive and finite, got %v", ErrInvalidConfig, c.MinDistance)
	case !(c.MaxDistance >= c.MinDistance):
		return fmt.Errorf("%w: max distance %v below min distance %v", ErrInvalidConfig, c.MaxDistance, c.MinDistance)
	case !(c.MinZoom > 0) || math32.IsInf(c.MinZoom, 1):
		return fmt.Errorf("%w: min zoom must be positive and finite, got %v", ErrInvalidConfig, c.MinZoom)
	case !(c.MaxZoom >= c.MinZoom):
		return fmt.Errorf("%w: max zoom %v below min zoom %v", ErrInvalidConfig, c.MaxZoom, c.MinZoom)
	case !(c.MaxPolarAngle >= c.MinPolarAngle):
		return fmt.Errorf("%w: polar angle range [%v, %v] is empty", ErrInvalidConfig, c.MinPolarAngle, c.MaxPolarAngle)
	case !(c.MaxAzimuthAngle >= c.MinAzimuthAngle):
		return fmt.Errorf("%w: azimuth angle range [%v, %v] is empty", ErrInvalidConfig, c.MinAzimuthAngle, c.MaxAzimuthAngle)
	case !(c.DollySpeed >= 0):
		return fmt.Errorf("%w: dolly speed must not be negative, got %v", ErrInvalidConfig, c.DollySpeed)
	case !(c.RestThreshold > 0):
		return fmt.Errorf("%w: rest threshold must be positive, got %v", ErrInvalidConfig, c.RestThreshold)
	case !(c.BoundaryFriction >= 0 && c.BoundaryFriction <= 1):
		return fmt.Errorf("%w: boundary friction must be in [0, 1], got %v", ErrInvalidConfig, c.BoundaryFriction)
	}
	return nil
}

// smoothTimeFor picks the dragging or free smooth time.
func (c Config) smoothTimeFor(dragging bool) float32 {
	if dragging {
		return c.DraggingSmoothTime
	}
	return c.SmoothTime
}
