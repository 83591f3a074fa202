package rig

import (
	"log/slog"

	"github.com/Carmen-Shannon/oxy-orbit/engine/controls"
)

// RigBuilderOption is a functional option for configuring a Rig.
type RigBuilderOption func(*rig)

// WithWorkers sets the number of pool workers used by Update.
//
// Parameters:
//   - n: worker count (values < 1 are treated as 1)
//
// Returns:
//   - RigBuilderOption: option function to apply
func WithWorkers(n int) RigBuilderOption {
	return func(r *rig) {
		if n < 1 {
			n = 1
		}
		r.workers = n
	}
}

// WithControls registers controls during construction, in order.
//
// Parameters:
//   - ocs: the controls to advance each frame
//
// Returns:
//   - RigBuilderOption: option function to apply
func WithControls(ocs ...controls.OrbitControls) RigBuilderOption {
	return func(r *rig) {
		for _, oc := range ocs {
			r.controls = append(r.controls, oc)
			r.updated = append(r.updated, false)
		}
	}
}

// WithLogger sets the structured logger. Defaults to slog.Default().
//
// Parameters:
//   - logger: the logger to use
//
// Returns:
//   - RigBuilderOption: option function to apply
func WithLogger(logger *slog.Logger) RigBuilderOption {
	return func(r *rig) {
		if logger != nil {
			r.logger = logger
		}
	}
}
