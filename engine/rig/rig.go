// Package rig advances several independent orbit controls (split views, picture-in-picture,
// minimaps) once per frame on a shared worker pool.
package rig

import (
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/Carmen-Shannon/oxy-orbit/engine/controls"
)

// Rig owns a set of orbit controls and advances all of them each frame.
// Each controls instance is updated by exactly one task per frame, so instances never
// share state; lifecycle listeners run on pool goroutines.
// Add and Update must not be called concurrently.
type Rig interface {
	// Add registers oc and returns its index.
	//
	// Parameters:
	//   - oc: the controls to advance each frame
	//
	// Returns:
	//   - int: the index of oc within the rig
	Add(oc controls.OrbitControls) int

	// Controls returns the controls at index i, or nil if out of range.
	//
	// Parameters:
	//   - i: index returned by Add
	//
	// Returns:
	//   - controls.OrbitControls: the controls at i
	Controls(i int) controls.OrbitControls

	// Len returns the number of registered controls.
	//
	// Returns:
	//   - int: the count
	Len() int

	// Update advances every controls instance by delta and waits for all of them.
	//
	// Parameters:
	//   - delta: elapsed time since the previous frame in seconds
	//
	// Returns:
	//   - []int: indices of the controls whose camera changed this frame, ascending
	Update(delta float32) []int
}

type rig struct {
	controls []controls.OrbitControls
	updated  []bool
	logger   *slog.Logger

	// pool workers persist across frames
	pool    worker.DynamicWorkerPool
	workers int
}

var _ Rig = &rig{}

// NewRig creates an empty Rig.
// The worker count defaults to one less than the number of CPUs (at least one).
//
// Parameters:
//   - options: functional options to configure the rig
//
// Returns:
//   - Rig: the newly created rig
func NewRig(options ...RigBuilderOption) Rig {
	r := &rig{
		logger:  slog.Default(),
		workers: max(runtime.NumCPU()-1, 1),
	}
	for _, option := range options {
		option(r)
	}

	// Initialize the pool after options so WithWorkers can override the default.
	r.pool = worker.NewDynamicWorkerPool(r.workers, 256, 1*time.Second)
	return r
}

func (r *rig) Add(oc controls.OrbitControls) int {
	r.controls = append(r.controls, oc)
	r.updated = append(r.updated, false)
	r.logger.Debug("rig controls added", "index", len(r.controls)-1)
	return len(r.controls) - 1
}

func (r *rig) Controls(i int) controls.OrbitControls {
	if i < 0 || i >= len(r.controls) {
		return nil
	}
	return r.controls[i]
}

func (r *rig) Len() int {
	return len(r.controls)
}

func (r *rig) Update(delta float32) []int {
	switch len(r.controls) {
	case 0:
		return nil
	case 1:
		// not worth a pool round trip
		if r.controls[0].Update(delta) {
			return []int{0}
		}
		return nil
	}

	// A WaitGroup is the per-frame barrier; pool.Wait() only returns once workers idle-exit.
	var wg sync.WaitGroup
	for i, oc := range r.controls {
		wg.Add(1)
		r.pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				r.updated[i] = oc.Update(delta)
				return nil, nil
			},
		})
	}
	wg.Wait()

	var changed []int
	for i, u := range r.updated {
		if u {
			changed = append(changed, i)
		}
	}
	return changed
}
