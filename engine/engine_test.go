package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/controls"
	"github.com/Carmen-Shannon/oxy-orbit/engine/rig"
)

func runWithTimeout(t *testing.T, e Engine, timeout time.Duration) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		e.Quit()
		t.Fatal("engine did not stop before timeout")
	}
}

func TestEngineDrivesRigUntilSettled(t *testing.T) {
	cam := camera.NewCamera(camera.WithPosition(0, 0, 10), camera.WithLookAt(0, 0, 0))
	oc, err := controls.NewOrbitControls(cam, controls.WithSmoothTime(0.02, 0.01))
	require.NoError(t, err)

	var slept atomic.Bool
	oc.AddListener(controls.EventFunc(func(kind controls.EventKind) {
		if kind == controls.EventSleep {
			slept.Store(true)
		}
	}))

	var ticks atomic.Int32
	var e Engine
	e = NewEngine(
		WithTickRate(500),
		WithRig(rig.NewRig(rig.WithControls(oc))),
		WithTickCallback(func(dt float32) {
			assert.Greater(t, dt, float32(0))
			if ticks.Add(1) == 1 {
				oc.DollyTo(4)
			}
		}),
		WithFrameCallback(func(dt float32, changed []int) {
			if slept.Load() {
				e.Quit()
			}
		}),
	)

	runWithTimeout(t, e, 10*time.Second)
	assert.True(t, slept.Load())
	assert.Equal(t, float32(4), oc.Spherical().Radius)
	assert.GreaterOrEqual(t, ticks.Load(), int32(2))
}

func TestEngineQuitIsIdempotent(t *testing.T) {
	e := NewEngine(WithTickRate(1000))
	e.SetFrameCallback(func(float32, []int) {
		e.Quit()
		e.Quit()
	})
	runWithTimeout(t, e, 5*time.Second)
	assert.NotPanics(t, e.Quit)
}

func TestEngineSetTickRateWhileRunning(t *testing.T) {
	e := NewEngine(WithTickRate(10))
	var ticks atomic.Int32
	e.SetTickCallback(func(float32) {
		if ticks.Add(1) == 1 {
			e.SetTickRate(1000)
			e.SetTickRate(2000)
		}
	})
	e.SetFrameCallback(func(float32, []int) {
		if ticks.Load() >= 20 {
			e.Quit()
		}
	})
	runWithTimeout(t, e, 5*time.Second)
	assert.GreaterOrEqual(t, ticks.Load(), int32(20))
}

func TestEngineRecoversFromCallbackPanic(t *testing.T) {
	e := NewEngine(WithTickRate(1000), WithTickCallback(func(float32) {
		panic("boom")
	}))
	runWithTimeout(t, e, 5*time.Second)
}

func TestEngineSkipsEmptyFrames(t *testing.T) {
	var calls int
	e := NewEngine(WithTickCallback(func(float32) { calls++ })).(*engine)
	e.tick(0)
	e.tick(-1)
	assert.Zero(t, calls)
	e.tick(0.016)
	assert.Equal(t, 1, calls)
}

func TestEngineDefaults(t *testing.T) {
	e := NewEngine(WithProfiling(true), WithLogger(nil)).(*engine)
	assert.NotNil(t, e.Rig())
	assert.NotNil(t, e.profiler)
	assert.NotNil(t, e.logger)
	assert.True(t, e.profilingEnabled.Load())
	assert.Equal(t, time.Second/60, e.engineTickRate)

	e.DisableProfiler()
	assert.False(t, e.profilingEnabled.Load())
	e.EnableProfiler()
	assert.True(t, e.profilingEnabled.Load())

	e.SetTickRate(0)
	assert.Equal(t, time.Second/60, e.engineTickRate)
	e.SetTickRate(120)
	assert.Equal(t, time.Second/120, e.engineTickRate)
}

func TestTickInterval(t *testing.T) {
	assert.Equal(t, time.Second/60, tickInterval(-5))
	assert.Equal(t, 10*time.Millisecond, tickInterval(100))
}
