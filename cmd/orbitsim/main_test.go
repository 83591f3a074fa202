package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
)

func TestParseOptions(t *testing.T) {
	var buf bytes.Buffer
	o, err := parseOptions([]string{"-projection", "orthographic", "-views", "3", "-cursor-x", "-0.5"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, "orthographic", o.projection)
	assert.Equal(t, 3, o.views)
	assert.Equal(t, float32(-0.5), o.cursorX)
	assert.Equal(t, float32(0.2), o.cursorY)
	assert.Equal(t, float64(60), o.fps)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown projection", []string{"-projection", "fisheye"}},
		{"no views", []string{"-views", "0"}},
		{"watch without config", []string{"-watch"}},
		{"unknown flag", []string{"-bogus"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseOptions(tt.args, &buf)
			assert.ErrorIs(t, err, errUsage)
		})
	}
}

func TestSleepTrackerCountsViewsNotEvents(t *testing.T) {
	s := newSleepTracker(2)
	assert.False(t, s.all())

	// view 0 settles, wakes on a reload and settles again while view 1 is still moving
	s.set(0, true)
	s.set(0, false)
	s.set(0, true)
	assert.False(t, s.all())

	s.set(1, true)
	assert.True(t, s.all())

	s.set(1, false)
	assert.False(t, s.all())
}

func TestRunSettlesAndLogsFinalPose(t *testing.T) {
	for _, projection := range []string{"perspective", "orthographic"} {
		t.Run(projection, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "controls.toml")
			require.NoError(t, os.WriteFile(path, []byte("smooth_time = 0.02\ndragging_smooth_time = 0.01\n"), 0o644))

			var buf bytes.Buffer
			err := run([]string{
				"-config", path,
				"-projection", projection,
				"-fps", "500",
				"-views", "2",
				"-max-frames", "5000",
			}, &buf)
			require.NoError(t, err)

			out := buf.String()
			assert.Equal(t, 2, strings.Count(out, "msg=wake"))
			assert.Equal(t, 2, strings.Count(out, "msg=sleep"))
			assert.Equal(t, 2, strings.Count(out, `msg="final pose"`))
		})
	}
}

func TestRunStopsAtMaxFrames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run([]string{"-fps", "1000", "-max-frames", "3"}, &buf))
	assert.Contains(t, buf.String(), "frames=3")
}

func TestRunWritesUniforms(t *testing.T) {
	out := filepath.Join(t.TempDir(), "uniforms.bin")
	var buf bytes.Buffer
	require.NoError(t, run([]string{"-fps", "1000", "-max-frames", "2", "-views", "3", "-uniform-out", out}, &buf))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Len(t, data, 3*camera.UniformSize)
}

func TestRunMissingConfig(t *testing.T) {
	var buf bytes.Buffer
	err := run([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, &buf)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
