package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-orbit/engine/controls"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "orbit.toml", `
smooth_time = 0.5
max_distance = 40.0
dolly_to_cursor = true
boundary_friction = 0.25
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, float32(0.5), cfg.SmoothTime)
	assert.Equal(t, float32(40), cfg.MaxDistance)
	assert.True(t, cfg.DollyToCursor)
	assert.Equal(t, float32(0.25), cfg.BoundaryFriction)
	// untouched fields keep their defaults
	assert.Equal(t, controls.DefaultConfig().DraggingSmoothTime, cfg.DraggingSmoothTime)
	assert.True(t, math32.IsInf(cfg.MaxSpeed, 1))
}

func TestLoadYAML(t *testing.T) {
	for _, name := range []string{"orbit.yaml", "orbit.yml"} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), name, `
dragging_smooth_time: 0.05
min_distance: 2
max_distance: .inf
infinity_dolly: true
boundary_encloses_camera: true
`)
			cfg, err := Load(path)
			require.NoError(t, err)

			assert.Equal(t, float32(0.05), cfg.DraggingSmoothTime)
			assert.Equal(t, float32(2), cfg.MinDistance)
			assert.True(t, math32.IsInf(cfg.MaxDistance, 1))
			assert.True(t, cfg.InfinityDolly)
			assert.True(t, cfg.BoundaryEnclosesCamera)
		})
	}
}

func TestLoadEmptyFileGivesDefaults(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"empty.toml", "empty.yaml"} {
		cfg, err := Load(writeFile(t, dir, name, ""))
		require.NoError(t, err, name)
		assert.Equal(t, controls.DefaultConfig(), cfg, name)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(writeFile(t, dir, "orbit.json", `{}`))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = Load(writeFile(t, dir, "unknown.toml", "smooth_tim = 1.0\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, dir, "unknown.yaml", "smooth_tim: 1.0\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, dir, "invalid.yaml", "smooth_time: -1\n"))
	assert.ErrorIs(t, err, controls.ErrInvalidConfig)
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("a/b/Orbit.TOML")
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, f)
	assert.Equal(t, "toml", f.String())

	f, err = FormatFromPath("orbit.yml")
	require.NoError(t, err)
	assert.Equal(t, "yaml", f.String())

	_, err = FormatFromPath("orbit.ini")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Decode(nil, Format(9))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestWatcherPublishesReloadedConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "orbit.yaml", "smooth_time: 0.25\n")

	w, err := NewWatcher(path, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	writeFile(t, dir, "other.yaml", "smooth_time: 9\n")
	writeFile(t, dir, "orbit.yaml", "smooth_time: 0.75\n")

	select {
	case cfg := <-w.Configs:
		assert.Equal(t, float32(0.75), cfg.SmoothTime)
	case err := <-w.Errors:
		t.Fatalf("unexpected watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherReportsInvalidReload(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "orbit.toml", "smooth_time = 0.25\n")

	w, err := NewWatcher(path, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	writeFile(t, dir, "orbit.toml", "smooth_time = 0.0\n")

	select {
	case err := <-w.Errors:
		assert.ErrorIs(t, err, controls.ErrInvalidConfig)
	case <-w.Configs:
		t.Fatal("invalid config was published")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload error")
	}
}

func TestWatcherClose(t *testing.T) {
	_, err := NewWatcher("orbit.ini")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	path := writeFile(t, t.TempDir(), "orbit.toml", "")
	w, err := NewWatcher(path)
	require.NoError(t, err)

	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
	_, ok := <-w.Configs
	assert.False(t, ok)
	_, ok = <-w.Errors
	assert.False(t, ok)
}
