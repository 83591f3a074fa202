package rig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/controls"
)

const frame = float32(1.0 / 60.0)

func newControls(t *testing.T, z float32) controls.OrbitControls {
	t.Helper()
	cam := camera.NewCamera(camera.WithPosition(0, 0, z), camera.WithLookAt(0, 0, 0))
	oc, err := controls.NewOrbitControls(cam)
	require.NoError(t, err)
	return oc
}

func TestRigUpdateReportsChangedControls(t *testing.T) {
	a, b, c := newControls(t, 10), newControls(t, 20), newControls(t, 30)
	r := NewRig(WithWorkers(2), WithControls(a, b))
	assert.Equal(t, 2, r.Add(c))
	assert.Equal(t, 3, r.Len())

	assert.Empty(t, r.Update(frame))

	b.DollyTo(5)
	c.RotateTo(1, c.Spherical().Phi)
	assert.Equal(t, []int{1, 2}, r.Update(frame))

	for range 600 {
		if len(r.Update(frame)) == 0 {
			break
		}
	}
	assert.Equal(t, float32(5), b.Spherical().Radius)
	assert.Equal(t, float32(1), c.Spherical().Theta)
	assert.Equal(t, float32(10), a.Spherical().Radius)
}

func TestRigSingleControls(t *testing.T) {
	oc := newControls(t, 10)
	r := NewRig(WithWorkers(0))
	assert.Nil(t, r.Update(frame))

	r.Add(oc)
	oc.DollyTo(3)
	assert.Equal(t, []int{0}, r.Update(frame))
	assert.Same(t, oc, r.Controls(0))
	assert.Nil(t, r.Controls(1))
	assert.Nil(t, r.Controls(-1))
}

func TestRigManyControlsStayIndependent(t *testing.T) {
	r := NewRig(WithWorkers(4))
	for i := range 32 {
		oc := newControls(t, float32(10+i))
		oc.DollyTo(float32(5 + i))
		r.Add(oc)
	}

	settled := false
	for range 600 {
		if len(r.Update(frame)) == 0 {
			settled = true
			break
		}
	}
	require.True(t, settled, "rig never went quiet")
	for i := range r.Len() {
		assert.Equal(t, float32(5+i), r.Controls(i).Spherical().Radius, "controls %d", i)
	}
}
