package camera

import (
	"encoding/binary"
	"math"
	"testing"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformLayout(t *testing.T) {
	assert.Equal(t, uintptr(UniformSize), unsafe.Sizeof(Uniform{}))
}

func TestUniformMarshal(t *testing.T) {
	c := NewCamera(WithPosition(1, 2, 3), WithLookAt(0, 0, 0), WithZoom(2))
	u := NewUniform(c)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, u.Position)
	assert.Equal(t, float32(2), u.Zoom)
	assert.Equal(t, c.ViewProjectionMatrix(), u.ViewProj)

	buf := u.Marshal()
	require.Len(t, buf, UniformSize)

	read := func(offset int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
	}
	for i := range 16 {
		assert.Equal(t, u.ViewProj[i], read(i*4), "matrix element %d", i)
	}
	assert.Equal(t, float32(1), read(64))
	assert.Equal(t, float32(2), read(68))
	assert.Equal(t, float32(3), read(72))
	assert.Equal(t, float32(2), read(76))
}

func TestUniformAppendTo(t *testing.T) {
	a := NewUniform(NewCamera(WithPosition(0, 0, 5)))
	b := NewUniform(NewCamera(WithPosition(0, 0, 9)))
	buf := b.AppendTo(a.Marshal())
	require.Len(t, buf, 2*UniformSize)
	assert.Equal(t, a.Marshal(), buf[:UniformSize])
	assert.Equal(t, b.Marshal(), buf[UniformSize:])
}
