package camera

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// UniformSize is the packed size of a Uniform in bytes.
const UniformSize = 80

// Uniform is the per-frame camera snapshot a renderer uploads after the controls have
// composed a pose. Layout is std430 compatible:
//
//	offset  0: view-projection matrix (mat4x4<f32>, column-major)
//	offset 64: world-space camera position (vec3<f32>)
//	offset 76: zoom (f32)
type Uniform struct {
	ViewProj mgl32.Mat4
	Position mgl32.Vec3
	Zoom     float32
}

// NewUniform captures the camera's current matrices and position.
//
// Parameters:
//   - c: the camera to snapshot
//
// Returns:
//   - Uniform: the snapshot
func NewUniform(c Camera) Uniform {
	return Uniform{
		ViewProj: c.ViewProjectionMatrix(),
		Position: c.Position(),
		Zoom:     c.Zoom(),
	}
}

// Marshal serializes the uniform into a little-endian byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer (UniformSize bytes)
func (u Uniform) Marshal() []byte {
	return u.AppendTo(make([]byte, 0, UniformSize))
}

// AppendTo appends the serialized uniform to buf, so several views can share one buffer.
//
// Parameters:
//   - buf: the destination buffer
//
// Returns:
//   - []byte: buf extended by UniformSize bytes
func (u Uniform) AppendTo(buf []byte) []byte {
	for _, v := range u.ViewProj {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
	}
	for _, v := range u.Position {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
	}
	return binary.LittleEndian.AppendUint32(buf, math.Float32bits(u.Zoom))
}
