package scene

import (
	"github.com/nnouhi/Water/internal/engine/camera"
	"github.com/nnouhi/Water/internal/engine/mesh"
	"github.com/nnouhi/Water/internal/engine/texture"
	"github.com/nnouhi/Water/pkg/math"
)

// Model is a placed mesh with its texture and tint colour.
type Model struct {
	Mesh     *mesh.Mesh
	Texture  *texture.Texture
	Position math.Vec3
	Scale    math.Vec3
	Colour   math.Vec3
}

// NewModel creates a model at the origin with unit scale and white tint.
func NewModel(m *mesh.Mesh, tex *texture.Texture) *Model {
	return &Model{
		Mesh:    m,
		Texture: tex,
		Scale:   math.Vec3{X: 1, Y: 1, Z: 1},
		Colour:  math.Vec3{X: 1, Y: 1, Z: 1},
	}
}

// WorldMatrix returns the model's translate-scale world transform.
func (m *Model) WorldMatrix() math.Mat4 {
	return math.Translate(m.Position.X, m.Position.Y, m.Position.Z).
		Mul(math.Scale(m.Scale.X, m.Scale.Y, m.Scale.Z))
}

// billboardMatrix orients a quad towards the rendering camera. Built from
// the current camera pose, so it also faces the mirrored camera correctly
// during the reflection pass.
func billboardMatrix(pose camera.Pose, position math.Vec3, scale float32) math.Mat4 {
	return math.FromAxes(
		pose.XAxis.Scale(scale),
		pose.YAxis.Scale(scale),
		pose.ZAxis.Scale(scale),
		position,
	)
}
