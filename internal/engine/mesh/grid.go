package mesh

import (
	"github.com/nnouhi/Water/pkg/math"
)

// HeightFunc returns the world Y for a grid point at (x, z).
type HeightFunc func(x, z float32) float32

// BuildGrid creates the vertex and index data for a regular grid spanning
// [min, max] on the XZ plane with cellsX by cellsZ cells. UVs run 0..1
// across the grid. heightFn may be nil for a flat grid at min.Y.
//
// Normals are derived from the height function's central differences, so a
// flat grid gets straight-up normals.
func BuildGrid(min, max math.Vec3, cellsX, cellsZ int, heightFn HeightFunc) ([]float32, []uint32) {
	if cellsX < 1 {
		cellsX = 1
	}
	if cellsZ < 1 {
		cellsZ = 1
	}

	sizeX := max.X - min.X
	sizeZ := max.Z - min.Z
	stepX := sizeX / float32(cellsX)
	stepZ := sizeZ / float32(cellsZ)

	height := func(x, z float32) float32 {
		if heightFn == nil {
			return min.Y
		}
		return heightFn(x, z)
	}

	vertsX := cellsX + 1
	vertsZ := cellsZ + 1
	vertices := make([]float32, 0, vertsX*vertsZ*floatsPerVertex)
	for iz := 0; iz < vertsZ; iz++ {
		for ix := 0; ix < vertsX; ix++ {
			x := min.X + float32(ix)*stepX
			z := min.Z + float32(iz)*stepZ
			y := height(x, z)

			// Central differences for the normal.
			hl := height(x-stepX, z)
			hr := height(x+stepX, z)
			hd := height(x, z-stepZ)
			hu := height(x, z+stepZ)
			n := math.Vec3{
				X: (hl - hr) / (2 * stepX),
				Y: 1,
				Z: (hd - hu) / (2 * stepZ),
			}.Normalize()

			u := float32(ix) / float32(cellsX)
			v := float32(iz) / float32(cellsZ)
			vertices = append(vertices, x, y, z, n.X, n.Y, n.Z, u, v)
		}
	}

	indices := make([]uint32, 0, cellsX*cellsZ*6)
	for iz := 0; iz < cellsZ; iz++ {
		for ix := 0; ix < cellsX; ix++ {
			i0 := uint32(iz*vertsX + ix)
			i1 := i0 + 1
			i2 := i0 + uint32(vertsX)
			i3 := i2 + 1
			// Counter-clockwise winding seen from above.
			indices = append(indices, i0, i2, i1, i1, i2, i3)
		}
	}

	return vertices, indices
}

// NewGrid builds and uploads a grid mesh.
func NewGrid(min, max math.Vec3, cellsX, cellsZ int, heightFn HeightFunc) *Mesh {
	vertices, indices := BuildGrid(min, max, cellsX, cellsZ, heightFn)
	return New(vertices, indices)
}
