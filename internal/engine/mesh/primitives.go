package mesh

// NewBox creates a unit-extent box centred on the origin with outward
// normals and per-face UVs. Scale it through the model's world matrix.
func NewBox() *Mesh {
	vertices, indices := boxData(1, false)
	return New(vertices, indices)
}

// NewSkybox creates a large inward-facing box: normals and winding are
// flipped so the interior faces survive back-face culling.
func NewSkybox(size float32) *Mesh {
	vertices, indices := boxData(size, true)
	return New(vertices, indices)
}

// NewQuad creates a unit quad in the XY plane facing +Z, used for
// billboarded light flares.
func NewQuad() *Mesh {
	vertices := []float32{
		// x, y, z, nx, ny, nz, u, v
		-0.5, -0.5, 0, 0, 0, 1, 0, 1,
		0.5, -0.5, 0, 0, 0, 1, 1, 1,
		0.5, 0.5, 0, 0, 0, 1, 1, 0,
		-0.5, 0.5, 0, 0, 0, 1, 0, 0,
	}
	indices := []uint32{0, 1, 2, 0, 2, 3}
	return New(vertices, indices)
}

// boxData builds box geometry with half-extent h. Inward boxes flip both
// normals and winding.
func boxData(h float32, inward bool) ([]float32, []uint32) {
	type face struct {
		n       [3]float32 // Normal
		corners [4][3]float32
	}
	faces := []face{
		{[3]float32{0, 0, 1}, [4][3]float32{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}},
	}
	uvs := [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

	var vertices []float32
	var indices []uint32
	for fi, f := range faces {
		n := f.n
		if inward {
			n = [3]float32{-n[0], -n[1], -n[2]}
		}
		for ci, c := range f.corners {
			vertices = append(vertices,
				c[0], c[1], c[2],
				n[0], n[1], n[2],
				uvs[ci][0], uvs[ci][1],
			)
		}
		base := uint32(fi * 4)
		if inward {
			indices = append(indices, base, base+2, base+1, base, base+3, base+2)
		} else {
			indices = append(indices, base, base+1, base+2, base, base+2, base+3)
		}
	}
	return vertices, indices
}
