package mesh

import (
	"testing"

	"github.com/nnouhi/Water/pkg/math"
)

func TestBuildGridCounts(t *testing.T) {
	vertices, indices := BuildGrid(
		math.Vec3{X: -200, Y: 0, Z: -200},
		math.Vec3{X: 200, Y: 0, Z: 200},
		4, 4, nil,
	)

	wantVerts := 5 * 5 * floatsPerVertex
	if len(vertices) != wantVerts {
		t.Errorf("vertex floats = %d, want %d", len(vertices), wantVerts)
	}
	wantIndices := 4 * 4 * 6
	if len(indices) != wantIndices {
		t.Errorf("indices = %d, want %d", len(indices), wantIndices)
	}
}

func TestBuildGridFlatNormalsUp(t *testing.T) {
	vertices, _ := BuildGrid(
		math.Vec3{X: 0, Y: 10, Z: 0},
		math.Vec3{X: 100, Y: 10, Z: 100},
		2, 2, nil,
	)

	for i := 0; i < len(vertices); i += floatsPerVertex {
		if vertices[i+1] != 10 {
			t.Fatalf("vertex %d Y = %v, want 10", i/floatsPerVertex, vertices[i+1])
		}
		nx, ny, nz := vertices[i+3], vertices[i+4], vertices[i+5]
		if nx != 0 || ny != 1 || nz != 0 {
			t.Fatalf("vertex %d normal = (%v,%v,%v), want (0,1,0)", i/floatsPerVertex, nx, ny, nz)
		}
	}
}

func TestBuildGridUVRange(t *testing.T) {
	vertices, _ := BuildGrid(
		math.Vec3{X: -1, Y: 0, Z: -1},
		math.Vec3{X: 1, Y: 0, Z: 1},
		3, 3, nil,
	)

	// First vertex UV (0,0), last vertex UV (1,1).
	if vertices[6] != 0 || vertices[7] != 0 {
		t.Errorf("first UV = (%v,%v), want (0,0)", vertices[6], vertices[7])
	}
	last := len(vertices) - floatsPerVertex
	if vertices[last+6] != 1 || vertices[last+7] != 1 {
		t.Errorf("last UV = (%v,%v), want (1,1)", vertices[last+6], vertices[last+7])
	}
}

func TestBuildGridHeightFunc(t *testing.T) {
	vertices, _ := BuildGrid(
		math.Vec3{X: 0, Y: 0, Z: 0},
		math.Vec3{X: 10, Y: 0, Z: 10},
		1, 1,
		func(x, z float32) float32 { return x + z },
	)

	// Corner (10, 10) should sit at Y = 20.
	last := len(vertices) - floatsPerVertex
	if vertices[last+1] != 20 {
		t.Errorf("corner height = %v, want 20", vertices[last+1])
	}
}
