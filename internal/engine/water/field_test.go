package water

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nnouhi/Water/pkg/math"
)

func testField(t *testing.T) *Field {
	t.Helper()
	m := Generate(64, 42)
	require.Len(t, m.Pix, 64*64*4)
	return NewField(m, 400)
}

func TestOctaveSumCommutative(t *testing.T) {
	f := testField(t)
	uv := math.Vec2{X: 0.31, Y: 0.77}
	movement := math.Vec2{X: 1.25, Y: 0.4}

	// The averaged height must not depend on the order the four octaves
	// are sampled in.
	orders := [][4]int{
		{0, 1, 2, 3},
		{3, 2, 1, 0},
		{2, 0, 3, 1},
		{1, 3, 0, 2},
	}
	var want float32
	for oi, order := range orders {
		var sum float32
		for _, i := range order {
			p := octaveUV(uv, movement, i)
			_, _, _, a := f.Map.Sample(p.X, p.Y)
			sum += a
		}
		if oi == 0 {
			want = sum
			continue
		}
		assert.InDelta(t, want, sum, 1e-6, "octave order %v", order)
	}
}

func TestHeightMatchesOctaveAverage(t *testing.T) {
	f := testField(t)
	uv := math.Vec2{X: 0.1, Y: 0.9}
	movement := math.Vec2{X: 0.02, Y: 0.03}

	var sum float32
	for i := 0; i < NumOctaves; i++ {
		p := octaveUV(uv, movement, i)
		_, _, _, a := f.Map.Sample(p.X, p.Y)
		sum += a
	}
	want := (sum*0.25 - 0.5) * f.MaxWaveHeight * 0.6
	assert.InDelta(t, want, f.Height(uv, movement, 0.6), 1e-5)
}

func TestHeightZeroAtNonPositiveWaveScale(t *testing.T) {
	f := testField(t)
	uv := math.Vec2{X: 0.5, Y: 0.5}
	movement := math.Vec2{X: 3, Y: 7}

	assert.Zero(t, f.Height(uv, movement, 0))
	assert.Zero(t, f.Height(uv, movement, -2.5))
}

func TestNormalStillPerturbedAtZeroWaveScale(t *testing.T) {
	f := testField(t)
	movement := math.Vec2{X: 0.4, Y: 0.1}

	s := f.At(math.Vec2{X: 0.23, Y: 0.61}, movement, 0)
	assert.Zero(t, s.Height)
	assert.InDelta(t, 1.0, float64(s.Normal.Length()), 1e-4, "normal must stay unit length")

	// A wavy map should perturb at least some normals off straight up.
	perturbed := false
	for _, uv := range []math.Vec2{{X: 0.1, Y: 0.1}, {X: 0.5, Y: 0.25}, {X: 0.8, Y: 0.9}} {
		n := f.Normal(uv, movement)
		if n.X != 0 || n.Z != 0 {
			perturbed = true
		}
	}
	assert.True(t, perturbed, "expected perturbed normals from the generated map")
}

func TestMapSampleWraps(t *testing.T) {
	m := Generate(32, 7)

	r0, g0, b0, a0 := m.Sample(0.3, 0.8)
	r1, g1, b1, a1 := m.Sample(1.3, -0.2)
	assert.InDelta(t, r0, r1, 1e-6)
	assert.InDelta(t, g0, g1, 1e-6)
	assert.InDelta(t, b0, b1, 1e-6)
	assert.InDelta(t, a0, a1, 1e-6)
}

func TestGenerateRanges(t *testing.T) {
	m := Generate(32, 1)
	for i := 0; i < len(m.Pix); i += 4 {
		n := math.Vec3{
			X: m.Pix[i+0]*2 - 1,
			Y: m.Pix[i+1]*2 - 1,
			Z: m.Pix[i+2]*2 - 1,
		}
		require.InDelta(t, 1.0, float64(n.Length()), 2e-2, "packed normal at %d", i/4)
		require.GreaterOrEqual(t, m.Pix[i+3], float32(0))
		require.LessOrEqual(t, m.Pix[i+3], float32(1))
	}
}

func TestToRGBARoundTrip(t *testing.T) {
	m := Generate(16, 3)
	img := m.ToRGBA()
	back := FromImage(img)

	require.Equal(t, m.Width, back.Width)
	require.Equal(t, m.Height, back.Height)
	for i := range m.Pix {
		assert.InDelta(t, m.Pix[i], back.Pix[i], 1.0/255+1e-4)
	}
}
