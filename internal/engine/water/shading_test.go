package water

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nnouhi/Water/pkg/math"
)

func TestDarkenFactorsScenario(t *testing.T) {
	// Water plane at Y=10, object at Y=5: depth 5 with extinction (9,7,3)
	// tints blue fully and red least.
	depth := DepthBelowSurface(10, 5)
	assert.Equal(t, float32(5), depth)

	factors := DarkenFactors(depth, math.Vec3{X: 9, Y: 7, Z: 3})
	assert.InDelta(t, 0.556, float64(factors.X), 1e-3)
	assert.InDelta(t, 0.714, float64(factors.Y), 1e-3)
	assert.InDelta(t, 1.0, float64(factors.Z), 1e-6)
}

func TestDarkenFactorsMonotonicAndSaturating(t *testing.T) {
	extinction := math.Vec3{X: 9, Y: 7, Z: 3}

	prev := DarkenFactors(-10, extinction)
	for depth := float32(-5); depth <= 20; depth += 0.5 {
		cur := DarkenFactors(depth, extinction)
		assert.GreaterOrEqual(t, cur.X, prev.X, "red at depth %v", depth)
		assert.GreaterOrEqual(t, cur.Y, prev.Y, "green at depth %v", depth)
		assert.GreaterOrEqual(t, cur.Z, prev.Z, "blue at depth %v", depth)
		prev = cur
	}

	// Saturates at 1 per channel once depth/extinction >= 1.
	deep := DarkenFactors(100, extinction)
	assert.Equal(t, math.Vec3{X: 1, Y: 1, Z: 1}, deep)
}

func TestNegativeDepthNeverTints(t *testing.T) {
	// A pixel above the water (negative depth) is discarded by the
	// refraction shader; the clamped factors guarantee that even extreme
	// negative depths never extrapolate the tint.
	factors := DarkenFactors(-1e6, math.Vec3{X: 9, Y: 7, Z: 3})
	assert.Equal(t, math.Vec3{}, factors)
	assert.Zero(t, RefractionAlpha(-42, 30))
}

func TestDepthBelowSurfaceSign(t *testing.T) {
	assert.Negative(t, DepthBelowSurface(10, 15), "object above water")
	assert.Positive(t, DepthBelowSurface(10, 5), "object below water")
}

func TestDistortionVanishesAtZeroWaveScale(t *testing.T) {
	n := math.Vec3{X: 0.4, Y: 0.8, Z: -0.3}

	assert.Equal(t, math.Vec2{}, DistortionOffset(n, 0.1, 0))
	assert.Equal(t, math.Vec2{}, DistortionOffset(n, 0.1, -1))

	off := DistortionOffset(n, 0.1, 0.6)
	assert.InDelta(t, 0.4*0.1*0.6, float64(off.X), 1e-6)
	assert.InDelta(t, -0.3*0.1*0.6, float64(off.Y), 1e-6)
}

func TestFresnelWeightQualitative(t *testing.T) {
	const index = 1.33 // Water

	grazing := FresnelWeight(0, index)
	headOn := FresnelWeight(1, index)
	assert.InDelta(t, 1.0, float64(grazing), 1e-5, "grazing angles reflect fully")
	assert.Less(t, headOn, float32(0.05), "head-on views mostly refract")

	// Monotonically more reflective toward grazing angles.
	prev := headOn
	for cos := float32(0.9); cos >= 0; cos -= 0.1 {
		w := FresnelWeight(cos, index)
		assert.GreaterOrEqual(t, w, prev, "cos %v", cos)
		prev = w
	}
}

func TestRefractionAlphaSaturates(t *testing.T) {
	assert.InDelta(t, 0.5, float64(RefractionAlpha(15, 30)), 1e-6)
	assert.Equal(t, float32(1), RefractionAlpha(60, 30))
}

func TestSpecularTerm(t *testing.T) {
	up := math.Vec3{Y: 1}
	assert.InDelta(t, 1.0, float64(SpecularTerm(up, up, 256)), 1e-6)
	assert.Zero(t, SpecularTerm(up, math.Vec3{X: 1}, 256))
}
