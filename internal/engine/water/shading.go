package water

import (
	"github.com/chewxy/math32"

	"github.com/nnouhi/Water/pkg/math"
)

// Shading helpers mirroring the per-pixel arithmetic of the refraction and
// composite shaders. The GLSL is the hot path; these exist so the math has
// a host-side reference and tests.

// DepthBelowSurface returns the water depth of a pixel: how far the shaded
// point sits below the water surface directly above it. Negative means the
// point is above the water and the refraction pass discards it.
func DepthBelowSurface(waterHeight, pixelWorldY float32) float32 {
	return waterHeight - pixelWorldY
}

// DarkenFactors returns the per-channel blend factors toward the underwater
// tint for a point at the given depth. Each channel saturates independently
// once depth reaches that channel's extinction distance. Negative depths
// clamp to zero so pixels with no water above them are never tinted.
func DarkenFactors(depth float32, extinction math.Vec3) math.Vec3 {
	if depth < 0 {
		depth = 0
	}
	return math.Vec3{
		X: math.Saturate(depth / extinction.X),
		Y: math.Saturate(depth / extinction.Y),
		Z: math.Saturate(depth / extinction.Z),
	}
}

// RefractionAlpha returns the normalised depth written to the refraction
// buffer's alpha channel, used by the composite pass to fade distortion
// near the shore.
func RefractionAlpha(depth, maxDistortionDistance float32) float32 {
	if depth < 0 {
		depth = 0
	}
	return math.Saturate(depth / maxDistortionDistance)
}

// DistortionOffset returns the UV offset applied when sampling the
// refraction or reflection buffer. The wave normal's horizontal components
// drive the offset; it scales with the wave scale so a flat surface
// (waveScale = 0) samples the buffers undistorted.
func DistortionOffset(normal math.Vec3, strength, waveScale float32) math.Vec2 {
	if waveScale < 0 {
		waveScale = 0
	}
	return math.Vec2{X: normal.X, Y: normal.Z}.Scale(strength * waveScale)
}

// FresnelWeight returns the reflection weight for the composite blend using
// Schlick's approximation. cosAngle is the dot of the view direction and
// surface normal. Grazing angles (cos near 0) approach full reflection;
// head-on views fall back to the base reflectance of the configured
// refractive index, i.e. mostly refraction.
func FresnelWeight(cosAngle, refractiveIndex float32) float32 {
	cosAngle = math.Saturate(cosAngle)
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 *= r0
	oneMinus := 1 - cosAngle
	pow5 := oneMinus * oneMinus
	pow5 *= pow5 * oneMinus
	return math.Saturate(r0 + (1-r0)*pow5)
}

// SpecularTerm returns the Blinn-Phong specular factor for the composite
// highlight.
func SpecularTerm(normal, halfway math.Vec3, power float32) float32 {
	d := math.Saturate(normal.Dot(halfway))
	return math32.Pow(d, power)
}
