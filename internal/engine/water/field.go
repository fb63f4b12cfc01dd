// Package water implements the wave height field: the procedural
// multi-octave height and normal sampling that drives both the water
// vertex displacement and the water lighting. The GLSL water shaders
// evaluate exactly the same math on the GPU; this package is the
// host-side reference used for map generation and testing.
package water

import (
	"github.com/chewxy/math32"

	"github.com/nnouhi/Water/pkg/math"
)

// NumOctaves is the number of scale/speed pairs summed per sample.
const NumOctaves = 4

// OctaveScales are the spatial scales the shared map is sampled at.
var OctaveScales = [NumOctaves]float32{0.5, 1.0, 2.0, 4.0}

// OctaveSpeeds are the UV scroll speeds paired one-to-one with the scales,
// so each octave animates independently.
var OctaveSpeeds = [NumOctaves]float32{0.5, 1.0, 1.7, 2.6}

// HeightToWidthRatio is the fixed ratio between the height range encoded in
// the source map and the width of the surface it tiles. The maximum wave
// height of a surface is its width times this ratio.
const HeightToWidthRatio = 1.0 / 32.0

// Sample is the evaluated wave field at one UV coordinate.
type Sample struct {
	Height float32   // Displacement in world units (already scaled)
	Normal math.Vec3 // Unit surface normal
}

// Field evaluates the wave height field over a tileable normal/height map.
type Field struct {
	Map           *Map
	MaxWaveHeight float32
}

// NewField creates a field for a water surface of the given world-space
// width, deriving the maximum wave height from the source map's fixed
// height-to-width ratio.
func NewField(m *Map, surfaceWidth float32) *Field {
	return &Field{
		Map:           m,
		MaxWaveHeight: surfaceWidth * HeightToWidthRatio,
	}
}

// octaveUV returns the map coordinate for octave i at the given surface UV
// and movement offset.
func octaveUV(uv, movement math.Vec2, i int) math.Vec2 {
	return uv.Scale(OctaveScales[i]).Add(movement.Scale(OctaveSpeeds[i]))
}

// Height returns the world-space vertical displacement at uv. The four
// octave heights are summed, averaged, centred around zero so waves move
// both up and down from rest, then scaled by the maximum wave height and
// the current wave scale. A non-positive wave scale disables displacement.
func (f *Field) Height(uv, movement math.Vec2, waveScale float32) float32 {
	if waveScale <= 0 {
		return 0
	}
	var sum float32
	for i := 0; i < NumOctaves; i++ {
		p := octaveUV(uv, movement, i)
		_, _, _, a := f.Map.Sample(p.X, p.Y)
		sum += a
	}
	return (sum*0.25 - 0.5) * f.MaxWaveHeight * waveScale
}

// Normal returns the perturbed unit surface normal at uv. Each octave's RGB
// sample is remapped from [0,1] to [-1,1]; the four normals are averaged and
// renormalised. Normals stay perturbed even at zero wave scale so lighting
// remains active on a flattened surface.
func (f *Field) Normal(uv, movement math.Vec2) math.Vec3 {
	var n math.Vec3
	for i := 0; i < NumOctaves; i++ {
		p := octaveUV(uv, movement, i)
		r, g, b, _ := f.Map.Sample(p.X, p.Y)
		n.X += r*2 - 1
		n.Y += g*2 - 1
		n.Z += b*2 - 1
	}
	return n.Scale(0.25).Normalize()
}

// At evaluates both height and normal at uv. Pure function of its inputs
// and the shared map; safe to call from any pass.
func (f *Field) At(uv, movement math.Vec2, waveScale float32) Sample {
	return Sample{
		Height: f.Height(uv, movement, waveScale),
		Normal: f.Normal(uv, movement),
	}
}

// wrap maps any coordinate into [0,1) for cyclic sampling.
func wrap(x float32) float32 {
	x -= math32.Floor(x)
	if x < 0 {
		x += 1
	}
	return x
}
