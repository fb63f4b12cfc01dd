// Package lighting provides point light support for the scene.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/nnouhi/Water/pkg/math"
)

// PointLight is a coloured point light source.
type PointLight struct {
	Position math.Vec3
	Colour   math.Vec3 // RGB colour (0-1 range)
	Strength float32   // Intensity multiplier applied to Colour in shaders
}

// ModelScale sizes the debug marker mesh so brighter lights render larger.
func (l PointLight) ModelScale() float32 {
	return math32.Sqrt(l.Strength)
}

// Orbit animates a light on a horizontal circle around a centre point.
type Orbit struct {
	Centre math.Vec3
	Radius float32
	Speed  float32 // Radians per second
	angle  float32
	paused bool
}

// NewOrbit creates an orbit starting at angle zero.
func NewOrbit(centre math.Vec3, radius, speed float32) *Orbit {
	return &Orbit{Centre: centre, Radius: radius, Speed: speed}
}

// TogglePause freezes or resumes the orbit animation.
func (o *Orbit) TogglePause() {
	o.paused = !o.paused
}

// Advance steps the orbit by dt seconds and returns the new position.
func (o *Orbit) Advance(dt float32) math.Vec3 {
	if !o.paused {
		o.angle += o.Speed * dt
	}
	return o.Position()
}

// Position returns the current orbit position.
func (o *Orbit) Position() math.Vec3 {
	return math.Vec3{
		X: o.Centre.X + o.Radius*math32.Cos(o.angle),
		Y: o.Centre.Y,
		Z: o.Centre.Z + o.Radius*math32.Sin(o.angle),
	}
}
