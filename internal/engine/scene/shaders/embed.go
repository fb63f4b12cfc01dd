// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// WaterSurfaceVertexShader displaces the water grid by the wave height field.
// Shared by the height and composite passes.
//
//go:embed water_surface.vert
var WaterSurfaceVertexShader string

// WaterHeightFragmentShader writes the displaced surface height to the
// single-channel height buffer.
//
//go:embed water_height.frag
var WaterHeightFragmentShader string

// WaterCompositeFragmentShader blends the refraction and reflection buffers
// on the water surface.
//
//go:embed water_composite.frag
var WaterCompositeFragmentShader string

// LitVertexShader is the vertex shader for per-pixel-lit geometry.
//
//go:embed lit.vert
var LitVertexShader string

// LitFragmentShader is the standard two-light fragment shader.
//
//go:embed lit.frag
var LitFragmentShader string

// LitRefractedFragmentShader is the lit fragment shader for the refraction
// pass: underwater geometry only, darkened with depth.
//
//go:embed lit_refracted.frag
var LitRefractedFragmentShader string

// LitReflectedFragmentShader is the lit fragment shader for the reflection
// pass: above-water geometry only.
//
//go:embed lit_reflected.frag
var LitReflectedFragmentShader string

// TintedVertexShader is the vertex shader for unlit geometry.
//
//go:embed tinted.vert
var TintedVertexShader string

// TintedFragmentShader modulates a texture by the model colour.
//
//go:embed tinted.frag
var TintedFragmentShader string

// TintedRefractedFragmentShader is the unlit fragment shader for the
// refraction pass.
//
//go:embed tinted_refracted.frag
var TintedRefractedFragmentShader string

// TintedReflectedFragmentShader is the unlit fragment shader for the
// reflection pass.
//
//go:embed tinted_reflected.frag
var TintedReflectedFragmentShader string
