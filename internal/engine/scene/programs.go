package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/nnouhi/Water/internal/engine/scene/shaders"
	"github.com/nnouhi/Water/internal/engine/shader"
)

// Texture units used across the shader programs. The water normal/height
// map stays bound for the whole frame; the rest rotate per pass.
const (
	unitDiffuse      = 0
	unitWaterMap     = 1
	unitHeightBuffer = 2
	unitRefraction   = 3
	unitReflection   = 4
)

// programs holds one compiled shader program per pass/material combination.
type programs struct {
	waterHeight     uint32
	waterComposite  uint32
	lit             uint32
	litRefracted    uint32
	litReflected    uint32
	tinted          uint32
	tintedRefracted uint32
	tintedReflected uint32

	locHeightMaxWave          int32
	locCompositeMaxWave       int32
	locCompositeRefractiveIdx int32
	locLitRefrExtinction      int32
	locLitRefrMaxDist         int32
	locTintedRefrExtinction   int32
	locTintedRefrMaxDist      int32
}

// newPrograms compiles every shader program, binds their uniform blocks to
// the shared binding points and assigns sampler units. Any failure is
// fatal to startup.
func newPrograms() (*programs, error) {
	p := &programs{}

	type build struct {
		dst      *uint32
		name     string
		vertex   string
		fragment string
		samplers map[string]int32
	}
	builds := []build{
		{&p.waterHeight, "water height", shaders.WaterSurfaceVertexShader, shaders.WaterHeightFragmentShader,
			map[string]int32{"WaterNormalHeightMap": unitWaterMap}},
		{&p.waterComposite, "water composite", shaders.WaterSurfaceVertexShader, shaders.WaterCompositeFragmentShader,
			map[string]int32{"WaterNormalHeightMap": unitWaterMap, "RefractionBuffer": unitRefraction, "ReflectionBuffer": unitReflection}},
		{&p.lit, "lit", shaders.LitVertexShader, shaders.LitFragmentShader,
			map[string]int32{"DiffuseSpecularMap": unitDiffuse}},
		{&p.litRefracted, "lit refracted", shaders.LitVertexShader, shaders.LitRefractedFragmentShader,
			map[string]int32{"DiffuseSpecularMap": unitDiffuse, "WaterHeightBuffer": unitHeightBuffer}},
		{&p.litReflected, "lit reflected", shaders.LitVertexShader, shaders.LitReflectedFragmentShader,
			map[string]int32{"DiffuseSpecularMap": unitDiffuse, "WaterHeightBuffer": unitHeightBuffer}},
		{&p.tinted, "tinted", shaders.TintedVertexShader, shaders.TintedFragmentShader,
			map[string]int32{"DiffuseSpecularMap": unitDiffuse}},
		{&p.tintedRefracted, "tinted refracted", shaders.TintedVertexShader, shaders.TintedRefractedFragmentShader,
			map[string]int32{"DiffuseSpecularMap": unitDiffuse, "WaterHeightBuffer": unitHeightBuffer}},
		{&p.tintedReflected, "tinted reflected", shaders.TintedVertexShader, shaders.TintedReflectedFragmentShader,
			map[string]int32{"DiffuseSpecularMap": unitDiffuse, "WaterHeightBuffer": unitHeightBuffer}},
	}

	for _, b := range builds {
		prog, err := shader.CompileProgram(b.vertex, b.fragment)
		if err != nil {
			p.destroy()
			return nil, fmt.Errorf("%s shader: %w", b.name, err)
		}
		if err := shader.BindUniformBlock(prog, "PerFrame", perFrameBinding); err != nil {
			p.destroy()
			return nil, fmt.Errorf("%s shader: %w", b.name, err)
		}
		if err := shader.BindUniformBlock(prog, "PerModel", perModelBinding); err != nil {
			p.destroy()
			return nil, fmt.Errorf("%s shader: %w", b.name, err)
		}

		gl.UseProgram(prog)
		for name, unit := range b.samplers {
			if loc := shader.Uniform(prog, name); loc >= 0 {
				gl.Uniform1i(loc, unit)
			}
		}
		*b.dst = prog
	}
	gl.UseProgram(0)

	p.locHeightMaxWave = shader.Uniform(p.waterHeight, "MaxWaveHeight")
	p.locCompositeMaxWave = shader.Uniform(p.waterComposite, "MaxWaveHeight")
	p.locCompositeRefractiveIdx = shader.Uniform(p.waterComposite, "RefractiveIndex")
	p.locLitRefrExtinction = shader.Uniform(p.litRefracted, "WaterExtinction")
	p.locLitRefrMaxDist = shader.Uniform(p.litRefracted, "MaxDistortionDistance")
	p.locTintedRefrExtinction = shader.Uniform(p.tintedRefracted, "WaterExtinction")
	p.locTintedRefrMaxDist = shader.Uniform(p.tintedRefracted, "MaxDistortionDistance")

	return p, nil
}

func (p *programs) destroy() {
	for _, prog := range []uint32{
		p.waterHeight, p.waterComposite,
		p.lit, p.litRefracted, p.litReflected,
		p.tinted, p.tintedRefracted, p.tintedReflected,
	} {
		if prog != 0 {
			gl.DeleteProgram(prog)
		}
	}
	*p = programs{}
}
