// Package scene owns the demo scene and its four-pass water rendering:
// water height, refracted scene, mirrored reflected scene, then the main
// pass compositing both buffers on the water surface.
package scene

import (
	"bytes"
	"fmt"
	"image"
	"os"

	"github.com/aquilax/go-perlin"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/nnouhi/Water/internal/engine/camera"
	"github.com/nnouhi/Water/internal/engine/input"
	"github.com/nnouhi/Water/internal/engine/lighting"
	"github.com/nnouhi/Water/internal/engine/mesh"
	"github.com/nnouhi/Water/internal/engine/rendertarget"
	"github.com/nnouhi/Water/internal/engine/texture"
	"github.com/nnouhi/Water/internal/engine/water"
	"github.com/nnouhi/Water/pkg/math"
)

// Update rates for the runtime controls, all per second of frame time.
const (
	planeMoveRate     = 5.0
	waveScaleRate     = 0.5
	movementRateX     = 0.01
	movementRateY     = 0.015
	orbitRadius       = 20.0
	orbitAngularSpeed = 0.7
)

const (
	ambientLevel  = 0.5
	specularPower = 256.0
	skyboxSize    = 5000.0
	terrainSeed   = 1847
)

var backgroundColour = [4]float32{0.5, 0.5, 0.5, 1}

// Config are the scene parameters supplied from the application config.
type Config struct {
	Width  int32
	Height int32

	PlaneY                float32
	WaveScale             float32
	RefractiveIndex       float32
	Extinction            math.Vec3
	MaxDistortionDistance float32
	SurfaceExtent         float32 // Half-width of the water square
	SurfaceCells          int     // Grid cells along each side
	WaterMapPath          string  // Optional normal/height map asset
}

// Scene owns the scene content, render targets, shader programs and water
// state, and runs the per-frame update and render phases.
type Scene struct {
	cfg     Config
	targets *rendertarget.Set
	progs   *programs

	perFrame PerFrameBlock
	perModel PerModelBlock
	frameUBO *uniformBuffer
	modelUBO *uniformBuffer

	waterMesh *mesh.Mesh
	waterMap  *texture.Texture
	field     *water.Field

	ground *Model
	crates []*Model
	sky    *Model

	flareMesh *mesh.Mesh
	flareTex  *texture.Texture
	lights    []lighting.PointLight
	orbit     *lighting.Orbit

	planeY    float32
	waveScale float32
	movement  math.Vec2
}

// New builds the scene: render targets, shader programs, constant buffers,
// meshes, textures and lights. Any failure here is fatal to startup.
func New(cfg Config) (*Scene, error) {
	s := &Scene{
		cfg:       cfg,
		planeY:    cfg.PlaneY,
		waveScale: clampWaveScale(cfg.WaveScale),
	}

	var err error
	s.targets, err = rendertarget.NewSet(cfg.Width, cfg.Height, backgroundColour)
	if err != nil {
		return nil, fmt.Errorf("render targets: %w", err)
	}

	s.progs, err = newPrograms()
	if err != nil {
		s.Destroy()
		return nil, err
	}

	s.frameUBO = newUniformBuffer(PerFrameBlockSize, perFrameBinding)
	s.modelUBO = newUniformBuffer(PerModelBlockSize, perModelBinding)
	for i := range s.perModel.BoneMatrices {
		s.perModel.BoneMatrices[i] = math.Identity()
	}

	s.loadWaterMap()
	s.buildContent()
	s.setupLights()
	s.applyWaterUniforms()

	return s, nil
}

// loadWaterMap loads the water normal/height map asset, or generates a
// tileable one procedurally when the asset is missing.
func (s *Scene) loadWaterMap() {
	var m *water.Map
	if s.cfg.WaterMapPath != "" {
		if data, err := os.ReadFile(s.cfg.WaterMapPath); err == nil {
			if img, _, err := image.Decode(bytes.NewReader(data)); err == nil {
				m = water.FromImage(texture.ImageToRGBA(img))
			}
		}
	}
	if m == nil {
		m = water.Generate(256, terrainSeed)
	}
	s.field = water.NewField(m, s.cfg.SurfaceExtent*2)
	s.waterMap = texture.Upload(m.ToRGBA())
}

// buildContent creates the meshes and textures of the scene: the water
// grid, hilly ground, crates, skybox and light flare quad.
func (s *Scene) buildContent() {
	ext := s.cfg.SurfaceExtent
	min := math.Vec3{X: -ext, Z: -ext}
	max := math.Vec3{X: ext, Z: ext}

	s.waterMesh = mesh.NewGrid(min, max, s.cfg.SurfaceCells, s.cfg.SurfaceCells, nil)

	// Perlin hills rising above and dipping below the water plane.
	p := perlin.NewPerlin(2, 2, 3, terrainSeed)
	hills := func(x, z float32) float32 {
		n := p.Noise2D(float64(x/ext)*3, float64(z/ext)*3)
		return 2 + 18*float32(n)
	}
	groundMesh := mesh.NewGrid(min, max, 128, 128, hills)
	s.ground = NewModel(groundMesh, texture.Upload(groundImage(256, terrainSeed)))

	boxMesh := mesh.NewBox()
	crateTex := texture.Upload(crateImage(128))
	crate1 := NewModel(boxMesh, crateTex)
	crate1.Position = math.Vec3{X: 45, Y: 20, Z: -45}
	crate1.Scale = math.Vec3{X: 4, Y: 4, Z: 4}
	crate2 := NewModel(boxMesh, crateTex)
	crate2.Position = math.Vec3{X: -30, Y: 17, Z: 30}
	crate2.Scale = math.Vec3{X: 3, Y: 3, Z: 3}
	s.crates = []*Model{crate1, crate2}

	s.sky = NewModel(mesh.NewSkybox(skyboxSize), texture.Upload(skyImage(256)))

	s.flareMesh = mesh.NewQuad()
	s.flareTex = texture.Upload(flareImage(128))
}

// setupLights places the two point lights: a cool one orbiting the first
// crate and a strong warm one far out.
func (s *Scene) setupLights() {
	orbitCentre := s.crates[0].Position.Add(math.Vec3{Y: 10})
	s.orbit = lighting.NewOrbit(orbitCentre, orbitRadius, orbitAngularSpeed)

	s.lights = []lighting.PointLight{
		{
			Position: s.orbit.Position(),
			Colour:   math.Vec3{X: 0.8, Y: 0.8, Z: 1.0},
			Strength: 20,
		},
		{
			Position: math.Vec3{X: 200, Y: 250, Z: -300},
			Colour:   math.Vec3{X: 1.0, Y: 0.9, Z: 0.8},
			Strength: 1000,
		},
	}
}

// applyWaterUniforms pushes the configured water shading parameters to the
// programs that need them. Called once; the values only change via config.
func (s *Scene) applyWaterUniforms() {
	gl.UseProgram(s.progs.litRefracted)
	gl.Uniform3f(s.progs.locLitRefrExtinction, s.cfg.Extinction.X, s.cfg.Extinction.Y, s.cfg.Extinction.Z)
	gl.Uniform1f(s.progs.locLitRefrMaxDist, s.cfg.MaxDistortionDistance)

	gl.UseProgram(s.progs.tintedRefracted)
	gl.Uniform3f(s.progs.locTintedRefrExtinction, s.cfg.Extinction.X, s.cfg.Extinction.Y, s.cfg.Extinction.Z)
	gl.Uniform1f(s.progs.locTintedRefrMaxDist, s.cfg.MaxDistortionDistance)

	gl.UseProgram(s.progs.waterHeight)
	gl.Uniform1f(s.progs.locHeightMaxWave, s.field.MaxWaveHeight)

	gl.UseProgram(s.progs.waterComposite)
	gl.Uniform1f(s.progs.locCompositeMaxWave, s.field.MaxWaveHeight)
	gl.Uniform1f(s.progs.locCompositeRefractiveIdx, s.cfg.RefractiveIndex)

	gl.UseProgram(0)
}

// PlaneY returns the current water plane height.
func (s *Scene) PlaneY() float32 {
	return s.planeY
}

// WaveScale returns the current wave scale.
func (s *Scene) WaveScale() float32 {
	return s.waveScale
}

// Resize resizes the offscreen render targets to the new viewport.
func (s *Scene) Resize(width, height int32) {
	s.targets.Resize(width, height)
}

// ReadBackbuffer captures the backbuffer pixels, bottom row first.
func (s *Scene) ReadBackbuffer() ([]byte, int32, int32) {
	w, h := s.targets.Size()
	return s.targets.ReadBackbuffer(), w, h
}

// Update runs the per-frame update phase: wave movement, the orbiting
// light and the water controls. Comma/period move the plane, minus/equals
// scale the waves, 0 pauses the orbit.
func (s *Scene) Update(dt float32, in *input.Input) {
	s.movement.X += movementRateX * dt
	s.movement.Y += movementRateY * dt

	if in.KeyHit(sdl.SCANCODE_0) {
		s.orbit.TogglePause()
	}
	s.lights[0].Position = s.orbit.Advance(dt)

	if in.KeyHeld(sdl.SCANCODE_COMMA) {
		s.planeY -= planeMoveRate * dt
	}
	if in.KeyHeld(sdl.SCANCODE_PERIOD) {
		s.planeY += planeMoveRate * dt
	}

	s.waveScale = rampWaveScale(s.waveScale, dt,
		in.KeyHeld(sdl.SCANCODE_MINUS), in.KeyHeld(sdl.SCANCODE_EQUALS))
}

// clampWaveScale keeps the wave scale non-negative. A negative scale would
// invert the distortion direction rather than flattening the surface.
func clampWaveScale(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}

// rampWaveScale applies one frame of wave scale input. The scale stays at
// zero however long the lower key is held.
func rampWaveScale(current, dt float32, lower, raise bool) float32 {
	if lower {
		current -= waveScaleRate * dt
	}
	if raise {
		current += waveScaleRate * dt
	}
	return clampWaveScale(current)
}

// Render draws one frame from the given camera, running all four passes.
func (s *Scene) Render(cam *camera.Camera) {
	width, height := s.targets.Size()

	s.perFrame.Light1Position = s.lights[0].Position
	s.perFrame.Light1Colour = s.lights[0].Colour.Scale(s.lights[0].Strength)
	s.perFrame.Light2Position = s.lights[1].Position
	s.perFrame.Light2Colour = s.lights[1].Colour.Scale(s.lights[1].Strength)
	s.perFrame.AmbientColour = math.Vec3{X: ambientLevel, Y: ambientLevel, Z: ambientLevel}
	s.perFrame.SpecularPower = specularPower
	s.perFrame.ViewportWidth = float32(width)
	s.perFrame.ViewportHeight = float32(height)
	s.perFrame.WaterPlaneY = s.planeY
	s.perFrame.WaveScale = s.waveScale
	s.perFrame.WaterMovement = s.movement

	s.renderFromCamera(cam)
}

// selectCamera uploads the camera matrices for whichever camera is
// rendering, the main one or its mirrored double.
func (s *Scene) selectCamera(cam *camera.Camera) {
	s.perFrame.CameraMatrix = cam.WorldMatrix()
	s.perFrame.ViewMatrix = cam.ViewMatrix()
	s.perFrame.ProjectionMatrix = cam.ProjectionMatrix()
	s.perFrame.ViewProjectionMatrix = cam.ViewProjectionMatrix()
	s.perFrame.CameraPosition = cam.Position()
	s.frameUBO.upload(s.perFrame.Marshal())
}

func (s *Scene) renderFromCamera(cam *camera.Camera) {
	s.selectCamera(cam)

	// The water normal/height map feeds every pass, so it stays bound.
	s.waterMap.Bind(unitWaterMap)

	// Baseline state: no blending, normal depth, back-face culling.
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.DepthMask(true)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)

	// Water height pass: displaced surface heights into the R32F buffer.
	s.targets.Bind(rendertarget.Height)
	gl.UseProgram(s.progs.waterHeight)
	s.drawWater()

	// Refraction pass: the underwater scene, darkened with depth. The
	// height buffer tells which pixels are below the surface.
	s.targets.Bind(rendertarget.Refraction)
	s.targets.BindTexture(rendertarget.Height, unitHeightBuffer)
	gl.UseProgram(s.progs.litRefracted)
	s.drawLitModels()
	gl.UseProgram(s.progs.tintedRefracted)
	s.drawOtherModels(cam)

	// Reflection pass: mirror the camera in the water plane and cull
	// front faces, since mirroring reverses the winding order.
	saved := cam.Pose()
	cam.SetPose(saved.Reflect(s.planeY))
	s.selectCamera(cam)
	gl.CullFace(gl.FRONT)

	s.targets.Bind(rendertarget.Reflection)
	gl.UseProgram(s.progs.litReflected)
	s.drawLitModels()
	gl.UseProgram(s.progs.tintedReflected)
	s.drawOtherModels(cam)

	cam.SetPose(saved)
	s.selectCamera(cam)
	gl.CullFace(gl.BACK)

	// Detach the height buffer so it can be a render target next frame.
	s.targets.UnbindTexture(unitHeightBuffer)

	// Main pass: lit scene, then the water surface compositing the two
	// buffers, then the unlit sky and flares so the water doesn't draw
	// over them.
	s.targets.BindBackbuffer()
	gl.UseProgram(s.progs.lit)
	s.drawLitModels()

	s.targets.BindTexture(rendertarget.Refraction, unitRefraction)
	s.targets.BindTexture(rendertarget.Reflection, unitReflection)
	gl.UseProgram(s.progs.waterComposite)
	s.drawWater()
	s.targets.UnbindTexture(unitRefraction)
	s.targets.UnbindTexture(unitReflection)

	gl.UseProgram(s.progs.tinted)
	s.drawOtherModels(cam)

	s.targets.UnbindTexture(unitWaterMap)
	gl.UseProgram(0)
}

// drawWater draws the water grid at the current plane height.
func (s *Scene) drawWater() {
	s.uploadModel(math.Translate(0, s.planeY, 0), math.Vec3{X: 1, Y: 1, Z: 1})
	s.waterMesh.Draw()
}

// drawLitModels draws the ground and crates with whatever lit program is
// currently selected.
func (s *Scene) drawLitModels() {
	for _, m := range append([]*Model{s.ground}, s.crates...) {
		m.Texture.Bind(unitDiffuse)
		s.uploadModel(m.WorldMatrix(), m.Colour)
		m.Mesh.Draw()
	}
}

// drawOtherModels draws the unlit geometry: the skybox and the additive
// light flares, with whatever tinted program is currently selected.
func (s *Scene) drawOtherModels(cam *camera.Camera) {
	// Sky faces inward, so culling is off for it.
	gl.Disable(gl.CULL_FACE)
	s.sky.Texture.Bind(unitDiffuse)
	s.uploadModel(s.sky.WorldMatrix(), s.sky.Colour)
	s.sky.Mesh.Draw()

	// Flares: additive blending over a read-only depth buffer.
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)
	gl.DepthMask(false)
	s.flareTex.Bind(unitDiffuse)
	pose := cam.Pose()
	for _, l := range s.lights {
		world := billboardMatrix(pose, l.Position, l.ModelScale())
		s.uploadModel(world, l.Colour)
		s.flareMesh.Draw()
	}
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.CULL_FACE)
}

// uploadModel pushes a per-model constant block for the next draw.
func (s *Scene) uploadModel(world math.Mat4, colour math.Vec3) {
	s.perModel.WorldMatrix = world
	s.perModel.ObjectColour = colour
	s.modelUBO.upload(s.perModel.Marshal())
}

// Destroy releases every GPU resource the scene owns.
func (s *Scene) Destroy() {
	if s.waterMesh != nil {
		s.waterMesh.Destroy()
	}
	if s.ground != nil {
		s.ground.Mesh.Destroy()
		s.ground.Texture.Destroy()
	}
	if len(s.crates) > 0 {
		s.crates[0].Mesh.Destroy()
		s.crates[0].Texture.Destroy()
	}
	if s.sky != nil {
		s.sky.Mesh.Destroy()
		s.sky.Texture.Destroy()
	}
	if s.flareMesh != nil {
		s.flareMesh.Destroy()
	}
	if s.flareTex != nil {
		s.flareTex.Destroy()
	}
	if s.waterMap != nil {
		s.waterMap.Destroy()
	}
	if s.frameUBO != nil {
		s.frameUBO.destroy()
	}
	if s.modelUBO != nil {
		s.modelUBO.destroy()
	}
	if s.progs != nil {
		s.progs.destroy()
	}
	if s.targets != nil {
		s.targets.Destroy()
	}
}
