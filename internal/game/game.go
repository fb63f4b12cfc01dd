// Package game implements the main loop: input, update, render, present.
package game

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/nnouhi/Water/internal/engine/camera"
	"github.com/nnouhi/Water/internal/engine/debug"
	"github.com/nnouhi/Water/internal/engine/input"
	"github.com/nnouhi/Water/internal/engine/scene"
	"github.com/nnouhi/Water/internal/engine/window"
	"github.com/nnouhi/Water/pkg/math"
)

// Config holds the game configuration.
type Config struct {
	Title         string
	Width         int
	Height        int
	Fullscreen    bool
	VSync         bool
	ScreenshotDir string
	Scene         scene.Config
}

// Initial camera placement looking back over the water.
const (
	cameraPitchDeg = 16
	cameraYawDeg   = 145
)

var cameraStart = math.Vec3{X: -80, Y: 50, Z: 200}

// Game owns the window, scene, camera and input, and runs the main loop.
type Game struct {
	config  Config
	log     *zap.Logger
	running bool

	window *window.Window
	input  *input.Input
	scene  *scene.Scene
	camera *camera.Camera
	shots  *debug.ScreenshotCapture
}

// New creates the window and GL context, then builds the scene.
func New(cfg Config, log *zap.Logger) (*Game, error) {
	g := &Game{
		config: cfg,
		log:    log,
	}

	var err error
	g.window, err = window.New(window.Config{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Fullscreen: cfg.Fullscreen,
		VSync:      cfg.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	// Function pointers load only after the context exists.
	if err := gl.Init(); err != nil {
		g.window.Close()
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))
	log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	sceneCfg := cfg.Scene
	sceneCfg.Width = int32(cfg.Width)
	sceneCfg.Height = int32(cfg.Height)
	g.scene, err = scene.New(sceneCfg)
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("creating scene: %w", err)
	}

	aspect := float32(cfg.Width) / float32(cfg.Height)
	g.camera = camera.New(cameraStart, aspect)
	g.camera.SetRotation(math.ToRadians(cameraPitchDeg), math.ToRadians(cameraYawDeg))

	g.input = input.New()
	g.shots = debug.NewScreenshotCapture(cfg.ScreenshotDir, "water")

	log.Info("game initialized")
	return g, nil
}

// Run starts the main loop and blocks until quit.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	titleTimer := float32(0)

	g.log.Info("starting main loop")

	for g.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if g.input.Update() {
			break
		}
		g.handleEvents()
		g.controlCamera(dt)
		g.scene.Update(dt, g.input)

		g.scene.Render(g.camera)
		g.window.SwapBuffers()

		// Window title carries the frame time and FPS, refreshed twice
		// a second.
		frameCount++
		titleTimer += dt
		if titleTimer >= 0.5 {
			avg := titleTimer / float32(frameCount)
			g.window.SetTitle(fmt.Sprintf("%s - Frame: %.2fms  FPS: %.0f", g.config.Title, avg*1000, 1/avg))
			frameCount = 0
			titleTimer = 0
		}
	}

	return nil
}

// handleEvents processes window events and one-shot key presses.
func (g *Game) handleEvents() {
	for _, event := range g.input.Events() {
		if event.Type == input.EventWindowResize {
			g.resize(event.Width, event.Height)
		}
	}

	if g.input.KeyHit(sdl.SCANCODE_ESCAPE) {
		g.running = false
	}
	if g.input.KeyHit(sdl.SCANCODE_P) {
		// Locking the frame rate is just toggling vsync.
		g.window.ToggleVSync()
	}
	if g.input.KeyHit(sdl.SCANCODE_F12) {
		g.screenshot()
	}
}

// controlCamera applies the free camera controls: WASD moves, arrow keys
// rotate.
func (g *Game) controlCamera(dt float32) {
	var right, forward float32
	if g.input.KeyHeld(sdl.SCANCODE_W) {
		forward++
	}
	if g.input.KeyHeld(sdl.SCANCODE_S) {
		forward--
	}
	if g.input.KeyHeld(sdl.SCANCODE_D) {
		right++
	}
	if g.input.KeyHeld(sdl.SCANCODE_A) {
		right--
	}
	g.camera.Move(right, 0, forward, dt)

	var pitch, yaw float32
	if g.input.KeyHeld(sdl.SCANCODE_UP) {
		pitch--
	}
	if g.input.KeyHeld(sdl.SCANCODE_DOWN) {
		pitch++
	}
	if g.input.KeyHeld(sdl.SCANCODE_LEFT) {
		yaw--
	}
	if g.input.KeyHeld(sdl.SCANCODE_RIGHT) {
		yaw++
	}
	g.camera.Rotate(pitch, yaw, dt)
}

func (g *Game) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	g.scene.Resize(int32(width), int32(height))
	g.camera.Aspect = float32(width) / float32(height)
	g.log.Debug("window resized", zap.Int("width", width), zap.Int("height", height))
}

func (g *Game) screenshot() {
	pixels, w, h := g.scene.ReadBackbuffer()
	name, err := g.shots.CaptureFromPixels(pixels, int(w), int(h))
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("file", name))
}

// Close releases the scene and window.
func (g *Game) Close() {
	g.log.Info("closing game")
	if g.scene != nil {
		g.scene.Destroy()
	}
	if g.window != nil {
		g.window.Close()
	}
}
