package app

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/raymarch/engine/assets"
	"github.com/hubastard/raymarch/engine/config"
	"github.com/hubastard/raymarch/engine/core"
	"github.com/hubastard/raymarch/engine/gfx"
	"github.com/hubastard/raymarch/engine/gfx/geometry"
	"github.com/hubastard/raymarch/engine/gfx/shader"
	"github.com/hubastard/raymarch/engine/scene"
)

// ErrTerminated is returned by Initialize once Cleanup has torn the
// controller down.
var ErrTerminated = errors.New("controller already terminated")

type State int

const (
	StateUninitialized State = iota
	StateInitialized
	StateRunning
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Options configure a Controller. A zero Config means config.Default(); a
// Config with only Shader empty keeps its settings and loads the default
// shader. Nil Sources reads from Config.Assets at Initialize.
type Options struct {
	Config    config.File
	Sources   shader.SourceLoader
	Camera    *scene.OrbitCamera
	Policy    scene.CameraPolicy
	MaxFrames uint64 // 0 = until quit
}

// Controller owns the context, the shader, the quad and the render loop.
// It is single-threaded; every method must run on the main thread.
type Controller struct {
	backend   core.Backend
	cfg       config.File
	policy    scene.CameraPolicy
	camera    *scene.OrbitCamera
	clock     core.Clock
	maxFrames uint64

	dev     gfx.Device
	shaders *shader.Manager
	sources shader.SourceLoader
	program *shader.Program
	quad    *geometry.Quad

	state     State
	contextUp bool
}

func New(backend core.Backend, opts Options) *Controller {
	cfg := opts.Config
	if cfg == (config.File{}) {
		cfg = config.Default()
	}
	if cfg.Shader == "" {
		cfg.Shader = config.Default().Shader
	}
	c := &Controller{
		backend:   backend,
		cfg:       cfg,
		policy:    opts.Policy,
		camera:    opts.Camera,
		sources:   opts.Sources,
		clock:     core.NewClock(),
		maxFrames: opts.MaxFrames,
	}
	if c.camera == nil {
		c.camera = cfg.NewCamera()
	}
	if c.policy == nil {
		c.policy = cfg.NewCameraPolicy()
	}
	return c
}

func (c *Controller) State() State               { return c.state }
func (c *Controller) Camera() *scene.OrbitCamera { return c.camera }
func (c *Controller) Clock() *core.Clock         { return &c.clock }
func (c *Controller) Program() *shader.Program   { return c.program }

// Initialize validates the config, brings up the context, GL state, shader
// and geometry, then pushes the one-time uniforms. Calling it again while initialized or running is a
// no-op. On failure the context is kept so the caller can report through the
// backend; Cleanup releases it.
func (c *Controller) Initialize() error {
	switch c.state {
	case StateInitialized, StateRunning:
		return nil
	case StateTerminated:
		return ErrTerminated
	}
	if err := c.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.sources == nil {
		layout, err := assets.LayoutByName(c.cfg.Assets.Layout)
		if err != nil {
			return err
		}
		c.sources = assets.NewLoader(os.DirFS(c.cfg.Assets.Root), layout)
	}
	if c.contextUp {
		// leftovers of an earlier failed attempt
		c.Cleanup()
	}

	win := c.cfg.CoreConfig()
	dev, err := c.backend.CreateContext(win)
	if err != nil {
		if !errors.Is(err, core.ErrContextCreation) {
			err = fmt.Errorf("%w: %v", core.ErrContextCreation, err)
		}
		return err
	}
	c.dev = dev
	c.contextUp = true

	c.setupGL(win)

	c.shaders = shader.NewManager(c.dev, c.sources)
	c.program, err = c.shaders.Load(c.cfg.Shader)
	if err != nil {
		return err
	}

	c.quad = geometry.NewQuad(c.dev)
	c.program.Activate()
	c.pushStaticUniforms(win)

	c.state = StateInitialized
	return nil
}

func (c *Controller) setupGL(win core.Config) {
	c.dev.Disable(gfx.DepthTest)
	c.dev.Disable(gfx.CullFace)
	c.dev.Viewport(0, 0, int32(win.Width), int32(win.Height))
	c.dev.ClearColor(win.ClearColor.RGBA())
}

func (c *Controller) pushStaticUniforms(win core.Config) {
	p, s := c.program, c.cfg.Scene

	p.Set2f(shader.Resolution, float32(win.Width), float32(win.Height))
	p.Set1f(shader.Fov, mgl32.DegToRad(s.FovDegrees))
	p.SetVec3(shader.SunDir, s.SunDir)

	p.Set1f(shader.MaterialMetallic, s.Material.Metallic)
	p.Set1f(shader.MaterialRoughness, s.Material.Roughness)
	p.Set1f(shader.MaterialF0, s.Material.F0)
	p.Set1f(shader.MaterialAmbient, s.Material.Ambient)
	p.Set1f(shader.MaterialBrightness, s.Material.Brightness)

	p.SetVec3(shader.PointLightPos, s.PointLight.Position)
	p.SetVec3(shader.PointLightColor, s.PointLight.Color)
	p.Set1f(shader.PointLightIntensity, s.PointLight.Intensity)
}

// Run blocks in the render loop until a quit trigger, a platform close
// request, or MaxFrames. It does not release anything.
func (c *Controller) Run() {
	if c.state != StateInitialized {
		return
	}
	c.state = StateRunning

	for !c.backend.ShouldClose() {
		snap := c.backend.PollInput()
		if !c.HandleInput(snap) {
			break
		}

		c.UpdateUniforms(c.clock.Elapsed(), snap)
		c.Render()
		c.backend.SwapBuffers()
		c.clock.Advance()

		if c.maxFrames > 0 && c.clock.Frames() >= c.maxFrames {
			break
		}
	}

	log.Printf("exiting main loop after %d frames", c.clock.Frames())
}

// HandleInput returns false when the snapshot asks to quit.
func (c *Controller) HandleInput(snap core.InputSnapshot) bool {
	return !snap.ExitRequested()
}

// UpdateUniforms applies the camera policy and pushes camera and time.
func (c *Controller) UpdateUniforms(t float64, snap core.InputSnapshot) {
	c.policy.Update(c.camera, snap)

	c.program.SetVec3(shader.CamOrigin, c.camera.Origin())
	c.program.SetVec3(shader.CamTarget, c.camera.Target)
	c.program.Set1f(shader.Time, float32(t))
}

// Render clears and draws the quad.
func (c *Controller) Render() {
	c.dev.Clear()
	c.quad.Draw()
}

// Cleanup releases geometry and shaders and tears the context down. It is
// safe to call repeatedly and on a controller that never initialized.
func (c *Controller) Cleanup() {
	c.quad.Destroy()
	c.quad = nil
	if c.shaders != nil {
		c.shaders.Release()
		c.shaders = nil
		c.program = nil
	}

	if c.state == StateInitialized || c.state == StateRunning {
		c.state = StateTerminated
	}
	// a failed Initialize may have left a context up for error reporting
	if c.contextUp {
		c.backend.DestroyContext()
		c.contextUp = false
		c.dev = nil
	}
}
