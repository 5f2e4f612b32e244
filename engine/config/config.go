package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/raymarch/engine/assets"
	"github.com/hubastard/raymarch/engine/colors"
	"github.com/hubastard/raymarch/engine/core"
	"github.com/hubastard/raymarch/engine/scene"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is read from the working directory when no -config flag is
// given. Its absence is not an error.
const DefaultFilename = "raymarch.yml"

const (
	BackendDesktop = "desktop"
	BackendGamepad = "gamepad"
)

type File struct {
	Window  Window `yaml:"window"`
	Backend string `yaml:"backend"`
	Assets  Assets `yaml:"assets"`
	Shader  string `yaml:"shader"`
	Scene   Scene  `yaml:"scene"`
	Camera  Camera `yaml:"camera"`
}

type Window struct {
	Title      string       `yaml:"title"`
	Width      int          `yaml:"width"`
	Height     int          `yaml:"height"`
	VSync      bool         `yaml:"vsync"`
	ClearColor colors.Color `yaml:"clear_color"`
}

type Assets struct {
	Root   string `yaml:"root"`
	Layout string `yaml:"layout"` // desktop | console
}

// Scene holds the one-time uniform values.
type Scene struct {
	FovDegrees float32    `yaml:"fov_degrees"`
	SunDir     mgl32.Vec3 `yaml:"sun_dir"`
	Material   Material   `yaml:"material"`
	PointLight PointLight `yaml:"point_light"`
}

type Material struct {
	Metallic   float32 `yaml:"metallic"`
	Roughness  float32 `yaml:"roughness"`
	F0         float32 `yaml:"f0"`
	Ambient    float32 `yaml:"ambient"`
	Brightness float32 `yaml:"brightness"`
}

type PointLight struct {
	Position  mgl32.Vec3 `yaml:"position"`
	Color     mgl32.Vec3 `yaml:"color"`
	Intensity float32    `yaml:"intensity"`
}

type Camera struct {
	Radius             float32    `yaml:"radius"`
	Target             mgl32.Vec3 `yaml:"target"`
	Pitch              float32    `yaml:"pitch"`
	MinPitch           float32    `yaml:"min_pitch"`
	MaxPitch           float32    `yaml:"max_pitch"`
	PointerSensitivity float64    `yaml:"pointer_sensitivity"`
	StickSensitivity   float32    `yaml:"stick_sensitivity"`
}

func Default() File {
	win := core.DefaultConfig()
	return File{
		Window: Window{
			Title:      win.Title,
			Width:      win.Width,
			Height:     win.Height,
			VSync:      win.VSync,
			ClearColor: win.ClearColor,
		},
		Backend: BackendDesktop,
		Assets:  Assets{Root: ".", Layout: "desktop"},
		Shader:  "raymarch",
		Scene:   DefaultScene(),
		Camera: Camera{
			Radius:             scene.DefaultRadius,
			Target:             scene.DefaultTarget,
			Pitch:              scene.DefaultPitch,
			MinPitch:           scene.DefaultMinPitch,
			MaxPitch:           scene.DefaultMaxPitch,
			PointerSensitivity: scene.DefaultPointerSensitivity,
			StickSensitivity:   scene.DefaultStickSensitivity,
		},
	}
}

func DefaultScene() Scene {
	return Scene{
		FovDegrees: 60,
		SunDir:     mgl32.Vec3{0.6, 0.8, 0.4},
		Material: Material{
			Metallic:   0,
			Roughness:  0.5,
			F0:         0.02,
			Ambient:    0.3,
			Brightness: 1.0,
		},
		PointLight: PointLight{
			Position:  mgl32.Vec3{0, 3, 0},
			Color:     mgl32.Vec3{0.4, 0.4, 0.4},
			Intensity: 0.2,
		},
	}
}

// Load reads path over the defaults. With required unset a missing file
// yields the defaults.
func Load(path string, required bool) (File, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func (f File) Validate() error {
	switch f.Backend {
	case BackendDesktop, BackendGamepad:
	default:
		return fmt.Errorf("unknown backend %q", f.Backend)
	}
	if f.Window.Width <= 0 || f.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", f.Window.Width, f.Window.Height)
	}
	if err := f.Camera.validatePitch(); err != nil {
		return err
	}
	if _, err := assets.LayoutByName(f.Assets.Layout); err != nil {
		return err
	}
	if f.Shader == "" {
		return errors.New("shader name is empty")
	}
	return nil
}

// Pitch limits may narrow [scene.DefaultMinPitch, scene.DefaultMaxPitch] but
// never widen it, and the starting pitch must lie inside them.
func (c Camera) validatePitch() error {
	if c.MinPitch < scene.DefaultMinPitch || c.MaxPitch > scene.DefaultMaxPitch {
		return fmt.Errorf("camera pitch limits [%.3f, %.3f] outside [%.1f, %.1f]",
			c.MinPitch, c.MaxPitch, scene.DefaultMinPitch, scene.DefaultMaxPitch)
	}
	if c.MinPitch > c.MaxPitch {
		return fmt.Errorf("camera min_pitch %.3f above max_pitch %.3f", c.MinPitch, c.MaxPitch)
	}
	if c.Pitch < c.MinPitch || c.Pitch > c.MaxPitch {
		return fmt.Errorf("camera pitch %.3f outside [%.3f, %.3f]", c.Pitch, c.MinPitch, c.MaxPitch)
	}
	return nil
}

// CoreConfig converts the window section.
func (f File) CoreConfig() core.Config {
	return core.Config{
		Title:      f.Window.Title,
		Width:      f.Window.Width,
		Height:     f.Window.Height,
		VSync:      f.Window.VSync,
		ClearColor: f.Window.ClearColor,
	}
}

// NewCamera builds the orbit camera described by the camera section. The
// starting pitch is clamped into the limits so an unvalidated File still
// yields a camera inside its range.
func (f File) NewCamera() *scene.OrbitCamera {
	return &scene.OrbitCamera{
		Pitch:    mgl32.Clamp(f.Camera.Pitch, f.Camera.MinPitch, f.Camera.MaxPitch),
		Radius:   f.Camera.Radius,
		Target:   f.Camera.Target,
		MinPitch: f.Camera.MinPitch,
		MaxPitch: f.Camera.MaxPitch,
	}
}

// NewCameraPolicy returns the input policy matching the backend.
func (f File) NewCameraPolicy() scene.CameraPolicy {
	if f.Backend == BackendGamepad {
		sc := scene.NewStickOrbitController()
		sc.Sensitivity = f.Camera.StickSensitivity
		return sc
	}
	pc := scene.NewPointerOrbitController()
	pc.Sensitivity = f.Camera.PointerSensitivity
	return pc
}
