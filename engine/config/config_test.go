package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/raymarch/engine/core"
	"github.com/hubastard/raymarch/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "raymarch.yml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 960, cfg.Window.Width)
	assert.Equal(t, 544, cfg.Window.Height)
	assert.Equal(t, "raymarch", cfg.Shader)
	assert.Equal(t, BackendDesktop, cfg.Backend)

	s := cfg.Scene
	assert.Equal(t, float32(60), s.FovDegrees)
	assert.Equal(t, mgl32.Vec3{0.6, 0.8, 0.4}, s.SunDir)
	assert.Equal(t, Material{Metallic: 0, Roughness: 0.5, F0: 0.02, Ambient: 0.3, Brightness: 1}, s.Material)
	assert.Equal(t, mgl32.Vec3{0, 3, 0}, s.PointLight.Position)
	assert.Equal(t, mgl32.Vec3{0.4, 0.4, 0.4}, s.PointLight.Color)
	assert.Equal(t, float32(0.2), s.PointLight.Intensity)
}

func TestLoad_MissingOptionalFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"), false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingRequiredFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"), true)
	assert.Error(t, err)
}

func TestLoad_OverridesOnlyGivenFields(t *testing.T) {
	p := writeFile(t, `
backend: gamepad
assets:
  layout: console
scene:
  sun_dir: [0, 1, 0]
  material:
    roughness: 0.9
camera:
  stick_sensitivity: 0.1
`)
	cfg, err := Load(p, true)
	require.NoError(t, err)

	assert.Equal(t, BackendGamepad, cfg.Backend)
	assert.Equal(t, "console", cfg.Assets.Layout)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, cfg.Scene.SunDir)
	assert.Equal(t, float32(0.9), cfg.Scene.Material.Roughness)
	assert.Equal(t, float32(0.02), cfg.Scene.Material.F0)
	assert.Equal(t, 960, cfg.Window.Width)

	sc, ok := cfg.NewCameraPolicy().(*scene.StickOrbitController)
	require.True(t, ok)
	assert.Equal(t, float32(0.1), sc.Sensitivity)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	for name, body := range map[string]string{
		"backend":          "backend: vita\n",
		"size":             "window:\n  width: 0\n",
		"min above max":    "camera:\n  min_pitch: 2.5\n  max_pitch: 2\n",
		"start pitch high": "camera:\n  pitch: 5\n",
		"start pitch low":  "camera:\n  pitch: 0.05\n",
		"start outside":    "camera:\n  pitch: 1.2\n  min_pitch: 1.5\n",
		"limits widened":   "camera:\n  min_pitch: -10\n  max_pitch: 50\n",
		"max above 3":      "camera:\n  max_pitch: 3.5\n",
		"syntax":           "window: [\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, body), true)
			assert.Error(t, err)
		})
	}
}

func TestNewCamera(t *testing.T) {
	cam := Default().NewCamera()
	assert.Equal(t, scene.NewOrbitCamera(), cam)

	_, ok := Default().NewCameraPolicy().(*scene.PointerOrbitController)
	assert.True(t, ok)
}

func TestLoad_NarrowerPitchLimits(t *testing.T) {
	cfg, err := Load(writeFile(t, "camera:\n  pitch: 1\n  min_pitch: 0.5\n  max_pitch: 2\n"), true)
	require.NoError(t, err)

	cam := cfg.NewCamera()
	assert.Equal(t, float32(1), cam.Pitch)
	cam.Orbit(0, 10)
	assert.Equal(t, float32(2), cam.Pitch)
}

func TestNewCamera_ClampsUnvalidatedPitch(t *testing.T) {
	cfg := Default()
	cfg.Camera.Pitch = 5
	cam := cfg.NewCamera()
	assert.Equal(t, float32(scene.DefaultMaxPitch), cam.Pitch)

	// an idle frame keeps the eye height inside the limits
	scene.NewPointerOrbitController().Update(cam, core.InputSnapshot{Device: core.DevicePointer})
	assert.Equal(t, float32(scene.DefaultMaxPitch), cam.Origin().Y())
}

func TestValidate_AssetLayout(t *testing.T) {
	cfg := Default()
	cfg.Assets.Layout = "vita"
	assert.Error(t, cfg.Validate())
	cfg.Assets.Layout = "console"
	assert.NoError(t, cfg.Validate())
}
