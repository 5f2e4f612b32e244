package scene

import "github.com/hubastard/raymarch/engine/core"

// CameraPolicy turns one frame of input into camera motion. Pointer and stick
// policies are different interaction models and stay separate.
type CameraPolicy interface {
	Update(cam *OrbitCamera, in core.InputSnapshot)
}

const (
	DefaultPointerSensitivity = 0.002
	DefaultStickSensitivity   = 0.05
)

// PointerOrbitController drags the camera while the left button is held.
// The first sample after a press only seeds the baseline, so a press never
// jumps from stale coordinates.
type PointerOrbitController struct {
	Sensitivity float64

	lastX, lastY float64
	firstSample  bool
}

func NewPointerOrbitController() *PointerOrbitController {
	return &PointerOrbitController{Sensitivity: DefaultPointerSensitivity, firstSample: true}
}

func (pc *PointerOrbitController) Update(cam *OrbitCamera, in core.InputSnapshot) {
	p := in.Pointer
	if !p.LeftDown {
		pc.firstSample = true
		return
	}
	if pc.firstSample {
		pc.lastX, pc.lastY = p.X, p.Y
		pc.firstSample = false
	}

	dx := (p.X - pc.lastX) * pc.Sensitivity
	dy := (p.Y - pc.lastY) * pc.Sensitivity
	pc.lastX, pc.lastY = p.X, p.Y

	cam.Orbit(float32(dx), float32(-dy))
}

// StickOrbitController moves the camera every frame in proportion to the
// left stick deflection.
type StickOrbitController struct {
	Sensitivity float32
}

func NewStickOrbitController() *StickOrbitController {
	return &StickOrbitController{Sensitivity: DefaultStickSensitivity}
}

// NormalizeAxis maps a raw 0..255 axis to roughly [-1, 1].
func NormalizeAxis(raw uint8) float32 {
	return (float32(raw) - core.StickCenter) / core.StickCenter
}

func (sc *StickOrbitController) Update(cam *OrbitCamera, in core.InputSnapshot) {
	ax := NormalizeAxis(in.Stick.LX)
	ay := NormalizeAxis(in.Stick.LY)
	cam.Orbit(ax*sc.Sensitivity, ay*sc.Sensitivity)
}
