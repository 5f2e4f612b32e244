package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera sits on a circle of Radius around Target. Yaw picks the point
// on the circle; Pitch is used directly as the eye height.
type OrbitCamera struct {
	Yaw, Pitch         float32 // radians
	Radius             float32
	Target             mgl32.Vec3
	MinPitch, MaxPitch float32
}

const (
	DefaultRadius   = 3.5
	DefaultPitch    = 1.2
	DefaultMinPitch = 0.1
	DefaultMaxPitch = 3.0
)

var DefaultTarget = mgl32.Vec3{0, 0.6, 0}

func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Pitch:    DefaultPitch,
		Radius:   DefaultRadius,
		Target:   DefaultTarget,
		MinPitch: DefaultMinPitch,
		MaxPitch: DefaultMaxPitch,
	}
}

// Orbit adds to yaw and pitch, then clamps pitch into [MinPitch, MaxPitch].
func (c *OrbitCamera) Orbit(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch = mgl32.Clamp(c.Pitch+dPitch, c.MinPitch, c.MaxPitch)
}

// Origin is the eye position: (sin(yaw)*r, pitch, cos(yaw)*r).
func (c *OrbitCamera) Origin() mgl32.Vec3 {
	s, co := math.Sincos(float64(c.Yaw))
	return mgl32.Vec3{float32(s) * c.Radius, c.Pitch, float32(co) * c.Radius}
}
