package core

// FrameStep is the simulated time between two frames, in seconds.
const FrameStep = 1.0 / 60.0

// Clock is a deterministic frame counter; it ignores wall-clock time.
type Clock struct {
	Step   float64
	frames uint64
}

func NewClock() Clock { return Clock{Step: FrameStep} }

func (c *Clock) Advance() { c.frames++ }

func (c *Clock) Frames() uint64 { return c.frames }

// Elapsed is frames x step, so it never drifts or decreases.
func (c *Clock) Elapsed() float64 { return float64(c.frames) * c.Step }
