package core

// InputDevice tells which half of an InputSnapshot the backend filled.
type InputDevice int

const (
	DevicePointer InputDevice = iota
	DeviceStick
)

type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyQ
	KeyEnter
)

// KeySet holds keys pressed since the previous poll.
type KeySet uint32

func (s KeySet) Has(k Key) bool   { return s&(1<<uint(k)) != 0 }
func (s KeySet) With(k Key) KeySet { return s | 1<<uint(k) }

type PointerState struct {
	X, Y     float64
	LeftDown bool
}

// Buttons is a console-style button mask.
type Buttons uint32

const (
	ButtonSelect Buttons = 1 << iota
	ButtonStart
	ButtonUp
	ButtonRight
	ButtonDown
	ButtonLeft
	ButtonL
	ButtonR
	ButtonTriangle
	ButtonCircle
	ButtonCross
	ButtonSquare
)

// StickCenter is the resting value of a raw analog axis.
const StickCenter = 128

// StickState is raw analog-stick state: unsigned axes in 0..255, 128 at rest.
type StickState struct {
	LX, LY  uint8
	RX, RY  uint8
	Buttons Buttons
}

// CenteredStick is a stick at rest with no buttons held.
func CenteredStick() StickState {
	return StickState{LX: StickCenter, LY: StickCenter, RX: StickCenter, RY: StickCenter}
}

// InputSnapshot is the device state sampled once per frame.
type InputSnapshot struct {
	Device  InputDevice
	Pointer PointerState
	Keys    KeySet
	Stick   StickState
}

// ExitRequested reports whether the snapshot carries a quit trigger: Escape
// or Q on a keyboard, Start on a console pad. Mouse buttons never quit.
func (s InputSnapshot) ExitRequested() bool {
	return s.Keys.Has(KeyEscape) || s.Keys.Has(KeyQ) || s.Stick.Buttons&ButtonStart != 0
}
