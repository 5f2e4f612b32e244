package platform

import (
	"fmt"
	"log"
	"os"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/raymarch/engine/colors"
	"github.com/hubastard/raymarch/engine/core"
	"github.com/hubastard/raymarch/engine/gfx"
	"github.com/hubastard/raymarch/engine/gfx/overlay"
	"github.com/hubastard/raymarch/engine/text"
)

// GamepadBackend behaves like the handheld console build: the left analog
// stick orbits the camera and Start quits. Input comes from the first GLFW
// joystick with a gamepad mapping.
type GamepadBackend struct {
	glfwSurface
	Joystick glfw.Joystick
	warned   bool
}

const (
	dialogTitle  = "FATAL ERROR"
	dialogFooter = "Press X or Start (Enter or Esc on a keyboard) to exit"
	dialogScale  = 2 // screen pixels per panel pixel
)

func NewGamepadBackend() *GamepadBackend {
	return &GamepadBackend{Joystick: glfw.Joystick1}
}

func (b *GamepadBackend) CreateContext(cfg core.Config) (gfx.Device, error) {
	if err := b.create(cfg); err != nil {
		return nil, err
	}
	if b.Joystick.IsGamepad() {
		log.Printf("gamepad: %s", b.Joystick.GetGamepadName())
	}
	return b.dev, nil
}

func (b *GamepadBackend) PollInput() core.InputSnapshot {
	glfw.PollEvents()
	b.drainKeys()
	snap := core.InputSnapshot{Device: core.DeviceStick, Stick: core.CenteredStick()}
	if !b.Joystick.IsGamepad() {
		if !b.warned {
			log.Printf("gamepad: joystick %d not connected, stick centred", int(b.Joystick)+1)
			b.warned = true
		}
		return snap
	}
	b.warned = false
	if st := b.Joystick.GetGamepadState(); st != nil {
		snap.Stick = stickFromGamepad(st)
	}
	return snap
}

func (b *GamepadBackend) padButtons() core.Buttons {
	if !b.Joystick.IsGamepad() {
		return 0
	}
	if st := b.Joystick.GetGamepadState(); st != nil {
		return stickFromGamepad(st).Buttons
	}
	return 0
}

// ReportFatal shows the message in a full-screen dialog and blocks until it
// is confirmed or the window is closed. Without a context it only prints.
func (b *GamepadBackend) ReportFatal(msg string) {
	fmt.Fprintf(os.Stderr, "FATAL ERROR: %s\n", msg)
	if b.w == nil || b.dev == nil {
		return
	}
	b.w.SetTitle("Error: " + firstLine(msg))

	fbw, fbh := b.w.GetFramebufferSize()
	panel := text.NewPanel(max(fbw/dialogScale, 1), max(fbh/dialogScale, 1))
	dialog, err := overlay.New(b.dev, panel.Dialog(dialogTitle, msg, dialogFooter))
	if err != nil {
		// the crimson screen and the window title still carry the failure
		log.Printf("fatal dialog: %v", err)
	}
	defer dialog.Release()

	b.dev.Viewport(0, 0, int32(fbw), int32(fbh))
	b.dev.ClearColor(colors.Crimson.RGBA())
	b.drainKeys()
	held := b.padButtons()
	for !b.w.ShouldClose() {
		b.dev.Clear()
		dialog.Draw()
		b.w.SwapBuffers()
		glfw.PollEvents()

		buttons := b.padButtons()
		if dialogConfirmed(b.drainKeys(), buttons&^held) {
			return
		}
		held = buttons
	}
}

// dialogConfirmed reports an OK press: Cross or Start newly pressed on the
// pad, or Enter or Escape on a keyboard.
func dialogConfirmed(keys core.KeySet, pressed core.Buttons) bool {
	return keys.Has(core.KeyEnter) || keys.Has(core.KeyEscape) ||
		pressed&(core.ButtonCross|core.ButtonStart) != 0
}

// rawAxis maps a GLFW axis in [-1, 1] to the console's unsigned 0..255.
func rawAxis(v float32) uint8 {
	r := (v + 1) * 127.5
	switch {
	case r <= 0:
		return 0
	case r >= 255:
		return 255
	}
	return uint8(r + 0.5)
}

var gamepadButtons = []struct {
	pad  glfw.GamepadButton
	mask core.Buttons
}{
	{glfw.ButtonBack, core.ButtonSelect},
	{glfw.ButtonStart, core.ButtonStart},
	{glfw.ButtonDpadUp, core.ButtonUp},
	{glfw.ButtonDpadRight, core.ButtonRight},
	{glfw.ButtonDpadDown, core.ButtonDown},
	{glfw.ButtonDpadLeft, core.ButtonLeft},
	{glfw.ButtonLeftBumper, core.ButtonL},
	{glfw.ButtonRightBumper, core.ButtonR},
	{glfw.ButtonTriangle, core.ButtonTriangle},
	{glfw.ButtonCircle, core.ButtonCircle},
	{glfw.ButtonCross, core.ButtonCross},
	{glfw.ButtonSquare, core.ButtonSquare},
}

func stickFromGamepad(st *glfw.GamepadState) core.StickState {
	s := core.StickState{
		LX: rawAxis(st.Axes[glfw.AxisLeftX]),
		LY: rawAxis(st.Axes[glfw.AxisLeftY]),
		RX: rawAxis(st.Axes[glfw.AxisRightX]),
		RY: rawAxis(st.Axes[glfw.AxisRightY]),
	}
	for _, m := range gamepadButtons {
		if st.Buttons[m.pad] == glfw.Press {
			s.Buttons |= m.mask
		}
	}
	return s
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}

var _ core.Backend = (*GamepadBackend)(nil)
