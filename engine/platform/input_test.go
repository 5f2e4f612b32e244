package platform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/raymarch/engine/core"
	"github.com/stretchr/testify/assert"
)

func TestRawAxis(t *testing.T) {
	assert.Equal(t, uint8(0), rawAxis(-1))
	assert.Equal(t, uint8(0), rawAxis(-1.5))
	assert.Equal(t, uint8(128), rawAxis(0))
	assert.Equal(t, uint8(255), rawAxis(1))
	assert.Equal(t, uint8(255), rawAxis(2))
}

func TestStickFromGamepad(t *testing.T) {
	var st glfw.GamepadState
	st.Axes[glfw.AxisLeftX] = 1
	st.Axes[glfw.AxisLeftY] = -1
	st.Buttons[glfw.ButtonStart] = glfw.Press
	st.Buttons[glfw.ButtonCross] = glfw.Press

	s := stickFromGamepad(&st)
	assert.Equal(t, uint8(255), s.LX)
	assert.Equal(t, uint8(0), s.LY)
	assert.Equal(t, uint8(128), s.RX)
	assert.Equal(t, core.ButtonStart|core.ButtonCross, s.Buttons)

	snap := core.InputSnapshot{Device: core.DeviceStick, Stick: s}
	assert.True(t, snap.ExitRequested())
}

func TestTranslateKey(t *testing.T) {
	assert.Equal(t, core.KeyEscape, translateKey(glfw.KeyEscape))
	assert.Equal(t, core.KeyQ, translateKey(glfw.KeyQ))
	assert.Equal(t, core.KeyEnter, translateKey(glfw.KeyEnter))
	assert.Equal(t, core.KeyEnter, translateKey(glfw.KeyKPEnter))
	assert.Equal(t, core.KeyUnknown, translateKey(glfw.KeyW))
}

func TestDialogConfirmed(t *testing.T) {
	assert.False(t, dialogConfirmed(0, 0))
	assert.False(t, dialogConfirmed(core.KeySet(0).With(core.KeyQ), core.ButtonCircle|core.ButtonL))

	// no pad attached: the keyboard confirms
	assert.True(t, dialogConfirmed(core.KeySet(0).With(core.KeyEnter), 0))
	assert.True(t, dialogConfirmed(core.KeySet(0).With(core.KeyEscape), 0))

	assert.True(t, dialogConfirmed(0, core.ButtonCross))
	assert.True(t, dialogConfirmed(0, core.ButtonStart))
}

func TestDrainKeys(t *testing.T) {
	var s glfwSurface
	s.pressed = s.pressed.With(core.KeyEnter)
	assert.True(t, s.drainKeys().Has(core.KeyEnter))
	assert.Zero(t, s.drainKeys())
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "a", firstLine("a\nb"))
	assert.Equal(t, "abc", firstLine("abc"))
}

func TestBackendsWithoutContext(t *testing.T) {
	d := NewDesktopBackend()
	assert.False(t, d.ShouldClose())
	assert.NotPanics(t, d.DestroyContext)
	assert.NotPanics(t, d.SwapBuffers)

	g := NewGamepadBackend()
	assert.False(t, g.ShouldClose())
	assert.NotPanics(t, func() { g.ReportFatal("no context") })
}
