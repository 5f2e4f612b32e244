package platform

import (
	"fmt"
	"os"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/raymarch/engine/core"
	"github.com/hubastard/raymarch/engine/gfx"
)

// DesktopBackend drives the camera with the mouse and quits on Escape/Q.
type DesktopBackend struct {
	glfwSurface
	leftDown bool
}

func NewDesktopBackend() *DesktopBackend { return &DesktopBackend{} }

func (b *DesktopBackend) CreateContext(cfg core.Config) (gfx.Device, error) {
	if err := b.create(cfg); err != nil {
		return nil, err
	}
	b.w.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		switch action {
		case glfw.Press:
			b.leftDown = true
		case glfw.Release:
			b.leftDown = false
		}
	})
	return b.dev, nil
}

func (b *DesktopBackend) PollInput() core.InputSnapshot {
	glfw.PollEvents()
	snap := core.InputSnapshot{Device: core.DevicePointer, Keys: b.drainKeys()}
	if b.w != nil {
		snap.Pointer.X, snap.Pointer.Y = b.w.GetCursorPos()
	}
	snap.Pointer.LeftDown = b.leftDown
	return snap
}

func (b *DesktopBackend) ReportFatal(msg string) {
	fmt.Fprintf(os.Stderr, "FATAL ERROR: %s\n", msg)
}

func translateKey(k glfw.Key) core.Key {
	switch k {
	case glfw.KeyEscape:
		return core.KeyEscape
	case glfw.KeyQ:
		return core.KeyQ
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return core.KeyEnter
	default:
		return core.KeyUnknown
	}
}

var _ core.Backend = (*DesktopBackend)(nil)
