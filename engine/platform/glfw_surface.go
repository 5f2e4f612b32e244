package platform

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/raymarch/engine/core"
	glbackend "github.com/hubastard/raymarch/engine/gfx/gl"
)

// glfwSurface owns the GLFW window and its GL context. Both backends embed it.
type glfwSurface struct {
	w       *glfw.Window
	dev     *glbackend.Device
	pressed core.KeySet // key presses since the last drain
}

// Must be called on main thread before any GL calls.
func (s *glfwSurface) create(cfg core.Config) error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: glfw init: %v", core.ErrContextCreation, err)
	}

	// GL 3.2+ core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Samples, 0)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("%w: create window: %v", core.ErrContextCreation, err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	dev, err := glbackend.New()
	if err != nil {
		win.Destroy()
		glfw.Terminate()
		return fmt.Errorf("%w: load GL: %v", core.ErrContextCreation, err)
	}
	log.Printf("GL: %s (%s, %s)", dev.Version(), dev.Renderer(), dev.Vendor())

	s.w, s.dev = win, dev
	s.w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		if k := translateKey(key); k != core.KeyUnknown {
			s.pressed = s.pressed.With(k)
		}
	})
	return nil
}

// drainKeys returns the presses recorded since the previous call.
func (s *glfwSurface) drainKeys() core.KeySet {
	k := s.pressed
	s.pressed = 0
	return k
}

func (s *glfwSurface) SwapBuffers() {
	if s.w != nil {
		s.w.SwapBuffers()
	}
}

func (s *glfwSurface) ShouldClose() bool { return s.w != nil && s.w.ShouldClose() }

func (s *glfwSurface) DestroyContext() {
	if s.w == nil {
		return
	}
	s.w.Destroy()
	s.w, s.dev = nil, nil
	glfw.Terminate()
}
