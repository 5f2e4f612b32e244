package core

import (
	"errors"

	"github.com/hubastard/raymarch/engine/colors"
	"github.com/hubastard/raymarch/engine/gfx"
)

// ErrContextCreation wraps any failure to obtain a drawable surface or a
// graphics context.
var ErrContextCreation = errors.New("graphics context creation failed")

// Backend is the platform: a surface, a graphics context and an input device.
// One implementation is picked at startup; the controller never branches on
// platform.
type Backend interface {
	CreateContext(cfg Config) (gfx.Device, error) // surface + context; must run on the main thread
	PollInput() InputSnapshot                     // sample input once per frame
	SwapBuffers()                                 // present; may block on vsync
	ShouldClose() bool                            // platform asked the surface to close
	DestroyContext()
	ReportFatal(msg string) // show an unrecoverable error to the user
}

// Config for the window/context.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor colors.Color
}

// Output resolution assumed throughout; there is no resize handling.
const (
	DefaultWidth  = 960
	DefaultHeight = 544
)

func DefaultConfig() Config {
	return Config{
		Title:      "RayMarching",
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		VSync:      true,
		ClearColor: colors.Black,
	}
}
