package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/hubastard/raymarch/engine/app"
	"github.com/hubastard/raymarch/engine/config"
	"github.com/hubastard/raymarch/engine/core"
	"github.com/hubastard/raymarch/engine/platform"
)

// GLFW and GL calls must stay on the main OS thread.
func init() { runtime.LockOSThread() }

func main() {
	os.Exit(run())
}

func run() int {
	var (
		cfgPath = flag.String("config", "", "YAML config file (default: "+config.DefaultFilename+" if present)")
		backend = flag.String("backend", "", "input backend: desktop or gamepad")
		root    = flag.String("assets", "", "asset root directory")
		layout  = flag.String("layout", "", "shader path layout: desktop or console")
		frames  = flag.Uint64("frames", 0, "stop after N frames (0 = until quit)")
	)
	flag.Parse()

	path, required := *cfgPath, true
	if path == "" {
		path, required = config.DefaultFilename, false
	}
	cfg, err := config.Load(path, required)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if *backend != "" {
		cfg.Backend = *backend
	}
	if *root != "" {
		cfg.Assets.Root = *root
	}
	if *layout != "" {
		cfg.Assets.Layout = *layout
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	log.Printf("starting %s (%s backend)", cfg.Window.Title, cfg.Backend)

	be := newBackend(cfg.Backend)
	ctrl := app.New(be, app.Options{Config: cfg, MaxFrames: *frames})
	defer ctrl.Cleanup()

	if err := ctrl.Initialize(); err != nil {
		be.ReportFatal(err.Error())
		log.Printf("failed to initialize application")
		return 1
	}
	log.Printf("application initialized")

	ctrl.Run()

	log.Printf("application finished")
	return 0
}

func newBackend(name string) core.Backend {
	if name == config.BackendGamepad {
		return platform.NewGamepadBackend()
	}
	return platform.NewDesktopBackend()
}
