package shader

import (
	"errors"
	"fmt"

	"github.com/hubastard/raymarch/engine/gfx"
)

// ErrObjectCreation is returned when the device hands back a zero handle for
// a shader or program object.
var ErrObjectCreation = errors.New("failed to create shader objects")

// CompileError carries the compiler diagnostic of one stage.
type CompileError struct {
	Shader string
	Stage  gfx.ShaderStage
	Log    string
}

func (e *CompileError) Error() string {
	if e.Log == "" {
		return fmt.Sprintf("%s: %s shader compilation failed (no log available)", e.Shader, e.Stage)
	}
	return fmt.Sprintf("%s: %s shader compilation failed:\n%s", e.Shader, e.Stage, e.Log)
}

// LinkError carries the linker diagnostic.
type LinkError struct {
	Shader string
	Log    string
}

func (e *LinkError) Error() string {
	if e.Log == "" {
		return fmt.Sprintf("%s: shader program linking failed (no log available)", e.Shader)
	}
	return fmt.Sprintf("%s: shader program linking failed:\n%s", e.Shader, e.Log)
}
