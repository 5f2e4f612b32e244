package glbackend

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/raymarch/engine/gfx"
)

// Device implements gfx.Device on top of the current OpenGL context.
type Device struct{}

// New loads the GL function pointers. Must be called on the thread that owns
// the current context.
func New() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}
	return &Device{}, nil
}

func (d *Device) Vendor() string   { return gl.GoStr(gl.GetString(gl.VENDOR)) }
func (d *Device) Renderer() string { return gl.GoStr(gl.GetString(gl.RENDERER)) }
func (d *Device) Version() string  { return gl.GoStr(gl.GetString(gl.VERSION)) }

func (d *Device) Viewport(x, y, w, h int32) { gl.Viewport(x, y, w, h) }

func (d *Device) Disable(c gfx.Capability) {
	switch c {
	case gfx.DepthTest:
		gl.Disable(gl.DEPTH_TEST)
	case gfx.CullFace:
		gl.Disable(gl.CULL_FACE)
	}
}

func (d *Device) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }
func (d *Device) Clear()                        { gl.Clear(gl.COLOR_BUFFER_BIT) }

// --- Shaders ---

func (d *Device) CreateShader(stage gfx.ShaderStage) uint32 {
	switch stage {
	case gfx.VertexStage:
		return gl.CreateShader(gl.VERTEX_SHADER)
	case gfx.FragmentStage:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	}
	return 0
}

func (d *Device) ShaderSource(sh uint32, src string) {
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
}

func (d *Device) CompileShader(sh uint32) bool {
	gl.CompileShader(sh)
	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (d *Device) ShaderInfoLog(sh uint32) string {
	var logLen int32
	gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen))
	gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (d *Device) DeleteShader(sh uint32) { gl.DeleteShader(sh) }

func (d *Device) CreateProgram() uint32        { return gl.CreateProgram() }
func (d *Device) AttachShader(prog, sh uint32) { gl.AttachShader(prog, sh) }

func (d *Device) BindAttribLocation(prog, index uint32, name string) {
	gl.BindAttribLocation(prog, index, gl.Str(name+"\x00"))
}

func (d *Device) LinkProgram(prog uint32) bool {
	gl.LinkProgram(prog)
	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (d *Device) ProgramInfoLog(prog uint32) string {
	var logLen int32
	gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen))
	gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (d *Device) DeleteProgram(prog uint32) { gl.DeleteProgram(prog) }
func (d *Device) UseProgram(prog uint32)    { gl.UseProgram(prog) }

// --- Uniforms ---

func (d *Device) UniformLocation(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}

func (d *Device) Uniform1f(loc int32, v float32)       { gl.Uniform1f(loc, v) }
func (d *Device) Uniform2f(loc int32, x, y float32)    { gl.Uniform2f(loc, x, y) }
func (d *Device) Uniform3f(loc int32, x, y, z float32) { gl.Uniform3f(loc, x, y, z) }

// --- Geometry ---

func (d *Device) CreateVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (d *Device) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }

func (d *Device) DeleteVertexArray(vao uint32) { gl.DeleteVertexArrays(1, &vao) }

func (d *Device) CreateBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (d *Device) BindBuffer(target gfx.BufferTarget, buf uint32) {
	gl.BindBuffer(glTarget(target), buf)
}

func (d *Device) BufferFloat32(target gfx.BufferTarget, data []float32) {
	gl.BufferData(glTarget(target), len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (d *Device) BufferUint16(target gfx.BufferTarget, data []uint16) {
	gl.BufferData(glTarget(target), len(data)*2, gl.Ptr(data), gl.STATIC_DRAW)
}

func (d *Device) DeleteBuffer(buf uint32) { gl.DeleteBuffers(1, &buf) }

func (d *Device) EnableVertexAttrib(index uint32) { gl.EnableVertexAttribArray(index) }

func (d *Device) VertexAttribFloat(index uint32, size, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, false, stride, offset)
}

func (d *Device) DrawTrianglesUint16(count int32) {
	gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_SHORT, nil)
}

// --- Textures ---

func (d *Device) CreateTexture() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	return tex
}

func (d *Device) BindTexture(tex uint32) {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
}

func (d *Device) TexImageRGBA(width, height int32, pix []uint8) {
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
}

func (d *Device) DeleteTexture(tex uint32) { gl.DeleteTextures(1, &tex) }

func glTarget(t gfx.BufferTarget) uint32 {
	if t == gfx.ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}
