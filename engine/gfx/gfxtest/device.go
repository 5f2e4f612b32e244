// Package gfxtest provides a recording gfx.Device for tests that run without
// a GL context.
package gfxtest

import (
	"fmt"

	"github.com/hubastard/raymarch/engine/gfx"
)

// Call is one recorded device call.
type Call struct {
	Name string
	Args []any
}

// Device records every call it receives. Uniform names missing from
// Locations resolve to -1. Zero-valued fields mean "everything succeeds".
type Device struct {
	Calls []Call

	Locations     map[string]int32
	CompileErrors map[gfx.ShaderStage]string // stage -> info log; presence fails the compile
	LinkError     *string                    // non-nil fails the link with this info log
	NoShaders     bool                       // CreateShader/CreateProgram return 0

	ArrayData   []float32
	IndexData   []uint16
	TextureData []uint8
	TextureSize [2]int32

	nextID  uint32
	live    map[uint32]string
	stages  map[uint32]gfx.ShaderStage
	doubles int
}

func New() *Device {
	return &Device{
		Locations: map[string]int32{},
		live:      map[uint32]string{},
		stages:    map[uint32]gfx.ShaderStage{},
	}
}

// WithUniforms assigns consecutive locations to names.
func (d *Device) WithUniforms(names ...string) *Device {
	for i, n := range names {
		d.Locations[n] = int32(i)
	}
	return d
}

// Count returns how many times the named method was called.
func (d *Device) Count(name string) int {
	n := 0
	for _, c := range d.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// CallsTo returns the recorded calls to the named method in order.
func (d *Device) CallsTo(name string) []Call {
	var out []Call
	for _, c := range d.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets recorded calls but keeps object bookkeeping.
func (d *Device) Reset() { d.Calls = nil }

// Live reports the number of created objects not yet deleted.
func (d *Device) Live() int { return len(d.live) }

// DoubleReleases reports deletions of handles that were already deleted or
// never created.
func (d *Device) DoubleReleases() int { return d.doubles }

func (d *Device) record(name string, args ...any) {
	d.Calls = append(d.Calls, Call{Name: name, Args: args})
}

func (d *Device) create(kind string) uint32 {
	d.nextID++
	d.live[d.nextID] = kind
	return d.nextID
}

func (d *Device) destroy(kind string, id uint32) {
	if d.live[id] != kind {
		d.doubles++
		return
	}
	delete(d.live, id)
}

func (d *Device) Vendor() string   { return "gfxtest" }
func (d *Device) Renderer() string { return "recording" }
func (d *Device) Version() string  { return "0.0" }

func (d *Device) Viewport(x, y, w, h int32) { d.record("Viewport", x, y, w, h) }
func (d *Device) Disable(c gfx.Capability)  { d.record("Disable", c) }
func (d *Device) ClearColor(r, g, b, a float32) {
	d.record("ClearColor", r, g, b, a)
}
func (d *Device) Clear() { d.record("Clear") }

func (d *Device) CreateShader(stage gfx.ShaderStage) uint32 {
	d.record("CreateShader", stage)
	if d.NoShaders {
		return 0
	}
	id := d.create("shader")
	d.stages[id] = stage
	return id
}

func (d *Device) ShaderSource(sh uint32, src string) { d.record("ShaderSource", sh, src) }

func (d *Device) CompileShader(sh uint32) bool {
	d.record("CompileShader", sh)
	_, fail := d.CompileErrors[d.stages[sh]]
	return !fail
}

func (d *Device) ShaderInfoLog(sh uint32) string {
	d.record("ShaderInfoLog", sh)
	return d.CompileErrors[d.stages[sh]]
}

func (d *Device) DeleteShader(sh uint32) {
	d.record("DeleteShader", sh)
	d.destroy("shader", sh)
}

func (d *Device) CreateProgram() uint32 {
	d.record("CreateProgram")
	if d.NoShaders {
		return 0
	}
	return d.create("program")
}

func (d *Device) AttachShader(prog, sh uint32) { d.record("AttachShader", prog, sh) }

func (d *Device) BindAttribLocation(prog, index uint32, name string) {
	d.record("BindAttribLocation", prog, index, name)
}

func (d *Device) LinkProgram(prog uint32) bool {
	d.record("LinkProgram", prog)
	return d.LinkError == nil
}

func (d *Device) ProgramInfoLog(prog uint32) string {
	d.record("ProgramInfoLog", prog)
	if d.LinkError == nil {
		return ""
	}
	return *d.LinkError
}

func (d *Device) DeleteProgram(prog uint32) {
	d.record("DeleteProgram", prog)
	d.destroy("program", prog)
}

func (d *Device) UseProgram(prog uint32) { d.record("UseProgram", prog) }

func (d *Device) UniformLocation(prog uint32, name string) int32 {
	d.record("UniformLocation", prog, name)
	if loc, ok := d.Locations[name]; ok {
		return loc
	}
	return -1
}

func (d *Device) Uniform1f(loc int32, v float32) {
	d.checkLocation(loc)
	d.record("Uniform1f", loc, v)
}

func (d *Device) Uniform2f(loc int32, x, y float32) {
	d.checkLocation(loc)
	d.record("Uniform2f", loc, x, y)
}

func (d *Device) Uniform3f(loc int32, x, y, z float32) {
	d.checkLocation(loc)
	d.record("Uniform3f", loc, x, y, z)
}

func (d *Device) checkLocation(loc int32) {
	if loc < 0 {
		panic(fmt.Sprintf("gfxtest: uniform set on absent location %d", loc))
	}
}

func (d *Device) CreateVertexArray() uint32 {
	d.record("CreateVertexArray")
	return d.create("vertexarray")
}

func (d *Device) BindVertexArray(vao uint32) { d.record("BindVertexArray", vao) }

func (d *Device) DeleteVertexArray(vao uint32) {
	d.record("DeleteVertexArray", vao)
	d.destroy("vertexarray", vao)
}

func (d *Device) CreateBuffer() uint32 {
	d.record("CreateBuffer")
	return d.create("buffer")
}

func (d *Device) BindBuffer(target gfx.BufferTarget, buf uint32) {
	d.record("BindBuffer", target, buf)
}

func (d *Device) BufferFloat32(target gfx.BufferTarget, data []float32) {
	d.record("BufferFloat32", target, len(data))
	d.ArrayData = append([]float32(nil), data...)
}

func (d *Device) BufferUint16(target gfx.BufferTarget, data []uint16) {
	d.record("BufferUint16", target, len(data))
	d.IndexData = append([]uint16(nil), data...)
}

func (d *Device) DeleteBuffer(buf uint32) {
	d.record("DeleteBuffer", buf)
	d.destroy("buffer", buf)
}

func (d *Device) EnableVertexAttrib(index uint32) { d.record("EnableVertexAttrib", index) }

func (d *Device) VertexAttribFloat(index uint32, size, stride int32, offset uintptr) {
	d.record("VertexAttribFloat", index, size, stride, offset)
}

func (d *Device) DrawTrianglesUint16(count int32) { d.record("DrawTrianglesUint16", count) }

func (d *Device) CreateTexture() uint32 {
	d.record("CreateTexture")
	return d.create("texture")
}

func (d *Device) BindTexture(tex uint32) { d.record("BindTexture", tex) }

func (d *Device) TexImageRGBA(width, height int32, pix []uint8) {
	d.record("TexImageRGBA", width, height, len(pix))
	d.TextureSize = [2]int32{width, height}
	d.TextureData = append([]uint8(nil), pix...)
}

func (d *Device) DeleteTexture(tex uint32) {
	d.record("DeleteTexture", tex)
	d.destroy("texture", tex)
}

var _ gfx.Device = (*Device)(nil)
