package gfx

// Device is the slice of the graphics API the engine issues calls through.
// The OpenGL implementation lives in engine/gfx/gl; tests use gfxtest.
type Device interface {
	// Driver info
	Vendor() string
	Renderer() string
	Version() string

	// Fixed-function state
	Viewport(x, y, w, h int32)
	Disable(c Capability)
	ClearColor(r, g, b, a float32)
	Clear()

	// Shaders and programs
	CreateShader(stage ShaderStage) uint32
	ShaderSource(sh uint32, src string)
	CompileShader(sh uint32) bool
	ShaderInfoLog(sh uint32) string
	DeleteShader(sh uint32)

	CreateProgram() uint32
	AttachShader(prog, sh uint32)
	BindAttribLocation(prog, index uint32, name string)
	LinkProgram(prog uint32) bool
	ProgramInfoLog(prog uint32) string
	DeleteProgram(prog uint32)
	UseProgram(prog uint32)

	// Uniforms; a location < 0 is never passed to a setter.
	UniformLocation(prog uint32, name string) int32
	Uniform1f(loc int32, v float32)
	Uniform2f(loc int32, x, y float32)
	Uniform3f(loc int32, x, y, z float32)

	// Geometry
	CreateVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)
	CreateBuffer() uint32
	BindBuffer(target BufferTarget, buf uint32)
	BufferFloat32(target BufferTarget, data []float32)
	BufferUint16(target BufferTarget, data []uint16)
	DeleteBuffer(buf uint32)
	EnableVertexAttrib(index uint32)
	VertexAttribFloat(index uint32, size, stride int32, offset uintptr)
	DrawTrianglesUint16(count int32)

	// Textures: 2D, unit 0, RGBA8 pixels with row 0 at the top.
	CreateTexture() uint32
	BindTexture(tex uint32)
	TexImageRGBA(width, height int32, pix []uint8)
	DeleteTexture(tex uint32)
}

type Capability int

const (
	DepthTest Capability = iota
	CullFace
)

func (c Capability) String() string {
	switch c {
	case DepthTest:
		return "depth-test"
	case CullFace:
		return "cull-face"
	default:
		return "unknown"
	}
}

type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return "unknown"
	}
}

type BufferTarget int

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)
