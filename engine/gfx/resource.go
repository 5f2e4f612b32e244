package gfx

// Scoped GPU objects. Each wrapper owns exactly one handle and releases it at
// most once; Release is safe on nil wrappers so callers can defer it on every
// path without tracking what was actually created.

type Shader struct {
	dev   Device
	id    uint32
	Stage ShaderStage
}

// NewShader creates a shader object. It returns nil if the device hands back
// a zero handle.
func NewShader(dev Device, stage ShaderStage) *Shader {
	id := dev.CreateShader(stage)
	if id == 0 {
		return nil
	}
	return &Shader{dev: dev, id: id, Stage: stage}
}

func (s *Shader) ID() uint32 {
	if s == nil {
		return 0
	}
	return s.id
}

func (s *Shader) Release() {
	if s == nil || s.id == 0 {
		return
	}
	s.dev.DeleteShader(s.id)
	s.id = 0
}

type Program struct {
	dev Device
	id  uint32
}

func NewProgram(dev Device) *Program {
	id := dev.CreateProgram()
	if id == 0 {
		return nil
	}
	return &Program{dev: dev, id: id}
}

func (p *Program) ID() uint32 {
	if p == nil {
		return 0
	}
	return p.id
}

func (p *Program) Release() {
	if p == nil || p.id == 0 {
		return
	}
	p.dev.DeleteProgram(p.id)
	p.id = 0
}

type Buffer struct {
	dev    Device
	id     uint32
	Target BufferTarget
}

func NewBuffer(dev Device, target BufferTarget) *Buffer {
	return &Buffer{dev: dev, id: dev.CreateBuffer(), Target: target}
}

func (b *Buffer) ID() uint32 {
	if b == nil {
		return 0
	}
	return b.id
}

func (b *Buffer) Bind() { b.dev.BindBuffer(b.Target, b.id) }

func (b *Buffer) Release() {
	if b == nil || b.id == 0 {
		return
	}
	b.dev.DeleteBuffer(b.id)
	b.id = 0
}

type VertexArray struct {
	dev Device
	id  uint32
}

func NewVertexArray(dev Device) *VertexArray {
	return &VertexArray{dev: dev, id: dev.CreateVertexArray()}
}

func (v *VertexArray) ID() uint32 {
	if v == nil {
		return 0
	}
	return v.id
}

func (v *VertexArray) Bind() { v.dev.BindVertexArray(v.id) }

func (v *VertexArray) Release() {
	if v == nil || v.id == 0 {
		return
	}
	v.dev.DeleteVertexArray(v.id)
	v.id = 0
}

type Texture struct {
	dev           Device
	id            uint32
	Width, Height int
}

func NewTexture(dev Device) *Texture {
	return &Texture{dev: dev, id: dev.CreateTexture()}
}

func (t *Texture) ID() uint32 {
	if t == nil {
		return 0
	}
	return t.id
}

func (t *Texture) Bind() { t.dev.BindTexture(t.id) }

// Upload binds the texture and replaces its storage with pix, which holds
// width*height RGBA8 texels.
func (t *Texture) Upload(width, height int, pix []uint8) {
	t.Bind()
	t.dev.TexImageRGBA(int32(width), int32(height), pix)
	t.Width, t.Height = width, height
}

func (t *Texture) Release() {
	if t == nil || t.id == 0 {
		return
	}
	t.dev.DeleteTexture(t.id)
	t.id = 0
}
