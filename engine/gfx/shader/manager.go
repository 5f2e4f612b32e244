package shader

import (
	"fmt"
	"log"

	"github.com/hubastard/raymarch/engine/gfx"
)

// Fixed vertex attribute slots, bound before linking.
const (
	AttribPosition = 0
	AttribTexCoord = 1
)

var attribNames = map[uint32]string{
	AttribPosition: "aPos",
	AttribTexCoord: "aUV",
}

// SourceLoader returns the vertex and fragment sources of a named shader.
type SourceLoader interface {
	LoadShader(name string) (vert, frag string, err error)
}

// Manager compiles and owns shader programs.
type Manager struct {
	dev      gfx.Device
	sources  SourceLoader
	programs []*Program
}

func NewManager(dev gfx.Device, sources SourceLoader) *Manager {
	return &Manager{dev: dev, sources: sources}
}

// Load reads, compiles and links the shader pair called name and resolves the
// uniform contract. Nothing is left allocated on the device when it fails.
func (m *Manager) Load(name string) (*Program, error) {
	vsSrc, fsSrc, err := m.sources.LoadShader(name)
	if err != nil {
		return nil, fmt.Errorf("load shader %q: %w", name, err)
	}

	vs := gfx.NewShader(m.dev, gfx.VertexStage)
	defer vs.Release()
	fs := gfx.NewShader(m.dev, gfx.FragmentStage)
	defer fs.Release()
	prog := gfx.NewProgram(m.dev)
	if vs == nil || fs == nil || prog == nil {
		prog.Release()
		return nil, fmt.Errorf("%s: %w: vs=%d fs=%d prog=%d", name, ErrObjectCreation, vs.ID(), fs.ID(), prog.ID())
	}

	if err := m.compile(name, vs, vsSrc); err != nil {
		prog.Release()
		return nil, err
	}
	if err := m.compile(name, fs, fsSrc); err != nil {
		prog.Release()
		return nil, err
	}

	m.dev.AttachShader(prog.ID(), vs.ID())
	m.dev.AttachShader(prog.ID(), fs.ID())
	for idx := uint32(AttribPosition); idx <= AttribTexCoord; idx++ {
		m.dev.BindAttribLocation(prog.ID(), idx, attribNames[idx])
	}

	if !m.dev.LinkProgram(prog.ID()) {
		err := &LinkError{Shader: name, Log: m.dev.ProgramInfoLog(prog.ID())}
		prog.Release()
		return nil, err
	}
	log.Printf("shader %q linked: program %d", name, prog.ID())

	uniforms := absentLocations()
	for _, u := range AllUniforms() {
		uniforms.loc[u] = m.dev.UniformLocation(prog.ID(), u.Name())
	}
	log.Printf("uniform locations: res=%d time=%d origin=%d target=%d fov=%d sun=%d",
		uniforms.Location(Resolution), uniforms.Location(Time),
		uniforms.Location(CamOrigin), uniforms.Location(CamTarget),
		uniforms.Location(Fov), uniforms.Location(SunDir))

	p := &Program{Name: name, dev: m.dev, prog: prog, uniforms: uniforms}
	m.programs = append(m.programs, p)
	return p, nil
}

func (m *Manager) compile(name string, sh *gfx.Shader, src string) error {
	m.dev.ShaderSource(sh.ID(), src)
	if m.dev.CompileShader(sh.ID()) {
		return nil
	}
	return &CompileError{Shader: name, Stage: sh.Stage, Log: m.dev.ShaderInfoLog(sh.ID())}
}

// Release deletes every program loaded through m.
func (m *Manager) Release() {
	for _, p := range m.programs {
		p.Release()
	}
	m.programs = nil
}
