package shader

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/raymarch/engine/gfx"
)

// Program is a linked vertex+fragment pair with its resolved uniforms.
// Every setter is a no-op for uniforms the program does not expose.
type Program struct {
	Name     string
	dev      gfx.Device
	prog     *gfx.Program
	uniforms Locations
}

func (p *Program) ID() uint32 { return p.prog.ID() }

// Uniforms returns a copy of the resolved location table.
func (p *Program) Uniforms() Locations { return p.uniforms }

// Activate makes p the current program.
func (p *Program) Activate() { p.dev.UseProgram(p.prog.ID()) }

func (p *Program) Set1f(u Uniform, v float32) {
	if loc := p.uniforms.Location(u); loc >= 0 {
		p.dev.Uniform1f(loc, v)
	}
}

func (p *Program) Set2f(u Uniform, x, y float32) {
	if loc := p.uniforms.Location(u); loc >= 0 {
		p.dev.Uniform2f(loc, x, y)
	}
}

func (p *Program) Set3f(u Uniform, x, y, z float32) {
	if loc := p.uniforms.Location(u); loc >= 0 {
		p.dev.Uniform3f(loc, x, y, z)
	}
}

func (p *Program) SetVec2(u Uniform, v mgl32.Vec2) { p.Set2f(u, v[0], v[1]) }
func (p *Program) SetVec3(u Uniform, v mgl32.Vec3) { p.Set3f(u, v[0], v[1], v[2]) }

// Release deletes the program object. Safe to call more than once.
func (p *Program) Release() {
	if p == nil {
		return
	}
	p.prog.Release()
}
