package shader

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/raymarch/engine/assets"
	"github.com/hubastard/raymarch/engine/gfx"
	"github.com/hubastard/raymarch/engine/gfx/gfxtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSources struct {
	vert, frag string
	err        error
}

func (s stubSources) LoadShader(string) (string, string, error) { return s.vert, s.frag, s.err }

var okSources = stubSources{vert: "vertex src", frag: "fragment src"}

func TestLoad_ResolvesUniformContract(t *testing.T) {
	dev := gfxtest.New().WithUniforms("uResolution", "uTime", "uCamOrigin")
	p, err := NewManager(dev, okSources).Load("raymarch")
	require.NoError(t, err)

	u := p.Uniforms()
	assert.True(t, u.Has(Resolution))
	assert.True(t, u.Has(Time))
	assert.True(t, u.Has(CamOrigin))
	assert.False(t, u.Has(SunDir))
	assert.Equal(t, Absent, u.Location(PointLightIntensity))

	loc, ok := u.Lookup("uTime")
	assert.True(t, ok)
	assert.Equal(t, int32(1), loc)
	_, ok = u.Lookup("uNope")
	assert.False(t, ok)

	assert.Equal(t, len(AllUniforms()), dev.Count("UniformLocation"))
}

func TestLoad_BindsAttributesBeforeLink(t *testing.T) {
	dev := gfxtest.New()
	_, err := NewManager(dev, okSources).Load("raymarch")
	require.NoError(t, err)

	binds := dev.CallsTo("BindAttribLocation")
	require.Len(t, binds, 2)
	assert.Equal(t, uint32(0), binds[0].Args[1])
	assert.Equal(t, "aPos", binds[0].Args[2])
	assert.Equal(t, uint32(1), binds[1].Args[1])
	assert.Equal(t, "aUV", binds[1].Args[2])

	var bindIdx, linkIdx int
	for i, c := range dev.Calls {
		switch c.Name {
		case "BindAttribLocation":
			bindIdx = i
		case "LinkProgram":
			linkIdx = i
		}
	}
	assert.Less(t, bindIdx, linkIdx)
}

func TestLoad_ShadersReleasedAfterLink(t *testing.T) {
	dev := gfxtest.New()
	p, err := NewManager(dev, okSources).Load("raymarch")
	require.NoError(t, err)
	assert.Equal(t, 2, dev.Count("DeleteShader"))
	assert.Equal(t, 1, dev.Live(), "only the program survives")
	assert.NotZero(t, p.ID())
}

func TestLoad_AssetErrorPassesThrough(t *testing.T) {
	dev := gfxtest.New()
	_, err := NewManager(dev, stubSources{err: assets.ErrAssetNotFound}).Load("raymarch")
	require.ErrorIs(t, err, assets.ErrAssetNotFound)
	assert.Zero(t, dev.Count("CreateShader"))
}

func TestLoad_CompileErrorCarriesStageAndLog(t *testing.T) {
	dev := gfxtest.New()
	dev.CompileErrors = map[gfx.ShaderStage]string{gfx.FragmentStage: "0:12: syntax error"}
	_, err := NewManager(dev, okSources).Load("raymarch")

	var ce *CompileError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, gfx.FragmentStage, ce.Stage)
	assert.Contains(t, err.Error(), "fragment shader compilation failed")
	assert.Contains(t, err.Error(), "syntax error")
	assert.Zero(t, dev.Live())
	assert.Zero(t, dev.DoubleReleases())
	assert.Zero(t, dev.Count("LinkProgram"))
}

func TestLoad_CompileErrorWithoutLog(t *testing.T) {
	dev := gfxtest.New()
	dev.CompileErrors = map[gfx.ShaderStage]string{gfx.VertexStage: ""}
	_, err := NewManager(dev, okSources).Load("raymarch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no log available")
}

func TestLoad_LinkError(t *testing.T) {
	dev := gfxtest.New()
	msg := "varying vUV not written"
	dev.LinkError = &msg
	_, err := NewManager(dev, okSources).Load("raymarch")

	var le *LinkError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, msg, le.Log)
	assert.Zero(t, dev.Live())
	assert.Zero(t, dev.Count("UniformLocation"))
}

func TestLoad_ObjectCreationFailure(t *testing.T) {
	dev := gfxtest.New()
	dev.NoShaders = true
	_, err := NewManager(dev, okSources).Load("raymarch")
	require.ErrorIs(t, err, ErrObjectCreation)
	assert.Zero(t, dev.DoubleReleases())
}

func TestProgram_SettersSkipAbsentUniforms(t *testing.T) {
	dev := gfxtest.New()
	p, err := NewManager(dev, okSources).Load("raymarch")
	require.NoError(t, err)
	dev.Reset()

	for _, u := range AllUniforms() {
		p.Set1f(u, 1)
		p.Set2f(u, 1, 2)
		p.Set3f(u, 1, 2, 3)
		p.SetVec3(u, mgl32.Vec3{1, 2, 3})
	}
	assert.Empty(t, dev.Calls)
}

func TestProgram_SettersReachPresentUniforms(t *testing.T) {
	dev := gfxtest.New().WithUniforms("uTime", "uCamOrigin", "uResolution")
	p, err := NewManager(dev, okSources).Load("raymarch")
	require.NoError(t, err)
	dev.Reset()

	p.Set1f(Time, 0.5)
	p.SetVec3(CamOrigin, mgl32.Vec3{1, 2, 3})
	p.SetVec2(Resolution, mgl32.Vec2{960, 544})

	require.Len(t, dev.Calls, 3)
	assert.Equal(t, gfxtest.Call{Name: "Uniform1f", Args: []any{int32(0), float32(0.5)}}, dev.Calls[0])
	assert.Equal(t, gfxtest.Call{Name: "Uniform3f", Args: []any{int32(1), float32(1), float32(2), float32(3)}}, dev.Calls[1])
	assert.Equal(t, gfxtest.Call{Name: "Uniform2f", Args: []any{int32(2), float32(960), float32(544)}}, dev.Calls[2])
}

func TestManager_ReleaseIsIdempotent(t *testing.T) {
	dev := gfxtest.New()
	m := NewManager(dev, okSources)
	p, err := m.Load("raymarch")
	require.NoError(t, err)

	p.Activate()
	assert.Equal(t, 1, dev.Count("UseProgram"))

	m.Release()
	m.Release()
	p.Release()
	assert.Zero(t, dev.Live())
	assert.Zero(t, dev.DoubleReleases())
}

func TestUniformNames(t *testing.T) {
	assert.Equal(t, "uCamTarget", CamTarget.Name())
	assert.Equal(t, "material_f0", MaterialF0.String())
	assert.Equal(t, "", Uniform(-1).Name())
	assert.Len(t, AllUniforms(), 14)
}
