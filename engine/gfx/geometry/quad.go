package geometry

import (
	"github.com/hubastard/raymarch/engine/gfx"
)

// Interleaved vertex layout: pos2 + uv2.
const (
	floatsPerVertex = 4
	VertexStride    = floatsPerVertex * 4 // bytes
	PositionOffset  = 0
	TexCoordOffset  = 2 * 4

	PositionAttrib = 0
	TexCoordAttrib = 1
)

// QuadVertices covers clip space [-1,1]^2 with UVs [0,1]^2.
var QuadVertices = [...]float32{
	//  X,    Y,   U,   V
	-1.0, -1.0, 0.0, 0.0,
	1.0, -1.0, 1.0, 0.0,
	1.0, 1.0, 1.0, 1.0,
	-1.0, 1.0, 0.0, 1.0,
}

// QuadIndices forms two triangles sharing the 0-2 diagonal.
var QuadIndices = [...]uint16{0, 1, 2, 0, 2, 3}

// Quad is the full-screen quad. It is immutable once created.
type Quad struct {
	dev gfx.Device
	vao *gfx.VertexArray
	vbo *gfx.Buffer
	ibo *gfx.Buffer
}

// NewQuad uploads the quad and configures attributes 0 (position) and 1
// (texcoord). The vertex array stays bound.
func NewQuad(dev gfx.Device) *Quad {
	q := &Quad{dev: dev}

	q.vao = gfx.NewVertexArray(dev)
	q.vao.Bind()

	verts := QuadVertices
	q.vbo = gfx.NewBuffer(dev, gfx.ArrayBuffer)
	q.vbo.Bind()
	dev.BufferFloat32(gfx.ArrayBuffer, verts[:])

	inds := QuadIndices
	q.ibo = gfx.NewBuffer(dev, gfx.ElementArrayBuffer)
	q.ibo.Bind()
	dev.BufferUint16(gfx.ElementArrayBuffer, inds[:])

	dev.EnableVertexAttrib(PositionAttrib)
	dev.VertexAttribFloat(PositionAttrib, 2, VertexStride, PositionOffset)
	dev.EnableVertexAttrib(TexCoordAttrib)
	dev.VertexAttribFloat(TexCoordAttrib, 2, VertexStride, TexCoordOffset)
	return q
}

// IndexCount is the number of indices Draw submits.
func (q *Quad) IndexCount() int32 { return int32(len(QuadIndices)) }

func (q *Quad) Draw() {
	q.vao.Bind()
	q.dev.DrawTrianglesUint16(q.IndexCount())
}

// Destroy releases the buffers. Safe on a nil or already destroyed quad.
func (q *Quad) Destroy() {
	if q == nil {
		return
	}
	q.vbo.Release()
	q.ibo.Release()
	q.vao.Release()
}
