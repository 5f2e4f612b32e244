// Package overlay draws a CPU-rendered RGBA image across the whole viewport.
package overlay

import (
	"embed"
	"fmt"
	"image"
	"image/draw"
	"path"

	"github.com/hubastard/raymarch/engine/assets"
	"github.com/hubastard/raymarch/engine/gfx"
	"github.com/hubastard/raymarch/engine/gfx/geometry"
	"github.com/hubastard/raymarch/engine/gfx/shader"
)

//go:embed shaders
var shaderFS embed.FS

const programName = "overlay"

func embeddedLayout(name, ext string) string {
	return path.Join("shaders", name+"."+ext)
}

type Overlay struct {
	shaders *shader.Manager
	program *shader.Program
	texture *gfx.Texture
	quad    *geometry.Quad
}

// New compiles the overlay program and uploads img. Nothing stays allocated
// when it fails.
func New(dev gfx.Device, img *image.RGBA) (*Overlay, error) {
	shaders := shader.NewManager(dev, assets.NewLoader(shaderFS, embeddedLayout))
	program, err := shaders.Load(programName)
	if err != nil {
		return nil, fmt.Errorf("overlay: %w", err)
	}

	tight := packed(img)
	tex := gfx.NewTexture(dev)
	tex.Upload(tight.Rect.Dx(), tight.Rect.Dy(), tight.Pix)

	return &Overlay{
		shaders: shaders,
		program: program,
		texture: tex,
		quad:    geometry.NewQuad(dev),
	}, nil
}

// packed returns img itself when its pixels are contiguous from the origin,
// otherwise a copy that is.
func packed(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	if b.Min == (image.Point{}) && img.Stride == 4*b.Dx() {
		return img
	}
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// Draw renders the image. A nil Overlay draws nothing.
func (o *Overlay) Draw() {
	if o == nil || o.quad == nil {
		return
	}
	o.program.Activate()
	o.texture.Bind()
	o.quad.Draw()
}

func (o *Overlay) Release() {
	if o == nil {
		return
	}
	o.quad.Destroy()
	o.quad = nil
	o.texture.Release()
	if o.shaders != nil {
		o.shaders.Release()
		o.shaders, o.program = nil, nil
	}
}
