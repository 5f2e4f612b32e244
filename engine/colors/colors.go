package colors

import "image/color"

// Color is linear RGBA in [0, 1].
type Color [4]float32

var (
	Black   = Color{0, 0, 0, 1}
	White   = Color{1, 1, 1, 1}
	Crimson = Color{0.55, 0.05, 0.08, 1} // fatal error screen
)

func (c Color) RGBA() (r, g, b, a float32) { return c[0], c[1], c[2], c[3] }

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// NRGBA converts to 8-bit straight alpha for image rasterizing.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c[0]), G: to8(c[1]), B: to8(c[2]), A: to8(c[3])}
}

func to8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
