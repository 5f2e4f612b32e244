// Package text rasterizes short messages into RGBA images that the renderer
// can upload as a texture.
package text

import (
	"image"
	"image/draw"
	"strings"

	"github.com/hubastard/raymarch/engine/colors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Panel is a fixed-size text surface drawn with a monospaced face.
type Panel struct {
	Width, Height int
	Margin        int // pixels on every side
	Face          font.Face
	Foreground    colors.Color
	Background    colors.Color
}

// NewPanel returns a white-on-crimson panel using the 7x13 bitmap face.
func NewPanel(width, height int) *Panel {
	return &Panel{
		Width:      width,
		Height:     height,
		Margin:     8,
		Face:       basicfont.Face7x13,
		Foreground: colors.White,
		Background: colors.Crimson,
	}
}

// Columns is the number of glyphs that fit on one line.
func (p *Panel) Columns() int {
	adv, ok := p.Face.GlyphAdvance('M')
	if !ok || adv.Ceil() <= 0 {
		return 0
	}
	return max((p.Width-2*p.Margin)/adv.Ceil(), 0)
}

// Rows is the number of lines that fit.
func (p *Panel) Rows() int {
	lh := p.lineHeight()
	if lh <= 0 {
		return 0
	}
	return max((p.Height-2*p.Margin)/lh, 0)
}

func (p *Panel) lineHeight() int { return p.Face.Metrics().Height.Ceil() }

// Render fills the background and draws lines top-down. Lines past Rows are
// dropped; long lines are clipped at the right edge.
func (p *Panel) Render(lines []string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(p.Background.NRGBA()), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(p.Foreground.NRGBA()),
		Face: p.Face,
	}
	lh, ascent := p.lineHeight(), p.Face.Metrics().Ascent.Ceil()
	for i, line := range lines {
		if i >= p.Rows() {
			break
		}
		// Dot sits on the baseline
		d.Dot = fixed.P(p.Margin, p.Margin+ascent+i*lh)
		d.DrawString(line)
	}
	return img
}

// Dialog lays out a title, a blank line and the wrapped body, and pins the
// footer to the last row. The body is truncated when it would cover the
// footer.
func (p *Panel) Dialog(title, body, footer string) *image.RGBA {
	rows := p.Rows()
	lines := append([]string{title, ""}, Wrap(body, p.Columns())...)
	if footer != "" && rows > 0 {
		if len(lines) > rows-1 {
			lines = lines[:rows-1]
		}
		for len(lines) < rows-1 {
			lines = append(lines, "")
		}
		lines = append(lines, footer)
	}
	return p.Render(lines)
}

// Wrap breaks s into lines of at most cols runes at whitespace. Newlines
// always start a new line and words longer than cols are split.
func Wrap(s string, cols int) []string {
	if cols <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		var cur []rune
		for _, word := range strings.Fields(para) {
			w := []rune(word)
			for len(w) > cols {
				if len(cur) > 0 {
					lines = append(lines, string(cur))
					cur = nil
				}
				lines = append(lines, string(w[:cols]))
				w = w[cols:]
			}
			switch {
			case len(cur) == 0:
				cur = append(cur, w...)
			case len(cur)+1+len(w) <= cols:
				cur = append(append(cur, ' '), w...)
			default:
				lines = append(lines, string(cur))
				cur = append([]rune(nil), w...)
			}
		}
		lines = append(lines, string(cur))
	}
	return lines
}
