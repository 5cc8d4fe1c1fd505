// Package canvas implements render.Surface on top of a gg context.
package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/iburimskiy/breathing-bubble/internal/render"
)

type Canvas struct {
	dc    *gg.Context
	fonts *Fonts
	w, h  int
}

func New(width, height int, fonts *Fonts) *Canvas {
	return &Canvas{
		dc:    gg.NewContext(width, height),
		fonts: fonts,
		w:     width,
		h:     height,
	}
}

func (c *Canvas) Size() (int, int) { return c.w, c.h }

// RGBA exposes the backing pixels, alpha-premultiplied.
func (c *Canvas) RGBA() *image.RGBA {
	return c.dc.Image().(*image.RGBA)
}

func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

func (c *Canvas) FillRect(x, y, w, h float64, p render.Paint) {
	c.dc.DrawRectangle(x, y, w, h)
	c.fill(p)
}

func (c *Canvas) FillCircle(x, y, r float64, p render.Paint) {
	if r <= 0 {
		return
	}
	c.dc.DrawCircle(x, y, r)
	c.fill(p)
}

func (c *Canvas) StrokeRect(x, y, w, h, lineWidth float64, col color.Color) {
	c.dc.SetLineWidth(lineWidth)
	c.dc.SetColor(col)
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Stroke()
}

func (c *Canvas) StrokeCircle(x, y, r, lineWidth float64, col color.Color) {
	if r <= 0 {
		return
	}
	c.dc.SetLineWidth(lineWidth)
	c.dc.SetColor(col)
	c.dc.DrawCircle(x, y, r)
	c.dc.Stroke()
}

func (c *Canvas) DrawText(s string, x, y, size float64, col color.Color) {
	if c.fonts == nil {
		return
	}
	c.dc.SetFontFace(c.fonts.Face(size))
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(s, x, y, 0.5, 0.5)
}

func (c *Canvas) fill(p render.Paint) {
	switch p := p.(type) {
	case render.Solid:
		c.dc.SetColor(p.Color)
	case render.LinearGradient:
		g := gg.NewLinearGradient(p.X0, p.Y0, p.X1, p.Y1)
		addStops(g, p.Stops)
		c.dc.SetFillStyle(g)
	case render.RadialGradient:
		g := gg.NewRadialGradient(p.X0, p.Y0, p.R0, p.X1, p.Y1, p.R1)
		addStops(g, p.Stops)
		c.dc.SetFillStyle(g)
	default:
		c.dc.ClearPath()
		return
	}
	c.dc.Fill()
}

func addStops(g gg.Gradient, stops []render.Stop) {
	for _, s := range stops {
		g.AddColorStop(s.Offset, stopColor(s))
	}
}

// stopColor merges the stop alpha into a non-premultiplied color.
func stopColor(s render.Stop) color.NRGBA {
	a := render.Clamp01(s.Alpha)
	return color.NRGBA{R: s.Color.R, G: s.Color.G, B: s.Color.B, A: uint8(math.Round(a * 255))}
}
