// Package sprite implements render.Surface for a GPU target. Gradient fills
// are rasterized once with gg and kept as textures; solid shapes and text go
// straight to the target.
package sprite

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/iburimskiy/breathing-bubble/internal/canvas"
	"github.com/iburimskiy/breathing-bubble/internal/config"
	"github.com/iburimskiy/breathing-bubble/internal/render"
)

// Drawer is the target the surface paints on. T is its texture type.
type Drawer[T any] interface {
	Upload(img *image.RGBA) T
	Release(tex T)
	// DrawTexture draws tex with its top-left corner at (x, y), scaled
	// uniformly and with every channel multiplied by alpha.
	DrawTexture(tex T, x, y, scale, alpha float64)
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(x, y, r float64, c color.Color)
	StrokeRect(x, y, w, h, lineWidth float64, c color.Color)
	StrokeCircle(x, y, r, lineWidth float64, c color.Color)
	DrawText(s string, x, y, size float64, c color.Color)
}

type Surface[T any] struct {
	d      Drawer[T]
	w, h   int
	cache  map[string]T
	misses int
}

func NewSurface[T any](d Drawer[T]) *Surface[T] {
	return &Surface[T]{d: d, cache: map[string]T{}}
}

// Resize sets the surface size reported to the renderer for this frame.
func (s *Surface[T]) Resize(width, height int) {
	s.w, s.h = width, height
}

func (s *Surface[T]) Size() (int, int) { return s.w, s.h }

// Misses counts gradient rasterizations since the surface was created.
func (s *Surface[T]) Misses() int { return s.misses }

// Len is the number of cached textures.
func (s *Surface[T]) Len() int { return len(s.cache) }

// Release frees every cached texture. The surface stays usable.
func (s *Surface[T]) Release() {
	for k, tex := range s.cache {
		s.d.Release(tex)
		delete(s.cache, k)
	}
}

func (s *Surface[T]) FillRect(x, y, w, h float64, p render.Paint) {
	if w <= 0 || h <= 0 {
		return
	}
	switch p := p.(type) {
	case render.Solid:
		s.d.FillRect(x, y, w, h, p.Color)
	case render.LinearGradient, render.RadialGradient:
		iw, ih := int(math.Ceil(w)), int(math.Ceil(h))
		local := translate(p, -x, -y)
		key := fmt.Sprintf("rect:%dx%d:%s", iw, ih, paintKey(local))
		tex := s.texture(key, iw, ih, func(c *canvas.Canvas) {
			c.FillRect(0, 0, w, h, local)
		})
		s.d.DrawTexture(tex, x, y, 1, 1)
	}
}

// FillCircle draws gradient circles from a unit sprite. Geometry is taken
// relative to the circle and the strongest stop alpha becomes the draw alpha,
// so a circle that only changes size or intensity reuses one texture.
func (s *Surface[T]) FillCircle(x, y, r float64, p render.Paint) {
	if r <= 0 {
		return
	}
	switch p := p.(type) {
	case render.Solid:
		s.d.FillCircle(x, y, r, p.Color)
	case render.LinearGradient, render.RadialGradient:
		unit, alpha := normalize(p, x, y, r)
		if alpha <= 0 {
			return
		}
		const sr = config.SpriteRadius
		key := "circle:" + paintKey(unit)
		tex := s.texture(key, 2*sr, 2*sr, func(c *canvas.Canvas) {
			c.FillCircle(sr, sr, sr, translate(scale(unit, sr), sr, sr))
		})
		s.d.DrawTexture(tex, x-r, y-r, r/sr, alpha)
	}
}

func (s *Surface[T]) StrokeRect(x, y, w, h, lineWidth float64, c color.Color) {
	s.d.StrokeRect(x, y, w, h, lineWidth, c)
}

func (s *Surface[T]) StrokeCircle(x, y, r, lineWidth float64, c color.Color) {
	s.d.StrokeCircle(x, y, r, lineWidth, c)
}

func (s *Surface[T]) DrawText(str string, x, y, size float64, c color.Color) {
	s.d.DrawText(str, x, y, size, c)
}

func (s *Surface[T]) texture(key string, w, h int, paint func(*canvas.Canvas)) T {
	if tex, ok := s.cache[key]; ok {
		return tex
	}
	// Sizes change on resize, so old entries are dropped wholesale.
	if len(s.cache) >= config.SpriteCacheSize {
		s.Release()
	}
	c := canvas.New(w, h, nil)
	paint(c)
	tex := s.d.Upload(c.RGBA())
	s.cache[key] = tex
	s.misses++
	return tex
}

// normalize expresses p relative to the circle (cx, cy, r) as a unit circle at
// the origin, with stop alphas divided by the largest one. Values are rounded
// so equivalent circles share a key.
func normalize(p render.Paint, cx, cy, r float64) (render.Paint, float64) {
	p = scale(translate(p, -cx, -cy), 1/r)

	var stops []render.Stop
	switch g := p.(type) {
	case render.LinearGradient:
		stops = g.Stops
	case render.RadialGradient:
		stops = g.Stops
	}
	alpha := 0.0
	for _, st := range stops {
		alpha = math.Max(alpha, st.Alpha)
	}
	if alpha <= 0 {
		return p, 0
	}

	unit := make([]render.Stop, len(stops))
	for i, st := range stops {
		st.Offset = round3(st.Offset)
		st.Alpha = round3(st.Alpha / alpha)
		unit[i] = st
	}
	switch g := p.(type) {
	case render.LinearGradient:
		g.X0, g.Y0, g.X1, g.Y1 = round3(g.X0), round3(g.Y0), round3(g.X1), round3(g.Y1)
		g.Stops = unit
		return g, alpha
	case render.RadialGradient:
		g.X0, g.Y0, g.R0 = round3(g.X0), round3(g.Y0), round3(g.R0)
		g.X1, g.Y1, g.R1 = round3(g.X1), round3(g.Y1), round3(g.R1)
		g.Stops = unit
		return g, alpha
	}
	return p, 0
}

func translate(p render.Paint, dx, dy float64) render.Paint {
	switch g := p.(type) {
	case render.LinearGradient:
		g.X0, g.Y0, g.X1, g.Y1 = g.X0+dx, g.Y0+dy, g.X1+dx, g.Y1+dy
		return g
	case render.RadialGradient:
		g.X0, g.Y0, g.X1, g.Y1 = g.X0+dx, g.Y0+dy, g.X1+dx, g.Y1+dy
		return g
	}
	return p
}

func scale(p render.Paint, k float64) render.Paint {
	switch g := p.(type) {
	case render.LinearGradient:
		g.X0, g.Y0, g.X1, g.Y1 = g.X0*k, g.Y0*k, g.X1*k, g.Y1*k
		return g
	case render.RadialGradient:
		g.X0, g.Y0, g.R0 = g.X0*k, g.Y0*k, g.R0*k
		g.X1, g.Y1, g.R1 = g.X1*k, g.Y1*k, g.R1*k
		return g
	}
	return p
}

func paintKey(p render.Paint) string {
	var b strings.Builder
	var stops []render.Stop
	switch g := p.(type) {
	case render.LinearGradient:
		fmt.Fprintf(&b, "L%.3f,%.3f,%.3f,%.3f", g.X0, g.Y0, g.X1, g.Y1)
		stops = g.Stops
	case render.RadialGradient:
		fmt.Fprintf(&b, "R%.3f,%.3f,%.3f,%.3f,%.3f,%.3f", g.X0, g.Y0, g.R0, g.X1, g.Y1, g.R1)
		stops = g.Stops
	}
	for _, st := range stops {
		fmt.Fprintf(&b, "|%.3f:%02x%02x%02x:%.3f", st.Offset, st.Color.R, st.Color.G, st.Color.B, st.Alpha)
	}
	return b.String()
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
