// Package render draws the breathing scene: background, particles and the
// layered bubble. It holds no timing logic.
package render

import (
	"image/color"
	"math"

	"github.com/iburimskiy/breathing-bubble/internal/breath"
	"github.com/iburimskiy/breathing-bubble/internal/config"
	"github.com/iburimskiy/breathing-bubble/internal/particle"
)

// Surface is a 2D drawing context bound to a pixel surface.
type Surface interface {
	Size() (width, height int)
	FillRect(x, y, w, h float64, p Paint)
	FillCircle(x, y, r float64, p Paint)
	StrokeRect(x, y, w, h, lineWidth float64, c color.Color)
	StrokeCircle(x, y, r, lineWidth float64, c color.Color)
	// DrawText draws s centred on (x, y).
	DrawText(s string, x, y, size float64, c color.Color)
}

// Bubble is the geometry of the bubble for one frame.
type Bubble struct {
	CX, CY     float64
	Base       float64 // radius at scale 1
	Radius     float64
	GlowRadius float64
}

func BubbleGeometry(width, height int, scale float64) Bubble {
	base := math.Min(float64(width), float64(height)) / config.RadiusDivisor
	r := base * scale
	return Bubble{
		CX:         float64(width) / 2,
		CY:         float64(height) / 2,
		Base:       base,
		Radius:     r,
		GlowRadius: r * config.GlowRadius,
	}
}

// Frame paints one frame and advances the particles. Surface dimensions are
// read once.
func Frame(s Surface, f breath.Frame, field *particle.Field) {
	if s == nil {
		return
	}
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}

	drawBackground(s, w, h)
	if field != nil {
		field.Step(float64(w), float64(h))
		drawParticles(s, field.Particles())
	}
	drawBubble(s, BubbleGeometry(w, h, f.Scale), f.Glow)
}

func drawBackground(s Surface, w, h int) {
	s.FillRect(0, 0, float64(w), float64(h), LinearGradient{
		X0: 0, Y0: 0, X1: 0, Y1: float64(h),
		Stops: BackgroundStops,
	})
}

func drawParticles(s Surface, ps []particle.Particle) {
	for _, p := range ps {
		c := p.Color
		c.A = uint8(math.Round(Clamp01(p.Opacity) * 255))
		s.FillCircle(p.X, p.Y, p.Radius, Solid{Color: c})
	}
}

func drawBubble(s Surface, b Bubble, glow float64) {
	// Halo
	s.FillCircle(b.CX, b.CY, b.GlowRadius, RadialGradient{
		X0: b.CX, Y0: b.CY, R0: b.Radius * 0.5,
		X1: b.CX, Y1: b.CY, R1: b.GlowRadius,
		Stops: ScaleAlpha(GlowStops, glow),
	})

	// Body, lit from the upper left
	lx := b.CX - b.Radius*config.BodyShift
	ly := b.CY - b.Radius*config.BodyShift
	s.FillCircle(b.CX, b.CY, b.Radius, RadialGradient{
		X0: lx, Y0: ly, R0: 0,
		X1: b.CX, Y1: b.CY, R1: b.Radius,
		Stops: ScaleAlpha(BodyStops, glow),
	})

	// Highlight
	hx := b.CX - b.Radius*config.HighlightShift
	hy := b.CY - b.Radius*config.HighlightShift
	hr := b.Radius * config.HighlightSize
	s.FillCircle(hx, hy, hr, RadialGradient{
		X0: hx, Y0: hy, R0: 0,
		X1: hx, Y1: hy, R1: hr,
		Stops: HighlightStops,
	})
}
