package game

import (
	"fmt"
	"image/color"

	"github.com/iburimskiy/breathing-bubble/internal/breath"
	"github.com/iburimskiy/breathing-bubble/internal/config"
	"github.com/iburimskiy/breathing-bubble/internal/render"
	"github.com/iburimskiy/breathing-bubble/internal/session"
)

const instructions = "Press and hold while breathing in and holding. Release to breathe out."

var (
	textColor   = color.RGBA{R: 0xf0, G: 0xf0, B: 0xff, A: 0xff}
	mutedColor  = color.RGBA{R: 0xb0, G: 0xb0, B: 0xd0, A: 0xd0}
	meterBorder = color.RGBA{R: 100, G: 110, B: 130, A: 200}
)

// DrawHUD paints the read-outs for v with the control at rest. Used for
// offscreen frames.
func DrawHUD(s render.Surface, v session.View, f breath.Frame) {
	drawHUD(s, v, f, button{})
}

// drawHUD paints the read-outs and the control on top of the scene.
func drawHUD(s render.Surface, v session.View, f breath.Frame, b button) {
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}
	cx := float64(w) / 2

	if v.Active && v.Pressing {
		bubble := render.BubbleGeometry(w, h, f.Scale)
		s.StrokeCircle(bubble.CX, bubble.CY, bubble.Radius+6, 3, render.PressRing)
	}

	title := v.Phase.String()
	if v.Active && v.Remaining > 0 {
		title = fmt.Sprintf("%s  %s", title, countdown(v.Remaining))
	}
	s.DrawText(title, cx, 48, config.TitleFontSize, textColor)

	s.DrawText(fmt.Sprintf("Sync %d%%", v.Sync), cx, 84, config.BodyFontSize, textColor)
	drawMeter(s, cx-config.MeterWidth/2, 100, float64(v.Sync)/config.SyncMax)

	if v.Active {
		s.DrawText(formatDuration(v.Elapsed), float64(w)-40, float64(h)-20, config.BodyFontSize, mutedColor)
	}

	r := buttonRect(w, h)
	s.DrawText(instructions, cx, float64(r.Min.Y)-28, config.BodyFontSize, mutedColor)
	b.draw(s, r, buttonLabel(v.Active))
}

// drawMeter draws the sync bar, shading from red at 0 to green at full.
func drawMeter(s render.Surface, x, y, frac float64) {
	frac = render.Clamp01(frac)
	s.FillRect(x, y, config.MeterWidth, config.MeterHeight, render.Solid{Color: color.RGBA{R: 20, G: 25, B: 35, A: 200}})
	if frac > 0 {
		r, g, b := hsvToRgb(frac*120, 0.7, 0.9)
		s.FillRect(x, y, config.MeterWidth*frac, config.MeterHeight, render.Solid{Color: color.RGBA{R: r, G: g, B: b, A: 255}})
	}
	s.StrokeRect(x, y, config.MeterWidth, config.MeterHeight, 1, meterBorder)
}
