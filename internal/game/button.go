package game

import (
	"image"
	"image/color"

	"github.com/iburimskiy/breathing-bubble/internal/config"
	"github.com/iburimskiy/breathing-bubble/internal/render"
)

// button is the single Start/Reset control.
type button struct {
	hovered bool
	pressed bool
}

// buttonRect places the button centred near the bottom of the surface.
func buttonRect(width, height int) image.Rectangle {
	x := (width - config.ButtonWidth) / 2
	y := height - config.ButtonYOffset
	return image.Rect(x, y, x+config.ButtonWidth, y+config.ButtonHeight)
}

func buttonLabel(active bool) string {
	if active {
		return "Reset"
	}
	return "Start"
}

func (b button) draw(s render.Surface, r image.Rectangle, label string) {
	var bg color.Color
	if b.pressed {
		bg = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if b.hovered {
		bg = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bg = color.RGBA{R: 100, G: 120, B: 160, A: 200} // Normal
	}

	x, y := float64(r.Min.X), float64(r.Min.Y)
	w, h := float64(r.Dx()), float64(r.Dy())
	s.FillRect(x, y, w, h, render.Solid{Color: bg})
	s.StrokeRect(x, y, w, h, 2, color.RGBA{R: 150, G: 170, B: 200, A: 255})
	s.DrawText(label, x+w/2, y+h/2, config.BodyFontSize, color.White)
}
