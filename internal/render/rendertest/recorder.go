// Package rendertest provides a render.Surface that records draw calls.
package rendertest

import (
	"image/color"

	"github.com/iburimskiy/breathing-bubble/internal/render"
)

type Kind int

const (
	FillRect Kind = iota
	FillCircle
	StrokeRect
	StrokeCircle
	Text
)

// Op is one recorded call. Unused fields are zero.
type Op struct {
	Kind       Kind
	X, Y, W, H float64
	R          float64
	LineWidth  float64
	Size       float64
	Paint      render.Paint
	Color      color.Color
	Text       string
}

type Recorder struct {
	Width, Height int
	Ops           []Op
	sizeCalls     int
}

func New(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (int, int) {
	r.sizeCalls++
	return r.Width, r.Height
}

// SizeCalls counts how often Size was called since the last Reset.
func (r *Recorder) SizeCalls() int { return r.sizeCalls }

func (r *Recorder) Reset() {
	r.Ops = nil
	r.sizeCalls = 0
}

func (r *Recorder) FillRect(x, y, w, h float64, p render.Paint) {
	r.Ops = append(r.Ops, Op{Kind: FillRect, X: x, Y: y, W: w, H: h, Paint: p})
}

func (r *Recorder) FillCircle(x, y, radius float64, p render.Paint) {
	r.Ops = append(r.Ops, Op{Kind: FillCircle, X: x, Y: y, R: radius, Paint: p})
}

func (r *Recorder) StrokeRect(x, y, w, h, lineWidth float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: StrokeRect, X: x, Y: y, W: w, H: h, LineWidth: lineWidth, Color: c})
}

func (r *Recorder) StrokeCircle(x, y, radius, lineWidth float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: StrokeCircle, X: x, Y: y, R: radius, LineWidth: lineWidth, Color: c})
}

func (r *Recorder) DrawText(s string, x, y, size float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: Text, X: x, Y: y, Size: size, Color: c, Text: s})
}

// Texts returns every string drawn, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == Text {
			out = append(out, op.Text)
		}
	}
	return out
}

// Count returns how many ops of kind were recorded.
func (r *Recorder) Count(kind Kind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
