package render

import "image/color"

// Stop is one color stop of a gradient. Alpha is kept apart from Color so
// tables can be rescaled by glow intensity.
type Stop struct {
	Offset float64
	Color  color.RGBA
	Alpha  float64
}

// Paint is a fill style: Solid, LinearGradient or RadialGradient.
type Paint interface {
	paint()
}

type Solid struct {
	Color color.Color
}

type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []Stop
}

// RadialGradient interpolates between the circle (X0, Y0, R0) and the circle
// (X1, Y1, R1).
type RadialGradient struct {
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	Stops      []Stop
}

func (Solid) paint()          {}
func (LinearGradient) paint() {}
func (RadialGradient) paint() {}

// ScaleAlpha returns a copy of stops with every alpha multiplied by k.
func ScaleAlpha(stops []Stop, k float64) []Stop {
	out := make([]Stop, len(stops))
	for i, s := range stops {
		s.Alpha *= k
		out[i] = s
	}
	return out
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
