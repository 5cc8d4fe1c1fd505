package render

import "image/color"

// Vertical background, top to bottom.
var BackgroundStops = []Stop{
	{Offset: 0, Color: color.RGBA{R: 0x0f, G: 0x0c, B: 0x29, A: 0xff}, Alpha: 1},
	{Offset: 0.5, Color: color.RGBA{R: 0x30, G: 0x2b, B: 0x63, A: 0xff}, Alpha: 1},
	{Offset: 1, Color: color.RGBA{R: 0x24, G: 0x24, B: 0x3e, A: 0xff}, Alpha: 1},
}

// Outer halo. Alphas are multiplied by the glow intensity.
var GlowStops = []Stop{
	{Offset: 0, Color: color.RGBA{R: 139, G: 192, B: 255, A: 0xff}, Alpha: 0.4},
	{Offset: 0.5, Color: color.RGBA{R: 170, G: 150, B: 218, A: 0xff}, Alpha: 0.2},
	{Offset: 1, Color: color.RGBA{R: 170, G: 150, B: 218, A: 0xff}, Alpha: 0},
}

// Main body, lit from the upper left. Alphas are multiplied by the glow intensity.
var BodyStops = []Stop{
	{Offset: 0, Color: color.RGBA{R: 200, G: 230, B: 255, A: 0xff}, Alpha: 0.9},
	{Offset: 0.5, Color: color.RGBA{R: 120, G: 180, B: 255, A: 0xff}, Alpha: 0.6},
	{Offset: 1, Color: color.RGBA{R: 80, G: 120, B: 220, A: 0xff}, Alpha: 0.3},
}

// Specular highlight, independent of phase.
var HighlightStops = []Stop{
	{Offset: 0, Color: color.RGBA{R: 255, G: 255, B: 255, A: 0xff}, Alpha: 0.8},
	{Offset: 1, Color: color.RGBA{R: 255, G: 255, B: 255, A: 0xff}, Alpha: 0},
}

// PressRing outlines the bubble while the user is pressing.
var PressRing = color.RGBA{R: 0xfc, G: 0xba, B: 0xd3, A: 0xc0}
