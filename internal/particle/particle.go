// Package particle keeps the ambient particles drifting behind the bubble.
package particle

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/iburimskiy/breathing-bubble/internal/config"
)

// Palette is the fixed set of particle colors.
var Palette = [3]color.NRGBA{
	{R: 0xa8, G: 0xd8, B: 0xea, A: 0xff},
	{R: 0xaa, G: 0x96, B: 0xda, A: 0xff},
	{R: 0xfc, G: 0xba, B: 0xd3, A: 0xff},
}

type Particle struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Color   color.NRGBA
	Opacity float64
}

// Field owns the particle set of one surface. The set is created on the first
// non-empty Resize and lives as long as the field.
type Field struct {
	particles []Particle
	rng       *rand.Rand
}

func NewField(rng *rand.Rand) *Field {
	return &Field{rng: rng}
}

// Resize reports a new surface size. It seeds the particles if none exist yet
// and returns whether it did.
func (f *Field) Resize(width, height int) bool {
	if f.particles != nil || width <= 0 || height <= 0 {
		return false
	}
	f.particles = make([]Particle, config.ParticleCount)
	for i := range f.particles {
		f.particles[i] = Particle{
			X:       f.rng.Float64() * float64(width),
			Y:       f.rng.Float64() * float64(height),
			VX:      (f.rng.Float64() - 0.5) * config.ParticleMaxSpeed,
			VY:      (f.rng.Float64() - 0.5) * config.ParticleMaxSpeed,
			Radius:  f.rng.Float64()*config.ParticleRadiusVar + config.ParticleMinRadius,
			Color:   Palette[f.rng.Intn(len(Palette))],
			Opacity: f.rng.Float64()*config.ParticleAlphaVar + config.ParticleMinAlpha,
		}
	}
	return true
}

// Step moves every particle by its velocity and wraps it into [0,w)x[0,h).
func (f *Field) Step(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	for i := range f.particles {
		p := &f.particles[i]
		p.X = wrap(p.X+p.VX, width)
		p.Y = wrap(p.Y+p.VY, height)
	}
}

func (f *Field) Particles() []Particle { return f.particles }

func (f *Field) Len() int { return len(f.particles) }

// wrap folds v into [0, size). Surfaces can shrink between frames, so this
// handles values more than one span outside.
func wrap(v, size float64) float64 {
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	if v >= size {
		v = 0
	}
	return v
}
