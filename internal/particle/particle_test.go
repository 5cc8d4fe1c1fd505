package particle

import (
	"math/rand"
	"testing"
)

func TestResizeSeedsOnce(t *testing.T) {
	f := NewField(rand.New(rand.NewSource(1)))
	if f.Len() != 0 {
		t.Fatalf("expected empty field, got %d", f.Len())
	}
	if !f.Resize(800, 600) {
		t.Fatalf("expected first resize to seed")
	}
	if f.Len() != 30 {
		t.Fatalf("expected 30 particles, got %d", f.Len())
	}
	first := f.Particles()[0]

	if f.Resize(1024, 768) {
		t.Fatalf("second resize must not reseed")
	}
	if f.Len() != 30 || f.Particles()[0] != first {
		t.Fatalf("particles changed on second resize")
	}
}

func TestResizeIgnoresEmptySurface(t *testing.T) {
	f := NewField(rand.New(rand.NewSource(1)))
	if f.Resize(0, 600) || f.Len() != 0 {
		t.Fatalf("zero-width surface must not seed")
	}
	if !f.Resize(10, 10) {
		t.Fatalf("expected seeding once the surface has area")
	}
}

func TestSeedRanges(t *testing.T) {
	f := NewField(rand.New(rand.NewSource(7)))
	f.Resize(320, 240)
	for i, p := range f.Particles() {
		if p.X < 0 || p.X >= 320 || p.Y < 0 || p.Y >= 240 {
			t.Fatalf("particle %d seeded outside surface: %+v", i, p)
		}
		if p.VX < -0.25 || p.VX > 0.25 || p.VY < -0.25 || p.VY > 0.25 {
			t.Fatalf("particle %d velocity out of range: %+v", i, p)
		}
		if p.Radius < 1 || p.Radius > 4 {
			t.Fatalf("particle %d radius out of range: %v", i, p.Radius)
		}
		if p.Opacity < 0.1 || p.Opacity > 0.6 {
			t.Fatalf("particle %d opacity out of range: %v", i, p.Opacity)
		}
		found := false
		for _, c := range Palette {
			if c == p.Color {
				found = true
			}
		}
		if !found {
			t.Fatalf("particle %d color %v not in palette", i, p.Color)
		}
	}
}

func TestStepStaysInBounds(t *testing.T) {
	f := NewField(rand.New(rand.NewSource(42)))
	f.Resize(200, 100)
	for step := 0; step < 5000; step++ {
		f.Step(200, 100)
		for i, p := range f.Particles() {
			if p.X < 0 || p.X >= 200 || p.Y < 0 || p.Y >= 100 {
				t.Fatalf("step %d particle %d escaped: (%v, %v)", step, i, p.X, p.Y)
			}
		}
	}
}

func TestStepAfterShrink(t *testing.T) {
	f := NewField(rand.New(rand.NewSource(3)))
	f.Resize(1000, 1000)
	f.Step(50, 40)
	for i, p := range f.Particles() {
		if p.X < 0 || p.X >= 50 || p.Y < 0 || p.Y >= 40 {
			t.Fatalf("particle %d outside shrunk surface: (%v, %v)", i, p.X, p.Y)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		v, size, want float64
	}{
		{5, 10, 5},
		{10, 10, 0},
		{-1, 10, 9},
		{25, 10, 5},
		{-0.5, 10, 9.5},
	}
	for _, tt := range tests {
		if got := wrap(tt.v, tt.size); got != tt.want {
			t.Fatalf("wrap(%v, %v): expected %v, got %v", tt.v, tt.size, tt.want, got)
		}
	}
}
