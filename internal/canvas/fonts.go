package canvas

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts caches one face per point size of the embedded Go Regular font.
type Fonts struct {
	ttf   *truetype.Font
	faces map[float64]font.Face
}

func NewFonts() (*Fonts, error) {
	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &Fonts{ttf: ttf, faces: map[float64]font.Face{}}, nil
}

func (f *Fonts) Face(size float64) font.Face {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := truetype.NewFace(f.ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	f.faces[size] = face
	return face
}
