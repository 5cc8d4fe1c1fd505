package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/breathing-bubble/internal/canvas"
)

// ebitenDrawer paints straight onto the screen. dst is only set inside Draw.
type ebitenDrawer struct {
	dst   *ebiten.Image
	fonts *canvas.Fonts
	faces map[float64]*text.GoXFace
}

func newEbitenDrawer(fonts *canvas.Fonts) *ebitenDrawer {
	return &ebitenDrawer{fonts: fonts, faces: map[float64]*text.GoXFace{}}
}

func (d *ebitenDrawer) Upload(img *image.RGBA) *ebiten.Image {
	return ebiten.NewImageFromImage(img)
}

func (d *ebitenDrawer) Release(tex *ebiten.Image) {
	tex.Deallocate()
}

func (d *ebitenDrawer) DrawTexture(tex *ebiten.Image, x, y, scale, alpha float64) {
	if d.dst == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	d.dst.DrawImage(tex, op)
}

func (d *ebitenDrawer) FillRect(x, y, w, h float64, c color.Color) {
	if d.dst == nil {
		return
	}
	vector.DrawFilledRect(d.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (d *ebitenDrawer) FillCircle(x, y, r float64, c color.Color) {
	if d.dst == nil {
		return
	}
	vector.DrawFilledCircle(d.dst, float32(x), float32(y), float32(r), c, true)
}

func (d *ebitenDrawer) StrokeRect(x, y, w, h, lineWidth float64, c color.Color) {
	if d.dst == nil {
		return
	}
	vector.StrokeRect(d.dst, float32(x), float32(y), float32(w), float32(h), float32(lineWidth), c, false)
}

func (d *ebitenDrawer) StrokeCircle(x, y, r, lineWidth float64, c color.Color) {
	if d.dst == nil {
		return
	}
	vector.StrokeCircle(d.dst, float32(x), float32(y), float32(r), float32(lineWidth), c, true)
}

func (d *ebitenDrawer) DrawText(s string, x, y, size float64, c color.Color) {
	if d.dst == nil || d.fonts == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(c)
	text.Draw(d.dst, s, d.face(size), op)
}

func (d *ebitenDrawer) face(size float64) *text.GoXFace {
	if f, ok := d.faces[size]; ok {
		return f
	}
	f := text.NewGoXFace(d.fonts.Face(size))
	d.faces[size] = f
	return f
}
