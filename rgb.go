package mediacomp

import (
	"image"
	"image/color"
)

// RGBImage is a packed 3-byte-per-pixel backing store. It implements
// draw.Image so the stdlib draw machinery, font rendering, and the PNG/JPEG
// encoders can all operate on it directly without an intermediate copy.
//
// Bounds always start at (0,0); there is no sub-image sharing. A Picture
// owns its RGBImage exclusively.
type RGBImage struct {
	Pix []uint8
	image.Rectangle
}

func NewRGBImage(r image.Rectangle) *RGBImage {
	return &RGBImage{
		Rectangle: r,
		Pix:       make([]uint8, r.Dx()*r.Dy()*3),
	}
}

func (p *RGBImage) At(x, y int) color.Color {
	return p.RGBAt(x, y)
}

// RGBAt is the typed counterpart of At. Callers are expected to pass
// in-range coordinates; the tolerant clamp/discard policies live on
// Picture, not here.
func (p *RGBImage) RGBAt(x, y int) Color {
	i := y*p.Dx()*3 + x*3
	return Color{p.Pix[i], p.Pix[i+1], p.Pix[i+2]}
}

func (p *RGBImage) Set(x, y int, c color.Color) {
	p.SetRGB(x, y, rgbColorModel(c).(Color))
}

func (p *RGBImage) SetRGB(x, y int, c Color) {
	i := y*p.Dx()*3 + x*3
	p.Pix[i] = c.R
	p.Pix[i+1] = c.G
	p.Pix[i+2] = c.B
}

func (p *RGBImage) Bounds() image.Rectangle {
	return p.Rectangle
}

func (p *RGBImage) ColorModel() color.Model {
	return color.ModelFunc(rgbColorModel)
}

// Clone returns a deep copy sharing no pixel storage with p.
func (p *RGBImage) Clone() *RGBImage {
	pix := make([]uint8, len(p.Pix))
	copy(pix, p.Pix)
	return &RGBImage{
		Rectangle: p.Rectangle,
		Pix:       pix,
	}
}

// Fill overwrites every pixel with c.
func (p *RGBImage) Fill(c Color) {
	for i := 0; i < len(p.Pix); i += 3 {
		p.Pix[i] = c.R
		p.Pix[i+1] = c.G
		p.Pix[i+2] = c.B
	}
}

func rgbColorModel(c color.Color) color.Color {
	if native, ok := c.(Color); ok {
		return native
	}
	r, g, b, _ := c.RGBA()
	return Color{
		uint8(r / 0x101),
		uint8(g / 0x101),
		uint8(b / 0x101),
	}
}
