package mediacomp

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Picture is a pixel-addressable image buffer: a fixed-size grid of RGB
// pixels with exclusive ownership of its backing store. Width and height
// never change for the lifetime of a Picture; Resize returns a new one.
//
// Indexing is deliberately tolerant: out-of-range reads clamp to the
// nearest edge pixel and out-of-range writes are silently discarded. Both
// policies come from the original teaching tool and are part of the
// contract, not accidents.
type Picture struct {
	img *RGBImage
}

// NewPicture returns a width x height canvas filled with the given color.
// Dimensions below 1 are clamped to 1 rather than rejected.
func NewPicture(width, height int, fill Color) *Picture {
	width = max(width, 1)
	height = max(height, 1)
	img := NewRGBImage(image.Rect(0, 0, width, height))
	img.Fill(fill)
	return &Picture{img: img}
}

// Open decodes the image file at path, resolving relative names against
// the media path. Whatever mode the file is in, the decoded result is
// normalized to the 3-channel 8-bit backing store before use.
func Open(path string) (*Picture, error) {
	src, err := imaging.Open(MediaPath(path))
	if err != nil {
		return nil, fmt.Errorf("opening picture: %w", err)
	}
	return FromImage(src), nil
}

// FromImage copies src into a fresh Picture, converting to the RGB
// backing store. The returned Picture shares no storage with src.
func FromImage(src image.Image) *Picture {
	b := src.Bounds()
	img := NewRGBImage(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), src, b.Min, draw.Src)
	return &Picture{img: img}
}

// Save encodes the picture to path (format chosen by extension), resolving
// relative names against the media path.
func (p *Picture) Save(path string) error {
	if err := imaging.Save(p.img, MediaPath(path)); err != nil {
		return fmt.Errorf("saving picture: %w", err)
	}
	return nil
}

func (p *Picture) Width() int { return p.img.Dx() }
func (p *Picture) Height() int { return p.img.Dy() }

// Image exposes the backing store as a draw.Image for interoperation with
// the stdlib. Mutations through it are visible to the Picture.
func (p *Picture) Image() *RGBImage { return p.img }

// Copy returns an independent duplicate. Mutating the copy never affects
// the original and vice versa.
func (p *Picture) Copy() *Picture {
	return &Picture{img: p.img.Clone()}
}

// At reads the color at (x, y). Out-of-range coordinates are clamped to
// the nearest valid edge coordinate; At never fails.
func (p *Picture) At(x, y int) Color {
	x = bound(x, 0, p.Width()-1)
	y = bound(y, 0, p.Height()-1)
	return p.img.RGBAt(x, y)
}

// SetAt writes c at (x, y). Writes outside the extent are silently
// discarded, the counterpart of At's clamping.
func (p *Picture) SetAt(x, y int, c Color) {
	if x < 0 || x >= p.Width() || y < 0 || y >= p.Height() {
		return
	}
	p.img.SetRGB(x, y, c)
}

// PixelAt returns a live cursor for (x, y), clamped into range the same
// way At clamps reads.
func (p *Picture) PixelAt(x, y int) Pixel {
	return Pixel{
		x:   bound(x, 0, p.Width()-1),
		y:   bound(y, 0, p.Height()-1),
		pic: p,
	}
}

// Pixels returns cursors for every pixel in row-major order: all of row
// y=0 left to right, then y=1, and so on. The slice is built fresh on
// each call. The order is contractual; the transformation operations
// depend on it for determinism.
func (p *Picture) Pixels() []Pixel {
	px := make([]Pixel, 0, p.Width()*p.Height())
	for y := 0; y < p.Height(); y++ {
		for x := 0; x < p.Width(); x++ {
			px = append(px, Pixel{x: x, y: y, pic: p})
		}
	}
	return px
}

// Resize returns a new width x height Picture resampled with
// nearest-neighbor interpolation. The receiver is unchanged.
func (p *Picture) Resize(width, height int) *Picture {
	width = max(width, 1)
	height = max(height, 1)
	return FromImage(imaging.Resize(p.img, width, height, imaging.NearestNeighbor))
}

// SetAllPixels overwrites every pixel with c, in place.
func (p *Picture) SetAllPixels(c Color) {
	p.img.Fill(c)
}

// CopyInto pastes p into dst with p's top-left corner at (x, y) in dst.
// Pixels falling outside dst are discarded per the tolerant write policy.
func (p *Picture) CopyInto(dst *Picture, x, y int) {
	for j := 0; j < p.Height(); j++ {
		for i := 0; i < p.Width(); i++ {
			dst.SetAt(x+i, y+j, p.img.RGBAt(i, j))
		}
	}
}

func (p *Picture) String() string {
	return fmt.Sprintf("Picture, height=%d, width=%d", p.Height(), p.Width())
}
