package mediacomp

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// Color is an immutable RGB triple with 8 bits per channel. It implements
// color.Color so it can be handed directly to the stdlib image machinery.
//
// Construct one with NewColor, which clamps each channel, rather than
// building the struct by hand.
type Color struct {
	R, G, B uint8
}

// NewColor returns a Color with each channel clamped to [0,255].
// Total over all int inputs; never fails.
func NewColor(r, g, b int) Color {
	return Color{clamp255(r), clamp255(g), clamp255(b)}
}

// ColorFromFloats maps channel values on a 0.0-1.0 scale onto 0-255.
// Rounding is "+0.5 then truncate" so that Floats round-trips.
func ColorFromFloats(r, g, b float64) Color {
	return NewColor(int(r*255+0.5), int(g*255+0.5), int(b*255+0.5))
}

// Floats returns the channels on a 0.0-1.0 scale.
func (c Color) Floats() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = 255 * 0x101
	return
}

func (c Color) String() string {
	return fmt.Sprintf("Color(%d,%d,%d)", c.R, c.G, c.B)
}

// At implements image.Image by returning the color itself, which lets a
// Color stand in for image.Uniform as a solid drawing source.
func (c Color) At(int, int) color.Color {
	return c
}

// Bounds implements image.Image. The rectangle is effectively unbounded
// so the color covers any destination it is drawn onto.
func (c Color) Bounds() image.Rectangle {
	return image.Rectangle{image.Point{-1e9, -1e9}, image.Point{1e9, 1e9}}
}

// ColorModel implements image.Image and color.Model.
func (c Color) ColorModel() color.Model {
	return c
}

// Convert implements color.Model. The value is already in the native
// format, so the input passes through untouched.
func (c Color) Convert(cin color.Color) color.Color {
	return cin
}

// Distance returns the Euclidean distance between a and b interpreted as
// points in RGB 3-space. Symmetric; zero when a == b.
func Distance(a, b Color) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Darker returns the color scaled by 0.7. Note: like classic JES, the
// green channel's scaled value lands in both the green and blue outputs.
// Use Dimmed for the evenly-scaled version.
func (c Color) Darker() Color {
	return NewColor(int(float64(c.R)*0.7), int(float64(c.G)*0.7), int(float64(c.G)*0.7))
}

// Lighter returns the color scaled by 1/0.7, with the same green-into-blue
// behavior as Darker. Use Brightened for the evenly-scaled version.
func (c Color) Lighter() Color {
	return NewColor(int(float64(c.R)/0.7), int(float64(c.G)/0.7), int(float64(c.G)/0.7))
}

// Dimmed scales every channel by 0.7 independently.
func (c Color) Dimmed() Color {
	return NewColor(int(float64(c.R)*0.7), int(float64(c.G)*0.7), int(float64(c.B)*0.7))
}

// Brightened scales every channel by 1/0.7 independently.
func (c Color) Brightened() Color {
	return NewColor(int(float64(c.R)/0.7), int(float64(c.G)/0.7), int(float64(c.B)/0.7))
}

// HSV returns the hue, saturation, value representation of c, each on a
// 0.0-1.0 scale, following the colorsys conventions.
func (c Color) HSV() (h, s, v float64) {
	r, g, b := c.Floats()
	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))
	v = maxc
	if minc == maxc {
		return 0, 0, v
	}
	s = (maxc - minc) / maxc
	h = hue(r, g, b, maxc, minc)
	return h, s, v
}

// HLS returns the hue, lightness, saturation representation of c, each on
// a 0.0-1.0 scale, following the colorsys conventions.
func (c Color) HLS() (h, l, s float64) {
	r, g, b := c.Floats()
	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))
	l = (minc + maxc) / 2
	if minc == maxc {
		return 0, l, 0
	}
	if l <= 0.5 {
		s = (maxc - minc) / (maxc + minc)
	} else {
		s = (maxc - minc) / (2 - maxc - minc)
	}
	h = hue(r, g, b, maxc, minc)
	return h, l, s
}

// hue is the sector computation shared by HSV and HLS.
func hue(r, g, b, maxc, minc float64) float64 {
	d := maxc - minc
	rc := (maxc - r) / d
	gc := (maxc - g) / d
	bc := (maxc - b) / d
	var h float64
	switch maxc {
	case r:
		h = bc - gc
	case g:
		h = 2 + rc - bc
	default:
		h = 4 + gc - rc
	}
	h = h / 6
	h -= math.Floor(h)
	return h
}

// The named colors from the classic teaching palette, computed once at
// package init. Cyan deliberately matches the JES table, which defines it
// with the same triple as magenta.
var (
	White     = NewColor(255, 255, 255)
	Black     = NewColor(0, 0, 0)
	Blue      = NewColor(0, 0, 255)
	Red       = NewColor(255, 0, 0)
	Green     = NewColor(0, 255, 0)
	Gray      = NewColor(128, 128, 128)
	DarkGray  = NewColor(64, 64, 64)
	LightGray = NewColor(192, 192, 192)
	Yellow    = NewColor(255, 255, 0)
	Orange    = NewColor(255, 200, 0)
	Pink      = NewColor(255, 175, 175)
	Magenta   = NewColor(255, 0, 255)
	Cyan      = NewColor(255, 0, 255)
)
