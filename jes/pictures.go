package jes

import "github.com/mediacomp/mediacomp"

// MakePicture reads the image file at path and returns it as a picture.
func MakePicture(path string) (*mediacomp.Picture, error) {
	return mediacomp.Open(path)
}

// MakeEmptyPicture returns a blank canvas, white unless a fill color is
// given.
func MakeEmptyPicture(width, height int, fill ...mediacomp.Color) *mediacomp.Picture {
	c := mediacomp.White
	if len(fill) > 0 {
		c = fill[0]
	}
	return mediacomp.NewPicture(width, height, c)
}

// DuplicatePicture returns an independent copy.
func DuplicatePicture(pic *mediacomp.Picture) *mediacomp.Picture {
	return pic.Copy()
}

// WritePictureTo saves the picture to path, format chosen by extension.
func WritePictureTo(pic *mediacomp.Picture, path string) error {
	return pic.Save(path)
}

func GetWidth(pic *mediacomp.Picture) int { return pic.Width() }
func GetHeight(pic *mediacomp.Picture) int { return pic.Height() }

// GetPixel returns a live cursor for (x, y), clamped into range.
func GetPixel(pic *mediacomp.Picture, x, y int) mediacomp.Pixel {
	return pic.PixelAt(x, y)
}

// GetPixels returns cursors for every pixel in row-major order.
func GetPixels(pic *mediacomp.Picture) []mediacomp.Pixel {
	return pic.Pixels()
}

// GetAllPixels is the classic alias for GetPixels.
func GetAllPixels(pic *mediacomp.Picture) []mediacomp.Pixel {
	return pic.Pixels()
}

// SetAllPixelsToAColor floods the picture with one color, in place.
func SetAllPixelsToAColor(pic *mediacomp.Picture, c mediacomp.Color) {
	pic.SetAllPixels(c)
}

// CopyInto pastes small into big with its top-left corner at (x, y).
func CopyInto(small, big *mediacomp.Picture, x, y int) {
	small.CopyInto(big, x, y)
}

func GetRed(px mediacomp.Pixel) int { return px.Red() }
func GetGreen(px mediacomp.Pixel) int { return px.Green() }
func GetBlue(px mediacomp.Pixel) int { return px.Blue() }
func GetX(px mediacomp.Pixel) int { return px.X() }
func GetY(px mediacomp.Pixel) int { return px.Y() }

func GetColor(px mediacomp.Pixel) mediacomp.Color { return px.Color() }

func SetRed(px mediacomp.Pixel, v int) { px.SetRed(v) }
func SetGreen(px mediacomp.Pixel, v int) { px.SetGreen(v) }
func SetBlue(px mediacomp.Pixel, v int) { px.SetBlue(v) }

func SetColor(px mediacomp.Pixel, c mediacomp.Color) { px.SetColor(c) }

// optColor picks the caller's color or the classic black default.
func optColor(c []mediacomp.Color) mediacomp.Color {
	if len(c) > 0 {
		return c[0]
	}
	return mediacomp.Black
}

// AddLine draws a line between two points, black unless a color is given.
func AddLine(pic *mediacomp.Picture, x1, y1, x2, y2 int, c ...mediacomp.Color) {
	pic.AddLine(x1, y1, x2, y2, optColor(c))
}

// AddRect outlines a width x height rectangle with its top-left corner at
// (x, y).
func AddRect(pic *mediacomp.Picture, x, y, width, height int, c ...mediacomp.Color) {
	pic.AddRect(x, y, width, height, optColor(c))
}

// AddRectFilled fills the same rectangle solid.
func AddRectFilled(pic *mediacomp.Picture, x, y, width, height int, c ...mediacomp.Color) {
	pic.AddRectFilled(x, y, width, height, optColor(c))
}

// AddOval outlines the ellipse inscribed in the bounding box.
func AddOval(pic *mediacomp.Picture, x, y, width, height int, c ...mediacomp.Color) {
	pic.AddOval(x, y, width, height, optColor(c))
}

// AddOvalFilled fills the inscribed ellipse solid.
func AddOvalFilled(pic *mediacomp.Picture, x, y, width, height int, c ...mediacomp.Color) {
	pic.AddOvalFilled(x, y, width, height, optColor(c))
}

// AddArc draws an elliptical arc from start through start+angle degrees.
func AddArc(pic *mediacomp.Picture, x, y, width, height int, start, angle float64, c ...mediacomp.Color) {
	pic.AddArc(x, y, width, height, start, angle, optColor(c))
}

// AddArcFilled fills the pie slice swept by the same arc.
func AddArcFilled(pic *mediacomp.Picture, x, y, width, height int, start, angle float64, c ...mediacomp.Color) {
	pic.AddArcFilled(x, y, width, height, start, angle, optColor(c))
}

// AddText draws text with the built-in font face.
func AddText(pic *mediacomp.Picture, x, y int, text string, c ...mediacomp.Color) {
	pic.AddText(x, y, text, optColor(c))
}

// MakeStyle builds a text style from a font name, emphasis, and point
// size.
func MakeStyle(fontName, emphasis string, size float64) (*mediacomp.TextStyle, error) {
	return mediacomp.NewTextStyle(fontName, emphasis, size)
}

// AddTextWithStyle draws text using a style from MakeStyle.
func AddTextWithStyle(pic *mediacomp.Picture, x, y int, text string, style *mediacomp.TextStyle, c ...mediacomp.Color) {
	pic.AddTextWithStyle(x, y, text, style, optColor(c))
}

// GetMediaPath resolves a relative media file name.
func GetMediaPath(name string) string { return mediacomp.MediaPath(name) }

// SetMediaPath switches the media directory, reporting success.
func SetMediaPath(dir string) bool { return mediacomp.SetMediaPath(dir) }
