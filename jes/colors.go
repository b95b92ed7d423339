package jes

import "github.com/mediacomp/mediacomp"

// MakeColor builds a color, clamping each channel to 0-255.
func MakeColor(red, green, blue int) mediacomp.Color {
	return mediacomp.NewColor(red, green, blue)
}

// MakeDarker returns the color scaled toward black. Keeps the classic
// green-into-blue scaling; see mediacomp.Color.Darker.
func MakeDarker(c mediacomp.Color) mediacomp.Color {
	return c.Darker()
}

// MakeLighter returns the color scaled toward white.
func MakeLighter(c mediacomp.Color) mediacomp.Color {
	return c.Lighter()
}

// MakeBrighter is the classic alias for MakeLighter.
func MakeBrighter(c mediacomp.Color) mediacomp.Color {
	return c.Lighter()
}

// Distance returns the Euclidean distance between two colors.
func Distance(a, b mediacomp.Color) float64 {
	return mediacomp.Distance(a, b)
}
