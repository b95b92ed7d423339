package mediacomp

// The four caller-supplied function shapes accepted by the transformation
// operations. Each receives detached snapshots, never live cursors, so a
// callback cannot reach back into the buffer being iterated.

// Transform produces a replacement color for one pixel.
type Transform func(PixelInfo) Color

// Predicate decides whether a pixel participates in an operation.
type Predicate func(PixelInfo) bool

// Combine merges a pixel of the receiver with the pixel at the same
// coordinate of another picture.
type Combine func(self, other PixelInfo) Color

// RemapFunc may relocate a pixel as well as recolor it. It is the only
// shape permitted to move content between coordinates.
type RemapFunc func(x, y int, c Color) (int, int, Color)

// Map applies transform to every pixel and returns the result as a new
// Picture, leaving the receiver unmodified.
func (p *Picture) Map(transform Transform) *Picture {
	return p.MapRect(transform, 0, 0, p.Width(), p.Height())
}

// MapRect applies transform to every pixel inside the given rectangle,
// copying pixels outside it unchanged. Bounds are clamped to the
// picture's extent, and inverted bounds (left > right, top > bottom) are
// swapped rather than rejected.
func (p *Picture) MapRect(transform Transform, left, top, right, bottom int) *Picture {
	if left > right {
		left, right = right, left
	}
	if top > bottom {
		top, bottom = bottom, top
	}
	left = max(left, 0)
	top = max(top, 0)
	right = min(right, p.Width())
	bottom = min(bottom, p.Height())

	out := p.Copy()
	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			info := PixelInfo{X: x, Y: y, Color: out.img.RGBAt(x, y)}
			out.img.SetRGB(x, y, transform(info))
		}
	}
	return out
}

// MapIf applies transform only where predicate holds. Both callbacks see
// the same pre-mutation snapshot of the pixel, so writes already made
// during the pass cannot influence a pending read.
func (p *Picture) MapIf(predicate Predicate, transform Transform) *Picture {
	out := p.Copy()
	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			info := PixelInfo{X: x, Y: y, Color: out.img.RGBAt(x, y)}
			if predicate(info) {
				out.img.SetRGB(x, y, transform(info))
			}
		}
	}
	return out
}

// CombineWith merges p with other cell by cell into a new Picture of p's
// size. With resize set, other is first resampled to p's dimensions.
// Without it, a smaller or larger other is simply indexed through the
// clamped read path, repeating its edge pixels as needed.
func (p *Picture) CombineWith(combine Combine, other *Picture, resize bool) *Picture {
	other = p.conform(other, resize)
	out := p.Copy()
	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			info := PixelInfo{X: x, Y: y, Color: out.img.RGBAt(x, y)}
			otherInfo := PixelInfo{X: x, Y: y, Color: other.At(x, y)}
			out.img.SetRGB(x, y, combine(info, otherInfo))
		}
	}
	return out
}

// Difference returns a gray image where each pixel's intensity is the
// color distance between p and other at that coordinate, scaled and
// truncated to an integer.
func (p *Picture) Difference(other *Picture, scale float64) *Picture {
	return p.CombineWith(func(a, b PixelInfo) Color {
		d := int(Distance(a.Color, b.Color) * scale)
		return NewColor(d, d, d)
	}, other, false)
}

// ReplaceIf substitutes other's pixel verbatim wherever predicate holds
// on p's pixel. Same resize semantics as CombineWith.
func (p *Picture) ReplaceIf(predicate Predicate, other *Picture, resize bool) *Picture {
	other = p.conform(other, resize)
	out := p.Copy()
	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			info := PixelInfo{X: x, Y: y, Color: out.img.RGBAt(x, y)}
			if predicate(info) {
				out.img.SetRGB(x, y, other.At(x, y))
			}
		}
	}
	return out
}

// Remap drives remap over every source pixel in row-major order and
// writes each result into a background-filled target buffer. The target
// coordinate wraps modulo width and height rather than clamping, so
// content pushed past an edge re-enters on the opposite side. When two
// sources land on the same target, the later one in source order wins;
// the collision policy is deterministic by construction.
func (p *Picture) Remap(remap RemapFunc, background Color) *Picture {
	w, h := p.Width(), p.Height()
	out := NewPicture(w, h, background)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			nx, ny, nc := remap(x, y, p.img.RGBAt(x, y))
			out.img.SetRGB(wrap(nx, w), wrap(ny, h), nc)
		}
	}
	return out
}

// conform prepares other for coordinate-wise pairing with p.
func (p *Picture) conform(other *Picture, resize bool) *Picture {
	if resize && (other.Width() != p.Width() || other.Height() != p.Height()) {
		return other.Resize(p.Width(), p.Height())
	}
	return other
}

// wrap maps n onto [0, extent) with modulus, keeping negatives on the
// grid the same way wrapping an image's edges does.
func wrap(n, extent int) int {
	n %= extent
	if n < 0 {
		n += extent
	}
	return n
}
