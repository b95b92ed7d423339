package mediacomp

import "fmt"

// PixelInfo is a detached, read-only snapshot of one pixel: a coordinate
// plus the color it held at the moment of capture. It carries no reference
// to the picture it came from, so user-supplied transform and predicate
// functions can never mutate the buffer being iterated through their
// argument.
type PixelInfo struct {
	X, Y int
	Color
}

func (pi PixelInfo) String() string {
	return fmt.Sprintf("PixelInfo(x=%d, y=%d, r=%d, g=%d, b=%d)", pi.X, pi.Y, pi.R, pi.G, pi.B)
}

// Pixel is a live cursor: a coordinate bound to one Picture's backing
// store. Reads return the current value at the coordinate and writes go
// through immediately. A Pixel borrows the Picture and must not outlive it.
//
// The coordinate is clamped into range at construction; see
// (*Picture).PixelAt.
type Pixel struct {
	x, y int
	pic  *Picture
}

func (p Pixel) X() int { return p.x }
func (p Pixel) Y() int { return p.y }

// Color returns the live value at the bound coordinate.
func (p Pixel) Color() Color {
	return p.pic.img.RGBAt(p.x, p.y)
}

// SetColor writes c through to the backing store immediately.
func (p Pixel) SetColor(c Color) {
	p.pic.img.SetRGB(p.x, p.y, c)
}

func (p Pixel) Red() int { return int(p.Color().R) }
func (p Pixel) Green() int { return int(p.Color().G) }
func (p Pixel) Blue() int { return int(p.Color().B) }

// SetRed clamps v to [0,255] and writes it back as part of the full
// triple. Channel writes are read-modify-write, not atomic.
func (p Pixel) SetRed(v int) {
	c := p.Color()
	c.R = clamp255(v)
	p.SetColor(c)
}

func (p Pixel) SetGreen(v int) {
	c := p.Color()
	c.G = clamp255(v)
	p.SetColor(c)
}

func (p Pixel) SetBlue(v int) {
	c := p.Color()
	c.B = clamp255(v)
	p.SetColor(c)
}

// Snapshot captures the cursor's current state as a detached PixelInfo.
func (p Pixel) Snapshot() PixelInfo {
	return PixelInfo{X: p.x, Y: p.y, Color: p.Color()}
}

func (p Pixel) String() string {
	c := p.Color()
	return fmt.Sprintf("Pixel(x=%d, y=%d, r=%d, g=%d, b=%d)", p.x, p.y, c.R, c.G, c.B)
}
