package mediacomp

import "math"

// Drawing primitives in the fire-and-forget style of the classic teaching
// API: each call mutates the picture in place and returns nothing. Shapes
// that hang over the edge are trimmed by the tolerant write policy.
//
// Ovals and arcs are parameterized by their bounding box, with angles in
// degrees measured clockwise from three o'clock.

// AddLine draws a one-pixel line from (x1, y1) to (x2, y2).
func (p *Picture) AddLine(x1, y1, x2, y2 int, c Color) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy
	for {
		p.SetAt(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

// AddRect outlines the rectangle with corners (x, y) and (x+w, y+h).
func (p *Picture) AddRect(x, y, w, h int, c Color) {
	p.AddLine(x, y, x+w, y, c)
	p.AddLine(x, y+h, x+w, y+h, c)
	p.AddLine(x, y, x, y+h, c)
	p.AddLine(x+w, y, x+w, y+h, c)
}

// AddRectFilled fills the same rectangle solid.
func (p *Picture) AddRectFilled(x, y, w, h int, c Color) {
	for j := y; j <= y+h; j++ {
		for i := x; i <= x+w; i++ {
			p.SetAt(i, j, c)
		}
	}
}

// AddOval outlines the ellipse inscribed in the bounding box.
func (p *Picture) AddOval(x, y, w, h int, c Color) {
	p.AddArc(x, y, w, h, 0, 360, c)
}

// AddOvalFilled fills the inscribed ellipse solid.
func (p *Picture) AddOvalFilled(x, y, w, h int, c Color) {
	cx := float64(x) + float64(w)/2
	cy := float64(y) + float64(h)/2
	rx := float64(w) / 2
	ry := float64(h) / 2
	for j := y; j <= y+h; j++ {
		for i := x; i <= x+w; i++ {
			if inEllipse(float64(i), float64(j), cx, cy, rx, ry) {
				p.SetAt(i, j, c)
			}
		}
	}
}

// AddArc draws the elliptical arc from start through start+angle degrees.
func (p *Picture) AddArc(x, y, w, h int, start, angle float64, c Color) {
	cx := float64(x) + float64(w)/2
	cy := float64(y) + float64(h)/2
	rx := float64(w) / 2
	ry := float64(h) / 2
	if angle < 0 {
		start, angle = start+angle, -angle
	}
	// Step fine enough that adjacent samples land on the same or touching
	// pixels even on large ovals.
	steps := int(math.Ceil(angle * max(rx, ry) / 30))
	steps = max(steps, 1)
	for i := 0; i <= steps; i++ {
		t := (start + angle*float64(i)/float64(steps)) * math.Pi / 180
		p.SetAt(int(math.Round(cx+rx*math.Cos(t))), int(math.Round(cy+ry*math.Sin(t))), c)
	}
}

// AddArcFilled fills the pie slice swept by the same arc.
func (p *Picture) AddArcFilled(x, y, w, h int, start, angle float64, c Color) {
	cx := float64(x) + float64(w)/2
	cy := float64(y) + float64(h)/2
	rx := float64(w) / 2
	ry := float64(h) / 2
	if angle < 0 {
		start, angle = start+angle, -angle
	}
	start = math.Mod(math.Mod(start, 360)+360, 360)
	for j := y; j <= y+h; j++ {
		for i := x; i <= x+w; i++ {
			fx, fy := float64(i), float64(j)
			if !inEllipse(fx, fy, cx, cy, rx, ry) {
				continue
			}
			theta := math.Atan2(fy-cy, fx-cx) * 180 / math.Pi
			theta = math.Mod(theta+360, 360)
			swept := math.Mod(theta-start+360, 360)
			if swept <= angle || angle >= 360 {
				p.SetAt(i, j, c)
			}
		}
	}
}

func inEllipse(x, y, cx, cy, rx, ry float64) bool {
	if rx == 0 || ry == 0 {
		return false
	}
	dx := (x - cx) / rx
	dy := (y - cy) / ry
	return dx*dx+dy*dy <= 1
}
