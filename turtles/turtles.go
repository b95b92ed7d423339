// Package turtles implements a minimal turtle-graphics world drawing onto
// a picture buffer. Headings are in degrees; moving with the pen down
// leaves a line on the world's canvas.
package turtles

import (
	"fmt"
	"math"

	"github.com/mediacomp/mediacomp"
)

// Default canvas size for a World.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

// World is the canvas turtles live on, plus the turtles themselves.
type World struct {
	pic     *mediacomp.Picture
	turtles []*Turtle
}

// NewWorld returns a world with a white width x height canvas. The pen
// default is black, so the canvas is white rather than the historical
// black to keep default drawing visible.
func NewWorld(width, height int) *World {
	return &World{pic: mediacomp.NewPicture(width, height, mediacomp.White)}
}

// Picture returns the world's canvas. Turtle lines accumulate on it.
func (w *World) Picture() *mediacomp.Picture { return w.pic }

// NewTurtle adds a turtle at the given position and heading.
func (w *World) NewTurtle(x, y, heading float64) *Turtle {
	t := &Turtle{world: w, x: x, y: y, heading: math.Mod(math.Mod(heading, 360)+360, 360)}
	w.turtles = append(w.turtles, t)
	return t
}

// Turtles returns the world's turtles in creation order.
func (w *World) Turtles() []*Turtle { return w.turtles }

func (w *World) String() string {
	return fmt.Sprintf("World: %d turtles", len(w.turtles))
}

// Turtle is a position, heading, and pen bound to one world. Create one
// with (*World).NewTurtle.
type Turtle struct {
	world   *World
	x, y    float64
	heading float64
	penUp   bool
}

func (t *Turtle) X() float64 { return t.x }
func (t *Turtle) Y() float64 { return t.y }
func (t *Turtle) Heading() float64 { return t.heading }
func (t *Turtle) PenUp() bool { return t.penUp }

// SetPenUp raises or lowers the pen; a raised pen moves without drawing.
func (t *Turtle) SetPenUp(up bool) { t.penUp = up }

// SetHeading points the turtle at the given angle, normalized to [0,360).
func (t *Turtle) SetHeading(degrees float64) {
	t.heading = math.Mod(math.Mod(degrees, 360)+360, 360)
}

// Forward moves the turtle along its current heading. Heading zero moves
// down the y axis, matching the classic screen-coordinate convention.
func (t *Turtle) Forward(distance float64) {
	rad := t.heading * math.Pi / 180
	t.MoveTo(t.x+math.Sin(rad)*distance, t.y+math.Cos(rad)*distance)
}

// Turn rotates the turtle by the given degrees (negative for the other
// direction), keeping the heading in [0,360).
func (t *Turtle) Turn(degrees float64) {
	t.SetHeading(t.heading + degrees)
}

// MoveTo relocates the turtle without changing its heading, drawing a
// line on the world's canvas when the pen is down.
func (t *Turtle) MoveTo(x, y float64) {
	if !t.penUp {
		t.world.pic.AddLine(int(t.x), int(t.y), int(x), int(y), mediacomp.Black)
	}
	t.x = x
	t.y = y
}

// TurnToFace points the turtle at the given location without moving it,
// so a following Forward closes the distance.
func (t *Turtle) TurnToFace(x, y float64) {
	t.SetHeading(math.Atan2(x-t.x, y-t.y) * 180 / math.Pi)
}

func (t *Turtle) String() string {
	pen := "down"
	if t.penUp {
		pen = "up"
	}
	return fmt.Sprintf("Turtle: at x=%g, y=%g, heading: %g degrees, pen: %s", t.x, t.y, t.heading, pen)
}
