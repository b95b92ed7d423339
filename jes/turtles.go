package jes

import (
	"github.com/mediacomp/mediacomp"
	"github.com/mediacomp/mediacomp/turtles"
)

// MakeWorld returns a turtle world, 640x480 unless dimensions are given.
func MakeWorld(size ...int) *turtles.World {
	w, h := turtles.DefaultWidth, turtles.DefaultHeight
	if len(size) >= 2 {
		w, h = size[0], size[1]
	}
	return turtles.NewWorld(w, h)
}

// MakeTurtle adds a turtle at the origin, heading zero.
func MakeTurtle(world *turtles.World) *turtles.Turtle {
	return world.NewTurtle(0, 0, 0)
}

// GetTurtleList returns the world's turtles in creation order.
func GetTurtleList(world *turtles.World) []*turtles.Turtle {
	return world.Turtles()
}

// GetWorldPicture returns the canvas the world's turtles draw on.
func GetWorldPicture(world *turtles.World) *mediacomp.Picture {
	return world.Picture()
}

// Forward moves the turtle 100 units, or the given distance.
func Forward(t *turtles.Turtle, distance ...float64) {
	t.Forward(optDistance(distance))
}

// Backward moves the turtle 100 units opposite its heading, or the given
// distance.
func Backward(t *turtles.Turtle, distance ...float64) {
	t.Forward(-optDistance(distance))
}

// Turn rotates the turtle 90 degrees, or the given angle.
func Turn(t *turtles.Turtle, degrees ...float64) {
	if len(degrees) > 0 {
		t.Turn(degrees[0])
		return
	}
	t.Turn(90)
}

// TurnLeft rotates the turtle 90 degrees counterclockwise.
func TurnLeft(t *turtles.Turtle) { t.Turn(90) }

// TurnRight rotates the turtle 90 degrees clockwise.
func TurnRight(t *turtles.Turtle) { t.Turn(-90) }

// TurnToFace points the turtle at (x, y) without moving it.
func TurnToFace(t *turtles.Turtle, x, y float64) { t.TurnToFace(x, y) }

// MoveTo relocates the turtle, drawing if the pen is down.
func MoveTo(t *turtles.Turtle, x, y float64) { t.MoveTo(x, y) }

// PenUp raises the pen so the turtle moves without drawing.
func PenUp(t *turtles.Turtle) { t.SetPenUp(true) }

// PenDown lowers the pen so moves draw lines again.
func PenDown(t *turtles.Turtle) { t.SetPenUp(false) }

func GetHeading(t *turtles.Turtle) float64 { return t.Heading() }
func GetXPos(t *turtles.Turtle) float64 { return t.X() }
func GetYPos(t *turtles.Turtle) float64 { return t.Y() }

func optDistance(d []float64) float64 {
	if len(d) > 0 {
		return d[0]
	}
	return 100
}
