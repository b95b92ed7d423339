package turtles

import (
	"math"
	"testing"

	"github.com/mediacomp/mediacomp"
)

func TestNewWorld(t *testing.T) {
	w := NewWorld(100, 80)
	if w.Picture().Width() != 100 || w.Picture().Height() != 80 {
		t.Fatalf("canvas is %dx%d", w.Picture().Width(), w.Picture().Height())
	}
	if w.Picture().At(50, 40) != mediacomp.White {
		t.Error("canvas not white")
	}
	if len(w.Turtles()) != 0 {
		t.Error("new world already has turtles")
	}
}

func TestForwardHeadingZeroMovesDownY(t *testing.T) {
	w := NewWorld(100, 100)
	tu := w.NewTurtle(50, 50, 0)
	tu.SetPenUp(true)

	tu.Forward(10)
	if math.Abs(tu.X()-50) > 1e-9 || math.Abs(tu.Y()-60) > 1e-9 {
		t.Errorf("at (%v,%v), want (50,60)", tu.X(), tu.Y())
	}
}

func TestForwardHeading90MovesAlongX(t *testing.T) {
	w := NewWorld(100, 100)
	tu := w.NewTurtle(50, 50, 90)
	tu.SetPenUp(true)

	tu.Forward(10)
	if math.Abs(tu.X()-60) > 1e-9 {
		t.Errorf("x = %v, want 60", tu.X())
	}
	if math.Abs(tu.Y()-50) > 1e-6 {
		t.Errorf("y = %v, want 50", tu.Y())
	}
}

func TestTurnNormalizesHeading(t *testing.T) {
	w := NewWorld(10, 10)
	tu := w.NewTurtle(0, 0, 0)

	tu.Turn(450)
	if tu.Heading() != 90 {
		t.Errorf("heading = %v, want 90", tu.Heading())
	}
	tu.Turn(-180)
	if tu.Heading() != 270 {
		t.Errorf("heading = %v, want 270", tu.Heading())
	}
	tu.SetHeading(-90)
	if tu.Heading() != 270 {
		t.Errorf("SetHeading(-90) -> %v, want 270", tu.Heading())
	}
}

func TestPenDownDrawsLine(t *testing.T) {
	w := NewWorld(20, 20)
	tu := w.NewTurtle(2, 2, 0)

	tu.MoveTo(10, 2)
	for x := 2; x <= 10; x++ {
		if w.Picture().At(x, 2) != mediacomp.Black {
			t.Fatalf("line pixel (%d,2) = %v", x, w.Picture().At(x, 2))
		}
	}
}

func TestPenUpMovesWithoutDrawing(t *testing.T) {
	w := NewWorld(20, 20)
	tu := w.NewTurtle(2, 2, 0)
	tu.SetPenUp(true)

	tu.MoveTo(10, 2)
	for _, px := range w.Picture().Pixels() {
		if px.Color() != mediacomp.White {
			t.Fatalf("pixel (%d,%d) drawn with pen up", px.X(), px.Y())
		}
	}
	if tu.X() != 10 || tu.Y() != 2 {
		t.Error("turtle did not move")
	}
}

func TestTurnToFace(t *testing.T) {
	w := NewWorld(100, 100)
	tu := w.NewTurtle(50, 50, 0)
	tu.SetPenUp(true)

	// A point straight down the y axis is heading 0 in this coordinate
	// system.
	tu.TurnToFace(50, 60)
	if got := tu.Heading(); math.Abs(got) > 1e-9 {
		t.Errorf("heading = %v, want 0", got)
	}

	// Moving forward after facing a target must close the distance.
	tu.TurnToFace(80, 50)
	before := math.Hypot(tu.X()-80, tu.Y()-50)
	tu.Forward(10)
	after := math.Hypot(tu.X()-80, tu.Y()-50)
	if after >= before {
		t.Errorf("distance grew from %v to %v after facing target", before, after)
	}
}

func TestWorldTracksTurtles(t *testing.T) {
	w := NewWorld(10, 10)
	a := w.NewTurtle(0, 0, 0)
	b := w.NewTurtle(5, 5, 90)

	list := w.Turtles()
	if len(list) != 2 || list[0] != a || list[1] != b {
		t.Error("turtle list wrong or out of order")
	}
}
