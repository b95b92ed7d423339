package jes

import (
	"testing"

	"github.com/mediacomp/mediacomp"
	"github.com/mediacomp/mediacomp/sounds"
)

func TestMakeColorClamps(t *testing.T) {
	c := MakeColor(300, -10, 128)
	if c != mediacomp.NewColor(255, 0, 128) {
		t.Errorf("MakeColor = %v", c)
	}
}

func TestMakeEmptyPictureDefaults(t *testing.T) {
	p := MakeEmptyPicture(4, 3)
	if GetWidth(p) != 4 || GetHeight(p) != 3 {
		t.Fatalf("picture is %dx%d", GetWidth(p), GetHeight(p))
	}
	if GetColor(GetPixel(p, 0, 0)) != mediacomp.White {
		t.Error("default fill is not white")
	}

	p = MakeEmptyPicture(2, 2, mediacomp.Red)
	if GetColor(GetPixel(p, 1, 1)) != mediacomp.Red {
		t.Error("explicit fill ignored")
	}
}

func TestPixelAccessors(t *testing.T) {
	p := MakeEmptyPicture(3, 3)
	px := GetPixel(p, 1, 2)

	SetColor(px, MakeColor(10, 20, 30))
	if GetRed(px) != 10 || GetGreen(px) != 20 || GetBlue(px) != 30 {
		t.Errorf("channels = %d,%d,%d", GetRed(px), GetGreen(px), GetBlue(px))
	}
	if GetX(px) != 1 || GetY(px) != 2 {
		t.Errorf("position = (%d,%d)", GetX(px), GetY(px))
	}

	// The cursor writes through to the picture.
	if p.At(1, 2) != MakeColor(10, 20, 30) {
		t.Error("SetColor did not reach the picture")
	}

	SetRed(px, 400)
	if GetRed(px) != 255 {
		t.Errorf("SetRed(400) stored %d", GetRed(px))
	}
}

func TestGetPixelsCount(t *testing.T) {
	p := MakeEmptyPicture(3, 2)
	if n := len(GetPixels(p)); n != 6 {
		t.Errorf("GetPixels returned %d cursors", n)
	}
	if n := len(GetAllPixels(p)); n != 6 {
		t.Errorf("GetAllPixels returned %d cursors", n)
	}
}

func TestMakeEmptySoundDefaultRate(t *testing.T) {
	s, err := MakeEmptySound(100)
	if err != nil {
		t.Fatal(err)
	}
	if GetSamplingRate(s) != sounds.DefaultRate {
		t.Errorf("rate = %d, want %d", GetSamplingRate(s), sounds.DefaultRate)
	}
	if GetNumSamples(s) != 100 {
		t.Errorf("length = %d", GetNumSamples(s))
	}

	s, err = MakeEmptySound(100, 8000)
	if err != nil {
		t.Fatal(err)
	}
	if GetSamplingRate(s) != 8000 {
		t.Errorf("explicit rate = %d", GetSamplingRate(s))
	}

	if _, err := MakeEmptySound(-1); err == nil {
		t.Error("negative sample count accepted")
	}
}

func TestTurtleDefaults(t *testing.T) {
	w := MakeWorld()
	pic := GetWorldPicture(w)
	if pic.Width() != 640 || pic.Height() != 480 {
		t.Fatalf("default world is %dx%d", pic.Width(), pic.Height())
	}

	tu := MakeTurtle(w)
	PenUp(tu)
	Forward(tu)
	if GetYPos(tu) != 100 {
		t.Errorf("default Forward moved to y=%v", GetYPos(tu))
	}
	TurnRight(tu)
	if GetHeading(tu) != 270 {
		t.Errorf("TurnRight heading = %v", GetHeading(tu))
	}
	TurnLeft(tu)
	if GetHeading(tu) != 0 {
		t.Errorf("TurnLeft heading = %v", GetHeading(tu))
	}
}
