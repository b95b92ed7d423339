package mediacomp

import (
	"path/filepath"
	"testing"
)

// pixelEqual reports whether two pictures have identical dimensions and
// pixel data.
func pixelEqual(a, b *Picture) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	for i := range a.img.Pix {
		if a.img.Pix[i] != b.img.Pix[i] {
			return false
		}
	}
	return true
}

// gradient fills a picture with distinct per-pixel values so copies and
// transforms can be told apart.
func gradient(w, h int) *Picture {
	p := NewPicture(w, h, Black)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p.SetAt(x, y, NewColor(x*40, y*40, x+y))
		}
	}
	return p
}

func TestNewPictureFillsAndClampsSize(t *testing.T) {
	p := NewPicture(3, 2, Orange)
	if p.Width() != 3 || p.Height() != 2 {
		t.Fatalf("size = %dx%d", p.Width(), p.Height())
	}
	for _, px := range p.Pixels() {
		if px.Color() != Orange {
			t.Fatalf("pixel %d,%d = %v, want orange", px.X(), px.Y(), px.Color())
		}
	}

	// Degenerate dimensions are clamped, not rejected.
	p = NewPicture(0, -5, Black)
	if p.Width() != 1 || p.Height() != 1 {
		t.Errorf("clamped size = %dx%d, want 1x1", p.Width(), p.Height())
	}
}

func TestCopyIsIndependent(t *testing.T) {
	orig := gradient(4, 3)
	dup := orig.Copy()

	if !pixelEqual(orig, dup) {
		t.Fatal("copy differs from original")
	}

	dup.SetAt(1, 1, White)
	if orig.At(1, 1) == White {
		t.Error("mutating the copy changed the original")
	}

	orig.SetAt(2, 2, Red)
	if dup.At(2, 2) == Red {
		t.Error("mutating the original changed the copy")
	}
}

func TestPixelsRowMajorOrder(t *testing.T) {
	p := NewPicture(2, 2, Black)
	want := [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	px := p.Pixels()
	if len(px) != 4 {
		t.Fatalf("len(Pixels()) = %d", len(px))
	}
	for i, w := range want {
		if px[i].X() != w[0] || px[i].Y() != w[1] {
			t.Errorf("pixel %d at (%d,%d), want (%d,%d)", i, px[i].X(), px[i].Y(), w[0], w[1])
		}
	}
}

func TestOutOfRangeReadClamps(t *testing.T) {
	p := gradient(3, 3)

	if p.At(3, 0) != p.At(2, 0) {
		t.Error("read at (width,0) did not clamp to (width-1,0)")
	}
	if p.At(-2, -2) != p.At(0, 0) {
		t.Error("negative read did not clamp to (0,0)")
	}
	if p.At(99, 99) != p.At(2, 2) {
		t.Error("far read did not clamp to bottom-right")
	}
}

func TestOutOfRangeWriteIsDiscarded(t *testing.T) {
	p := gradient(3, 3)
	before := p.Copy()

	p.SetAt(3, 0, White)
	p.SetAt(0, 3, White)
	p.SetAt(-1, 0, White)

	if !pixelEqual(p, before) {
		t.Error("out-of-range write modified the buffer")
	}
}

func TestPixelCursorWritesThrough(t *testing.T) {
	p := NewPicture(2, 2, Black)
	px := p.PixelAt(1, 0)

	px.SetColor(NewColor(10, 20, 30))
	if p.At(1, 0) != (Color{10, 20, 30}) {
		t.Fatalf("SetColor did not write through: %v", p.At(1, 0))
	}

	px.SetRed(400) // clamps
	if c := p.At(1, 0); c != (Color{255, 20, 30}) {
		t.Errorf("SetRed(400) -> %v, want Color(255,20,30)", c)
	}

	px.SetBlue(-5)
	if c := p.At(1, 0); c != (Color{255, 20, 0}) {
		t.Errorf("SetBlue(-5) -> %v, want Color(255,20,0)", c)
	}
}

func TestPixelAtClampsCoordinate(t *testing.T) {
	p := NewPicture(2, 2, Black)
	px := p.PixelAt(5, -1)
	if px.X() != 1 || px.Y() != 0 {
		t.Errorf("cursor at (%d,%d), want (1,0)", px.X(), px.Y())
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	p := NewPicture(1, 1, Red)
	snap := p.PixelAt(0, 0).Snapshot()

	p.SetAt(0, 0, Blue)
	if snap.Color != Red {
		t.Error("snapshot changed after the buffer was mutated")
	}
}

func TestResize(t *testing.T) {
	p := NewPicture(2, 2, Pink)
	big := p.Resize(6, 4)

	if big.Width() != 6 || big.Height() != 4 {
		t.Fatalf("resized to %dx%d", big.Width(), big.Height())
	}
	// Nearest-neighbor over a uniform image stays uniform.
	for _, px := range big.Pixels() {
		if px.Color() != Pink {
			t.Fatalf("pixel %d,%d = %v after resize", px.X(), px.Y(), px.Color())
		}
	}
	if p.Width() != 2 || p.Height() != 2 {
		t.Error("resize mutated the receiver")
	}
}

func TestSetAllPixels(t *testing.T) {
	p := gradient(3, 3)
	p.SetAllPixels(Yellow)
	for _, px := range p.Pixels() {
		if px.Color() != Yellow {
			t.Fatalf("pixel %d,%d = %v", px.X(), px.Y(), px.Color())
		}
	}
}

func TestCopyInto(t *testing.T) {
	small := NewPicture(2, 2, Red)
	big := NewPicture(4, 4, Black)

	small.CopyInto(big, 1, 1)

	if big.At(1, 1) != Red || big.At(2, 2) != Red {
		t.Error("pasted region not red")
	}
	if big.At(0, 0) != Black || big.At(3, 3) != Black {
		t.Error("pixels outside the pasted region changed")
	}

	// Hanging over the edge trims rather than fails.
	small.CopyInto(big, 3, 3)
	if big.At(3, 3) != Red {
		t.Error("in-range part of overhanging paste missing")
	}
}

func TestSaveAndOpenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roundtrip.png")

	orig := gradient(5, 4)
	if err := orig.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	back, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !pixelEqual(orig, back) {
		t.Error("decoded picture differs from saved one")
	}
}
