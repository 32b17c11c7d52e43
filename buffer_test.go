package pandagl

import "testing"

func TestNewBufferClampsNegative(t *testing.T) {
	b := NewBuffer(-3, 5)
	w, h := b.Size()
	if w != 0 || h != 5 {
		t.Fatalf("Size() = (%d, %d), want (0, 5)", w, h)
	}
	b.SetPixel(0, 0, RGB(1, 2, 3)) // must not panic
}

func TestSetPixelClips(t *testing.T) {
	b := NewBuffer(4, 4)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}} {
		b.SetPixel(p[0], p[1], RGB(0xFF, 0, 0))
	}
	for _, px := range b.Pix() {
		if px != 0 {
			t.Fatalf("out-of-bounds SetPixel wrote into the buffer")
		}
	}
	if got := b.At(-1, 2); got != (Color{}) {
		t.Fatalf("At(-1, 2) = %v, want zero Color", got)
	}
}

func TestSetPixelOpaqueOverwrites(t *testing.T) {
	b := NewBuffer(2, 2)
	b.SetPixel(1, 1, RGB(0xFF, 0, 0))
	b.SetPixel(1, 1, RGB(0, 0xFF, 0))
	if got, want := b.At(1, 1), RGB(0, 0xFF, 0); got != want {
		t.Fatalf("At(1,1) = %v, want %v", got, want)
	}
}

func TestSetPixelAlphaZeroKeepsDestination(t *testing.T) {
	b := NewBuffer(1, 1)
	b.SetPixel(0, 0, RGB(200, 50, 10))
	b.SetPixel(0, 0, RGBA(0xFF, 0xFF, 0xFF, 0))
	if got, want := b.At(0, 0), RGB(200, 50, 10); got != want {
		t.Fatalf("At(0,0) = %v, want untouched %v", got, want)
	}
}

func TestSetPixelBlendsHalf(t *testing.T) {
	b := NewBuffer(1, 1)
	b.SetPixel(0, 0, RGB(0, 0, 0))
	b.SetPixel(0, 0, RGBA(0xFF, 0xFF, 0xFF, 128))

	got := b.At(0, 0)
	if want := RGB(128, 128, 128); got != want {
		t.Fatalf("half white over black = %v, want %v", got, want)
	}
	if got.A != 0xFF {
		t.Fatalf("blended pixel alpha = %d, want 255", got.A)
	}
}

// Clear goes through the blend path too, so a translucent clear fades the
// previous frame instead of replacing it.
func TestClearBlends(t *testing.T) {
	b := NewBuffer(2, 1)
	b.Clear(RGB(100, 0, 0))
	b.Clear(RGBA(0, 0, 200, 128))

	want := RGB(49, 0, 100)
	for x := 0; x < 2; x++ {
		if got := b.At(x, 0); got != want {
			t.Fatalf("At(%d,0) = %v, want %v", x, got, want)
		}
	}
}

func TestClearOpaque(t *testing.T) {
	b := NewBuffer(3, 3)
	b.Clear(RGB(9, 8, 7))
	if got, want := b.At(2, 2), RGB(9, 8, 7); got != want {
		t.Fatalf("At(2,2) = %v, want %v", got, want)
	}
}

func TestFillRectClips(t *testing.T) {
	b := NewBuffer(4, 4)
	b.FillRect(-2, -2, 4, 4, RGB(0xFF, 0xFF, 0xFF))

	set := 0
	for _, px := range b.Pix() {
		if px != 0 {
			set++
		}
	}
	if set != 4 {
		t.Fatalf("FillRect set %d pixels, want 4", set)
	}
	for _, p := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		if got := b.At(p[0], p[1]); got != RGB(0xFF, 0xFF, 0xFF) {
			t.Errorf("At(%d,%d) = %v, want white", p[0], p[1], got)
		}
	}
}

func TestBlit(t *testing.T) {
	src := NewBuffer(2, 2)
	src.Clear(RGB(0, 0xFF, 0))
	img := src.Snapshot()

	b := NewBuffer(4, 4)
	b.Blit(img, 3, 3) // only (3,3) lands inside

	if got, want := b.At(3, 3), RGB(0, 0xFF, 0); got != want {
		t.Fatalf("At(3,3) = %v, want %v", got, want)
	}
	set := 0
	for _, px := range b.Pix() {
		if px != 0 {
			set++
		}
	}
	if set != 1 {
		t.Fatalf("Blit set %d pixels, want 1", set)
	}
}

func TestBlitScaled(t *testing.T) {
	src := NewBuffer(2, 1)
	src.SetPixel(0, 0, RGB(0xFF, 0, 0))
	src.SetPixel(1, 0, RGB(0, 0, 0xFF))
	img := src.Snapshot()

	b := NewBuffer(8, 2)
	b.BlitScaled(img, 0, 0, 3, 0xFF)

	if got, want := b.At(2, 0), RGB(0xFF, 0, 0); got != want {
		t.Errorf("At(2,0) = %v, want %v", got, want)
	}
	if got, want := b.At(3, 0), RGB(0, 0, 0xFF); got != want {
		t.Errorf("At(3,0) = %v, want %v", got, want)
	}
	if got, want := b.At(0, 1), RGB(0xFF, 0, 0); got != want {
		t.Errorf("At(0,1) = %v, want %v (rows scale too)", got, want)
	}
	if got := b.At(6, 0); got != (Color{}) {
		t.Errorf("At(6,0) = %v, want untouched", got)
	}
}

func TestBlitScaledAlphaZero(t *testing.T) {
	src := NewBuffer(1, 1)
	src.SetPixel(0, 0, RGB(0xFF, 0xFF, 0xFF))
	img := src.Snapshot()

	b := NewBuffer(1, 1)
	b.SetPixel(0, 0, RGB(0, 100, 0))
	b.BlitScaled(img, 0, 0, 1, 0)

	if got, want := b.At(0, 0), RGB(0, 100, 0); got != want {
		t.Fatalf("At(0,0) = %v, want destination kept %v", got, want)
	}
}

func TestBlitTinted(t *testing.T) {
	src := NewBuffer(1, 1)
	src.SetPixel(0, 0, RGB(0xFF, 0xFF, 0xFF))
	img := src.Snapshot()

	b := NewBuffer(1, 1)
	b.BlitTinted(img, 0, 0, RGB(0xFF, 0, 0xFF))

	if got, want := b.At(0, 0), RGB(0xFF, 0, 0xFF); got != want {
		t.Fatalf("tinted white = %v, want %v", got, want)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	b := NewBuffer(1, 1)
	b.SetPixel(0, 0, RGB(0xFF, 0, 0))
	img := b.Snapshot()
	b.SetPixel(0, 0, RGB(0, 0xFF, 0))

	if got, want := img.At(0, 0), RGB(0xFF, 0, 0); got != want {
		t.Fatalf("snapshot pixel = %v, want %v (must not track the buffer)", got, want)
	}
}

func TestPixRowMajor(t *testing.T) {
	b := NewBuffer(3, 2)
	b.SetPixel(1, 0, RGB(1, 2, 3))
	b.SetPixel(0, 1, RGB(4, 5, 6))

	pix := b.Pix()
	if got, want := pix[1], RGB(1, 2, 3).Pack(); got != want {
		t.Errorf("pix[1] = %#x, want %#x", got, want)
	}
	if got, want := pix[3], RGB(4, 5, 6).Pack(); got != want {
		t.Errorf("pix[3] = %#x, want %#x", got, want)
	}
}
