package font8x8

import (
	"image/color"
	"testing"
)

type recordingDisplay struct {
	set map[[2]int16]bool
}

func newRecordingDisplay() *recordingDisplay {
	return &recordingDisplay{set: make(map[[2]int16]bool)}
}

func (d *recordingDisplay) Size() (int16, int16)              { return 128, 128 }
func (d *recordingDisplay) SetPixel(x, y int16, _ color.RGBA) { d.set[[2]int16{x, y}] = true }
func (d *recordingDisplay) Display() error                    { return nil }

func TestGlyphTableComplete(t *testing.T) {
	const glyphs = '~' - ' ' + 1
	if got, want := len(glyphData), int(glyphs)*8; got != want {
		t.Fatalf("glyphData length = %d, want %d", got, want)
	}
}

func TestGlyphIndex(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{' ', 0},
		{'!', 1},
		{'~', 94},
		{'\n', int('?' - ' ')},
		{0x7F, int('?' - ' ')},
		{'Ж', int('?' - ' ')},
	}
	for _, tt := range tests {
		if got := glyphIndex(tt.r); got != tt.want {
			t.Errorf("glyphIndex(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestDrawUnderscore(t *testing.T) {
	d := newRecordingDisplay()
	g := Font.GetGlyph('_')
	g.Draw(d, 10, 20, color.RGBA{R: 255, A: 255})

	// '_' lights the full bottom row and nothing else. Row 7 of the
	// glyph lands on the baseline.
	if len(d.set) != 8 {
		t.Fatalf("pixel count = %d, want 8", len(d.set))
	}
	for col := int16(0); col < 8; col++ {
		if !d.set[[2]int16{10 + col, 20}] {
			t.Errorf("missing pixel at col %d on baseline", col)
		}
	}
}

func TestDrawSpaceIsBlank(t *testing.T) {
	d := newRecordingDisplay()
	Font.GetGlyph(' ').Draw(d, 0, 7, color.RGBA{A: 255})
	if len(d.set) != 0 {
		t.Fatalf("space glyph set %d pixels, want 0", len(d.set))
	}
}

func TestGlyphInfo(t *testing.T) {
	g := Font.GetGlyph('A')
	info := g.Info()
	if info.Width != 8 || info.Height != 8 || info.XAdvance != 8 {
		t.Fatalf("unexpected glyph metrics: %+v", info)
	}
	if info.YOffset != -7 {
		t.Fatalf("YOffset = %d, want -7", info.YOffset)
	}
	if Font.GetYAdvance() != 8 {
		t.Fatalf("GetYAdvance() = %d, want 8", Font.GetYAdvance())
	}
}
