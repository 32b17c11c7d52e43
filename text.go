package pandagl

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// targetDisplayer adapts a Target to the drivers.Displayer interface the
// tinyfont glyph renderer draws through.
type targetDisplayer struct {
	t Target
}

var _ drivers.Displayer = targetDisplayer{}

func (d targetDisplayer) Size() (x, y int16) {
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d targetDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.t.SetPixel(int(x), int(y), Color{R: c.R, G: c.G, B: c.B, A: c.A})
}

func (d targetDisplayer) Display() error { return nil }

// DrawText writes one line of text with its top-left corner near (x, y).
// The glyph table is an immutable lookup; each set bit becomes one
// SetPixel, so text clips and blends exactly like any other draw call.
func DrawText(t Target, font tinyfont.Fonter, x, y int, s string, c Color) {
	if t == nil || font == nil || s == "" {
		return
	}
	baseline := int16(y) + int16(font.GetYAdvance())
	tinyfont.WriteLine(targetDisplayer{t: t}, font, int16(x), baseline, s,
		color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}

// TextWidth reports the advance width of s in pixels for layout.
func TextWidth(font tinyfont.Fonter, s string) int {
	if font == nil || s == "" {
		return 0
	}
	_, outbox := tinyfont.LineWidth(font, s)
	return int(outbox)
}
