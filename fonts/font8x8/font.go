package font8x8

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Font is a monospace 8x8 bitmap font covering printable ASCII.
//
// It implements tinyfont.Fonter so it can be drawn onto any render target
// through the engine's text routines. Concurrent access is not safe due to
// internal glyph reuse.
var Font tinyfont.Fonter = &font8x8{}

type font8x8 struct {
	g glyph
}

type glyph struct {
	r rune
}

func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	idx := glyphIndex(g.r)
	if idx < 0 {
		return
	}

	base := idx * 8
	for row := 0; row < 8; row++ {
		b := glyphData[base+row]
		// Bits are stored LSB-first (bit0 = leftmost pixel).
		for col := 0; col < 8; col++ {
			if b&(1<<col) == 0 {
				continue
			}
			display.SetPixel(x+int16(col), y-int16(7-row), c)
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    8,
		Height:   8,
		XAdvance: 8,
		XOffset:  0,
		YOffset:  -7,
	}
}

func (f *font8x8) GetYAdvance() uint8 { return 8 }

func (f *font8x8) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	return &f.g
}

func glyphIndex(r rune) int {
	if r < 0x20 || r > 0x7e {
		r = '?'
	}
	return int(r) - 0x20
}
