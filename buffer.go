package pandagl

// Buffer is a CPU pixel buffer with packed ARGB storage.
//
// It is the compositing surface every draw operation ultimately writes to,
// and the canonical Target implementation. A Buffer is created once, mutated
// in place by draw calls, and never shared between goroutines.
type Buffer struct {
	w, h int
	pix  []uint32
}

// NewBuffer allocates a w x h buffer with all pixels zero (transparent
// black in the packed layout). Negative dimensions clamp to zero.
func NewBuffer(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Buffer{w: w, h: h, pix: make([]uint32, w*h)}
}

func (b *Buffer) Size() (w, h int) {
	if b == nil {
		return 0, 0
	}
	return b.w, b.h
}

// Pix exposes the packed pixel storage, row-major from the top-left.
// Presenters read it to upload a frame; callers must not resize it.
func (b *Buffer) Pix() []uint32 {
	if b == nil {
		return nil
	}
	return b.pix
}

// SetPixel writes a color at (x, y). Coordinates outside the buffer are
// silently discarded; that is the clipping contract, not an error. An
// opaque color overwrites the destination, anything else alpha-blends,
// and the stored result is always fully opaque.
func (b *Buffer) SetPixel(x, y int, c Color) {
	if b == nil || x < 0 || y < 0 || x >= b.w || y >= b.h {
		return
	}
	i := y*b.w + x
	if c.A == 0xFF {
		b.pix[i] = c.Pack()
		return
	}
	b.pix[i] = blendPacked(c, b.pix[i])
}

// At reads back the stored color at (x, y), or the zero Color when out of
// bounds.
func (b *Buffer) At(x, y int) Color {
	if b == nil || x < 0 || y < 0 || x >= b.w || y >= b.h {
		return Color{}
	}
	return Unpack(b.pix[y*b.w+x])
}

// Clear writes c to every pixel through the same path as SetPixel, so a
// translucent clear color blends over the previous frame.
func (b *Buffer) Clear(c Color) {
	if b == nil {
		return
	}
	if c.A == 0xFF {
		p := c.Pack()
		for i := range b.pix {
			b.pix[i] = p
		}
		return
	}
	for i, d := range b.pix {
		b.pix[i] = blendPacked(c, d)
	}
}

// FillRect fills the w x h rectangle anchored at (x, y). Clipping happens
// per pixel in SetPixel.
func (b *Buffer) FillRect(x, y, w, h int, c Color) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			b.SetPixel(xx, yy, c)
		}
	}
}

// Blit draws img with its top-left corner at (x, y), blending each source
// pixel by its own alpha.
func (b *Buffer) Blit(img *Image, x, y int) {
	if b == nil || img == nil {
		return
	}
	for sy := 0; sy < img.h; sy++ {
		for sx := 0; sx < img.w; sx++ {
			b.SetPixel(x+sx, y+sy, img.At(sx, sy))
		}
	}
}

// BlitScaled draws img enlarged by an integer factor using nearest-neighbor
// lookup (src = dst/scale). The alpha argument replaces each source pixel's
// alpha for the blend, so a sprite can be faded as a whole.
func (b *Buffer) BlitScaled(img *Image, x, y, scale int, alpha uint8) {
	if b == nil || img == nil || scale <= 0 {
		return
	}
	dw := img.w * scale
	dh := img.h * scale
	for dy := 0; dy < dh; dy++ {
		sy := dy / scale
		for dx := 0; dx < dw; dx++ {
			c := img.At(dx/scale, sy)
			c.A = alpha
			b.SetPixel(x+dx, y+dy, c)
		}
	}
}

// BlitTinted draws img multiplied per channel by tint
// (channel = channel * tint_channel / 255). Source alpha is kept.
func (b *Buffer) BlitTinted(img *Image, x, y int, tint Color) {
	if b == nil || img == nil {
		return
	}
	mul := func(ch, t uint8) uint8 {
		return uint8((uint32(ch) * uint32(t)) / 255)
	}
	for sy := 0; sy < img.h; sy++ {
		for sx := 0; sx < img.w; sx++ {
			c := img.At(sx, sy)
			c.R = mul(c.R, tint.R)
			c.G = mul(c.G, tint.G)
			c.B = mul(c.B, tint.B)
			b.SetPixel(x+sx, y+sy, c)
		}
	}
}

// blendPacked mixes src over a packed destination pixel:
// out = src*(a/255) + dst*(1 - a/255) per channel. The result is stored
// fully opaque; destination alpha is discarded (single-layer compositing).
func blendPacked(src Color, dst uint32) uint32 {
	d := Unpack(dst)
	a := uint32(src.A)
	ia := 255 - a
	mix := func(s, o uint8) uint8 {
		return uint8((uint32(s)*a + uint32(o)*ia) / 255)
	}
	return Color{
		R: mix(src.R, d.R),
		G: mix(src.G, d.G),
		B: mix(src.B, d.B),
		A: 0xFF,
	}.Pack()
}
