package pandagl

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
)

// Image is an immutable decoded picture: packed ARGB pixels in the same
// layout as Buffer. Images are produced by the decoders (LoadBMP,
// LoadImage), by FromImage, or by Buffer.Snapshot, and are only ever read
// by draw calls, so one Image may back any number of draws concurrently.
type Image struct {
	w, h int
	pix  []uint32
}

func (img *Image) Size() (w, h int) {
	if img == nil {
		return 0, 0
	}
	return img.w, img.h
}

// At returns the texel at (x, y), or the zero Color when out of bounds.
func (img *Image) At(x, y int) Color {
	if img == nil || x < 0 || y < 0 || x >= img.w || y >= img.h {
		return Color{}
	}
	return Unpack(img.pix[y*img.w+x])
}

// Sample fetches the nearest texel for texture coordinates (u, v) with
// wrap addressing: coordinates outside [0,1] tile, so u=1.2 hits the same
// texel as u=0.2. Negative modulo results are folded back once.
func (img *Image) Sample(u, v float32) Color {
	if img == nil || img.w == 0 || img.h == 0 {
		return Color{}
	}
	tx := int(u*float32(img.w)) % img.w
	if tx < 0 {
		tx += img.w
	}
	ty := int(v*float32(img.h)) % img.h
	if ty < 0 {
		ty += img.h
	}
	return Unpack(img.pix[ty*img.w+tx])
}

// FromImage converts a stdlib image into a packed Image. NRGBA and RGBA
// sources copy channel bytes directly; anything else goes through the
// generic At path.
func FromImage(src image.Image) *Image {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := &Image{w: w, h: h, pix: make([]uint32, w*h)}

	switch s := src.(type) {
	case *image.NRGBA:
		for y := 0; y < h; y++ {
			row := s.Pix[(y+b.Min.Y-s.Rect.Min.Y)*s.Stride:]
			for x := 0; x < w; x++ {
				i := (x + b.Min.X - s.Rect.Min.X) * 4
				out.pix[y*w+x] = Color{R: row[i], G: row[i+1], B: row[i+2], A: row[i+3]}.Pack()
			}
		}
	case *image.RGBA:
		for y := 0; y < h; y++ {
			row := s.Pix[(y+b.Min.Y-s.Rect.Min.Y)*s.Stride:]
			for x := 0; x < w; x++ {
				i := (x + b.Min.X - s.Rect.Min.X) * 4
				out.pix[y*w+x] = Color{R: row[i], G: row[i+1], B: row[i+2], A: row[i+3]}.Pack()
			}
		}
	default:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				r, g, bb, a := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
				out.pix[y*w+x] = Color{
					R: uint8(r >> 8),
					G: uint8(g >> 8),
					B: uint8(bb >> 8),
					A: uint8(a >> 8),
				}.Pack()
			}
		}
	}
	return out
}

// LoadImage decodes any registered stdlib image format (PNG, JPEG, and BMP
// via golang.org/x/image) into an Image. For the strict BMP contract with
// typed failures use LoadBMP instead.
func LoadImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("image: open %s: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("image: decode %s: %w", path, err)
	}
	return FromImage(src), nil
}

// ToImage copies the buffer into a stdlib RGBA image, for interop with
// encoders and tests.
func (b *Buffer) ToImage() *image.RGBA {
	if b == nil {
		return nil
	}
	out := image.NewRGBA(image.Rect(0, 0, b.w, b.h))
	for i, p := range b.pix {
		c := Unpack(p)
		j := i * 4
		out.Pix[j+0] = c.R
		out.Pix[j+1] = c.G
		out.Pix[j+2] = c.B
		out.Pix[j+3] = c.A
	}
	return out
}

// Snapshot copies the buffer's current contents into an immutable Image,
// so a rendered frame can be reused as a texture.
func (b *Buffer) Snapshot() *Image {
	if b == nil {
		return nil
	}
	img := &Image{w: b.w, h: b.h, pix: make([]uint32, len(b.pix))}
	copy(img.pix, b.pix)
	return img
}
