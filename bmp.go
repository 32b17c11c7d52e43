package pandagl

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// Decode failure classes for the strict BMP loader. Callers match them
// with errors.Is; LoadBMP wraps them with the offending path.
var (
	// ErrNotFound reports a missing file.
	ErrNotFound = errors.New("file not found")
	// ErrBadMagic reports data that does not start with the "BM" magic.
	ErrBadMagic = errors.New("not a BMP file")
	// ErrUnsupportedFormat reports a BMP this decoder will not read:
	// anything but uncompressed 24- or 32-bit pixels, or a file too
	// short for the dimensions its header claims.
	ErrUnsupportedFormat = errors.New("unsupported BMP format")
)

const (
	bmpFileHeaderLen = 14
	bmpInfoHeaderLen = 40
)

// LoadBMP reads a BMP file into an Image. Only uncompressed 24- and
// 32-bit files are accepted; everything else fails with a typed error.
// Missing textures are an expected condition (callers typically fall back
// to flat-colored geometry), hence the ErrNotFound class.
func LoadBMP(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("bmp: open %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("bmp: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := DecodeBMP(f)
	if err != nil {
		return nil, fmt.Errorf("bmp: decode %s: %w", path, err)
	}
	return img, nil
}

// DecodeBMP decodes BMP bytes from r into packed ARGB pixels. 24-bit
// pixels decode opaque; 32-bit pixels keep their alpha byte. Both
// bottom-up and top-down (negative height) row orders are handled.
func DecodeBMP(r io.Reader) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) < 2 || data[0] != 'B' || data[1] != 'M' {
		return nil, ErrBadMagic
	}
	if len(data) < bmpFileHeaderLen+bmpInfoHeaderLen {
		return nil, fmt.Errorf("%w: truncated header", ErrUnsupportedFormat)
	}

	dataOffset := binary.LittleEndian.Uint32(data[10:14])
	infoLen := binary.LittleEndian.Uint32(data[14:18])
	width := int32(binary.LittleEndian.Uint32(data[18:22]))
	height := int32(binary.LittleEndian.Uint32(data[22:26]))
	bitCount := binary.LittleEndian.Uint16(data[28:30])
	compression := binary.LittleEndian.Uint32(data[30:34])

	if infoLen < bmpInfoHeaderLen {
		return nil, fmt.Errorf("%w: info header %d bytes", ErrUnsupportedFormat, infoLen)
	}
	if compression != 0 {
		return nil, fmt.Errorf("%w: compression %d", ErrUnsupportedFormat, compression)
	}
	if bitCount != 24 && bitCount != 32 {
		return nil, fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedFormat, bitCount)
	}
	if width <= 0 || height == 0 {
		return nil, fmt.Errorf("%w: %dx%d pixels", ErrUnsupportedFormat, width, height)
	}

	topDown := height < 0
	w := int(width)
	h := int(height)
	if topDown {
		h = -h
	}

	bypp := int(bitCount) / 8
	stride := (w*bypp + 3) &^ 3
	need := int64(dataOffset) + int64(stride)*int64(h)
	if need > int64(len(data)) {
		return nil, fmt.Errorf("%w: truncated pixel data", ErrUnsupportedFormat)
	}

	img := &Image{w: w, h: h, pix: make([]uint32, w*h)}
	for y := 0; y < h; y++ {
		srcY := h - 1 - y
		if topDown {
			srcY = y
		}
		row := data[int(dataOffset)+srcY*stride:]
		for x := 0; x < w; x++ {
			i := x * bypp
			c := Color{B: row[i], G: row[i+1], R: row[i+2], A: 0xFF}
			if bypp == 4 {
				c.A = row[i+3]
			}
			img.pix[y*w+x] = c.Pack()
		}
	}

	Logger().Debug("bmp decoded", "width", w, "height", h, "bpp", bitCount, "topdown", topDown)
	return img, nil
}
