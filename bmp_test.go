package pandagl

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// buildBMP assembles a BMP byte stream: file header, 40-byte info header,
// then the raw pixel rows exactly as given.
func buildBMP(width, height int32, bitCount uint16, compression uint32, pixels []byte) []byte {
	const offset = bmpFileHeaderLen + bmpInfoHeaderLen
	buf := make([]byte, offset+len(pixels))
	buf[0], buf[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(buf[2:6], uint32(len(buf)))
	binary.LittleEndian.PutUint32(buf[10:14], offset)
	binary.LittleEndian.PutUint32(buf[14:18], bmpInfoHeaderLen)
	binary.LittleEndian.PutUint32(buf[18:22], uint32(width))
	binary.LittleEndian.PutUint32(buf[22:26], uint32(height))
	binary.LittleEndian.PutUint16(buf[26:28], 1)
	binary.LittleEndian.PutUint16(buf[28:30], bitCount)
	binary.LittleEndian.PutUint32(buf[30:34], compression)
	copy(buf[offset:], pixels)
	return buf
}

// 3 pixels of 24-bit BGR are 9 bytes, padded to a 12-byte row.
func TestDecodeBMP24BitBottomUp(t *testing.T) {
	pixels := []byte{
		// File row 0 is the bottom image row: white, black, mid gray.
		0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x80, 0x80, 0x80, 0, 0, 0,
		// File row 1 is the top image row: red, green, blue in BGR order.
		0x00, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0x00, 0, 0, 0,
	}
	img, err := DecodeBMP(bytes.NewReader(buildBMP(3, 2, 24, 0, pixels)))
	if err != nil {
		t.Fatalf("DecodeBMP() error = %v", err)
	}

	w, h := img.Size()
	if w != 3 || h != 2 {
		t.Fatalf("Size() = (%d, %d), want (3, 2)", w, h)
	}
	wantTop := []Color{RGB(0xFF, 0, 0), RGB(0, 0xFF, 0), RGB(0, 0, 0xFF)}
	for x, want := range wantTop {
		if got := img.At(x, 0); got != want {
			t.Errorf("At(%d, 0) = %v, want %v", x, got, want)
		}
	}
	wantBottom := []Color{RGB(0xFF, 0xFF, 0xFF), RGB(0, 0, 0), RGB(0x80, 0x80, 0x80)}
	for x, want := range wantBottom {
		if got := img.At(x, 1); got != want {
			t.Errorf("At(%d, 1) = %v, want %v", x, got, want)
		}
	}
}

func TestDecodeBMP32BitKeepsAlpha(t *testing.T) {
	pixels := []byte{3, 2, 1, 128} // BGRA
	img, err := DecodeBMP(bytes.NewReader(buildBMP(1, 1, 32, 0, pixels)))
	if err != nil {
		t.Fatalf("DecodeBMP() error = %v", err)
	}
	if got, want := img.At(0, 0), RGBA(1, 2, 3, 128); got != want {
		t.Fatalf("At(0,0) = %v, want %v", got, want)
	}
}

// A negative height marks top-down row order: the first file row is the
// top image row.
func TestDecodeBMPTopDown(t *testing.T) {
	pixels := []byte{
		0x00, 0x00, 0xFF, 0, // red, one padded 24-bit pixel per row
		0xFF, 0x00, 0x00, 0,
	}
	img, err := DecodeBMP(bytes.NewReader(buildBMP(1, -2, 24, 0, pixels)))
	if err != nil {
		t.Fatalf("DecodeBMP() error = %v", err)
	}

	w, h := img.Size()
	if w != 1 || h != 2 {
		t.Fatalf("Size() = (%d, %d), want (1, 2)", w, h)
	}
	if got, want := img.At(0, 0), RGB(0xFF, 0, 0); got != want {
		t.Errorf("At(0,0) = %v, want %v", got, want)
	}
	if got, want := img.At(0, 1), RGB(0, 0, 0xFF); got != want {
		t.Errorf("At(0,1) = %v, want %v", got, want)
	}
}

func TestDecodeBMPBadMagic(t *testing.T) {
	for _, data := range [][]byte{nil, {'B'}, []byte("PNG not a bitmap")} {
		if _, err := DecodeBMP(bytes.NewReader(data)); !errors.Is(err, ErrBadMagic) {
			t.Errorf("DecodeBMP(%q) error = %v, want ErrBadMagic", data, err)
		}
	}
}

func TestDecodeBMPUnsupported(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"truncated header", []byte("BM short")},
		{"8 bits per pixel", buildBMP(2, 2, 8, 0, make([]byte, 16))},
		{"compressed", buildBMP(2, 2, 24, 1, make([]byte, 16))},
		{"zero width", buildBMP(0, 2, 24, 0, nil)},
		{"truncated pixel data", buildBMP(4, 4, 24, 0, make([]byte, 10))},
	}
	for _, tt := range tests {
		if _, err := DecodeBMP(bytes.NewReader(tt.data)); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("%s: error = %v, want ErrUnsupportedFormat", tt.name, err)
		}
	}
}

func TestLoadBMPMissing(t *testing.T) {
	_, err := LoadBMP(filepath.Join(t.TempDir(), "nope.bmp"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("LoadBMP(missing) error = %v, want ErrNotFound", err)
	}
}

func TestLoadBMPFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tex.bmp")
	data := buildBMP(1, 1, 32, 0, []byte{0x30, 0x20, 0x10, 0xFF})
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	img, err := LoadBMP(path)
	if err != nil {
		t.Fatalf("LoadBMP() error = %v", err)
	}
	if got, want := img.At(0, 0), RGBA(0x10, 0x20, 0x30, 0xFF); got != want {
		t.Fatalf("At(0,0) = %v, want %v", got, want)
	}
}
