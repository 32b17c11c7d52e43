package pandagl

import "testing"

func TestPackLayout(t *testing.T) {
	c := RGBA(0x11, 0x22, 0x33, 0x44)
	if got, want := c.Pack(), uint32(0x44112233); got != want {
		t.Fatalf("Pack() = %#x, want %#x", got, want)
	}
}

func TestUnpackInverse(t *testing.T) {
	colors := []Color{
		{},
		RGB(1, 2, 3),
		RGBA(0xFF, 0x80, 0x01, 0x7F),
		RGBA(0, 0, 0, 0xFF),
	}
	for _, c := range colors {
		if got := Unpack(c.Pack()); got != c {
			t.Errorf("Unpack(Pack(%v)) = %v, want input back", c, got)
		}
	}
}

func TestRGBIsOpaque(t *testing.T) {
	if got := RGB(10, 20, 30).A; got != 0xFF {
		t.Fatalf("RGB().A = %d, want 255", got)
	}
}

func TestMulScalar(t *testing.T) {
	tests := []struct {
		name string
		in   Color
		s    float32
		want Color
	}{
		{"half", RGBA(100, 200, 50, 200), 0.5, RGBA(49, 99, 24, 200)},
		{"clamps high", RGBA(100, 200, 50, 200), 2, RGBA(100, 200, 50, 200)},
		{"clamps low", RGBA(100, 200, 50, 200), -1, RGBA(0, 0, 0, 200)},
		{"identity", RGB(7, 8, 9), 1, RGB(7, 8, 9)},
	}
	for _, tt := range tests {
		if got := tt.in.MulScalar(tt.s); got != tt.want {
			t.Errorf("%s: MulScalar(%v) = %v, want %v", tt.name, tt.s, got, tt.want)
		}
	}
}

func TestWithAlpha(t *testing.T) {
	c := RGB(1, 2, 3).WithAlpha(9)
	if want := RGBA(1, 2, 3, 9); c != want {
		t.Fatalf("WithAlpha(9) = %v, want %v", c, want)
	}
}
