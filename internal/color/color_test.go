package color

import (
	"testing"

	"github.com/flowtyone/jovi/internal/image"
)

func TestBGRToHSV(t *testing.T) {
	tests := []struct {
		name    string
		b, g, r byte
		h, s, v byte
	}{
		{"black", 0, 0, 0, 0, 0, 0},
		{"white", 255, 255, 255, 0, 0, 255},
		{"red", 0, 0, 255, 0, 255, 255},
		{"green", 0, 255, 0, 60, 255, 255},
		{"blue", 255, 0, 0, 120, 255, 255},
		{"yellow", 0, 255, 255, 30, 255, 255},
		{"magenta", 255, 0, 255, 150, 255, 255},
		{"half gray", 128, 128, 128, 0, 0, 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, v := BGRToHSV(tt.b, tt.g, tt.r)
			if h != tt.h || s != tt.s || v != tt.v {
				t.Errorf("BGRToHSV(%d,%d,%d) = (%d,%d,%d), want (%d,%d,%d)",
					tt.b, tt.g, tt.r, h, s, v, tt.h, tt.s, tt.v)
			}
		})
	}
}

func TestHSVRoundTrip(t *testing.T) {
	worst := 0
	for b := 0; b < 256; b += 15 {
		for g := 0; g < 256; g += 15 {
			for r := 0; r < 256; r += 15 {
				h, s, v := BGRToHSV(byte(b), byte(g), byte(r))
				b2, g2, r2 := HSVToBGR(h, s, v)
				worst = max(worst, absInt(int(b2)-b), absInt(int(g2)-g), absInt(int(r2)-r))
			}
		}
	}
	// Hue quantized to 2 degrees costs a few levels on saturated colors.
	if worst > 8 {
		t.Errorf("worst round-trip error = %d, want <= 8", worst)
	}
}

func TestHSVToBGRWrapsHue(t *testing.T) {
	b1, g1, r1 := HSVToBGR(10, 200, 200)
	b2, g2, r2 := HSVToBGR(190, 200, 200)
	if b1 != b2 || g1 != g2 || r1 != r2 {
		t.Errorf("hue 190 should equal hue 10: (%d,%d,%d) vs (%d,%d,%d)", b2, g2, r2, b1, g1, r1)
	}
}

func TestGray(t *testing.T) {
	tests := []struct {
		b, g, r byte
		want    byte
	}{
		{0, 0, 0, 0},
		{255, 255, 255, 255},
		{0, 0, 255, 76},
		{0, 255, 0, 150},
		{255, 0, 0, 29},
	}
	for _, tt := range tests {
		if got := Gray(tt.b, tt.g, tt.r); got != tt.want {
			t.Errorf("Gray(%d,%d,%d) = %d, want %d", tt.b, tt.g, tt.r, got, tt.want)
		}
	}
}

func TestBufferConversions(t *testing.T) {
	src := image.New(2, 1, image.FormatBGR8)
	copy(src.Data(), []byte{0, 0, 255, 255, 255, 255})

	gray := ToGray(src)
	if gray.Format() != image.FormatGray8 || gray.At(0, 0, 0) != 76 || gray.At(1, 0, 0) != 255 {
		t.Errorf("ToGray() = %v", gray.Data())
	}

	bgr := GrayToBGR(gray)
	if got := bgr.Pixel(0, 0); got[0] != 76 || got[1] != 76 || got[2] != 76 {
		t.Errorf("GrayToBGR() pixel = %v", got)
	}

	same := MapHSV(src, func(h, s, v byte) (byte, byte, byte) { return h, s, v })
	for i, want := range src.Data() {
		if got := same.Data()[i]; got != want {
			t.Errorf("identity MapHSV byte %d = %d, want %d", i, got, want)
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
