package image

import (
	"math"
	"testing"
)

// newRamp returns a w x 1 Gray8 buffer with pixel x = x*step.
func newRamp(w int, step byte) *ImageBuf {
	buf := New(w, 1, FormatGray8)
	for x := range w {
		buf.Set(x, 0, 0, byte(x)*step)
	}
	return buf
}

func TestBorderIndex(t *testing.T) {
	tests := []struct {
		name   string
		i, n   int
		mode   BorderMode
		want   int
		wantOk bool
	}{
		{"inside", 2, 4, BorderConstant, 2, true},
		{"constant outside", -1, 4, BorderConstant, 0, false},
		{"replicate low", -3, 4, BorderReplicate, 0, true},
		{"replicate high", 9, 4, BorderReplicate, 3, true},
		{"wrap low", -1, 4, BorderWrap, 3, true},
		{"wrap high", 5, 4, BorderWrap, 1, true},
		{"reflect101 low", -1, 4, BorderReflect101, 1, true},
		{"reflect101 high", 4, 4, BorderReflect101, 2, true},
		{"reflect101 single", 3, 1, BorderReflect101, 0, true},
		{"empty", 0, 0, BorderWrap, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BorderIndex(tt.i, tt.n, tt.mode)
			if got != tt.want || ok != tt.wantOk {
				t.Errorf("BorderIndex(%d, %d, %v) = (%d, %v), want (%d, %v)",
					tt.i, tt.n, tt.mode, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestSampler(t *testing.T) {
	img := newRamp(3, 100)
	img = CopyMakeBorder(img, 0, 0, 0, 1, BorderConstant, [4]byte{250})

	tests := []struct {
		name string
		s    Sampler
		x, y float64
		want byte
	}{
		{"exact sample", Sampler{}, 1, 0, 100},
		{"midpoint", Sampler{}, 0.5, 0, 50},
		{"quarter", Sampler{}, 1.25, 0, 125},
		{"snapped", Sampler{}, 2 - 1e-9, 0, 200},
		{"constant border", Sampler{Value: [4]byte{7}}, -5, 0, 7},
		{"replicate border", Sampler{Border: BorderReplicate}, 10, 0, 250},
		{"wrap border", Sampler{Border: BorderWrap}, 4, 0, 0},
		{"nan", Sampler{Value: [4]byte{9}}, math.NaN(), 0, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := make([]byte, 1)
			tt.s.Sample(img, tt.x, tt.y, out)
			if out[0] != tt.want {
				t.Errorf("Sample(%v, %v) = %d, want %d", tt.x, tt.y, out[0], tt.want)
			}
		})
	}
}

func TestRoundByte(t *testing.T) {
	tests := []struct {
		in   float64
		want byte
	}{
		{-3, 0},
		{0.49, 0},
		{0.5, 1},
		{127.6, 128},
		{254.5, 255},
		{1e9, 255},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := RoundByte(tt.in); got != tt.want {
			t.Errorf("RoundByte(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestBorderModeString(t *testing.T) {
	if BorderReflect101.String() != "Reflect101" || BorderMode(9).String() != "Unknown" {
		t.Error("unexpected BorderMode.String()")
	}
}
