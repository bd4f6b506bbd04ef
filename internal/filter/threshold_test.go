package filter

import (
	"testing"

	"github.com/flowtyone/jovi/internal/image"
)

func TestThreshold(t *testing.T) {
	src := image.New(4, 1, image.FormatGray8)
	copy(src.Data(), []byte{0, 100, 128, 200})

	tests := []struct {
		name string
		typ  ThresholdType
		want []byte
	}{
		{"binary", ThreshBinary, []byte{0, 0, 255, 255}},
		{"trunc", ThreshTrunc, []byte{0, 100, 127, 127}},
		{"tozero", ThreshToZero, []byte{0, 0, 128, 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Threshold(src, 127, 255, tt.typ)
			for i, want := range tt.want {
				if got := out.Data()[i]; got != want {
					t.Errorf("pixel %d = %d, want %d", i, got, want)
				}
			}
		})
	}
}

func TestAdaptiveThreshold(t *testing.T) {
	src := newGray(7, 7, 50)
	src.Set(3, 3, 0, 200)

	for _, method := range []AdaptiveMethod{AdaptiveMean, AdaptiveGaussian} {
		out := AdaptiveThreshold(src, 255, method, 3, 10)
		if out.Width() != 7 || out.Height() != 7 {
			t.Fatalf("size = %dx%d, want 7x7", out.Width(), out.Height())
		}
		if got := out.At(3, 3, 0); got != 255 {
			t.Errorf("method %d: bright pixel = %d, want 255", method, got)
		}
		if got := out.At(0, 0, 0); got != 255 {
			t.Errorf("method %d: flat region = %d, want 255 (v - mean = 0 > -10)", method, got)
		}
		// Neighbors of the bright pixel fall below their raised local mean.
		if got := out.At(2, 3, 0); got != 0 {
			t.Errorf("method %d: neighbor = %d, want 0", method, got)
		}
	}
}

func TestAdaptiveThresholdValues(t *testing.T) {
	src := newGray(5, 5, 30)
	out := AdaptiveThreshold(src, 255, AdaptiveMean, 4, -1)
	for _, v := range out.Data() {
		if v != 0 && v != 255 {
			t.Fatalf("value %d not binary", v)
		}
	}
	// c = -1: 0 > 1 is false everywhere on a flat image.
	if out.At(2, 2, 0) != 0 {
		t.Errorf("flat image with negative constant should be 0")
	}
}
