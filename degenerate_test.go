package jovi

import (
	"fmt"
	"testing"
)

// TestOperatorsDegenerateSizes runs every buffer operator on 0x0 and 1x1
// input and checks the output size.
func TestOperatorsDegenerateSizes(t *testing.T) {
	corners := [4]Point{{X: 0.1, Y: 0.1}, {X: 0.9, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0.8}}
	same := func(w, h int) (int, int) { return w, h }
	fixed := func(fw, fh int) func(int, int) (int, int) {
		return func(int, int) (int, int) { return fw, fh }
	}

	tests := []struct {
		name string
		run  func(p *PixelBuffer) *PixelBuffer
		size func(w, h int) (int, int)
	}{
		// geometry
		{"crop", func(p *PixelBuffer) *PixelBuffer { return Crop(p, 0, 0, 1, 1) }, same},
		{"crop pad", func(p *PixelBuffer) *PixelBuffer {
			return Crop(p, 0, 0, 1, 1, WithTarget(2, 3), WithPad(true), WithFill(White))
		}, fixed(2, 3)},
		{"edge wrap", func(p *PixelBuffer) *PixelBuffer { return EdgeWrap(p, 0.5, 0.5, EdgeModeWrap) }, same},
		{"translate", func(p *PixelBuffer) *PixelBuffer { return Translate(p, 0.25, -0.5) }, same},
		{"rotate", func(p *PixelBuffer) *PixelBuffer { return Rotate(p, 45) }, same},
		{"rotate about", func(p *PixelBuffer) *PixelBuffer { return RotateAbout(p, 30, 0, 1) }, same},
		{"scale fit none", func(p *PixelBuffer) *PixelBuffer { return ScaleFit(p, 4, 3, ScaleModeNone, ResampleLinear) }, same},
		{"scale fit fit", func(p *PixelBuffer) *PixelBuffer { return ScaleFit(p, 4, 3, ScaleModeFit, ResampleLinear) }, fixed(4, 3)},
		{"scale fit crop", func(p *PixelBuffer) *PixelBuffer { return ScaleFit(p, 2, 2, ScaleModeCrop, ResampleLanczos) }, fixed(2, 2)},
		{"extend", func(p *PixelBuffer) *PixelBuffer { return Extend(p, p, AxisHorizontal, false) },
			func(w, h int) (int, int) { return 2 * w, h }},
		{"mirror", func(p *PixelBuffer) *PixelBuffer { return Mirror(p, 0.5, AxisHorizontal, false) }, same},
		{"mirror inverted vertical", func(p *PixelBuffer) *PixelBuffer { return Mirror(p, 0.3, AxisVertical, true) }, same},
		{"transform", func(p *PixelBuffer) *PixelBuffer {
			return Transform(p, TransformParams{OffsetX: 0.1, Angle: 30, SizeX: 0.5, SizeY: 0.5, Edge: EdgeModeWrap})
		}, same},

		// remap
		{"remap sphere", func(p *PixelBuffer) *PixelBuffer { return RemapSphere(p, 1) }, same},
		{"remap polar", RemapPolar, same},
		{"remap fisheye", func(p *PixelBuffer) *PixelBuffer { return RemapFisheye(p, 0.5) }, same},
		{"remap perspective", func(p *PixelBuffer) *PixelBuffer { return RemapPerspective(p, corners) }, same},

		// adjust
		{"hsv", func(p *PixelBuffer) *PixelBuffer { return HSV(p, 0.3, 1.2, 0.8) }, same},
		{"gamma", func(p *PixelBuffer) *PixelBuffer { return Gamma(p, 2) }, same},
		{"contrast", func(p *PixelBuffer) *PixelBuffer { return Contrast(p, 1.5) }, same},
		{"exposure", func(p *PixelBuffer) *PixelBuffer { return Exposure(p, 2) }, same},
		{"invert", func(p *PixelBuffer) *PixelBuffer { return Invert(p, 1) }, same},
		{"levels", func(p *PixelBuffer) *PixelBuffer { return Levels(p.Float(), 0.1, 0.9, 0.5, 1.1).PixelBuffer() }, same},

		// filter
		{"unsharp mask", func(p *PixelBuffer) *PixelBuffer { return UnsharpMask(p, 0, 1, 1, 0) }, same},
		{"edge detect", func(p *PixelBuffer) *PixelBuffer { return EdgeDetect(p, 0.27, 0.6).PixelBuffer() }, same},
		{"emboss", func(p *PixelBuffer) *PixelBuffer { return Emboss(p, 1) }, same},
		{"median", func(p *PixelBuffer) *PixelBuffer { return Median(p, 3) }, same},
		{"threshold", func(p *PixelBuffer) *PixelBuffer {
			return Threshold(p, 0.5, ThresholdBinary, AdaptiveNone, 3, 0)
		}, same},
		{"threshold adaptive mean", func(p *PixelBuffer) *PixelBuffer {
			return Threshold(p, 0.5, ThresholdBinary, AdaptiveMean, 3, 2)
		}, same},
		{"threshold adaptive gaussian", func(p *PixelBuffer) *PixelBuffer {
			return Threshold(p, 0.5, ThresholdBinary, AdaptiveGaussian, 5, 2)
		}, same},

		// compose
		{"lerp", func(p *PixelBuffer) *PixelBuffer {
			return Lerp(p, Invert(p, 1), FullMask(p.Width(), p.Height()), 0.5)
		}, same},
		{"blend", func(p *PixelBuffer) *PixelBuffer {
			return Blend(p, Invert(p, 1), BlendMultiply, 0, 0, WithMask(FullMask(p.Width(), p.Height())))
		}, same},
		{"blend fit", func(p *PixelBuffer) *PixelBuffer {
			return Blend(p, p, BlendScreen, 3, 2, WithMask(FullMask(1, 1)), WithScaleMode(ScaleModeFit))
		}, fixed(3, 2)},

		// channels
		{"split", func(p *PixelBuffer) *PixelBuffer {
			images, _ := Split(p)
			return images[0]
		}, same},
		{"merge", func(p *PixelBuffer) *PixelBuffer {
			_, masks := Split(p)
			return Merge(masks[0], masks[1], masks[2], nil, 0, 0, ScaleModeNone, ResampleLinear)
		}, same},
		{"gray sized", func(p *PixelBuffer) *PixelBuffer { return GraySized(p, 2, 2, ResampleLinear).PixelBuffer() }, fixed(2, 2)},
	}

	for _, sz := range [][2]int{{0, 0}, {1, 1}} {
		src := newPattern(sz[0], sz[1])
		for _, tt := range tests {
			t.Run(fmt.Sprintf("%s/%dx%d", tt.name, sz[0], sz[1]), func(t *testing.T) {
				ww, wh := tt.size(sz[0], sz[1])
				out := tt.run(src)
				if out.Width() != ww || out.Height() != wh {
					t.Errorf("got %dx%d, want %dx%d", out.Width(), out.Height(), ww, wh)
				}
			})
		}
	}
}

func TestShapesDegenerateSizes(t *testing.T) {
	for _, sz := range [][2]int{{0, 0}, {1, 1}, {-2, 3}} {
		w, h := max(sz[0], 0), max(sz[1], 0)
		for name, out := range map[string]*PixelBuffer{
			"ellipse": Ellipse(sz[0], sz[1], 1, 1, White),
			"quad":    Quad(sz[0], sz[1], 1, 1, White),
			"polygon": Polygon(sz[0], sz[1], 1, 5, 0, White),
		} {
			if out.Width() != w || out.Height() != h {
				t.Errorf("%s(%d, %d) = %dx%d, want %dx%d", name, sz[0], sz[1], out.Width(), out.Height(), w, h)
			}
		}
	}
}
