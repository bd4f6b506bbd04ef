// Package color provides the 8-bit color space conversions used by the
// adjustment operators: BGR to HSV with a 180-wide hue range and BGR to
// luma. Conversions use fixed-point lookup tables built once at init.
package color

import (
	"github.com/flowtyone/jovi/internal/image"
	"github.com/flowtyone/jovi/internal/parallel"
)

// HueRange is the exclusive upper bound of 8-bit hue values.
const HueRange = 180

// ToGray converts a BGR8 buffer to Gray8. Gray8 input is copied.
func ToGray(src *image.ImageBuf) *image.ImageBuf {
	if src.Format() == image.FormatGray8 {
		return src.Clone()
	}

	w, h := src.Bounds()
	dst := image.New(w, h, image.FormatGray8)
	ch := src.Channels()
	in, out := src.Data(), dst.Data()

	parallel.For(h, func(start, end int) {
		for i := start * w; i < end*w; i++ {
			p := in[i*ch:]
			out[i] = Gray(p[0], p[1], p[2])
		}
	})
	return dst
}

// GrayToBGR replicates a Gray8 buffer into three channels.
func GrayToBGR(src *image.ImageBuf) *image.ImageBuf {
	if src.Format() != image.FormatGray8 {
		return src.Clone()
	}

	w, h := src.Bounds()
	dst := image.New(w, h, image.FormatBGR8)
	in, out := src.Data(), dst.Data()
	for i, v := range in {
		out[i*3], out[i*3+1], out[i*3+2] = v, v, v
	}
	return dst
}

// MapHSV converts every pixel of a BGR8 buffer to HSV, applies fn, and
// converts back.
func MapHSV(src *image.ImageBuf, fn func(h, s, v byte) (byte, byte, byte)) *image.ImageBuf {
	w, h := src.Bounds()
	dst := image.New(w, h, src.Format())
	if src.Format() != image.FormatBGR8 {
		copy(dst.Data(), src.Data())
		return dst
	}

	in, out := src.Data(), dst.Data()
	parallel.For(h, func(start, end int) {
		for i := start * w * 3; i < end*w*3; i += 3 {
			hh, ss, vv := BGRToHSV(in[i], in[i+1], in[i+2])
			hh, ss, vv = fn(hh, ss, vv)
			out[i], out[i+1], out[i+2] = HSVToBGR(hh, ss, vv)
		}
	})
	return dst
}
