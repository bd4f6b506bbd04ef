package filter

import (
	"github.com/flowtyone/jovi/internal/image"
	"github.com/flowtyone/jovi/internal/parallel"
)

// ColorMatrix is a 3x4 affine transform over the three color channels:
//
//	[c0']   [m0 m1  m2  m3 ]   [c0]
//	[c1'] = [m4 m5  m6  m7 ] * [c1]
//	[c2']   [m8 m9  m10 m11]   [c2]
//	                           [1 ]
//
// The fourth column is the offset. Values are in [0, 255] during the
// transform and are rounded and clamped afterwards. The matrix is
// channel-order agnostic as long as rows and columns follow the buffer.
type ColorMatrix [12]float32

// ScaleMatrix multiplies every channel by factor.
func ScaleMatrix(factor float32) ColorMatrix {
	return ColorMatrix{
		factor, 0, 0, 0,
		0, factor, 0, 0,
		0, 0, factor, 0,
	}
}

// ContrastMatrix maps c to (c - pivot) * factor + pivot.
func ContrastMatrix(factor, pivot float32) ColorMatrix {
	offset := pivot * (1 - factor)
	return ColorMatrix{
		factor, 0, 0, offset,
		0, factor, 0, offset,
		0, 0, factor, offset,
	}
}

// InvertMatrix mixes c with 255 - c by amount: c*(1-amount) + (255-c)*amount.
func InvertMatrix(amount float32) ColorMatrix {
	d := 1 - 2*amount
	o := 255 * amount
	return ColorMatrix{
		d, 0, 0, o,
		0, d, 0, o,
		0, 0, d, o,
	}
}

// Apply transforms src into a new buffer, truncating each result toward
// zero before clamping. Single-channel buffers use the first row's
// diagonal and offset.
func (m *ColorMatrix) Apply(src *image.ImageBuf) *image.ImageBuf {
	return m.apply(src, truncUint8)
}

// ApplyRounded is Apply with results rounded to the nearest integer.
func (m *ColorMatrix) ApplyRounded(src *image.ImageBuf) *image.ImageBuf {
	return m.apply(src, roundUint8)
}

func (m *ColorMatrix) apply(src *image.ImageBuf, conv func(float32) uint8) *image.ImageBuf {
	w, h := src.Bounds()
	dst := image.New(w, h, src.Format())
	ch := src.Channels()
	in, out := src.Data(), dst.Data()
	stride := src.Stride()

	parallel.For(h, func(start, end int) {
		for i := start * stride; i < end*stride; i += ch {
			if ch < 3 {
				out[i] = conv(m[0]*float32(in[i]) + m[3])
				continue
			}
			c0, c1, c2 := float32(in[i]), float32(in[i+1]), float32(in[i+2])
			out[i] = conv(m[0]*c0 + m[1]*c1 + m[2]*c2 + m[3])
			out[i+1] = conv(m[4]*c0 + m[5]*c1 + m[6]*c2 + m[7])
			out[i+2] = conv(m[8]*c0 + m[9]*c1 + m[10]*c2 + m[11])
		}
	})
	return dst
}

// truncUint8 truncates v and clamps it to [0, 255].
func truncUint8(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// roundUint8 rounds v and clamps it to [0, 255].
func roundUint8(v float32) uint8 {
	return truncUint8(v + 0.5)
}
