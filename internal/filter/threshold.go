package filter

import (
	"math"

	"github.com/flowtyone/jovi/internal/image"
	"github.com/flowtyone/jovi/internal/parallel"
)

// ThresholdType selects how values above and below a fixed threshold map.
type ThresholdType uint8

const (
	// ThreshBinary maps v > t to maxVal and everything else to 0.
	ThreshBinary ThresholdType = iota

	// ThreshTrunc clamps v > t down to t.
	ThreshTrunc

	// ThreshToZero zeroes v <= t and keeps the rest.
	ThreshToZero
)

// AdaptiveMethod selects how the local threshold is computed.
type AdaptiveMethod uint8

const (
	// AdaptiveMean uses the unweighted mean of the block.
	AdaptiveMean AdaptiveMethod = iota

	// AdaptiveGaussian uses a Gaussian-weighted mean of the block.
	AdaptiveGaussian
)

// Threshold applies a fixed threshold to every channel of src.
func Threshold(src *image.ImageBuf, thresh, maxVal byte, typ ThresholdType) *image.ImageBuf {
	var lut [256]byte
	for i := range lut {
		v := byte(i)
		switch typ {
		case ThreshTrunc:
			lut[i] = min(v, thresh)
		case ThreshToZero:
			if v > thresh {
				lut[i] = v
			}
		default:
			if v > thresh {
				lut[i] = maxVal
			}
		}
	}
	return ApplyLUT(src, &lut)
}

// AdaptiveThreshold thresholds a single-channel image against the local
// mean of each block x block neighborhood minus c: pixels with
// v - mean > -ceil(c) become maxVal, the rest 0. Block is forced odd and
// at least 3.
func AdaptiveThreshold(gray *image.ImageBuf, maxVal byte, method AdaptiveMethod, block int, c float64) *image.ImageBuf {
	w, h := gray.Bounds()
	dst := image.New(w, h, image.FormatGray8)
	if gray.IsEmpty() || gray.Format() != image.FormatGray8 {
		return dst
	}

	block = max(OddSize(block), 3)
	var mean *image.ImageBuf
	if method == AdaptiveGaussian {
		mean = GaussianBlur(gray, block, block, 0, 0, image.BorderReplicate)
	} else {
		mean = BoxMean(gray, block, image.BorderReplicate)
	}

	delta := int(math.Ceil(c))
	src, m, out := gray.Data(), mean.Data(), dst.Data()
	parallel.For(h, func(start, end int) {
		for i := start * w; i < end*w; i++ {
			if int(src[i])-int(m[i]) > -delta {
				out[i] = maxVal
			}
		}
	})
	return dst
}

// ApplyLUT maps every byte of src through lut into a new buffer.
func ApplyLUT(src *image.ImageBuf, lut *[256]byte) *image.ImageBuf {
	w, h := src.Bounds()
	dst := image.New(w, h, src.Format())
	in, out := src.Data(), dst.Data()
	stride := src.Stride()

	parallel.For(h, func(start, end int) {
		for i := start * stride; i < end*stride; i++ {
			out[i] = lut[in[i]]
		}
	})
	return dst
}
