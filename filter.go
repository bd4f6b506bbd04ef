package jovi

import (
	"github.com/disintegration/gift"

	intColor "github.com/flowtyone/jovi/internal/color"
	"github.com/flowtyone/jovi/internal/filter"
	intImage "github.com/flowtyone/jovi/internal/image"
	"github.com/flowtyone/jovi/internal/parallel"
)

// defaultSharpenSize is the blur kernel used by UnsharpMask when none is
// given.
const defaultSharpenSize = 5

// UnsharpMask sharpens p by subtracting a Gaussian-blurred copy:
// (1+amount)*c - amount*blur, clipped and rounded. kernelSize <= 0 selects
// 5; even sizes are rounded up. With threshold > 0, pixels where
// |c - blur| < threshold keep their source value.
func UnsharpMask(p *PixelBuffer, kernelSize int, sigma, amount, threshold float64) *PixelBuffer {
	if kernelSize <= 0 {
		kernelSize = defaultSharpenSize
	}
	kernelSize = filter.OddSize(kernelSize)
	Logger().Debug("unsharp mask", "size", kernelSize, "sigma", sigma, "amount", amount, "threshold", threshold)

	blurred := filter.GaussianBlur(p.buf, kernelSize, kernelSize, sigma, sigma, intImage.BorderReflect101)
	w, h := p.Bounds()
	out := intImage.New(w, h, intImage.FormatBGR8)
	src, bl, dst := p.buf.Data(), blurred.Data(), out.Data()
	stride := p.buf.Stride()

	parallel.For(h, func(start, end int) {
		for i := start * stride; i < end*stride; i++ {
			c, b := float64(src[i]), float64(bl[i])
			if threshold > 0 && abs(c-b) < threshold {
				dst[i] = src[i]
				continue
			}
			dst[i] = intImage.RoundByte((amount+1)*c - amount*b)
		}
	})
	return pixels(out)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// EdgeDetect finds edges with the Canny detector. p is converted to gray,
// smoothed with a 3x5 Gaussian (sigma 0.5), and traced with hysteresis
// thresholds low*255 and high*255. Edges are 255 in the returned mask.
func EdgeDetect(p *PixelBuffer, low, high float64) *Mask {
	lo, hi := float64(int(low*255)), float64(int(high*255))
	Logger().Debug("edge detect", "low", lo, "high", hi)

	gray := intColor.ToGray(p.buf)
	gray = filter.GaussianBlur(gray, 3, 5, 0.5, 0.5, intImage.BorderReflect101)
	return &Mask{buf: filter.Canny(gray, lo, hi)}
}

// Emboss convolves p with the kernel
//
//	-2 -1  0
//	-1  1  1
//	 0  1  2
//
// scaled by amount.
func Emboss(p *PixelBuffer, amount float64) *PixelBuffer {
	Logger().Debug("emboss", "amount", amount)
	a := float32(amount)
	kernel := []float32{
		-2 * a, -1 * a, 0,
		-1 * a, 1 * a, 1 * a,
		0, 1 * a, 2 * a,
	}
	return pixels(intImage.Filter(p.buf, gift.Convolution(kernel, false, false, false, 0)))
}

// Median replaces every pixel with the per-channel median of its
// size x size neighborhood. size is forced odd and at least 3.
func Median(p *PixelBuffer, size int) *PixelBuffer {
	size = max(filter.OddSize(size), 3)
	Logger().Debug("median", "size", size)
	return pixels(intImage.Filter(p.buf, gift.Median(size, false)))
}

// Threshold binarizes or clamps p.
//
// With adaptive set to AdaptiveNone, every channel is compared against
// int(cutoff*255) under mode. Otherwise the fixed path is skipped: the
// gray image is thresholded against its local block x block mean (or
// Gaussian-weighted mean) minus constant, the resulting 0/255 mask is
// multiplied into the gray image with saturation, and the result is
// expanded back to three channels.
func Threshold(p *PixelBuffer, cutoff float64, mode ThresholdMode, adaptive AdaptiveMode, block int, constant float64) *PixelBuffer {
	Logger().Debug("threshold", "cutoff", cutoff, "mode", mode, "adaptive", adaptive, "block", block, "constant", constant)

	if adaptive != AdaptiveNone {
		method := filter.AdaptiveMean
		if adaptive == AdaptiveGaussian {
			method = filter.AdaptiveGaussian
		}
		gray := intColor.ToGray(p.buf)
		mask := filter.AdaptiveThreshold(gray, 255, method, block, constant)

		g, m := gray.Data(), mask.Data()
		for i := range g {
			g[i] = byte(min(int(g[i])*int(m[i]), 255))
		}
		return pixels(gray)
	}

	t := int(cutoff * 255)
	var thresh byte
	switch {
	case t < 0:
		thresh = 0
	case t > 255:
		thresh = 255
	default:
		thresh = byte(t)
	}

	typ := filter.ThreshBinary
	switch mode {
	case ThresholdTrunc:
		typ = filter.ThreshTrunc
	case ThresholdToZero:
		typ = filter.ThreshToZero
	}
	return pixels(filter.Threshold(p.buf, thresh, 255, typ))
}

// SignKernel returns a stride x stride antisymmetric kernel: 1 above the
// diagonal, -1 below it and 0 on it.
func SignKernel(stride int) [][]int8 {
	stride = max(stride, 0)
	k := make([][]int8, stride)
	for i := range k {
		k[i] = make([]int8, stride)
		for j := range k[i] {
			switch {
			case i < j:
				k[i][j] = 1
			case i > j:
				k[i][j] = -1
			}
		}
	}
	return k
}
