package filter

import (
	"math"

	"github.com/flowtyone/jovi/internal/cache"
)

// smallGaussian holds the fixed binomial kernels used for sizes up to 7
// when no sigma is given.
var smallGaussian = map[int][]float32{
	1: {1},
	3: {0.25, 0.5, 0.25},
	5: {0.0625, 0.25, 0.375, 0.25, 0.0625},
	7: {0.03125, 0.109375, 0.21875, 0.28125, 0.21875, 0.109375, 0.03125},
}

// GaussianKernel generates a normalized 1D Gaussian kernel of the given
// size. Even sizes are bumped to the next odd size; sizes below 1 become 1.
//
// For sigma <= 0 the sigma is derived from the size as
// 0.3*((size-1)*0.5 - 1) + 0.8, and sizes up to 7 use fixed binomial
// weights instead.
func GaussianKernel(size int, sigma float64) []float32 {
	size = OddSize(size)
	if sigma <= 0 {
		if k, ok := smallGaussian[size]; ok {
			return append([]float32(nil), k...)
		}
		sigma = SigmaForSize(size)
	}

	half := size / 2
	kernel := make([]float32, size)
	twoSigmaSq := 2 * sigma * sigma
	sum := float64(0)

	for i := range size {
		x := float64(i - half)
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(val)
		sum += val
	}

	invSum := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= invSum
	}
	return kernel
}

// SigmaForSize returns the sigma implied by a kernel size.
func SigmaForSize(size int) float64 {
	return 0.3*(float64(size-1)*0.5-1) + 0.8
}

// BoxKernel generates a 1D uniform kernel of the given (odd) size.
func BoxKernel(size int) []float32 {
	size = OddSize(size)
	kernel := make([]float32, size)
	val := 1 / float32(size)
	for i := range kernel {
		kernel[i] = val
	}
	return kernel
}

// OddSize returns size rounded up to an odd number, at least 1.
func OddSize(size int) int {
	if size < 1 {
		return 1
	}
	if size%2 == 0 {
		return size + 1
	}
	return size
}

// kernelKey identifies a cached kernel. Sigma is quantized to 1e-4.
type kernelKey struct {
	size  int
	sigma int64
}

// maxCachedKernels bounds the process-wide kernel cache.
const maxCachedKernels = 64

var kernels = cache.New[kernelKey, []float32](maxCachedKernels)

// CachedGaussianKernel returns a shared Gaussian kernel for (size, sigma).
// The returned slice must not be modified.
func CachedGaussianKernel(size int, sigma float64) []float32 {
	key := kernelKey{size: OddSize(size), sigma: int64(math.Round(max(sigma, 0) * 1e4))}
	return kernels.GetOrCreate(key, func() []float32 {
		return GaussianKernel(size, sigma)
	})
}

// ResetKernelCache drops every cached kernel and returns how many were
// held.
func ResetKernelCache() int {
	n := kernels.Len()
	kernels.Clear()
	return n
}
