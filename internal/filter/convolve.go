package filter

import (
	"math"
	"sync"

	"github.com/flowtyone/jovi/internal/image"
	"github.com/flowtyone/jovi/internal/parallel"
)

// Separable convolves every channel of src with kx along rows, then ky
// along columns, and rounds the result back to 8 bits. Samples outside
// the image follow border; BorderConstant reads zero.
func Separable(src *image.ImageBuf, kx, ky []float32, border image.BorderMode) *image.ImageBuf {
	w, h := src.Bounds()
	ch := src.Channels()
	dst := image.New(w, h, src.Format())
	if src.IsEmpty() {
		return dst
	}

	temp := getTempBuffer(w * h * ch)
	defer putTempBuffer(temp)

	data := src.Data()
	hx := len(kx) / 2
	parallel.For(h, func(start, end int) {
		for y := start; y < end; y++ {
			row := data[y*w*ch : (y+1)*w*ch]
			out := temp[y*w*ch : (y+1)*w*ch]
			for x := range w {
				for c := range ch {
					var sum float32
					for k, wt := range kx {
						sx, ok := image.BorderIndex(x+k-hx, w, border)
						if ok {
							sum += float32(row[sx*ch+c]) * wt
						}
					}
					out[x*ch+c] = sum
				}
			}
		}
	})

	hy := len(ky) / 2
	parallel.For(h, func(start, end int) {
		for y := start; y < end; y++ {
			out := dst.Row(y)
			for x := range w {
				for c := range ch {
					var sum float32
					for k, wt := range ky {
						sy, ok := image.BorderIndex(y+k-hy, h, border)
						if ok {
							sum += temp[(sy*w+x)*ch+c] * wt
						}
					}
					out[x*ch+c] = image.RoundByte(float64(sum))
				}
			}
		}
	})

	return dst
}

// GaussianBlur blurs src with a kw x kh Gaussian. A non-positive sigmaY
// reuses sigmaX; a non-positive size is derived from the sigma.
func GaussianBlur(src *image.ImageBuf, kw, kh int, sigmaX, sigmaY float64, border image.BorderMode) *image.ImageBuf {
	if sigmaY <= 0 {
		sigmaY = sigmaX
	}
	if kw <= 0 {
		kw = sizeForSigma(sigmaX)
	}
	if kh <= 0 {
		kh = sizeForSigma(sigmaY)
	}
	return Separable(src, CachedGaussianKernel(kw, sigmaX), CachedGaussianKernel(kh, sigmaY), border)
}

// BoxMean returns the size x size local mean of src.
func BoxMean(src *image.ImageBuf, size int, border image.BorderMode) *image.ImageBuf {
	k := BoxKernel(size)
	return Separable(src, k, k, border)
}

// sizeForSigma returns the odd kernel size covering +-3 sigma.
func sizeForSigma(sigma float64) int {
	if sigma <= 0 {
		return 1
	}
	return int(math.Round(sigma*6+1)) | 1
}

// floatBuffer wraps a reusable float32 scratch slice.
type floatBuffer struct {
	data []float32
}

var tempBufferPool = sync.Pool{
	New: func() any {
		return &floatBuffer{data: make([]float32, 0, 512*512*3)}
	},
}

// getTempBuffer returns a scratch slice of exactly size elements.
// Contents are unspecified; callers overwrite every element.
func getTempBuffer(size int) []float32 {
	wrapper := tempBufferPool.Get().(*floatBuffer)
	if cap(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}
	return wrapper.data[:size]
}

// putTempBuffer returns a scratch slice to the pool.
func putTempBuffer(buf []float32) {
	if cap(buf) <= 4096*4096*3 {
		tempBufferPool.Put(&floatBuffer{data: buf[:0]})
	}
}
