package image

import "math"

// BorderMode defines what a sample outside the image reads.
type BorderMode uint8

const (
	// BorderConstant reads Sampler.Value.
	BorderConstant BorderMode = iota

	// BorderReplicate repeats the edge pixel: aaa|abcd|ddd.
	BorderReplicate

	// BorderWrap tiles the image: bcd|abcd|abc.
	BorderWrap

	// BorderReflect101 mirrors without repeating the edge: dcb|abcd|cba.
	BorderReflect101
)

// String returns a string representation of the border mode.
func (m BorderMode) String() string {
	switch m {
	case BorderConstant:
		return "Constant"
	case BorderReplicate:
		return "Replicate"
	case BorderWrap:
		return "Wrap"
	case BorderReflect101:
		return "Reflect101"
	default:
		return "Unknown"
	}
}

// snapEpsilon pulls coordinates that are integral up to floating error onto
// the pixel grid, so exact rotations (90°, 360°) resample without blur.
const snapEpsilon = 1e-6

// Sampler reads bilinearly interpolated pixels at continuous coordinates.
//
// Coordinates are in pixel units with integer values addressing pixel
// centers: (0, 0) is the center of the top-left pixel.
type Sampler struct {
	Border BorderMode

	// Value is the per-channel color read outside the image under
	// BorderConstant.
	Value [4]byte
}

// BorderIndex maps a possibly out-of-range index into [0, n) under mode.
// It returns false when the index falls outside under BorderConstant.
func BorderIndex(i, n int, mode BorderMode) (int, bool) {
	if i >= 0 && i < n {
		return i, true
	}
	if n <= 0 {
		return 0, false
	}

	switch mode {
	case BorderReplicate:
		return clamp(i, 0, n-1), true
	case BorderWrap:
		return ((i % n) + n) % n, true
	case BorderReflect101:
		if n == 1 {
			return 0, true
		}
		period := 2 * (n - 1)
		i = ((i % period) + period) % period
		if i >= n {
			i = period - i
		}
		return i, true
	default:
		return 0, false
	}
}

// Sample writes the pixel at (x, y) into out, which must hold at least
// img.Channels() bytes.
func (s Sampler) Sample(img *ImageBuf, x, y float64, out []byte) {
	ch := img.Channels()
	if img.IsEmpty() || math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		copy(out[:ch], s.Value[:ch])
		return
	}

	s.sampleBilinear(img, snap(x), snap(y), out[:ch])
}

// fetch returns channel c of the (border-resolved) pixel (x, y).
func (s Sampler) fetch(img *ImageBuf, x, y, c int) float64 {
	xi, okX := BorderIndex(x, img.width, s.Border)
	yi, okY := BorderIndex(y, img.height, s.Border)
	if !okX || !okY {
		return float64(s.Value[c])
	}
	return float64(img.data[(yi*img.width+xi)*img.format.Channels()+c])
}

func (s Sampler) sampleBilinear(img *ImageBuf, x, y float64, out []byte) {
	fx := math.Floor(x)
	fy := math.Floor(y)
	tx := x - fx
	ty := y - fy
	x0, y0 := int(fx), int(fy)

	for c := range out {
		v := lerp2D(
			s.fetch(img, x0, y0, c), s.fetch(img, x0+1, y0, c),
			s.fetch(img, x0, y0+1, c), s.fetch(img, x0+1, y0+1, c),
			tx, ty,
		)
		out[c] = RoundByte(v)
	}
}

// snap rounds v to the nearest integer when it is within snapEpsilon of it.
func snap(v float64) float64 {
	r := math.Round(v)
	if math.Abs(v-r) < snapEpsilon {
		return r
	}
	return v
}

// RoundByte rounds v to the nearest integer and saturates it to [0, 255].
func RoundByte(v float64) byte {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v + 0.5)
}

// clamp clamps an integer value to [minVal, maxVal].
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// lerp2D performs bilinear interpolation on a 2x2 grid.
func lerp2D(v00, v10, v01, v11, tx, ty float64) float64 {
	v0 := lerp(v00, v10, tx)
	v1 := lerp(v01, v11, tx)
	return lerp(v0, v1, ty)
}
