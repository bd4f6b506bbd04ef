package image

import (
	"math"

	"github.com/flowtyone/jovi/internal/parallel"
)

// WarpAffine resamples src through m into a new width x height buffer.
//
// m maps source coordinates to destination coordinates; every destination
// pixel reads the source at the inverse-mapped position. A singular m yields
// a buffer filled with the sampler's border value.
func WarpAffine(src *ImageBuf, m Affine, width, height int, s Sampler) *ImageBuf {
	if m.IsIdentity() && width == src.width && height == src.height {
		return src.Clone()
	}
	dst := New(width, height, src.format)
	inv, ok := m.Invert()
	if !ok {
		dst.Fill(s.Value[:]...)
		return dst
	}

	ch := src.Channels()
	parallel.For(height, func(start, end int) {
		for y := start; y < end; y++ {
			row := dst.Row(y)
			for x := range width {
				sx, sy := inv.TransformPoint(float64(x), float64(y))
				s.Sample(src, sx, sy, row[x*ch:(x+1)*ch])
			}
		}
	})
	return dst
}

// WarpPerspective resamples src through the projective transform h into a
// new width x height buffer. h maps source to destination coordinates.
func WarpPerspective(src *ImageBuf, h Homography, width, height int, s Sampler) *ImageBuf {
	dst := New(width, height, src.format)
	inv, ok := h.Invert()
	if !ok {
		dst.Fill(s.Value[:]...)
		return dst
	}

	ch := src.Channels()
	parallel.For(height, func(start, end int) {
		for y := start; y < end; y++ {
			row := dst.Row(y)
			for x := range width {
				px := row[x*ch : (x+1)*ch]
				sx, sy, ok := inv.TransformPoint(float64(x), float64(y))
				if !ok {
					copy(px, s.Value[:ch])
					continue
				}
				s.Sample(src, sx, sy, px)
			}
		}
	})
	return dst
}

// Remap samples src at per-pixel coordinates: destination pixel (x, y)
// reads src at (mapX[i], mapY[i]) with i = y*width + x. The output takes
// the field's dimensions; fields shorter than width*height leave the
// remaining pixels at the border value.
func Remap(src *ImageBuf, mapX, mapY []float32, width, height int, s Sampler) *ImageBuf {
	dst := New(width, height, src.format)
	ch := src.Channels()
	n := min(len(mapX), len(mapY))

	parallel.For(height, func(start, end int) {
		for y := start; y < end; y++ {
			row := dst.Row(y)
			for x := range width {
				px := row[x*ch : (x+1)*ch]
				i := y*width + x
				if i >= n {
					copy(px, s.Value[:ch])
					continue
				}
				s.Sample(src, float64(mapX[i]), float64(mapY[i]), px)
			}
		}
	})
	return dst
}

// CopyMakeBorder surrounds src with top/bottom/left/right extra pixels whose
// content is taken from src under the given border mode.
func CopyMakeBorder(src *ImageBuf, top, bottom, left, right int, mode BorderMode, value [4]byte) *ImageBuf {
	top, bottom, left, right = max(top, 0), max(bottom, 0), max(left, 0), max(right, 0)
	w := src.width + left + right
	h := src.height + top + bottom
	dst := New(w, h, src.format)
	if src.IsEmpty() {
		dst.Fill(value[:]...)
		return dst
	}

	ch := src.Channels()
	for y := range h {
		row := dst.Row(y)
		sy, okY := BorderIndex(y-top, src.height, mode)
		for x := range w {
			px := row[x*ch : (x+1)*ch]
			sx, okX := BorderIndex(x-left, src.width, mode)
			if !okX || !okY {
				copy(px, value[:ch])
				continue
			}
			copy(px, src.Pixel(sx, sy))
		}
	}
	return dst
}

// ScaledSize returns round(v * f) clamped to at least 0.
func ScaledSize(v int, f float64) int {
	return max(0, int(math.Round(float64(v)*f)))
}
