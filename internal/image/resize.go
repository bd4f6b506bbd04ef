package image

import (
	stdimage "image"

	"github.com/disintegration/gift"
	xdraw "golang.org/x/image/draw"
)

// Resample selects the reconstruction filter used when resizing.
type Resample uint8

const (
	// ResampleNearest picks the nearest source pixel.
	ResampleNearest Resample = iota

	// ResampleLinear interpolates linearly (tent filter).
	ResampleLinear

	// ResampleCubic uses the Catmull-Rom cubic kernel.
	ResampleCubic

	// ResampleLanczos uses a 3-lobe Lanczos window.
	ResampleLanczos

	// ResampleBox averages the covered source pixels (area filter).
	ResampleBox
)

// String returns a string representation of the resample filter.
func (r Resample) String() string {
	switch r {
	case ResampleNearest:
		return "Nearest"
	case ResampleLinear:
		return "Linear"
	case ResampleCubic:
		return "Cubic"
	case ResampleLanczos:
		return "Lanczos"
	case ResampleBox:
		return "Box"
	default:
		return "Unknown"
	}
}

// Resize returns src scaled to exactly width x height.
//
// Nearest, Linear and Cubic run through golang.org/x/image/draw; Lanczos and
// Box run through gift. Resizing to the source size returns a copy.
func Resize(src *ImageBuf, width, height int, r Resample) *ImageBuf {
	width, height = max(width, 0), max(height, 0)
	if width == src.width && height == src.height {
		return src.Clone()
	}
	if src.IsEmpty() || width == 0 || height == 0 {
		return New(width, height, src.format)
	}

	switch r {
	case ResampleLanczos:
		return Filter(src, gift.Resize(width, height, gift.LanczosResampling))
	case ResampleBox:
		return Filter(src, gift.Resize(width, height, gift.BoxResampling))
	}

	in := rawImage(src)
	out := newRawImage(width, height, src.format)
	m := Scale(float64(width)/float64(src.width), float64(height)/float64(src.height))
	interpolator(r).Transform(out, m.Aff3(), in, in.Bounds(), xdraw.Src, nil)
	return fromRawImage(out, src.format)
}

// Filter runs src through a gift filter chain. The output takes the
// chain's bounds; an empty source or chain yields a copy of src.
func Filter(src *ImageBuf, filters ...gift.Filter) *ImageBuf {
	if src.IsEmpty() || len(filters) == 0 {
		return src.Clone()
	}

	g := gift.New(filters...)
	in := rawImage(src)
	b := g.Bounds(in.Bounds())
	out := newRawImage(b.Dx(), b.Dy(), src.format)
	g.Draw(out, in)
	return fromRawImage(out, src.format)
}

// interpolator maps a Resample onto an x/image/draw interpolator.
func interpolator(r Resample) xdraw.Interpolator {
	switch r {
	case ResampleNearest:
		return xdraw.NearestNeighbor
	case ResampleCubic:
		return xdraw.CatmullRom
	default:
		return xdraw.BiLinear
	}
}

// rawImage exposes b as a standard library image without reordering
// channels. BGR8 pixels land in the R,G,B slots of an opaque RGBA image,
// which is sufficient for channel-independent resampling.
func rawImage(b *ImageBuf) xdraw.Image {
	if b.format == FormatGray8 {
		return &stdimage.Gray{Pix: b.data, Stride: b.Stride(), Rect: stdimage.Rect(0, 0, b.width, b.height)}
	}

	out := stdimage.NewRGBA(stdimage.Rect(0, 0, b.width, b.height))
	ch := b.Channels()
	for i, j := 0, 0; i < len(b.data); i, j = i+ch, j+4 {
		copy(out.Pix[j:j+3], b.data[i:i+3])
		out.Pix[j+3] = 255
		if ch == 4 {
			out.Pix[j+3] = b.data[i+3]
		}
	}
	return out
}

// newRawImage allocates the standard library counterpart of format.
func newRawImage(width, height int, format Format) xdraw.Image {
	r := stdimage.Rect(0, 0, width, height)
	if format == FormatGray8 {
		return stdimage.NewGray(r)
	}
	return stdimage.NewRGBA(r)
}

// fromRawImage is the inverse of rawImage.
func fromRawImage(img xdraw.Image, format Format) *ImageBuf {
	bounds := img.Bounds()
	out := New(bounds.Dx(), bounds.Dy(), format)

	switch m := img.(type) {
	case *stdimage.Gray:
		for y := range out.height {
			copy(out.Row(y), m.Pix[y*m.Stride:y*m.Stride+out.width])
		}
	case *stdimage.RGBA:
		ch := out.Channels()
		for y := range out.height {
			src := m.Pix[y*m.Stride : y*m.Stride+out.width*4]
			dst := out.Row(y)
			for x := range out.width {
				copy(dst[x*ch:x*ch+ch], src[x*4:x*4+ch])
			}
		}
	}
	return out
}
