package jovi

import (
	intColor "github.com/flowtyone/jovi/internal/color"
	intImage "github.com/flowtyone/jovi/internal/image"
)

// Split isolates the channels of p. images holds, in R, G, B order, a
// buffer keeping only that channel; masks holds the channel values.
func Split(p *PixelBuffer) (images [3]*PixelBuffer, masks [3]*Mask) {
	w, h := p.Bounds()
	src := p.buf.Data()

	// Buffer channel index of R, G and B.
	for k, c := range [3]int{2, 1, 0} {
		img := intImage.New(w, h, intImage.FormatBGR8)
		m := intImage.New(w, h, intImage.FormatGray8)
		out, mv := img.Data(), m.Data()
		for i := range w * h {
			v := src[i*3+c]
			out[i*3+c] = v
			mv[i] = v
		}
		images[k] = pixels(img)
		masks[k] = &Mask{buf: m}
	}
	return images, masks
}

// Merge assembles a buffer from per-channel masks.
//
// The working size is the largest width and height among width x height
// and every non-nil channel, including a. Missing channels are black and
// present ones are stretched to the working size with r. The alpha channel
// only takes part in sizing since PixelBuffer carries no alpha. The merged
// buffer is finally passed through ScaleFit(width, height, mode, r).
func Merge(red, green, blue, alpha *Mask, width, height int, mode ScaleMode, r Resample) *PixelBuffer {
	w, h := max(width, 0), max(height, 0)
	for _, m := range []*Mask{red, green, blue, alpha} {
		if m != nil {
			w = max(w, m.Width())
			h = max(h, m.Height())
		}
	}
	Logger().Debug("merge", "size", [2]int{w, h}, "mode", mode)

	channel := func(m *Mask) []byte {
		if m == nil {
			return make([]byte, w*h)
		}
		return graySized(m.buf, w, h, r).Data()
	}
	rc, gc, bc := channel(red), channel(green), channel(blue)

	out := intImage.New(w, h, intImage.FormatBGR8)
	data := out.Data()
	for i := range w * h {
		data[i*3], data[i*3+1], data[i*3+2] = bc[i], gc[i], rc[i]
	}
	return pixels(scaleFitBuf(out, width, height, mode, r))
}

// GraySized converts p to gray and stretches it to exactly width x height.
func GraySized(p *PixelBuffer, width, height int, r Resample) *Mask {
	return &Mask{buf: graySized(p.buf, width, height, r)}
}

func graySized(src *intImage.ImageBuf, width, height int, r Resample) *intImage.ImageBuf {
	if src.Format() != intImage.FormatGray8 {
		src = intColor.ToGray(src)
	}
	if src.Width() != width || src.Height() != height {
		src = intImage.Resize(src, width, height, r)
	}
	return src
}
