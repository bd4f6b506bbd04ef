package jovi

import (
	"math"

	intImage "github.com/flowtyone/jovi/internal/image"
)

// linearBlack samples bilinearly and reads black outside the source.
var linearBlack = intImage.Sampler{Border: intImage.BorderConstant}

// clampUnit clips v to [0, 1]. NaN becomes 0.
func clampUnit(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	return min(v, 1)
}

// Crop cuts a window out of p.
//
// The box fractions are clipped to [0, 1] and swapped when inverted. The
// window is centered on the buffer with half-extents width*(right-left)
// and height*(bottom-top), clipped to the buffer. With WithPad and a
// target size that differs from the source, the window is centered on a
// solid canvas of the target size.
func Crop(p *PixelBuffer, left, top, right, bottom float64, opts ...CropOption) *PixelBuffer {
	var o cropOptions
	for _, opt := range opts {
		opt(&o)
	}
	return pixels(cropBuf(p.buf, left, top, right, bottom, o))
}

func cropBuf(src *intImage.ImageBuf, left, top, right, bottom float64, o cropOptions) *intImage.ImageBuf {
	w, h := src.Bounds()
	left, top = clampUnit(left), clampUnit(top)
	right, bottom = clampUnit(right), clampUnit(bottom)
	if left > right {
		left, right = right, left
	}
	if top > bottom {
		top, bottom = bottom, top
	}

	midX, midY := float64(w/2), float64(h/2)
	cw2 := float64(w) * (right - left)
	ch2 := float64(h) * (bottom - top)
	x0, x1 := max(0, int(midX-cw2)), min(int(midX+cw2), w)
	y0, y1 := max(0, int(midY-ch2)), min(int(midY+ch2), h)
	crop := src.Region(x0, y0, x1, y1)

	tw, th := w, h
	if o.hasTarget {
		tw, th = o.width, o.height
	}
	Logger().Debug("crop", "box", [4]int{x0, y0, x1, y1}, "target", [2]int{tw, th}, "pad", o.pad)

	if (tw == w && th == h) || !o.pad {
		return crop
	}
	return padCenter(crop, tw, th, o.fill)
}

// padCenter centers src on a width x height canvas filled with fill,
// clipping whatever does not fit.
func padCenter(src *intImage.ImageBuf, width, height int, fill Color) *intImage.ImageBuf {
	dst := intImage.New(width, height, src.Format())
	v := fill.fillFor(src.Format())
	dst.Fill(v[:]...)
	dst.Paste(src, width/2-src.Width()/2, height/2-src.Height()/2)
	return dst
}

// EdgeWrap tiles p outward by wrapping its content around a border of
// tileX*width/2 columns on each side and tileY*height/2 rows on top and
// bottom. edge selects the axes: WRAP both, WRAPX columns only, WRAPY rows
// only, CLIP none.
func EdgeWrap(p *PixelBuffer, tileX, tileY float64, edge EdgeMode) *PixelBuffer {
	w, h := p.Bounds()
	var tx, ty int
	if edge.wrapsX() {
		tx = int(tileX * float64(w) * 0.5)
	}
	if edge.wrapsY() {
		ty = int(tileY * float64(h) * 0.5)
	}
	Logger().Debug("edge wrap", "size", [2]int{w, h}, "tile", [2]int{tx, ty})
	return pixels(intImage.CopyMakeBorder(p.buf, ty, ty, tx, tx, intImage.BorderWrap, [4]byte{}))
}

// Translate shifts p by offsetX*width and offsetY*height pixels. The output
// keeps the source size; content moved out of frame is lost and uncovered
// areas are black.
func Translate(p *PixelBuffer, offsetX, offsetY float64) *PixelBuffer {
	w, h := p.Bounds()
	Logger().Debug("translate", "offset", [2]float64{offsetX, offsetY})
	m := intImage.Translate(offsetX*float64(w), offsetY*float64(h))
	return pixels(intImage.WarpAffine(p.buf, m, w, h, linearBlack))
}

// Rotate turns p clockwise by angle degrees about its center.
func Rotate(p *PixelBuffer, angle float64) *PixelBuffer {
	return RotateAbout(p, angle, 0.5, 0.5)
}

// RotateAbout turns p clockwise by angle degrees about a fractional center.
// The center (cx, cy) maps to pixel (cx*(width-1), cy*(height-1)). The
// output keeps the source size; uncovered areas are black.
func RotateAbout(p *PixelBuffer, angle, cx, cy float64) *PixelBuffer {
	w, h := p.Bounds()
	Logger().Debug("rotate", "angle", angle, "center", [2]float64{cx, cy})
	m := intImage.RotateAt(angle*math.Pi/180, cx*float64(w-1), cy*float64(h-1))
	return pixels(intImage.WarpAffine(p.buf, m, w, h, linearBlack))
}

// ScaleFit resizes p toward width x height under mode.
//
// ScaleModeAspect scales both axes by max(width, height) / max(srcW, srcH);
// ScaleModeCrop center-crops or pads to the exact size; ScaleModeFit
// stretches to the exact size; ScaleModeNone returns a copy of p.
func ScaleFit(p *PixelBuffer, width, height int, mode ScaleMode, r Resample) *PixelBuffer {
	return pixels(scaleFitBuf(p.buf, width, height, mode, r))
}

func scaleFitBuf(src *intImage.ImageBuf, width, height int, mode ScaleMode, r Resample) *intImage.ImageBuf {
	Logger().Debug("scale fit", "mode", mode, "target", [2]int{width, height}, "resample", r)

	switch mode {
	case ScaleModeAspect:
		w, h := src.Bounds()
		if w == 0 && h == 0 {
			return src.Clone()
		}
		s := float64(max(width, height)) / float64(max(w, h))
		return intImage.Resize(src, intImage.ScaledSize(w, s), intImage.ScaledSize(h, s), r)
	case ScaleModeCrop:
		return cropBuf(src, 0, 0, 1, 1, cropOptions{width: max(width, 0), height: max(height, 0), hasTarget: true, pad: true})
	case ScaleModeFit:
		return intImage.Resize(src, width, height, r)
	default:
		return src.Clone()
	}
}

// Extend concatenates a and b side by side (AxisHorizontal) or stacked
// (AxisVertical). flip puts b first. When the cross-axis sizes differ, the
// second operand is stretched to match the first.
func Extend(a, b *PixelBuffer, axis Axis, flip bool) *PixelBuffer {
	if flip {
		a, b = b, a
	}
	aw, ah := a.Bounds()
	bw, bh := b.Bounds()
	Logger().Debug("extend", "axis", axis, "flip", flip)

	second := b.buf
	if axis == AxisHorizontal {
		if bh != ah {
			second = intImage.Resize(second, bw, ah, ResampleLinear)
		}
		out := intImage.New(aw+bw, ah, intImage.FormatBGR8)
		out.Paste(a.buf, 0, 0)
		out.Paste(second, aw, 0)
		return pixels(out)
	}

	if bw != aw {
		second = intImage.Resize(second, aw, bh, ResampleLinear)
	}
	out := intImage.New(aw, ah+bh, intImage.FormatBGR8)
	out.Paste(a.buf, 0, 0)
	out.Paste(second, 0, ah)
	return pixels(out)
}

// Mirror keeps p up to a split point and reflects it past the split.
//
// split is clipped to [0, 1] and measured along the axis. Past the split
// the flipped image is copied for min(split, 1-split) of the length; any
// remainder stays black, which leaves a seam for splits near 0 or 1. With
// invert the roles of the image and its flip are swapped and the result is
// flipped back.
func Mirror(p *PixelBuffer, split float64, axis Axis, invert bool) *PixelBuffer {
	horizontal := axis == AxisHorizontal
	img := p.buf
	flip := img.Flip(horizontal)

	split = clampUnit(split)
	if invert {
		split = 1 - split
		img, flip = flip, img
	}

	w, h := p.Bounds()
	scalar := h
	if horizontal {
		scalar = w
	}
	slice1 := int(split * float64(scalar))
	slice1w := scalar - slice1
	slice2w := min(scalar-slice1w, slice1w)
	Logger().Debug("mirror", "axis", axis, "split", slice1, "span", slice2w, "invert", invert)

	out := intImage.New(w, h, intImage.FormatBGR8)
	if horizontal {
		out.Paste(img.Region(0, 0, slice1, h), 0, 0)
		out.Paste(flip.Region(slice1w, 0, slice1w+slice2w, h), slice1, 0)
	} else {
		out.Paste(img.Region(0, 0, w, slice1), 0, 0)
		out.Paste(flip.Region(0, slice1w, w, slice1w+slice2w), 0, slice1)
	}

	if invert {
		out = out.Flip(horizontal)
	}
	return pixels(out)
}
