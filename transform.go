package jovi

import intImage "github.com/flowtyone/jovi/internal/image"

// TransformParams holds the parameters of Transform.
//
// The zero value is a pass-through: zero (or negative) sizes are treated
// as 1, and a zero target size keeps the source size.
type TransformParams struct {
	// OffsetX and OffsetY translate by fractions of the width and height.
	OffsetX, OffsetY float64

	// Angle is the clockwise rotation in degrees.
	Angle float64

	// SizeX and SizeY pre-scale each axis.
	SizeX, SizeY float64

	// Edge selects tiling after the translate step.
	Edge EdgeMode

	// Width and Height are the final target size.
	Width, Height int

	// Mode and Resample control the final ScaleFit.
	Mode     ScaleMode
	Resample Resample
}

// sizes returns SizeX and SizeY with non-positive values replaced by 1.
func (tp TransformParams) sizes() (float64, float64) {
	sx, sy := tp.SizeX, tp.SizeY
	if !(sx > 0) {
		sx = 1
	}
	if !(sy > 0) {
		sy = 1
	}
	return sx, sy
}

// Transform runs the fixed geometry pipeline on p:
//
//  1. pre-scale by (SizeX, SizeY) when either differs from 1
//  2. rotate when Angle is non-zero
//  3. translate when either offset is non-zero
//  4. tile with EdgeWrap unless Edge is EdgeModeClip; an axis shrunk by
//     its size factor is tiled by 1/size-1 so the tiles fill the frame
//  5. center-crop (or pad) back to the source size
//  6. ScaleFit to (Width, Height) under Mode
func Transform(p *PixelBuffer, tp TransformParams) *PixelBuffer {
	w, h := p.Bounds()
	tw, th := tp.Width, tp.Height
	if tw <= 0 {
		tw = w
	}
	if th <= 0 {
		th = h
	}
	if p.IsEmpty() {
		return Solid(tw, th, Black)
	}

	sx, sy := tp.sizes()
	img := p
	if sx != 1 || sy != 1 {
		sw := max(1, int(float64(w)*sx))
		sh := max(1, int(float64(h)*sy))
		img = pixels(intImage.Resize(img.buf, sw, sh, tp.Resample))
	}

	if tp.Angle != 0 {
		img = Rotate(img, tp.Angle)
	}

	if tp.OffsetX != 0 || tp.OffsetY != 0 {
		img = Translate(img, tp.OffsetX, tp.OffsetY)
	}

	if tp.Edge != EdgeModeClip {
		var tx, ty float64
		if tp.Edge.wrapsX() && sx < 1 {
			tx = 1/sx - 1
		}
		if tp.Edge.wrapsY() && sy < 1 {
			ty = 1/sy - 1
		}
		img = EdgeWrap(img, tx, ty, tp.Edge)
	}

	Logger().Debug("transform",
		"offset", [2]float64{tp.OffsetX, tp.OffsetY},
		"angle", tp.Angle,
		"size", [2]float64{sx, sy},
		"edge", tp.Edge,
		"target", [2]int{tw, th},
		"mode", tp.Mode,
	)

	img = pixels(cropBuf(img.buf, 0, 0, 1, 1, cropOptions{width: w, height: h, hasTarget: true, pad: true}))
	return ScaleFit(img, tw, th, tp.Mode, tp.Resample)
}
