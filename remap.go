package jovi

import (
	"math"

	intImage "github.com/flowtyone/jovi/internal/image"
)

// Point is a 2D point. Perspective corners use fractional coordinates.
type Point = intImage.Point

// Homography is a 3x3 projective matrix in row-major order.
type Homography = intImage.Homography

// linspace returns the i-th of n evenly spaced samples over [start, stop].
func linspace(start, stop float64, n, i int) float64 {
	if n <= 1 {
		return start
	}
	return start + (stop-start)*float64(i)/float64(n-1)
}

// CoordSphere builds a spherical coordinate field. Columns sweep theta
// over [0, 2pi] and rows sweep phi over [0, pi]; each pixel samples
// (radius*sin(phi)*cos(theta), radius*sin(phi)*sin(theta)) mapped from
// [-1, 1] onto the pixel range.
func CoordSphere(width, height int, radius float64) (mapX, mapY []float32) {
	width, height = max(width, 0), max(height, 0)
	mapX = make([]float32, width*height)
	mapY = make([]float32, width*height)

	for y := range height {
		sinPhi := math.Sin(linspace(0, math.Pi, height, y))
		for x := range width {
			sinT, cosT := math.Sincos(linspace(0, 2*math.Pi, width, x))
			i := y*width + x
			mapX[i] = float32((radius*sinPhi*cosT + 1) * float64(width-1) / 2)
			mapY[i] = float32((radius*sinPhi*sinT + 1) * float64(height-1) / 2)
		}
	}
	return mapX, mapY
}

// CoordPolar returns the distance (rho) and angle (phi, radians) of every
// pixel from the buffer center (width/2, height/2).
//
// The result is a coordinate field rather than a sampling map: RemapPolar
// feeds it to Remap as-is, which samples the source at (rho, phi).
func CoordPolar(width, height int) (rho, phi []float32) {
	width, height = max(width, 0), max(height, 0)
	rho = make([]float32, width*height)
	phi = make([]float32, width*height)
	cx, cy := float64(width)/2, float64(height)/2

	for y := range height {
		dy := float64(y) - cy
		for x := range width {
			dx := float64(x) - cx
			i := y*width + x
			rho[i] = float32(math.Hypot(dx, dy))
			phi[i] = float32(math.Atan2(dy, dx))
		}
	}
	return rho, phi
}

// CoordFisheye builds a barrel/pincushion field. Pixel coordinates are
// normalized to [-1, 1], divided by 1 - distortion*r^2, and mapped back.
// Where the denominator vanishes the coordinate passes through.
func CoordFisheye(width, height int, distortion float64) (mapX, mapY []float32) {
	width, height = max(width, 0), max(height, 0)
	mapX = make([]float32, width*height)
	mapY = make([]float32, width*height)

	for y := range height {
		yn := 2*linspace(0, 1, height, y) - 1
		for x := range width {
			xn := 2*linspace(0, 1, width, x) - 1
			xu, yu := xn, yn
			if d := 1 - distortion*(xn*xn+yn*yn); math.Abs(d) > 1e-12 {
				xu, yu = xn/d, yn/d
			}
			i := y*width + x
			mapX[i] = float32((xu + 1) * float64(width) / 2)
			mapY[i] = float32((yu + 1) * float64(height) / 2)
		}
	}
	return mapX, mapY
}

// CoordPerspective returns the homography taking the buffer rectangle
// (0,0) (w,0) (w,h) (0,h) onto corners, given as fractions of the size in
// the same order. Degenerate corners yield the identity.
func CoordPerspective(width, height int, corners [4]Point) Homography {
	w, h := float64(width), float64(height)
	src := [4]Point{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}}
	var dst [4]Point
	for i, c := range corners {
		dst[i] = Point{X: c.X * w, Y: c.Y * h}
	}

	m, ok := intImage.PerspectiveTransform(src, dst)
	if !ok {
		return intImage.IdentityHomography()
	}
	return m
}

// Remap samples p through a coordinate field the size of p: output pixel
// (x, y) reads p at (mapX[i], mapY[i]), i = y*width + x, with bilinear
// interpolation and black outside.
func Remap(p *PixelBuffer, mapX, mapY []float32) *PixelBuffer {
	w, h := p.Bounds()
	return pixels(intImage.Remap(p.buf, mapX, mapY, w, h, linearBlack))
}

// WarpPerspective applies m to p directly. The output keeps the source
// size; uncovered areas are black.
func WarpPerspective(p *PixelBuffer, m Homography) *PixelBuffer {
	w, h := p.Bounds()
	return pixels(intImage.WarpPerspective(p.buf, m, w, h, linearBlack))
}

// RemapSphere wraps p around a sphere of the given radius.
func RemapSphere(p *PixelBuffer, radius float64) *PixelBuffer {
	w, h := p.Bounds()
	Logger().Debug("remap sphere", "radius", radius)
	mapX, mapY := CoordSphere(w, h, radius)
	return Remap(p, mapX, mapY)
}

// RemapPolar samples p at the polar field of its own size.
func RemapPolar(p *PixelBuffer) *PixelBuffer {
	w, h := p.Bounds()
	Logger().Debug("remap polar")
	rho, phi := CoordPolar(w, h)
	return Remap(p, rho, phi)
}

// RemapFisheye distorts p radially.
func RemapFisheye(p *PixelBuffer, distortion float64) *PixelBuffer {
	w, h := p.Bounds()
	Logger().Debug("remap fisheye", "distortion", distortion)
	mapX, mapY := CoordFisheye(w, h, distortion)
	return Remap(p, mapX, mapY)
}

// RemapPerspective maps the corners of p onto corners (fractions of the
// size, clockwise from top-left).
func RemapPerspective(p *PixelBuffer, corners [4]Point) *PixelBuffer {
	w, h := p.Bounds()
	Logger().Debug("remap perspective", "corners", corners)
	return WarpPerspective(p, CoordPerspective(w, h, corners))
}
