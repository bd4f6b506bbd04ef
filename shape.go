package jovi

import (
	"image"
	"math"

	"golang.org/x/image/vector"

	intImage "github.com/flowtyone/jovi/internal/image"
	"github.com/flowtyone/jovi/internal/parallel"
)

// kappa places cubic control points for a quarter ellipse.
const kappa = 0.5522847498307936

// shapeBox returns the centered box covering sizeX/sizeY of the canvas.
// Sizes map to box fractions max(0.5, size/2 + 0.5), so sizes of 0 or less
// collapse the box to a point.
func shapeBox(width, height int, sizeX, sizeY float64) (x0, y0, x1, y1 float32) {
	fx := max(0.5, sizeX/2+0.5)
	fy := max(0.5, sizeY/2+0.5)
	w, h := float64(width), float64(height)
	return float32(w * (1 - fx)), float32(h * (1 - fy)), float32(w * fx), float32(h * fy)
}

// Ellipse draws an anti-aliased ellipse filling the box given by sizeX and
// sizeY (1 spans the canvas) on a black canvas.
func Ellipse(width, height int, sizeX, sizeY float64, fill Color) *PixelBuffer {
	x0, y0, x1, y1 := shapeBox(width, height, sizeX, sizeY)
	Logger().Debug("ellipse", "box", [4]float32{x0, y0, x1, y1})

	return rasterize(width, height, fill, func(z *vector.Rasterizer) {
		cx, cy := (x0+x1)/2, (y0+y1)/2
		rx, ry := (x1-x0)/2, (y1-y0)/2
		kx, ky := rx*kappa, ry*kappa

		z.MoveTo(cx+rx, cy)
		z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
		z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
		z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
		z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
		z.ClosePath()
	})
}

// Quad draws a rectangle filling the box given by sizeX and sizeY on a
// black canvas.
func Quad(width, height int, sizeX, sizeY float64, fill Color) *PixelBuffer {
	x0, y0, x1, y1 := shapeBox(width, height, sizeX, sizeY)
	Logger().Debug("quad", "box", [4]float32{x0, y0, x1, y1})

	return rasterize(width, height, fill, func(z *vector.Rasterizer) {
		z.MoveTo(x0, y0)
		z.LineTo(x1, y0)
		z.LineTo(x1, y1)
		z.LineTo(x0, y1)
		z.ClosePath()
	})
}

// Polygon draws a regular polygon centered on a black canvas. Its
// circumradius is min(width, height)*size/2. With angle 0 one vertex
// points up; angle turns the polygon clockwise in degrees. Fewer than
// three sides draw a triangle.
func Polygon(width, height int, size float64, sides int, angle float64, fill Color) *PixelBuffer {
	size = max(0.00001, size)
	sides = max(3, sides)
	r := float64(min(width, height)) * size * 0.5
	cx, cy := float64(width)*0.5, float64(height)*0.5
	Logger().Debug("polygon", "sides", sides, "radius", r, "angle", angle)

	return rasterize(width, height, fill, func(z *vector.Rasterizer) {
		step := 360 / float64(sides)
		start := 90 - angle
		for k := range sides {
			sin, cos := math.Sincos((start - float64(k)*step) * math.Pi / 180)
			x, y := float32(cx+r*cos), float32(cy-r*sin)
			if k == 0 {
				z.MoveTo(x, y)
			} else {
				z.LineTo(x, y)
			}
		}
		z.ClosePath()
	})
}

// rasterize renders the path built by draw as coverage and paints fill
// over black with it.
func rasterize(width, height int, fill Color, draw func(z *vector.Rasterizer)) *PixelBuffer {
	width, height = max(width, 0), max(height, 0)
	out := intImage.New(width, height, intImage.FormatBGR8)
	if out.IsEmpty() {
		return pixels(out)
	}

	z := vector.NewRasterizer(width, height)
	draw(z)
	cov := image.NewAlpha(image.Rect(0, 0, width, height))
	z.Draw(cov, cov.Bounds(), image.Opaque, image.Point{})

	c := fill.bgr()
	data := out.Data()
	parallel.For(height, func(start, end int) {
		for i := start * width; i < end*width; i++ {
			a := uint32(cov.Pix[i])
			if a == 0 {
				continue
			}
			px := data[i*3 : i*3+3]
			for k := range px {
				px[k] = byte((uint32(c[k])*a + 127) / 255)
			}
		}
	})
	return pixels(out)
}
