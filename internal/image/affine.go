package image

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Affine is a 2D affine transformation in pixel space:
//
//	| a  b  c |
//	| d  e  f |
//	| 0  0  1 |
//
// mapping (x, y) to (ax + by + c, dx + ey + f). The y axis points down.
type Affine struct {
	a, b, c float64
	d, e, f float64
}

// Translate shifts points by (tx, ty).
func Translate(tx, ty float64) Affine {
	return Affine{a: 1, c: tx, e: 1, f: ty}
}

// Scale scales about the origin.
func Scale(sx, sy float64) Affine {
	return Affine{a: sx, e: sy}
}

// Rotate rotates about the origin by angle radians. With the y axis pointing
// down, positive angles turn clockwise on screen.
func Rotate(angle float64) Affine {
	sin, cos := math.Sincos(angle)
	return Affine{a: cos, b: -sin, d: sin, e: cos}
}

// RotateAt rotates by angle radians about (cx, cy).
func RotateAt(angle, cx, cy float64) Affine {
	return Translate(cx, cy).Multiply(Rotate(angle)).Multiply(Translate(-cx, -cy))
}

// Multiply returns m * other: other is applied first, then m.
func (m Affine) Multiply(other Affine) Affine {
	return Affine{
		a: m.a*other.a + m.b*other.d,
		b: m.a*other.b + m.b*other.e,
		c: m.a*other.c + m.b*other.f + m.c,
		d: m.d*other.a + m.e*other.d,
		e: m.d*other.b + m.e*other.e,
		f: m.d*other.c + m.e*other.f + m.f,
	}
}

// Invert returns the inverse transformation, or false if m is singular.
func (m Affine) Invert() (Affine, bool) {
	det := m.a*m.e - m.b*m.d
	if math.Abs(det) < 1e-12 {
		return Affine{}, false
	}
	inv := 1 / det

	return Affine{
		a: m.e * inv,
		b: -m.b * inv,
		c: (m.b*m.f - m.c*m.e) * inv,
		d: -m.d * inv,
		e: m.a * inv,
		f: (m.c*m.d - m.a*m.f) * inv,
	}, true
}

// TransformPoint maps (x, y) through m.
func (m Affine) TransformPoint(x, y float64) (float64, float64) {
	return m.a*x + m.b*y + m.c, m.d*x + m.e*y + m.f
}

// Aff3 returns m in the row-major layout of golang.org/x/image/draw.
func (m Affine) Aff3() f64.Aff3 {
	return f64.Aff3{m.a, m.b, m.c, m.d, m.e, m.f}
}

// IsIdentity reports whether m is the identity within 1e-12.
func (m Affine) IsIdentity() bool {
	const eps = 1e-12
	return math.Abs(m.a-1) < eps && math.Abs(m.b) < eps && math.Abs(m.c) < eps &&
		math.Abs(m.d) < eps && math.Abs(m.e-1) < eps && math.Abs(m.f) < eps
}
