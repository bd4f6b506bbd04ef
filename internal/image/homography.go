package image

import "math"

// Point is a 2D point in pixel coordinates.
type Point struct {
	X, Y float64
}

// Homography is a 3x3 projective transformation in row-major order:
//
//	| h0 h1 h2 |
//	| h3 h4 h5 |
//	| h6 h7 h8 |
//
// A point (x, y) maps to ((h0x + h1y + h2) / w, (h3x + h4y + h5) / w)
// with w = h6x + h7y + h8.
type Homography [9]float64

// IdentityHomography returns the identity projective transformation.
func IdentityHomography() Homography {
	return Homography{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// PerspectiveTransform computes the homography mapping each src corner onto
// the matching dst corner. It returns false when the corners are degenerate
// (three of them collinear), in which case no finite solution exists.
func PerspectiveTransform(src, dst [4]Point) (Homography, bool) {
	// Eight unknowns h0..h7 with h8 fixed to 1. Each correspondence
	// contributes two rows:
	//   x*h0 + y*h1 + h2 - u*x*h6 - u*y*h7 = u
	//   x*h3 + y*h4 + h5 - v*x*h6 - v*y*h7 = v
	var m [8][9]float64
	for i := range 4 {
		x, y := src[i].X, src[i].Y
		u, v := dst[i].X, dst[i].Y
		m[2*i] = [9]float64{x, y, 1, 0, 0, 0, -u * x, -u * y, u}
		m[2*i+1] = [9]float64{0, 0, 0, x, y, 1, -v * x, -v * y, v}
	}

	sol, ok := solve8(m)
	if !ok {
		return Homography{}, false
	}

	var h Homography
	copy(h[:8], sol[:])
	h[8] = 1
	return h, true
}

// solve8 solves an 8x8 augmented system by Gaussian elimination with
// partial pivoting.
func solve8(m [8][9]float64) ([8]float64, bool) {
	const n = 8
	for col := range n {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(m[r][col]) > math.Abs(m[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(m[pivot][col]) < 1e-12 {
			return [8]float64{}, false
		}
		m[col], m[pivot] = m[pivot], m[col]

		for r := col + 1; r < n; r++ {
			f := m[r][col] / m[col][col]
			for c := col; c <= n; c++ {
				m[r][c] -= f * m[col][c]
			}
		}
	}

	var x [8]float64
	for r := n - 1; r >= 0; r-- {
		sum := m[r][n]
		for c := r + 1; c < n; c++ {
			sum -= m[r][c] * x[c]
		}
		x[r] = sum / m[r][r]
	}
	return x, true
}

// Invert returns the inverse transformation.
// Returns false if the matrix is singular.
func (h Homography) Invert() (Homography, bool) {
	a, b, c := h[0], h[1], h[2]
	d, e, f := h[3], h[4], h[5]
	g, k, l := h[6], h[7], h[8]

	c00 := e*l - f*k
	c01 := -(d*l - f*g)
	c02 := d*k - e*g
	det := a*c00 + b*c01 + c*c02
	if math.Abs(det) < 1e-12 {
		return Homography{}, false
	}
	inv := 1 / det

	return Homography{
		c00 * inv, -(b*l - c*k) * inv, (b*f - c*e) * inv,
		c01 * inv, (a*l - c*g) * inv, -(a*f - c*d) * inv,
		c02 * inv, -(a*k - b*g) * inv, (a*e - b*d) * inv,
	}, true
}

// TransformPoint applies the homography to (x, y). ok is false when the
// point maps to infinity.
func (h Homography) TransformPoint(x, y float64) (px, py float64, ok bool) {
	w := h[6]*x + h[7]*y + h[8]
	if math.Abs(w) < 1e-12 {
		return 0, 0, false
	}
	return (h[0]*x + h[1]*y + h[2]) / w, (h[3]*x + h[4]*y + h[5]) / w, true
}
