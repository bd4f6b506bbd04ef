package jovi

// newSolid returns a width x height buffer filled with c.
func newSolid(w, h int, c Color) *PixelBuffer {
	return Solid(w, h, c)
}

// newPattern returns a deterministic buffer with varied channels.
func newPattern(w, h int) *PixelBuffer {
	p := Solid(w, h, Black)
	for y := range h {
		for x := range w {
			p.Set(x, y, Color{
				R: uint8(x*37 + y*11),
				G: uint8(x*5 + y*53),
				B: uint8(x*x + y*7),
			})
		}
	}
	return p
}

// maxDiff returns the largest per-channel difference between a and b, or
// -1 when their sizes differ.
func maxDiff(a, b *PixelBuffer) int {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return -1
	}
	worst := 0
	pa, pb := a.Pix(), b.Pix()
	for i := range pa {
		d := int(pa[i]) - int(pb[i])
		if d < 0 {
			d = -d
		}
		worst = max(worst, d)
	}
	return worst
}

// approxEqual reports whether a and b match within tol per channel.
func approxEqual(a, b *PixelBuffer, tol int) bool {
	d := maxDiff(a, b)
	return d >= 0 && d <= tol
}

// isSolid reports whether every pixel of p equals c.
func isSolid(p *PixelBuffer, c Color) bool {
	for y := range p.Height() {
		for x := range p.Width() {
			if p.At(x, y) != c {
				return false
			}
		}
	}
	return true
}

// near reports whether every channel of c is within tol of want.
func near(c, want Color, tol int) bool {
	d := func(a, b uint8) bool {
		v := int(a) - int(b)
		return v >= -tol && v <= tol
	}
	return d(c.R, want.R) && d(c.G, want.G) && d(c.B, want.B)
}
