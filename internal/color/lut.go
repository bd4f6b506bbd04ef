package color

import "math"

// Fixed-point precision of the division tables.
const hsvShift = 12

// Luma weights in 14-bit fixed point (0.299, 0.587, 0.114).
const (
	grayShift = 14
	r2y       = 4899
	g2y       = 9617
	b2y       = 1868
)

// sdivTable[i] = (255 << 12) / i, for saturation.
var sdivTable [256]int32

// hdivTable[i] = (180 << 12) / (6 * i), for hue.
var hdivTable [256]int32

func init() {
	for i := 1; i < 256; i++ {
		sdivTable[i] = int32(math.Round(float64(255<<hsvShift) / float64(i)))
		hdivTable[i] = int32(math.Round(float64(HueRange<<hsvShift) / (6 * float64(i))))
	}
}

// Gray returns the luma of a BGR pixel.
func Gray(b, g, r byte) byte {
	return byte((int(b)*b2y + int(g)*g2y + int(r)*r2y + 1<<(grayShift-1)) >> grayShift)
}

// BGRToHSV converts a BGR pixel to 8-bit HSV with h in [0, 180).
func BGRToHSV(b, g, r byte) (h, s, v byte) {
	ib, ig, ir := int32(b), int32(g), int32(r)

	vmax := max(ib, ig, ir)
	vmin := min(ib, ig, ir)
	diff := vmax - vmin

	sv := (diff*sdivTable[vmax] + 1<<(hsvShift-1)) >> hsvShift

	var hv int32
	switch {
	case diff == 0:
		hv = 0
	case vmax == ir:
		hv = ig - ib
	case vmax == ig:
		hv = ib - ir + 2*diff
	default:
		hv = ir - ig + 4*diff
	}
	hv = (hv*hdivTable[diff] + 1<<(hsvShift-1)) >> hsvShift
	if hv < 0 {
		hv += HueRange
	}
	if hv >= HueRange {
		hv -= HueRange
	}

	return byte(hv), byte(sv), byte(vmax)
}

// hsvSectors selects which of v, p, q, t lands in B, G, R per hue sector.
var hsvSectors = [6][3]int{
	{1, 3, 0}, {1, 0, 2}, {3, 0, 1}, {0, 2, 1}, {0, 1, 3}, {2, 1, 0},
}

// HSVToBGR converts an 8-bit HSV pixel (h in [0, 180)) back to BGR.
func HSVToBGR(h, s, v byte) (b, g, r byte) {
	vf := float64(v) / 255
	if s == 0 {
		return v, v, v
	}
	sf := float64(s) / 255

	hf := float64(h) * 6 / HueRange
	for hf >= 6 {
		hf -= 6
	}
	sector := int(math.Floor(hf))
	hf -= float64(sector)

	tab := [4]float64{
		vf,
		vf * (1 - sf),
		vf * (1 - sf*hf),
		vf * (1 - sf*(1-hf)),
	}
	sel := hsvSectors[sector]
	return toByte(tab[sel[0]]), toByte(tab[sel[1]]), toByte(tab[sel[2]])
}

func toByte(v float64) byte {
	v = v*255 + 0.5
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v)
}
