package blend

// Lerp mixes a and b per pixel: dst = a*(1-w) + b*w with w = weights[i]
// for pixel i, rounded to the nearest byte. ch is the number of
// interleaved channels; weights holds one value in [0, 1] per pixel.
// dst may alias a or b.
func Lerp(dst, a, b []byte, weights []float32, ch int) {
	n := min(len(a), len(b), len(dst)) / ch
	n = min(n, len(weights))
	for i := range n {
		w := weights[i]
		switch {
		case w <= 0:
			copy(dst[i*ch:(i+1)*ch], a[i*ch:(i+1)*ch])
			continue
		case w >= 1:
			copy(dst[i*ch:(i+1)*ch], b[i*ch:(i+1)*ch])
			continue
		}
		for c := i * ch; c < (i+1)*ch; c++ {
			v := float32(a[c])*(1-w) + float32(b[c])*w
			dst[c] = byte(v + 0.5)
		}
	}
}
