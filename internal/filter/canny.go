package filter

import (
	"github.com/flowtyone/jovi/internal/image"
	"github.com/flowtyone/jovi/internal/parallel"
)

// Fixed-point tangent of 22.5 degrees for the gradient direction sectors:
// round(tan(pi/8) * 2^cannyShift).
const (
	cannyShift = 15
	tg22       = 13573
)

// Edge map states.
const (
	edgeNone uint8 = iota
	edgeWeak
	edgeStrong
)

// Canny detects edges in a single-channel image and returns a Gray8 map
// with 255 on edges and 0 elsewhere.
//
// Gradients come from 3x3 Sobel operators with replicated borders and are
// measured with the L1 norm |dx|+|dy|. After non-maximum suppression,
// pixels above high seed edges that grow through 8-connected pixels above
// low. The thresholds are swapped when low > high.
func Canny(gray *image.ImageBuf, low, high float64) *image.ImageBuf {
	w, h := gray.Bounds()
	dst := image.New(w, h, image.FormatGray8)
	if gray.IsEmpty() || gray.Format() != image.FormatGray8 {
		return dst
	}
	if low > high {
		low, high = high, low
	}

	dx := make([]int, w*h)
	dy := make([]int, w*h)
	mag := make([]int, w*h)
	sobel(gray, dx, dy, mag)

	states := make([]uint8, w*h)
	at := func(x, y int) int {
		if x < 0 || x >= w || y < 0 || y >= h {
			return 0
		}
		return mag[y*w+x]
	}

	parallel.For(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := range w {
				i := y*w + x
				m := mag[i]
				if float64(m) <= low {
					continue
				}

				xs0, ys0 := dx[i], dy[i]
				xs, ys := abs(xs0), abs(ys0)
				tg22x := xs * tg22
				ysShifted := ys << cannyShift

				var isMax bool
				switch {
				case ysShifted < tg22x:
					isMax = m > at(x-1, y) && m >= at(x+1, y)
				case ysShifted > tg22x+(xs<<(cannyShift+1)):
					isMax = m > at(x, y-1) && m >= at(x, y+1)
				default:
					s := 1
					if (xs0 ^ ys0) < 0 {
						s = -1
					}
					isMax = m > at(x-s, y-1) && m > at(x+s, y+1)
				}
				if !isMax {
					continue
				}

				if float64(m) > high {
					states[i] = edgeStrong
				} else {
					states[i] = edgeWeak
				}
			}
		}
	})

	hysteresis(states, w, h)

	out := dst.Data()
	for i, s := range states {
		if s == edgeStrong {
			out[i] = 255
		}
	}
	return dst
}

// sobel fills the horizontal and vertical derivatives and their L1
// magnitude.
func sobel(gray *image.ImageBuf, dx, dy, mag []int) {
	w, h := gray.Bounds()
	data := gray.Data()
	px := func(x, y int) int {
		x, _ = image.BorderIndex(x, w, image.BorderReplicate)
		y, _ = image.BorderIndex(y, h, image.BorderReplicate)
		return int(data[y*w+x])
	}

	parallel.For(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := range w {
				a, b, c := px(x-1, y-1), px(x, y-1), px(x+1, y-1)
				d, f := px(x-1, y), px(x+1, y)
				g, k, l := px(x-1, y+1), px(x, y+1), px(x+1, y+1)

				gx := (c + 2*f + l) - (a + 2*d + g)
				gy := (g + 2*k + l) - (a + 2*b + c)

				i := y*w + x
				dx[i], dy[i] = gx, gy
				mag[i] = abs(gx) + abs(gy)
			}
		}
	})
}

// hysteresis promotes weak pixels 8-connected to a strong pixel.
func hysteresis(states []uint8, w, h int) {
	stack := make([]int, 0, 256)
	for i, s := range states {
		if s == edgeStrong {
			stack = append(stack, i)
		}
	}

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := i%w, i/w

		for ny := y - 1; ny <= y+1; ny++ {
			for nx := x - 1; nx <= x+1; nx++ {
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				j := ny*w + nx
				if states[j] == edgeWeak {
					states[j] = edgeStrong
					stack = append(stack, j)
				}
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
