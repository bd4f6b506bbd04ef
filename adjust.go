package jovi

import (
	"math"

	intColor "github.com/flowtyone/jovi/internal/color"
	"github.com/flowtyone/jovi/internal/filter"
	"github.com/flowtyone/jovi/internal/parallel"
)

// HSV shifts hue and scales saturation and value.
//
// Hue uses the 8-bit 0..179 range: hueShift*255 is added and the result
// wraps modulo 180. Saturation and value are multiplied by their scales
// and clipped to [0, 255].
func HSV(p *PixelBuffer, hueShift, saturation, value float64) *PixelBuffer {
	shift := hueShift * 255
	Logger().Debug("hsv", "hue", shift, "saturation", saturation, "value", value)

	return pixels(intColor.MapHSV(p.buf, func(h, s, v byte) (byte, byte, byte) {
		hh := math.Mod(float64(h)+shift, intColor.HueRange)
		if hh < 0 {
			hh += intColor.HueRange
		}
		return byte(hh), scaleByte(s, saturation), scaleByte(v, value)
	}))
}

// scaleByte returns v*f clipped to [0, 255] and truncated.
func scaleByte(v byte, f float64) byte {
	x := float64(v) * f
	if !(x > 0) {
		return 0
	}
	return byte(min(x, 255))
}

// Gamma maps every channel through ((i/255)^(1/value))*255. A value of 0
// produces a black buffer.
func Gamma(p *PixelBuffer, value float64) *PixelBuffer {
	Logger().Debug("gamma", "value", value)

	var lut [256]byte
	if value != 0 {
		inv := 1 / max(0.000001, value)
		for i := range lut {
			v := math.Pow(float64(i)/255, inv) * 255
			lut[i] = byte(min(max(v, 0), 255))
		}
	}
	return pixels(filter.ApplyLUT(p.buf, &lut))
}

// Contrast stretches every channel about the mean of the whole buffer:
// (c - mean)*value + mean, clipped to [0, 255] and truncated.
func Contrast(p *PixelBuffer, value float64) *PixelBuffer {
	mean := meanOf(p.buf.Data())
	Logger().Debug("contrast", "value", value, "mean", mean)

	m := filter.ContrastMatrix(float32(value), float32(mean))
	return pixels(m.Apply(p.buf))
}

// meanOf returns the arithmetic mean of data, or 0 when empty.
func meanOf(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}
	var sum uint64
	for _, v := range data {
		sum += uint64(v)
	}
	return float64(sum) / float64(len(data))
}

// Exposure multiplies every channel by value, clipped to [0, 255] and
// truncated. value is a linear gain, not a number of stops.
func Exposure(p *PixelBuffer, value float64) *PixelBuffer {
	Logger().Debug("exposure", "value", value)
	m := filter.ScaleMatrix(float32(value))
	return pixels(m.Apply(p.buf))
}

// Invert mixes p with its negative: c*(1-amount) + (255-c)*amount,
// rounded. amount is clipped to [0, 1].
func Invert(p *PixelBuffer, amount float64) *PixelBuffer {
	amount = clampUnit(amount)
	Logger().Debug("invert", "amount", amount)
	m := filter.InvertMatrix(float32(amount))
	return pixels(m.ApplyRounded(p.buf))
}

// Levels remaps a floating-point image:
//
//	x = min(max(c - black, 0), white - black)
//	x = x + mid - 0.5
//	x = sign(x) * |x|^(1/gamma)
//	out = (x + 0.5) / white
//
// A gamma of 0 is treated as 1 and a white point of 0 as 1, so the result
// stays finite.
func Levels(f *FloatImage, black, white, mid, gamma float64) *FloatImage {
	Logger().Debug("levels", "black", black, "white", white, "mid", mid, "gamma", gamma)
	if gamma == 0 {
		gamma = 1
	}
	div := white
	if div == 0 {
		div = 1
	}
	inv := 1 / gamma
	span := white - black

	out := &FloatImage{Width: f.Width, Height: f.Height, Pix: make([]float32, len(f.Pix))}
	n := len(f.Pix)
	parallel.For(n, func(start, end int) {
		for i := start; i < end; i++ {
			x := max(float64(f.Pix[i])-black, 0)
			x = min(x, span)
			x += mid - 0.5
			if x < 0 {
				x = -math.Pow(-x, inv)
			} else {
				x = math.Pow(x, inv)
			}
			out.Pix[i] = float32((x + 0.5) / div)
		}
	})
	return out
}
