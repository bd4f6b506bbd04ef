package anim

import "math"

const halfPi = math.Pi / 2

// EaseOp names an easing curve. Every curve maps 0 to 0 and 1 to 1.
type EaseOp uint8

// Each family comes in three shapes: In accelerates from 0, Out
// decelerates into 1, InOut does both with the midpoint at (0.5, 0.5).
const (
	// QuadIn, QuadOut and QuadInOut follow t^2.
	QuadIn EaseOp = iota
	QuadOut
	QuadInOut

	// CubicIn, CubicOut and CubicInOut follow t^3.
	CubicIn
	CubicOut
	CubicInOut

	// QuarticIn, QuarticOut and QuarticInOut follow t^4.
	QuarticIn
	QuarticOut
	QuarticInOut

	// QuinticIn, QuinticOut and QuinticInOut follow t^5.
	QuinticIn
	QuinticOut
	QuinticInOut

	// SinIn, SinOut and SinInOut follow a quarter sine wave.
	SinIn
	SinOut
	SinInOut

	// CircularIn, CircularOut and CircularInOut follow a quarter circle.
	CircularIn
	CircularOut
	CircularInOut

	// ExponentialIn, ExponentialOut and ExponentialInOut follow 2^(10(t-1)).
	ExponentialIn
	ExponentialOut
	ExponentialInOut

	// ElasticIn, ElasticOut and ElasticInOut overshoot with a damped
	// sine, like a spring.
	ElasticIn
	ElasticOut
	ElasticInOut

	// BackIn, BackOut and BackInOut pull back past the start (or push
	// past the end) before settling.
	BackIn
	BackOut
	BackInOut

	// BounceIn, BounceOut and BounceInOut bounce against the end value.
	BounceIn
	BounceOut
	BounceInOut
)

// DefaultClip spans the whole curve.
var DefaultClip = [2]float64{0, 1}

var eases = newRegistry[EaseOp]("EaseOp",
	[]string{
		"QUAD_IN", "QUAD_OUT", "QUAD_IN_OUT",
		"CUBIC_IN", "CUBIC_OUT", "CUBIC_IN_OUT",
		"QUARTIC_IN", "QUARTIC_OUT", "QUARTIC_IN_OUT",
		"QUINTIC_IN", "QUINTIC_OUT", "QUINTIC_IN_OUT",
		"SIN_IN", "SIN_OUT", "SIN_IN_OUT",
		"CIRCULAR_IN", "CIRCULAR_OUT", "CIRCULAR_IN_OUT",
		"EXPONENTIAL_IN", "EXPONENTIAL_OUT", "EXPONENTIAL_IN_OUT",
		"ELASTIC_IN", "ELASTIC_OUT", "ELASTIC_IN_OUT",
		"BACK_IN", "BACK_OUT", "BACK_IN_OUT",
		"BOUNCE_IN", "BOUNCE_OUT", "BOUNCE_IN_OUT",
	},
	[]func(float64) float64{
		quadIn, quadOut, quadInOut,
		cubicIn, cubicOut, cubicInOut,
		quarticIn, quarticOut, quarticInOut,
		quinticIn, quinticOut, quinticInOut,
		sinIn, sinOut, sinInOut,
		circularIn, circularOut, circularInOut,
		exponentialIn, exponentialOut, exponentialInOut,
		elasticIn, elasticOut, elasticInOut,
		backIn, backOut, backInOut,
		bounceIn, bounceOut, bounceInOut,
	},
	nil)

// String returns the tag name, e.g. "CUBIC_IN_OUT".
func (op EaseOp) String() string { return eases.name(op) }

// ParseEase returns the curve named s. Case, underscores and dashes are
// ignored, so "cubic in out" and "CUBIC_IN_OUT" match.
func ParseEase(s string) (EaseOp, error) { return eases.parse(s) }

// Curve returns the raw easing function for op.
func Curve(op EaseOp) (func(t float64) float64, error) { return eases.get(op) }

// Ease interpolates from start to end along the curve op.
//
// The curve position is t = clip[0]*(1-alpha) + clip[1]*alpha divided by
// duration, which is clipped to [0, 1]. A zero duration completes
// immediately and returns end. The result is end*a + start*(1-a) with
// a = curve(t); t is not clipped, so alpha outside [0, 1] extrapolates.
func Ease(op EaseOp, start, end, duration, alpha float64, clip [2]float64) (float64, error) {
	fn, err := eases.get(op)
	if err != nil {
		return 0, err
	}
	duration = min(max(duration, 0), 1)
	if duration == 0 {
		return end, nil
	}
	t := (clip[0]*(1-alpha) + clip[1]*alpha) / duration
	a := fn(t)
	return end*a + start*(1-a), nil
}

// EaseSteps evaluates Ease at n evenly spaced alphas over [0, 1].
func EaseSteps(op EaseOp, start, end, duration float64, n int, clip [2]float64) ([]float64, error) {
	if _, err := eases.get(op); err != nil {
		return nil, err
	}
	out := make([]float64, max(n, 0))
	for i := range out {
		alpha := 0.0
		if n > 1 {
			alpha = float64(i) / float64(n-1)
		}
		out[i], _ = Ease(op, start, end, duration, alpha, clip)
	}
	return out, nil
}

func quadIn(t float64) float64  { return t * t }
func quadOut(t float64) float64 { return -(t * (t - 2)) }
func quadInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -2*t*t + 4*t - 1
}

func cubicIn(t float64) float64 { return t * t * t }
func cubicOut(t float64) float64 {
	p := t - 1
	return p*p*p + 1
}
func cubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	p := 2*t - 2
	return 0.5*p*p*p + 1
}

func quarticIn(t float64) float64 { return t * t * t * t }
func quarticOut(t float64) float64 {
	p := t - 1
	return p*p*p*(1-t) + 1
}
func quarticInOut(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	p := t - 1
	return -8*p*p*p*p + 1
}

func quinticIn(t float64) float64 { return t * t * t * t * t }
func quinticOut(t float64) float64 {
	p := t - 1
	return p*p*p*p*p + 1
}
func quinticInOut(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	p := 2*t - 2
	return 0.5*p*p*p*p*p + 1
}

func sinIn(t float64) float64    { return math.Sin((t-1)*halfPi) + 1 }
func sinOut(t float64) float64   { return math.Sin(t * halfPi) }
func sinInOut(t float64) float64 { return 0.5 * (1 - math.Cos(t*math.Pi)) }

func circularIn(t float64) float64  { return 1 - math.Sqrt(1-t*t) }
func circularOut(t float64) float64 { return math.Sqrt((2 - t) * t) }
func circularInOut(t float64) float64 {
	if t < 0.5 {
		return 0.5 * (1 - math.Sqrt(1-4*t*t))
	}
	return 0.5 * (math.Sqrt(-(2*t-3)*(2*t-1)) + 1)
}

func exponentialIn(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*(t-1))
}
func exponentialOut(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}
func exponentialInOut(t float64) float64 {
	switch {
	case t == 0:
		return 0
	case t < 0.5:
		return 0.5 * math.Pow(2, 20*t-10)
	}
	return -0.5*math.Pow(2, -20*t+10) + 1
}

func elasticIn(t float64) float64 {
	return math.Sin(13*halfPi*t) * math.Pow(2, 10*(t-1))
}
func elasticOut(t float64) float64 {
	return math.Sin(-13*halfPi*(t+1))*math.Pow(2, -10*t) + 1
}
func elasticInOut(t float64) float64 {
	if t < 0.5 {
		return 0.5 * math.Sin(13*halfPi*(2*t)) * math.Pow(2, 10*(2*t-1))
	}
	return 0.5 * (math.Sin(-13*halfPi*(2*t))*math.Pow(2, -10*(2*t-1)) + 2)
}

func backIn(t float64) float64 { return t*t*t - t*math.Sin(t*math.Pi) }
func backOut(t float64) float64 {
	p := 1 - t
	return 1 - (p*p*p - p*math.Sin(p*math.Pi))
}
func backInOut(t float64) float64 {
	if t < 0.5 {
		return 0.5 * backIn(2*t)
	}
	return 0.5*backOut(2*t-1) + 0.5
}

func bounceIn(t float64) float64 { return 1 - bounceOut(1-t) }
func bounceOut(t float64) float64 {
	switch {
	case t < 4.0/11:
		return 121 * t * t / 16
	case t < 8.0/11:
		return 363.0/40*t*t - 99.0/10*t + 17.0/5
	case t < 9.0/10:
		return 4356.0/361*t*t - 35442.0/1805*t + 16061.0/1805
	}
	return 54.0/5*t*t - 513.0/25*t + 268.0/25
}
func bounceInOut(t float64) float64 {
	if t < 0.5 {
		return 0.5 * bounceIn(2*t)
	}
	return 0.5*bounceOut(2*t-1) + 0.5
}
