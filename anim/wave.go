package anim

import (
	"math"
	"math/rand/v2"
)

const tau = 2 * math.Pi

// WaveOp names a wave generator.
type WaveOp uint8

// Every generator scales its shape by Amplitude and adds Offset.
const (
	// Sin is a sine of the oscillator angle; SinInv negates it and SinAbs
	// rectifies it.
	Sin WaveOp = iota
	SinInv
	SinAbs

	// Cos, CosInv and CosAbs are the cosine counterparts of the sine
	// waves.
	Cos
	CosInv
	CosAbs

	// Sawtooth rises linearly over each half period, centered on zero.
	Sawtooth

	// Triangle rises and falls linearly between -1 and 1.
	Triangle

	// Square is the sign of the sine shifted down by DutyCycle.
	Square

	// Pulse is an alias shape of Square.
	Pulse

	// Ramp grows linearly with time.
	Ramp

	// Step is 0 before time -Phase and 1 after.
	Step

	// Exponential decays at rate Decay.
	Exponential

	// Logarithmic is the logarithm in Base of time plus phase.
	Logarithmic

	// Noise is uniform in [-1, 1).
	Noise

	// Haversine is 1 - cos of the oscillator angle.
	Haversine

	// RectangularPulse is 1 for PulseWidth after time -Phase.
	RectangularPulse

	// Gaussian is a bell curve centered on Mean.
	Gaussian

	// Chirp is a sine whose frequency sweeps with FrequencySlope.
	Chirp
)

// WaveParams holds the inputs of a wave generator. Every generator reads
// the first five fields; the rest only apply to the waves named in their
// comments. Start from DefaultWaveParams so those extras are sensible.
type WaveParams struct {
	Phase     float64
	Frequency float64
	Amplitude float64
	Offset    float64
	Timestep  float64

	// DutyCycle shifts the zero crossing of Square and Pulse.
	DutyCycle float64

	// Decay is the rate of Exponential.
	Decay float64

	// PulseWidth is the length of RectangularPulse.
	PulseWidth float64

	// Base is the logarithm base of Logarithmic. Values <= 0 or 1 select 10.
	Base float64

	// Mean and StdDev shape Gaussian. A zero StdDev selects 1.
	Mean, StdDev float64

	// FrequencySlope is the sweep rate of Chirp.
	FrequencySlope float64
}

// DefaultWaveParams returns unit frequency and amplitude at time 0 with
// the standard extras.
func DefaultWaveParams() WaveParams {
	return WaveParams{
		Frequency:      1,
		Amplitude:      1,
		DutyCycle:      0.5,
		Decay:          1,
		PulseWidth:     0.1,
		Base:           10,
		StdDev:         1,
		FrequencySlope: 1,
	}
}

var waves = newRegistry[WaveOp]("WaveOp",
	[]string{
		"SIN", "SIN_INV", "SIN_ABS", "COS", "COS_INV", "COS_ABS",
		"SAWTOOTH", "TRIANGLE", "SQUARE", "PULSE", "RAMP", "STEP",
		"EXPONENTIAL", "LOGARITHMIC", "NOISE", "HAVERSINE",
		"RECTANGULAR_PULSE", "GAUSSIAN", "CHIRP",
	},
	[]func(WaveParams) float64{
		waveSin, waveSinInv, waveSinAbs, waveCos, waveCosInv, waveCosAbs,
		waveSawtooth, waveTriangle, waveSquare, waveSquare, waveRamp, waveStep,
		waveExponential, waveLogarithmic, waveNoise, waveHaversine,
		waveRectangularPulse, waveGaussian, waveChirp,
	},
	map[string]WaveOp{
		"EXP":        Exponential,
		"LOG":        Logarithmic,
		"RECT PULSE": RectangularPulse,
	})

// String returns the tag name, e.g. "SAWTOOTH".
func (op WaveOp) String() string { return waves.name(op) }

// ParseWave returns the wave named s. Case, underscores and dashes are
// ignored, and the short forms "EXP", "LOG" and "RECT PULSE" are accepted.
func ParseWave(s string) (WaveOp, error) { return waves.parse(s) }

// Wave evaluates the generator op with p. Noise is the only generator
// that is not a pure function of p.
func Wave(op WaveOp, p WaveParams) (float64, error) {
	fn, err := waves.get(op)
	if err != nil {
		return 0, err
	}
	return fn(p), nil
}

// angle is the oscillator argument shared by the sine family.
func (p WaveParams) angle() float64 {
	return p.Frequency*tau*p.Timestep + p.Phase
}

// fract returns x modulo 1 in [0, 1), also for negative x.
func fract(x float64) float64 {
	f := math.Mod(x, 1)
	if f < 0 {
		f++
	}
	return f
}

// heaviside is 0 for x < 0 and 1 otherwise.
func heaviside(x float64) float64 {
	if x < 0 {
		return 0
	}
	return 1
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func waveSin(p WaveParams) float64    { return p.Amplitude*math.Sin(p.angle()) + p.Offset }
func waveSinInv(p WaveParams) float64 { return -p.Amplitude*math.Sin(p.angle()) + p.Offset }
func waveSinAbs(p WaveParams) float64 { return math.Abs(p.Amplitude*math.Sin(p.angle())) + p.Offset }
func waveCos(p WaveParams) float64    { return p.Amplitude*math.Cos(p.angle()) + p.Offset }
func waveCosInv(p WaveParams) float64 { return -p.Amplitude*math.Cos(p.angle()) + p.Offset }
func waveCosAbs(p WaveParams) float64 { return math.Abs(p.Amplitude*math.Cos(p.angle())) + p.Offset }

func waveSawtooth(p WaveParams) float64 {
	return p.Amplitude*(fract(2*(p.Frequency*p.Timestep+p.Phase))-0.5) + p.Offset
}

func waveTriangle(p WaveParams) float64 {
	return p.Amplitude*(4*math.Abs(fract(p.Frequency*p.Timestep+p.Phase)-0.5)-1) + p.Offset
}

// waveSquare serves both Square and Pulse.
func waveSquare(p WaveParams) float64 {
	return p.Amplitude*sign(math.Sin(p.angle())-p.DutyCycle) + p.Offset
}

func waveRamp(p WaveParams) float64 {
	return p.Amplitude*(p.Frequency*p.Timestep+fract(p.Phase)) + p.Offset
}

func waveStep(p WaveParams) float64 {
	return p.Amplitude*heaviside(p.Frequency*p.Timestep+p.Phase) + p.Offset
}

func waveExponential(p WaveParams) float64 {
	return p.Amplitude*math.Exp(-p.Decay*(p.Timestep+p.Phase)) + p.Offset
}

// waveLogarithmic returns Offset where the logarithm is undefined.
func waveLogarithmic(p WaveParams) float64 {
	x := p.Timestep + p.Phase
	if !(x > 0) {
		return p.Offset
	}
	base := p.Base
	if !(base > 0) || base == 1 {
		base = 10
	}
	return p.Amplitude*math.Log10(x)/math.Log10(base) + p.Offset
}

func waveNoise(p WaveParams) float64 {
	return p.Amplitude*(rand.Float64()*2-1) + p.Offset
}

func waveHaversine(p WaveParams) float64 {
	return p.Amplitude*(1-math.Cos(p.Frequency*tau*(p.Timestep+p.Phase))) + p.Offset
}

func waveRectangularPulse(p WaveParams) float64 {
	x := p.Timestep + p.Phase
	return p.Amplitude*heaviside(x)*heaviside(p.PulseWidth-x) + p.Offset
}

func waveGaussian(p WaveParams) float64 {
	std := p.StdDev
	if std == 0 {
		std = 1
	}
	z := (p.Timestep + p.Phase - p.Mean) / std
	return p.Amplitude*math.Exp(-0.5*z*z) + p.Offset
}

func waveChirp(p WaveParams) float64 {
	x := p.Timestep + p.Phase
	return p.Amplitude*math.Sin(tau*p.FrequencySlope*x*x) + p.Offset
}
