package jovi

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/flowtyone/jovi/internal/blend"
	intImage "github.com/flowtyone/jovi/internal/image"
)

// ErrUnknownTag is returned by the Parse functions for names outside the
// closed tag set.
var ErrUnknownTag = errors.New("jovi: unknown tag")

// ScaleMode selects how ScaleFit reaches a target size.
type ScaleMode uint8

const (
	// ScaleModeNone passes the buffer through unchanged.
	ScaleModeNone ScaleMode = iota

	// ScaleModeAspect scales isotropically so the longer source side
	// matches the longer target side.
	ScaleModeAspect

	// ScaleModeCrop center-crops or pads to the exact target.
	ScaleModeCrop

	// ScaleModeFit stretches to the exact target, ignoring aspect.
	ScaleModeFit
)

// EdgeMode selects the tiling step of Transform.
type EdgeMode uint8

const (
	// EdgeModeClip skips tiling; content moved out of frame is lost.
	EdgeModeClip EdgeMode = iota

	// EdgeModeWrap tiles along both axes.
	EdgeModeWrap

	// EdgeModeWrapX tiles columns only.
	EdgeModeWrapX

	// EdgeModeWrapY tiles rows only.
	EdgeModeWrapY
)

// wrapsX reports whether the mode tiles along the x axis.
func (e EdgeMode) wrapsX() bool { return e == EdgeModeWrap || e == EdgeModeWrapX }

// wrapsY reports whether the mode tiles along the y axis.
func (e EdgeMode) wrapsY() bool { return e == EdgeModeWrap || e == EdgeModeWrapY }

// Axis selects the direction of Extend and Mirror.
type Axis uint8

const (
	// AxisHorizontal works along the width: Extend places buffers side by
	// side and Mirror flips left-right.
	AxisHorizontal Axis = iota

	// AxisVertical works along the height.
	AxisVertical
)

// ThresholdMode selects the fixed-threshold rule.
type ThresholdMode uint8

const (
	// ThresholdBinary sets pixels above the cutoff to 255 and the rest to 0.
	ThresholdBinary ThresholdMode = iota

	// ThresholdTrunc caps pixels at the cutoff.
	ThresholdTrunc

	// ThresholdToZero zeroes pixels at or below the cutoff.
	ThresholdToZero
)

// AdaptiveMode selects the local threshold method. Any mode other than
// AdaptiveNone replaces the fixed threshold entirely.
type AdaptiveMode uint8

const (
	// AdaptiveNone uses the fixed cutoff and ThresholdMode.
	AdaptiveNone AdaptiveMode = iota

	// AdaptiveMean compares each pixel with the box mean of its block.
	AdaptiveMean

	// AdaptiveGaussian compares each pixel with a Gaussian-weighted mean
	// of its block.
	AdaptiveGaussian
)

// BlendOperator names a Blend operation.
type BlendOperator uint8

const (
	// BlendLerp mixes A and B directly through the mask.
	BlendLerp BlendOperator = iota

	// BlendAdd sums the channels, saturating at 255.
	BlendAdd

	// BlendMinimum keeps the darker channel.
	BlendMinimum

	// BlendMaximum keeps the lighter channel.
	BlendMaximum

	// BlendMultiply darkens: a*b/255.
	BlendMultiply

	// BlendSoftLight darkens or lightens A gently depending on B.
	BlendSoftLight

	// BlendHardLight multiplies or screens depending on B.
	BlendHardLight

	// BlendOverlay multiplies or screens depending on A.
	BlendOverlay

	// BlendScreen lightens: 255 - (255-a)(255-b)/255.
	BlendScreen

	// BlendSubtract computes a-b, saturating at 0.
	BlendSubtract

	// BlendDifference computes |a-b|.
	BlendDifference

	// BlendLogicalAnd is the bitwise AND of the channel bytes.
	BlendLogicalAnd

	// BlendLogicalOr is the bitwise OR of the channel bytes.
	BlendLogicalOr

	// BlendLogicalXor is the bitwise XOR of the channel bytes.
	BlendLogicalXor
)

// op returns the channel operator for b.
func (b BlendOperator) op() blend.Op { return blend.Op(b) }

// Resample selects the reconstruction filter used when resizing.
type Resample = intImage.Resample

// Resample filters.
const (
	ResampleNearest = intImage.ResampleNearest
	ResampleLinear  = intImage.ResampleLinear
	ResampleCubic   = intImage.ResampleCubic
	ResampleLanczos = intImage.ResampleLanczos
	ResampleBox     = intImage.ResampleBox
)

// tagSet is a closed set of named values of one enum type.
type tagSet[T ~uint8] struct {
	kind   string
	names  []string
	lookup map[string]T
}

// newTagSet indexes names (by value) plus extra spellings.
func newTagSet[T ~uint8](kind string, names []string, aliases map[string]T) *tagSet[T] {
	s := &tagSet[T]{kind: kind, names: names, lookup: make(map[string]T, len(names)+len(aliases))}
	for i, n := range names {
		s.lookup[normalizeTag(n)] = T(i)
	}
	for n, v := range aliases {
		s.lookup[normalizeTag(n)] = v
	}
	return s
}

func (s *tagSet[T]) name(v T) string {
	if int(v) < len(s.names) {
		return s.names[v]
	}
	return fmt.Sprintf("%s(%d)", s.kind, uint8(v))
}

func (s *tagSet[T]) parse(str string) (T, error) {
	if v, ok := s.lookup[normalizeTag(str)]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: %s %q", ErrUnknownTag, s.kind, str)
}

// normalizeTag folds case and treats underscores, dashes and runs of
// spaces alike, so "soft_light", "Soft-Light" and "SOFT LIGHT" match.
func normalizeTag(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == '_' || r == '-' {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(cases.Upper(language.Und).String(s)), " ")
}

var (
	scaleModes = newTagSet[ScaleMode]("ScaleMode",
		[]string{"NONE", "ASPECT", "CROP", "FIT"}, nil)

	edgeModes = newTagSet[EdgeMode]("EdgeMode",
		[]string{"CLIP", "WRAP", "WRAPX", "WRAPY"}, nil)

	axes = newTagSet[Axis]("Axis",
		[]string{"HORIZONTAL", "VERTICAL"}, nil)

	thresholdModes = newTagSet[ThresholdMode]("ThresholdMode",
		[]string{"BINARY", "TRUNC", "TOZERO"},
		map[string]ThresholdMode{"TO ZERO": ThresholdToZero})

	adaptiveModes = newTagSet[AdaptiveMode]("AdaptiveMode",
		[]string{"NONE", "MEAN", "GAUSSIAN"},
		map[string]AdaptiveMode{
			"ADAPT NONE":  AdaptiveNone,
			"ADAPT MEAN":  AdaptiveMean,
			"ADAPT GAUSS": AdaptiveGaussian,
			"GAUSS":       AdaptiveGaussian,
		})

	blendOperators = newTagSet[BlendOperator]("BlendOperator",
		[]string{
			"LERP", "ADD", "MINIMUM", "MAXIMUM", "MULTIPLY",
			"SOFT_LIGHT", "HARD_LIGHT", "OVERLAY", "SCREEN", "SUBTRACT",
			"DIFFERENCE", "LOGICAL_AND", "LOGICAL_OR", "LOGICAL_XOR",
		},
		map[string]BlendOperator{
			"DARKER":  BlendMinimum,
			"LIGHTER": BlendMaximum,
		})

	resamples = newTagSet[Resample]("Resample",
		[]string{"NEAREST", "LINEAR", "CUBIC", "LANCZOS", "BOX"},
		map[string]Resample{
			"BILINEAR": ResampleLinear,
			"BICUBIC":  ResampleCubic,
			"AREA":     ResampleBox,
		})
)

func (m ScaleMode) String() string     { return scaleModes.name(m) }
func (e EdgeMode) String() string      { return edgeModes.name(e) }
func (a Axis) String() string          { return axes.name(a) }
func (m ThresholdMode) String() string { return thresholdModes.name(m) }
func (m AdaptiveMode) String() string  { return adaptiveModes.name(m) }
func (b BlendOperator) String() string { return blendOperators.name(b) }

// ParseScaleMode parses "NONE", "ASPECT", "CROP" or "FIT".
func ParseScaleMode(s string) (ScaleMode, error) { return scaleModes.parse(s) }

// ParseEdgeMode parses "CLIP", "WRAP", "WRAPX" or "WRAPY".
func ParseEdgeMode(s string) (EdgeMode, error) { return edgeModes.parse(s) }

// ParseAxis parses "HORIZONTAL" or "VERTICAL".
func ParseAxis(s string) (Axis, error) { return axes.parse(s) }

// ParseThresholdMode parses "BINARY", "TRUNC" or "TOZERO".
func ParseThresholdMode(s string) (ThresholdMode, error) { return thresholdModes.parse(s) }

// ParseAdaptiveMode parses "NONE", "MEAN" or "GAUSSIAN" (also the
// "ADAPT_" prefixed spellings).
func ParseAdaptiveMode(s string) (AdaptiveMode, error) { return adaptiveModes.parse(s) }

// ParseBlendOperator parses an operator name such as "SOFT LIGHT" or
// "logical_xor".
func ParseBlendOperator(s string) (BlendOperator, error) { return blendOperators.parse(s) }

// ParseResample parses a filter name: "NEAREST", "LINEAR", "CUBIC",
// "LANCZOS" or "BOX".
func ParseResample(s string) (Resample, error) { return resamples.parse(s) }
