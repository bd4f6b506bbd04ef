package jovi

import (
	"github.com/flowtyone/jovi/internal/filter"
	intImage "github.com/flowtyone/jovi/internal/image"
	"github.com/flowtyone/jovi/internal/parallel"
)

// CropOption configures Crop.
//
// Example:
//
//	// Center the crop on a 512x512 gray canvas.
//	out := jovi.Crop(buf, 0.1, 0.1, 0.9, 0.9,
//	    jovi.WithTarget(512, 512), jovi.WithPad(true), jovi.WithFill(jovi.Color{R: 128, G: 128, B: 128}))
type CropOption func(*cropOptions)

// cropOptions holds optional configuration for Crop.
type cropOptions struct {
	width, height int
	hasTarget     bool
	pad           bool
	fill          Color
}

// WithTarget sets the canvas size used when padding. Without it the
// canvas matches the source size.
func WithTarget(width, height int) CropOption {
	return func(o *cropOptions) {
		o.width, o.height = max(width, 0), max(height, 0)
		o.hasTarget = true
	}
}

// WithPad centers the crop on a solid canvas of the target size. Content
// that does not fit is clipped.
func WithPad(pad bool) CropOption {
	return func(o *cropOptions) {
		o.pad = pad
	}
}

// WithFill sets the canvas color used when padding. The default is Black.
func WithFill(c Color) CropOption {
	return func(o *cropOptions) {
		o.fill = c
	}
}

// BlendOption configures Blend.
type BlendOption func(*blendOptions)

// blendOptions holds optional configuration for Blend.
type blendOptions struct {
	mask     *Mask
	alpha    float64
	mode     ScaleMode
	resample Resample
}

// defaultBlendOptions returns the default blend options: no mask, full
// alpha, no final scaling, Lanczos resampling.
func defaultBlendOptions() blendOptions {
	return blendOptions{
		alpha:    1,
		mode:     ScaleModeNone,
		resample: ResampleLanczos,
	}
}

// WithMask sets the coverage mask gating the blend result. Without a mask
// Blend returns the first source.
func WithMask(m *Mask) BlendOption {
	return func(o *blendOptions) {
		o.mask = m
	}
}

// WithAlpha scales the mask. It is clipped to [0, 1].
func WithAlpha(alpha float64) BlendOption {
	return func(o *blendOptions) {
		o.alpha = alpha
	}
}

// WithScaleMode sets how the result reaches the requested size.
func WithScaleMode(mode ScaleMode) BlendOption {
	return func(o *blendOptions) {
		o.mode = mode
	}
}

// WithResample sets the filter used for size reconciliation and the final
// scale.
func WithResample(r Resample) BlendOption {
	return func(o *blendOptions) {
		o.resample = r
	}
}

// SetWorkers sets the number of goroutines the per-pixel loops fan out
// to. n <= 0 selects GOMAXPROCS.
func SetWorkers(n int) {
	parallel.SetWorkers(n)
}

// ResetCaches drops the process-wide Gaussian kernel cache and the
// scratch buffer pool.
func ResetCaches() {
	kernels := filter.ResetKernelCache()
	buffers := intImage.ResetScratch()
	Logger().Debug("reset caches", "kernels", kernels, "buffers", buffers)
}
