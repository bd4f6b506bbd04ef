package jovi

import "testing"

func TestSetWorkers(t *testing.T) {
	defer SetWorkers(0)

	src := newPattern(64, 64)
	want := Rotate(src, 30)

	for _, n := range []int{1, 3} {
		SetWorkers(n)
		if got := Rotate(src, 30); !got.Equal(want) {
			t.Errorf("SetWorkers(%d) changed the result", n)
		}
	}
}

func TestResetCaches(t *testing.T) {
	src := newPattern(16, 16)
	want := UnsharpMask(src, 5, 1, 1, 0)

	ResetCaches()
	if got := UnsharpMask(src, 5, 1, 1, 0); !got.Equal(want) {
		t.Error("results should not depend on cached kernels")
	}
}

func TestBlendOptionDefaults(t *testing.T) {
	o := defaultBlendOptions()
	if o.alpha != 1 || o.mode != ScaleModeNone || o.resample != ResampleLanczos || o.mask != nil {
		t.Errorf("defaultBlendOptions() = %+v", o)
	}

	m := FullMask(1, 1)
	for _, opt := range []BlendOption{WithMask(m), WithAlpha(0.25), WithScaleMode(ScaleModeFit), WithResample(ResampleBox)} {
		opt(&o)
	}
	if o.mask != m || o.alpha != 0.25 || o.mode != ScaleModeFit || o.resample != ResampleBox {
		t.Errorf("options not applied: %+v", o)
	}
}

func TestCropOptions(t *testing.T) {
	var o cropOptions
	for _, opt := range []CropOption{WithTarget(5, 6), WithPad(true), WithFill(White)} {
		opt(&o)
	}
	if !o.hasTarget || o.width != 5 || o.height != 6 || !o.pad || o.fill != White {
		t.Errorf("crop options not applied: %+v", o)
	}
}
