package jovi

import "testing"

func TestSplit(t *testing.T) {
	src := newSolid(3, 2, Color{R: 3, G: 2, B: 1})
	images, masks := Split(src)

	wantImages := [3]Color{{R: 3}, {G: 2}, {B: 1}}
	wantMasks := [3]uint8{3, 2, 1}
	for k := range 3 {
		if got := images[k].At(2, 1); got != wantImages[k] {
			t.Errorf("images[%d] = %v, want %v", k, got, wantImages[k])
		}
		if got := masks[k].At(2, 1); got != wantMasks[k] {
			t.Errorf("masks[%d] = %d, want %d", k, got, wantMasks[k])
		}
	}
}

func TestSplitMergeRoundTrip(t *testing.T) {
	src := newPattern(7, 5)
	_, m := Split(src)

	out := Merge(m[0], m[1], m[2], nil, 0, 0, ScaleModeNone, ResampleLinear)
	if !out.Equal(src) {
		t.Error("merging split channels should rebuild the buffer")
	}
}

func TestMerge(t *testing.T) {
	red := FullMask(2, 2)

	t.Run("missing channels are black", func(t *testing.T) {
		out := Merge(red, nil, nil, nil, 0, 0, ScaleModeNone, ResampleLinear)
		if got := out.At(1, 1); got != (Color{R: 255}) {
			t.Errorf("Merge() = %v, want pure red", got)
		}
	})

	t.Run("largest channel sets size", func(t *testing.T) {
		alpha := FullMask(6, 3)
		out := Merge(red, nil, nil, alpha, 0, 0, ScaleModeNone, ResampleLinear)
		if out.Width() != 6 || out.Height() != 3 {
			t.Errorf("Merge() = %dx%d, want 6x3", out.Width(), out.Height())
		}
		if got := out.At(5, 2); !near(got, Color{R: 255}, 1) {
			t.Errorf("stretched channel = %v, want pure red", got)
		}
	})

	t.Run("target size", func(t *testing.T) {
		out := Merge(red, red, red, nil, 5, 4, ScaleModeFit, ResampleLinear)
		if !approxEqual(out, newSolid(5, 4, White), 1) {
			t.Error("Merge should fit to the target and keep white")
		}
	})
}

func TestGraySized(t *testing.T) {
	m := GraySized(newSolid(4, 4, White), 2, 3, ResampleLinear)
	if m.Width() != 2 || m.Height() != 3 {
		t.Fatalf("GraySized() = %dx%d, want 2x3", m.Width(), m.Height())
	}
	if m.At(1, 2) < 254 {
		t.Errorf("gray of white = %d, want 255", m.At(1, 2))
	}
}
