// Package blend implements the per-channel operators used by the compositor.
//
// The arithmetic operators follow the 8-bit integer formulas of the classic
// "channel operations" family (add, multiply, screen, overlay...): each
// takes two unpremultiplied channel values and returns the combined value,
// truncating intermediate divisions and saturating to [0, 255]. The logical
// operators are plain bitwise operations.
package blend

// Op identifies a blend operator.
type Op uint8

const (
	// OpLerp combines nothing; the compositor mixes A and B directly.
	OpLerp Op = iota
	OpAdd
	OpMinimum
	OpMaximum
	OpMultiply
	OpSoftLight
	OpHardLight
	OpOverlay
	OpScreen
	OpSubtract
	OpDifference
	OpLogicalAnd
	OpLogicalOr
	OpLogicalXor

	opCount
)

// Func combines channel a (from A) with channel b (from B).
type Func func(a, b byte) byte

// table maps every operator except OpLerp to its channel function.
var table = [opCount]Func{
	OpAdd:        Add,
	OpMinimum:    Darker,
	OpMaximum:    Lighter,
	OpMultiply:   Multiply,
	OpSoftLight:  SoftLight,
	OpHardLight:  HardLight,
	OpOverlay:    Overlay,
	OpScreen:     Screen,
	OpSubtract:   Subtract,
	OpDifference: Difference,
	OpLogicalAnd: And,
	OpLogicalOr:  Or,
	OpLogicalXor: Xor,
}

// Valid reports whether op names a known operator.
func (op Op) Valid() bool {
	return op < opCount
}

// Lookup returns the channel function for op. It returns nil, true for
// OpLerp and nil, false for unknown operators.
func Lookup(op Op) (Func, bool) {
	if !op.Valid() {
		return nil, false
	}
	return table[op], true
}

// Apply writes fn(a[i], b[i]) into dst for every byte. The slices must
// have equal length.
func Apply(dst, a, b []byte, fn Func) {
	b = b[:len(a)]
	dst = dst[:len(a)]
	for i := range a {
		dst[i] = fn(a[i], b[i])
	}
}

// Add returns min(a+b, 255).
func Add(a, b byte) byte { return addClamp(a, b) }

// Subtract returns max(a-b, 0).
func Subtract(a, b byte) byte { return subClamp(a, b) }

// Darker returns the smaller channel value.
func Darker(a, b byte) byte { return min(a, b) }

// Lighter returns the larger channel value.
func Lighter(a, b byte) byte { return max(a, b) }

// Difference returns |a-b|.
func Difference(a, b byte) byte {
	if a > b {
		return a - b
	}
	return b - a
}

// Multiply returns a*b/255.
func Multiply(a, b byte) byte { return mulDiv255(a, b) }

// Screen returns 255 - (255-a)(255-b)/255.
func Screen(a, b byte) byte {
	return inv255(mulDiv255(inv255(a), inv255(b)))
}

// Overlay multiplies or screens depending on the base channel a.
func Overlay(a, b byte) byte {
	return hardMix(a, b, a)
}

// HardLight multiplies or screens depending on the blend channel b.
func HardLight(a, b byte) byte {
	return hardMix(a, b, b)
}

// hardMix is the shared overlay/hard-light formula keyed on k:
// k < 128 gives a*b/127, otherwise 255 - (255-a)(255-b)/127.
func hardMix(a, b, k byte) byte {
	ia, ib := int(a), int(b)
	if k < 128 {
		return clampInt(ia * ib / 127)
	}
	return clampInt(255 - (255-ia)*(255-ib)/127)
}

// SoftLight darkens or lightens a depending on b, never reaching pure
// black or white unless a already is.
func SoftLight(a, b byte) byte {
	ia, ib := int(a), int(b)
	return clampInt((255-ia)*(ia*ib)/65536 + ia*(255-(255-ia)*(255-ib)/255)/255)
}

// And returns a & b.
func And(a, b byte) byte { return a & b }

// Or returns a | b.
func Or(a, b byte) byte { return a | b }

// Xor returns a ^ b.
func Xor(a, b byte) byte { return a ^ b }
