package blend

// div255 divides x by 255, truncating, without a hardware division.
//
// Formula: ((x + 1) + ((x + 1) >> 8)) >> 8
//
// This is Alvy Ray Smith's formula; it equals x / 255 for every product of
// two bytes (0..65025).
func div255(x uint16) uint16 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// mulDiv255 returns a*b/255 truncated.
func mulDiv255(a, b byte) byte {
	return byte(div255(uint16(a) * uint16(b)))
}

// inv255 computes 255 - x.
func inv255(x byte) byte {
	return 255 - x
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// subClamp subtracts b from a, clamping to 0.
func subClamp(a, b byte) byte {
	if b >= a {
		return 0
	}
	return a - b
}

// clampInt saturates v to [0, 255].
func clampInt(v int) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
