package blend

import "testing"

// TestDiv255 checks Smith's formula against integer division over the
// whole range of byte products.
func TestDiv255(t *testing.T) {
	for x := 0; x <= 255*255; x++ {
		if got, want := int(div255(uint16(x))), x/255; got != want {
			t.Fatalf("div255(%d) = %d, want %d", x, got, want)
		}
	}
}

func TestMulDiv255(t *testing.T) {
	tests := []struct {
		a, b     byte
		expected byte
	}{
		{0, 0, 0},
		{255, 255, 255},
		{0, 255, 0},
		{128, 128, 64},
		{200, 100, 78},
		{1, 255, 1},
		{127, 127, 63},
	}

	for _, tt := range tests {
		if got := mulDiv255(tt.a, tt.b); got != tt.expected {
			t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestClampHelpers(t *testing.T) {
	tests := []struct {
		name string
		got  byte
		want byte
	}{
		{"inv255 0", inv255(0), 255},
		{"inv255 128", inv255(128), 127},
		{"addClamp", addClamp(200, 100), 255},
		{"addClamp exact", addClamp(100, 155), 255},
		{"addClamp small", addClamp(1, 2), 3},
		{"subClamp", subClamp(10, 20), 0},
		{"subClamp positive", subClamp(20, 10), 10},
		{"clampInt low", clampInt(-5), 0},
		{"clampInt high", clampInt(300), 255},
		{"clampInt mid", clampInt(42), 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %d, want %d", tt.got, tt.want)
			}
		})
	}
}
