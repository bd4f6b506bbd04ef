package image

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewImageBuf(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		format  Format
		wantErr error
	}{
		{"valid BGR8", 100, 100, FormatBGR8, nil},
		{"valid Gray8", 50, 50, FormatGray8, nil},
		{"valid RGBA8", 3, 2, FormatRGBA8, nil},
		{"zero width", 0, 100, FormatBGR8, nil},
		{"zero height", 100, 0, FormatBGR8, nil},
		{"negative width", -1, 100, FormatBGR8, ErrInvalidDimensions},
		{"negative height", 100, -1, FormatBGR8, ErrInvalidDimensions},
		{"invalid format", 10, 10, Format(255), ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := NewImageBuf(tt.width, tt.height, tt.format)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewImageBuf() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if buf.Width() != tt.width || buf.Height() != tt.height {
				t.Errorf("Bounds() = %dx%d, want %dx%d", buf.Width(), buf.Height(), tt.width, tt.height)
			}
			if got, want := len(buf.Data()), tt.width*tt.height*tt.format.Channels(); got != want {
				t.Errorf("len(Data()) = %d, want %d", got, want)
			}
			if buf.IsEmpty() != (tt.width == 0 || tt.height == 0) {
				t.Errorf("IsEmpty() = %v", buf.IsEmpty())
			}
		})
	}
}

func TestFromRaw(t *testing.T) {
	if _, err := FromRaw(make([]byte, 5), 2, 1, FormatBGR8); !errors.Is(err, ErrDataTooSmall) {
		t.Errorf("FromRaw(short) error = %v, want ErrDataTooSmall", err)
	}

	data := []byte{1, 2, 3, 4, 5, 6}
	buf, err := FromRaw(data, 2, 1, FormatBGR8)
	if err != nil {
		t.Fatalf("FromRaw() error = %v", err)
	}
	buf.Set(0, 0, 0, 9)
	if data[0] != 9 {
		t.Error("FromRaw should alias the provided slice")
	}
}

func TestPixelAccess(t *testing.T) {
	buf := New(3, 2, FormatBGR8)
	buf.Set(2, 1, 1, 42)

	if got := buf.At(2, 1, 1); got != 42 {
		t.Errorf("At(2,1,1) = %d, want 42", got)
	}
	if got := buf.At(5, 5, 0); got != 0 {
		t.Errorf("At(out of bounds) = %d, want 0", got)
	}
	if px := buf.Pixel(-1, 0); px != nil {
		t.Errorf("Pixel(out of bounds) = %v, want nil", px)
	}
	if off := buf.PixelOffset(2, 1); off != 15 {
		t.Errorf("PixelOffset(2,1) = %d, want 15", off)
	}

	// Out-of-bounds writes are ignored.
	buf.Set(10, 10, 0, 1)
	buf.Set(0, 0, 7, 1)
}

func TestFillAndClone(t *testing.T) {
	buf := New(4, 4, FormatBGR8)
	buf.Fill(10, 20, 30)

	clone := buf.Clone()
	buf.Fill(0, 0, 0)

	for y := range 4 {
		for x := range 4 {
			if px := clone.Pixel(x, y); !bytes.Equal(px, []byte{10, 20, 30}) {
				t.Fatalf("clone pixel (%d,%d) = %v, want [10 20 30]", x, y, px)
			}
		}
	}
}

func TestRegion(t *testing.T) {
	buf := New(4, 3, FormatGray8)
	for y := range 3 {
		for x := range 4 {
			buf.Set(x, y, 0, byte(y*4+x))
		}
	}

	tests := []struct {
		name          string
		x0, y0, x1, y1 int
		wantW, wantH  int
		wantFirst     byte
	}{
		{"inner", 1, 1, 3, 3, 2, 2, 5},
		{"clipped", -2, -2, 2, 1, 2, 1, 0},
		{"full", 0, 0, 4, 3, 4, 3, 0},
		{"inverted", 3, 2, 1, 1, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := buf.Region(tt.x0, tt.y0, tt.x1, tt.y1)
			if r.Width() != tt.wantW || r.Height() != tt.wantH {
				t.Fatalf("Region size = %dx%d, want %dx%d", r.Width(), r.Height(), tt.wantW, tt.wantH)
			}
			if !r.IsEmpty() && r.At(0, 0, 0) != tt.wantFirst {
				t.Errorf("Region first pixel = %d, want %d", r.At(0, 0, 0), tt.wantFirst)
			}
		})
	}
}

func TestPaste(t *testing.T) {
	dst := New(4, 4, FormatGray8)
	src := New(2, 2, FormatGray8)
	src.Fill(200)

	dst.Paste(src, 3, -1)
	if got := dst.At(3, 0, 0); got != 200 {
		t.Errorf("pasted pixel = %d, want 200", got)
	}
	if got := dst.At(2, 0, 0); got != 0 {
		t.Errorf("untouched pixel = %d, want 0", got)
	}
	if got := dst.At(3, 1, 0); got != 0 {
		t.Errorf("clipped row pixel = %d, want 0", got)
	}

	// Mismatched formats are ignored.
	dst.Paste(New(2, 2, FormatBGR8), 0, 0)
}

func TestFlip(t *testing.T) {
	buf := New(3, 2, FormatGray8)
	copy(buf.Data(), []byte{1, 2, 3, 4, 5, 6})

	h := buf.Flip(true)
	if !bytes.Equal(h.Data(), []byte{3, 2, 1, 6, 5, 4}) {
		t.Errorf("Flip(horizontal) = %v", h.Data())
	}
	v := buf.Flip(false)
	if !bytes.Equal(v.Data(), []byte{4, 5, 6, 1, 2, 3}) {
		t.Errorf("Flip(vertical) = %v", v.Data())
	}
}

func TestFormatInfo(t *testing.T) {
	tests := []struct {
		format   Format
		channels int
		name     string
	}{
		{FormatGray8, 1, "Gray8"},
		{FormatBGR8, 3, "BGR8"},
		{FormatRGBA8, 4, "RGBA8"},
		{Format(99), 0, "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format.Channels(); got != tt.channels {
				t.Errorf("Channels() = %d, want %d", got, tt.channels)
			}
			if got := tt.format.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.format.IsGrayscale(); got != (tt.format == FormatGray8) {
				t.Errorf("IsGrayscale() = %v", got)
			}
		})
	}
}

func TestPool(t *testing.T) {
	p := NewPool(1)

	a := p.Get(2, 2, FormatBGR8)
	a.Fill(1, 2, 3)
	p.Put(a)
	p.Put(New(2, 2, FormatBGR8))
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (bucket capacity)", p.Len())
	}

	b := p.Get(2, 2, FormatBGR8)
	if b != a {
		t.Error("Get should reuse the pooled buffer")
	}
	for _, v := range b.Data() {
		if v != 0 {
			t.Fatal("reused buffer must be cleared")
		}
	}

	p.Put(b)
	p.Reset()
	if p.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", p.Len())
	}
}

func TestScratchReset(t *testing.T) {
	ResetScratch()
	PutScratch(GetScratch(3, 3, FormatBGR8))
	PutScratch(GetScratch(5, 1, FormatGray8))

	if n := ResetScratch(); n != 2 {
		t.Errorf("ResetScratch() dropped %d buffers, want 2", n)
	}
	if n := ResetScratch(); n != 0 {
		t.Errorf("second ResetScratch() dropped %d buffers, want 0", n)
	}
}
