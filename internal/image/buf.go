package image

import (
	"errors"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is negative.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")
)

// ImageBuf is a tightly packed, interleaved 8-bit image buffer.
//
// Rows are contiguous: the stride is always Format.RowBytes(width). Zero
// width or height is allowed and yields an empty buffer; every operation on
// an empty buffer is a no-op.
//
// Thread safety: ImageBuf is safe for concurrent reads. Writes require
// external synchronization; the engine only writes to disjoint row bands.
type ImageBuf struct {
	data   []byte
	width  int
	height int
	format Format
}

// NewImageBuf creates a zeroed buffer with the given dimensions and format.
func NewImageBuf(width, height int, format Format) (*ImageBuf, error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	return &ImageBuf{
		data:   make([]byte, format.ImageBytes(width, height)),
		width:  width,
		height: height,
		format: format,
	}, nil
}

// New is NewImageBuf for callers that have already validated their
// arguments. Negative dimensions are clamped to zero.
func New(width, height int, format Format) *ImageBuf {
	b, err := NewImageBuf(max(width, 0), max(height, 0), format)
	if err != nil {
		panic(err)
	}
	return b
}

// FromRaw wraps existing packed data without copying.
func FromRaw(data []byte, width, height int, format Format) (*ImageBuf, error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	required := format.ImageBytes(width, height)
	if len(data) < required {
		return nil, ErrDataTooSmall
	}

	return &ImageBuf{
		data:   data[:required],
		width:  width,
		height: height,
		format: format,
	}, nil
}

// Clone creates a deep copy of the image buffer.
func (b *ImageBuf) Clone() *ImageBuf {
	data := make([]byte, len(b.data))
	copy(data, b.data)

	return &ImageBuf{
		data:   data,
		width:  b.width,
		height: b.height,
		format: b.format,
	}
}

// Width returns the image width in pixels.
func (b *ImageBuf) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *ImageBuf) Height() int {
	return b.height
}

// Stride returns the number of bytes per row.
func (b *ImageBuf) Stride() int {
	return b.format.RowBytes(b.width)
}

// Format returns the pixel format.
func (b *ImageBuf) Format() Format {
	return b.format
}

// Channels returns the number of bytes per pixel.
func (b *ImageBuf) Channels() int {
	return b.format.Channels()
}

// Bounds returns the image dimensions as (width, height).
func (b *ImageBuf) Bounds() (int, int) {
	return b.width, b.height
}

// Data returns the raw pixel data slice.
func (b *ImageBuf) Data() []byte {
	return b.data
}

// IsEmpty returns true if the image has zero area.
func (b *ImageBuf) IsEmpty() bool {
	return b.width == 0 || b.height == 0
}

// SameSize reports whether b and o have identical dimensions.
func (b *ImageBuf) SameSize(o *ImageBuf) bool {
	return b.width == o.width && b.height == o.height
}

// Row returns the pixel data of row y.
// Returns nil if y is out of bounds.
func (b *ImageBuf) Row(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	stride := b.Stride()
	return b.data[y*stride : (y+1)*stride]
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (b *ImageBuf) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return (y*b.width + x) * b.format.Channels()
}

// Pixel returns the bytes of pixel (x, y), or nil when out of bounds.
// The slice aliases the buffer.
func (b *ImageBuf) Pixel(x, y int) []byte {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return nil
	}
	return b.data[off : off+b.format.Channels()]
}

// At returns channel c of pixel (x, y), or 0 when out of bounds.
func (b *ImageBuf) At(x, y, c int) byte {
	off := b.PixelOffset(x, y)
	if off < 0 || c < 0 || c >= b.format.Channels() {
		return 0
	}
	return b.data[off+c]
}

// Set writes channel c of pixel (x, y). Out-of-bounds writes are ignored.
func (b *ImageBuf) Set(x, y, c int, v byte) {
	off := b.PixelOffset(x, y)
	if off < 0 || c < 0 || c >= b.format.Channels() {
		return
	}
	b.data[off+c] = v
}

// Clear sets all bytes to zero.
func (b *ImageBuf) Clear() {
	clear(b.data)
}

// Fill sets every pixel to px. Missing channels in px are written as zero;
// extra values are ignored.
func (b *ImageBuf) Fill(px ...byte) {
	ch := b.format.Channels()
	pattern := make([]byte, ch)
	copy(pattern, px)

	for i := 0; i < len(b.data); i += ch {
		copy(b.data[i:i+ch], pattern)
	}
}

// Region copies the rectangle [x0,x1) x [y0,y1) into a new buffer.
// The rectangle is intersected with the image bounds first.
func (b *ImageBuf) Region(x0, y0, x1, y1 int) *ImageBuf {
	x0, x1 = max(x0, 0), min(x1, b.width)
	y0, y1 = max(y0, 0), min(y1, b.height)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}

	out := New(x1-x0, y1-y0, b.format)
	ch := b.format.Channels()
	for y := y0; y < y1; y++ {
		src := b.Row(y)[x0*ch : x1*ch]
		copy(out.Row(y-y0), src)
	}
	return out
}

// Paste copies src into b with src's top-left corner at (x, y), clipping
// against b. Both buffers must share a format; otherwise Paste does nothing.
func (b *ImageBuf) Paste(src *ImageBuf, x, y int) {
	if src.format != b.format {
		return
	}
	ch := b.format.Channels()

	sx0 := max(0, -x)
	sy0 := max(0, -y)
	sx1 := min(src.width, b.width-x)
	sy1 := min(src.height, b.height-y)
	if sx1 <= sx0 || sy1 <= sy0 {
		return
	}

	for sy := sy0; sy < sy1; sy++ {
		srcRow := src.Row(sy)[sx0*ch : sx1*ch]
		dstRow := b.Row(sy + y)[(sx0+x)*ch:]
		copy(dstRow, srcRow)
	}
}

// Flip returns a mirrored copy. horizontal mirrors left-right (columns),
// otherwise top-bottom (rows).
func (b *ImageBuf) Flip(horizontal bool) *ImageBuf {
	out := New(b.width, b.height, b.format)
	ch := b.format.Channels()

	for y := range b.height {
		if !horizontal {
			copy(out.Row(b.height-1-y), b.Row(y))
			continue
		}
		src := b.Row(y)
		dst := out.Row(y)
		for x := range b.width {
			copy(dst[(b.width-1-x)*ch:(b.width-x)*ch], src[x*ch:(x+1)*ch])
		}
	}
	return out
}
