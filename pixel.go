package jovi

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	intColor "github.com/flowtyone/jovi/internal/color"
	intImage "github.com/flowtyone/jovi/internal/image"
)

// Errors returned at construction boundaries. Operators themselves never
// fail.
var (
	// ErrInvalidDimensions is returned when width or height is negative.
	ErrInvalidDimensions = errors.New("jovi: invalid dimensions")

	// ErrNilImage is returned when a nil image.Image is converted.
	ErrNilImage = errors.New("jovi: nil image")

	// ErrDataSize is returned when raw data does not match the dimensions.
	ErrDataSize = errors.New("jovi: data length does not match dimensions")
)

// Color is an 8-bit RGB fill color.
type Color struct {
	R, G, B uint8
}

// Common colors.
var (
	Black = Color{}
	White = Color{R: 255, G: 255, B: 255}
)

// bgr returns the color in buffer channel order.
func (c Color) bgr() [4]byte {
	return [4]byte{c.B, c.G, c.R, 0}
}

// gray returns the luma of the color.
func (c Color) gray() byte {
	return intColor.Gray(c.B, c.G, c.R)
}

// fillFor returns the fill bytes for a buffer of the given format.
func (c Color) fillFor(f intImage.Format) [4]byte {
	if f == intImage.FormatGray8 {
		return [4]byte{c.gray()}
	}
	return c.bgr()
}

// PixelBuffer is a height x width x 3 image with 8 bits per channel stored
// in B, G, R order.
//
// A PixelBuffer is owned by whoever holds it. Every operator returns a new
// buffer and never modifies or retains its inputs.
type PixelBuffer struct {
	buf *intImage.ImageBuf
}

// NewPixelBuffer creates a black buffer. Zero dimensions are allowed.
func NewPixelBuffer(width, height int) (*PixelBuffer, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &PixelBuffer{buf: intImage.New(width, height, intImage.FormatBGR8)}, nil
}

// Solid creates a buffer filled with c. Negative dimensions are treated
// as zero.
func Solid(width, height int, c Color) *PixelBuffer {
	buf := intImage.New(width, height, intImage.FormatBGR8)
	v := c.bgr()
	buf.Fill(v[:3]...)
	return &PixelBuffer{buf: buf}
}

// FromBGR copies tightly packed B, G, R bytes into a new buffer.
func FromBGR(data []byte, width, height int) (*PixelBuffer, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(data) != width*height*3 {
		return nil, fmt.Errorf("%w: got %d bytes for %dx%d", ErrDataSize, len(data), width, height)
	}
	buf, err := intImage.FromRaw(bytes.Clone(data), width, height, intImage.FormatBGR8)
	if err != nil {
		return nil, fmt.Errorf("jovi: wrap pixels: %w", err)
	}
	return &PixelBuffer{buf: buf}, nil
}

// FromImage converts any image.Image into a PixelBuffer. Alpha is dropped
// after un-premultiplying.
func FromImage(img image.Image) (*PixelBuffer, error) {
	buf, err := intImage.FromStdImage(img, intImage.FormatBGR8)
	if err != nil {
		if errors.Is(err, intImage.ErrNilImage) {
			return nil, ErrNilImage
		}
		return nil, fmt.Errorf("jovi: convert image: %w", err)
	}
	return &PixelBuffer{buf: buf}, nil
}

// Load reads an image file into a PixelBuffer. The format is detected
// from the content among the decoders registered with package image.
func Load(path string) (*PixelBuffer, error) {
	buf, err := intImage.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("jovi: load %s: %w", path, err)
	}
	return &PixelBuffer{buf: buf}, nil
}

// SavePNG writes the buffer to path as a PNG file.
func (p *PixelBuffer) SavePNG(path string) error {
	return p.buf.SavePNG(path)
}

// SaveJPEG writes the buffer to path as a JPEG file. Quality is clamped
// to 1-100.
func (p *PixelBuffer) SaveJPEG(path string, quality int) error {
	return p.buf.SaveJPEG(path, quality)
}

// pixels wraps an internal BGR8 buffer, converting gray input.
func pixels(buf *intImage.ImageBuf) *PixelBuffer {
	if buf.Format().IsGrayscale() {
		buf = intColor.GrayToBGR(buf)
	}
	return &PixelBuffer{buf: buf}
}

// Width returns the buffer width in pixels.
func (p *PixelBuffer) Width() int { return p.buf.Width() }

// Height returns the buffer height in pixels.
func (p *PixelBuffer) Height() int { return p.buf.Height() }

// Bounds returns the width and height.
func (p *PixelBuffer) Bounds() (int, int) { return p.buf.Bounds() }

// IsEmpty reports whether the buffer has zero area.
func (p *PixelBuffer) IsEmpty() bool { return p.buf.IsEmpty() }

// Pix returns the underlying B, G, R bytes, row-major with no padding.
// Writes through the slice modify the buffer.
func (p *PixelBuffer) Pix() []byte { return p.buf.Data() }

// At returns the color at (x, y), or Black outside the buffer.
func (p *PixelBuffer) At(x, y int) Color {
	px := p.buf.Pixel(x, y)
	if px == nil {
		return Black
	}
	return Color{R: px[2], G: px[1], B: px[0]}
}

// Set writes c at (x, y). Out-of-range coordinates are ignored.
func (p *PixelBuffer) Set(x, y int, c Color) {
	if px := p.buf.Pixel(x, y); px != nil {
		px[0], px[1], px[2] = c.B, c.G, c.R
	}
}

// Clone returns a deep copy.
func (p *PixelBuffer) Clone() *PixelBuffer {
	return &PixelBuffer{buf: p.buf.Clone()}
}

// Equal reports whether both buffers have the same size and bytes.
func (p *PixelBuffer) Equal(o *PixelBuffer) bool {
	if !p.buf.SameSize(o.buf) {
		return false
	}
	return bytes.Equal(p.buf.Data(), o.buf.Data())
}

// Image returns the buffer as an opaque *image.NRGBA.
func (p *PixelBuffer) Image() image.Image {
	return p.buf.ToStdImage()
}

// Gray returns the luma of the buffer as a Mask.
func (p *PixelBuffer) Gray() *Mask {
	return &Mask{buf: intColor.ToGray(p.buf)}
}

// Float returns the buffer scaled to [0, 1] per channel.
func (p *PixelBuffer) Float() *FloatImage {
	w, h := p.Bounds()
	f := &FloatImage{Width: w, Height: h, Pix: make([]float32, len(p.buf.Data()))}
	for i, v := range p.buf.Data() {
		f.Pix[i] = float32(v) / 255
	}
	return f
}

// Mask is a single-channel 8-bit coverage buffer: 0 selects the first
// source of a composite, 255 the second.
type Mask struct {
	buf *intImage.ImageBuf
}

// NewMask creates an all-zero mask.
func NewMask(width, height int) (*Mask, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Mask{buf: intImage.New(width, height, intImage.FormatGray8)}, nil
}

// FullMask creates a mask with full coverage everywhere.
func FullMask(width, height int) *Mask {
	buf := intImage.New(width, height, intImage.FormatGray8)
	buf.Fill(255)
	return &Mask{buf: buf}
}

// MaskFromFloat quantizes normalized coverage values into a mask. Values
// are clipped to [0, 1].
func MaskFromFloat(values []float32, width, height int) (*Mask, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(values) != width*height {
		return nil, fmt.Errorf("%w: got %d values for %dx%d", ErrDataSize, len(values), width, height)
	}
	buf := intImage.New(width, height, intImage.FormatGray8)
	out := buf.Data()
	for i, v := range values {
		out[i] = intImage.RoundByte(float64(v) * 255)
	}
	return &Mask{buf: buf}, nil
}

// MaskFromImage converts any image.Image into a mask using its luma.
func MaskFromImage(img image.Image) (*Mask, error) {
	buf, err := intImage.FromStdImage(img, intImage.FormatGray8)
	if err != nil {
		if errors.Is(err, intImage.ErrNilImage) {
			return nil, ErrNilImage
		}
		return nil, fmt.Errorf("jovi: convert mask: %w", err)
	}
	return &Mask{buf: buf}, nil
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.buf.Width() }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.buf.Height() }

// Bounds returns the width and height.
func (m *Mask) Bounds() (int, int) { return m.buf.Bounds() }

// IsEmpty reports whether the mask has zero area.
func (m *Mask) IsEmpty() bool { return m.buf.IsEmpty() }

// Pix returns the underlying coverage bytes.
func (m *Mask) Pix() []byte { return m.buf.Data() }

// At returns the coverage at (x, y), or 0 outside the mask.
func (m *Mask) At(x, y int) uint8 { return m.buf.At(x, y, 0) }

// Set writes the coverage at (x, y). Out-of-range coordinates are ignored.
func (m *Mask) Set(x, y int, v uint8) { m.buf.Set(x, y, 0, v) }

// Clone returns a deep copy.
func (m *Mask) Clone() *Mask {
	return &Mask{buf: m.buf.Clone()}
}

// Image returns the mask as an *image.Gray.
func (m *Mask) Image() image.Image {
	return m.buf.ToStdImage()
}

// Resize returns the mask scaled to exactly width x height.
func (m *Mask) Resize(width, height int, r Resample) *Mask {
	return &Mask{buf: intImage.Resize(m.buf, width, height, r)}
}

// Float returns the coverage normalized to [0, 1].
func (m *Mask) Float() []float32 {
	out := make([]float32, len(m.buf.Data()))
	for i, v := range m.buf.Data() {
		out[i] = float32(v) / 255
	}
	return out
}

// PixelBuffer expands the mask into a gray three-channel buffer.
func (m *Mask) PixelBuffer() *PixelBuffer {
	return pixels(m.buf)
}

// FloatImage is a three-channel floating-point image in B, G, R order,
// nominally in [0, 1]. It is the working format of Levels.
type FloatImage struct {
	Width, Height int
	Pix           []float32
}

// PixelBuffer converts f back to 8 bits, clipping to [0, 1].
func (f *FloatImage) PixelBuffer() *PixelBuffer {
	buf := intImage.New(f.Width, f.Height, intImage.FormatBGR8)
	out := buf.Data()
	for i := range min(len(out), len(f.Pix)) {
		out[i] = intImage.RoundByte(float64(f.Pix[i]) * 255)
	}
	return &PixelBuffer{buf: buf}
}
