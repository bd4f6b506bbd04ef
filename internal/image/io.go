package image

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// I/O errors.
var (
	// ErrNilImage is returned when a nil standard library image is converted.
	ErrNilImage = errors.New("image: nil image")
)

// LoadImage loads an image from the given file path as BGR8, auto-detecting
// the format among the decoders registered with the image package.
func LoadImage(path string) (*ImageBuf, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from the given reader as BGR8.
func Decode(r io.Reader) (*ImageBuf, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromStdImage(img, FormatBGR8)
}

// SavePNG saves the image as a PNG file.
func (b *ImageBuf) SavePNG(path string) error {
	return b.saveFile(path, b.EncodePNG)
}

// SaveJPEG saves the image as a JPEG file with the given quality
// (clamped to 1-100).
func (b *ImageBuf) SaveJPEG(path string, quality int) error {
	return b.saveFile(path, func(w io.Writer) error {
		return b.EncodeJPEG(w, quality)
	})
}

func (b *ImageBuf) saveFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := encode(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// EncodePNG encodes the image as PNG to the given writer.
func (b *ImageBuf) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.ToStdImage()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// EncodeJPEG encodes the image as JPEG to the given writer with the given
// quality (clamped to 1-100).
func (b *ImageBuf) EncodeJPEG(w io.Writer, quality int) error {
	quality = clamp(quality, 1, 100)
	if err := jpeg.Encode(w, b.ToStdImage(), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("image: encode JPEG: %w", err)
	}
	return nil
}

// FromStdImage converts a standard library image into format, which must be
// FormatBGR8 or FormatGray8. Alpha is discarded; gray conversion uses the
// standard library luminance weights.
func FromStdImage(img image.Image, format Format) (*ImageBuf, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	if format != FormatBGR8 && format != FormatGray8 {
		return nil, ErrInvalidFormat
	}

	bounds := img.Bounds()
	buf := New(bounds.Dx(), bounds.Dy(), format)

	switch m := img.(type) {
	case *image.Gray:
		if format == FormatGray8 {
			for y := range buf.height {
				start := y * m.Stride
				copy(buf.Row(y), m.Pix[start:start+buf.width])
			}
			return buf, nil
		}
	case *image.NRGBA:
		if format == FormatBGR8 {
			for y := range buf.height {
				src := m.Pix[y*m.Stride:]
				dst := buf.Row(y)
				for x := range buf.width {
					dst[x*3], dst[x*3+1], dst[x*3+2] = src[x*4+2], src[x*4+1], src[x*4]
				}
			}
			return buf, nil
		}
	}

	for y := range buf.height {
		dst := buf.Row(y)
		for x := range buf.width {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			if format == FormatGray8 {
				dst[x] = color.GrayModel.Convert(c).(color.Gray).Y
				continue
			}
			n := color.NRGBAModel.Convert(c).(color.NRGBA)
			dst[x*3], dst[x*3+1], dst[x*3+2] = n.B, n.G, n.R
		}
	}
	return buf, nil
}

// ToStdImage converts the buffer to a standard library image: *image.Gray
// for Gray8, *image.NRGBA (opaque, channels reordered) for BGR8 and RGBA8.
func (b *ImageBuf) ToStdImage() image.Image {
	rect := image.Rect(0, 0, b.width, b.height)

	switch b.format {
	case FormatGray8:
		gray := image.NewGray(rect)
		for y := range b.height {
			copy(gray.Pix[y*gray.Stride:], b.Row(y))
		}
		return gray

	case FormatRGBA8:
		nrgba := image.NewNRGBA(rect)
		for y := range b.height {
			copy(nrgba.Pix[y*nrgba.Stride:], b.Row(y))
		}
		return nrgba

	default:
		nrgba := image.NewNRGBA(rect)
		for y := range b.height {
			row := b.Row(y)
			dst := nrgba.Pix[y*nrgba.Stride:]
			for x := range b.width {
				dst[x*4] = row[x*3+2]   // R <- B slot
				dst[x*4+1] = row[x*3+1] // G
				dst[x*4+2] = row[x*3]   // B <- R slot
				dst[x*4+3] = 255
			}
		}
		return nrgba
	}
}
