// Package image provides the interleaved 8-bit pixel storage used by jovi.
//
// This package implements the buffer model, border-aware sampling, and the
// affine, perspective and coordinate-field warp primitives the public
// operators are built on.
package image

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatGray8 is 8-bit single channel (masks, grayscale).
	FormatGray8 Format = iota

	// FormatBGR8 is 24-bit interleaved B,G,R (3 bytes per pixel, no alpha).
	// This is the canonical format of every color operator.
	FormatBGR8

	// FormatRGBA8 is 32-bit interleaved R,G,B,A. It only appears at the
	// boundary with the standard library image types.
	FormatRGBA8

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// Channels is the number of interleaved channels, one byte each.
	Channels int

	// IsGrayscale indicates if this is a single-channel format.
	IsGrayscale bool
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatGray8: {Channels: 1, IsGrayscale: true},
	FormatBGR8:  {Channels: 3},
	FormatRGBA8: {Channels: 4},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// Channels returns the number of channels (and bytes) per pixel.
func (f Format) Channels() int {
	return f.Info().Channels
}

// IsGrayscale returns true if this is a single-channel format.
func (f Format) IsGrayscale() bool {
	return f.Info().IsGrayscale
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatBGR8:
		return "BGR8"
	case FormatRGBA8:
		return "RGBA8"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.Channels()
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}
