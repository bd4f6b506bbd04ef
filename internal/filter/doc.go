// Package filter provides the neighborhood filters behind the adjustment
// operators:
//   - Gaussian and box kernels with a process-wide kernel cache
//   - Separable convolution over interleaved 8-bit buffers
//   - Fixed and adaptive thresholding
//   - Canny edge detection
//
// Borders default to reflect-101 (dcb|abcd|cba), matching the convention of
// the common computer-vision toolkits. Row loops run on the shared worker
// pool from internal/parallel.
package filter
