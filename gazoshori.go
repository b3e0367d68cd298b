// Package gazoshori provides a self-contained 2D raster image processing
// library: a typed image container plus a family of pixel-wise and
// neighborhood operators (resampling, resize, convolution, edge-preserving
// smoothing, blend modes, color-space conversion, color-temperature
// correction, edge detection) and a minimal uncompressed BMP codec.
//
// The library is organized into focused, domain-specific files mirroring
// the package layout under internal/:
//
//   - image.go      - the generic typed image container and fills
//   - resample.go   - nearest/bilinear/bicubic sampling kernels
//   - resize.go     - size/scale with any sampling kernel, plus super-resize
//   - filters.go    - separable Gaussian blur, n x n convolution,
//     edge-preserving Gaussian, dark-channel restore, color temperature
//   - convert.go    - GRAY/RGB/HMB color-space conversion
//   - blend.go      - the photographic blend modes
//   - edge.go       - gradient-direction edge detection
//   - bmp.go        - BMP read/write
//
// Every pixel-wise and neighborhood operator shares a common fixed-point
// arithmetic convention (internal/basics.FixedPointScale) and a common
// "color accumulator" numeric type (internal/color) that is the design's
// central idea: widen to an accumulator, do the arithmetic in headroom,
// narrow back to a saturated pixel.
package gazoshori

import "github.com/kyasu0118/gazoshori/internal/basics"

// Version identifies this library's API surface.
const Version = "1.0.0"

// FixedPointShift and FixedPointScale are the shift/scale pair behind
// every >>10 narrowing operation in the filters and blend modes.
const (
	FixedPointShift = basics.FixedPointShift
	FixedPointScale = basics.FixedPointScale
)
