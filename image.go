package gazoshori

import (
	"github.com/kyasu0118/gazoshori/internal/basics"
	"github.com/kyasu0118/gazoshori/internal/color"
	"github.com/kyasu0118/gazoshori/internal/image"
)

// Image is the generic typed image container: a flat pixel buffer plus
// width/height, indexed row-major. Its zero value is not usable; build
// one with NewGrayImage, NewRGBImage, NewHMBImage, or a decoder.
type Image[P any] = image.Image[P]

// Gray, RGB and HMB are the three supported pixel formats: single-channel
// luminance, 8-bit-per-channel truecolor, and the hue-magnitude-base
// chromatic model used by edge-preserving smoothing and edge detection.
type (
	Gray = color.Gray
	RGB  = color.RGB
	HMB  = color.HMB
)

// GrayImage, RGBImage and HMBImage are the three image container
// instantiations the rest of the library operates on.
type (
	GrayImage = Image[Gray]
	RGBImage  = Image[RGB]
	HMBImage  = Image[HMB]
)

// NewGrayImage allocates a width x height grayscale image, zero-filled.
func NewGrayImage(width, height int) GrayImage { return image.New[Gray](width, height) }

// NewRGBImage allocates a width x height truecolor image, zero-filled.
func NewRGBImage(width, height int) RGBImage { return image.New[RGB](width, height) }

// NewHMBImage allocates a width x height HMB image, zero-filled.
func NewHMBImage(width, height int) HMBImage { return image.New[HMB](width, height) }

// Pad builds a new image xRadius wider on each side and yRadius taller
// on each side, filled by mirroring img's border outward. It returns
// InvalidArgument if either radius exceeds the corresponding dimension
// of img.
func Pad[P any](img Image[P], xRadius, yRadius int) (Image[P], error) {
	return image.Pad(img, xRadius, yRadius)
}

// MirrorBorder samples img at (x, y), reflecting out-of-bounds
// coordinates back into range rather than clamping or wrapping.
func MirrorBorder[P any](img Image[P], x, y int) P {
	return image.MirrorBorder(img, x, y)
}

// Equal reports whether two images have equal dimensions and pixels.
func Equal[P comparable](a, b Image[P]) bool {
	return image.Equal(a, b)
}

// Rect and Circle are the regions Image[P].FillRect and Image[P].FillCircle
// accept, with integer components matching image pixel coordinates.
type (
	Rect   = basics.RectI
	Circle = basics.CircleI
)

// NewRect builds a Rect from an origin and size.
func NewRect(x, y, width, height int) Rect { return basics.NewRect(x, y, width, height) }

// NewCircle builds a Circle from a center and radius.
func NewCircle(x, y, radius int) Circle { return basics.NewCircle(x, y, radius) }
