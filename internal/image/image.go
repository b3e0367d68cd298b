// Package image provides the fixed-size, row-major pixel container shared
// by every operation in this engine: resampling, filtering, blending,
// color conversion, edge detection and the BMP codec all read and write
// through Image[P].
package image

import (
	"github.com/kyasu0118/gazoshori/internal/basics"
	"github.com/kyasu0118/gazoshori/internal/gserr"
)

// Image is a width*height grid of pixels of type P, stored row-major with
// no padding between rows. P is typically one of the color package's
// pixel formats (Gray, RGB, RGBA, GrayF, HMB) but any value type works.
type Image[P any] struct {
	width, height int
	pix           []P
}

// New allocates a width x height image with every pixel at its zero
// value.
func New[P any](width, height int) Image[P] {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	return Image[P]{
		width:  width,
		height: height,
		pix:    make([]P, width*height),
	}
}

// Empty returns a zero-sized image, useful as a "no result" sentinel.
func Empty[P any]() Image[P] {
	return Image[P]{}
}

// Width returns the image width in pixels.
func (im Image[P]) Width() int { return im.width }

// Height returns the image height in pixels.
func (im Image[P]) Height() int { return im.height }

// Bounds returns the image's rectangle, with origin at (0,0).
func (im Image[P]) Bounds() basics.RectI {
	return basics.NewRect(0, 0, im.width, im.height)
}

// Index returns the flat pix-slice offset of pixel (x,y). Callers that
// have already bounds-checked x,y can use this to avoid a second bounds
// check in At/Set.
func (im Image[P]) Index(x, y int) int {
	return y*im.width + x
}

// InBounds reports whether (x,y) addresses a pixel of im.
func (im Image[P]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < im.width && y < im.height
}

// At returns the pixel at (x,y). It panics if (x,y) is out of bounds, the
// same contract a Go slice index gives.
func (im Image[P]) At(x, y int) P {
	return im.pix[im.Index(x, y)]
}

// AtSafe returns the pixel at (x,y) and true, or the zero value and false
// if (x,y) is out of bounds.
func (im Image[P]) AtSafe(x, y int) (P, bool) {
	if !im.InBounds(x, y) {
		var zero P
		return zero, false
	}
	return im.At(x, y), true
}

// Set writes p into the pixel at (x,y). It panics if (x,y) is out of
// bounds.
func (im Image[P]) Set(x, y int, p P) {
	im.pix[im.Index(x, y)] = p
}

// Fill sets every pixel of im to p.
func (im Image[P]) Fill(p P) {
	for i := range im.pix {
		im.pix[i] = p
	}
}

// FillRect sets every pixel within r (clipped to im's bounds) to p.
func (im Image[P]) FillRect(r basics.RectI, p P) {
	x0, y0 := basics.FastMax(r.X, 0), basics.FastMax(r.Y, 0)
	x1, y1 := basics.FastMin(r.X+r.Width, im.width), basics.FastMin(r.Y+r.Height, im.height)
	for y := y0; y < y1; y++ {
		row := im.pix[im.Index(x0, y):im.Index(x1, y)]
		for i := range row {
			row[i] = p
		}
	}
}

// FillCircle sets every pixel whose center falls within c to p.
func (im Image[P]) FillCircle(c basics.CircleI, p P) {
	if c.Radius <= 0 {
		return
	}
	x0 := basics.FastMax(c.X-c.Radius, 0)
	x1 := basics.FastMin(c.X+c.Radius, im.width-1)
	y0 := basics.FastMax(c.Y-c.Radius, 0)
	y1 := basics.FastMin(c.Y+c.Radius, im.height-1)
	r2 := c.Radius * c.Radius
	for y := y0; y <= y1; y++ {
		dy := y - c.Y
		for x := x0; x <= x1; x++ {
			dx := x - c.X
			if dx*dx+dy*dy <= r2 {
				im.Set(x, y, p)
			}
		}
	}
}

// Clone returns an independent copy of im.
func (im Image[P]) Clone() Image[P] {
	out := New[P](im.width, im.height)
	copy(out.pix, im.pix)
	return out
}

// Trim returns a new image containing the pixels within r, clipped to
// im's bounds. Pixels outside im's bounds that fall within r are left at
// the zero value.
func (im Image[P]) Trim(r basics.RectI) Image[P] {
	out := New[P](r.Width, r.Height)
	for y := 0; y < r.Height; y++ {
		sy := r.Y + y
		if sy < 0 || sy >= im.height {
			continue
		}
		for x := 0; x < r.Width; x++ {
			sx := r.X + x
			if sx < 0 || sx >= im.width {
				continue
			}
			out.Set(x, y, im.At(sx, sy))
		}
	}
	return out
}

// MirrorBorder samples im at (x,y), reflecting out-of-range coordinates
// back into bounds rather than clamping. This matches the original
// engine's edge handling for filters whose kernel extends past the image
// border (Gaussian blur, the n x n convolution filter, edge-preserving
// Gaussian): the edge pixel itself is never duplicated, so the pixel at
// offset -k from an edge equals the pixel at offset +k from that same
// edge, the way GazoShori.hpp's left-edge fold (fast_abs(x), fast_abs(y))
// reflects without repeating index 0.
func MirrorBorder[P any](im Image[P], x, y int) P {
	x = reflect(x, im.width)
	y = reflect(y, im.height)
	return im.At(x, y)
}

// reflect folds x back into [0,n) by bouncing off each border without
// duplicating the border pixel (reflect-101 style): index -1 folds to
// index 1, not back to index 0. Bounces repeat until x lands in range,
// which also covers x far enough outside [0,n) to bounce more than once.
func reflect(x, n int) int {
	if n <= 1 {
		return 0
	}
	for x < 0 || x >= n {
		if x < 0 {
			x = -x
		}
		if x >= n {
			x = 2*(n-1) - x
		}
	}
	return x
}

// Pad returns a new image of size (width+2*xRadius, height+2*yRadius)
// whose interior is im and whose border is filled by mirror-reflecting
// im's own pixels, the padding scheme every kernel operator whose window
// extends past the image edge (Gaussian blur, the n x n convolution
// filter, edge-preserving Gaussian, edge detection) builds its working
// buffer from. xRadius and yRadius must not exceed im's own width and
// height respectively.
func Pad[P any](im Image[P], xRadius, yRadius int) (Image[P], error) {
	if xRadius > im.width || yRadius > im.height {
		return Empty[P](), gserr.InvalidArgument
	}
	out := New[P](im.width+2*xRadius, im.height+2*yRadius)
	for y := 0; y < out.height; y++ {
		sy := y - yRadius
		for x := 0; x < out.width; x++ {
			sx := x - xRadius
			out.Set(x, y, MirrorBorder(im, sx, sy))
		}
	}
	return out, nil
}

// Equal reports whether a and b have the same dimensions and identical
// pixels. It is a test helper; P must be comparable.
func Equal[P comparable](a, b Image[P]) bool {
	if a.width != b.width || a.height != b.height {
		return false
	}
	for i := range a.pix {
		if a.pix[i] != b.pix[i] {
			return false
		}
	}
	return true
}
