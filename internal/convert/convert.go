// Package convert implements the color-space conversions triggered, in
// the original engine, by cross-type image assignment: GRAY<->RGB and
// RGB<->HMB. No conversion is defined to or from RGBA or GRAY_F, nor
// directly between GRAY and HMB; callers that need those go through RGB.
package convert

import (
	"math"

	"github.com/kyasu0118/gazoshori/internal/basics"
	"github.com/kyasu0118/gazoshori/internal/color"
	"github.com/kyasu0118/gazoshori/internal/image"
)

// GrayPixel converts a single truecolor pixel to grayscale using the
// luma weighting (R*306 + G*601 + B*117) >> 10.
func GrayPixel(rgb color.RGB) color.Gray {
	l := (int(rgb.R)*306 + int(rgb.G)*601 + int(rgb.B)*117) >> basics.FixedPointShift
	return color.Gray{L: uint8(l)}
}

// RGBToGray converts a truecolor image to grayscale.
func RGBToGray(img image.Image[color.RGB]) image.Image[color.Gray] {
	out := image.New[color.Gray](img.Width(), img.Height())
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			out.Set(x, y, GrayPixel(img.At(x, y)))
		}
	}
	return out
}

// RGBPixel converts a single grayscale pixel to truecolor by replicating
// the luminance channel into R, G and B.
func RGBPixel(gray color.Gray) color.RGB {
	return color.RGB{R: gray.L, G: gray.L, B: gray.L}
}

// GrayToRGB converts a grayscale image to truecolor.
func GrayToRGB(img image.Image[color.Gray]) image.Image[color.RGB] {
	out := image.New[color.RGB](img.Width(), img.Height())
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			out.Set(x, y, RGBPixel(img.At(x, y)))
		}
	}
	return out
}

var hmbBasis = [3]basics.Vector2{
	{X: 1.0, Y: 0.0},
	{X: -0.5, Y: 0.866025},
	{X: -0.5, Y: -0.866025},
}

// HMBPixel converts a single truecolor pixel to the hue-magnitude-base
// chromatic model: hue is the angle of the RGB color wheel projection of
// the color with its achromatic floor removed, magnitude is the
// remaining chroma range, and base is the floor itself.
func HMBPixel(rgb color.RGB) color.HMB {
	base := float64(rgb.MinChannel())
	r := float64(rgb.R) - base
	g := float64(rgb.G) - base
	b := float64(rgb.B) - base
	vec := hmbBasis[0].Scale(r).Add(hmbBasis[1].Scale(g)).Add(hmbBasis[2].Scale(b))
	return color.HMB{
		H: float32(vec.Angle()),
		M: float32(float64(rgb.MaxChannel()) - base),
		B: float32(base),
	}
}

// RGBToHMB converts a truecolor image to HMB.
func RGBToHMB(img image.Image[color.RGB]) image.Image[color.HMB] {
	out := image.New[color.HMB](img.Width(), img.Height())
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			out.Set(x, y, HMBPixel(img.At(x, y)))
		}
	}
	return out
}

// hmbWheel is the 7-entry RGB color wheel, 60 degrees apart, used to
// interpolate hue back into RGB; the seventh entry duplicates the first
// as the wrap-around sentinel.
var hmbWheel = [7]color.RGB{
	{R: 255, G: 0, B: 0},
	{R: 255, G: 255, B: 0},
	{R: 0, G: 255, B: 0},
	{R: 0, G: 255, B: 255},
	{R: 0, G: 0, B: 255},
	{R: 255, G: 0, B: 255},
	{R: 255, G: 0, B: 0},
}

// HMBToRGBPixel converts a single HMB pixel back to truecolor.
func HMBToRGBPixel(hmb color.HMB) color.RGB {
	angle := float64(hmb.H) + 360.0*2.0
	angleInteger := int(angle / 60.0)
	alpha := (angle - float64(angleInteger)*60.0) / 60.0
	index := angleInteger % 6
	fMagnitude := float64(hmb.M) / 255.0

	a := hmbWheel[index]
	b := hmbWheel[index+1]
	r := (float64(a.R)*(1.0-alpha) + float64(b.R)*alpha) * fMagnitude
	g := (float64(a.G)*(1.0-alpha) + float64(b.G)*alpha) * fMagnitude
	bch := (float64(a.B)*(1.0-alpha) + float64(b.B)*alpha) * fMagnitude

	base := float64(hmb.B)
	return color.RGB{
		R: uint8(math.Min(r+base, 255)),
		G: uint8(math.Min(g+base, 255)),
		B: uint8(math.Min(bch+base, 255)),
	}
}

// HMBToRGB converts an HMB image back to truecolor.
func HMBToRGB(img image.Image[color.HMB]) image.Image[color.RGB] {
	out := image.New[color.RGB](img.Width(), img.Height())
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			out.Set(x, y, HMBToRGBPixel(img.At(x, y)))
		}
	}
	return out
}
