// Package filter implements the neighborhood operators built on top of
// image.Pad's mirror-padded buffer: separable Gaussian blur, a generic
// n x n convolution kernel, the two edge-preserving Gaussian variants,
// dark-channel restore-material recovery, and color-temperature
// correction.
package filter

import (
	"math"

	"github.com/kyasu0118/gazoshori/internal/color"
	"github.com/kyasu0118/gazoshori/internal/gserr"
	"github.com/kyasu0118/gazoshori/internal/image"
)

const pixelDistanceScale = 2.0

// gaussianKernel builds the fixed-point 1D Gaussian kernel used by every
// Gaussian-family filter: radius = floor(sigma/pixelDistanceScale*2), a
// kernel of 2*radius+1 taps normalized so the taps sum to 4096 (a
// headroom scale of 2^12, matching the vertical/horizontal shift split
// of >>6 then >>18 used to apply it).
func gaussianKernel(sigma float64) (kernel []int, radius int) {
	radius = int(sigma / pixelDistanceScale * 2.0)
	if radius == 0 {
		return nil, 0
	}
	size := radius*2 + 1
	kernel = make([]int, size)

	sigma2 := 2 * sigma * sigma
	rootSigmaPi := math.Sqrt(2.0 * math.Pi * sigma * sigma)

	sum := 0.0
	for i := 0; i < size; i++ {
		d := float64(i-radius) * pixelDistanceScale
		sum += math.Exp(-(d * d / sigma2)) / rootSigmaPi
	}
	weight := 4096.0 / sum
	total := 0
	for i := 0; i < size; i++ {
		d := float64(i-radius) * pixelDistanceScale
		kernel[i] = int((math.Exp(-(d * d / sigma2)) / rootSigmaPi) * weight)
		total += kernel[i]
	}
	kernel[radius] += 4096 - total
	return kernel, radius
}

// GaussianGray applies a separable Gaussian blur of standard deviation
// sigma to a grayscale image. sigma must be >= 0; a radius of zero
// (sigma small enough that no neighbor contributes) returns an unchanged
// copy.
func GaussianGray(img image.Image[color.Gray], sigma float64) (image.Image[color.Gray], error) {
	if sigma < 0 {
		return image.Empty[color.Gray](), gserr.InvalidArgument
	}
	kernel, radius := gaussianKernel(sigma)
	if radius == 0 {
		return img.Clone(), nil
	}

	padded, err := image.Pad(img, radius, radius)
	if err != nil {
		return image.Empty[color.Gray](), err
	}
	out := image.New[color.Gray](img.Width(), img.Height())
	horizontal := make([]color.GrayAcc, padded.Width())

	for y := 0; y < out.Height(); y++ {
		for x := 0; x < padded.Width(); x++ {
			var acc color.GrayAcc
			for i, k := range kernel {
				acc = acc.Add(padded.At(x, y+i).Acc().MulScalar(k))
			}
			horizontal[x] = acc.Shr(6)
		}
		for x := 0; x < out.Width(); x++ {
			var acc color.GrayAcc
			for i, k := range kernel {
				acc = acc.Add(horizontal[x+i].MulScalar(k))
			}
			out.Set(x, y, acc.Shr(18).Narrow())
		}
	}
	return out, nil
}

// GaussianRGB applies a separable Gaussian blur of standard deviation
// sigma to a truecolor image.
func GaussianRGB(img image.Image[color.RGB], sigma float64) (image.Image[color.RGB], error) {
	if sigma < 0 {
		return image.Empty[color.RGB](), gserr.InvalidArgument
	}
	kernel, radius := gaussianKernel(sigma)
	if radius == 0 {
		return img.Clone(), nil
	}

	padded, err := image.Pad(img, radius, radius)
	if err != nil {
		return image.Empty[color.RGB](), err
	}
	out := image.New[color.RGB](img.Width(), img.Height())
	horizontal := make([]color.RGBAcc, padded.Width())

	for y := 0; y < out.Height(); y++ {
		for x := 0; x < padded.Width(); x++ {
			var acc color.RGBAcc
			for i, k := range kernel {
				acc = acc.Add(padded.At(x, y+i).Acc().MulScalar(k))
			}
			horizontal[x] = acc.Shr(6)
		}
		for x := 0; x < out.Width(); x++ {
			var acc color.RGBAcc
			for i, k := range kernel {
				acc = acc.Add(horizontal[x+i].MulScalar(k))
			}
			out.Set(x, y, acc.Shr(18).Narrow())
		}
	}
	return out, nil
}
