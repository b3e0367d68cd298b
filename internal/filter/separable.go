package filter

import (
	"math"

	"github.com/kyasu0118/gazoshori/internal/basics"
	"github.com/kyasu0118/gazoshori/internal/color"
	"github.com/kyasu0118/gazoshori/internal/gserr"
	"github.com/kyasu0118/gazoshori/internal/image"
)

// kernelSide validates that kernel is a flattened square n x n matrix
// with n odd, so the kernel has a well-defined center tap, and returns n.
func kernelSide(kernel []float64) (int, error) {
	side := int(math.Sqrt(float64(len(kernel))))
	if side*side != len(kernel) || side == 0 || side%2 == 0 {
		return 0, gserr.InvalidArgument
	}
	return side, nil
}

// SeparableGray applies an arbitrary n x n convolution kernel (flattened
// row-major, n*n entries) to a grayscale image. Despite the name this is
// a full 2D kernel application, not two 1D passes — it keeps the
// original engine's name for its single generic convolution entry point.
func SeparableGray(img image.Image[color.Gray], kernel []float64) (image.Image[color.Gray], error) {
	side, err := kernelSide(kernel)
	if err != nil {
		return image.Empty[color.Gray](), err
	}
	radius := side / 2
	padded, err := image.Pad(img, radius, radius)
	if err != nil {
		return image.Empty[color.Gray](), err
	}
	ikernel := make([]int, len(kernel))
	for i, k := range kernel {
		ikernel[i] = int(k * basics.FixedPointScale)
	}

	out := image.New[color.Gray](img.Width(), img.Height())
	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			var acc color.GrayAcc
			for i := 0; i < side; i++ {
				for j := 0; j < side; j++ {
					acc = acc.Add(padded.At(x+i, y+j).Acc().MulScalar(ikernel[j*side+i]))
				}
			}
			out.Set(x, y, acc.Shr(basics.FixedPointShift).LimitMinMax().Narrow())
		}
	}
	return out, nil
}

// SeparableRGB applies an arbitrary n x n convolution kernel to a
// truecolor image.
func SeparableRGB(img image.Image[color.RGB], kernel []float64) (image.Image[color.RGB], error) {
	side, err := kernelSide(kernel)
	if err != nil {
		return image.Empty[color.RGB](), err
	}
	radius := side / 2
	padded, err := image.Pad(img, radius, radius)
	if err != nil {
		return image.Empty[color.RGB](), err
	}
	ikernel := make([]int, len(kernel))
	for i, k := range kernel {
		ikernel[i] = int(k * basics.FixedPointScale)
	}

	out := image.New[color.RGB](img.Width(), img.Height())
	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			var acc color.RGBAcc
			for i := 0; i < side; i++ {
				for j := 0; j < side; j++ {
					acc = acc.Add(padded.At(x+i, y+j).Acc().MulScalar(ikernel[j*side+i]))
				}
			}
			out.Set(x, y, acc.Shr(basics.FixedPointShift).LimitMinMax().Narrow())
		}
	}
	return out, nil
}
