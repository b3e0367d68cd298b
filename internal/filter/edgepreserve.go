package filter

import (
	"github.com/kyasu0118/gazoshori/internal/basics"
	"github.com/kyasu0118/gazoshori/internal/color"
	"github.com/kyasu0118/gazoshori/internal/convert"
	"github.com/kyasu0118/gazoshori/internal/gserr"
	"github.com/kyasu0118/gazoshori/internal/image"
)

// EdgePreserveHMB blurs img with a Gaussian of standard deviation sigma,
// but only accumulates a neighbor into the average when its HMB distance
// from the window's center pixel is within (hue, magnitude,
// baseLuminance) on each respective channel. This keeps strong hue/tone
// edges sharp while smoothing everything else. When no neighbor passes
// the tolerance test for a given output pixel, that pixel is the padded
// image's center pixel, unchanged.
func EdgePreserveHMB(img image.Image[color.RGB], sigma, hue, magnitude, baseLuminance float64) (image.Image[color.RGB], error) {
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
	horizontalRGB := make([]color.RGB, padded.Width())
	horizontalHMB := make([]color.HMB, padded.Width())

	for y := 0; y < out.Height(); y++ {
		for x := 0; x < padded.Width(); x++ {
			centerHMB := convert.HMBPixel(padded.At(x, y+radius))

			var acc color.RGBAcc
			muchWeight := 0
			for i, k := range kernel {
				candidateRGB := padded.At(x, y+i)
				candidateHMB := convert.HMBPixel(candidateRGB)
				if withinHMBTolerance(centerHMB, candidateHMB, hue, magnitude, baseLuminance) {
					acc = acc.Add(candidateRGB.Acc().MulScalar(k))
					muchWeight += k
				}
			}
			if muchWeight == 0 {
				horizontalRGB[x] = padded.At(x, y+radius)
			} else {
				horizontalRGB[x] = acc.Div(muchWeight).Narrow()
			}
			horizontalHMB[x] = convert.HMBPixel(horizontalRGB[x])
		}

		for x := 0; x < out.Width(); x++ {
			centerHMB := horizontalHMB[x+radius]

			var acc color.RGBAcc
			muchWeight := 0
			for i, k := range kernel {
				if withinHMBTolerance(centerHMB, horizontalHMB[x+i], hue, magnitude, baseLuminance) {
					acc = acc.Add(horizontalRGB[x+i].Acc().MulScalar(k))
					muchWeight += k
				}
			}
			if muchWeight == 0 {
				out.Set(x, y, horizontalRGB[x+radius])
			} else {
				out.Set(x, y, acc.Div(muchWeight).LimitMinMax().Narrow())
			}
		}
	}
	return out, nil
}

func withinHMBTolerance(center, candidate color.HMB, hue, magnitude, baseLuminance float64) bool {
	return basics.FastAbs(int(center.H)-int(candidate.H)) <= int(hue) &&
		basics.FastAbs(int(center.M)-int(candidate.M)) <= int(magnitude) &&
		basics.FastAbs(int(center.B)-int(candidate.B)) <= int(baseLuminance)
}

// EdgePreserveRGB blurs img with a Gaussian of standard deviation sigma,
// accumulating a neighbor only when each of its R, G, B channels is
// within the matching tolerance component of the window's center pixel.
func EdgePreserveRGB(img image.Image[color.RGB], sigma float64, tolerance color.RGB) (image.Image[color.RGB], error) {
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
	horizontal := make([]color.RGB, padded.Width())

	for y := 0; y < out.Height(); y++ {
		for x := 0; x < padded.Width(); x++ {
			center := padded.At(x, y+radius)

			var acc color.RGBAcc
			muchWeight := 0
			for i, k := range kernel {
				candidate := padded.At(x, y+i)
				if withinRGBTolerance(center, candidate, tolerance) {
					acc = acc.Add(candidate.Acc().MulScalar(k))
					muchWeight += k
				}
			}
			if muchWeight == 0 {
				horizontal[x] = center
			} else {
				horizontal[x] = acc.Div(muchWeight).Narrow()
			}
		}

		for x := 0; x < out.Width(); x++ {
			center := horizontal[x+radius]

			var acc color.RGBAcc
			muchWeight := 0
			for i, k := range kernel {
				if withinRGBTolerance(center, horizontal[x+i], tolerance) {
					acc = acc.Add(horizontal[x+i].Acc().MulScalar(k))
					muchWeight += k
				}
			}
			if muchWeight == 0 {
				out.Set(x, y, center)
			} else {
				out.Set(x, y, acc.Div(muchWeight).LimitMinMax().Narrow())
			}
		}
	}
	return out, nil
}

func withinRGBTolerance(center, candidate, tolerance color.RGB) bool {
	return basics.FastAbs(int(center.R)-int(candidate.R)) <= int(tolerance.R) &&
		basics.FastAbs(int(center.G)-int(candidate.G)) <= int(tolerance.G) &&
		basics.FastAbs(int(center.B)-int(candidate.B)) <= int(tolerance.B)
}
