// Package resize implements size- and scale-based resizing of Gray and
// RGB images across the engine's four interpolation kernels, plus the
// fixed-point area-averaging "super" resize suited to downscaling.
package resize

import (
	"github.com/kyasu0118/gazoshori/internal/basics"
	"github.com/kyasu0118/gazoshori/internal/color"
	"github.com/kyasu0118/gazoshori/internal/gserr"
	"github.com/kyasu0118/gazoshori/internal/image"
	"github.com/kyasu0118/gazoshori/internal/resample"
)

// stepFor returns the endpoint-inclusive sampling step for a source
// dimension n mapped onto a target dimension m. When m == 1 there is a
// single output sample and no meaningful step; the sampling loop never
// advances past x_pos = 0 in that case.
func stepFor(n, m int) float64 {
	if m <= 1 {
		return 0
	}
	return float64(n-1) / float64(m-1)
}

// parallelRowThreshold is the output pixel count above which SizeGray and
// SizeRGB fan their row loop out across goroutines. Below it the
// goroutine overhead outweighs the per-row sampling work.
const parallelRowThreshold = 64 * 64

func validateTarget(w, h int) error {
	if w < 1 || h < 1 {
		return gserr.InvalidArgument
	}
	return nil
}

// SizeGray resizes a grayscale image to an explicit target size.
func SizeGray(img image.Image[color.Gray], w, h int, interp resample.Interpolation) (image.Image[color.Gray], error) {
	if err := validateTarget(w, h); err != nil {
		return image.Empty[color.Gray](), err
	}
	if img.Width() == w && img.Height() == h {
		return img.Clone(), nil
	}
	if interp == resample.Super {
		return superGray(img, w, h), nil
	}

	out := image.New[color.Gray](w, h)
	xStep := stepFor(img.Width(), w)
	yStep := stepFor(img.Height(), h)
	basics.ParallelRows(h, w*h >= parallelRowThreshold, func(y int) {
		yPos := float64(y) * yStep
		for x := 0; x < w; x++ {
			xPos := float64(x) * xStep
			out.Set(x, y, sampleGray(img, xPos, yPos, interp))
		}
	})
	return out, nil
}

// ScaleGray resizes a grayscale image by a uniform scale factor.
func ScaleGray(img image.Image[color.Gray], scale float64, interp resample.Interpolation) (image.Image[color.Gray], error) {
	w := int(float64(img.Width())*scale + 0.5)
	h := int(float64(img.Height())*scale + 0.5)
	return SizeGray(img, w, h, interp)
}

func sampleGray(img image.Image[color.Gray], x, y float64, interp resample.Interpolation) color.Gray {
	switch interp {
	case resample.Nearest:
		return resample.NearestGraySafe(img, x, y)
	case resample.Bilinear:
		return resample.BilinearGraySafe(img, x, y)
	default:
		return resample.BicubicGraySafe(img, x, y, basics.DefaultBicubicTable)
	}
}

func superGray(img image.Image[color.Gray], w, h int) image.Image[color.Gray] {
	out := image.New[color.Gray](w, h)
	xStepSuper := img.Width() * basics.FixedPointScale / w
	yStepSuper := img.Height() * basics.FixedPointScale / h

	yPosSuper := 0
	for y := 0; y < h; y++ {
		xPosSuper := 0
		for x := 0; x < w; x++ {
			acc, weight := superAccumulateGray(img, xPosSuper, yPosSuper, xStepSuper, yStepSuper)
			out.Set(x, y, acc.Div(weight).LimitMinMax().Narrow())
			xPosSuper += xStepSuper
		}
		yPosSuper += yStepSuper
	}
	return out
}

func superAccumulateGray(img image.Image[color.Gray], xPosSuper, yPosSuper, xStepSuper, yStepSuper int) (color.GrayAcc, int) {
	var acc color.GrayAcc
	weight := 0
	yRem := basics.FixedPointScale - (yPosSuper - (yPosSuper &^ (basics.FixedPointScale - 1)))
	yArea := yStepSuper
	for yy := yPosSuper >> basics.FixedPointShift; yArea > 0; yy++ {
		xRem := basics.FixedPointScale - (xPosSuper - (xPosSuper &^ (basics.FixedPointScale - 1)))
		if yArea <= basics.FixedPointScale {
			yRem = yArea
		}
		yArea -= yRem
		xArea := xStepSuper
		for xx := xPosSuper >> basics.FixedPointShift; xArea > 0; xx++ {
			if xArea <= basics.FixedPointScale {
				xRem = xArea
			}
			w := (xRem * yRem) >> basics.FixedPointShift
			px, py := basics.Limit(xx, 0, img.Width()-1), basics.Limit(yy, 0, img.Height()-1)
			acc = acc.Add(img.At(px, py).Acc().MulScalar(w))
			weight += w
			xArea -= xRem
			xRem = basics.FixedPointScale
		}
		yRem = basics.FixedPointScale
	}
	if weight == 0 {
		weight = 1
	}
	return acc, weight
}

// SizeRGB resizes a truecolor image to an explicit target size.
func SizeRGB(img image.Image[color.RGB], w, h int, interp resample.Interpolation) (image.Image[color.RGB], error) {
	if err := validateTarget(w, h); err != nil {
		return image.Empty[color.RGB](), err
	}
	if img.Width() == w && img.Height() == h {
		return img.Clone(), nil
	}
	if interp == resample.Super {
		return superRGB(img, w, h), nil
	}

	out := image.New[color.RGB](w, h)
	xStep := stepFor(img.Width(), w)
	yStep := stepFor(img.Height(), h)
	basics.ParallelRows(h, w*h >= parallelRowThreshold, func(y int) {
		yPos := float64(y) * yStep
		for x := 0; x < w; x++ {
			xPos := float64(x) * xStep
			out.Set(x, y, sampleRGB(img, xPos, yPos, interp))
		}
	})
	return out, nil
}

// ScaleRGB resizes a truecolor image by a uniform scale factor.
func ScaleRGB(img image.Image[color.RGB], scale float64, interp resample.Interpolation) (image.Image[color.RGB], error) {
	w := int(float64(img.Width())*scale + 0.5)
	h := int(float64(img.Height())*scale + 0.5)
	return SizeRGB(img, w, h, interp)
}

func sampleRGB(img image.Image[color.RGB], x, y float64, interp resample.Interpolation) color.RGB {
	switch interp {
	case resample.Nearest:
		return resample.NearestRGBSafe(img, x, y)
	case resample.Bilinear:
		return resample.BilinearRGBSafe(img, x, y)
	default:
		return resample.BicubicRGBSafe(img, x, y, basics.DefaultBicubicTable)
	}
}

func superRGB(img image.Image[color.RGB], w, h int) image.Image[color.RGB] {
	out := image.New[color.RGB](w, h)
	xStepSuper := img.Width() * basics.FixedPointScale / w
	yStepSuper := img.Height() * basics.FixedPointScale / h

	yPosSuper := 0
	for y := 0; y < h; y++ {
		xPosSuper := 0
		for x := 0; x < w; x++ {
			acc, weight := superAccumulateRGB(img, xPosSuper, yPosSuper, xStepSuper, yStepSuper)
			out.Set(x, y, acc.Div(weight).LimitMinMax().Narrow())
			xPosSuper += xStepSuper
		}
		yPosSuper += yStepSuper
	}
	return out
}

func superAccumulateRGB(img image.Image[color.RGB], xPosSuper, yPosSuper, xStepSuper, yStepSuper int) (color.RGBAcc, int) {
	var acc color.RGBAcc
	weight := 0
	yRem := basics.FixedPointScale - (yPosSuper - (yPosSuper &^ (basics.FixedPointScale - 1)))
	yArea := yStepSuper
	for yy := yPosSuper >> basics.FixedPointShift; yArea > 0; yy++ {
		xRem := basics.FixedPointScale - (xPosSuper - (xPosSuper &^ (basics.FixedPointScale - 1)))
		if yArea <= basics.FixedPointScale {
			yRem = yArea
		}
		yArea -= yRem
		xArea := xStepSuper
		for xx := xPosSuper >> basics.FixedPointShift; xArea > 0; xx++ {
			if xArea <= basics.FixedPointScale {
				xRem = xArea
			}
			w := (xRem * yRem) >> basics.FixedPointShift
			px, py := basics.Limit(xx, 0, img.Width()-1), basics.Limit(yy, 0, img.Height()-1)
			acc = acc.Add(img.At(px, py).Acc().MulScalar(w))
			weight += w
			xArea -= xRem
			xRem = basics.FixedPointScale
		}
		yRem = basics.FixedPointScale
	}
	if weight == 0 {
		weight = 1
	}
	return acc, weight
}
