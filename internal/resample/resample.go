// Package resample implements the per-pixel sampling kernels used by
// resize and any other operator that needs a pixel value at a
// fractional source coordinate: nearest, bilinear and bicubic, each in a
// fast (unchecked) and "safe out of range" (clamped) variant.
//
// Every kernel floors the source coordinate to get its integer base (ix,
// iy), so the fractional remainder fx, fy always lands in [0,1). The
// original engine instead truncated toward zero, which let negative
// source coordinates drive the bicubic subpixel index negative and
// underflow the weight table; flooring consistently removes that case
// rather than patching around it downstream.
package resample

import (
	"math"

	"github.com/kyasu0118/gazoshori/internal/basics"
	"github.com/kyasu0118/gazoshori/internal/color"
	"github.com/kyasu0118/gazoshori/internal/image"
)

// Interpolation selects a resampling kernel.
type Interpolation int

const (
	Nearest Interpolation = iota
	Bilinear
	Bicubic
	Super
)

func floorInt(v float64) int {
	return int(math.Floor(v))
}

// NearestGray samples img at (x,y) using nearest-neighbor, unchecked.
func NearestGray(img image.Image[color.Gray], x, y float64) color.Gray {
	return img.At(floorInt(x+0.5), floorInt(y+0.5))
}

// NearestGraySafe samples img at (x,y) using nearest-neighbor, clamping
// the rounded coordinate into bounds first.
func NearestGraySafe(img image.Image[color.Gray], x, y float64) color.Gray {
	ix := basics.Limit(floorInt(x+0.5), 0, img.Width()-1)
	iy := basics.Limit(floorInt(y+0.5), 0, img.Height()-1)
	return img.At(ix, iy)
}

// NearestRGB samples img at (x,y) using nearest-neighbor, unchecked.
func NearestRGB(img image.Image[color.RGB], x, y float64) color.RGB {
	return img.At(floorInt(x+0.5), floorInt(y+0.5))
}

// NearestRGBSafe samples img at (x,y) using nearest-neighbor, clamping
// the rounded coordinate into bounds first.
func NearestRGBSafe(img image.Image[color.RGB], x, y float64) color.RGB {
	ix := basics.Limit(floorInt(x+0.5), 0, img.Width()-1)
	iy := basics.Limit(floorInt(y+0.5), 0, img.Height()-1)
	return img.At(ix, iy)
}

func bilinearFixed(fx, fy float64) (int, int) {
	fx1024 := floorInt((1.0 - fx) * basics.FixedPointScale)
	fy1024 := floorInt((1.0 - fy) * basics.FixedPointScale)
	return fx1024, fy1024
}

// BilinearGray samples img at (x,y) by bilinear interpolation of its four
// nearest neighbors, unchecked.
func BilinearGray(img image.Image[color.Gray], x, y float64) color.Gray {
	ix, iy := floorInt(x), floorInt(y)
	fx1024, fy1024 := bilinearFixed(x-float64(ix), y-float64(iy))
	return bilinearGrayAt(img, ix, iy, fx1024, fy1024)
}

// BilinearGraySafe samples img at (x,y) by bilinear interpolation,
// clamping the neighbor base index into [0,W-2]x[0,H-2] so all four
// samples stay in bounds.
func BilinearGraySafe(img image.Image[color.Gray], x, y float64) color.Gray {
	aix := basics.Limit(floorInt(x), 0, basics.FastMax(img.Width()-2, 0))
	aiy := basics.Limit(floorInt(y), 0, basics.FastMax(img.Height()-2, 0))
	fx1024, fy1024 := bilinearFixed(basics.LimitF(x-float64(aix), 0, 1), basics.LimitF(y-float64(aiy), 0, 1))
	return bilinearGrayAt(img, aix, aiy, fx1024, fy1024)
}

func bilinearGrayAt(img image.Image[color.Gray], ix, iy, fx1024, fy1024 int) color.Gray {
	c00 := img.At(ix, iy).Acc()
	c01 := img.At(ix+1, iy).Acc()
	c10 := img.At(ix, iy+1).Acc()
	c11 := img.At(ix+1, iy+1).Acc()
	top := c00.MulScalar(fx1024).Add(c01.MulScalar(basics.FixedPointScale - fx1024)).Shr(basics.FixedPointShift)
	bottom := c10.MulScalar(fx1024).Add(c11.MulScalar(basics.FixedPointScale - fx1024)).Shr(basics.FixedPointShift)
	result := top.MulScalar(fy1024).Add(bottom.MulScalar(basics.FixedPointScale - fy1024)).Shr(basics.FixedPointShift)
	return result.Narrow()
}

// BilinearRGB samples img at (x,y) by bilinear interpolation, unchecked.
func BilinearRGB(img image.Image[color.RGB], x, y float64) color.RGB {
	ix, iy := floorInt(x), floorInt(y)
	fx1024, fy1024 := bilinearFixed(x-float64(ix), y-float64(iy))
	return bilinearRGBAt(img, ix, iy, fx1024, fy1024)
}

// BilinearRGBSafe samples img at (x,y) by bilinear interpolation,
// clamping the neighbor base index into [0,W-2]x[0,H-2].
func BilinearRGBSafe(img image.Image[color.RGB], x, y float64) color.RGB {
	aix := basics.Limit(floorInt(x), 0, basics.FastMax(img.Width()-2, 0))
	aiy := basics.Limit(floorInt(y), 0, basics.FastMax(img.Height()-2, 0))
	fx1024, fy1024 := bilinearFixed(basics.LimitF(x-float64(aix), 0, 1), basics.LimitF(y-float64(aiy), 0, 1))
	return bilinearRGBAt(img, aix, aiy, fx1024, fy1024)
}

func bilinearRGBAt(img image.Image[color.RGB], ix, iy, fx1024, fy1024 int) color.RGB {
	c00 := img.At(ix, iy).Acc()
	c01 := img.At(ix+1, iy).Acc()
	c10 := img.At(ix, iy+1).Acc()
	c11 := img.At(ix+1, iy+1).Acc()
	top := c00.MulScalar(fx1024).Add(c01.MulScalar(basics.FixedPointScale - fx1024)).Shr(basics.FixedPointShift)
	bottom := c10.MulScalar(fx1024).Add(c11.MulScalar(basics.FixedPointScale - fx1024)).Shr(basics.FixedPointShift)
	result := top.MulScalar(fy1024).Add(bottom.MulScalar(basics.FixedPointScale - fy1024)).Shr(basics.FixedPointShift)
	return result.Narrow()
}

// bicubicIndices computes the four weight-table indices for a single
// axis from its 100-unit subpixel offset.
func bicubicIndices(f100 int) (i0, i1, i2, i3 int) {
	return f100 + 100, f100, 100 - f100, 200 - f100
}

// BicubicGray samples img at (x,y) with the Mitchell-Keys bicubic kernel
// described by table, unchecked (neighbor indices clamp to the image
// edge rather than reading out of bounds, matching the "fast" variant of
// the original engine, which clamps the outer ring but not the inner
// one).
func BicubicGray(img image.Image[color.Gray], x, y float64, table basics.BicubicTable) color.Gray {
	ix, iy := floorInt(x), floorInt(y)
	fx100 := floorInt((x - float64(ix)) * 100)
	fy100 := floorInt((y - float64(iy)) * 100)
	w := img.Width()
	h := img.Height()
	x0, x1, x2, x3 := basics.FastMax(ix-1, 0), ix, basics.FastMin(ix+1, w-1), basics.FastMin(ix+2, w-1)
	y0, y1, y2, y3 := basics.FastMax(iy-1, 0), iy, basics.FastMin(iy+1, h-1), basics.FastMin(iy+2, h-1)
	return bicubicGrayAt(img, x0, x1, x2, x3, y0, y1, y2, y3, fx100, fy100, table)
}

// BicubicGraySafe samples img at (x,y), clamping every one of the four
// horizontal and four vertical neighbor indices individually into
// [0,W-1] and [0,H-1].
func BicubicGraySafe(img image.Image[color.Gray], x, y float64, table basics.BicubicTable) color.Gray {
	ix, iy := floorInt(x), floorInt(y)
	// fx100/fy100 are clamped even though flooring ix/iy above already
	// keeps them in [0,99]; the original engine derived them by truncating
	// toward zero instead of flooring, which could drive the table index
	// negative for fx>1 (the source's get_bicubic_pixel_safe_out_of_range
	// bug). Clamping here keeps that invariant explicit rather than
	// incidental.
	fx100 := basics.Limit(floorInt((x-float64(ix))*100), 0, 100)
	fy100 := basics.Limit(floorInt((y-float64(iy))*100), 0, 100)
	w := img.Width()
	h := img.Height()
	x0, x1, x2, x3 := basics.Limit(ix-1, 0, w-1), basics.Limit(ix, 0, w-1), basics.Limit(ix+1, 0, w-1), basics.Limit(ix+2, 0, w-1)
	y0, y1, y2, y3 := basics.Limit(iy-1, 0, h-1), basics.Limit(iy, 0, h-1), basics.Limit(iy+1, 0, h-1), basics.Limit(iy+2, 0, h-1)
	return bicubicGrayAt(img, x0, x1, x2, x3, y0, y1, y2, y3, fx100, fy100, table)
}

func bicubicGrayAt(img image.Image[color.Gray], x0, x1, x2, x3, y0, y1, y2, y3, fx100, fy100 int, table basics.BicubicTable) color.Gray {
	tx0, tx1, tx2, tx3 := bicubicIndices(fx100)
	ty0, ty1, ty2, ty3 := bicubicIndices(fy100)
	wx := table[tx0] + table[tx1] + table[tx2] + table[tx3]
	wy := table[ty0] + table[ty1] + table[ty2] + table[ty3]

	row := func(yy int) color.GrayAcc {
		c0 := img.At(x0, yy).Acc()
		c1 := img.At(x1, yy).Acc()
		c2 := img.At(x2, yy).Acc()
		c3 := img.At(x3, yy).Acc()
		sum := c0.MulScalar(table[tx0]).Add(c1.MulScalar(table[tx1])).Add(c2.MulScalar(table[tx2])).Add(c3.MulScalar(table[tx3]))
		return sum.Div(wx)
	}
	r0, r1, r2, r3 := row(y0), row(y1), row(y2), row(y3)
	result := r0.MulScalar(table[ty0]).Add(r1.MulScalar(table[ty1])).Add(r2.MulScalar(table[ty2])).Add(r3.MulScalar(table[ty3])).Div(wy)
	return result.LimitMinMax().Narrow()
}

// BicubicRGB samples img at (x,y) with the Mitchell-Keys bicubic kernel,
// unchecked.
func BicubicRGB(img image.Image[color.RGB], x, y float64, table basics.BicubicTable) color.RGB {
	ix, iy := floorInt(x), floorInt(y)
	fx100 := floorInt((x - float64(ix)) * 100)
	fy100 := floorInt((y - float64(iy)) * 100)
	w := img.Width()
	h := img.Height()
	x0, x1, x2, x3 := basics.FastMax(ix-1, 0), ix, basics.FastMin(ix+1, w-1), basics.FastMin(ix+2, w-1)
	y0, y1, y2, y3 := basics.FastMax(iy-1, 0), iy, basics.FastMin(iy+1, h-1), basics.FastMin(iy+2, h-1)
	return bicubicRGBAt(img, x0, x1, x2, x3, y0, y1, y2, y3, fx100, fy100, table)
}

// BicubicRGBSafe samples img at (x,y), clamping every neighbor index
// individually into bounds.
func BicubicRGBSafe(img image.Image[color.RGB], x, y float64, table basics.BicubicTable) color.RGB {
	ix, iy := floorInt(x), floorInt(y)
	fx100 := basics.Limit(floorInt((x-float64(ix))*100), 0, 100)
	fy100 := basics.Limit(floorInt((y-float64(iy))*100), 0, 100)
	w := img.Width()
	h := img.Height()
	x0, x1, x2, x3 := basics.Limit(ix-1, 0, w-1), basics.Limit(ix, 0, w-1), basics.Limit(ix+1, 0, w-1), basics.Limit(ix+2, 0, w-1)
	y0, y1, y2, y3 := basics.Limit(iy-1, 0, h-1), basics.Limit(iy, 0, h-1), basics.Limit(iy+1, 0, h-1), basics.Limit(iy+2, 0, h-1)
	return bicubicRGBAt(img, x0, x1, x2, x3, y0, y1, y2, y3, fx100, fy100, table)
}

func bicubicRGBAt(img image.Image[color.RGB], x0, x1, x2, x3, y0, y1, y2, y3, fx100, fy100 int, table basics.BicubicTable) color.RGB {
	tx0, tx1, tx2, tx3 := bicubicIndices(fx100)
	ty0, ty1, ty2, ty3 := bicubicIndices(fy100)
	wx := table[tx0] + table[tx1] + table[tx2] + table[tx3]
	wy := table[ty0] + table[ty1] + table[ty2] + table[ty3]

	row := func(yy int) color.RGBAcc {
		c0 := img.At(x0, yy).Acc()
		c1 := img.At(x1, yy).Acc()
		c2 := img.At(x2, yy).Acc()
		c3 := img.At(x3, yy).Acc()
		sum := c0.MulScalar(table[tx0]).Add(c1.MulScalar(table[tx1])).Add(c2.MulScalar(table[tx2])).Add(c3.MulScalar(table[tx3]))
		return sum.Div(wx)
	}
	r0, r1, r2, r3 := row(y0), row(y1), row(y2), row(y3)
	result := r0.MulScalar(table[ty0]).Add(r1.MulScalar(table[ty1])).Add(r2.MulScalar(table[ty2])).Add(r3.MulScalar(table[ty3])).Div(wy)
	return result.LimitMinMax().Narrow()
}
