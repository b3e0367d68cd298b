package gazoshori

import (
	"github.com/kyasu0118/gazoshori/internal/basics"
	"github.com/kyasu0118/gazoshori/internal/resample"
)

// Interpolation selects one of the four sampling kernels used by
// Resize, Scale and the resample functions below.
type Interpolation = resample.Interpolation

const (
	Nearest  = resample.Nearest
	Bilinear = resample.Bilinear
	Bicubic  = resample.Bicubic
	Super    = resample.Super
)

// BicubicTable is a precomputed Mitchell-Keys bicubic weight lookup, as
// used by SampleBicubicGray/RGB. DefaultBicubicTable is the process-wide
// table for the conventional a = -1 parameter.
type BicubicTable = basics.BicubicTable

// NewBicubicTable builds a bicubic weight table for Mitchell-Keys
// parameter a.
func NewBicubicTable(a float64) BicubicTable { return basics.NewBicubicTable(a) }

// DefaultBicubicTable is shared across every bicubic sample/resize call
// that does not need a custom a parameter.
var DefaultBicubicTable = basics.DefaultBicubicTable

// SampleNearestGray samples img at (x, y) using nearest-neighbor
// interpolation. Behavior at out-of-range coordinates is unspecified;
// use SampleNearestGraySafe for a clamped variant.
func SampleNearestGray(img GrayImage, x, y float64) Gray { return resample.NearestGray(img, x, y) }

// SampleNearestGraySafe is SampleNearestGray with the sampled
// coordinate clamped into img's bounds.
func SampleNearestGraySafe(img GrayImage, x, y float64) Gray {
	return resample.NearestGraySafe(img, x, y)
}

// SampleNearestRGB is the truecolor counterpart of SampleNearestGray.
func SampleNearestRGB(img RGBImage, x, y float64) RGB { return resample.NearestRGB(img, x, y) }

// SampleNearestRGBSafe is SampleNearestRGB with the sampled coordinate
// clamped into img's bounds.
func SampleNearestRGBSafe(img RGBImage, x, y float64) RGB {
	return resample.NearestRGBSafe(img, x, y)
}

// SampleBilinearGray samples img at (x, y) by blending its four nearest
// neighbors in fixed point.
func SampleBilinearGray(img GrayImage, x, y float64) Gray { return resample.BilinearGray(img, x, y) }

// SampleBilinearGraySafe is SampleBilinearGray with the sampled base
// coordinate clamped into img's bounds.
func SampleBilinearGraySafe(img GrayImage, x, y float64) Gray {
	return resample.BilinearGraySafe(img, x, y)
}

// SampleBilinearRGB is the truecolor counterpart of SampleBilinearGray.
func SampleBilinearRGB(img RGBImage, x, y float64) RGB { return resample.BilinearRGB(img, x, y) }

// SampleBilinearRGBSafe is SampleBilinearRGB with the sampled base
// coordinate clamped into img's bounds.
func SampleBilinearRGBSafe(img RGBImage, x, y float64) RGB {
	return resample.BilinearRGBSafe(img, x, y)
}

// SampleBicubicGray samples img at (x, y) over a 4x4 neighborhood
// weighted by table.
func SampleBicubicGray(img GrayImage, x, y float64, table BicubicTable) Gray {
	return resample.BicubicGray(img, x, y, table)
}

// SampleBicubicGraySafe is SampleBicubicGray with every tap coordinate
// clamped into img's bounds.
func SampleBicubicGraySafe(img GrayImage, x, y float64, table BicubicTable) Gray {
	return resample.BicubicGraySafe(img, x, y, table)
}

// SampleBicubicRGB is the truecolor counterpart of SampleBicubicGray.
func SampleBicubicRGB(img RGBImage, x, y float64, table BicubicTable) RGB {
	return resample.BicubicRGB(img, x, y, table)
}

// SampleBicubicRGBSafe is SampleBicubicRGB with every tap coordinate
// clamped into img's bounds.
func SampleBicubicRGBSafe(img RGBImage, x, y float64, table BicubicTable) RGB {
	return resample.BicubicRGBSafe(img, x, y, table)
}
