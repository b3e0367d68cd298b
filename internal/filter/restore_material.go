package filter

import (
	"github.com/kyasu0118/gazoshori/internal/basics"
	"github.com/kyasu0118/gazoshori/internal/color"
	"github.com/kyasu0118/gazoshori/internal/gserr"
	"github.com/kyasu0118/gazoshori/internal/image"
)

// RestoreMaterial recovers some of the dark-channel detail a Gaussian
// blur washes out: for each pixel it compares how far the darkest
// channel of blurred and original dropped, and adds that delta (scaled
// by strength) back onto every channel of the blurred pixel. strength
// must be within [0,1], and blurred and original must have equal
// dimensions.
func RestoreMaterial(blurred, original image.Image[color.RGB], strength float64) (image.Image[color.RGB], error) {
	if strength < 0 || strength > 1 {
		return image.Empty[color.RGB](), gserr.InvalidArgument
	}
	if blurred.Width() != original.Width() || blurred.Height() != original.Height() {
		return image.Empty[color.RGB](), gserr.InvalidArgument
	}

	istrength := int(strength * basics.FixedPointScale)

	out := image.New[color.RGB](blurred.Width(), blurred.Height())
	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			b := blurred.At(x, y)
			o := original.At(x, y)
			minBlur := int(b.MinChannel())
			minOrig := int(o.MinChannel())
			add := ((minOrig - minBlur) * istrength) >> basics.FixedPointShift
			out.Set(x, y, b.Acc().AddScalar(add).LimitMinMax().Narrow())
		}
	}
	return out, nil
}
