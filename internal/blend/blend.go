// Package blend implements the photographic blend modes: a fixed-point
// alpha_blend core plus eighteen "how do back and fore combine before
// the alpha blend" formulas, split into whole-pixel formulas (worked
// out once per pixel, same arithmetic on every channel) and per-channel
// conditional formulas (the branch taken can differ per channel).
package blend

import (
	"math"

	"github.com/kyasu0118/gazoshori/internal/basics"
	"github.com/kyasu0118/gazoshori/internal/color"
	"github.com/kyasu0118/gazoshori/internal/gserr"
	"github.com/kyasu0118/gazoshori/internal/image"
)

// Kind identifies one of the blend operators.
type Kind int

const (
	Alpha Kind = iota
	Addition
	Subtract
	Multiply
	Difference
	ColorBurn
	Darken
	Lighten
	LinearBurn
	Screen
	ColorDodge
	Exclusion
	Overlay
	SoftLight
	HardLight
	VividLight
	LinearLight
	PinLight
)

// AlphaBlendChannel is the fixed-point primitive every blend mode
// reduces to: out = (back*(1024-ialpha) + fore*ialpha) >> 10.
func AlphaBlendChannel(back, fore uint8, ialpha int) uint8 {
	ia := basics.FixedPointScale - ialpha
	return uint8((int(back)*ia + int(fore)*ialpha) >> basics.FixedPointShift)
}

// AlphaBlendRGB applies AlphaBlendChannel to each channel.
func AlphaBlendRGB(back, fore color.RGB, ialpha int) color.RGB {
	return color.RGB{
		R: AlphaBlendChannel(back.R, fore.R, ialpha),
		G: AlphaBlendChannel(back.G, fore.G, ialpha),
		B: AlphaBlendChannel(back.B, fore.B, ialpha),
	}
}

// IAlphaFromFloat converts an alpha in [0,1] to the fixed-point scale
// used by AlphaBlendChannel.
func IAlphaFromFloat(alpha float64) int {
	return int(alpha * basics.FixedPointScale)
}

// IAlphaFromByte converts an 8-bit opacity to the fixed-point scale via
// the 256-entry lookup table.
func IAlphaFromByte(alpha uint8) int {
	return basics.AlphaTable[alpha]
}

func limit(v int) int { return basics.Limit(v, 0, 255) }

func fAlpha(_, fore int) int      { return fore }
func fAddition(back, fore int) int { return limit(back + fore) }
func fSubtract(back, fore int) int { return limit(back - fore) }
func fMultiply(back, fore int) int { return back * fore / 255 }
func fDifference(back, fore int) int {
	return basics.FastAbs(fore - back)
}
func fColorBurn(back, fore int) int {
	return limit(255 - (255-back)*255/basics.FastMax(fore, 1))
}
func fDarken(back, fore int) int {
	if back < fore {
		return back
	}
	return fore
}
func fLighten(back, fore int) int {
	if back > fore {
		return back
	}
	return fore
}
func fLinearBurn(back, fore int) int { return limit(back + fore - 255) }
func fScreen(back, fore int) int     { return back + fore - back*fore/255 }
func fColorDodge(back, fore int) int {
	return limit(back * 255 / basics.FastMax(255-fore, 1))
}
func fExclusion(back, fore int) int {
	return limit(back + fore - 2*back*fore/255)
}

func fOverlay(back, fore int) int {
	if back < 128 {
		return back * fore * 2 / 255
	}
	return 2*(back+fore-back*fore/255) - 255
}

func fSoftLight(back, fore int) int {
	b := float64(back) / 255.0
	f := float64(fore) / 255.0
	if fore < 128 {
		return int(math.Pow(b, 2.0*(1.0-f)) * 255.0)
	}
	return int(math.Pow(b, 2.0*(1.0/(2.0*f))) * 255.0)
}

func fHardLight(back, fore int) int {
	if fore < 128 {
		return back * fore * 2 / 255
	}
	return 2*(back+fore-back*fore/255) - 255
}

// fVividLight preserves the source's operator-precedence quirk in its
// back<2*(255-fore) branch: "back/2*(255-fore)" parses left to right
// as (back/2)*(255-fore), not back/(2*(255-fore)) as the name "vivid
// light" would suggest. Corrected=true takes the intended formula
// instead.
func fVividLight(back, fore int, corrected bool) int {
	if fore < 128 {
		if back < 255-2*fore {
			return 0
		}
		return (back - (255 - 2*fore)) / (2 * basics.FastMax(fore, 1))
	}
	if back < 2*(255-fore) {
		if corrected {
			return back / (2 * (255 - fore))
		}
		return (back / 2) * (255 - fore)
	}
	return 255
}

func fLinearLight(back, fore int) int {
	if fore < 128 {
		if back < 255-2*fore {
			return 0
		}
		return basics.FastMin(2*fore+back+255, 255)
	}
	if back < 2*(255-fore) {
		return basics.FastMin(2*fore+back+255, 255)
	}
	return 255
}

func fPinLight(back, fore int) int {
	if fore < 128 {
		if back < 255-2*fore {
			return back
		}
		return 2 * fore
	}
	if back < 2*fore-255 {
		return 2*fore - 255
	}
	return back
}

func applyChannel(kind Kind, back, fore int, corrected bool) (int, error) {
	switch kind {
	case Alpha:
		return fAlpha(back, fore), nil
	case Addition:
		return fAddition(back, fore), nil
	case Subtract:
		return fSubtract(back, fore), nil
	case Multiply:
		return fMultiply(back, fore), nil
	case Difference:
		return fDifference(back, fore), nil
	case ColorBurn:
		return fColorBurn(back, fore), nil
	case Darken:
		return fDarken(back, fore), nil
	case Lighten:
		return fLighten(back, fore), nil
	case LinearBurn:
		return fLinearBurn(back, fore), nil
	case Screen:
		return fScreen(back, fore), nil
	case ColorDodge:
		return fColorDodge(back, fore), nil
	case Exclusion:
		return fExclusion(back, fore), nil
	case Overlay:
		return fOverlay(back, fore), nil
	case SoftLight:
		return fSoftLight(back, fore), nil
	case HardLight:
		return fHardLight(back, fore), nil
	case VividLight:
		return fVividLight(back, fore, corrected), nil
	case LinearLight:
		return fLinearLight(back, fore), nil
	case PinLight:
		return fPinLight(back, fore), nil
	default:
		return 0, gserr.InvalidArgument
	}
}

func applyRGB(kind Kind, back, fore color.RGB, corrected bool) (color.RGB, error) {
	r, err := applyChannel(kind, int(back.R), int(fore.R), corrected)
	if err != nil {
		return color.RGB{}, err
	}
	g, err := applyChannel(kind, int(back.G), int(fore.G), corrected)
	if err != nil {
		return color.RGB{}, err
	}
	b, err := applyChannel(kind, int(back.B), int(fore.B), corrected)
	if err != nil {
		return color.RGB{}, err
	}
	return color.RGB{R: uint8(limit(r)), G: uint8(limit(g)), B: uint8(limit(b))}, nil
}

// Image blends back with fore under kind at opacity alpha in [0,1]; the
// two images must have equal dimensions. corrected selects the
// precedence-bug-fixed vivid_light formula when true.
func Image(back, fore image.Image[color.RGB], kind Kind, alpha float64, corrected bool) (image.Image[color.RGB], error) {
	if back.Width() != fore.Width() || back.Height() != fore.Height() {
		return image.Empty[color.RGB](), gserr.InvalidArgument
	}
	ialpha := IAlphaFromFloat(alpha)
	out := image.New[color.RGB](back.Width(), back.Height())
	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			combined, err := applyRGB(kind, back.At(x, y), fore.At(x, y), corrected)
			if err != nil {
				return image.Empty[color.RGB](), err
			}
			out.Set(x, y, AlphaBlendRGB(back.At(x, y), combined, ialpha))
		}
	}
	return out, nil
}

// Const blends every pixel of back against the single color fore under
// kind at opacity alpha in [0,1].
func Const(back image.Image[color.RGB], fore color.RGB, kind Kind, alpha float64, corrected bool) (image.Image[color.RGB], error) {
	ialpha := IAlphaFromFloat(alpha)
	out := image.New[color.RGB](back.Width(), back.Height())
	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			backPixel := back.At(x, y)
			combined, err := applyRGB(kind, backPixel, fore, corrected)
			if err != nil {
				return image.Empty[color.RGB](), err
			}
			out.Set(x, y, AlphaBlendRGB(backPixel, combined, ialpha))
		}
	}
	return out, nil
}
