package gazoshori

import "github.com/kyasu0118/gazoshori/internal/blend"

// BlendKind identifies one of the photographic blend operators.
type BlendKind = blend.Kind

const (
	BlendAlpha       = blend.Alpha
	BlendAddition    = blend.Addition
	BlendSubtract    = blend.Subtract
	BlendMultiply    = blend.Multiply
	BlendDifference  = blend.Difference
	BlendColorBurn   = blend.ColorBurn
	BlendDarken      = blend.Darken
	BlendLighten     = blend.Lighten
	BlendLinearBurn  = blend.LinearBurn
	BlendScreen      = blend.Screen
	BlendColorDodge  = blend.ColorDodge
	BlendExclusion   = blend.Exclusion
	BlendOverlay     = blend.Overlay
	BlendSoftLight   = blend.SoftLight
	BlendHardLight   = blend.HardLight
	BlendVividLight  = blend.VividLight
	BlendLinearLight = blend.LinearLight
	BlendPinLight    = blend.PinLight
)

// Blend combines back and fore under kind at opacity alpha in [0,1];
// back and fore must share dimensions. corrected selects the
// precedence-bug-fixed vivid_light formula (see internal/blend) instead
// of the literal, bug-preserving one used when corrected is false.
func Blend(back, fore RGBImage, kind BlendKind, alpha float64, corrected bool) (RGBImage, error) {
	return blend.Image(back, fore, kind, alpha, corrected)
}

// BlendConst blends every pixel of back against the single color fore
// under kind at opacity alpha in [0,1].
func BlendConst(back RGBImage, fore RGB, kind BlendKind, alpha float64, corrected bool) (RGBImage, error) {
	return blend.Const(back, fore, kind, alpha, corrected)
}

// AlphaBlendChannel is the fixed-point primitive every blend mode
// reduces to: out = (back*(1024-ialpha) + fore*ialpha) >> 10.
func AlphaBlendChannel(back, fore uint8, ialpha int) uint8 {
	return blend.AlphaBlendChannel(back, fore, ialpha)
}

// AlphaBlendRGB applies AlphaBlendChannel to each channel of an RGB pixel.
func AlphaBlendRGB(back, fore RGB, ialpha int) RGB { return blend.AlphaBlendRGB(back, fore, ialpha) }
