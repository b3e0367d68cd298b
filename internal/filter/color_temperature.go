package filter

import (
	"github.com/kyasu0118/gazoshori/internal/blend"
	"github.com/kyasu0118/gazoshori/internal/color"
	"github.com/kyasu0118/gazoshori/internal/gserr"
	"github.com/kyasu0118/gazoshori/internal/image"
)

// temperatureTable is the cool-to-warm tint ramp: red, yellow, white,
// cyan, blue, blue (the final entry repeats the last real stop as the
// sentinel endpoint for the index+1 lookup).
var temperatureTable = [6]color.RGB{
	{R: 255, G: 0, B: 0},
	{R: 255, G: 255, B: 0},
	{R: 255, G: 255, B: 255},
	{R: 0, G: 255, B: 255},
	{R: 0, G: 0, B: 255},
	{R: 0, G: 0, B: 255},
}

// CorrectColorTemperature tints every pixel of img toward temperatureTable's
// warm or cool end. temperature is in [-1,1] (-1 red, 0 neutral, 1 blue),
// strength is in [0,1].
func CorrectColorTemperature(img image.Image[color.RGB], temperature, strength float64) (image.Image[color.RGB], error) {
	if temperature < -1 || temperature > 1 {
		return image.Empty[color.RGB](), gserr.InvalidArgument
	}
	if strength < 0 || strength > 1 {
		return image.Empty[color.RGB](), gserr.InvalidArgument
	}
	if temperature == 0 {
		return img.Clone(), nil
	}

	var index int
	var alpha int
	if temperature < 0 {
		index = int((1.0 + temperature) / 0.5)
		alpha = int(((1.0+temperature)-float64(index)*0.5) / 0.5 * 1024.0)
	} else {
		index = int(temperature/0.5) + 2
		alpha = int((temperature-float64(index-2)*0.5) / 0.5 * 1024.0)
	}

	tint := blend.AlphaBlendRGB(temperatureTable[index], temperatureTable[index+1], alpha)
	ialpha := blend.IAlphaFromFloat(strength)

	out := image.New[color.RGB](img.Width(), img.Height())
	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			out.Set(x, y, blend.AlphaBlendRGB(img.At(x, y), tint, ialpha))
		}
	}
	return out, nil
}
