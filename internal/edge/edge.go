// Package edge implements gradient-direction edge detection: every
// output pixel sums the unit vectors from center to each neighbor in a
// (2*radius+1) window, weighted by the grayscale luminance difference,
// and reports the resulting vector as an HMB pixel (angle as hue,
// scaled magnitude as magnitude, base left at zero).
package edge

import (
	"math"

	"github.com/kyasu0118/gazoshori/internal/basics"
	"github.com/kyasu0118/gazoshori/internal/color"
	"github.com/kyasu0118/gazoshori/internal/convert"
	"github.com/kyasu0118/gazoshori/internal/gserr"
	"github.com/kyasu0118/gazoshori/internal/image"
)

// Detect runs gradient-direction edge detection over img with the given
// window radius. radius must be positive and no larger than either of
// img's dimensions.
func Detect(img image.Image[color.RGB], radius int) (image.Image[color.HMB], error) {
	if radius <= 0 {
		return image.Empty[color.HMB](), gserr.InvalidArgument
	}

	side := radius*2 + 1
	directions := make([]basics.Vector2, side*side)
	index := 0
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			v := basics.Vector2{X: float64(x - radius), Y: float64(y - radius)}
			if v.X == 0 && v.Y == 0 {
				directions[index] = basics.Vector2{}
			} else {
				directions[index] = v.Normalize()
			}
			index++
		}
	}

	gray := convert.RGBToGray(img)
	padded, err := image.Pad(gray, radius, radius)
	if err != nil {
		return image.Empty[color.HMB](), err
	}

	maxDistanceInverse := 1.0 / (math.Sqrt(float64(radius*radius+radius*radius)) * float64(radius))

	out := image.New[color.HMB](img.Width(), img.Height())
	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			center := padded.At(x+radius, y+radius)

			var vec basics.Vector2
			i := 0
			for dy := 0; dy < side; dy++ {
				for dx := 0; dx < side; dx++ {
					target := padded.At(x+dx, y+dy)
					vec = vec.Add(directions[i].Scale(float64(int(center.L) - int(target.L))))
					i++
				}
			}

			magnitude := basics.FastMin(int(vec.Magnitude()*maxDistanceInverse), 255)
			out.Set(x, y, color.HMB{H: float32(vec.Angle()), M: float32(magnitude), B: 0})
		}
	}
	return out, nil
}
