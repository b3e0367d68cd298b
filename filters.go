package gazoshori

import "github.com/kyasu0118/gazoshori/internal/filter"

// GaussianGray blurs img with a separable Gaussian of standard deviation
// sigma. sigma == 0 (or any sigma small enough that floor(sigma) == 0)
// returns img unchanged. Returns InvalidArgument for negative sigma.
func GaussianGray(img GrayImage, sigma float64) (GrayImage, error) {
	return filter.GaussianGray(img, sigma)
}

// GaussianRGB is the truecolor counterpart of GaussianGray.
func GaussianRGB(img RGBImage, sigma float64) (RGBImage, error) {
	return filter.GaussianRGB(img, sigma)
}

// ConvolveGray applies an arbitrary n x n convolution kernel (flattened
// row-major, n*n entries, n odd) to a grayscale image. Returns
// InvalidArgument if kernel is not a square of odd side length.
func ConvolveGray(img GrayImage, kernel []float64) (GrayImage, error) {
	return filter.SeparableGray(img, kernel)
}

// ConvolveRGB is the truecolor counterpart of ConvolveGray.
func ConvolveRGB(img RGBImage, kernel []float64) (RGBImage, error) {
	return filter.SeparableRGB(img, kernel)
}

// EdgePreserveHMB blurs img with a Gaussian of standard deviation sigma,
// converting each window tap to HMB and only accumulating it when its
// hue/magnitude/base distance from the window center is within the
// given tolerances. This keeps strong hue or tone edges sharp while
// smoothing everything else.
func EdgePreserveHMB(img RGBImage, sigma, hueTolerance, magnitudeTolerance, baseLuminanceTolerance float64) (RGBImage, error) {
	return filter.EdgePreserveHMB(img, sigma, hueTolerance, magnitudeTolerance, baseLuminanceTolerance)
}

// EdgePreserveRGB is the RGB-space counterpart of EdgePreserveHMB: a
// neighbor is accumulated only when each of its R, G, B channels is
// within the matching tolerance of the window center.
func EdgePreserveRGB(img RGBImage, sigma float64, tolerance RGB) (RGBImage, error) {
	return filter.EdgePreserveRGB(img, sigma, tolerance)
}

// RestoreMaterial recovers dark-channel detail a Gaussian blur washed
// out of blurred, by comparing it against original and adding strength
// of the difference back onto every channel. strength must be in [0,1]
// and blurred/original must share dimensions.
func RestoreMaterial(blurred, original RGBImage, strength float64) (RGBImage, error) {
	return filter.RestoreMaterial(blurred, original, strength)
}

// CorrectColorTemperature tints every pixel of img toward the warm or
// cool end of a fixed color ramp. temperature is in [-1,1] (-1 red, 0
// neutral, 1 blue); strength is in [0,1].
func CorrectColorTemperature(img RGBImage, temperature, strength float64) (RGBImage, error) {
	return filter.CorrectColorTemperature(img, temperature, strength)
}
