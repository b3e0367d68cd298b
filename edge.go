package gazoshori

import "github.com/kyasu0118/gazoshori/internal/edge"

// DetectEdges runs gradient-direction edge detection over img with the
// given window radius: each output pixel sums the unit vectors from its
// window center to each neighbor, weighted by the grayscale luminance
// difference, and reports the result as an HMB pixel (angle as hue,
// scaled magnitude as magnitude, base left at zero). radius must be
// positive.
func DetectEdges(img RGBImage, radius int) (HMBImage, error) {
	return edge.Detect(img, radius)
}
