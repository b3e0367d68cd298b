package gazoshori

import "github.com/kyasu0118/gazoshori/internal/resize"

// ResizeGray resizes img to an explicit target width/height using interp.
// interp == Super ignores the fractional sampling kernels entirely and
// uses fixed-point area averaging instead, which is better suited to
// downscaling. Returns InvalidArgument if w or h is not positive.
func ResizeGray(img GrayImage, w, h int, interp Interpolation) (GrayImage, error) {
	return resize.SizeGray(img, w, h, interp)
}

// ScaleGray resizes img by a uniform factor, rounding the target
// dimensions to the nearest integer.
func ScaleGray(img GrayImage, scale float64, interp Interpolation) (GrayImage, error) {
	return resize.ScaleGray(img, scale, interp)
}

// ResizeRGB is the truecolor counterpart of ResizeGray.
func ResizeRGB(img RGBImage, w, h int, interp Interpolation) (RGBImage, error) {
	return resize.SizeRGB(img, w, h, interp)
}

// ScaleRGB is the truecolor counterpart of ScaleGray.
func ScaleRGB(img RGBImage, scale float64, interp Interpolation) (RGBImage, error) {
	return resize.ScaleRGB(img, scale, interp)
}
