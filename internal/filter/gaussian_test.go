package filter

import (
	"testing"

	"github.com/kyasu0118/gazoshori/internal/color"
	"github.com/kyasu0118/gazoshori/internal/image"
)

func checkerGray(w, h int) image.Image[color.Gray] {
	im := image.New[color.Gray](w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(0)
			if (x+y)%2 == 0 {
				v = 255
			}
			im.Set(x, y, color.Gray{L: v})
		}
	}
	return im
}

// S5 part 1: gaussian(img, 0) = img pixel-exact.
func TestGaussianGrayZeroSigmaIdentity(t *testing.T) {
	im := checkerGray(6, 6)
	out, err := GaussianGray(im, 0)
	if err != nil {
		t.Fatalf("GaussianGray: %v", err)
	}
	if !image.Equal(out, im) {
		t.Errorf("gaussian with sigma=0 changed the image")
	}
}

// Invariant 6: for any sigma with radius = floor(sigma) = 0, gaussian
// returns the input unchanged.
func TestGaussianGraySmallSigmaNoRadiusIsIdentity(t *testing.T) {
	im := checkerGray(6, 6)
	out, err := GaussianGray(im, 0.4)
	if err != nil {
		t.Fatalf("GaussianGray: %v", err)
	}
	if !image.Equal(out, im) {
		t.Errorf("gaussian with tiny sigma (radius 0) changed the image")
	}
}

// S5 part 2: gaussian(solid_color_image, sigma) returns the same solid
// color regardless of sigma.
func TestGaussianGraySolidColorUnchanged(t *testing.T) {
	im := image.New[color.Gray](16, 16)
	im.Fill(color.Gray{L: 123})
	for _, sigma := range []float64{1, 3, 10} {
		out, err := GaussianGray(im, sigma)
		if err != nil {
			t.Fatalf("GaussianGray(sigma=%v): %v", sigma, err)
		}
		if !image.Equal(out, im) {
			t.Errorf("gaussian(solid, sigma=%v) changed the solid color", sigma)
		}
	}
}

func TestGaussianGrayRejectsNegativeSigma(t *testing.T) {
	im := checkerGray(4, 4)
	if _, err := GaussianGray(im, -1); err == nil {
		t.Errorf("expected error for negative sigma")
	}
}

func TestGaussianRGBSolidColorUnchanged(t *testing.T) {
	im := image.New[color.RGB](8, 8)
	im.Fill(color.RGB{R: 10, G: 20, B: 30})
	out, err := GaussianRGB(im, 5)
	if err != nil {
		t.Fatalf("GaussianRGB: %v", err)
	}
	if !image.Equal(out, im) {
		t.Errorf("GaussianRGB(solid) changed the solid color")
	}
}
