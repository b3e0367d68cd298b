package resize

import (
	"errors"
	"testing"

	"github.com/kyasu0118/gazoshori/internal/color"
	"github.com/kyasu0118/gazoshori/internal/gserr"
	"github.com/kyasu0118/gazoshori/internal/image"
	"github.com/kyasu0118/gazoshori/internal/resample"
)

func TestSizeGrayRejectsNonPositive(t *testing.T) {
	im := image.New[color.Gray](4, 4)
	_, err := SizeGray(im, 0, 4, resample.Bicubic)
	if !errors.Is(err, gserr.InvalidArgument) {
		t.Fatalf("err = %v, want InvalidArgument", err)
	}
}

// Invariant 4: resize(img, img.size, any_interp) equals img pixelwise.
func TestSizeGrayIdentity(t *testing.T) {
	im := image.New[color.Gray](5, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			im.Set(x, y, color.Gray{L: uint8(x + y*5)})
		}
	}
	for _, interp := range []resample.Interpolation{resample.Nearest, resample.Bilinear, resample.Bicubic, resample.Super} {
		got, err := SizeGray(im, 5, 3, interp)
		if err != nil {
			t.Fatalf("interp %v: %v", interp, err)
		}
		if !image.Equal(got, im) {
			t.Errorf("interp %v: resize to same size changed pixels", interp)
		}
	}
}

func checkerboard4x4() image.Image[color.Gray] {
	im := image.New[color.Gray](4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			v := uint8(0)
			if (x+y)%2 == 0 {
				v = 255
			}
			im.Set(x, y, color.Gray{L: v})
		}
	}
	return im
}

// S6: resize(4x4 checkerboard, 8x8, super) yields an 8x8 whose 2x2 tiles
// match the original cells exactly when dimensions double evenly.
func TestSuperResizeScenarioS6(t *testing.T) {
	im := checkerboard4x4()
	out, err := SizeGray(im, 8, 8, resample.Super)
	if err != nil {
		t.Fatalf("SizeGray: %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := im.At(x, y)
			for dy := 0; dy < 2; dy++ {
				for dx := 0; dx < 2; dx++ {
					got := out.At(x*2+dx, y*2+dy)
					if got != want {
						t.Errorf("tile (%d,%d)[%d,%d] = %+v, want %+v", x, y, dx, dy, got, want)
					}
				}
			}
		}
	}
}

func TestScaleGrayMatchesSizeGray(t *testing.T) {
	im := checkerboard4x4()
	scaled, err := ScaleGray(im, 2.0, resample.Bicubic)
	if err != nil {
		t.Fatalf("ScaleGray: %v", err)
	}
	if scaled.Width() != 8 || scaled.Height() != 8 {
		t.Errorf("scaled size = %d,%d want 8,8", scaled.Width(), scaled.Height())
	}
	sized, err := SizeGray(im, 8, 8, resample.Bicubic)
	if err != nil {
		t.Fatalf("SizeGray: %v", err)
	}
	if !image.Equal(scaled, sized) {
		t.Errorf("ScaleGray(2.0) differs from SizeGray(8,8)")
	}
}

func TestSizeRGBIdentity(t *testing.T) {
	im := image.New[color.RGB](3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			v := uint8(x*3 + y)
			im.Set(x, y, color.RGB{R: v, G: v, B: v})
		}
	}
	got, err := SizeRGB(im, 3, 3, resample.Bilinear)
	if err != nil {
		t.Fatalf("SizeRGB: %v", err)
	}
	if !image.Equal(got, im) {
		t.Errorf("resize to same size changed pixels")
	}
}
