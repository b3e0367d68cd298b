package filter

import (
	"testing"

	"github.com/kyasu0118/gazoshori/internal/color"
	"github.com/kyasu0118/gazoshori/internal/image"
)

func TestSeparableGrayRejectsNonSquareKernel(t *testing.T) {
	im := image.New[color.Gray](4, 4)
	if _, err := SeparableGray(im, []float64{1, 2, 3}); err == nil {
		t.Errorf("expected error for non-square kernel")
	}
}

func TestSeparableGrayRejectsEvenSquareKernel(t *testing.T) {
	im := image.New[color.Gray](4, 4)
	even := []float64{1, 2, 3, 4}
	if _, err := SeparableGray(im, even); err == nil {
		t.Errorf("expected error for 2x2 (even-side) kernel")
	}
	if _, err := SeparableRGB(image.New[color.RGB](4, 4), even); err == nil {
		t.Errorf("expected error for 2x2 (even-side) kernel")
	}
}

func TestSeparableGrayIdentityKernel(t *testing.T) {
	im := image.New[color.Gray](4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			im.Set(x, y, color.Gray{L: uint8(x*4 + y)})
		}
	}
	identity := []float64{
		0, 0, 0,
		0, 1, 0,
		0, 0, 0,
	}
	out, err := SeparableGray(im, identity)
	if err != nil {
		t.Fatalf("SeparableGray: %v", err)
	}
	if !image.Equal(out, im) {
		t.Errorf("identity kernel changed the image")
	}
}

func TestSeparableGrayBoxBlursSolidColor(t *testing.T) {
	im := image.New[color.Gray](5, 5)
	im.Fill(color.Gray{L: 100})
	box := []float64{
		1.0 / 9, 1.0 / 9, 1.0 / 9,
		1.0 / 9, 1.0 / 9, 1.0 / 9,
		1.0 / 9, 1.0 / 9, 1.0 / 9,
	}
	out, err := SeparableGray(im, box)
	if err != nil {
		t.Fatalf("SeparableGray: %v", err)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if got := out.At(x, y).L; got < 98 || got > 100 {
				t.Errorf("At(%d,%d) = %d, want ~100", x, y, got)
			}
		}
	}
}
