package filter

import (
	"testing"

	"github.com/kyasu0118/gazoshori/internal/color"
	"github.com/kyasu0118/gazoshori/internal/image"
)

func TestRestoreMaterialRejectsOutOfRangeStrength(t *testing.T) {
	im := image.New[color.RGB](2, 2)
	if _, err := RestoreMaterial(im, im, -0.1); err == nil {
		t.Errorf("expected error for strength < 0")
	}
	if _, err := RestoreMaterial(im, im, 1.1); err == nil {
		t.Errorf("expected error for strength > 1")
	}
}

func TestRestoreMaterialRejectsMismatchedSizes(t *testing.T) {
	a := image.New[color.RGB](2, 2)
	b := image.New[color.RGB](3, 3)
	if _, err := RestoreMaterial(a, b, 0.5); err == nil {
		t.Errorf("expected error for mismatched sizes")
	}
}

func TestRestoreMaterialZeroStrengthIsIdentity(t *testing.T) {
	blur := image.New[color.RGB](2, 2)
	blur.Set(0, 0, color.RGB{R: 50, G: 60, B: 70})
	orig := image.New[color.RGB](2, 2)
	orig.Set(0, 0, color.RGB{R: 10, G: 200, B: 5})
	out, err := RestoreMaterial(blur, orig, 0)
	if err != nil {
		t.Fatalf("RestoreMaterial: %v", err)
	}
	if !image.Equal(out, blur) {
		t.Errorf("zero strength changed the image")
	}
}

func TestRestoreMaterialAddsDarkChannelDelta(t *testing.T) {
	blur := image.New[color.RGB](1, 1)
	blur.Set(0, 0, color.RGB{R: 100, G: 110, B: 120})
	orig := image.New[color.RGB](1, 1)
	orig.Set(0, 0, color.RGB{R: 150, G: 160, B: 170})
	out, err := RestoreMaterial(blur, orig, 1.0)
	if err != nil {
		t.Fatalf("RestoreMaterial: %v", err)
	}
	got := out.At(0, 0)
	want := color.RGB{R: 150, G: 160, B: 170}
	if got != want {
		t.Errorf("RestoreMaterial = %+v, want %+v", got, want)
	}
}

func TestRestoreMaterialClampsAtWhite(t *testing.T) {
	blur := image.New[color.RGB](1, 1)
	blur.Set(0, 0, color.RGB{R: 250, G: 250, B: 250})
	orig := image.New[color.RGB](1, 1)
	orig.Set(0, 0, color.RGB{R: 255, G: 255, B: 255})
	out, err := RestoreMaterial(blur, orig, 1.0)
	if err != nil {
		t.Fatalf("RestoreMaterial: %v", err)
	}
	got := out.At(0, 0)
	if got.R > 255 || got.G > 255 || got.B > 255 {
		t.Errorf("RestoreMaterial did not clamp: %+v", got)
	}
}
