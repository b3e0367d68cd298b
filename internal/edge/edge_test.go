package edge

import (
	"testing"

	"github.com/kyasu0118/gazoshori/internal/color"
	"github.com/kyasu0118/gazoshori/internal/image"
)

func TestDetectRejectsNonPositiveRadius(t *testing.T) {
	im := image.New[color.RGB](4, 4)
	if _, err := Detect(im, 0); err == nil {
		t.Errorf("expected error for radius 0")
	}
	if _, err := Detect(im, -1); err == nil {
		t.Errorf("expected error for negative radius")
	}
}

func TestDetectSolidColorHasZeroMagnitude(t *testing.T) {
	im := image.New[color.RGB](6, 6)
	im.Fill(color.RGB{R: 120, G: 120, B: 120})
	out, err := Detect(im, 2)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if got := out.At(x, y).M; got != 0 {
				t.Errorf("At(%d,%d).M = %v, want 0 for a flat field", x, y, got)
			}
		}
	}
}

func TestDetectOutputSizeMatchesInput(t *testing.T) {
	im := image.New[color.RGB](5, 7)
	out, err := Detect(im, 1)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if out.Width() != 5 || out.Height() != 7 {
		t.Errorf("Detect size = %dx%d, want 5x7", out.Width(), out.Height())
	}
}

func TestDetectVerticalEdgeProducesNonzeroMagnitude(t *testing.T) {
	im := image.New[color.RGB](6, 6)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if x < 3 {
				im.Set(x, y, color.RGB{R: 0, G: 0, B: 0})
			} else {
				im.Set(x, y, color.RGB{R: 255, G: 255, B: 255})
			}
		}
	}
	out, err := Detect(im, 2)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if got := out.At(3, 3).M; got == 0 {
		t.Errorf("expected nonzero magnitude at a hard vertical edge, got %v", got)
	}
}
