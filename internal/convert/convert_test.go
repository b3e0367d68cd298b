package convert

import (
	"testing"

	"github.com/kyasu0118/gazoshori/internal/color"
	"github.com/kyasu0118/gazoshori/internal/image"
)

func sampleRGBImage() image.Image[color.RGB] {
	im := image.New[color.RGB](2, 2)
	im.Set(0, 0, color.RGB{R: 10, G: 20, B: 30})
	im.Set(1, 0, color.RGB{R: 200, G: 150, B: 50})
	im.Set(0, 1, color.RGB{R: 0, G: 0, B: 0})
	im.Set(1, 1, color.RGB{R: 255, G: 255, B: 255})
	return im
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// Invariant 2: conv(conv(img, GRAY), RGB) produces equal channels per
// pixel, each within +-1 of the original luma.
func TestRGBGrayRGBRoundTrip(t *testing.T) {
	src := sampleRGBImage()
	gray := RGBToGray(src)
	back := GrayToRGB(gray)
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			p := back.At(x, y)
			if p.R != p.G || p.G != p.B {
				t.Errorf("at (%d,%d): channels not equal: %+v", x, y, p)
			}
			orig := src.At(x, y)
			luma := (int(orig.R)*306 + int(orig.G)*601 + int(orig.B)*117) >> 10
			if absDiff(int(p.R), luma) > 1 {
				t.Errorf("at (%d,%d): %d not within 1 of luma %d", x, y, p.R, luma)
			}
		}
	}
}

// Invariant 3: conv(conv(img, HMB), RGB) reproduces the original to
// within 4/255 per channel.
func TestRGBHMBRGBRoundTrip(t *testing.T) {
	src := sampleRGBImage()
	hmb := RGBToHMB(src)
	back := HMBToRGB(hmb)
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			orig := src.At(x, y)
			got := back.At(x, y)
			if absDiff(int(orig.R), int(got.R)) > 4 ||
				absDiff(int(orig.G), int(got.G)) > 4 ||
				absDiff(int(orig.B), int(got.B)) > 4 {
				t.Errorf("at (%d,%d): %+v round-tripped to %+v, exceeds 4/255 bound", x, y, orig, got)
			}
		}
	}
}

// S4: RGB->HMB of pure red/green/blue.
func TestRGBToHMBScenarioS4(t *testing.T) {
	im := image.New[color.RGB](3, 1)
	im.Set(0, 0, color.RGB{R: 255, G: 0, B: 0})
	im.Set(1, 0, color.RGB{R: 0, G: 255, B: 0})
	im.Set(2, 0, color.RGB{R: 0, G: 0, B: 255})
	hmb := RGBToHMB(im)

	red := hmb.At(0, 0)
	if absDiff(int(red.H), 0) > 1 || red.M != 255 || red.B != 0 {
		t.Errorf("red -> %+v, want H~0 M=255 B=0", red)
	}
	green := hmb.At(1, 0)
	if absDiff(int(green.H), 120) > 1 {
		t.Errorf("green -> H=%v, want ~120", green.H)
	}
	blue := hmb.At(2, 0)
	if absDiff(int(blue.H), -120) > 1 && absDiff(int(blue.H), 240) > 1 {
		t.Errorf("blue -> H=%v, want ~-120 (or 240)", blue.H)
	}
}

func TestRGBToGrayIsAchromatic(t *testing.T) {
	im := image.New[color.RGB](1, 1)
	im.Set(0, 0, color.RGB{R: 128, G: 128, B: 128})
	gray := RGBToGray(im)
	if gray.At(0, 0).L != 128 {
		t.Errorf("gray of neutral 128 = %d, want 128", gray.At(0, 0).L)
	}
}
