package color

import "testing"

func TestRGBAFields(t *testing.T) {
	c := RGBA{R: 1, G: 2, B: 3, A: 4}
	if c.R != 1 || c.G != 2 || c.B != 3 || c.A != 4 {
		t.Errorf("unexpected fields: %+v", c)
	}
}
