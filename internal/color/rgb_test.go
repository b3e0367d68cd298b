package color

import "testing"

func TestRGBAccRoundTrip(t *testing.T) {
	c := RGB{R: 10, G: 128, B: 250}
	if got := c.Acc().Narrow(); got != c {
		t.Errorf("round trip = %+v, want %+v", got, c)
	}
}

func TestRGBAccSaturate(t *testing.T) {
	a := RGBAcc{R: 300, G: -10, B: 255}
	got := a.Narrow()
	if got.R != 255 {
		t.Errorf("R = %d, want 255", got.R)
	}
	if got.G != 0 {
		t.Errorf("G = %d, want 0", got.G)
	}
	if got.B != 255 {
		t.Errorf("B = %d, want 255", got.B)
	}
}

func TestRGBAccArithmetic(t *testing.T) {
	a := RGBAcc{R: 10, G: 20, B: 30}
	b := RGBAcc{R: 1, G: 2, B: 3}
	if got := a.Add(b); got != (RGBAcc{R: 11, G: 22, B: 33}) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); got != (RGBAcc{R: 9, G: 18, B: 27}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.MulScalar(2); got != (RGBAcc{R: 20, G: 40, B: 60}) {
		t.Errorf("MulScalar = %+v", got)
	}
	if got := a.MulAcc(b); got != (RGBAcc{R: 10, G: 40, B: 90}) {
		t.Errorf("MulAcc = %+v", got)
	}
	if got := a.Div(2); got != (RGBAcc{R: 5, G: 10, B: 15}) {
		t.Errorf("Div = %+v", got)
	}
	if got := a.Shr(1); got != (RGBAcc{R: 5, G: 10, B: 15}) {
		t.Errorf("Shr = %+v", got)
	}
	if got := a.AddScalar(5); got != (RGBAcc{R: 15, G: 25, B: 35}) {
		t.Errorf("AddScalar = %+v", got)
	}
	if got := a.SubScalar(5); got != (RGBAcc{R: 5, G: 15, B: 25}) {
		t.Errorf("SubScalar = %+v", got)
	}
}

func TestRGBAccLimits(t *testing.T) {
	a := RGBAcc{R: -5, G: 300, B: 100}
	if got := a.LimitMin(); got != (RGBAcc{R: 0, G: 300, B: 100}) {
		t.Errorf("LimitMin = %+v", got)
	}
	if got := a.LimitMax(); got != (RGBAcc{R: -5, G: 255, B: 100}) {
		t.Errorf("LimitMax = %+v", got)
	}
	if got := a.LimitMinMax(); got != (RGBAcc{R: 0, G: 255, B: 100}) {
		t.Errorf("LimitMinMax = %+v", got)
	}
	if got := (RGBAcc{R: -5, G: 5, B: -1}).Abs(); got != (RGBAcc{R: 5, G: 5, B: 1}) {
		t.Errorf("Abs = %+v", got)
	}
}

func TestRGBCompareMinMax(t *testing.T) {
	a := RGBAcc{R: 10, G: 200, B: 30}
	b := RGBAcc{R: 20, G: 100, B: 30}
	if got := CompareMinRGB(a, b); got != (RGBAcc{R: 10, G: 100, B: 30}) {
		t.Errorf("CompareMinRGB = %+v", got)
	}
	if got := CompareMaxRGB(a, b); got != (RGBAcc{R: 20, G: 200, B: 30}) {
		t.Errorf("CompareMaxRGB = %+v", got)
	}
}

func TestRGBMinMaxChannel(t *testing.T) {
	c := RGB{R: 40, G: 200, B: 10}
	if got := c.MinChannel(); got != 10 {
		t.Errorf("MinChannel = %d, want 10", got)
	}
	if got := c.MaxChannel(); got != 200 {
		t.Errorf("MaxChannel = %d, want 200", got)
	}
}
