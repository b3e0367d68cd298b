package color

import "testing"

func TestGrayAccRoundTrip(t *testing.T) {
	g := Gray{L: 200}
	if got := g.Acc().Narrow(); got != g {
		t.Errorf("round trip = %+v, want %+v", got, g)
	}
}

func TestGrayAccSaturate(t *testing.T) {
	a := GrayAcc{L: 300}
	if got := a.Narrow(); got.L != 255 {
		t.Errorf("Narrow() = %+v, want L=255", got)
	}
	a = GrayAcc{L: -50}
	if got := a.Narrow(); got.L != 0 {
		t.Errorf("Narrow() = %+v, want L=0", got)
	}
}

func TestGrayAccArithmetic(t *testing.T) {
	a := GrayAcc{L: 10}
	b := GrayAcc{L: 3}
	if got := a.Add(b); got.L != 13 {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); got.L != 7 {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.MulScalar(4); got.L != 40 {
		t.Errorf("MulScalar = %+v", got)
	}
	if got := a.Shr(1); got.L != 5 {
		t.Errorf("Shr = %+v", got)
	}
	if got := a.Div(2); got.L != 5 {
		t.Errorf("Div = %+v", got)
	}
}

func TestGrayAccAbsAndLimits(t *testing.T) {
	a := GrayAcc{L: -10}
	if got := a.Abs(); got.L != 10 {
		t.Errorf("Abs = %+v", got)
	}
	if got := a.LimitMin(); got.L != 0 {
		t.Errorf("LimitMin = %+v", got)
	}
	hi := GrayAcc{L: 999}
	if got := hi.LimitMax(); got.L != 255 {
		t.Errorf("LimitMax = %+v", got)
	}
}

func TestGrayCompareMinMax(t *testing.T) {
	a := GrayAcc{L: 10}
	b := GrayAcc{L: 20}
	if got := CompareMinGray(a, b); got.L != 10 {
		t.Errorf("CompareMinGray = %+v", got)
	}
	if got := CompareMaxGray(a, b); got.L != 20 {
		t.Errorf("CompareMaxGray = %+v", got)
	}
}
