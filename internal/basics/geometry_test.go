package basics

import "testing"

func TestRectFromPointSize(t *testing.T) {
	r := NewRectFromPointSize(NewPoint(2, 3), NewSize(10, 20))
	if r.X != 2 || r.Y != 3 || r.Width != 10 || r.Height != 20 {
		t.Fatalf("unexpected rect: %+v", r)
	}
	if p := r.Point(); p.X != 2 || p.Y != 3 {
		t.Errorf("Point() = %+v", p)
	}
	if s := r.Size(); s.Width != 10 || s.Height != 20 {
		t.Errorf("Size() = %+v", s)
	}
}

func TestCircleFromPoint(t *testing.T) {
	c := NewCircleFromPoint(NewPoint(5.0, 6.0), 2.5)
	if c.X != 5.0 || c.Y != 6.0 || c.Radius != 2.5 {
		t.Fatalf("unexpected circle: %+v", c)
	}
	if p := c.Point(); p.X != 5.0 || p.Y != 6.0 {
		t.Errorf("Point() = %+v", p)
	}
}
