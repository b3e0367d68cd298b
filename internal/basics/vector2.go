package basics

import "math"

// Vector2 is a 2D float vector used by edge detection and color-temperature
// direction math.
type Vector2 struct {
	X, Y float64
}

// Dot returns the dot product |A||B|cos(theta).
func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the 2D cross product |A||B|sin(theta) (signed area of the
// parallelogram spanned by v and o).
func (v Vector2) Cross(o Vector2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Magnitude returns the Euclidean length of the vector.
func (v Vector2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// MagnitudeSquare returns the squared length, avoiding the sqrt.
func (v Vector2) MagnitudeSquare() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit-length vector in the same direction.
func (v Vector2) Normalize() Vector2 {
	m := v.Magnitude()
	return Vector2{X: v.X / m, Y: v.Y / m}
}

// Angle returns atan2(y, x) in degrees.
func (v Vector2) Angle() float64 {
	return RadianToDegree(math.Atan2(v.Y, v.X))
}

// RotateRadian rotates the vector by the given angle in radians.
func (v Vector2) RotateRadian(radian float64) Vector2 {
	s, c := math.Sin(radian), math.Cos(radian)
	return Vector2{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}

// Rotate rotates the vector by the given angle in degrees.
func (v Vector2) Rotate(degree float64) Vector2 {
	return v.RotateRadian(DegreeToRadian(degree))
}

// Add returns the component-wise sum.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns the vector scaled by a scalar.
func (v Vector2) Scale(k float64) Vector2 {
	return Vector2{X: v.X * k, Y: v.Y * k}
}

// Sine returns y / magnitude.
func (v Vector2) Sine() float64 {
	return v.Y / v.Magnitude()
}

// Cosine returns x / magnitude. The original source returned y/magnitude
// here too (a copy-paste duplicate of Sine) — corrected per the design
// note in SPEC_FULL.md §3; CosineBuggy reproduces the original behavior
// for anyone diffing against it.
func (v Vector2) Cosine() float64 {
	return v.X / v.Magnitude()
}

// CosineBuggy reproduces the original source's Cosine(), which actually
// computed y/magnitude. Kept only so the discrepancy is documented and
// testable; nothing in this package calls it for real work.
func (v Vector2) CosineBuggy() float64 {
	return v.Y / v.Magnitude()
}

// Tangent returns y / x.
func (v Vector2) Tangent() float64 {
	return v.Y / v.X
}

// Direction returns the unit vector pointing at the given angle in degrees.
func Direction(degree float64) Vector2 {
	radian := DegreeToRadian(degree)
	return Vector2{X: math.Cos(radian), Y: math.Sin(radian)}
}
