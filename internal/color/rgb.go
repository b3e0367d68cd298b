package color

import "github.com/kyasu0118/gazoshori/internal/basics"

// RGB is a 24-bit truecolor pixel: red, green and blue channels, 8 bits
// each.
type RGB struct {
	R, G, B uint8
}

// RGBAcc is RGB's color accumulator.
type RGBAcc struct {
	R, G, B int32
}

// Acc widens an RGB pixel into its accumulator.
func (c RGB) Acc() RGBAcc {
	return RGBAcc{R: int32(c.R), G: int32(c.G), B: int32(c.B)}
}

// Narrow saturates the accumulator back into an RGB pixel, clamping each
// channel to [0,255] and truncating.
func (a RGBAcc) Narrow() RGB {
	return RGB{
		R: uint8(basics.Limit(int(a.R), 0, 255)),
		G: uint8(basics.Limit(int(a.G), 0, 255)),
		B: uint8(basics.Limit(int(a.B), 0, 255)),
	}
}

func (a RGBAcc) Add(b RGBAcc) RGBAcc {
	return RGBAcc{R: a.R + b.R, G: a.G + b.G, B: a.B + b.B}
}
func (a RGBAcc) Sub(b RGBAcc) RGBAcc {
	return RGBAcc{R: a.R - b.R, G: a.G - b.G, B: a.B - b.B}
}
func (a RGBAcc) MulScalar(k int) RGBAcc {
	ik := int32(k)
	return RGBAcc{R: a.R * ik, G: a.G * ik, B: a.B * ik}
}
func (a RGBAcc) MulAcc(b RGBAcc) RGBAcc {
	return RGBAcc{R: a.R * b.R, G: a.G * b.G, B: a.B * b.B}
}
func (a RGBAcc) Div(k int) RGBAcc {
	ik := int32(k)
	return RGBAcc{R: a.R / ik, G: a.G / ik, B: a.B / ik}
}
func (a RGBAcc) Shr(k int) RGBAcc {
	uk := uint(k)
	return RGBAcc{R: a.R >> uk, G: a.G >> uk, B: a.B >> uk}
}
func (a RGBAcc) AddScalar(v int) RGBAcc {
	iv := int32(v)
	return RGBAcc{R: a.R + iv, G: a.G + iv, B: a.B + iv}
}
func (a RGBAcc) SubScalar(v int) RGBAcc {
	iv := int32(v)
	return RGBAcc{R: a.R - iv, G: a.G - iv, B: a.B - iv}
}

func (a RGBAcc) Min(v int) RGBAcc {
	return RGBAcc{
		R: int32(basics.FastMin(int(a.R), v)),
		G: int32(basics.FastMin(int(a.G), v)),
		B: int32(basics.FastMin(int(a.B), v)),
	}
}
func (a RGBAcc) Max(v int) RGBAcc {
	return RGBAcc{
		R: int32(basics.FastMax(int(a.R), v)),
		G: int32(basics.FastMax(int(a.G), v)),
		B: int32(basics.FastMax(int(a.B), v)),
	}
}
func (a RGBAcc) Abs() RGBAcc {
	return RGBAcc{
		R: int32(basics.FastAbs(int(a.R))),
		G: int32(basics.FastAbs(int(a.G))),
		B: int32(basics.FastAbs(int(a.B))),
	}
}
func (a RGBAcc) LimitMin() RGBAcc    { return a.Max(0) }
func (a RGBAcc) LimitMax() RGBAcc    { return a.Min(255) }
func (a RGBAcc) LimitMinMax() RGBAcc { return a.Max(0).Min(255) }

// CompareMinRGB returns the per-channel minimum of a and b.
func CompareMinRGB(a, b RGBAcc) RGBAcc {
	return RGBAcc{
		R: int32(basics.FastMin(int(a.R), int(b.R))),
		G: int32(basics.FastMin(int(a.G), int(b.G))),
		B: int32(basics.FastMin(int(a.B), int(b.B))),
	}
}

// CompareMaxRGB returns the per-channel maximum of a and b.
func CompareMaxRGB(a, b RGBAcc) RGBAcc {
	return RGBAcc{
		R: int32(basics.FastMax(int(a.R), int(b.R))),
		G: int32(basics.FastMax(int(a.G), int(b.G))),
		B: int32(basics.FastMax(int(a.B), int(b.B))),
	}
}

// MinChannel returns the smallest of the three channels (used by restore
// material and the HMB base/magnitude split).
func (c RGB) MinChannel() uint8 {
	return uint8(basics.FastMin(int(c.R), basics.FastMin(int(c.G), int(c.B))))
}

// MaxChannel returns the largest of the three channels.
func (c RGB) MaxChannel() uint8 {
	return uint8(basics.FastMax(int(c.R), basics.FastMax(int(c.G), int(c.B))))
}
