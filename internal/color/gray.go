// Package color defines the five pixel formats of the image engine (GRAY,
// RGB, RGBA, GRAY_F, HMB) and their companion color accumulators — the
// wider signed per-channel types used for intermediate filter and blend
// arithmetic before a final saturating narrow back to a pixel.
package color

import "github.com/kyasu0118/gazoshori/internal/basics"

// Gray is an 8-bit grayscale pixel: a single luminance channel.
type Gray struct {
	L uint8
}

// GrayAcc is Gray's color accumulator: a wider signed type carrying
// headroom for multiply/sum overflow during filtering and blending.
type GrayAcc struct {
	L int32
}

// Acc widens a Gray pixel into its accumulator.
func (g Gray) Acc() GrayAcc {
	return GrayAcc{L: int32(g.L)}
}

// Narrow saturates the accumulator back into a Gray pixel, clamping to
// [0,255] and truncating.
func (a GrayAcc) Narrow() Gray {
	return Gray{L: uint8(basics.Limit(int(a.L), 0, 255))}
}

func (a GrayAcc) Add(b GrayAcc) GrayAcc { return GrayAcc{L: a.L + b.L} }
func (a GrayAcc) Sub(b GrayAcc) GrayAcc { return GrayAcc{L: a.L - b.L} }
func (a GrayAcc) MulScalar(k int) GrayAcc {
	return GrayAcc{L: a.L * int32(k)}
}
func (a GrayAcc) MulAcc(b GrayAcc) GrayAcc { return GrayAcc{L: a.L * b.L} }
func (a GrayAcc) Div(k int) GrayAcc        { return GrayAcc{L: a.L / int32(k)} }
func (a GrayAcc) Shr(k int) GrayAcc        { return GrayAcc{L: a.L >> uint(k)} }

func (a GrayAcc) Min(v int) GrayAcc {
	return GrayAcc{L: int32(basics.FastMin(int(a.L), v))}
}
func (a GrayAcc) Max(v int) GrayAcc {
	return GrayAcc{L: int32(basics.FastMax(int(a.L), v))}
}
func (a GrayAcc) Abs() GrayAcc {
	return GrayAcc{L: int32(basics.FastAbs(int(a.L)))}
}
func (a GrayAcc) LimitMin() GrayAcc    { return a.Max(0) }
func (a GrayAcc) LimitMax() GrayAcc    { return a.Min(255) }
func (a GrayAcc) LimitMinMax() GrayAcc { return a.Max(0).Min(255) }

// CompareMinGray returns the per-channel minimum of a and b.
func CompareMinGray(a, b GrayAcc) GrayAcc {
	return GrayAcc{L: int32(basics.FastMin(int(a.L), int(b.L)))}
}

// CompareMaxGray returns the per-channel maximum of a and b.
func CompareMaxGray(a, b GrayAcc) GrayAcc {
	return GrayAcc{L: int32(basics.FastMax(int(a.L), int(b.L)))}
}
