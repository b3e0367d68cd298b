package color

// GrayF is a floating-point single-channel pixel format. No filter, blend
// or conversion operator targets it directly in this spec; it exists as a
// declared pixel format for callers that need a float-precision grayscale
// buffer (e.g. an intermediate accumulation surface upstream of this
// library).
type GrayF struct {
	L float32
}
