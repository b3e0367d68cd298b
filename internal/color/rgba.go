package color

// RGBA is the reserved 32-bit truecolor-plus-alpha pixel format. Alpha
// compositing is a declared non-goal (spec.md §1): RGBA exists as a pixel
// format value so Image[RGBA] can be constructed and stored, but no
// conversion, filter, or blend operator is defined for it, matching
// spec.md §4.10 ("RGBA conversions: undefined in this spec").
type RGBA struct {
	R, G, B, A uint8
}
