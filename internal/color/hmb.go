package color

// HMB is the chromatic model used for hue-aware operations: Hue in
// degrees (signed, unbounded — callers normalize into a positive range
// where needed), Magnitude (chroma) in [0,255], and Base (the achromatic
// floor, i.e. min(R,G,B)) in [0,255].
type HMB struct {
	H, M, B float32
}
