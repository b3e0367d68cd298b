// Package gserr defines the sentinel error kinds shared across the image
// engine, so callers can classify a failure with errors.Is regardless of
// which package produced it.
package gserr

import "errors"

var (
	// InvalidArgument marks a caller-supplied value outside its documented
	// domain: negative sigma, a resize target with a non-positive
	// dimension, a strength or temperature outside its allowed range, a
	// mirror border radius larger than the image itself, mismatched
	// image sizes where equal sizes are required.
	InvalidArgument = errors.New("gazoshori: invalid argument")

	// OutOfRange marks an out-of-bounds pixel access from a non-safe
	// accessor.
	OutOfRange = errors.New("gazoshori: out of range")

	// IOError marks a stream read/write failure, a truncated BMP header,
	// or an unsupported bit depth.
	IOError = errors.New("gazoshori: io error")

	// UnsupportedConversion marks a cross-type conversion for which no
	// mapping is defined (GRAY<->HMB, anything involving RGBA).
	UnsupportedConversion = errors.New("gazoshori: unsupported conversion")
)
