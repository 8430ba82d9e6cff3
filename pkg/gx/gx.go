// Package gx models geometry authored for the GX fixed-function vertex pipeline:
// per-attribute index streams, strip/fan primitives, and the attribute pools
// those indices point into.
package gx

import "errors"

// GX geometry errors.
var (
	ErrOutOfRangeChannel    = errors.New("attribute channel out of range")
	ErrOutOfRangeIndex      = errors.New("attribute index out of range")
	ErrUnsupportedPrimitive = errors.New("unsupported primitive type")
	ErrUnknownAttribute     = errors.New("unknown attribute")
)
