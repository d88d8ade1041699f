package framing

import "errors"

// ErrNotEnoughData is returned by a header parser when the supplied slice
// is a valid prefix of a legal header but is too short to decide anything.
var ErrNotEnoughData = errors.New("framing: not enough data")

// ErrMalformed is returned by a header parser when the supplied slice can
// never be completed into a legal header, regardless of how many more
// bytes arrive.
var ErrMalformed = errors.New("framing: malformed header")
