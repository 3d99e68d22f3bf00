package scenario

import "errors"

// Sentinel errors returned by every constructor in this package before any
// node or edge is added, so a malformed request never leaves behind a
// partially built component.
var (
	// ErrTooFewNodes indicates a constructor was asked for fewer nodes than
	// its shape requires to be meaningful.
	ErrTooFewNodes = errors.New("scenario: too few nodes for this shape")

	// ErrInvalidGrid indicates Grid was asked to build a grid with a
	// non-positive row or column count.
	ErrInvalidGrid = errors.New("scenario: grid dimensions must be positive")
)
