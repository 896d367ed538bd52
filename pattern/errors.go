package pattern

import "errors"

// Sentinel errors; callers branch with errors.Is.
var (
	// ErrEmptySeed indicates that no seed text was supplied.
	ErrEmptySeed = errors.New("pattern: seed is empty")

	// ErrSeedNotNumeric indicates seed text containing anything but decimal digits.
	ErrSeedNotNumeric = errors.New("pattern: seed must contain digits only")

	// ErrBadColor indicates a colour that is not "#rgb" or "#rrggbb".
	ErrBadColor = errors.New("pattern: invalid hex color")

	// ErrNilSurface indicates Generate was called without a surface.
	ErrNilSurface = errors.New("pattern: surface is nil")
)
