package scene

import "errors"

// Domain errors for scene construction.
var (
	// ErrInvalidCount indicates a particle count that is zero or negative.
	ErrInvalidCount = errors.New("scene: particle count must be positive")

	// ErrInvalidColor indicates a color string that is not #rgb or #rrggbb.
	ErrInvalidColor = errors.New("scene: invalid hex color")

	// ErrInvalidInterpolation indicates a negative interpolation divisor.
	ErrInvalidInterpolation = errors.New("scene: interpolation must not be negative")

	// ErrUnknownMode indicates a particle color mode other than gradient or alternate.
	ErrUnknownMode = errors.New("scene: unknown particle color mode")

	// ErrDisposed indicates use of a particle cloud after it was released.
	ErrDisposed = errors.New("scene: particle cloud already disposed")
)
