package frame

import "errors"

var (
	// ErrShapeMismatch is returned when a tangent slice or a second
	// Frame does not match the base Frame's (n, d) shape.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInvalidDimensionality is returned at construction when the
	// supplied raw data does not describe a two-dimensional (n, d)
	// matrix with n >= 1 and d >= 1.
	ErrInvalidDimensionality = errors.New("invalid dimensionality")
)
