package grid

import "errors"

var (
	// ErrInvalidArgument is returned for a non-positive step or span.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNonFinite is returned when a reference, span or step is NaN or
	// infinite, or when span/step overflows, so no axis length exists.
	ErrNonFinite = errors.New("cannot compute axis length from non-finite value")

	// ErrTooLarge is returned when an axis would hold more than
	// MaxAxisLength samples.
	ErrTooLarge = errors.New("axis too large")
)
