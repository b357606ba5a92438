package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// MaxAxisLength caps the number of samples on one axis (8 GiB of float64).
const MaxAxisLength = 1 << 30

// multipleTolerance is the relative tolerance used to decide whether span is
// an exact multiple of step. 1/3600 does not divide 1 exactly in binary
// floating point, but a one degree span at one arcsecond must still give
// 3600 samples, not 3601.
const multipleTolerance = 1e-9

// NewAxis returns the samples of one axis starting at reference and covering
// span with the given step.
//
// Without endpoint the axis holds reference + i*step for every i where that
// value is below reference + span. With endpoint the same samples are
// followed by one final sample at exactly reference + span; when span is not
// a multiple of step the last interval is shorter than step.
func NewAxis(reference, span, step float64, endpoint bool) ([]float64, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: step must be > 0, got %v", ErrInvalidArgument, step)
	}
	if span <= 0 {
		return nil, fmt.Errorf("%w: span must be > 0, got %v", ErrInvalidArgument, span)
	}

	n, err := axisLength(reference, span, step)
	if err != nil {
		return nil, err
	}

	size := n
	if endpoint {
		size++
	}
	if size > MaxAxisLength {
		return nil, fmt.Errorf("%w: %d samples (max %d)", ErrTooLarge, size, MaxAxisLength)
	}

	axis := make([]float64, size)
	if n == 1 {
		axis[0] = reference
	} else {
		// Span computes every sample from the first by multiplication, so
		// rounding does not accumulate along the axis.
		floats.Span(axis[:n], reference, reference+float64(n-1)*step)
	}
	if endpoint {
		axis[n] = reference + span
	}
	return axis, nil
}

// axisLength returns the number of samples strictly below reference + span.
func axisLength(reference, span, step float64) (int, error) {
	if isNonFinite(reference) || isNonFinite(span) || isNonFinite(step) {
		return 0, fmt.Errorf("%w: reference=%v span=%v step=%v", ErrNonFinite, reference, span, step)
	}
	if isNonFinite(reference + span) {
		return 0, fmt.Errorf("%w: reference+span overflows", ErrNonFinite)
	}

	q := span / step
	if isNonFinite(q) {
		return 0, fmt.Errorf("%w: span/step overflows", ErrNonFinite)
	}
	if q > MaxAxisLength {
		return 0, fmt.Errorf("%w: span/step = %g (max %d)", ErrTooLarge, q, MaxAxisLength)
	}

	// Past this magnitude neighbouring samples would round onto each other.
	if ulp := ulpAt(math.Max(math.Abs(reference), math.Abs(reference+span))); step < ulp {
		return 0, fmt.Errorf("%w: step %v is below float64 resolution %v at reference %v", ErrInvalidArgument, step, ulp, reference)
	}

	var n float64
	if r := math.Round(q); scalar.EqualWithinAbsOrRel(q, r, 0, multipleTolerance) {
		n = r
	} else {
		n = math.Ceil(q)
	}
	if n < 1 {
		// span is positive, so the reference itself is always a sample.
		n = 1
	}
	return int(n), nil
}

// ulpAt returns the gap between v and the next float64 above it.
func ulpAt(v float64) float64 {
	return math.Nextafter(v, math.Inf(1)) - v
}

func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
