// Package testutil provides shared test helpers for axis assertions.
//
// Axes are compared with relative tolerances because samples are computed
// in floating point; exact equality only holds for the first sample and the
// endpoint sample.
package testutil

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerance is the default relative tolerance used by the axis helpers.
const Tolerance = 1e-9

// AssertNoError fails the test if err is not nil.
func AssertNoError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// AssertErrorIs fails the test unless errors.Is(err, target).
func AssertErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error = %v, want %v", err, target)
	}
}

// AssertUniformSpacing checks that consecutive samples differ by step.
func AssertUniformSpacing(t testing.TB, axis []float64, step float64) {
	t.Helper()
	for i := 1; i < len(axis); i++ {
		d := axis[i] - axis[i-1]
		if !scalar.EqualWithinAbsOrRel(d, step, Tolerance, Tolerance) {
			t.Fatalf("spacing at %d = %v, want %v", i, d, step)
		}
	}
}

// AssertStrictlyIncreasing checks that every sample is above the previous one.
func AssertStrictlyIncreasing(t testing.TB, axis []float64) {
	t.Helper()
	for i := 1; i < len(axis); i++ {
		if axis[i] <= axis[i-1] {
			t.Fatalf("axis[%d] = %v not greater than axis[%d] = %v", i, axis[i], i-1, axis[i-1])
		}
	}
}

// AssertAxisBounds checks that the axis starts at reference and that its
// last sample stays below reference+span, or equals it when endpoint is set.
func AssertAxisBounds(t testing.TB, axis []float64, reference, span float64, endpoint bool) {
	t.Helper()
	if len(axis) == 0 {
		t.Fatal("axis is empty")
	}
	if axis[0] != reference {
		t.Errorf("axis[0] = %v, want %v", axis[0], reference)
	}
	last := axis[len(axis)-1]
	end := reference + span
	if endpoint {
		if last != end {
			t.Errorf("last sample = %v, want %v", last, end)
		}
		return
	}
	if last >= end {
		t.Errorf("last sample = %v, want < %v", last, end)
	}
}
