package grid

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/lightgg/internal/testutil"
)

func TestNewAxis_Values(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		reference float64
		span      float64
		step      float64
		endpoint  bool
		want      []float64
	}{
		{"exact multiple excludes end", 0, 10, 1, false, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"exact multiple with endpoint", 0, 4, 1, true, []float64{0, 1, 2, 3, 4}},
		{"partial step excludes end", 0, 10, 3, false, []float64{0, 3, 6, 9}},
		{"partial step with endpoint has short last interval", 0, 10, 3, true, []float64{0, 3, 6, 9, 10}},
		{"negative reference", -5, 2, 0.5, false, []float64{-5, -4.5, -4, -3.5}},
		{"span shorter than step", 7, 0.5, 1, false, []float64{7}},
		{"span shorter than step with endpoint", 7, 0.5, 1, true, []float64{7, 7.5}},
		{"decimal step that is not exact in binary", 0, 0.3, 0.1, false, []float64{0, 0.1, 0.2}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewAxis(tt.reference, tt.span, tt.step, tt.endpoint)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("NewAxis() mismatch (-want +got):\n%s", diff)
			}
			testutil.AssertAxisBounds(t, got, tt.reference, tt.span, tt.endpoint)
			testutil.AssertStrictlyIncreasing(t, got)
		})
	}
}

func TestNewAxis_CountAndSpacing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		span, step float64
		wantLen    int
	}{
		{span: 1, step: 1.0 / 3600, wantLen: 3600},
		{span: 1, step: 1.0 / 60, wantLen: 60},
		{span: 1, step: 0.1, wantLen: 10},
		{span: 2.5, step: 0.25, wantLen: 10},
		{span: 100, step: 7, wantLen: 15},
		{span: 1e6, step: 1, wantLen: 1000000},
		{span: 360, step: 0.5, wantLen: 720},
	}

	for _, tt := range tests {
		axis, err := NewAxis(12.5, tt.span, tt.step, false)
		require.NoError(t, err)
		assert.Len(t, axis, tt.wantLen, "span=%v step=%v", tt.span, tt.step)
		testutil.AssertAxisBounds(t, axis, 12.5, tt.span, false)
		testutil.AssertUniformSpacing(t, axis, tt.step)

		withEnd, err := NewAxis(12.5, tt.span, tt.step, true)
		require.NoError(t, err)
		assert.Len(t, withEnd, tt.wantLen+1, "span=%v step=%v endpoint", tt.span, tt.step)
		testutil.AssertAxisBounds(t, withEnd, 12.5, tt.span, true)
		last := withEnd[len(withEnd)-1]
		assert.LessOrEqual(t, last, 12.5+tt.span+tt.step)
		assert.GreaterOrEqual(t, last, 12.5+tt.span-tt.step)
	}
}

func TestNewAxis_ExactMultipleMatchesFloor(t *testing.T) {
	t.Parallel()

	for _, steps := range []int{1, 2, 3, 7, 10, 60, 3600} {
		step := 1.0 / float64(steps)
		axis, err := NewAxis(0, 1, step, false)
		require.NoError(t, err)
		assert.Equal(t, int(math.Round(1/step)), len(axis), "step=1/%d", steps)
	}
}

func TestNewAxis_Errors(t *testing.T) {
	t.Parallel()

	nan := math.NaN()
	inf := math.Inf(1)

	tests := []struct {
		name                  string
		reference, span, step float64
		want                  error
	}{
		{"zero step", 0, 1, 0, ErrInvalidArgument},
		{"negative step", 0, 1, -1, ErrInvalidArgument},
		{"zero span", 0, 0, 1, ErrInvalidArgument},
		{"negative span", 0, -5, 1, ErrInvalidArgument},
		{"NaN step", 0, 1, nan, ErrNonFinite},
		{"NaN span", 0, nan, 1, ErrNonFinite},
		{"NaN reference", nan, 1, 1, ErrNonFinite},
		{"infinite span", 0, inf, 1, ErrNonFinite},
		{"infinite step", 0, 1, inf, ErrNonFinite},
		{"infinite reference", math.Inf(-1), 1, 1, ErrNonFinite},
		{"end overflows", math.MaxFloat64, math.MaxFloat64, 1, ErrNonFinite},
		{"span/step overflows", 0, math.MaxFloat64, 1e-10, ErrNonFinite},
		{"too many samples", 0, 1, 1e-12, ErrTooLarge},
		{"step below resolution at reference", 1e16, 4, 1, ErrInvalidArgument},
		{"step below resolution at negative reference", -1e16, 4, 1, ErrInvalidArgument},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			axis, err := NewAxis(tt.reference, tt.span, tt.step, false)
			testutil.AssertErrorIs(t, err, tt.want)
			assert.Nil(t, axis)
		})
	}
}

func TestNewAxis_EndpointAtMaxLength(t *testing.T) {
	t.Parallel()

	// MaxAxisLength samples fit only without the extra endpoint sample.
	_, err := NewAxis(0, MaxAxisLength, 1, true)
	testutil.AssertErrorIs(t, err, ErrTooLarge)
}

func TestNewAxis_LargeReferenceAtResolution(t *testing.T) {
	t.Parallel()

	// Float64 spacing at 1e16 is 2, so a step of 2 still gives distinct samples.
	axis, err := NewAxis(1e16, 8, 2, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{1e16, 1e16 + 2, 1e16 + 4, 1e16 + 6}, axis)
	testutil.AssertStrictlyIncreasing(t, axis)
	testutil.AssertAxisBounds(t, axis, 1e16, 8, false)
}

func TestBuildAxes_StepBelowResolution(t *testing.T) {
	t.Parallel()

	x, y, err := BuildAxes(GridSpec{XReference: 0, YReference: 1e16, SpanX: 4, Step: 1})
	testutil.AssertErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "y axis")
	assert.Nil(t, x)
	assert.Nil(t, y)
}
