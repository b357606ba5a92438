package grid

import "fmt"

// GridSpec describes a grid by origin, extent and resolution.
type GridSpec struct {
	XReference float64  // origin of the x axis
	YReference float64  // origin of the y axis
	SpanX      float64  // extent along x, must be > 0
	SpanY      *float64 // extent along y; nil means SpanX (square grid)
	Step       float64  // sample spacing on both axes, must be > 0
	Endpoint   bool     // include reference + span as the last sample
}

// ResolvedSpanY returns SpanY, or SpanX when SpanY is unset.
func (s GridSpec) ResolvedSpanY() float64 {
	if s.SpanY == nil {
		return s.SpanX
	}
	return *s.SpanY
}

// Validate checks step and spans after resolving the SpanY default.
func (s GridSpec) Validate() error {
	if s.Step <= 0 {
		return fmt.Errorf("%w: step must be > 0, got %v", ErrInvalidArgument, s.Step)
	}
	if spanY := s.ResolvedSpanY(); s.SpanX <= 0 || spanY <= 0 {
		return fmt.Errorf("%w: span_x/span_y must be > 0, got %v/%v", ErrInvalidArgument, s.SpanX, spanY)
	}
	return nil
}

// BuildAxes returns the x and y axes for spec. Either both axes are returned
// or neither is.
func BuildAxes(spec GridSpec) (axisX, axisY []float64, err error) {
	if err := spec.Validate(); err != nil {
		return nil, nil, err
	}

	axisX, err = NewAxis(spec.XReference, spec.SpanX, spec.Step, spec.Endpoint)
	if err != nil {
		return nil, nil, fmt.Errorf("x axis: %w", err)
	}
	axisY, err = NewAxis(spec.YReference, spec.ResolvedSpanY(), spec.Step, spec.Endpoint)
	if err != nil {
		return nil, nil, fmt.Errorf("y axis: %w", err)
	}
	return axisX, axisY, nil
}

// Axes is the pair of axes built from one GridSpec.
type Axes struct {
	X []float64
	Y []float64
}

// Build is BuildAxes returning the pair as Axes.
func Build(spec GridSpec) (*Axes, error) {
	x, y, err := BuildAxes(spec)
	if err != nil {
		return nil, err
	}
	return &Axes{X: x, Y: y}, nil
}

// Shape returns the number of samples on each axis.
func (a *Axes) Shape() (nx, ny int) {
	return len(a.X), len(a.Y)
}

// CellCount is the number of nodes in the virtual 2D grid.
func (a *Axes) CellCount() int {
	return len(a.X) * len(a.Y)
}

// Point returns grid node (i, j) by broadcasting the two axes.
// It panics if i or j is out of range.
func (a *Axes) Point(i, j int) (x, y float64) {
	return a.X[i], a.Y[j]
}
