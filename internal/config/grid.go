package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/banshee-data/lightgg/internal/fsutil"
	"github.com/banshee-data/lightgg/internal/grid"
	"github.com/banshee-data/lightgg/internal/units"
)

// DefaultConfigPath is the path to the canonical grid defaults file.
const DefaultConfigPath = "config/grid.defaults.json"

// Defaults: a one degree square at (0, 1) sampled every arcsecond.
const (
	DefaultXReference = 0.0
	DefaultYReference = 1.0
	DefaultSpan       = units.Degree
	DefaultStep       = units.Arcsecond
	DefaultEndpoint   = false
)

// GridConfig is the JSON form of a grid spec. Every field is optional;
// omitted fields take the defaults above, except span_y which falls back to
// span_x.
type GridConfig struct {
	XReference *float64 `json:"x_reference,omitempty"`
	YReference *float64 `json:"y_reference,omitempty"`
	SpanX      *float64 `json:"span_x,omitempty"`
	SpanY      *float64 `json:"span_y,omitempty"`
	Step       *float64 `json:"step,omitempty"`
	Endpoint   *bool    `json:"endpoint,omitempty"`
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrBool(v bool) *bool          { return &v }

// EmptyGridConfig returns a GridConfig with all fields set to nil.
func EmptyGridConfig() *GridConfig {
	return &GridConfig{}
}

// DefaultGridConfig returns a GridConfig with every field except span_y
// populated from the package defaults.
func DefaultGridConfig() *GridConfig {
	return &GridConfig{
		XReference: ptrFloat64(DefaultXReference),
		YReference: ptrFloat64(DefaultYReference),
		SpanX:      ptrFloat64(DefaultSpan),
		Step:       ptrFloat64(DefaultStep),
		Endpoint:   ptrBool(DefaultEndpoint),
	}
}

// LoadGridConfig loads a GridConfig from a JSON file.
// The file must have a .json extension and be under 1MB. Fields omitted
// from the file stay nil and resolve to defaults through the Get* methods.
func LoadGridConfig(path string) (*GridConfig, error) {
	return LoadGridConfigFS(fsutil.OSFileSystem{}, path)
}

// LoadGridConfigFS is LoadGridConfig reading from fsys.
func LoadGridConfigFS(fsys fsutil.FileSystem, path string) (*GridConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := fsys.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := fsys.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyGridConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// MustLoadDefaultConfig loads DefaultConfigPath, searching the current
// directory and its parents up to the repository root.
// Panics if the file cannot be loaded, intended for test setup.
func MustLoadDefaultConfig() *GridConfig {
	candidates := []string{
		DefaultConfigPath,
		"../" + DefaultConfigPath,
		"../../" + DefaultConfigPath,    // from internal/config/ or cmd/lightgg/
		"../../../" + DefaultConfigPath, // deeper packages
	}
	for _, path := range candidates {
		if cfg, err := LoadGridConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks the fields that are set. Rules match grid.GridSpec.Validate
// so a config that loads also builds.
func (c *GridConfig) Validate() error {
	if c.Step != nil && *c.Step <= 0 {
		return fmt.Errorf("%w: step must be > 0, got %v", grid.ErrInvalidArgument, *c.Step)
	}
	if c.SpanX != nil && *c.SpanX <= 0 {
		return fmt.Errorf("%w: span_x must be > 0, got %v", grid.ErrInvalidArgument, *c.SpanX)
	}
	if c.SpanY != nil && *c.SpanY <= 0 {
		return fmt.Errorf("%w: span_y must be > 0, got %v", grid.ErrInvalidArgument, *c.SpanY)
	}
	return nil
}

// Merge copies every set field of other over c.
func (c *GridConfig) Merge(other *GridConfig) {
	if other == nil {
		return
	}
	if other.XReference != nil {
		c.XReference = other.XReference
	}
	if other.YReference != nil {
		c.YReference = other.YReference
	}
	if other.SpanX != nil {
		c.SpanX = other.SpanX
	}
	if other.SpanY != nil {
		c.SpanY = other.SpanY
	}
	if other.Step != nil {
		c.Step = other.Step
	}
	if other.Endpoint != nil {
		c.Endpoint = other.Endpoint
	}
}

// GetXReference returns the x_reference value or the default.
func (c *GridConfig) GetXReference() float64 {
	if c.XReference == nil {
		return DefaultXReference
	}
	return *c.XReference
}

// GetYReference returns the y_reference value or the default.
func (c *GridConfig) GetYReference() float64 {
	if c.YReference == nil {
		return DefaultYReference
	}
	return *c.YReference
}

// GetSpanX returns the span_x value or the default.
func (c *GridConfig) GetSpanX() float64 {
	if c.SpanX == nil {
		return DefaultSpan
	}
	return *c.SpanX
}

// GetSpanY returns span_y, or span_x when span_y is unset.
func (c *GridConfig) GetSpanY() float64 {
	if c.SpanY == nil {
		return c.GetSpanX()
	}
	return *c.SpanY
}

// GetStep returns the step value or the default.
func (c *GridConfig) GetStep() float64 {
	if c.Step == nil {
		return DefaultStep
	}
	return *c.Step
}

// GetEndpoint returns the endpoint value or the default.
func (c *GridConfig) GetEndpoint() bool {
	if c.Endpoint == nil {
		return DefaultEndpoint
	}
	return *c.Endpoint
}

// Spec converts the config to a grid.GridSpec. An unset span_y stays nil so
// the builder applies the square-grid default.
func (c *GridConfig) Spec() grid.GridSpec {
	spec := grid.GridSpec{
		XReference: c.GetXReference(),
		YReference: c.GetYReference(),
		SpanX:      c.GetSpanX(),
		Step:       c.GetStep(),
		Endpoint:   c.GetEndpoint(),
	}
	if c.SpanY != nil {
		spec.SpanY = ptrFloat64(*c.SpanY)
	}
	return spec
}
