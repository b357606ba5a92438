// Command lightgg builds the two axes of a grid from a reference point, a
// span and a step, and prints their sizes, bounds and first samples.
//
//	lightgg -x-ref 0 -y-ref 1 -span-x 1 -step-value 1 -step-unit arcsec
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gonum.org/v1/gonum/floats"

	"github.com/banshee-data/lightgg/internal/config"
	"github.com/banshee-data/lightgg/internal/grid"
	"github.com/banshee-data/lightgg/internal/monitoring"
	"github.com/banshee-data/lightgg/internal/units"
	"github.com/banshee-data/lightgg/internal/version"
)

var (
	configPath  = flag.String("config", "", "Path to a JSON grid config (optional)")
	xRef        = flag.Float64("x-ref", config.DefaultXReference, "Origin of the x axis")
	yRef        = flag.Float64("y-ref", config.DefaultYReference, "Origin of the y axis")
	spanX       = flag.Float64("span-x", config.DefaultSpan, "Extent along x, > 0")
	spanY       = flag.Float64("span-y", 0, "Extent along y, > 0 (defaults to -span-x)")
	step        = flag.Float64("step", config.DefaultStep, "Sample spacing, > 0")
	stepValue   = flag.Float64("step-value", 0, "Sample spacing in -step-unit (alternative to -step)")
	stepUnit    = flag.String("step-unit", units.Arcsec, "Unit of -step-value: "+units.GetValidUnitsString())
	endpoint    = flag.Bool("endpoint", config.DefaultEndpoint, "Include reference+span as the last sample")
	head        = flag.Int("head", 3, "Number of leading samples of each axis to print")
	jsonOutput  = flag.Bool("json", false, "Print the summary as JSON")
	verbose     = flag.Bool("v", false, "Verbose logging")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

// Summary describes a pair of axes without repeating all their samples.
type Summary struct {
	NX    int       `json:"nx"`
	NY    int       `json:"ny"`
	Cells int       `json:"cells"`
	XMin  float64   `json:"x_min"`
	XMax  float64   `json:"x_max"`
	YMin  float64   `json:"y_min"`
	YMax  float64   `json:"y_max"`
	XHead []float64 `json:"x_head"`
	YHead []float64 `json:"y_head"`
}

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}
	monitoring.SetVerbose(*verbose)

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := resolveConfig(*configPath, set)
	if err != nil {
		log.Fatalf("invalid grid parameters: %v", err)
	}

	spec := cfg.Spec()
	monitoring.Debugf("building axes: x_ref=%v y_ref=%v span_x=%v span_y=%v step=%v endpoint=%v",
		spec.XReference, spec.YReference, spec.SpanX, spec.ResolvedSpanY(), spec.Step, spec.Endpoint)

	axes, err := grid.Build(spec)
	if err != nil {
		log.Fatalf("failed to build axes: %v", err)
	}

	if err := writeSummary(os.Stdout, summarize(axes, *head), *jsonOutput); err != nil {
		log.Fatalf("failed to write summary: %v", err)
	}
}

// resolveConfig layers the defaults, the optional config file and the flags
// named in set, in that order.
func resolveConfig(path string, set map[string]bool) (*config.GridConfig, error) {
	if set["step"] && set["step-value"] {
		return nil, fmt.Errorf("-step and -step-value are mutually exclusive")
	}
	if set["step-unit"] && !units.IsValid(*stepUnit) {
		return nil, fmt.Errorf("invalid -step-unit %q (valid: %s)", *stepUnit, units.GetValidUnitsString())
	}

	cfg := config.DefaultGridConfig()
	if path != "" {
		fileCfg, err := config.LoadGridConfig(path)
		if err != nil {
			return nil, err
		}
		monitoring.Debugf("loaded grid config from %s", path)
		cfg.Merge(fileCfg)
	}

	overrides := config.EmptyGridConfig()
	if set["x-ref"] {
		overrides.XReference = xRef
	}
	if set["y-ref"] {
		overrides.YReference = yRef
	}
	if set["span-x"] {
		overrides.SpanX = spanX
	}
	if set["span-y"] {
		overrides.SpanY = spanY
	}
	if set["step"] {
		overrides.Step = step
	}
	if set["step-value"] {
		s, err := units.Step(*stepValue, *stepUnit)
		if err != nil {
			return nil, err
		}
		overrides.Step = &s
	}
	if set["endpoint"] {
		overrides.Endpoint = endpoint
	}
	cfg.Merge(overrides)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func summarize(axes *grid.Axes, n int) Summary {
	nx, ny := axes.Shape()
	return Summary{
		NX:    nx,
		NY:    ny,
		Cells: axes.CellCount(),
		XMin:  floats.Min(axes.X),
		XMax:  floats.Max(axes.X),
		YMin:  floats.Min(axes.Y),
		YMax:  floats.Max(axes.Y),
		XHead: leading(axes.X, n),
		YHead: leading(axes.Y, n),
	}
}

func leading(axis []float64, n int) []float64 {
	if n < 0 {
		n = 0
	}
	if n > len(axis) {
		n = len(axis)
	}
	out := make([]float64, n)
	copy(out, axis)
	return out
}

func writeSummary(w io.Writer, s Summary, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}
	_, err := fmt.Fprintf(w,
		"x axis: %d samples in [%g, %g], first %v\n"+
			"y axis: %d samples in [%g, %g], first %v\n"+
			"total number of cells: %d\n",
		s.NX, s.XMin, s.XMax, s.XHead,
		s.NY, s.YMin, s.YMax, s.YHead,
		s.Cells)
	return err
}
