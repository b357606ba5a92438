// Package units provides named step sizes for angular grids, expressed in
// degrees.
package units

import "fmt"

// Angular step sizes in degrees.
const (
	Degree    = 1.0
	Arcminute = Degree / 60
	Arcsecond = Arcminute / 60
)

// Unit names accepted by Step.
const (
	Deg    = "deg"
	Arcmin = "arcmin"
	Arcsec = "arcsec"
)

// ValidUnits contains all valid unit names.
var ValidUnits = []string{Deg, Arcmin, Arcsec}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return "deg, arcmin, arcsec"
}

// Step returns n steps of the named unit in degrees, so a one arcsecond
// resolution is Step(1, Arcsec).
func Step(n float64, unit string) (float64, error) {
	switch unit {
	case Deg:
		return n * Degree, nil
	case Arcmin:
		return n * Arcminute, nil
	case Arcsec:
		return n * Arcsecond, nil
	default:
		return 0, fmt.Errorf("unknown step unit %q (valid: %s)", unit, GetValidUnitsString())
	}
}
