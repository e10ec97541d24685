package albedoforce

import (
	"fmt"
	"math"
)

// BenchmarkSensitivityWm2PerDeltaAlpha is the IPCC-style first-order
// benchmark: a +0.01 change in planetary albedo produces roughly -3.4 W/m²
// of forcing, i.e. -340 W/m² per unit Δα. This is a sanity check against
// the literature, not a physical model.
const BenchmarkSensitivityWm2PerDeltaAlpha = -340.0

// DefaultTolerance is the fractional width of the accepted band around the
// benchmark prediction (±20%).
const DefaultTolerance = 0.20

// ValidationResult is the verdict of a benchmark comparison. Immutable;
// derived from one ForcingResult plus a tolerance.
type ValidationResult struct {
	WithinRange  bool    // ExpectedLow ≤ Actual ≤ ExpectedHigh
	ExpectedLow  float64 // lower benchmark bound (W m^-2)
	ExpectedHigh float64 // upper benchmark bound (W m^-2)
	Actual       float64 // the modeled forcing (W m^-2)
	Notes        string  // human-readable summary
}

// ExpectedRange predicts the benchmark forcing for an albedo change and
// returns the tolerance band around it, sorted so low ≤ high.
//
// The benchmark prediction is:
//
//	ΔF_bench = BenchmarkSensitivity · Δα · f_area
//
// ΔF_bench is negative for brightening, so neither benchmark·(1-tol) nor
// benchmark·(1+tol) is automatically the lower bound; the two products are
// ordered before returning.
//
// Returns *InvalidParameterError when tolerance is negative or the area
// fraction is outside [0, 1].
func ExpectedRange(deltaAlbedo, areaFraction, tolerance float64) (low, high float64, err error) {
	if tolerance < 0 {
		return 0, 0, &InvalidParameterError{
			Param: "tolerance", Value: tolerance, Legal: "[0, +inf)",
		}
	}
	if areaFraction < 0 || areaFraction > 1 {
		return 0, 0, errUnitRange("area_fraction", areaFraction)
	}

	benchmark := BenchmarkSensitivityWm2PerDeltaAlpha * deltaAlbedo * areaFraction
	a := benchmark * (1 + tolerance)
	b := benchmark * (1 - tolerance)
	return math.Min(a, b), math.Max(a, b), nil
}

// ValidateForcingResult checks a computed forcing against the benchmark
// band derived from the Δα and area fraction carried on the result. The
// input is not mutated.
func ValidateForcingResult(result ForcingResult, tolerance float64) (ValidationResult, error) {
	low, high, err := ExpectedRange(result.DeltaAlbedo, result.AreaFraction, tolerance)
	if err != nil {
		return ValidationResult{}, err
	}

	actual := result.RadiativeForcingWm2
	within := low <= actual && actual <= high

	verdict := "within"
	if !within {
		verdict = "outside"
	}
	notes := fmt.Sprintf("modeled %.4f W/m² is %s benchmark range [%.4f, %.4f] at ±%.0f%% tolerance",
		actual, verdict, low, high, tolerance*100)

	return ValidationResult{
		WithinRange:  within,
		ExpectedLow:  low,
		ExpectedHigh: high,
		Actual:       actual,
		Notes:        notes,
	}, nil
}
