package albedoforce

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SweepSpan returns n evenly spaced albedo deltas across [minDelta, maxDelta],
// endpoints included. n is raised to 2 when smaller.
func SweepSpan(minDelta, maxDelta float64, n int) []float64 {
	if n < 2 {
		n = 2
	}
	return floats.Span(make([]float64, n), minDelta, maxDelta)
}

// SweepDeltas computes one forcing per albedo delta against a surface's
// literature baseline. Perturbed albedos are clipped to [0, 1] (sweeps
// intentionally probe the physical bounds), so the Δα recorded on each
// result is the realized, post-clipping change.
func SweepDeltas(surfaceType string, deltas []float64, areaFraction float64) ([]ForcingResult, error) {
	base, err := BaseAlbedo(surfaceType, AnchorTypical)
	if err != nil {
		return nil, err
	}

	results := make([]ForcingResult, 0, len(deltas))
	for _, d := range deltas {
		perturbed, err := PerturbedAlbedo(surfaceType, d, AnchorTypical)
		if err != nil {
			return nil, err
		}
		scenario, err := NewScenario(base, perturbed, areaFraction)
		if err != nil {
			return nil, err
		}
		results = append(results, Compute(scenario))
	}
	return results, nil
}

// SensitivityFit summarizes a linear regression of forcing against Δα.
//
// For an exact sweep the slope recovers -(S0/4)·f_area with zero intercept
// and R² = 1; departures indicate clipping at the physical bounds.
type SensitivityFit struct {
	SlopeWm2PerDeltaAlpha float64 // effective sensitivity (W m^-2 per unit Δα)
	InterceptWm2          float64 // fitted offset (W m^-2)
	RSquared              float64 // goodness of fit (1.0 = perfect)
}

// FitSensitivity regresses forcing on Δα across sweep results.
// Needs at least 2 results with distinct Δα values.
func FitSensitivity(results []ForcingResult) (SensitivityFit, error) {
	if len(results) < 2 {
		return SensitivityFit{}, fmt.Errorf("need at least 2 results to fit, got %d", len(results))
	}

	xs := make([]float64, len(results))
	ys := make([]float64, len(results))
	for i, r := range results {
		xs[i] = r.DeltaAlbedo
		ys[i] = r.RadiativeForcingWm2
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)

	estimates := make([]float64, len(xs))
	for i, x := range xs {
		estimates[i] = intercept + slope*x
	}
	r2 := stat.RSquaredFrom(estimates, ys, nil)

	return SensitivityFit{
		SlopeWm2PerDeltaAlpha: slope,
		InterceptWm2:          intercept,
		RSquared:              r2,
	}, nil
}
