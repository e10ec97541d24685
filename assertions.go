package albedoforce

import (
	"math"
	"testing"
)

// AssertionConfig contains thresholds for the model's property assertions.
type AssertionConfig struct {
	// AbsTol is the absolute tolerance for exact-value comparisons (W/m²).
	AbsTol float64

	// BenchmarkTolerance is the fractional width of the benchmark band.
	BenchmarkTolerance float64
}

// DefaultAssertionConfig returns conservative thresholds.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		AbsTol:             1e-9,
		BenchmarkTolerance: DefaultTolerance,
	}
}

// AssertZeroForcingAtNoChange verifies that an unchanged albedo produces
// exactly zero forcing for the given area fraction.
//
// Mathematical property:
//
//	Compute(Scenario(a, a, f)) = 0 for all valid a, f
func AssertZeroForcingAtNoChange(t *testing.T, albedo, areaFraction float64) {
	t.Helper()

	s, err := NewScenario(albedo, albedo, areaFraction)
	if err != nil {
		t.Fatalf("Failed to build no-change scenario: %v", err)
	}

	got := Compute(s).RadiativeForcingWm2
	if got != 0 {
		t.Errorf("No-change scenario produced forcing: %g W/m² (a=%.3f, f=%.3f)",
			got, albedo, areaFraction)
	}

	t.Logf("✓ Zero forcing at Δα = 0 (a=%.3f, f=%.3f)", albedo, areaFraction)
}

// AssertSignConvention verifies the downward-positive sign convention:
// brightening (Δα > 0) gives negative forcing, darkening gives positive,
// whenever the area fraction is nonzero.
func AssertSignConvention(t *testing.T, s Scenario) {
	t.Helper()

	result := Compute(s)
	delta := s.DeltaAlbedo()

	switch {
	case delta == 0 || s.AreaFraction == 0:
		if result.RadiativeForcingWm2 != 0 {
			t.Errorf("Expected zero forcing (Δα=%.4f, f=%.4f), got %g W/m²",
				delta, s.AreaFraction, result.RadiativeForcingWm2)
		}
	case delta > 0:
		if result.RadiativeForcingWm2 >= 0 {
			t.Errorf("Brightening must cool: Δα=%.4f but ΔF=%.4f W/m² (expected < 0)",
				delta, result.RadiativeForcingWm2)
		}
	default:
		if result.RadiativeForcingWm2 <= 0 {
			t.Errorf("Darkening must warm: Δα=%.4f but ΔF=%.4f W/m² (expected > 0)",
				delta, result.RadiativeForcingWm2)
		}
	}

	t.Logf("✓ Sign convention: Δα=%.4f ⇒ ΔF=%.4f W/m²", delta, result.RadiativeForcingWm2)
}

// AssertForcingLinearity verifies the forcing scales linearly in both Δα
// and the area fraction: doubling either doubles the magnitude.
func AssertForcingLinearity(t *testing.T, s Scenario, cfg AssertionConfig) {
	t.Helper()

	base := Compute(s).RadiativeForcingWm2

	// Double Δα via ForcingFromDelta (the doubled final albedo may leave [0,1]).
	doubledDelta, err := ForcingFromDelta(2*s.DeltaAlbedo(), s.AreaFraction, DefaultForcingConfig())
	if err != nil {
		t.Fatalf("Failed to compute doubled-Δα forcing: %v", err)
	}
	if math.Abs(doubledDelta.RadiativeForcingWm2-2*base) > cfg.AbsTol {
		t.Errorf("Not linear in Δα: 2·ΔF=%.6f but F(2Δα)=%.6f",
			2*base, doubledDelta.RadiativeForcingWm2)
	}

	// Double the area fraction, halving first if it would exceed 1.
	halfArea := s.AreaFraction / 2
	half, err := NewScenario(s.InitialAlbedo, s.FinalAlbedo, halfArea)
	if err != nil {
		t.Fatalf("Failed to build half-area scenario: %v", err)
	}
	if math.Abs(base-2*Compute(half).RadiativeForcingWm2) > cfg.AbsTol {
		t.Errorf("Not linear in f_area: F(f)=%.6f but 2·F(f/2)=%.6f",
			base, 2*Compute(half).RadiativeForcingWm2)
	}

	t.Logf("✓ Linear scaling in Δα and f_area (ΔF=%.4f W/m²)", base)
}

// AssertWithinBenchmark verifies a forcing result falls inside the
// benchmark tolerance band for its own Δα and area fraction.
func AssertWithinBenchmark(t *testing.T, result ForcingResult, cfg AssertionConfig) {
	t.Helper()

	verdict, err := ValidateForcingResult(result, cfg.BenchmarkTolerance)
	if err != nil {
		t.Fatalf("Failed to validate forcing result: %v", err)
	}

	if !verdict.WithinRange {
		t.Errorf("Forcing outside benchmark band: %.4f W/m² not in [%.4f, %.4f]\n"+
			"  Δα=%.4f, f=%.4f, tolerance=±%.0f%%",
			verdict.Actual, verdict.ExpectedLow, verdict.ExpectedHigh,
			result.DeltaAlbedo, result.AreaFraction, cfg.BenchmarkTolerance*100)
	}

	t.Logf("✓ Within benchmark: %.4f W/m² in [%.4f, %.4f]",
		verdict.Actual, verdict.ExpectedLow, verdict.ExpectedHigh)
}
