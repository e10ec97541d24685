package albedoforce

import (
	"errors"
	"math"
	"testing"
)

// TestBenchmarkConstant verifies the sensitivity is -340 W/m² per unit Δα
// (-3.4 W/m² per +0.01).
func TestBenchmarkConstant(t *testing.T) {
	if BenchmarkSensitivityWm2PerDeltaAlpha != -340.0 {
		t.Errorf("Benchmark sensitivity = %.1f, want -340.0", BenchmarkSensitivityWm2PerDeltaAlpha)
	}

	perHundredth := BenchmarkSensitivityWm2PerDeltaAlpha * 0.01
	if math.Abs(perHundredth-(-3.4)) > 1e-12 {
		t.Errorf("Per +0.01 Δα: %.4f W/m², want -3.4", perHundredth)
	}

	t.Logf("✓ Benchmark: Δα=+0.01 ⇒ ΔF=%.1f W/m²", perHundredth)
}

// TestExpectedRangeBenchmarkScenario verifies the canonical band:
// Δα=0.01, f=1.0, ±20% ⇒ [-4.08, -2.72] bracketing -3.4 W/m².
func TestExpectedRangeBenchmarkScenario(t *testing.T) {
	low, high, err := ExpectedRange(0.01, 1.0, 0.20)
	if err != nil {
		t.Fatalf("ExpectedRange failed: %v", err)
	}

	if math.Abs(low-(-4.08)) > 1e-9 {
		t.Errorf("Low bound = %.6f, want -4.08", low)
	}
	if math.Abs(high-(-2.72)) > 1e-9 {
		t.Errorf("High bound = %.6f, want -2.72", high)
	}
	if !(low <= -3.4 && -3.4 <= high) {
		t.Errorf("Band [%.4f, %.4f] does not bracket -3.4", low, high)
	}

	t.Logf("✓ Benchmark band: [%.2f, %.2f] W/m² brackets -3.4", low, high)
}

// TestExpectedRangeSortsBounds verifies low ≤ high regardless of the sign
// of the benchmark prediction. The benchmark is negative for brightening,
// so benchmark·(1-tol) is NOT automatically the lower bound.
func TestExpectedRangeSortsBounds(t *testing.T) {
	cases := []struct {
		name        string
		delta, area float64
	}{
		{"brightening (negative benchmark)", 0.01, 1.0},
		{"darkening (positive benchmark)", -0.01, 1.0},
		{"zero delta", 0.0, 1.0},
		{"zero area", 0.01, 0.0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			low, high, err := ExpectedRange(c.delta, c.area, 0.20)
			if err != nil {
				t.Fatalf("ExpectedRange failed: %v", err)
			}
			if low > high {
				t.Errorf("Bounds unsorted: low=%.4f > high=%.4f", low, high)
			}

			benchmark := BenchmarkSensitivityWm2PerDeltaAlpha * c.delta * c.area
			if !(low <= benchmark && benchmark <= high) {
				t.Errorf("Band [%.4f, %.4f] does not bracket benchmark %.4f",
					low, high, benchmark)
			}

			t.Logf("✓ [%.4f, %.4f] brackets %.4f", low, high, benchmark)
		})
	}
}

// TestExpectedRangeZeroDelta verifies a zero Δα collapses the band to zero.
func TestExpectedRangeZeroDelta(t *testing.T) {
	low, high, err := ExpectedRange(0.0, 1.0, 0.20)
	if err != nil {
		t.Fatalf("ExpectedRange failed: %v", err)
	}
	if low != 0 || high != 0 {
		t.Errorf("Zero Δα band = [%.6f, %.6f], want [0, 0]", low, high)
	}
}

// TestExpectedRangeAreaScaling verifies the band scales with f_area.
func TestExpectedRangeAreaScaling(t *testing.T) {
	fullLow, fullHigh, err := ExpectedRange(0.01, 1.0, 0.20)
	if err != nil {
		t.Fatalf("ExpectedRange failed: %v", err)
	}
	halfLow, halfHigh, err := ExpectedRange(0.01, 0.5, 0.20)
	if err != nil {
		t.Fatalf("ExpectedRange failed: %v", err)
	}

	if math.Abs(halfLow-fullLow/2) > 1e-9 || math.Abs(halfHigh-fullHigh/2) > 1e-9 {
		t.Errorf("Half-area band [%.4f, %.4f] is not half of [%.4f, %.4f]",
			halfLow, halfHigh, fullLow, fullHigh)
	}
}

// TestExpectedRangeRejects verifies negative tolerance and out-of-range
// area fraction are rejected.
func TestExpectedRangeRejects(t *testing.T) {
	cases := []struct {
		name            string
		area, tolerance float64
		wantParam       string
	}{
		{"negative tolerance", 1.0, -0.1, "tolerance"},
		{"area above 1", 1.5, 0.2, "area_fraction"},
		{"area negative", -0.5, 0.2, "area_fraction"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := ExpectedRange(0.01, c.area, c.tolerance)
			if err == nil {
				t.Fatal("Out-of-range input accepted")
			}
			var paramErr *InvalidParameterError
			if !errors.As(err, &paramErr) {
				t.Fatalf("Expected *InvalidParameterError, got %T: %v", err, err)
			}
			if paramErr.Param != c.wantParam {
				t.Errorf("Error names %q, want %q", paramErr.Param, c.wantParam)
			}
		})
	}

	// Zero tolerance is legal: the band collapses to the benchmark point.
	low, high, err := ExpectedRange(0.01, 1.0, 0.0)
	if err != nil {
		t.Fatalf("Zero tolerance rejected: %v", err)
	}
	if low != high {
		t.Errorf("Zero tolerance band = [%.4f, %.4f], want a point", low, high)
	}
}

// TestValidateForcingResultWithinRange verifies the canonical benchmark
// forcing (-3.4 W/m² at Δα=0.01, f=1.0) passes.
func TestValidateForcingResultWithinRange(t *testing.T) {
	result := ForcingResult{
		DeltaAlbedo:         0.01,
		AreaFraction:        1.0,
		RadiativeForcingWm2: -3.4,
	}

	verdict, err := ValidateForcingResult(result, 0.20)
	if err != nil {
		t.Fatalf("ValidateForcingResult failed: %v", err)
	}

	if !verdict.WithinRange {
		t.Errorf("Benchmark forcing flagged out of range: %s", verdict.Notes)
	}
	if verdict.Actual != -3.4 {
		t.Errorf("Actual = %.4f, want -3.4", verdict.Actual)
	}
	if math.Abs(verdict.ExpectedLow-(-4.08)) > 1e-9 || math.Abs(verdict.ExpectedHigh-(-2.72)) > 1e-9 {
		t.Errorf("Band = [%.4f, %.4f], want [-4.08, -2.72]",
			verdict.ExpectedLow, verdict.ExpectedHigh)
	}

	t.Logf("✓ %s", verdict.Notes)
}

// TestValidateForcingResultOutOfRange verifies a forcing outside the band
// is flagged with the sorted bounds still reported.
func TestValidateForcingResultOutOfRange(t *testing.T) {
	result := ForcingResult{
		DeltaAlbedo:         0.01,
		AreaFraction:        1.0,
		RadiativeForcingWm2: -10.0, // far below the band
	}

	verdict, err := ValidateForcingResult(result, 0.20)
	if err != nil {
		t.Fatalf("ValidateForcingResult failed: %v", err)
	}
	if verdict.WithinRange {
		t.Error("Out-of-band forcing passed validation")
	}
	if verdict.ExpectedLow > verdict.ExpectedHigh {
		t.Errorf("Bounds unsorted: [%.4f, %.4f]", verdict.ExpectedLow, verdict.ExpectedHigh)
	}

	t.Logf("✓ Correctly flagged: %s", verdict.Notes)
}

// TestValidateModelAgainstBenchmark verifies the model's own output for
// the benchmark scenario lands inside the band: -(1361/4)·0.01 = -3.4025.
func TestValidateModelAgainstBenchmark(t *testing.T) {
	s, err := NewScenario(0.30, 0.31, 1.0) // Δα = +0.01
	if err != nil {
		t.Fatalf("NewScenario failed: %v", err)
	}

	AssertWithinBenchmark(t, Compute(s), DefaultAssertionConfig())
}

// TestValidateForcingResultRejectsBadTolerance verifies the tolerance check
// propagates through the validator.
func TestValidateForcingResultRejectsBadTolerance(t *testing.T) {
	result := ForcingResult{DeltaAlbedo: 0.01, AreaFraction: 1.0, RadiativeForcingWm2: -3.4}

	_, err := ValidateForcingResult(result, -0.2)
	if err == nil {
		t.Fatal("Negative tolerance accepted")
	}
	var paramErr *InvalidParameterError
	if !errors.As(err, &paramErr) {
		t.Fatalf("Expected *InvalidParameterError, got %T: %v", err, err)
	}
}
