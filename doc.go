// Package albedoforce estimates top-of-atmosphere radiative forcing from
// surface albedo changes.
//
// # Overview
//
// albedoforce implements a zero-dimensional shortwave energy balance: a change
// in planetary albedo (Δα) perturbs the absorbed solar flux at the top of
// atmosphere (TOA):
//
//	ΔF_TOA = -(S0 / 4) · Δα · f_area
//
// Where:
//   - S0: solar constant, 1361 W/m² (total solar irradiance)
//   - 1/4: geometric factor (spherical surface area vs. intercepted disk)
//   - Δα: albedo change, final - initial
//   - f_area: fraction of Earth's surface affected (scales a regional
//     perturbation to a global-mean forcing)
//
// Sign convention: forcing is positive downward (warming). Brightening the
// surface (Δα > 0) reflects more sunlight and yields negative forcing.
//
// # Architecture
//
// The package components:
//
//   - surface.go    - Literature albedo library for common land-cover classes
//   - scenario.go   - Validated perturbation scenarios
//   - forcing.go    - The energy-balance calculation
//   - validation.go - Benchmark range checking (IPCC-style sensitivity)
//   - pipeline.go   - Surface lookup → scenario → forcing composition
//   - sweep.go      - Sensitivity sweeps and linear fits
//   - assertions.go - Test helpers for the model's mathematical properties
//
// # Quick Start
//
// Compute the forcing from darkening vegetation by 0.02 over half the globe:
//
//	scenario, result, err := albedoforce.AlbedoPipeline("vegetation", -0.02, 0.5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Δα = %.3f\n", scenario.DeltaAlbedo())
//	fmt.Printf("ΔF_TOA = %.4f W/m²\n", result.RadiativeForcingWm2)
//
// Or build the scenario directly from arbitrary albedos:
//
//	scenario, err := albedoforce.NewScenario(0.30, 0.28, 0.5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result := albedoforce.Compute(scenario)
//
// # Benchmark Validation
//
// A first-order benchmark sensitivity (Δα = +0.01 ⇒ ΔF ≈ -3.4 W/m²) anchors
// the model against the literature. Computed forcings can be checked against
// a tolerance band around the benchmark prediction:
//
//	verdict, err := albedoforce.ValidateForcingResult(result, albedoforce.DefaultTolerance)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !verdict.WithinRange {
//	    fmt.Printf("outside [%.2f, %.2f] W/m²\n", verdict.ExpectedLow, verdict.ExpectedHigh)
//	}
//
// The benchmark prediction can be negative, so the band is sorted before
// comparison: ExpectedLow ≤ ExpectedHigh always holds.
//
// # Sensitivity Sweeps
//
// Sweep a surface across a grid of albedo deltas and recover the effective
// W/m² per unit Δα by linear regression:
//
//	deltas := albedoforce.SweepSpan(-0.05, 0.05, 11)
//	results, err := albedoforce.SweepDeltas("cropland", deltas, 1.0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fit, err := albedoforce.FitSensitivity(results)
//	fmt.Printf("slope = %.2f W/m² per Δα (R² = %.4f)\n",
//	    fit.SlopeWm2PerDeltaAlpha, fit.RSquared)
//
// # Testing
//
// Use assertions to validate the model's properties on your own scenarios:
//
//	func TestMyScenario(t *testing.T) {
//	    cfg := albedoforce.DefaultAssertionConfig()
//
//	    // No albedo change ⇒ zero forcing
//	    albedoforce.AssertZeroForcingAtNoChange(t, 0.3, 0.5)
//
//	    // Brightening ⇒ negative forcing, darkening ⇒ positive
//	    s, _ := albedoforce.NewScenario(0.17, 0.15, 0.5)
//	    albedoforce.AssertSignConvention(t, s)
//
//	    // Forcing is linear in Δα and f_area
//	    albedoforce.AssertForcingLinearity(t, s, cfg)
//	}
//
// # Scope
//
// This is an instantaneous, zero-feedback estimate. Cloud adjustments, water
// vapor, ice-albedo feedback, spectral effects, and latitudinal insolation
// gradients are not represented. Every operation is a pure function of its
// inputs; the surface library is read-only process-wide data, safe for
// concurrent callers without locking.
package albedoforce
