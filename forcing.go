package albedoforce

// Physically meaningful constants.
const (
	// SolarConstantWm2 is the current best estimate of total solar
	// irradiance at the top of atmosphere (W m^-2).
	SolarConstantWm2 = 1361.0

	// GeometricFactor accounts for spherical geometry: the intercepted
	// solar disk is spread over 4x the area (1/4).
	GeometricFactor = 0.25
)

// ForcingResult carries the forcing diagnostic together with the inputs
// that produced it. Immutable; derived from exactly one Scenario.
type ForcingResult struct {
	DeltaAlbedo         float64 // Δα = final - initial
	AreaFraction        float64 // copied from the scenario
	RadiativeForcingWm2 float64 // ΔF_TOA (W m^-2), positive downward
}

// Compute applies the zero-dimensional energy balance to a scenario:
//
//	ΔF_TOA = -(S0 / 4) · Δα · f_area
//
// The formula is total over the legal input domain: every scenario that
// passed NewScenario produces a result, deterministically, with no
// intermediate rounding beyond native float64 arithmetic.
//
// Forcing is positive downward (warming). Brightening (Δα > 0) reflects
// more sunlight and yields negative forcing.
func Compute(s Scenario) ForcingResult {
	delta := s.DeltaAlbedo()
	return ForcingResult{
		DeltaAlbedo:         delta,
		AreaFraction:        s.AreaFraction,
		RadiativeForcingWm2: -SolarConstantWm2 * GeometricFactor * delta * s.AreaFraction,
	}
}

// ForcingConfig lets wrappers vary the physical constants, e.g. to test
// sensitivity to the solar-constant estimate. The defaults reproduce the
// core contract exactly.
type ForcingConfig struct {
	SolarConstantWm2 float64 // total solar irradiance (W m^-2)
	GeometricFactor  float64 // spherical geometry factor
}

// DefaultForcingConfig returns the core constants: S0 = 1361 W/m², 1/4.
func DefaultForcingConfig() ForcingConfig {
	return ForcingConfig{
		SolarConstantWm2: SolarConstantWm2,
		GeometricFactor:  GeometricFactor,
	}
}

// ForcingFromDelta estimates forcing directly from an albedo change,
// without constructing a Scenario. Δα must lie in [-1, 1] (values outside
// imply negative or >100% reflectance) and the area fraction in [0, 1].
func ForcingFromDelta(deltaAlbedo, areaFraction float64, cfg ForcingConfig) (ForcingResult, error) {
	if deltaAlbedo < -1 || deltaAlbedo > 1 {
		return ForcingResult{}, &InvalidParameterError{
			Param: "delta_albedo", Value: deltaAlbedo, Legal: "[-1, 1]",
		}
	}
	if areaFraction < 0 || areaFraction > 1 {
		return ForcingResult{}, errUnitRange("area_fraction", areaFraction)
	}
	return ForcingResult{
		DeltaAlbedo:         deltaAlbedo,
		AreaFraction:        areaFraction,
		RadiativeForcingWm2: -cfg.SolarConstantWm2 * cfg.GeometricFactor * deltaAlbedo * areaFraction,
	}, nil
}

// AlbedoDifference computes Δα = final - initial, validating both albedos.
func AlbedoDifference(initialAlbedo, finalAlbedo float64) (float64, error) {
	if initialAlbedo < 0 || initialAlbedo > 1 {
		return 0, errUnitRange("initial_albedo", initialAlbedo)
	}
	if finalAlbedo < 0 || finalAlbedo > 1 {
		return 0, errUnitRange("final_albedo", finalAlbedo)
	}
	return finalAlbedo - initialAlbedo, nil
}
