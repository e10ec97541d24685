package albedoforce

// Scenario describes a surface albedo perturbation applied over a fraction
// of the planet. It is an immutable value: construct one with NewScenario,
// read it, discard it.
//
// There is no ordering constraint between the initial and final albedo;
// darkening (final < initial) and brightening (final > initial) are both
// valid. The albedos need not correspond to any library surface, so callers
// can run arbitrary sensitivity experiments.
type Scenario struct {
	InitialAlbedo float64 // starting broadband albedo, [0, 1]
	FinalAlbedo   float64 // ending broadband albedo, [0, 1]
	AreaFraction  float64 // fraction of Earth's surface affected, [0, 1]
}

// NewScenario validates the three inputs and returns the scenario.
// Each value must lie in [0, 1]; the bounds are legal. A violation returns
// *InvalidParameterError naming the offending field.
func NewScenario(initialAlbedo, finalAlbedo, areaFraction float64) (Scenario, error) {
	if initialAlbedo < 0 || initialAlbedo > 1 {
		return Scenario{}, errUnitRange("initial_albedo", initialAlbedo)
	}
	if finalAlbedo < 0 || finalAlbedo > 1 {
		return Scenario{}, errUnitRange("final_albedo", finalAlbedo)
	}
	if areaFraction < 0 || areaFraction > 1 {
		return Scenario{}, errUnitRange("area_fraction", areaFraction)
	}
	return Scenario{
		InitialAlbedo: initialAlbedo,
		FinalAlbedo:   finalAlbedo,
		AreaFraction:  areaFraction,
	}, nil
}

// DeltaAlbedo returns Δα = final - initial.
func (s Scenario) DeltaAlbedo() float64 {
	return s.FinalAlbedo - s.InitialAlbedo
}
