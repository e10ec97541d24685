package albedoforce

import "fmt"

// PipelineConfig controls how AlbedoPipeline resolves the baseline albedo.
type PipelineConfig struct {
	// Anchor selects which library value seeds the baseline.
	Anchor Anchor

	// InitialAlbedo overrides the library baseline when non-nil. The
	// surface key is still resolved (and must exist) so typos surface
	// as UnknownSurfaceError rather than passing silently.
	InitialAlbedo *float64
}

// DefaultPipelineConfig uses the literature mid-point with no override.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{Anchor: AnchorTypical}
}

// AlbedoPipeline is the end-to-end helper: resolve a surface class, apply
// an additive albedo perturbation, and compute the resulting forcing.
//
// A perturbation that pushes the final albedo outside [0, 1] is rejected
// with *InvalidParameterError rather than clamped; silent clamping would
// hide user error. Use PerturbedAlbedo when clipping is the intent.
func AlbedoPipeline(surfaceType string, albedoDelta, areaFraction float64) (Scenario, ForcingResult, error) {
	return AlbedoPipelineWithConfig(surfaceType, albedoDelta, areaFraction, DefaultPipelineConfig())
}

// AlbedoPipelineWithConfig is AlbedoPipeline with an explicit config.
func AlbedoPipelineWithConfig(surfaceType string, albedoDelta, areaFraction float64, cfg PipelineConfig) (Scenario, ForcingResult, error) {
	anchor := cfg.Anchor
	if anchor == "" {
		anchor = AnchorTypical
	}

	initial, err := BaseAlbedo(surfaceType, anchor)
	if err != nil {
		return Scenario{}, ForcingResult{}, fmt.Errorf("resolve baseline for %q: %w", surfaceType, err)
	}
	if cfg.InitialAlbedo != nil {
		initial = *cfg.InitialAlbedo
	}

	scenario, err := NewScenario(initial, initial+albedoDelta, areaFraction)
	if err != nil {
		return Scenario{}, ForcingResult{}, fmt.Errorf("build scenario for %q: %w", surfaceType, err)
	}

	return scenario, Compute(scenario), nil
}
