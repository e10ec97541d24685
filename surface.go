package albedoforce

import "fmt"

// SurfaceAlbedo holds the broadband shortwave albedo characteristics of a
// land-cover class under clear-sky conditions. Values are literature
// mid-points with supported ranges; see the library comments for sources.
type SurfaceAlbedo struct {
	Name     string  // library key
	Typical  float64 // literature mid-point
	RangeMin float64 // lower literature bound
	RangeMax float64 // upper literature bound
	Note     string  // short description of the surface
}

// Anchor selects which library value a lookup resolves to: the literature
// mid-point or one of the range bounds.
type Anchor string

const (
	AnchorTypical Anchor = "typical"
	AnchorMin     Anchor = "min"
	AnchorMax     Anchor = "max"
)

// Typical broadband albedo ranges (unitless) with literature cues:
//   - Vegetation: 0.13-0.20, mid ~0.17 (Oke, 1987; IPCC AR5 WG1 Ch8)
//   - Desert (bright sand): 0.30-0.45, mid ~0.38 (Sagan et al., 1979)
//   - Snow, fresh: 0.70-0.85, mid ~0.78 (Wiscombe & Warren, 1980)
//   - Snow, aging/dusty: 0.40-0.60, mid ~0.50 (Wiscombe & Warren, 1980)
//   - Urban/built: 0.12-0.20, mid ~0.16 (Taha, 1997; Oke, 1987)
//   - Cropland/bare soil: 0.15-0.25, mid ~0.20 (Sellers, 1965)
//
// The slice order is the definition order reported by SurfaceTypes.
var surfaceLibrary = []SurfaceAlbedo{
	{Name: "vegetation", Typical: 0.17, RangeMin: 0.13, RangeMax: 0.20, Note: "closed canopy forest/grass"},
	{Name: "desert", Typical: 0.38, RangeMin: 0.30, RangeMax: 0.45, Note: "bright sand"},
	{Name: "snow_fresh", Typical: 0.78, RangeMin: 0.70, RangeMax: 0.85, Note: "fresh dry snow"},
	{Name: "snow_aged", Typical: 0.50, RangeMin: 0.40, RangeMax: 0.60, Note: "aging or dusty snow"},
	{Name: "urban", Typical: 0.16, RangeMin: 0.12, RangeMax: 0.20, Note: "built environment"},
	{Name: "cropland", Typical: 0.20, RangeMin: 0.15, RangeMax: 0.25, Note: "bare soil or sparse crop"},
}

// Lookup returns the library entry for a surface-type key.
// Matching is case-sensitive and exact; a miss returns *UnknownSurfaceError.
func Lookup(name string) (SurfaceAlbedo, error) {
	for _, s := range surfaceLibrary {
		if s.Name == name {
			return s, nil
		}
	}
	return SurfaceAlbedo{}, &UnknownSurfaceError{Key: name, Known: SurfaceTypes()}
}

// SurfaceTypes returns the supported surface keys in definition order.
func SurfaceTypes() []string {
	names := make([]string, len(surfaceLibrary))
	for i, s := range surfaceLibrary {
		names[i] = s.Name
	}
	return names
}

// AnchorValue returns the albedo the anchor selects from this entry.
func (s SurfaceAlbedo) AnchorValue(anchor Anchor) (float64, error) {
	switch anchor {
	case AnchorTypical:
		return s.Typical, nil
	case AnchorMin:
		return s.RangeMin, nil
	case AnchorMax:
		return s.RangeMax, nil
	}
	return 0, fmt.Errorf("unsupported anchor %q: choose %q, %q, or %q",
		anchor, AnchorTypical, AnchorMin, AnchorMax)
}

// ValidateAlbedo checks that an albedo lies in the physical range [0, 1].
func ValidateAlbedo(value float64) error {
	if value < 0 || value > 1 {
		return errUnitRange("albedo", value)
	}
	return nil
}

// BaseAlbedo returns the unperturbed albedo for a named surface type at the
// given anchor.
func BaseAlbedo(surfaceType string, anchor Anchor) (float64, error) {
	entry, err := Lookup(surfaceType)
	if err != nil {
		return 0, err
	}
	value, err := entry.AnchorValue(anchor)
	if err != nil {
		return 0, err
	}
	if err := ValidateAlbedo(value); err != nil {
		return 0, err
	}
	return value, nil
}

// PerturbedAlbedo applies an additive perturbation to a surface albedo,
// clipping the result to the physical bounds [0, 1]. It exists for
// sensitivity sweeps that intentionally probe the bounds; AlbedoPipeline
// does NOT clip and instead rejects unphysical perturbations.
func PerturbedAlbedo(surfaceType string, delta float64, anchor Anchor) (float64, error) {
	base, err := BaseAlbedo(surfaceType, anchor)
	if err != nil {
		return 0, err
	}
	perturbed := base + delta
	if perturbed < 0 {
		perturbed = 0
	}
	if perturbed > 1 {
		perturbed = 1
	}
	return perturbed, nil
}
