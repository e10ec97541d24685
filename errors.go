package albedoforce

import (
	"fmt"
	"strings"
)

// InvalidParameterError reports a numeric input outside its documented legal
// range. It is returned immediately at construction/call time and never
// recovered internally.
type InvalidParameterError struct {
	Param string  // parameter name as it appears in the API
	Value float64 // offending value
	Legal string  // human-readable legal range, e.g. "[0, 1]"
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s = %g: must be within %s", e.Param, e.Value, e.Legal)
}

// UnknownSurfaceError reports a surface-type key with no entry in the
// surface library. Matching is case-sensitive.
type UnknownSurfaceError struct {
	Key   string   // requested key
	Known []string // valid keys, in definition order
}

func (e *UnknownSurfaceError) Error() string {
	return fmt.Sprintf("unknown surface type %q (available: %s)",
		e.Key, strings.Join(e.Known, ", "))
}

// errUnitRange builds the error for a [0, 1] parameter violation.
func errUnitRange(param string, value float64) *InvalidParameterError {
	return &InvalidParameterError{Param: param, Value: value, Legal: "[0, 1]"}
}
