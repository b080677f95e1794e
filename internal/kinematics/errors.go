package kinematics

import (
	"errors"
	"fmt"
)

// PropagationError reports a star that could not be advanced. Any result
// returned alongside it must be discarded.
type PropagationError struct {
	Designation string
	Dt          Years
	Reason      error
}

func (e *PropagationError) Error() string {
	if e.Designation == "" {
		return fmt.Sprintf("kinematics: propagation over %g yr failed: %v", float64(e.Dt), e.Reason)
	}
	return fmt.Sprintf("kinematics: propagation of %q over %g yr failed: %v", e.Designation, float64(e.Dt), e.Reason)
}

func (e *PropagationError) Unwrap() error { return e.Reason }

// PrecisionWarning flags offsets beyond the horizon where epoch
// arithmetic stops being exact: leap seconds are not scheduled years in
// advance. The set returned alongside it is fully usable.
type PrecisionWarning struct {
	Dt Years
}

func (w *PrecisionWarning) Error() string {
	return fmt.Sprintf("kinematics: offset %g yr exceeds the %g yr precision horizon", float64(w.Dt), float64(PrecisionHorizon))
}

// IsPrecisionWarning reports whether err is, or wraps, a benign
// precision warning rather than a real failure.
func IsPrecisionWarning(err error) bool {
	var w *PrecisionWarning
	return errors.As(err, &w)
}
