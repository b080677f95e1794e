// Package kinematics advances stellar states through time by applying
// their space motion. Propagation is pure arithmetic: no I/O, no shared
// state, equal inputs give equal outputs.
package kinematics

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"

	"github.com/astrokit/stardrift/internal/star"
)

// Years is a time offset in Julian years (365.25 days each). Bare
// numbers from flags or configs become Years exactly once, at the
// boundary, before any offset sequence is built.
type Years float64

// PrecisionHorizon is the offset magnitude beyond which Propagate
// attaches a PrecisionWarning. Leap seconds more than about five years
// out are not yet scheduled, so epoch labels past the horizon drift by
// up to a few seconds.
const PrecisionHorizon Years = 5

// Propagator advances every star of a set by a time offset, always
// measured from the set's own epoch. Implementations must not mutate
// the input set.
//
// A returned *PrecisionWarning accompanies a fully valid result; any
// other non-nil error means no usable result exists.
type Propagator interface {
	Propagate(set star.Set, dt Years) (star.Set, error)
}

// Epoch returns the instant dt Julian years after base.
func Epoch(base time.Time, dt Years) time.Time {
	jd := julian.TimeToJD(base.UTC())
	return julian.JDToTime(jd + float64(dt)*365.25)
}
