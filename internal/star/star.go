package star

import (
	"fmt"
	"math"

	"github.com/soniakeys/unit"
)

// Star is one catalog source at a single observation epoch: an ICRS sky
// position plus the kinematic quantities needed to move it through time.
// PMRA already carries the cos(Dec) factor; catalogs publish mu_alpha*
// and the parser keeps it that way, so propagation never rescales it.
type Star struct {
	Designation string

	RA  unit.Angle
	Dec unit.Angle

	// Distance in parsecs, derived from parallax upstream.
	Distance float64

	// Proper motion components per Julian year.
	PMRA  unit.Angle // mu_alpha* = mu_alpha cos(Dec)
	PMDec unit.Angle

	// RadialVelocity in km/s, positive receding.
	RadialVelocity float64
}

// Cartesian returns the star's position in parsecs in a right-handed
// equatorial frame: x toward (RA 0, Dec 0), z toward the north
// celestial pole, the observer at the origin.
func (s Star) Cartesian() Vec3 {
	cd := s.Dec.Cos()
	return Vec3{
		X: s.Distance * cd * s.RA.Cos(),
		Y: s.Distance * cd * s.RA.Sin(),
		Z: s.Distance * s.Dec.Sin(),
	}
}

// CanPropagate reports whether the star carries every field space-motion
// propagation needs. Missing catalog values arrive as NaN.
func (s Star) CanPropagate() error {
	if math.IsNaN(s.Distance) || math.IsInf(s.Distance, 0) || s.Distance <= 0 {
		return fmt.Errorf("%s: %w", s.Designation, ErrBadDistance)
	}
	for _, v := range [...]float64{s.PMRA.Rad(), s.PMDec.Rad(), s.RadialVelocity} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s: %w", s.Designation, ErrMissingKinematics)
		}
	}
	return nil
}
