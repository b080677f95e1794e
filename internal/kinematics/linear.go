package kinematics

import (
	"errors"
	"math"

	"github.com/soniakeys/unit"

	"github.com/astrokit/stardrift/internal/star"
)

const (
	kmPerParsec      = 3.0856775814913673e13
	secPerJulianYear = 365.25 * 86400
	kmsToPcPerYear   = secPerJulianYear / kmPerParsec
)

// Linear is rigid space motion: the velocity vector implied by proper
// motion and radial velocity at the epoch stays constant and positions
// advance along straight lines. Perspective effects fall out of the
// geometry; there is no acceleration model.
type Linear struct{}

func (Linear) Propagate(set star.Set, dt Years) (star.Set, error) {
	if f := float64(dt); math.IsNaN(f) || math.IsInf(f, 0) {
		return star.Set{}, &PropagationError{Dt: dt, Reason: errors.New("non-finite offset")}
	}

	out := star.Set{Epoch: Epoch(set.Epoch, dt), Stars: make([]star.Star, len(set.Stars))}
	for i, s := range set.Stars {
		if err := s.CanPropagate(); err != nil {
			return star.Set{}, &PropagationError{Designation: s.Designation, Dt: dt, Reason: err}
		}
		moved, err := advance(s, dt)
		if err != nil {
			return star.Set{}, err
		}
		out.Stars[i] = moved
	}

	if math.Abs(float64(dt)) > float64(PrecisionHorizon) {
		return out, &PrecisionWarning{Dt: dt}
	}
	return out, nil
}

// advance moves one star along its constant space velocity and
// re-expresses that velocity in the sky frame at the new position, so
// the output is a self-consistent state.
func advance(s star.Star, dt Years) (star.Star, error) {
	sinRA, cosRA := math.Sincos(s.RA.Rad())
	sinDec, cosDec := math.Sincos(s.Dec.Rad())

	p := s.Cartesian()
	raHat := star.Vec3{X: -sinRA, Y: cosRA}
	decHat := star.Vec3{X: -sinDec * cosRA, Y: -sinDec * sinRA, Z: cosDec}
	rHat := p.Scale(1 / s.Distance)

	// Velocity in pc per Julian year. PMRA carries cos(Dec) already, so
	// mu * distance is the transverse rate along each sky axis.
	v := raHat.Scale(s.PMRA.Rad() * s.Distance).
		Add(decHat.Scale(s.PMDec.Rad() * s.Distance)).
		Add(rHat.Scale(s.RadialVelocity * kmsToPcPerYear))

	q := p.Add(v.Scale(float64(dt)))
	d := q.Norm()
	if !q.IsValid() || d <= 0 {
		return star.Star{}, &PropagationError{Designation: s.Designation, Dt: dt, Reason: star.ErrBadDistance}
	}

	ra := math.Atan2(q.Y, q.X)
	if ra < 0 {
		ra += 2 * math.Pi
	}
	sz := q.Z / d
	if sz > 1 {
		sz = 1
	} else if sz < -1 {
		sz = -1
	}
	dec := math.Asin(sz)

	sinRA2, cosRA2 := math.Sincos(ra)
	sinDec2, cosDec2 := math.Sincos(dec)
	raHat2 := star.Vec3{X: -sinRA2, Y: cosRA2}
	decHat2 := star.Vec3{X: -sinDec2 * cosRA2, Y: -sinDec2 * sinRA2, Z: cosDec2}
	rHat2 := q.Scale(1 / d)

	out := s
	out.RA = unit.Angle(ra)
	out.Dec = unit.Angle(dec)
	out.Distance = d
	out.PMRA = unit.Angle(v.Dot(raHat2) / d)
	out.PMDec = unit.Angle(v.Dot(decHat2) / d)
	out.RadialVelocity = v.Dot(rHat2) / kmsToPcPerYear
	return out, nil
}
