package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/astrokit/stardrift/internal/star"
)

// ColorScale maps distances in parsecs onto the unit interval. Once
// resolved for a snapshot or an animation it never changes, so a color
// means the same distance in every panel and every frame.
type ColorScale struct {
	Min, Max float64
}

// ErrBadScale indicates explicit bounds that cannot form a scale.
var ErrBadScale = errors.New("render: color scale bounds must be finite with min < max")

func (cs ColorScale) validate() error {
	for _, v := range [...]float64{cs.Min, cs.Max} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrBadScale
		}
	}
	if cs.Max <= cs.Min {
		return ErrBadScale
	}
	return nil
}

// Normalize clamps v into [0, 1] against the bounds. A degenerate scale
// (every star at the same distance) pins everything to the middle of
// the ramp.
func (cs ColorScale) Normalize(v float64) float64 {
	if cs.Max <= cs.Min {
		return 0.5
	}
	t := (v - cs.Min) / (cs.Max - cs.Min)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func (cs ColorScale) String() string {
	return fmt.Sprintf("%.3g..%.3g pc", cs.Min, cs.Max)
}

// ResolveScale returns the explicit scale when one is given, otherwise
// the distance range of the set. An empty set cannot supply a range, so
// rendering one without explicit bounds fails with star.ErrEmptySet.
func ResolveScale(set star.Set, explicit *ColorScale) (ColorScale, error) {
	if explicit != nil {
		if err := explicit.validate(); err != nil {
			return ColorScale{}, err
		}
		return *explicit, nil
	}
	min, max, err := set.DistanceRange()
	if err != nil {
		return ColorScale{}, err
	}
	return ColorScale{Min: min, Max: max}, nil
}
