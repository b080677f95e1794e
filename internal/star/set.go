package star

import (
	"fmt"
	"time"
)

// Set is an ordered collection of stars sharing one observation epoch.
// Rendering and propagation treat sets as values; operations that change
// membership return a new Set and leave the receiver alone.
type Set struct {
	Epoch time.Time
	Stars []Star
}

func (s Set) Len() int { return len(s.Stars) }

func (s Set) Empty() bool { return len(s.Stars) == 0 }

// Clone returns a deep copy sharing no backing storage.
func (s Set) Clone() Set {
	c := Set{Epoch: s.Epoch, Stars: make([]Star, len(s.Stars))}
	copy(c.Stars, s.Stars)
	return c
}

// Filter returns the subset of stars for which keep returns true.
func (s Set) Filter(keep func(Star) bool) Set {
	out := Set{Epoch: s.Epoch}
	for _, st := range s.Stars {
		if keep(st) {
			out.Stars = append(out.Stars, st)
		}
	}
	return out
}

// DistanceRange returns the minimum and maximum distance over the set.
func (s Set) DistanceRange() (min, max float64, err error) {
	if len(s.Stars) == 0 {
		return 0, 0, ErrEmptySet
	}
	min, max = s.Stars[0].Distance, s.Stars[0].Distance
	for _, st := range s.Stars[1:] {
		if st.Distance < min {
			min = st.Distance
		}
		if st.Distance > max {
			max = st.Distance
		}
	}
	return min, max, nil
}

// Distances returns the stars' distances in set order.
func (s Set) Distances() []float64 {
	out := make([]float64, len(s.Stars))
	for i, st := range s.Stars {
		out[i] = st.Distance
	}
	return out
}

// Validate reports the first star that cannot be propagated.
func (s Set) Validate() error {
	if len(s.Stars) == 0 {
		return ErrEmptySet
	}
	for i, st := range s.Stars {
		if err := st.CanPropagate(); err != nil {
			return fmt.Errorf("star %d: %w", i, err)
		}
	}
	return nil
}
