package render

import (
	"errors"
	"math"
	"testing"

	"github.com/astrokit/stardrift/internal/star"
)

func distSet(distances ...float64) star.Set {
	set := star.Set{}
	for _, d := range distances {
		set.Stars = append(set.Stars, star.Star{Distance: d})
	}
	return set
}

func TestResolveScaleDerived(t *testing.T) {
	scale, err := ResolveScale(distSet(20, 10, 30), nil)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if scale.Min != 10 || scale.Max != 30 {
		t.Errorf("got %+v, want {10 30}", scale)
	}
}

func TestResolveScaleExplicit(t *testing.T) {
	scale, err := ResolveScale(distSet(20, 10, 30), &ColorScale{Min: 0, Max: 100})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if scale.Min != 0 || scale.Max != 100 {
		t.Errorf("explicit bounds ignored: %+v", scale)
	}
}

func TestResolveScaleEmptySet(t *testing.T) {
	if _, err := ResolveScale(star.Set{}, nil); !errors.Is(err, star.ErrEmptySet) {
		t.Errorf("got %v, want ErrEmptySet", err)
	}

	// Explicit bounds make an empty set renderable.
	if _, err := ResolveScale(star.Set{}, &ColorScale{Min: 1, Max: 2}); err != nil {
		t.Errorf("explicit scale rejected on empty set: %v", err)
	}
}

func TestResolveScaleBadExplicit(t *testing.T) {
	for _, cs := range []ColorScale{
		{Min: 10, Max: 10},
		{Min: 30, Max: 10},
		{Min: math.NaN(), Max: 10},
		{Min: 0, Max: math.Inf(1)},
	} {
		if _, err := ResolveScale(distSet(1, 2), &cs); !errors.Is(err, ErrBadScale) {
			t.Errorf("bounds %+v accepted: %v", cs, err)
		}
	}
}

func TestNormalize(t *testing.T) {
	scale := ColorScale{Min: 10, Max: 30}
	cases := []struct{ in, want float64 }{
		{10, 0},
		{30, 1},
		{20, 0.5},
		{5, 0},  // clamped below
		{40, 1}, // clamped above
	}
	for _, c := range cases {
		if got := scale.Normalize(c.in); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("normalize(%g) = %g, want %g", c.in, got, c.want)
		}
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	scale, err := ResolveScale(distSet(15, 15, 15), nil)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if got := scale.Normalize(15); got != 0.5 {
		t.Errorf("degenerate scale normalized to %g, want 0.5", got)
	}
}
