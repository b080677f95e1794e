package render

import (
	"math"
	"testing"

	"github.com/soniakeys/unit"
)

func TestWrapLon(t *testing.T) {
	cases := []struct {
		inDeg, wantDeg float64
	}{
		{0, 0},
		{90, 90},
		{180, 180},
		{-180, 180},
		{270, -90},
		{-270, 90},
		{359, -1},
		{720, 0},
	}
	for _, c := range cases {
		got := WrapLon(unit.AngleFromDeg(c.inDeg)).Deg()
		if math.Abs(got-c.wantDeg) > 1e-9 {
			t.Errorf("wrap(%g deg) = %g, want %g", c.inDeg, got, c.wantDeg)
		}
	}
}

func TestAitoffFixedPoints(t *testing.T) {
	if x, y := Aitoff(0, 0); x != 0 || y != 0 {
		t.Errorf("center maps to (%g, %g)", x, y)
	}
	if x, y := Aitoff(math.Pi, 0); math.Abs(x-math.Pi) > 1e-12 || math.Abs(y) > 1e-12 {
		t.Errorf("east edge maps to (%g, %g), want (pi, 0)", x, y)
	}
	if x, y := Aitoff(0, math.Pi/2); math.Abs(x) > 1e-12 || math.Abs(y-math.Pi/2) > 1e-12 {
		t.Errorf("north pole maps to (%g, %g), want (0, pi/2)", x, y)
	}
}

func TestAitoffSymmetry(t *testing.T) {
	for _, lon := range []float64{0.3, 1.1, 2.8} {
		for _, lat := range []float64{-1.2, -0.4, 0, 0.9} {
			x1, y1 := Aitoff(lon, lat)
			x2, y2 := Aitoff(-lon, lat)
			if math.Abs(x1+x2) > 1e-12 || math.Abs(y1-y2) > 1e-12 {
				t.Errorf("asymmetric at lon %g lat %g", lon, lat)
			}
		}
	}
}

func TestAitoffStaysBounded(t *testing.T) {
	for lon := -math.Pi; lon <= math.Pi; lon += math.Pi / 7 {
		for lat := -math.Pi / 2; lat <= math.Pi/2; lat += math.Pi / 9 {
			x, y := Aitoff(lon, lat)
			if math.Abs(x) > math.Pi+1e-9 || math.Abs(y) > math.Pi/2+1e-9 {
				t.Errorf("point (%g, %g) projects outside the ellipse: (%g, %g)", lon, lat, x, y)
			}
		}
	}
}
