package render

import (
	"math"

	"github.com/soniakeys/unit"
)

// WrapLon maps an angle into (-pi, pi], the sky-map convention that
// centers longitude zero and sends the wrap seam to the map edges.
func WrapLon(a unit.Angle) unit.Angle {
	r := math.Mod(a.Rad(), 2*math.Pi)
	if r > math.Pi {
		r -= 2 * math.Pi
	} else if r <= -math.Pi {
		r += 2 * math.Pi
	}
	return unit.Angle(r)
}

// Aitoff projects wrapped longitude and latitude in radians onto an
// ellipse with x in [-pi, pi] and y in [-pi/2, pi/2]. The full sky fits
// with modest area distortion, which is why all-sky charts use it.
func Aitoff(lon, lat float64) (x, y float64) {
	half := lon / 2
	alpha := math.Acos(math.Cos(lat) * math.Cos(half))
	sinc := 1.0
	if alpha != 0 {
		sinc = math.Sin(alpha) / alpha
	}
	x = 2 * math.Cos(lat) * math.Sin(half) / sinc
	y = math.Sin(lat) / sinc
	return x, y
}
