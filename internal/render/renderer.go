// Package render draws stellar state sets as dual-panel frames: an
// Aitoff all-sky chart next to a 3D spatial view, both colored by
// distance on one shared scale. Frames expose mutable marker
// collections so an animator can move points between snapshots without
// rebuilding anything.
package render

import (
	"github.com/astrokit/stardrift/internal/star"
)

const (
	// DefaultWidth and DefaultHeight are per-panel character cells.
	DefaultWidth  = 60
	DefaultHeight = 22
)

// Options carries the optional explicit color bounds. A nil Scale means
// derive the bounds from the rendered set's distances.
type Options struct {
	Scale *ColorScale
}

// Renderer builds frames at a fixed character resolution.
type Renderer struct {
	Width, Height int
	Palette       Palette
}

func New(width, height int, palette Palette) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	if len(palette.Stops) == 0 {
		palette = Viridis
	}
	return &Renderer{Width: width, Height: height, Palette: palette}
}

// Render resolves the color scale and produces a frame holding the
// set's current positions. The set is read, never retained or mutated;
// calling Render twice on the same input yields the same scale and the
// same picture.
func (r *Renderer) Render(set star.Set, opts Options) (*Frame, error) {
	scale, err := ResolveScale(set, opts.Scale)
	if err != nil {
		return nil, err
	}

	// The camera's extent is fixed now, from whichever is larger of the
	// scale ceiling and the set's farthest star, so later frames of an
	// animation stay inside the view.
	radius := scale.Max
	if _, max, err := set.DistanceRange(); err == nil && max > radius {
		radius = max
	}

	f := &Frame{
		scale:       scale,
		palette:     r.Palette,
		camera:      NewCamera(radius),
		skyCanvas:   NewCanvas(r.Width, r.Height),
		spaceCanvas: NewCanvas(r.Width, r.Height),
		legend:      Legend(r.Palette, scale, r.Width),
	}

	lon, lat := SkyPositions(set)
	f.sky.SetPositions(lon, lat)
	f.space.SetPositions(SpacePositions(set))
	d := set.Distances()
	f.sky.SetColors(d)
	f.space.SetColors(d)
	return f, nil
}

// SkyPositions converts a set to chart coordinates: right ascension
// wrapped into (-pi, pi] and declination, both in radians.
func SkyPositions(set star.Set) (lon, lat []float64) {
	lon = make([]float64, set.Len())
	lat = make([]float64, set.Len())
	for i, s := range set.Stars {
		lon[i] = WrapLon(s.RA).Rad()
		lat[i] = s.Dec.Rad()
	}
	return lon, lat
}

// SpacePositions converts a set to Cartesian points in parsecs.
func SpacePositions(set star.Set) []star.Vec3 {
	pts := make([]star.Vec3, set.Len())
	for i, s := range set.Stars {
		pts[i] = s.Cartesian()
	}
	return pts
}
