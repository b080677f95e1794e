package render

import (
	"sort"

	"github.com/astrokit/stardrift/internal/star"
)

// SkyMarkers is the live handle onto the angular panel's point set.
// Positions are wrapped longitude and latitude in radians; colors are
// raw distance values that the frame's fixed scale normalizes.
type SkyMarkers interface {
	SetPositions(lon, lat []float64)
	SetColors(values []float64)
}

// SpaceMarkers is the live handle onto the spatial panel's point set.
type SpaceMarkers interface {
	SetPositions(pts []star.Vec3)
	SetColors(values []float64)
}

type skyLayer struct {
	lon, lat, values []float64
}

func (l *skyLayer) SetPositions(lon, lat []float64) {
	l.lon = append(l.lon[:0], lon...)
	l.lat = append(l.lat[:0], lat...)
}

func (l *skyLayer) SetColors(values []float64) {
	l.values = append(l.values[:0], values...)
}

type spaceLayer struct {
	pts    []star.Vec3
	values []float64
}

func (l *spaceLayer) SetPositions(pts []star.Vec3) {
	l.pts = append(l.pts[:0], pts...)
}

func (l *spaceLayer) SetColors(values []float64) {
	l.values = append(l.values[:0], values...)
}

var (
	boundaryColor = RGB{0x44, 0x44, 0x55}
	originColor   = RGB{0xff, 0xff, 0xff}
)

const originMarker = '+'

// Frame is one renderable moment: two marker layers over two reused
// canvases, colored by one fixed scale. The animation loop mutates the
// markers and snapshots again; canvases and layers are never
// reallocated between frames.
type Frame struct {
	scale   ColorScale
	palette Palette
	camera  *Camera

	sky   skyLayer
	space spaceLayer

	skyCanvas   *Canvas
	spaceCanvas *Canvas

	legend string
}

// Sky returns the mutable marker collection of the angular panel.
func (f *Frame) Sky() SkyMarkers { return &f.sky }

// Space returns the mutable marker collection of the spatial panel.
func (f *Frame) Space() SpaceMarkers { return &f.space }

// Scale returns the resolved color bounds shared by both panels.
func (f *Frame) Scale() ColorScale { return f.scale }

// Camera returns the spatial panel's camera for view adjustments.
func (f *Frame) Camera() *Camera { return f.camera }

// Snapshot plots the current marker state and freezes it under the
// given label.
func (f *Frame) Snapshot(label string) Snapshot {
	f.plotSky()
	f.plotSpace()
	return Snapshot{
		Sky:    f.skyCanvas.Snapshot(),
		Space:  f.spaceCanvas.Snapshot(),
		Legend: f.legend,
		Label:  label,
	}
}

func (f *Frame) plotSky() {
	c := f.skyCanvas
	c.Clear()
	w, h := c.Width*2, c.Height*4

	f.drawSkyBoundary(c, w, h)

	n := len(f.sky.lon)
	if len(f.sky.lat) < n {
		n = len(f.sky.lat)
	}
	for i := 0; i < n; i++ {
		x, y := Aitoff(f.sky.lon[i], f.sky.lat[i])
		px := int((x/aitoffXMax + 1) / 2 * float64(w-1))
		py := int((1 - (y/aitoffYMax+1)/2) * float64(h-1))
		c.Set(px, py, f.markerColor(f.sky.values, i))
	}
}

const (
	aitoffXMax = 3.141592653589793
	aitoffYMax = aitoffXMax / 2
)

// drawSkyBoundary traces the projected +-180 degree meridian, the
// ellipse that outlines an all-sky chart.
func (f *Frame) drawSkyBoundary(c *Canvas, w, h int) {
	steps := h * 2
	for i := 0; i <= steps; i++ {
		lat := -aitoffYMax + float64(i)/float64(steps)*2*aitoffYMax
		x, y := Aitoff(aitoffXMax, lat)
		py := int((1 - (y/aitoffYMax+1)/2) * float64(h-1))
		pxRight := int((x/aitoffXMax + 1) / 2 * float64(w-1))
		pxLeft := int((-x/aitoffXMax + 1) / 2 * float64(w-1))
		c.Set(pxRight, py, boundaryColor)
		c.Set(pxLeft, py, boundaryColor)
	}
}

type projectedPoint struct {
	x, y  int
	depth float64
	col   RGB
}

func (f *Frame) plotSpace() {
	c := f.spaceCanvas
	c.Clear()
	w, h := c.Width*2, c.Height*4

	n := len(f.space.pts)
	proj := make([]projectedPoint, 0, n)
	for i := 0; i < n; i++ {
		x, y, depth, visible := f.camera.Project(f.space.pts[i], w, h)
		if !visible {
			continue
		}
		proj = append(proj, projectedPoint{x, y, depth, f.markerColor(f.space.values, i)})
	}

	// Painter order: farthest first so nearer stars overwrite.
	sort.Slice(proj, func(i, j int) bool { return proj[i].depth < proj[j].depth })
	for _, p := range proj {
		c.Set(p.x, p.y, p.col)
	}

	if ox, oy, _, visible := f.camera.Project(star.Vec3{}, w, h); visible {
		c.Overlay(ox, oy, originMarker, originColor)
	}
}

func (f *Frame) markerColor(values []float64, i int) RGB {
	if i >= len(values) {
		return f.palette.At(0.5)
	}
	return f.palette.At(f.scale.Normalize(values[i]))
}
