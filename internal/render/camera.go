package render

import (
	"math"

	"github.com/astrokit/stardrift/internal/star"
)

// Camera projects world points onto a canvas with a little perspective.
// WorldRadius is the scene half-extent; it is fixed when the camera is
// created so an animation's view does not chase drifting stars.
type Camera struct {
	RotX, RotY, RotZ float64
	Zoom             float64
	Dist             float64
	WorldRadius      float64
}

func NewCamera(worldRadius float64) *Camera {
	if worldRadius <= 0 || math.IsNaN(worldRadius) || math.IsInf(worldRadius, 0) {
		worldRadius = 1
	}
	return &Camera{
		RotX:        -0.35,
		RotY:        0.55,
		Zoom:        1.0,
		Dist:        3.0,
		WorldRadius: worldRadius,
	}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

func (c *Camera) rotate(p star.Vec3) star.Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}

// Project converts a world point to sub-pixel canvas coordinates.
// Returns x, y, depth, and whether the point lands on the canvas.
func (c *Camera) Project(p star.Vec3, sw, sh int) (int, int, float64, bool) {
	q := c.rotate(p.Scale(1 / c.WorldRadius)).Scale(c.Zoom)
	if q.Z >= c.Dist-0.1 {
		return 0, 0, 0, false
	}
	persp := c.Dist / (c.Dist - q.Z)
	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	scale := minDim / 2.4
	sx := int(q.X*persp*scale) + sw/2
	sy := int(-q.Y*persp*scale) + sh/2
	return sx, sy, q.Z, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}
