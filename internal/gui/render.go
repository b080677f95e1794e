package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/astrokit/stardrift/internal/star"
)

// world maps equatorial parsec coordinates into the scene. Declination
// points up on screen, so astronomical z becomes raylib y.
func (a *App) world(p star.Vec3) rl.Vector3 {
	return rl.NewVector3(
		float32(p.X*a.worldScale),
		float32(p.Z*a.worldScale),
		float32(p.Y*a.worldScale),
	)
}

func (a *App) drawScene() {
	rl.BeginMode3D(a.camera)

	if a.showGrid {
		a.drawGrid(12, worldRadius/6)
	}

	// The Sun stays pinned at the origin.
	rl.DrawSphere(rl.NewVector3(0, 0, 0), 0.3, rl.White)

	f := a.frames[a.frameIdx]
	first := a.frames[0]
	for i := range f.pos {
		cur := a.world(f.pos[i])
		if a.frameIdx > 0 && i < len(first.pos) {
			rl.DrawLine3D(a.world(first.pos[i]), cur, ColTrail)
		}
		rl.DrawSphere(cur, 0.25, f.cols[i])
	}

	rl.EndMode3D()
}

func (a *App) drawGrid(slices int, spacing float32) {
	halfSize := float32(slices) * spacing / 2
	for i := -slices / 2; i <= slices/2; i++ {
		pos := float32(i) * spacing
		rl.DrawLine3D(rl.NewVector3(pos, 0, -halfSize), rl.NewVector3(pos, 0, halfSize), ColGrid)
		rl.DrawLine3D(rl.NewVector3(-halfSize, 0, pos), rl.NewVector3(halfSize, 0, pos), ColGrid)
	}
}
