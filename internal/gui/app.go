// Package gui plays a precomputed drift sequence in a raylib window,
// with the Sun pinned at the origin. Frames are propagated once up
// front, so scrubbing never re-runs the kinematics.
package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/astrokit/stardrift/internal/kinematics"
	"github.com/astrokit/stardrift/internal/render"
	"github.com/astrokit/stardrift/internal/star"
)

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColGrid    = rl.NewColor(30, 30, 30, 255)
	ColTrail   = rl.NewColor(60, 60, 75, 255)
)

// worldRadius is the scene radius in world units; parsecs scale into it.
const worldRadius = 20.0

type frame struct {
	pos  []star.Vec3
	cols []rl.Color
}

type App struct {
	frames   []frame
	offsets  []kinematics.Years
	epoch    time.Time
	scale    render.ColorScale
	interval time.Duration

	frameIdx int
	running  bool
	showGrid bool
	quit     bool
	acc      float32

	camera       rl.Camera3D
	camPosTarget rl.Vector3
	camTgtTarget rl.Vector3
	font         rl.Font

	worldScale float64
}

// Build propagates the set once per offset and bakes positions and
// palette colors into playable frames. Precision notices are dropped;
// any other propagation failure aborts the build with no window opened.
func Build(set star.Set, prop kinematics.Propagator, offsets []kinematics.Years, scale render.ColorScale, pal render.Palette, interval time.Duration) (*App, error) {
	if set.Empty() {
		return nil, star.ErrEmptySet
	}
	if len(offsets) == 0 {
		return nil, fmt.Errorf("gui: no frame offsets")
	}
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}

	app := &App{
		offsets:  offsets,
		epoch:    set.Epoch,
		scale:    scale,
		interval: interval,
		running:  true,
		showGrid: true,
	}

	maxDist := 0.0
	for _, dt := range offsets {
		out, err := prop.Propagate(set, dt)
		if err != nil && !kinematics.IsPrecisionWarning(err) {
			return nil, err
		}
		f := frame{
			pos:  make([]star.Vec3, out.Len()),
			cols: make([]rl.Color, out.Len()),
		}
		for i, s := range out.Stars {
			f.pos[i] = s.Cartesian()
			c := pal.At(scale.Normalize(s.Distance))
			f.cols[i] = rl.NewColor(c.R, c.G, c.B, 255)
			if s.Distance > maxDist {
				maxDist = s.Distance
			}
		}
		app.frames = append(app.frames, f)
	}
	if maxDist <= 0 {
		maxDist = 1
	}
	app.worldScale = worldRadius / maxDist
	return app, nil
}

func initWindow(title string) {
	rl.InitWindow(1280, 720, title)
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// Run opens the window and blocks until it closes.
func (a *App) Run() {
	initWindow("stardrift")
	defer rl.CloseWindow()
	a.font = loadFont()
	a.resetCamera()
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
	}
}

func (a *App) resetCamera() {
	a.camera = rl.NewCamera3D(
		rl.NewVector3(0, 14, 38),
		rl.NewVector3(0, 0, 0),
		rl.NewVector3(0, 1, 0),
		45.0,
		rl.CameraPerspective,
	)
	a.camPosTarget = a.camera.Position
	a.camTgtTarget = a.camera.Target
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) {
		a.quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.running = !a.running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.frameIdx = 0
		a.acc = 0
		a.resetCamera()
	}
	if rl.IsKeyPressed(rl.KeyG) {
		a.showGrid = !a.showGrid
	}
	if rl.IsKeyPressed(rl.KeyRight) {
		a.running = false
		a.step(1)
	}
	if rl.IsKeyPressed(rl.KeyLeft) {
		a.running = false
		a.step(-1)
	}

	if a.running {
		a.acc += rl.GetFrameTime()
		if a.acc >= float32(a.interval.Seconds()) {
			a.acc = 0
			a.frameIdx = (a.frameIdx + 1) % len(a.frames)
		}
	}

	// Input moves the camera targets, inertia follows below.
	if rl.IsKeyDown(rl.KeyW) {
		a.camPosTarget.Y += 0.5
	}
	if rl.IsKeyDown(rl.KeyS) {
		a.camPosTarget.Y -= 0.5
	}
	if rl.IsKeyDown(rl.KeyA) {
		a.camPosTarget.X -= 0.5
	}
	if rl.IsKeyDown(rl.KeyD) {
		a.camPosTarget.X += 0.5
	}

	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		a.camPosTarget.X -= delta.X * 0.2
		a.camPosTarget.Y += delta.Y * 0.2
	}

	wheel := rl.GetMouseWheelMove()
	if wheel != 0 {
		zoom := float32(wheel) * 3.0
		diff := rl.Vector3Subtract(a.camTgtTarget, a.camPosTarget)
		dist := rl.Vector3Length(diff)
		if dist > 5.0 || zoom < 0 {
			dir := rl.Vector3Normalize(diff)
			a.camPosTarget = rl.Vector3Add(a.camPosTarget, rl.Vector3Scale(dir, zoom))
		}
	}

	lerp := 5.0 * rl.GetFrameTime()
	if lerp > 1.0 {
		lerp = 1.0
	}
	a.camera.Position = rl.Vector3Lerp(a.camera.Position, a.camPosTarget, lerp)
	a.camera.Target = rl.Vector3Lerp(a.camera.Target, a.camTgtTarget, lerp)
}

func (a *App) step(dir int) {
	a.frameIdx += dir
	if a.frameIdx < 0 {
		a.frameIdx = 0
	}
	if a.frameIdx >= len(a.frames) {
		a.frameIdx = len(a.frames) - 1
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)
	a.drawScene()
	a.drawHUD()
	rl.EndDrawing()
}

func (a *App) drawHUD() {
	a.drawText("stardrift", 30, 30, 24, ColSelect)
	cur := a.offsets[a.frameIdx]
	when := kinematics.Epoch(a.epoch, cur)
	a.drawText(fmt.Sprintf(":: t%+g yr (%s)", float64(cur), when.Format("2006-01-02")), 170, 34, 16, ColText)

	status := "RUNNING"
	col := ColSelect
	if !a.running {
		status = "PAUSED"
		col = ColTextDim
	}
	a.drawText(status, 1150, 30, 16, col)

	a.drawText(fmt.Sprintf("FRAME %d/%d   STARS %d   SCALE %s", a.frameIdx+1, len(a.frames), len(a.frames[0].pos), a.scale.String()), 30, 62, 14, ColText)
	a.drawText("[SPACE] PAUSE  [ARROWS] SCRUB  [R] RESET  [G] GRID  [Q] QUIT", 690, 680, 14, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 30, 680, 14, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
