// Package animate turns a stellar state set into a playable trajectory
// sequence. The build is strictly sequential: one render to fix the
// color scale, then one propagation and one snapshot per time offset.
package animate

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/astrokit/stardrift/internal/kinematics"
	"github.com/astrokit/stardrift/internal/render"
	"github.com/astrokit/stardrift/internal/star"
)

// Animator builds sequences from a propagator and a renderer.
type Animator struct {
	Propagator kinematics.Propagator
	Renderer   *render.Renderer
	Interval   time.Duration
	Logger     *slog.Logger
}

func New(prop kinematics.Propagator, r *render.Renderer, logger *slog.Logger) *Animator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Animator{
		Propagator: prop,
		Renderer:   r,
		Interval:   DefaultInterval,
		Logger:     logger,
	}
}

// Animate renders the set once to fix the color scale, then walks the
// zero-anchored offsets: every frame propagates the ORIGINAL set by its
// own offset and mutates the frame's markers in place. Precision
// warnings from long offsets are logged and swallowed; any other
// propagation failure aborts the whole build, returning no partial
// sequence.
func (a *Animator) Animate(set star.Set, step kinematics.Years, steps int, opts render.Options) (*Sequence, error) {
	offsets, err := Offsets(steps, step)
	if err != nil {
		return nil, err
	}

	frame, err := a.Renderer.Render(set, opts)
	if err != nil {
		return nil, err
	}

	interval := a.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	seq := &Sequence{
		frames:   make([]render.Snapshot, 0, steps),
		offsets:  offsets,
		meanDist: make([]float64, 0, steps),
		interval: interval,
		scale:    frame.Scale(),
		epoch:    set.Epoch,
	}

	warned := 0
	for i, dt := range offsets {
		moved, err := a.Propagator.Propagate(set, dt)
		if err != nil {
			if !kinematics.IsPrecisionWarning(err) {
				return nil, fmt.Errorf("frame %d: %w", i, err)
			}
			warned++
		}

		lon, lat := render.SkyPositions(moved)
		frame.Sky().SetPositions(lon, lat)
		frame.Space().SetPositions(render.SpacePositions(moved))
		d := moved.Distances()
		frame.Sky().SetColors(d)
		frame.Space().SetColors(d)

		seq.frames = append(seq.frames, frame.Snapshot(frameLabel(set.Epoch, dt)))
		seq.meanDist = append(seq.meanDist, mean(d))
	}

	if warned > 0 {
		a.Logger.Debug("suppressed precision warnings", "frames", warned, "horizon_years", float64(kinematics.PrecisionHorizon))
	}
	return seq, nil
}

func frameLabel(epoch time.Time, dt kinematics.Years) string {
	return fmt.Sprintf("t+%g yr (%s)", float64(dt), kinematics.Epoch(epoch, dt).Format("2006-01-02"))
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
