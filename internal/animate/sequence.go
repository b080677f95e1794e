package animate

import (
	"time"

	"github.com/astrokit/stardrift/internal/kinematics"
	"github.com/astrokit/stardrift/internal/render"
)

// DefaultInterval is the playback delay between frames.
const DefaultInterval = 100 * time.Millisecond

// Sequence is a finished animation: ordered frozen frames plus the
// metadata a player needs. It is immutable once built and can be played
// any number of times.
type Sequence struct {
	frames   []render.Snapshot
	offsets  []kinematics.Years
	meanDist []float64
	interval time.Duration
	scale    render.ColorScale
	epoch    time.Time
}

func (s *Sequence) Len() int { return len(s.frames) }

// Frame returns the snapshot at index i in build order.
func (s *Sequence) Frame(i int) render.Snapshot { return s.frames[i] }

// Offset returns frame i's time offset from the base epoch.
func (s *Sequence) Offset(i int) kinematics.Years { return s.offsets[i] }

// Interval is the fixed delay between frames during playback.
func (s *Sequence) Interval() time.Duration { return s.interval }

// Scale is the color scale every frame was drawn with.
func (s *Sequence) Scale() render.ColorScale { return s.scale }

// Epoch is the observation instant of the original set.
func (s *Sequence) Epoch() time.Time { return s.epoch }

// Span is the total simulated time covered by the sequence.
func (s *Sequence) Span() kinematics.Years {
	if len(s.offsets) == 0 {
		return 0
	}
	return s.offsets[len(s.offsets)-1]
}

// MeanDistances returns the per-frame mean distance in parsecs, useful
// for drift charts. The returned slice is a copy.
func (s *Sequence) MeanDistances() []float64 {
	return append([]float64(nil), s.meanDist...)
}
