package animate

import (
	"errors"
	"math"

	"github.com/astrokit/stardrift/internal/kinematics"
)

var (
	// ErrInvalidSteps rejects a non-positive frame count.
	ErrInvalidSteps = errors.New("animate: step count must be positive")

	// ErrInvalidStep rejects a step size that is not a positive finite
	// number of years.
	ErrInvalidStep = errors.New("animate: step size must be positive and finite")
)

// Offsets builds the zero-anchored time offset sequence: element i is
// i*step. The first frame always shows the original epoch, and every
// propagation measures from that epoch rather than from the previous
// frame, so numerical error never accumulates across frames.
func Offsets(steps int, step kinematics.Years) ([]kinematics.Years, error) {
	if steps <= 0 {
		return nil, ErrInvalidSteps
	}
	if f := float64(step); math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return nil, ErrInvalidStep
	}
	out := make([]kinematics.Years, steps)
	for i := range out {
		out[i] = kinematics.Years(i) * step
	}
	return out, nil
}
