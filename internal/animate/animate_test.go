package animate_test

import (
	"errors"
	"log/slog"
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/soniakeys/unit"

	"github.com/astrokit/stardrift/internal/animate"
	"github.com/astrokit/stardrift/internal/kinematics"
	"github.com/astrokit/stardrift/internal/render"
	"github.com/astrokit/stardrift/internal/star"
)

// stubPropagator wraps the linear propagator and fails on demand so the
// abort path can be observed.
type stubPropagator struct {
	calls  *int
	failAt int
	inner  kinematics.Propagator
}

func newStub(failAt int) *stubPropagator {
	calls := 0
	return &stubPropagator{calls: &calls, failAt: failAt, inner: kinematics.Linear{}}
}

func (s *stubPropagator) Propagate(set star.Set, dt kinematics.Years) (star.Set, error) {
	idx := *s.calls
	*s.calls++
	if s.failAt >= 0 && idx == s.failAt {
		return star.Set{}, &kinematics.PropagationError{Designation: "stub", Dt: dt, Reason: errors.New("induced failure")}
	}
	return s.inner.Propagate(set, dt)
}

func fullStar(name string, raDeg, decDeg, dist, rv float64) star.Star {
	return star.Star{
		Designation:    name,
		RA:             unit.AngleFromDeg(raDeg),
		Dec:            unit.AngleFromDeg(decDeg),
		Distance:       dist,
		PMRA:           unit.AngleFromSec(0.5),
		PMDec:          unit.AngleFromSec(-0.2),
		RadialVelocity: rv,
	}
}

func neighborhood() star.Set {
	return star.Set{
		Epoch: time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC),
		Stars: []star.Star{
			fullStar("a", 10, 45, 10, 100),
			fullStar("b", 200, -30, 20, 100),
			fullStar("c", 310, 5, 30, 100),
		},
	}
}

var _ = Describe("Offsets", func() {
	It("is zero-anchored with a constant step", func() {
		offsets, err := animate.Offsets(20, 1000)
		Expect(err).NotTo(HaveOccurred())
		Expect(offsets).To(HaveLen(20))
		Expect(offsets[0]).To(Equal(kinematics.Years(0)))
		for i := 1; i < len(offsets); i++ {
			Expect(offsets[i] - offsets[i-1]).To(Equal(kinematics.Years(1000)))
			Expect(offsets[i]).To(BeNumerically(">", offsets[i-1]))
		}
		Expect(offsets[19]).To(Equal(kinematics.Years(19000)))
	})

	It("rejects a non-positive step count", func() {
		_, err := animate.Offsets(0, 10)
		Expect(err).To(MatchError(animate.ErrInvalidSteps))
		_, err = animate.Offsets(-3, 10)
		Expect(err).To(MatchError(animate.ErrInvalidSteps))
	})

	It("rejects a malformed step size", func() {
		for _, step := range []float64{0, -1, math.NaN(), math.Inf(1)} {
			_, err := animate.Offsets(5, kinematics.Years(step))
			Expect(err).To(MatchError(animate.ErrInvalidStep))
		}
	})
})

var _ = Describe("Animator", func() {
	var (
		renderer *render.Renderer
		logger   *slog.Logger
	)

	BeforeEach(func() {
		renderer = render.New(40, 16, render.Viridis)
		logger = slog.New(slog.NewTextHandler(GinkgoWriter, nil))
	})

	It("builds one frame per offset", func() {
		anim := animate.New(kinematics.Linear{}, renderer, logger)
		seq, err := anim.Animate(neighborhood(), 1000, 20, render.Options{})
		Expect(err).NotTo(HaveOccurred())
		Expect(seq.Len()).To(Equal(20))
		Expect(seq.Offset(0)).To(Equal(kinematics.Years(0)))
		Expect(seq.Offset(19)).To(Equal(kinematics.Years(19000)))
		Expect(seq.Span()).To(Equal(kinematics.Years(19000)))
		Expect(seq.Scale()).To(Equal(render.ColorScale{Min: 10, Max: 30}))
		Expect(seq.Interval()).To(Equal(animate.DefaultInterval))
	})

	It("matches a plain render at frame zero", func() {
		set := neighborhood()
		anim := animate.New(kinematics.Linear{}, renderer, logger)
		seq, err := anim.Animate(set, 1000, 5, render.Options{})
		Expect(err).NotTo(HaveOccurred())

		frame, err := renderer.Render(set, render.Options{})
		Expect(err).NotTo(HaveOccurred())
		plain := frame.Snapshot("")

		Expect(seq.Frame(0).Sky.Plain()).To(Equal(plain.Sky.Plain()))
		Expect(seq.Frame(0).Space.Plain()).To(Equal(plain.Space.Plain()))
	})

	It("keeps the color scale fixed while stars drift out of range", func() {
		anim := animate.New(kinematics.Linear{}, renderer, logger)
		seq, err := anim.Animate(neighborhood(), 1000, 20, render.Options{})
		Expect(err).NotTo(HaveOccurred())

		Expect(seq.Scale()).To(Equal(render.ColorScale{Min: 10, Max: 30}))

		drift := seq.MeanDistances()
		Expect(drift).To(HaveLen(20))
		Expect(drift[19]).To(BeNumerically(">", drift[0]))
	})

	It("fails fast with no partial sequence", func() {
		stub := newStub(3)
		anim := animate.New(stub, renderer, logger)
		seq, err := anim.Animate(neighborhood(), 1, 10, render.Options{})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("frame 3"))
		Expect(seq).To(BeNil())
		Expect(*stub.calls).To(Equal(4))
	})

	It("reports a propagation failure for missing radial velocity", func() {
		set := neighborhood()
		noRV := fullStar("broken", 50, 0, 15, 0)
		noRV.RadialVelocity = math.NaN()
		set.Stars = append(set.Stars, noRV)

		anim := animate.New(kinematics.Linear{}, renderer, logger)
		seq, err := anim.Animate(set, 1000, 20, render.Options{})
		Expect(seq).To(BeNil())

		var perr *kinematics.PropagationError
		Expect(errors.As(err, &perr)).To(BeTrue(), "got %v", err)
	})

	It("validates the step count before any propagation", func() {
		stub := newStub(-1)
		anim := animate.New(stub, renderer, logger)
		_, err := anim.Animate(neighborhood(), 10, 0, render.Options{})
		Expect(err).To(MatchError(animate.ErrInvalidSteps))
		Expect(*stub.calls).To(BeZero())
	})

	It("rejects an empty set without explicit bounds", func() {
		anim := animate.New(kinematics.Linear{}, renderer, logger)
		_, err := anim.Animate(star.Set{}, 10, 5, render.Options{})
		Expect(err).To(MatchError(star.ErrEmptySet))
	})

	It("swallows precision warnings beyond the horizon", func() {
		anim := animate.New(kinematics.Linear{}, renderer, logger)
		seq, err := anim.Animate(neighborhood(), 1000, 3, render.Options{})
		Expect(err).NotTo(HaveOccurred())
		Expect(seq.Len()).To(Equal(3))
	})

	It("replays identically", func() {
		anim := animate.New(kinematics.Linear{}, renderer, logger)
		seq, err := anim.Animate(neighborhood(), 500, 4, render.Options{})
		Expect(err).NotTo(HaveOccurred())

		for i := 0; i < seq.Len(); i++ {
			first := seq.Frame(i)
			second := seq.Frame(i)
			Expect(second.Sky.Plain()).To(Equal(first.Sky.Plain()))
			Expect(second.Label).To(Equal(first.Label))
		}
	})

	It("honors an explicit scale and interval", func() {
		anim := animate.New(kinematics.Linear{}, renderer, logger)
		anim.Interval = 250 * time.Millisecond
		scale := &render.ColorScale{Min: 1, Max: 100}
		seq, err := anim.Animate(neighborhood(), 100, 2, render.Options{Scale: scale})
		Expect(err).NotTo(HaveOccurred())
		Expect(seq.Scale()).To(Equal(*scale))
		Expect(seq.Interval()).To(Equal(250 * time.Millisecond))
	})
})
