package cv

import (
	"math"

	"github.com/cwbudde/algo-filter/dsp/core"
)

// Mode selects how a LinearSmoother derives its per-sample increment.
type Mode int

const (
	// ConstantRate advances toward the target by a fixed increment per
	// sample; the transition duration grows with the distance.
	ConstantRate Mode = iota
	// ConstantTime scales the increment with the remaining distance so
	// the target is reached in the configured time regardless of how far
	// away it is.
	ConstantTime
)

// LinearSmoother ramps a control value linearly toward a target. The
// increment strategy is chosen at construction via [Mode]; both modes
// share the same state and processing step.
type LinearSmoother struct {
	ctx  core.Context
	mode Mode

	target  float64
	current float64

	time  float64 // smoothing time in seconds
	delta float64 // maximum change per sample
}

// NewConstantRate returns a smoother that moves at a fixed rate derived
// from the smoothing time.
func NewConstantRate(ctx core.Context) *LinearSmoother {
	return &LinearSmoother{ctx: ctx, mode: ConstantRate}
}

// NewConstantTime returns a smoother that completes every transition in
// the configured time.
func NewConstantTime(ctx core.Context) *LinearSmoother {
	return &LinearSmoother{ctx: ctx, mode: ConstantTime}
}

// Reset zeroes both the current and the target value.
func (s *LinearSmoother) Reset() {
	s.current = 0
	s.target = 0

	if s.mode == ConstantTime {
		s.updateDelta()
	}
}

// SetContext installs a new processing context and recomputes the
// per-sample increment from the configured smoothing time.
func (s *LinearSmoother) SetContext(ctx core.Context) {
	s.ctx = ctx
	s.SetTime(s.time)
}

// SetTime sets the smoothing time in seconds. The time must be strictly
// positive; zero yields the IEEE result of the division.
func (s *LinearSmoother) SetTime(timeSeconds float64) {
	s.time = timeSeconds
	s.updateDelta()
}

// SetTargetValue sets the value the smoother ramps toward.
func (s *LinearSmoother) SetTargetValue(v float64) {
	s.target = v

	if s.mode == ConstantTime {
		s.updateDelta()
	}
}

func (s *LinearSmoother) updateDelta() {
	switch s.mode {
	case ConstantTime:
		diff := math.Abs(s.target - s.current)
		s.delta = s.ctx.SamplePeriod / s.time * diff
	default:
		s.delta = s.ctx.SamplePeriod / s.time
	}
}

// Process advances the smoother by one sample and returns the new value.
// The change per step is clamped to the current delta.
func (s *LinearSmoother) Process() float64 {
	diff := s.target - s.current
	s.current += core.Clamp(diff, -s.delta, s.delta)

	return s.current
}

// ProcessTo updates the target and advances one step.
func (s *LinearSmoother) ProcessTo(target float64) float64 {
	s.SetTargetValue(target)
	return s.Process()
}

// Last returns the current smoothed value without advancing.
func (s *LinearSmoother) Last() float64 { return s.current }

// Target returns the configured target value.
func (s *LinearSmoother) Target() float64 { return s.target }

// Mode returns the increment strategy chosen at construction.
func (s *LinearSmoother) Mode() Mode { return s.mode }
