package svf

import (
	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/dsp/filter/design"
)

const (
	defaultCutoffHz = 100.0

	// minDamping bounds the damping reduction at full resonance. The
	// mapping is deliberately capped: resonance = 1 is a strongly
	// resonant peak, not self-oscillation.
	minDamping = 0.1
)

// Filter is a state-variable filter in TPT form: one two-integrator loop
// producing low-pass, band-pass and high-pass outputs simultaneously from
// one input, parameterized by cutoff frequency and resonance.
//
// Every Process* call advances the filter by exactly one sample and
// refreshes all three outputs. To read several outputs for the same input
// sample, call [Filter.ProcessAll] once and use the returned values (or
// the Last* accessors); calling two Process* methods in a row advances the
// filter twice.
type Filter struct {
	ctx core.Context

	g  float64 // integrator gain, from cutoff
	r  float64 // damping, from resonance
	g1 float64 // 2*r + g
	d  float64 // 1 / (1 + g1*g)

	s1, s2 float64

	hp, bp, lp float64

	frequency float64
	resonance float64
}

// New returns a state-variable filter at the default 100 Hz cutoff with
// zero resonance for the given context.
func New(ctx core.Context) *Filter {
	f := &Filter{ctx: ctx, frequency: defaultCutoffHz}
	f.SetCutoffFrequency(f.frequency)
	f.SetResonance(0)

	return f
}

// SetContext installs a new processing context and re-derives all
// coefficients from the stored cutoff and resonance.
func (f *Filter) SetContext(ctx core.Context) {
	f.ctx = ctx
	f.SetCutoffFrequency(f.frequency)
	f.SetResonance(f.resonance)
}

// SetCutoffFrequency stores the cutoff and recomputes the integrator gain.
func (f *Filter) SetCutoffFrequency(freqHz float64) {
	f.frequency = freqHz
	f.g = design.FrequencyToG(freqHz, f.ctx.SamplePeriod)
	f.updateCoefficients()
}

// SetResonance sets the resonance in [0, 1]; values outside the range are
// clamped, never rejected. Resonance maps linearly onto the internal
// damping range [minDamping, 1].
func (f *Filter) SetResonance(r float64) {
	f.resonance = core.Clamp(r, 0, 1)
	f.r = core.Lerp(1, minDamping, f.resonance)
	f.updateCoefficients()
}

func (f *Filter) updateCoefficients() {
	f.g1 = 2*f.r + f.g
	f.d = 1 / (1 + f.g1*f.g)
}

func (f *Filter) processInternal(x float64) {
	f.hp = (x - f.g1*f.s1 - f.s2) * f.d

	v1 := f.g * f.hp
	f.bp = v1 + f.s1
	f.s1 = f.bp + v1

	v2 := f.g * f.bp
	f.lp = v2 + f.s2
	f.s2 = f.lp + v2
}

// ProcessAll advances the filter by one sample and returns all three
// outputs for that sample.
func (f *Filter) ProcessAll(x float64) (lp, bp, hp float64) {
	f.processInternal(x)
	return f.lp, f.bp, f.hp
}

// ProcessLowPass advances the filter by one sample and returns the
// low-pass output.
func (f *Filter) ProcessLowPass(x float64) float64 {
	f.processInternal(x)
	return f.lp
}

// ProcessBandPass advances the filter by one sample and returns the
// band-pass output.
func (f *Filter) ProcessBandPass(x float64) float64 {
	f.processInternal(x)
	return f.bp
}

// ProcessHighPass advances the filter by one sample and returns the
// high-pass output.
func (f *Filter) ProcessHighPass(x float64) float64 {
	f.processInternal(x)
	return f.hp
}

// Reset zeroes the integrators and outputs without changing coefficients.
func (f *Filter) Reset() {
	f.s1, f.s2 = 0, 0
	f.hp, f.bp, f.lp = 0, 0, 0
}

// LastLowPass returns the most recent low-pass output without advancing.
func (f *Filter) LastLowPass() float64 { return f.lp }

// LastBandPass returns the most recent band-pass output without advancing.
func (f *Filter) LastBandPass() float64 { return f.bp }

// LastHighPass returns the most recent high-pass output without advancing.
func (f *Filter) LastHighPass() float64 { return f.hp }

// CutoffFrequency returns the configured cutoff in Hz.
func (f *Filter) CutoffFrequency() float64 { return f.frequency }

// Resonance returns the configured (clamped) resonance in [0, 1].
func (f *Filter) Resonance() float64 { return f.resonance }
