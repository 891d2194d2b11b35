package onepole

import (
	"math"

	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/dsp/filter/design"
)

const defaultCutoffHz = 100.0

// ProcessLP advances the naive one-pole low-pass recurrence
//
//	y[n] = y[n-1] + g*(x[n] - y[n-1])
//
// by one sample. y is the trailing output state.
func ProcessLP(x float64, y *float64, g float64) float64 {
	*y += (x - *y) * g
	return *y
}

// ProcessLPTPT advances the TPT (transposed topology) one-pole low-pass by
// one sample. z1 is the integrator state. Unlike the naive form, the
// integrator state stays consistent when G changes between samples, which
// is the reason this topology exists.
func ProcessLPTPT(x float64, z1 *float64, g float64) float64 {
	v := (x - *z1) * g
	y := v + *z1
	*z1 = v + y

	return y
}

// ProcessHPTPT advances the complementary TPT one-pole high-pass: the
// input minus its low-pass component.
func ProcessHPTPT(x float64, z1 *float64, g float64) float64 {
	return x - ProcessLPTPT(x, z1, g)
}

// ProcessHPTPT2 advances the explicit two-coefficient TPT high-pass form.
func ProcessHPTPT2(x float64, z1 *float64, g, g2 float64) float64 {
	y := (x - *z1) * g
	*z1 += y * g2

	return y
}

// NaiveLowPass is the simplest recursive one-pole low-pass: it stores a
// single trailing output sample. It is fine for static or slowly varying
// coefficients; retuning it mid-stream produces transients. Use [LowPass]
// when the cutoff is modulated per sample.
type NaiveLowPass struct {
	ctx       core.Context
	g         float64
	y         float64
	frequency float64
}

// NewNaiveLowPass returns a naive one-pole low-pass at the default 100 Hz
// cutoff for the given context.
func NewNaiveLowPass(ctx core.Context) *NaiveLowPass {
	f := &NaiveLowPass{ctx: ctx, frequency: defaultCutoffHz}
	f.SetCutoffFrequency(f.frequency)

	return f
}

// SetContext installs a new processing context and re-derives the
// coefficient from the stored cutoff frequency.
func (f *NaiveLowPass) SetContext(ctx core.Context) {
	f.ctx = ctx
	f.SetCutoffFrequency(f.frequency)
}

// SetCutoffFrequency stores the cutoff and recomputes the coefficient.
func (f *NaiveLowPass) SetCutoffFrequency(freqHz float64) {
	f.frequency = freqHz
	f.g = design.FrequencyToG(freqHz, f.ctx.SamplePeriod)
}

// SetTime configures the filter as a smoother with the given time constant
// in seconds. The time must be strictly positive.
func (f *NaiveLowPass) SetTime(timeSeconds float64) {
	f.g = design.TimeToG(timeSeconds, f.ctx.SamplePeriod)
}

// ProcessSample advances the filter by one sample and returns the output.
func (f *NaiveLowPass) ProcessSample(x float64) float64 {
	return ProcessLP(x, &f.y, f.g)
}

// Reset zeroes the state without changing the coefficients.
func (f *NaiveLowPass) Reset() { f.y = 0 }

// Last returns the most recent output without advancing state.
func (f *NaiveLowPass) Last() float64 { return f.y }

// CutoffFrequency returns the configured cutoff in Hz.
func (f *NaiveLowPass) CutoffFrequency() float64 { return f.frequency }

// LowPass is a one-pole low-pass in TPT form. Its integrator state stays
// consistent under per-sample cutoff modulation.
type LowPass struct {
	ctx       core.Context
	g         float64
	z1        float64
	y         float64
	frequency float64
}

// NewLowPass returns a TPT one-pole low-pass at the default 100 Hz cutoff
// for the given context.
func NewLowPass(ctx core.Context) *LowPass {
	f := &LowPass{ctx: ctx, frequency: defaultCutoffHz}
	f.SetCutoffFrequency(f.frequency)

	return f
}

// SetContext installs a new processing context and re-derives the
// coefficient from the stored cutoff frequency.
func (f *LowPass) SetContext(ctx core.Context) {
	f.ctx = ctx
	f.SetCutoffFrequency(f.frequency)
}

// SetCutoffFrequency stores the cutoff and recomputes the coefficient.
func (f *LowPass) SetCutoffFrequency(freqHz float64) {
	f.frequency = freqHz
	f.g = design.FrequencyToG(freqHz, f.ctx.SamplePeriod)
}

// ProcessSample advances the filter by one sample and returns the output.
func (f *LowPass) ProcessSample(x float64) float64 {
	f.y = ProcessLPTPT(x, &f.z1, f.g)
	return f.y
}

// Reset zeroes the integrator without changing the coefficients.
func (f *LowPass) Reset() {
	f.z1 = 0
	f.y = 0
}

// Last returns the most recent output without advancing state.
func (f *LowPass) Last() float64 { return f.y }

// CutoffFrequency returns the configured cutoff in Hz.
func (f *LowPass) CutoffFrequency() float64 { return f.frequency }

// Transfer evaluates the analog prototype response wc/(wc + s) of the
// configured filter at the query frequency. Offline analysis only; the
// filter state is untouched.
func (f *LowPass) Transfer(freqHz float64) complex128 {
	wc := complex(2*math.Pi*f.frequency, 0)
	return design.TransferLP1(wc, design.F2S(freqHz))
}

// HighPass is a one-pole high-pass in TPT form, computed as the input
// minus its low-pass component.
type HighPass struct {
	ctx       core.Context
	g         float64
	z1        float64
	y         float64
	frequency float64
}

// NewHighPass returns a TPT one-pole high-pass at the default 100 Hz
// cutoff for the given context.
func NewHighPass(ctx core.Context) *HighPass {
	f := &HighPass{ctx: ctx, frequency: defaultCutoffHz}
	f.SetCutoffFrequency(f.frequency)

	return f
}

// SetContext installs a new processing context and re-derives the
// coefficient from the stored cutoff frequency.
func (f *HighPass) SetContext(ctx core.Context) {
	f.ctx = ctx
	f.SetCutoffFrequency(f.frequency)
}

// SetCutoffFrequency stores the cutoff and recomputes the coefficient.
func (f *HighPass) SetCutoffFrequency(freqHz float64) {
	f.frequency = freqHz
	f.g = design.FrequencyToG(freqHz, f.ctx.SamplePeriod)
}

// ProcessSample advances the filter by one sample and returns the output.
func (f *HighPass) ProcessSample(x float64) float64 {
	f.y = ProcessHPTPT(x, &f.z1, f.g)
	return f.y
}

// Reset zeroes the integrator without changing the coefficients.
func (f *HighPass) Reset() {
	f.z1 = 0
	f.y = 0
}

// Last returns the most recent output without advancing state.
func (f *HighPass) Last() float64 { return f.y }

// CutoffFrequency returns the configured cutoff in Hz.
func (f *HighPass) CutoffFrequency() float64 { return f.frequency }

// Transfer evaluates the analog prototype response s/(wc + s) of the
// configured filter at the query frequency. Offline analysis only.
func (f *HighPass) Transfer(freqHz float64) complex128 {
	wc := complex(2*math.Pi*f.frequency, 0)
	return design.TransferHP1(wc, design.F2S(freqHz))
}
