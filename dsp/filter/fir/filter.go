package fir

import (
	"math"
	"math/cmplx"
)

// Filter is a direct-convolution FIR filter over a double-written circular
// history buffer. Each input sample is written to two mirrored positions
// of a 2N history, so the N-tap accumulation loop reads a contiguous,
// always-valid window with no modulo or branch per tap. That double write
// is the defining optimization of this structure.
type Filter struct {
	coeffs  []float64
	history []float64
	pos     int
}

// New creates a FIR filter from the given coefficient slice.
func New(coeffs []float64) *Filter {
	f := &Filter{}
	f.SetCoefficients(coeffs)

	return f
}

// SetCoefficients replaces the tap set. The coefficients are copied; the
// history buffer is reallocated to twice the tap count and zeroed. This is
// a configuration-time operation, never called from the sample path.
func (f *Filter) SetCoefficients(coeffs []float64) {
	f.coeffs = append([]float64(nil), coeffs...)
	f.history = make([]float64, 2*len(coeffs))
	f.pos = 0
}

// ProcessSample filters one input sample:
//
//	y[n] = sum_{i=0}^{N-1} c[i] * x[n-i]
//
// An empty tap set is a caller contract violation (the ring has no valid
// index to advance to).
func (f *Filter) ProcessSample(x float64) float64 {
	n := len(f.coeffs)
	base := f.pos + n

	// Mirrored write keeps history[base-i] valid for all i in [0, n).
	f.history[f.pos] = x
	f.history[base] = x

	var sum float64
	for i, c := range f.coeffs {
		sum += c * f.history[base-i]
	}

	f.pos++
	if f.pos >= n {
		f.pos = 0
	}

	return sum
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset zeroes the history buffer without touching the coefficients.
func (f *Filter) Reset() {
	for i := range f.history {
		f.history[i] = 0
	}

	f.pos = 0
}

// Order returns the filter order (len(coeffs) - 1).
func (f *Filter) Order() int {
	return len(f.coeffs) - 1
}

// GroupDelay returns the delay in samples a linear-phase tap set imposes
// on its output: (N-1)/2.
func (f *Filter) GroupDelay() float64 {
	return float64(len(f.coeffs)-1) / 2
}

// Coefficients returns a copy of the filter coefficients.
func (f *Filter) Coefficients() []float64 {
	return append([]float64(nil), f.coeffs...)
}

// Response computes the complex frequency response H(e^jw) at the given
// frequency (Hz) and sample rate (Hz). Offline analysis only.
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate

	var h complex128
	for k, c := range f.coeffs {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}

	return h
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate)))
}
