// Package fir provides a direct-form FIR filter runtime and a
// windowed-sinc low-pass coefficient generator.
//
// A [Filter] applies a set of pre-computed coefficients to an input stream
// using a double-written circular history buffer, which keeps the tap
// accumulation loop free of per-tap wrapping. The history allocation
// happens only in SetCoefficients; ProcessSample is allocation-free. For
// very long kernels, FFT-based partitioned convolution is the better tool;
// this runtime targets audio-rate kernels up to a few thousand taps.
package fir
