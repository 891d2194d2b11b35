// Package window generates cosine-sum window coefficients (Hann, Hamming,
// Blackman variants) for FIR design and spectral analysis framing.
//
// All windows are generated in symmetric form: the cosine argument runs
// over n/(N-1), so the first and last coefficients are the window's edge
// values. This is the form required for linear-phase filter design.
package window
