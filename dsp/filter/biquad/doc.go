// Package biquad provides second-order IIR filter sections in four
// interchangeable topologies and their cascade composition.
//
// All topologies realize the same transfer function
//
//	H(z) = (B0 + B1*z^-1 + B2*z^-2) / (1 + A1*z^-1 + A2*z^-2)
//
// and produce numerically equivalent output for the same coefficients and
// input sequence; they differ only in round-off behavior and in how they
// respond to coefficient changes between samples. The topology is selected
// at construction and never changes at runtime. [Chain] composes sections
// into higher-order filters.
//
// This package provides the processing runtime only. Coefficient
// derivation (one-pole g mapping, bilinear transform of analog prototypes)
// lives in dsp/filter/design.
package biquad
