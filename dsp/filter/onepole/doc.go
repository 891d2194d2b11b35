// Package onepole provides first-order recursive low-pass and high-pass
// filters in two realizations: the naive trailing-output form and the TPT
// (transposed topology) integrator form. Both realize
//
//	y[n] = y[n-1] + g*(x[n] - y[n-1])
//
// for the same coefficient g; the TPT form additionally stays stable when
// g is modulated between samples. The exported Process* kernels operate on
// caller-held state and are shared with the state-variable filter.
package onepole
