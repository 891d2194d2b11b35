// Package svf provides a TPT state-variable filter producing simultaneous
// low-pass, band-pass and high-pass outputs from a single two-integrator
// loop.
package svf
