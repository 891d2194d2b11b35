// Package design maps human-meaningful filter parameters (cutoff in Hz,
// smoothing time in seconds, normalized frequency) to the dimensionless
// per-sample coefficients consumed by the filter runtimes, and provides
// the analog-to-digital utilities: s-domain points, one-pole transfer
// functions and the bilinear transform of second-order analog prototypes.
//
// Everything here runs at configuration time; nothing allocates or
// belongs in the per-sample path.
package design
