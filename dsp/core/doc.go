// Package core provides the processing [Context] shared by all filters and
// a small set of scalar numeric helpers (clamping, interpolation, sign and
// dB conversions) used throughout the module.
package core
