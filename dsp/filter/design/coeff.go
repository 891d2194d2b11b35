package design

import "math"

// NormFrequencyToG converts a normalized frequency (cutoff/sampleRate,
// useful range (0, 0.5)) to the one-pole filter coefficient
//
//	g = f*pi / (f*pi + 1)
//
// This is a first-order approximation without tan pre-warping; it is
// accurate while the cutoff sits well below Nyquist and is kept as-is
// because downstream tuning depends on its exact response curve.
func NormFrequencyToG(freq float64) float64 {
	g := freq * math.Pi
	return g / (g + 1)
}

// FrequencyToG converts a cutoff frequency in Hz to the one-pole filter
// coefficient g for the given sample period (1/sampleRate).
func FrequencyToG(freqHz, samplePeriod float64) float64 {
	return NormFrequencyToG(freqHz * samplePeriod)
}

// TimeToG converts a one-pole smoothing time constant in seconds to the
// filter coefficient g. Shorter times produce faster responses.
//
// time must be strictly positive; time = 0 yields the IEEE result of the
// division (no error is raised).
func TimeToG(timeSeconds, samplePeriod float64) float64 {
	freq := 0.5 * samplePeriod / timeSeconds
	return NormFrequencyToG(freq)
}
