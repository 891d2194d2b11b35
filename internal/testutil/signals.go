// Package testutil provides deterministic test signals and tolerance
// helpers shared by the filter package tests.
package testutil

import (
	"math"
	"math/rand"
)

// Impulse returns a unit impulse of length n with the pulse at index 0.
func Impulse(n int) []float64 {
	out := make([]float64, n)
	if n > 0 {
		out[0] = 1
	}

	return out
}

// Step returns a constant signal of the given value.
func Step(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}

	return out
}

// Sine generates a deterministic sine wave sampled at sampleRate.
func Sine(freqHz, sampleRate, amplitude float64, n int) []float64 {
	out := make([]float64, n)

	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// Noise generates uniform white noise in [-amplitude, amplitude] from a
// fixed seed, so failures reproduce exactly.
func Noise(seed int64, amplitude float64, n int) []float64 {
	out := make([]float64, n)

	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}
