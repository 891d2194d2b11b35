package fir

import (
	"math"

	"github.com/cwbudde/algo-filter/dsp/window"
)

// WindowedSincLowpass synthesizes a linear-phase low-pass tap set of
// duration seconds at the given sample rate. The kernel length is
// floor(sampleRate*duration), forced odd so the group delay is exactly
// duration/2. A Blackman-Nuttall window shapes the sinc kernel and the
// taps are normalized to sum to exactly 1 (unity DC gain).
//
// Returns nil when the requested duration yields no taps.
func WindowedSincLowpass(cutoffHz, durationSeconds, sampleRate float64) []float64 {
	n := int(sampleRate * durationSeconds)
	if n%2 == 0 {
		n--
	}

	if n <= 0 {
		return nil
	}

	m := float64(n - 1)
	wc := cutoffHz / sampleRate * 2 * math.Pi

	coeffs := window.Generate(window.TypeBlackmanNuttall, n)

	sum := 0.0

	for i := range coeffs {
		x := (float64(i) - m*0.5) * wc

		sinc := 1.0
		if x != 0 {
			sinc = math.Sin(x) / x
		}

		coeffs[i] *= sinc
		sum += coeffs[i]
	}

	for i := range coeffs {
		coeffs[i] /= sum
	}

	return coeffs
}
