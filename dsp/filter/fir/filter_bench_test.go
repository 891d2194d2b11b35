package fir

import (
	"fmt"
	"testing"
)

func BenchmarkProcessSample(b *testing.B) {
	for _, taps := range []int{8, 32, 128, 512} {
		b.Run(fmt.Sprintf("taps=%d", taps), func(b *testing.B) {
			coeffs := make([]float64, taps)
			for i := range coeffs {
				coeffs[i] = 1.0 / float64(taps)
			}

			f := New(coeffs)

			x := 1.0
			for b.Loop() {
				x = f.ProcessSample(x)
			}

			_ = x
		})
	}
}

func BenchmarkWindowedSincLowpass(b *testing.B) {
	for _, duration := range []float64{0.001, 0.01, 0.05} {
		b.Run(fmt.Sprintf("duration=%v", duration), func(b *testing.B) {
			var taps []float64
			for b.Loop() {
				taps = WindowedSincLowpass(1000, duration, 48000)
			}

			_ = taps
		})
	}
}
