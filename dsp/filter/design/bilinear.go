package design

import (
	"math"

	"github.com/cwbudde/algo-filter/dsp/filter/biquad"
)

// F2S maps a frequency in Hz to the purely imaginary Laplace-domain point
// s = j*2*pi*freq.
func F2S(freqHz float64) complex128 {
	return complex(0, 2*math.Pi*freqHz)
}

// BilinearPoint maps one analog s-domain point to its z-domain image via
// the bilinear transform with k = 2*sampleRate:
//
//	z = (k + s) / (k - s)
func BilinearPoint(s complex128, sampleRate float64) complex128 {
	k := complex(2*sampleRate, 0)
	return (k + s) / (k - s)
}

// AnalogCoefficients describes a second-order analog prototype
//
//	H(s) = (B0 + B1*s + B2*s^2) / (A0 + A1*s + A2*s^2)
//
// Same six-field shape as a digital biquad, s-domain semantics. The
// expanded A0 term of the transform must be nonzero or [Bilinear] divides
// by zero; callers must supply a well-posed prototype.
type AnalogCoefficients struct {
	B0, B1, B2 float64
	A0, A1, A2 float64
}

// Bilinear converts an analog biquad prototype to digital coefficients by
// substituting s -> k*(1 - z^-1)/(1 + z^-1) with k = 2*sampleRate,
// algebraically expanded. The digital a0 is normalized to 1. A degenerate
// prototype (expanded a0 of zero) yields IEEE Inf/NaN coefficients, not an
// error.
func Bilinear(in AnalogCoefficients, sampleRate float64) biquad.Coefficients {
	k := sampleRate * 2
	k2 := k * k

	a0 := in.A0 + in.A1*k + in.A2*k2

	return biquad.Coefficients{
		B0: (in.B0 + in.B1*k + in.B2*k2) / a0,
		B1: (in.B0*2 - in.B2*2*k2) / a0,
		B2: (in.B0 - in.B1*k + in.B2*k2) / a0,
		A1: (in.A0*2 - in.A2*2*k2) / a0,
		A2: (in.A0 - in.A1*k + in.A2*k2) / a0,
	}
}
