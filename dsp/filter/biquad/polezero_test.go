package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestPolesOfKnownDenominator(t *testing.T) {
	// 1 - 0.9*z^-1 + 0.2*z^-2 has real poles at 0.5 and 0.4.
	c := Coefficients{B0: 1, A1: -0.9, A2: 0.2}

	poles := c.Poles()

	got := []float64{real(poles[0]), real(poles[1])}
	if got[0] < got[1] {
		got[0], got[1] = got[1], got[0]
	}

	if math.Abs(got[0]-0.5) > 1e-12 || math.Abs(got[1]-0.4) > 1e-12 {
		t.Fatalf("poles = %v, want 0.5 and 0.4", got)
	}

	if imag(poles[0]) != 0 || imag(poles[1]) != 0 {
		t.Fatalf("expected real poles, got %v", poles)
	}
}

func TestComplexPolePair(t *testing.T) {
	// 1 - z^-1 + 0.5*z^-2 has poles 0.5 +/- 0.5i, radius sqrt(0.5).
	c := Coefficients{B0: 1, A1: -1, A2: 0.5}

	poles := c.Poles()
	for _, p := range poles {
		if math.Abs(cmplx.Abs(p)-math.Sqrt(0.5)) > 1e-12 {
			t.Fatalf("pole radius = %v, want sqrt(0.5)", cmplx.Abs(p))
		}
	}

	if !c.IsStable() {
		t.Fatal("section with pole radius sqrt(0.5) must report stable")
	}
}

func TestIsStableRejectsUnitCircle(t *testing.T) {
	// A2 = 1 puts the pole pair exactly on the unit circle.
	c := Coefficients{B0: 1, A1: 0, A2: 1}
	if c.IsStable() {
		t.Fatal("poles on the unit circle must not report stable")
	}
}

func TestZerosDegenerate(t *testing.T) {
	// B0 = 0 degrades the numerator to first order.
	c := Coefficients{B0: 0, B1: 1, B2: -0.5}

	zeros := c.Zeros()
	if math.Abs(real(zeros[0])-0.5) > 1e-12 || zeros[1] != 0 {
		t.Fatalf("zeros = %v, want [0.5, 0]", zeros)
	}

	// All-zero numerator has no roots.
	c = Coefficients{}
	if z := c.Zeros(); z != ([2]complex128{}) {
		t.Fatalf("zeros of zero polynomial = %v, want zero value", z)
	}
}
