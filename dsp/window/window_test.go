package window

import (
	"math"
	"testing"
)

func TestGenerateLength(t *testing.T) {
	if Generate(TypeHann, 0) != nil {
		t.Error("zero length should return nil")
	}

	if Generate(TypeHann, -3) != nil {
		t.Error("negative length should return nil")
	}

	if got := len(Generate(TypeHann, 17)); got != 17 {
		t.Errorf("length = %d, want 17", got)
	}
}

func TestGenerateLengthOne(t *testing.T) {
	// A single coefficient sits at sample position 0, so it carries the
	// window's endpoint value, not its peak.
	if got := Generate(TypeHann, 1)[0]; got != 0 {
		t.Errorf("Hann endpoint = %v, want 0", got)
	}

	if got := Generate(TypeHamming, 1)[0]; math.Abs(got-0.08) > 1e-12 {
		t.Errorf("Hamming endpoint = %v, want 0.08", got)
	}

	if got := Generate(TypeRectangular, 1)[0]; got != 1 {
		t.Errorf("rectangular endpoint = %v, want 1", got)
	}
}

func TestGenerateSymmetry(t *testing.T) {
	types := []Type{TypeHann, TypeHamming, TypeBlackman, TypeBlackmanHarris4Term, TypeBlackmanNuttall}

	for _, typ := range types {
		w := Generate(typ, 33)
		for i := range len(w) / 2 {
			j := len(w) - 1 - i
			if math.Abs(w[i]-w[j]) > 1e-12 {
				t.Errorf("type %d: w[%d]=%v != w[%d]=%v", typ, i, w[i], j, w[j])
			}
		}
	}
}

func TestGenerateCenterValue(t *testing.T) {
	// Odd-length symmetric windows peak at the center sample; for the
	// alternating cosine-sum forms the peak is the sum of absolute
	// coefficient values.
	tests := []struct {
		typ    Type
		coeffs []float64
	}{
		{TypeHann, hannCoeffs},
		{TypeHamming, hammingCoeffs},
		{TypeBlackman, blackmanCoeffs},
		{TypeBlackmanNuttall, blackmanNuttallCoeffs},
	}

	for _, tt := range tests {
		w := Generate(tt.typ, 65)

		want := 0.0
		for _, c := range tt.coeffs {
			want += math.Abs(c)
		}

		if math.Abs(w[32]-want) > 1e-12 {
			t.Errorf("type %d: center = %v, want %v", tt.typ, w[32], want)
		}
	}
}

func TestRectangular(t *testing.T) {
	for _, v := range Generate(TypeRectangular, 8) {
		if v != 1 {
			t.Fatalf("rectangular window coefficient = %v, want 1", v)
		}
	}
}

func TestApply(t *testing.T) {
	buf := []float64{1, 1, 1, 1, 1}
	Apply(TypeHann, buf)

	want := Generate(TypeHann, 5)
	for i := range buf {
		if math.Abs(buf[i]-want[i]) > 1e-15 {
			t.Errorf("index %d: got %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestApplyCoefficientsErrors(t *testing.T) {
	if _, err := ApplyCoefficients([]float64{1, 2}, []float64{1}); err == nil {
		t.Error("expected error for mismatched lengths")
	}

	if err := ApplyCoefficientsInPlace([]float64{1, 2}, []float64{1}); err == nil {
		t.Error("expected error for mismatched lengths")
	}
}

func TestEquivalentNoiseBandwidth(t *testing.T) {
	if _, err := EquivalentNoiseBandwidth(nil); err == nil {
		t.Error("expected error for empty coefficients")
	}

	// Rectangular window has ENBW of exactly 1 bin.
	enbw, err := EquivalentNoiseBandwidth(Generate(TypeRectangular, 64))
	if err != nil {
		t.Fatalf("EquivalentNoiseBandwidth() error = %v", err)
	}

	if math.Abs(enbw-1) > 1e-12 {
		t.Errorf("rectangular ENBW = %v, want 1", enbw)
	}

	// Hann ENBW converges to 1.5 bins for long windows.
	enbw, err = EquivalentNoiseBandwidth(Generate(TypeHann, 4096))
	if err != nil {
		t.Fatalf("EquivalentNoiseBandwidth() error = %v", err)
	}

	if math.Abs(enbw-1.5) > 1e-2 {
		t.Errorf("hann ENBW = %v, want ~1.5", enbw)
	}
}
