package biquad

import (
	"math"
	"math/rand"
	"testing"
)

// testCoeffs is a stable low-pass-ish section used across tests
// (both poles at radius sqrt(0.2) < 1).
var testCoeffs = Coefficients{B0: 0.2, B1: 0.4, B2: 0.2, A1: -0.3, A2: 0.2}

func allTopologies() []Topology {
	return []Topology{
		DirectForm1Topology,
		DirectForm2Topology,
		TransposedDirectForm1Topology,
		TransposedDirectForm2Topology,
	}
}

func TestTopologyEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	input := make([]float64, 4096)
	for i := range input {
		input[i] = rng.Float64()*2 - 1
	}

	ref := New(DirectForm1Topology, testCoeffs)

	want := make([]float64, len(input))
	for i, x := range input {
		want[i] = ref.ProcessSample(x)
	}

	for _, topo := range allTopologies()[1:] {
		s := New(topo, testCoeffs)
		for i, x := range input {
			got := s.ProcessSample(x)

			diff := math.Abs(got - want[i])
			scale := math.Max(math.Abs(want[i]), 1)
			if diff/scale > 1e-9 {
				t.Fatalf("%v: sample %d: got %v, want %v (rel diff %v)",
					topo, i, got, want[i], diff/scale)
			}
		}
	}
}

func TestNewTopologySelection(t *testing.T) {
	if _, ok := New(DirectForm1Topology, testCoeffs).(*DirectForm1); !ok {
		t.Error("New(DirectForm1Topology) did not return *DirectForm1")
	}

	if _, ok := New(DirectForm2Topology, testCoeffs).(*DirectForm2); !ok {
		t.Error("New(DirectForm2Topology) did not return *DirectForm2")
	}

	if _, ok := New(TransposedDirectForm1Topology, testCoeffs).(*TransposedDirectForm1); !ok {
		t.Error("New(TransposedDirectForm1Topology) did not return *TransposedDirectForm1")
	}

	if _, ok := New(TransposedDirectForm2Topology, testCoeffs).(*TransposedDirectForm2); !ok {
		t.Error("New(TransposedDirectForm2Topology) did not return *TransposedDirectForm2")
	}
}

func TestResetIdempotence(t *testing.T) {
	for _, topo := range allTopologies() {
		s := New(topo, testCoeffs)

		for i := range 64 {
			s.ProcessSample(math.Sin(float64(i) / 3))
		}

		s.Reset()

		for i := range 32 {
			if got := s.ProcessSample(0); got != 0 {
				t.Fatalf("%v: output %v after reset with zero input (sample %d)", topo, got, i)
			}
		}
	}
}

func TestLastDoesNotAdvance(t *testing.T) {
	for _, topo := range allTopologies() {
		s := New(topo, testCoeffs)

		y := s.ProcessSample(1)
		for range 8 {
			if got := s.Last(); got != y {
				t.Fatalf("%v: Last() = %v, want %v", topo, got, y)
			}
		}
	}
}

func TestSetCoefficientsReplacesWholesale(t *testing.T) {
	s := NewTransposedDirectForm2(testCoeffs)
	s.ProcessSample(1)

	state := s.State()
	s.SetCoefficients(Identity())

	if s.Coefficients != Identity() {
		t.Fatalf("Coefficients = %+v, want identity", s.Coefficients)
	}

	if s.State() != state {
		t.Fatal("SetCoefficients must not disturb filter state")
	}
}

func TestIdentityPassThrough(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, topo := range allTopologies() {
		s := New(topo, Identity())
		for range 256 {
			x := rng.Float64()*2 - 1
			if got := s.ProcessSample(x); got != x {
				t.Fatalf("%v: identity section altered %v to %v", topo, x, got)
			}
		}
	}
}

func TestProcessBlockMatchesSample(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	input := make([]float64, 512)
	for i := range input {
		input[i] = rng.Float64()*2 - 1
	}

	for _, topo := range allTopologies() {
		ref := New(topo, testCoeffs)
		blk := New(topo, testCoeffs)

		want := make([]float64, len(input))
		for i, x := range input {
			want[i] = ref.ProcessSample(x)
		}

		got := append([]float64(nil), input...)
		blk.ProcessBlock(got)

		for i := range got {
			if math.Abs(got[i]-want[i]) > 1e-12 {
				t.Fatalf("%v: sample %d: block %v vs sample %v", topo, i, got[i], want[i])
			}
		}

		if blk.Last() != got[len(got)-1] {
			t.Fatalf("%v: Last() = %v, want %v", topo, blk.Last(), got[len(got)-1])
		}
	}
}

func TestStateRoundTrip(t *testing.T) {
	s := NewTransposedDirectForm2(testCoeffs)
	for i := range 48 {
		s.ProcessSample(math.Sin(float64(i) / 5))
	}

	saved := s.State()
	next := s.ProcessSample(0.5)

	s.SetState(saved)
	if got := s.ProcessSample(0.5); got != next {
		t.Fatalf("replayed sample = %v, want %v", got, next)
	}
}

func TestTopologyString(t *testing.T) {
	if DirectForm1Topology.String() != "direct_form_1" {
		t.Errorf("unexpected name %q", DirectForm1Topology.String())
	}

	if Topology(99).String() != "unknown" {
		t.Errorf("unexpected name %q for invalid topology", Topology(99).String())
	}
}
