package biquad

// ImpulseResponse computes n samples of the section's impulse response.
// The section state is saved and restored, so the call does not disturb a
// running filter.
func (s *DirectForm1) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	saved := s.State()
	savedY := s.y
	ir := captureImpulse(s, n)
	s.SetState(saved)
	s.y = savedY

	return ir
}

// ImpulseResponse computes n samples of the section's impulse response.
// The section state is saved and restored.
func (s *DirectForm2) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	saved := s.State()
	savedY := s.y
	ir := captureImpulse(s, n)
	s.SetState(saved)
	s.y = savedY

	return ir
}

// ImpulseResponse computes n samples of the section's impulse response.
// The section state is saved and restored.
func (s *TransposedDirectForm1) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	saved := s.State()
	savedY := s.y
	ir := captureImpulse(s, n)
	s.SetState(saved)
	s.y = savedY

	return ir
}

// ImpulseResponse computes n samples of the section's impulse response.
// The section state is saved and restored.
func (s *TransposedDirectForm2) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	saved := s.State()
	savedY := s.y
	ir := captureImpulse(s, n)
	s.SetState(saved)
	s.y = savedY

	return ir
}

func captureImpulse(s Section, n int) []float64 {
	s.Reset()

	ir := make([]float64, n)

	ir[0] = s.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = s.ProcessSample(0)
	}

	return ir
}
