package biquad

// Topology identifies the state realization of a second-order section.
// All four realize the same transfer function; they differ in round-off
// behavior and in how they respond to coefficient changes between samples.
// The transposed forms accumulate partial sums and tolerate per-sample
// coefficient modulation; the direct forms store raw past inputs/outputs
// and produce transients when retuned mid-stream.
type Topology int

const (
	DirectForm1Topology Topology = iota
	DirectForm2Topology
	TransposedDirectForm1Topology
	TransposedDirectForm2Topology
)

func (t Topology) String() string {
	switch t {
	case DirectForm1Topology:
		return "direct_form_1"
	case DirectForm2Topology:
		return "direct_form_2"
	case TransposedDirectForm1Topology:
		return "transposed_direct_form_1"
	case TransposedDirectForm2Topology:
		return "transposed_direct_form_2"
	default:
		return "unknown"
	}
}

// Section is the contract shared by all biquad topologies. The topology is
// fixed at construction; it never changes at runtime.
//
// ProcessSample advances the section by exactly one sample. Feeding samples
// from multiple goroutines to the same section is undefined; sections do no
// internal locking.
type Section interface {
	ProcessSample(x float64) float64
	ProcessBlock(buf []float64)
	SetCoefficients(c Coefficients)
	Reset()
	Last() float64
	Response(freqHz, sampleRate float64) complex128
}

// New returns a zero-state section of the requested topology. Use the
// concrete constructors (e.g. [NewTransposedDirectForm2]) when the topology
// is known at compile time.
func New(t Topology, c Coefficients) Section {
	switch t {
	case DirectForm1Topology:
		return NewDirectForm1(c)
	case DirectForm2Topology:
		return NewDirectForm2(c)
	case TransposedDirectForm1Topology:
		return NewTransposedDirectForm1(c)
	default:
		return NewTransposedDirectForm2(c)
	}
}

// DirectForm1 keeps two input and two output delays:
//
//	y = B0*x + B1*x1 + B2*x2 - A1*y1 - A2*y2
type DirectForm1 struct {
	Coefficients

	x1, x2 float64
	y1, y2 float64
	y      float64
}

// NewDirectForm1 returns a Direct Form 1 section with zero state.
func NewDirectForm1(c Coefficients) *DirectForm1 {
	return &DirectForm1{Coefficients: c}
}

// ProcessSample filters one input sample and returns the output.
func (s *DirectForm1) ProcessSample(x float64) float64 {
	y := s.B0*x + s.B1*s.x1 + s.B2*s.x2 - s.A1*s.y1 - s.A2*s.y2
	s.x2, s.x1 = s.x1, x
	s.y2, s.y1 = s.y1, y
	s.y = y

	return y
}

// ProcessBlock filters a block of samples in-place.
func (s *DirectForm1) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = s.ProcessSample(x)
	}
}

// SetCoefficients replaces all coefficients at once.
func (s *DirectForm1) SetCoefficients(c Coefficients) { s.Coefficients = c }

// Reset clears the delay lines without touching the coefficients.
func (s *DirectForm1) Reset() {
	s.x1, s.x2, s.y1, s.y2, s.y = 0, 0, 0, 0, 0
}

// Last returns the most recent output without advancing state.
func (s *DirectForm1) Last() float64 { return s.y }

// State returns the delay-line state [x1, x2, y1, y2].
func (s *DirectForm1) State() [4]float64 {
	return [4]float64{s.x1, s.x2, s.y1, s.y2}
}

// SetState restores a previously saved delay-line state.
func (s *DirectForm1) SetState(state [4]float64) {
	s.x1, s.x2, s.y1, s.y2 = state[0], state[1], state[2], state[3]
}

// DirectForm2 keeps two shared delay states:
//
//	w = x - A1*v1 - A2*v2
//	y = B0*w + B1*v1 + B2*v2
type DirectForm2 struct {
	Coefficients

	v1, v2 float64
	y      float64
}

// NewDirectForm2 returns a Direct Form 2 section with zero state.
func NewDirectForm2(c Coefficients) *DirectForm2 {
	return &DirectForm2{Coefficients: c}
}

// ProcessSample filters one input sample and returns the output.
func (s *DirectForm2) ProcessSample(x float64) float64 {
	w := x - s.A1*s.v1 - s.A2*s.v2
	y := s.B0*w + s.B1*s.v1 + s.B2*s.v2
	s.v2, s.v1 = s.v1, w
	s.y = y

	return y
}

// ProcessBlock filters a block of samples in-place.
func (s *DirectForm2) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = s.ProcessSample(x)
	}
}

// SetCoefficients replaces all coefficients at once.
func (s *DirectForm2) SetCoefficients(c Coefficients) { s.Coefficients = c }

// Reset clears the delay line without touching the coefficients.
func (s *DirectForm2) Reset() {
	s.v1, s.v2, s.y = 0, 0, 0
}

// Last returns the most recent output without advancing state.
func (s *DirectForm2) Last() float64 { return s.y }

// State returns the delay-line state [v1, v2].
func (s *DirectForm2) State() [2]float64 {
	return [2]float64{s.v1, s.v2}
}

// SetState restores a previously saved delay-line state.
func (s *DirectForm2) SetState(state [2]float64) {
	s.v1, s.v2 = state[0], state[1]
}

// TransposedDirectForm1 keeps four accumulator states:
//
//	y  = s0 + s2 + B0*x
//	s0 = s1 + B1*x
//	s1 = B2*x
//	s2 = s3 - A1*y
//	s3 = -A2*y
type TransposedDirectForm1 struct {
	Coefficients

	s0, s1, s2, s3 float64
	y              float64
}

// NewTransposedDirectForm1 returns a Transposed Direct Form 1 section with
// zero state.
func NewTransposedDirectForm1(c Coefficients) *TransposedDirectForm1 {
	return &TransposedDirectForm1{Coefficients: c}
}

// ProcessSample filters one input sample and returns the output.
func (s *TransposedDirectForm1) ProcessSample(x float64) float64 {
	y := s.s0 + s.s2 + s.B0*x
	s.s0 = s.s1 + s.B1*x
	s.s1 = s.B2 * x
	s.s2 = s.s3 - s.A1*y
	s.s3 = -s.A2 * y
	s.y = y

	return y
}

// ProcessBlock filters a block of samples in-place.
func (s *TransposedDirectForm1) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = s.ProcessSample(x)
	}
}

// SetCoefficients replaces all coefficients at once.
func (s *TransposedDirectForm1) SetCoefficients(c Coefficients) { s.Coefficients = c }

// Reset clears the accumulators without touching the coefficients.
func (s *TransposedDirectForm1) Reset() {
	s.s0, s.s1, s.s2, s.s3, s.y = 0, 0, 0, 0, 0
}

// Last returns the most recent output without advancing state.
func (s *TransposedDirectForm1) Last() float64 { return s.y }

// State returns the accumulator state [s0, s1, s2, s3].
func (s *TransposedDirectForm1) State() [4]float64 {
	return [4]float64{s.s0, s.s1, s.s2, s.s3}
}

// SetState restores a previously saved accumulator state.
func (s *TransposedDirectForm1) SetState(state [4]float64) {
	s.s0, s.s1, s.s2, s.s3 = state[0], state[1], state[2], state[3]
}

// TransposedDirectForm2 keeps two accumulator states:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
//
// This is the canonical choice for audio work: two states, good round-off
// behavior and stable under per-sample coefficient modulation.
type TransposedDirectForm2 struct {
	Coefficients

	d0, d1 float64
	y      float64
}

// NewTransposedDirectForm2 returns a Transposed Direct Form 2 section with
// zero state.
func NewTransposedDirectForm2(c Coefficients) *TransposedDirectForm2 {
	return &TransposedDirectForm2{Coefficients: c}
}

// ProcessSample filters one input sample and returns the output.
func (s *TransposedDirectForm2) ProcessSample(x float64) float64 {
	y := s.B0*x + s.d0
	s.d0 = s.B1*x - s.A1*y + s.d1
	s.d1 = s.B2*x - s.A2*y
	s.y = y

	return y
}

// ProcessBlock filters a block of samples in-place. Zero-alloc.
func (s *TransposedDirectForm2) ProcessBlock(buf []float64) {
	b0, b1, b2 := s.B0, s.B1, s.B2
	a1, a2 := s.A1, s.A2
	d0, d1 := s.d0, s.d1

	for i, x := range buf {
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	s.d0, s.d1 = d0, d1
	if len(buf) > 0 {
		s.y = buf[len(buf)-1]
	}
}

// SetCoefficients replaces all coefficients at once.
func (s *TransposedDirectForm2) SetCoefficients(c Coefficients) { s.Coefficients = c }

// Reset clears the accumulators without touching the coefficients.
func (s *TransposedDirectForm2) Reset() {
	s.d0, s.d1, s.y = 0, 0, 0
}

// Last returns the most recent output without advancing state.
func (s *TransposedDirectForm2) Last() float64 { return s.y }

// State returns the accumulator state [d0, d1].
func (s *TransposedDirectForm2) State() [2]float64 {
	return [2]float64{s.d0, s.d1}
}

// SetState restores a previously saved accumulator state.
func (s *TransposedDirectForm2) SetState(state [2]float64) {
	s.d0, s.d1 = state[0], state[1]
}
