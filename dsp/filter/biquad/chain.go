package biquad

// Chain is an ordered cascade of biquad sections processed in series: the
// output of section i feeds the input of section i+1, so the slice order
// is the serial connection order. It is used to build higher-order filters
// from second-order sections, which is numerically preferable to a single
// high-order direct-form realization.
//
// Instantiating Chain with a concrete section pointer type (for example
// Chain[*TransposedDirectForm2]) lets the per-sample calls devirtualize;
// Chain[Section] works too when the topology is only known at runtime.
type Chain[S Section] struct {
	sections []S
	y        float64
}

// NewChain creates a cascade from the given sections. The sections are
// used directly, not copied.
func NewChain[S Section](sections ...S) *Chain[S] {
	return &Chain[S]{sections: sections}
}

// NewChainTDF2 creates a Transposed Direct Form 2 cascade with one section
// per coefficient set.
func NewChainTDF2(coeffs []Coefficients) *Chain[*TransposedDirectForm2] {
	sections := make([]*TransposedDirectForm2, len(coeffs))
	for i := range coeffs {
		sections[i] = NewTransposedDirectForm2(coeffs[i])
	}

	return NewChain(sections...)
}

// ProcessSample cascades the input through all sections in order.
func (c *Chain[S]) ProcessSample(x float64) float64 {
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	c.y = x

	return x
}

// ProcessBlock filters a block in-place through the full cascade.
func (c *Chain[S]) ProcessBlock(buf []float64) {
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}

	if len(buf) > 0 {
		c.y = buf[len(buf)-1]
	}
}

// Reset clears all section states.
func (c *Chain[S]) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}

	c.y = 0
}

// Last returns the final stage's most recent output.
func (c *Chain[S]) Last() float64 { return c.y }

// SetCoefficients replaces the coefficients of every section. The slice
// length must match NumSections. Section state is preserved.
func (c *Chain[S]) SetCoefficients(coeffs []Coefficients) {
	for i := range c.sections {
		c.sections[i].SetCoefficients(coeffs[i])
	}
}

// NumSections returns the number of biquad sections.
func (c *Chain[S]) NumSections() int { return len(c.sections) }

// Order returns the total filter order (2 per section).
func (c *Chain[S]) Order() int { return 2 * len(c.sections) }

// Section returns the i-th section for inspection or modification.
func (c *Chain[S]) Section(i int) S { return c.sections[i] }

// Response computes the complex frequency response of the full cascade as
// the product of the individual section responses.
func (c *Chain[S]) Response(freqHz, sampleRate float64) complex128 {
	h := complex(1, 0)
	for i := range c.sections {
		h *= c.sections[i].Response(freqHz, sampleRate)
	}

	return h
}
