package core

// Context carries the processing configuration shared by all filters:
// sample rate, the derived sample period, and the maximum block size the
// host will request. Filters hold a copy of the Context; a sample-rate
// change is applied explicitly by passing a new Context to SetContext,
// never implicitly.
type Context struct {
	SampleRate         float64
	SamplePeriod       float64
	MaxSamplesPerBlock int
}

// NewContext returns a Context for the given sample rate with a block
// size of one sample.
func NewContext(sampleRate float64) Context {
	return NewContextWithBlock(sampleRate, 1)
}

// NewContextWithBlock returns a Context for the given sample rate and
// maximum block size.
func NewContextWithBlock(sampleRate float64, maxSamplesPerBlock int) Context {
	c := Context{
		SampleRate:         sampleRate,
		MaxSamplesPerBlock: maxSamplesPerBlock,
	}

	if sampleRate > 0 {
		c.SamplePeriod = 1 / sampleRate
	}

	return c
}

// DefaultContext returns the 48 kHz single-sample context used when a
// filter is constructed without an explicit Context.
func DefaultContext() Context {
	return NewContext(48000)
}
