package response

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Errors returned by response measurement functions.
var (
	ErrInvalidLength       = errors.New("response: length must be positive")
	ErrInvalidFFTSize      = errors.New("response: fft size must be at least 2")
	ErrInvalidSampleRate   = errors.New("response: sample rate must be positive")
	ErrFrequencyOutOfRange = errors.New("response: frequency outside [0, Nyquist]")
)

// Sampler is the per-sample surface shared by the filters in dsp/filter.
// Reset must return the filter to a silent state without changing its
// coefficients.
type Sampler interface {
	ProcessSample(x float64) float64
	Reset()
}

// ImpulseResponse resets f and captures its response to a unit impulse
// over n samples. The filter is reset again afterwards so the
// measurement leaves no internal state behind.
func ImpulseResponse(f Sampler, n int) ([]float64, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}

	f.Reset()

	ir := make([]float64, n)

	ir[0] = f.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = f.ProcessSample(0)
	}

	f.Reset()

	return ir, nil
}

// Spectrum returns the complex spectrum of the filter's impulse
// response, truncated or zero padded to fftSize. No analysis window is
// applied; for recursive filters the fftSize should be large enough
// that the response has decayed into the noise floor.
func Spectrum(f Sampler, fftSize int) ([]complex128, error) {
	if fftSize < 2 {
		return nil, ErrInvalidFFTSize
	}

	ir, err := ImpulseResponse(f, fftSize)
	if err != nil {
		return nil, err
	}

	in := make([]complex128, fftSize)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)

	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("response: forward fft: %w", err)
	}

	return out, nil
}

// MagnitudeSpectrumDB returns the magnitude of the non-negative
// frequency bins [0..fftSize/2] in dB. Empty bins map to -Inf.
func MagnitudeSpectrumDB(f Sampler, fftSize int) ([]float64, error) {
	spectrum, err := Spectrum(f, fftSize)
	if err != nil {
		return nil, err
	}

	bins := fftSize/2 + 1
	mags := make([]float64, bins)

	for i := range mags {
		mags[i] = magnitudeDB(spectrum[i])
	}

	return mags, nil
}

// MagnitudeAt measures the filter's magnitude at freqHz in dB, read
// from the FFT bin nearest to the requested frequency. The frequency
// must lie within [0, sampleRate/2].
func MagnitudeAt(f Sampler, freqHz, sampleRate float64, fftSize int) (float64, error) {
	if sampleRate <= 0 {
		return 0, ErrInvalidSampleRate
	}

	if freqHz < 0 || freqHz > sampleRate/2 {
		return 0, ErrFrequencyOutOfRange
	}

	spectrum, err := Spectrum(f, fftSize)
	if err != nil {
		return 0, err
	}

	bin := int(math.Round(freqHz / sampleRate * float64(fftSize)))
	if bin > fftSize/2 {
		bin = fftSize / 2
	}

	return magnitudeDB(spectrum[bin]), nil
}

func magnitudeDB(v complex128) float64 {
	mag := cmplx.Abs(v)
	if mag <= 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(mag)
}
