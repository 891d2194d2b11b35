// Package response measures the frequency response of sample-based
// filters by FFT analysis of their impulse response.
//
// Any filter exposing ProcessSample and Reset can be measured. The
// impulse response is captured over the FFT length with no analysis
// window, so recursive filters need an FFT size large enough for the
// response to decay below the accuracy of interest.
//
// # Usage
//
//	f := biquad.NewTransposedDirectForm2(coeffs)
//	db, err := response.MagnitudeAt(f, 1000, 48000, 4096)
//	fmt.Printf("gain at 1 kHz = %.2f dB\n", db)
//
// The functions here allocate per call and are meant for offline
// verification, not for the real-time path.
package response
