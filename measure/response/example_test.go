package response_test

import (
	"fmt"

	"github.com/cwbudde/algo-filter/dsp/filter/fir"
	"github.com/cwbudde/algo-filter/measure/response"
)

func ExampleMagnitudeAt() {
	// Weighted three tap average, a crude lowpass.
	f := fir.New([]float64{0.25, 0.5, 0.25})

	dc, _ := response.MagnitudeAt(f, 0, 48000, 64)
	quarter, _ := response.MagnitudeAt(f, 12000, 48000, 64)

	fmt.Printf("DC: %.2f dB\n", dc)
	fmt.Printf("12 kHz: %.2f dB\n", quarter)
	// Output:
	// DC: 0.00 dB
	// 12 kHz: -6.02 dB
}
