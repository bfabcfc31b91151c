// Package response measures the frequency response of the two-band EQ.
//
// [Analyze] takes the impulse response of one channel's weighted band sum
// (bass*LP + treble*HP) and transforms it with an FFT, which checks the
// closed-form [crossover.Crossover.Response] against what the filters
// actually do. [ToneGain] goes one step further and drives the full
// int16 mixer with a sine, reading the output level of each channel with a
// Goertzel detector.
//
// Both functions work on copies of the caller's filters, so a running
// stream is not disturbed.
//
// # Usage
//
//	xo, _ := crossover.NewHz(500, 0.707, 44000)
//	res, err := response.Analyze(xo, 6, 2, 4096)
//	for i, f := range res.Freqs {
//		fmt.Printf("%8.1f Hz %6.2f dB\n", f*44000, res.MagnitudeDB[i])
//	}
package response
