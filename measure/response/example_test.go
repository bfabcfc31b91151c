package response_test

import (
	"fmt"

	"github.com/cwbudde/algo-mixeq/dsp/filter/crossover"
	"github.com/cwbudde/algo-mixeq/measure/response"
)

func ExampleAnalyze() {
	const sr = 44000.0
	xo, _ := crossover.NewHz(500, 0.707, sr)

	res, err := response.Analyze(xo, 6, 2, 4096)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, hz := range []float64{100, 1000, 10000} {
		fmt.Printf("%5.0f Hz: %6.2f dB\n", hz, res.At(hz/sr))
	}
	// Output:
	//   100 Hz:  15.45 dB
	//  1000 Hz:  -6.27 dB
	// 10000 Hz:   5.98 dB
}
