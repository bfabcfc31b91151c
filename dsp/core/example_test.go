package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-mixeq/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(48000),
		core.WithBlockSize(256),
	)

	fmt.Printf("sampleRate=%.0f blockSize=%d\n", cfg.SampleRate, cfg.BlockSize)

	// Output:
	// sampleRate=48000 blockSize=256
}

func ExampleInt16FromFloat() {
	for _, v := range []float64{40000, -40000, 123.9, -123.9} {
		fmt.Println(core.Int16FromFloat(v))
	}

	// Output:
	// 32767
	// -32768
	// 123
	// -123
}
