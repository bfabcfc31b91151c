package biquad

import (
	"fmt"
	"testing"
)

// benchCoeffs is a realistic lowpass-like biquad for benchmarking.
var benchCoeffs = Coefficients{A0: 0.25, A1: 0.5, A2: 0.25, B1: -0.2, B2: 0.04}

func BenchmarkProcessSample(b *testing.B) {
	f := NewFilter(benchCoeffs)
	x := 1.0
	for b.Loop() {
		x = f.ProcessSample(x)
	}
	_ = x
}

func BenchmarkProcessBlock(b *testing.B) {
	for _, size := range []int{256, 1024, 4096} {
		b.Run(fmt.Sprintf("N=%d", size), func(b *testing.B) {
			f := NewFilter(benchCoeffs)
			buf := make([]float64, size)
			for i := range buf {
				buf[i] = float64(i) * 0.001
			}
			b.SetBytes(int64(size * 8))
			b.ReportAllocs()
			b.ResetTimer()
			for range b.N {
				f.ProcessBlock(buf)
			}
		})
	}
}
