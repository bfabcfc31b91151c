package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// SinePCM16 generates a 16-bit sine. amplitude is in sample units and is
// not clipped.
func SinePCM16(freqHz, sampleRate, amplitude float64, length int) []int16 {
	return toPCM16(DeterministicSine(freqHz, sampleRate, amplitude, length))
}

// NoisePCM16 generates reproducible 16-bit white noise.
func NoisePCM16(seed int64, amplitude float64, length int) []int16 {
	return toPCM16(DeterministicNoise(seed, amplitude, length))
}

// ConstPCM16 returns length copies of v.
func ConstPCM16(v int16, length int) []int16 {
	out := make([]int16, length)
	for i := range out {
		out[i] = v
	}
	return out
}

func toPCM16(in []float64) []int16 {
	out := make([]int16, len(in))
	for i, v := range in {
		out[i] = int16(math.Max(math.MinInt16, math.Min(math.MaxInt16, v)))
	}
	return out
}
