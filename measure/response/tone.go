package response

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-mixeq/dsp/mixer"
)

// ErrInvalidTone is returned for an unusable tone frequency, rate or length.
var ErrInvalidTone = errors.New("response: invalid tone parameters")

// goertzel evaluates a single DFT term over the samples fed to it.
type goertzel struct {
	coeff  float64
	s0, s1 float64
}

func newGoertzel(f float64) goertzel {
	return goertzel{coeff: 2 * math.Cos(2*math.Pi*f)}
}

func (g *goertzel) process(x float64) {
	s := x + g.coeff*g.s0 - g.s1
	g.s1 = g.s0
	g.s0 = s
}

func (g *goertzel) power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// ToneGain drives the mixer with a sine of the given amplitude (in int16
// units) and frequency on both inputs for n frames, and returns the
// steady-state linear gain of each output channel. The first half of the
// run is discarded as settling time. Clipping and truncation of the
// int16 output are part of the measurement.
//
// The caller's filters are copied and reset; they are not advanced.
func ToneGain(f *mixer.Filters, p mixer.Params, freqHz, sampleRate, amplitude float64, n int) (left, right float64, err error) {
	if f == nil {
		return 0, 0, ErrNilInput
	}
	if sampleRate <= 0 || freqHz <= 0 || freqHz >= sampleRate/2 || amplitude <= 0 || n < 64 {
		return 0, 0, fmt.Errorf("%w: f=%v sr=%v amp=%v n=%d", ErrInvalidTone, freqHz, sampleRate, amplitude, n)
	}

	filters := *f
	filters.Reset()

	src := make([]int16, n)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range src {
		v := amplitude * math.Sin(step*float64(i))
		src[i] = mixer.Clip16(math.Round(v))
	}

	dest := make([]int16, 2*n)
	if err := mixer.Process(dest, src, src, &filters, p); err != nil {
		return 0, 0, err
	}

	settle := n / 2
	gl := newGoertzel(freqHz / sampleRate)
	gr := gl
	for i := settle; i < n; i++ {
		gl.process(float64(dest[2*i]))
		gr.process(float64(dest[2*i+1]))
	}

	// A sine of amplitude A gives |X| = A*N/2 over N samples.
	scale := 2 / (float64(n-settle) * amplitude)
	return math.Sqrt(max(gl.power(), 0)) * scale, math.Sqrt(max(gr.power(), 0)) * scale, nil
}
