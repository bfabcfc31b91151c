package response

import (
	"errors"
	"fmt"
	"math"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-mixeq/dsp/core"
	"github.com/cwbudde/algo-mixeq/dsp/filter/crossover"
)

// Errors returned by the analysis functions.
var (
	ErrInvalidSize = errors.New("response: fft size must be a power of two >= 8")
	ErrNilInput    = errors.New("response: nil filters")
)

// floorDB is reported for bins with zero magnitude.
const floorDB = -300.0

// Result is a one-sided magnitude response with fftSize/2+1 bins.
type Result struct {
	// Freqs are bin centers as normalized frequency (cycles per sample).
	Freqs       []float64
	Magnitude   []float64
	MagnitudeDB []float64
}

// At returns the magnitude in dB of the bin nearest to the normalized
// frequency f.
func (r *Result) At(f float64) float64 {
	if len(r.Freqs) < 2 {
		return floorDB
	}
	step := r.Freqs[1]
	k := int(math.Round(f / step))
	k = max(0, min(len(r.MagnitudeDB)-1, k))
	return r.MagnitudeDB[k]
}

type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	buf.data = core.EnsureLen(buf.data, need)
	return buf.data[:n], buf.data[n:need], buf
}

// Analyze measures the response of bass*LP + treble*HP for the crossover c
// from an fftSize-sample impulse response. c itself is not advanced.
func Analyze(c *crossover.Crossover, bass, treble float64, fftSize int) (*Result, error) {
	if c == nil {
		return nil, ErrNilInput
	}
	if fftSize < 8 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, fftSize)
	}

	xo := *c
	xo.Reset()

	in := make([]complex128, fftSize)
	for i := range in {
		var x float64
		if i == 0 {
			x = 1
		}
		lo, hi := xo.ProcessSample(x)
		in[i] = complex(bass*lo+treble*hi, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: fft plan: %w", err)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("response: fft: %w", err)
	}

	bins := fftSize/2 + 1
	res := &Result{
		Freqs:       make([]float64, bins),
		Magnitude:   make([]float64, bins),
		MagnitudeDB: make([]float64, bins),
	}

	re, im, buf := getScratch(bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}
	vecmath.Magnitude(res.Magnitude, re, im)
	scratchPool.Put(buf)

	for k, m := range res.Magnitude {
		res.Freqs[k] = float64(k) / float64(fftSize)
		if m > 0 {
			res.MagnitudeDB[k] = core.LinearToDB(m)
		} else {
			res.MagnitudeDB[k] = floorDB
		}
	}
	return res, nil
}
