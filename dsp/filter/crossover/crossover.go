package crossover

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-mixeq/dsp/filter/biquad"
	"github.com/cwbudde/algo-mixeq/dsp/filter/design"
)

// Crossover is a two-band splitter for one channel. Low and High are
// distinct filters with their own history.
type Crossover struct {
	Low  biquad.Filter
	High biquad.Filter

	fc float64
	q  float64
}

// New creates a crossover at the normalized cutoff fc (fraction of the
// sampling frequency) with quality factor q. As with the designer, fc and
// q are not range-checked.
func New(fc, q float64) (*Crossover, error) {
	lp, err := design.Design(design.LowPass, fc, q, 0)
	if err != nil {
		return nil, fmt.Errorf("crossover: lowpass: %w", err)
	}
	hp, err := design.Design(design.HighPass, fc, q, 0)
	if err != nil {
		return nil, fmt.Errorf("crossover: highpass: %w", err)
	}

	return &Crossover{
		Low:  biquad.MakeFilter(lp),
		High: biquad.MakeFilter(hp),
		fc:   fc,
		q:    q,
	}, nil
}

// NewHz creates a crossover at freq Hz for the given sample rate. Unlike
// New, it validates its arguments, since it sits at the configuration edge.
func NewHz(freq, q, sampleRate float64) (*Crossover, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("crossover: sample rate must be positive, got %v", sampleRate)
	}
	if freq <= 0 || freq >= sampleRate/2 || math.IsNaN(freq) {
		return nil, fmt.Errorf("crossover: frequency must be in (0, %v), got %v", sampleRate/2, freq)
	}
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return nil, fmt.Errorf("crossover: q must be positive, got %v", q)
	}
	return New(freq/sampleRate, q)
}

// ProcessSample filters one input sample through both bands and returns
// the lowpass and highpass outputs.
func (c *Crossover) ProcessSample(x float64) (lo, hi float64) {
	return c.Low.ProcessSample(x), c.High.ProcessSample(x)
}

// ProcessBlock filters a block of input samples, writing the lowpass
// output to lo and the highpass output to hi. lo and hi must be at least
// as long as input.
func (c *Crossover) ProcessBlock(input, lo, hi []float64) {
	n := len(input)
	if n == 0 {
		return
	}
	_ = lo[n-1]
	_ = hi[n-1]
	copy(lo, input)
	copy(hi, input)
	c.Low.ProcessBlock(lo[:n])
	c.High.ProcessBlock(hi[:n])
}

// Response returns the closed-form frequency response of the weighted
// band sum bass*LP + treble*HP at the normalized frequency f.
func (c *Crossover) Response(f, bass, treble float64) complex128 {
	lc := c.Low.Coefficients()
	hc := c.High.Coefficients()
	return complex(bass, 0)*lc.Response(f) + complex(treble, 0)*hc.Response(f)
}

// Fc returns the normalized cutoff.
func (c *Crossover) Fc() float64 { return c.fc }

// Q returns the quality factor.
func (c *Crossover) Q() float64 { return c.q }

// Reset clears the history of both bands.
func (c *Crossover) Reset() {
	c.Low.Reset()
	c.High.Reset()
}
