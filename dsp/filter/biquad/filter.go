package biquad

import (
	"sync"

	archregistry "github.com/cwbudde/algo-mixeq/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Coefficients holds the five transfer function coefficients of one biquad.
// The leading denominator coefficient is folded to 1 and not stored:
//
//	H(z) = (A0 + A1*z^-1 + A2*z^-2) / (1 + B1*z^-1 + B2*z^-2)
type Coefficients struct {
	A0, A1, A2 float64 // feedforward (numerator)
	B1, B2     float64 // feedback (denominator)
}

// State is the Direct Form I history of a filter: the two most recent
// inputs and outputs. X1/Y1 are the most recent, X2/Y2 the one before.
type State struct {
	X1, X2 float64
	Y1, Y2 float64
}

// Filter is a biquad with fixed coefficients and its own history.
//
// The zero value is a filter that outputs silence. Copying a Filter copies
// its history; the copy and the original evolve independently afterwards.
type Filter struct {
	coeffs Coefficients
	state  State
}

var (
	processBlockImpl     archregistry.ProcessBlockFn
	processBlockInitOnce sync.Once
)

// NewFilter returns a Filter with the given coefficients and zero history.
func NewFilter(c Coefficients) *Filter {
	return &Filter{coeffs: c}
}

// MakeFilter is the value form of NewFilter, for embedding filters in
// larger structs without a separate allocation.
func MakeFilter(c Coefficients) Filter {
	return Filter{coeffs: c}
}

// Coefficients returns the filter's transfer function coefficients.
func (f *Filter) Coefficients() Coefficients { return f.coeffs }

// State returns a snapshot of the filter history.
func (f *Filter) State() State { return f.state }

// ProcessSample filters one input sample and returns the output.
func (f *Filter) ProcessSample(x float64) float64 {
	c := &f.coeffs
	s := &f.state

	acc := c.A0*x + c.A1*s.X1 + c.A2*s.X2
	feedback := c.B1*s.Y1 + c.B2*s.Y2
	y := acc - feedback

	s.X2 = s.X1
	s.X1 = x
	s.Y2 = s.Y1
	s.Y1 = y

	return y
}

// ProcessBlock filters a block of samples in-place. Zero-alloc.
func (f *Filter) ProcessBlock(buf []float64) {
	processBlockInitOnce.Do(initProcessBlockKernel)

	st := processBlockImpl(
		archregistry.Coefficients{
			A0: f.coeffs.A0,
			A1: f.coeffs.A1,
			A2: f.coeffs.A2,
			B1: f.coeffs.B1,
			B2: f.coeffs.B2,
		},
		archregistry.State{X1: f.state.X1, X2: f.state.X2, Y1: f.state.Y1, Y2: f.state.Y2},
		buf,
	)

	f.state = State{X1: st.X1, X2: st.X2, Y1: st.Y1, Y2: st.Y2}
}

func initProcessBlockKernel() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("biquad: no ProcessBlock kernel registered (missing generic fallback?)")
	}

	if entry.ProcessBlock == nil {
		panic("biquad: selected kernel missing ProcessBlock")
	}

	processBlockImpl = entry.ProcessBlock
}

// ProcessBlockTo filters src into dst. dst must be at least as long as src.
// Zero-alloc.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears the history to zero. The processing pipeline never calls
// this; it is for analysis and for hosts that restart a stream.
func (f *Filter) Reset() {
	f.state = State{}
}

// SetState restores a previously saved history.
func (f *Filter) SetState(s State) {
	f.state = s
}
