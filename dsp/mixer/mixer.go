package mixer

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cwbudde/algo-mixeq/dsp/core"
	"github.com/cwbudde/algo-mixeq/dsp/filter/biquad"
	"github.com/cwbudde/algo-mixeq/dsp/filter/crossover"
)

var (
	// ErrBufferTooSmall is returned when dest cannot hold the interleaved
	// output. Nothing is written in that case.
	ErrBufferTooSmall = errors.New("destination buffer too small")

	// ErrAliasedFilters is returned by ProcessFilters when two of the four
	// filter handles point at the same filter.
	ErrAliasedFilters = errors.New("filters must be distinct")
)

// Filters holds the four band filters of the pipeline, one crossover per
// channel. Being a value type, its four filters are always distinct.
type Filters struct {
	Left  crossover.Crossover
	Right crossover.Crossover
}

// NewFilters creates left and right crossovers at the normalized cutoff fc
// with quality factor q.
func NewFilters(fc, q float64) (*Filters, error) {
	left, err := crossover.New(fc, q)
	if err != nil {
		return nil, fmt.Errorf("mixer: left crossover: %w", err)
	}
	right, err := crossover.New(fc, q)
	if err != nil {
		return nil, fmt.Errorf("mixer: right crossover: %w", err)
	}
	return &Filters{Left: *left, Right: *right}, nil
}

// NewFiltersHz is [NewFilters] with the crossover given in Hz at
// sampleRate. The crossover must lie in (0, sampleRate/2).
func NewFiltersHz(freq, q, sampleRate float64) (*Filters, error) {
	left, err := crossover.NewHz(freq, q, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("mixer: left crossover: %w", err)
	}
	right, err := crossover.NewHz(freq, q, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("mixer: right crossover: %w", err)
	}
	return &Filters{Left: *left, Right: *right}, nil
}

// Reset clears the history of all four filters.
func (f *Filters) Reset() {
	f.Left.Reset()
	f.Right.Reset()
}

// Clip16 saturates v to [-32768, 32767] and truncates toward zero.
func Clip16(v float64) int16 {
	return core.Int16FromFloat(v)
}

// Process mixes min(len(src1), len(src2)) frames into dest as interleaved
// L/R samples. src1 feeds the left channel and src2 the right. Trailing
// samples of the longer source are not read.
//
// dest must hold at least 2n samples; otherwise ErrBufferTooSmall is
// returned before any filter or output sample is touched.
func Process(dest, src1, src2 []int16, f *Filters, p Params) error {
	return ProcessFilters(dest, src1, src2,
		&f.Left.Low, &f.Left.High, &f.Right.Low, &f.Right.High, p)
}

// ProcessFilters is Process with the four band filters passed separately.
// lpfL and hpfL split src1, lpfR and hpfR split src2. The filters are
// expected to be a lowpass and a highpass but their family is not checked.
// Passing the same filter twice returns ErrAliasedFilters.
func ProcessFilters(dest, src1, src2 []int16, lpfL, hpfL, lpfR, hpfR *biquad.Filter, p Params) error {
	if lpfL == hpfL || lpfL == lpfR || lpfL == hpfR ||
		hpfL == lpfR || hpfL == hpfR || lpfR == hpfR {
		return fmt.Errorf("mixer: %w", ErrAliasedFilters)
	}

	n := core.MinLen(src1, src2)
	if len(dest) < 2*n {
		return fmt.Errorf("mixer: %w: need %d samples, have %d", ErrBufferTooSmall, 2*n, len(dest))
	}
	if n == 0 {
		return nil
	}

	gL, gR := PanGains(p.Gain1, p.Gain2, p.Pan)

	src1 = src1[:n]
	src2 = src2[:n]
	dest = dest[:2*n]
	for i := range n {
		xL := float64(src1[i])
		eqL := lpfL.ProcessSample(xL)*p.BassL + hpfL.ProcessSample(xL)*p.TrebleL

		xR := float64(src2[i])
		eqR := lpfR.ProcessSample(xR)*p.BassR + hpfR.ProcessSample(xR)*p.TrebleR

		dest[2*i] = Clip16(eqL * gL * p.Master)
		dest[2*i+1] = Clip16(eqR * gR * p.Master)
	}
	return nil
}

// ProcessBytes is Process over raw little-endian s16 buffers. Sample
// counts are len/2; an odd trailing byte is ignored. dest must hold at
// least 4n bytes.
func ProcessBytes(dest, src1, src2 []byte, f *Filters, p Params) error {
	n := min(len(src1)/2, len(src2)/2)
	if len(dest) < 4*n {
		return fmt.Errorf("mixer: %w: need %d bytes, have %d", ErrBufferTooSmall, 4*n, len(dest))
	}

	gL, gR := PanGains(p.Gain1, p.Gain2, p.Pan)

	le := binary.LittleEndian
	for i := range n {
		xL := float64(int16(le.Uint16(src1[2*i:])))
		eqL := f.Left.Low.ProcessSample(xL)*p.BassL + f.Left.High.ProcessSample(xL)*p.TrebleL

		xR := float64(int16(le.Uint16(src2[2*i:])))
		eqR := f.Right.Low.ProcessSample(xR)*p.BassR + f.Right.High.ProcessSample(xR)*p.TrebleR

		le.PutUint16(dest[4*i:], uint16(Clip16(eqL*gL*p.Master)))
		le.PutUint16(dest[4*i+2:], uint16(Clip16(eqR*gR*p.Master)))
	}
	return nil
}
