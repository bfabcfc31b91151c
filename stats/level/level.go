// Package level measures per-channel levels of interleaved 16-bit stereo
// output: DC, RMS, peak and the number of samples pinned at full scale.
package level

import (
	"math"

	"github.com/cwbudde/algo-mixeq/dsp/core"
)

// fullScale is the 0 dBFS reference for 16-bit samples.
const fullScale = 32768.0

// Stats holds the level statistics of one channel.
//
//nolint:revive
type Stats struct {
	Length    int
	DC        float64 // mean, in sample units
	RMS       float64
	RMS_dBFS  float64
	Peak      float64 // max |x|
	Peak_dBFS float64
	Crest_dB  float64 // peak / RMS
	Clipped   int     // samples equal to -32768 or 32767
}

func toDBFS(v float64) float64 {
	return core.LinearToDB(v / fullScale)
}

type accumulator struct {
	n       int
	sum     float64
	sumSq   float64
	peak    float64
	clipped int
}

func (a *accumulator) add(x int16) {
	v := float64(x)
	a.n++
	a.sum += v
	a.sumSq += v * v
	a.peak = math.Max(a.peak, math.Abs(v))
	if x == math.MaxInt16 || x == math.MinInt16 {
		a.clipped++
	}
}

func (a *accumulator) result() Stats {
	if a.n == 0 {
		return Stats{
			RMS_dBFS:  math.Inf(-1),
			Peak_dBFS: math.Inf(-1),
		}
	}
	nf := float64(a.n)
	rms := math.Sqrt(a.sumSq / nf)

	var crest float64
	if rms > 0 {
		crest = 20 * math.Log10(a.peak/rms)
	}
	return Stats{
		Length:    a.n,
		DC:        a.sum / nf,
		RMS:       rms,
		RMS_dBFS:  toDBFS(rms),
		Peak:      a.peak,
		Peak_dBFS: toDBFS(a.peak),
		Crest_dB:  crest,
		Clipped:   a.clipped,
	}
}

// Meter accumulates statistics over blocks of interleaved L/R samples.
// A block of odd length leaves the next sample on the right channel.
type Meter struct {
	left, right accumulator
	odd         bool
}

// Update adds a block of interleaved samples. Channel parity carries
// across calls, so blocks need not hold whole frames.
func (m *Meter) Update(interleaved []int16) {
	for _, x := range interleaved {
		if m.odd {
			m.right.add(x)
		} else {
			m.left.add(x)
		}
		m.odd = !m.odd
	}
}

// Left returns the statistics of the left channel so far.
func (m *Meter) Left() Stats { return m.left.result() }

// Right returns the statistics of the right channel so far.
func (m *Meter) Right() Stats { return m.right.result() }

// Reset clears all accumulated data.
func (m *Meter) Reset() { *m = Meter{} }

// Calculate returns the statistics of both channels of one buffer.
func Calculate(interleaved []int16) (left, right Stats) {
	var m Meter
	m.Update(interleaved)
	return m.Left(), m.Right()
}
