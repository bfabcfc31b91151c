package stream

import "github.com/cwbudde/algo-mixeq/dsp/core"

// Loop is a mono source that restarts at the first sample when it runs
// out, the way the player device treats its WAV files.
type Loop struct {
	samples []int16
	pos     int
}

// NewLoop returns a looping source over samples. The slice is not copied.
func NewLoop(samples []int16) *Loop {
	return &Loop{samples: samples}
}

// Fill writes len(dst) samples, wrapping around as needed. An empty
// source fills with silence.
func (l *Loop) Fill(dst []int16) {
	if len(l.samples) == 0 {
		core.Zero(dst)
		return
	}
	for len(dst) > 0 {
		n := copy(dst, l.samples[l.pos:])
		dst = dst[n:]
		l.pos += n
		if l.pos == len(l.samples) {
			l.pos = 0
		}
	}
}

// Len returns the loop length in samples.
func (l *Loop) Len() int { return len(l.samples) }
