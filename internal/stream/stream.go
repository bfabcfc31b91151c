// Package stream turns two looping mono sources into an io.Reader of
// interleaved 16-bit little-endian stereo, mixed block by block.
package stream

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/cwbudde/algo-mixeq/dsp/core"
	"github.com/cwbudde/algo-mixeq/dsp/mixer"
)

// Stream renders the mixer on demand. Parameters are read from the
// controller once per block, so updates take effect at block boundaries.
//
// Read is meant to be called from a single audio goroutine. Scratch
// buffers are allocated once in New.
type Stream struct {
	left, right *Loop
	filters     *mixer.Filters
	ctl         *mixer.Controller

	src1, src2 []int16
	raw1, raw2 []byte
	out        []byte
	pending    []byte

	sampleRate float64
	frames     atomic.Int64
}

// New creates a stream over the two sources. The default block size and
// sample rate come from core.DefaultProcessorConfig and can be changed
// with core.WithBlockSize and core.WithSampleRate.
func New(left, right *Loop, filters *mixer.Filters, ctl *mixer.Controller, opts ...core.ProcessorOption) (*Stream, error) {
	if left == nil || right == nil || filters == nil || ctl == nil {
		return nil, fmt.Errorf("stream: nil source, filters or controller")
	}
	cfg := core.ApplyProcessorOptions(opts...)

	n := cfg.BlockSize
	return &Stream{
		left:       left,
		right:      right,
		filters:    filters,
		ctl:        ctl,
		src1:       make([]int16, n),
		src2:       make([]int16, n),
		raw1:       make([]byte, 2*n),
		raw2:       make([]byte, 2*n),
		out:        make([]byte, 4*n),
		sampleRate: cfg.SampleRate,
	}, nil
}

// Read fills p with mixed stereo frames. It never returns io.EOF because
// the sources loop.
func (s *Stream) Read(p []byte) (int, error) {
	total := 0
	for len(p) > 0 {
		if len(s.pending) == 0 {
			if err := s.render(); err != nil {
				return total, err
			}
		}
		n := copy(p, s.pending)
		s.pending = s.pending[n:]
		p = p[n:]
		total += n
	}
	return total, nil
}

// Frames returns the number of stereo frames rendered so far.
func (s *Stream) Frames() int64 { return s.frames.Load() }

// Position returns the rendered length as time at the stream's sample rate.
func (s *Stream) Position() time.Duration {
	return time.Duration(float64(s.Frames()) / s.sampleRate * float64(time.Second))
}

func (s *Stream) render() error {
	s.left.Fill(s.src1)
	s.right.Fill(s.src2)

	le := binary.LittleEndian
	for i := range s.src1 {
		le.PutUint16(s.raw1[2*i:], uint16(s.src1[i]))
		le.PutUint16(s.raw2[2*i:], uint16(s.src2[i]))
	}

	if err := mixer.ProcessBytes(s.out, s.raw1, s.raw2, s.filters, s.ctl.Snapshot()); err != nil {
		return fmt.Errorf("stream: %w", err)
	}
	s.pending = s.out
	s.frames.Add(int64(len(s.src1)))
	return nil
}

var _ io.Reader = (*Stream)(nil)

// Render mixes min(len(left), len(right)) frames offline, in blocks of
// blockSize frames, and returns the interleaved result.
func Render(left, right []int16, filters *mixer.Filters, p mixer.Params, blockSize int) ([]int16, error) {
	if blockSize <= 0 {
		blockSize = core.DefaultProcessorConfig().BlockSize
	}
	n := min(len(left), len(right))
	out := make([]int16, 2*n)
	for start := 0; start < n; start += blockSize {
		end := min(start+blockSize, n)
		if err := mixer.Process(out[2*start:2*end], left[start:end], right[start:end], filters, p); err != nil {
			return nil, fmt.Errorf("stream: render at frame %d: %w", start, err)
		}
	}
	return out, nil
}
