// Package wavio reads the mono 16-bit PCM sources of the mixer and writes
// its interleaved stereo output as WAV.
package wavio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// ErrUnsupportedFormat is returned for WAV files that are not 16-bit mono
// PCM.
var ErrUnsupportedFormat = errors.New("wavio: unsupported format")

// Mono is a decoded single-channel 16-bit source.
type Mono struct {
	Samples    []int16
	SampleRate int
}

// ReadMono16 decodes a 16-bit mono PCM WAV stream.
func ReadMono16(r io.ReadSeeker) (*Mono, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: not a PCM WAV file", ErrUnsupportedFormat)
	}
	if dec.BitDepth != 16 || dec.NumChans != 1 {
		return nil, fmt.Errorf("%w: %d-bit %d-channel, want 16-bit mono",
			ErrUnsupportedFormat, dec.BitDepth, dec.NumChans)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wavio: decode: %w", err)
	}

	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = int16(v)
	}
	return &Mono{Samples: samples, SampleRate: int(dec.SampleRate)}, nil
}

// ReadMono16File opens path and decodes it with ReadMono16.
func ReadMono16File(path string) (*Mono, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ReadMono16(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// WriteMono16File writes a 16-bit mono WAV, the source format of the
// mixer.
func WriteMono16File(path string, samples []int16, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writePCM16(f, samples, sampleRate, 1); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// WriteStereo16 encodes interleaved L/R samples as a 16-bit stereo WAV.
func WriteStereo16(w io.WriteSeeker, interleaved []int16, sampleRate int) error {
	if len(interleaved)%2 != 0 {
		return fmt.Errorf("wavio: odd sample count %d for stereo", len(interleaved))
	}
	return writePCM16(w, interleaved, sampleRate, 2)
}

// WriteStereo16File creates path and writes interleaved samples to it.
func WriteStereo16File(path string, interleaved []int16, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteStereo16(f, interleaved, sampleRate); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

func writePCM16(w io.WriteSeeker, samples []int16, sampleRate, channels int) error {
	data := make([]int, len(samples))
	for i, v := range samples {
		data[i] = int(v)
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	enc := wav.NewEncoder(w, sampleRate, 16, channels, 1)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavio: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavio: finalize: %w", err)
	}
	return nil
}
