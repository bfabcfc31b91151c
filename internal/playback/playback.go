// Package playback sends an interleaved s16le stereo stream to the default
// audio device.
package playback

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// ErrInvalidConfig is returned for a non-positive sample rate.
var ErrInvalidConfig = errors.New("playback: invalid config")

// Player owns the device context and one player reading from a source.
// Only one Player can exist per process, a limit of the oto context.
type Player struct {
	ctx    *oto.Context
	player *oto.Player

	mu      sync.Mutex
	started bool
}

func contextOptions(sampleRate int, buffer time.Duration) (*oto.NewContextOptions, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, sampleRate)
	}
	if buffer < 0 {
		return nil, fmt.Errorf("%w: buffer %v", ErrInvalidConfig, buffer)
	}
	return &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   buffer,
	}, nil
}

// New opens the device at sampleRate and prepares a player that pulls
// from src. A zero buffer selects the driver default.
func New(sampleRate int, buffer time.Duration, src io.Reader) (*Player, error) {
	op, err := contextOptions(sampleRate, buffer)
	if err != nil {
		return nil, err
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("playback: open device: %w", err)
	}
	<-ready

	return &Player{
		ctx:    ctx,
		player: ctx.NewPlayer(src),
	}, nil
}

// Start begins playback. It is a no-op when already playing.
func (p *Player) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		p.player.Play()
		p.started = true
	}
}

// Err reports an error raised by the source or the device, if any.
func (p *Player) Err() error {
	return p.player.Err()
}

// Close stops playback and releases the player.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.started = false
	if err := p.player.Close(); err != nil {
		return fmt.Errorf("playback: close: %w", err)
	}
	return nil
}
