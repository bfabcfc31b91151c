package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/cmplx"
	"os"
	"os/signal"
	"time"

	"github.com/cwbudde/algo-mixeq/dsp/core"
	"github.com/cwbudde/algo-mixeq/dsp/filter/biquad"
	"github.com/cwbudde/algo-mixeq/dsp/filter/crossover"
	"github.com/cwbudde/algo-mixeq/dsp/filter/design"
	"github.com/cwbudde/algo-mixeq/dsp/mixer"
	"github.com/cwbudde/algo-mixeq/internal/cli"
	"github.com/cwbudde/algo-mixeq/internal/playback"
	"github.com/cwbudde/algo-mixeq/internal/stream"
	"github.com/cwbudde/algo-mixeq/internal/wavio"
	"github.com/cwbudde/algo-mixeq/measure/response"
	"github.com/cwbudde/algo-mixeq/stats/level"
)

// DesignCmd prints one biquad design.
type DesignCmd struct {
	Family     string  `arg:"" help:"Filter family (lowpass, highpass, bandpass, notch, peaking, lowshelf, highshelf or lpf, hpf, bpf, peq, lsh, hsh)"`
	Fc         float64 `default:"0.1" help:"Normalized cutoff (fraction of the sample rate), or Hz with --sample-rate"`
	Q          float64 `default:"0.707" help:"Quality factor"`
	Gain       float64 `default:"0" help:"Peak or shelf gain in dB"`
	SampleRate float64 `name:"sample-rate" help:"Interpret --fc in Hz at this rate; must be positive when set"`
}

func (c *DesignCmd) Run(logger *slog.Logger) error {
	family, err := design.ParseFamily(c.Family)
	if err != nil {
		return err
	}

	var bq biquad.Coefficients
	fc := c.Fc
	if c.SampleRate != 0 {
		bq, err = design.DesignHz(family, c.Fc, c.SampleRate, c.Q, c.Gain)
		fc = c.Fc / c.SampleRate
	} else {
		bq, err = design.Design(family, fc, c.Q, c.Gain)
	}
	if err != nil {
		return err
	}
	logger.Debug("design", "family", family, "fc", fc, "q", c.Q, "gain", c.Gain)
	cli.PrintDesign(os.Stdout, family, fc, c.Q, c.Gain, bq)
	return nil
}

// RenderCmd mixes two files offline.
type RenderCmd struct {
	Left   string `arg:"" type:"existingfile" help:"Left source, 16-bit mono WAV"`
	Right  string `arg:"" type:"existingfile" help:"Right source, 16-bit mono WAV"`
	Output string `short:"o" required:"" type:"path" help:"Output stereo WAV"`

	MixFlags `embed:""`
}

func (c *RenderCmd) Run(logger *slog.Logger) error {
	left, right, sr, err := loadSources(c.Left, c.Right)
	if err != nil {
		return err
	}
	filters, err := c.Filters(float64(sr))
	if err != nil {
		return err
	}

	start := time.Now()
	out, err := stream.Render(left.Samples, right.Samples, filters, c.Params(), core.DefaultProcessorConfig().BlockSize)
	if err != nil {
		return err
	}
	if err := wavio.WriteStereo16File(c.Output, out, sr); err != nil {
		return err
	}
	logger.Info("rendered", "frames", len(out)/2, "sample_rate", sr, "output", c.Output, "elapsed", time.Since(start))

	l, r := level.Calculate(out)
	if l.Clipped+r.Clipped > 0 {
		logger.Warn("output clipped", "left", l.Clipped, "right", r.Clipped)
	}
	cli.PrintLevels(os.Stdout, l, r)
	return nil
}

// ResponseCmd prints the EQ response of one channel.
type ResponseCmd struct {
	Crossover  float64 `default:"500" help:"Crossover frequency in Hz"`
	Q          float64 `default:"0.707" help:"Crossover quality factor"`
	Bass       float64 `default:"6" help:"Bass weight"`
	Treble     float64 `default:"2" help:"Treble weight"`
	SampleRate float64 `name:"sample-rate" default:"44000" help:"Sample rate in Hz"`
	FFTSize    int     `name:"fft-size" default:"8192" help:"FFT length, a power of two"`
}

var responseFreqs = []float64{20, 50, 100, 200, 300, 500, 700, 1000, 2000, 5000, 10000, 15000, 20000}

func (c *ResponseCmd) Run(logger *slog.Logger) error {
	xo, err := crossover.NewHz(c.Crossover, c.Q, c.SampleRate)
	if err != nil {
		return err
	}
	res, err := response.Analyze(xo, c.Bass, c.Treble, c.FFTSize)
	if err != nil {
		return err
	}

	rows := make([]cli.ResponseRow, 0, len(responseFreqs))
	for _, hz := range responseFreqs {
		if hz >= c.SampleRate/2 {
			continue
		}
		f := hz / c.SampleRate
		rows = append(rows, cli.ResponseRow{
			FreqHz:   hz,
			Analytic: core.LinearToDB(cmplx.Abs(xo.Response(f, c.Bass, c.Treble))),
			Measured: res.At(f),
		})
	}
	logger.Debug("response", "bins", len(res.Freqs))
	cli.PrintResponse(os.Stdout, rows)
	return nil
}

// PlayCmd plays the looping mix on the default device.
type PlayCmd struct {
	Left   string        `arg:"" type:"existingfile" help:"Left source, 16-bit mono WAV"`
	Right  string        `arg:"" type:"existingfile" help:"Right source, 16-bit mono WAV"`
	Block  int           `default:"16384" help:"Frames mixed per block"`
	Buffer time.Duration `default:"100ms" help:"Device buffer length"`

	MixFlags `embed:""`
}

func (c *PlayCmd) Run(logger *slog.Logger) error {
	left, right, sr, err := loadSources(c.Left, c.Right)
	if err != nil {
		return err
	}
	filters, err := c.Filters(float64(sr))
	if err != nil {
		return err
	}

	ctl := mixer.NewController(c.Params())
	src, err := stream.New(stream.NewLoop(left.Samples), stream.NewLoop(right.Samples), filters, ctl,
		core.WithSampleRate(float64(sr)), core.WithBlockSize(c.Block))
	if err != nil {
		return err
	}

	player, err := playback.New(sr, c.Buffer, src)
	if err != nil {
		return err
	}
	defer player.Close()
	player.Start()

	logger.Info("playing", "sample_rate", sr, "block", c.Block)
	cli.PrintParams(os.Stdout, ctl.Snapshot())
	fmt.Println(cli.KeyStyle.Render("commands: g1 g2 pan master bl tl br tr, e.g. 'bl 1.5'; Ctrl-D to stop"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	lines := readLines(ctx, os.Stdin)
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			p, err := ctl.Exec(line)
			switch {
			case errors.Is(err, mixer.ErrUnknownParam), errors.Is(err, mixer.ErrMalformedCommand):
				cli.PrintError(err.Error())
			case err != nil:
				return err
			default:
				cli.PrintParams(os.Stdout, p)
			}
			if err := player.Err(); err != nil {
				return err
			}
			logger.Debug("frames", "rendered", src.Frames(), "position", src.Position())
		}
	}
}

// readLines sends the lines of r until EOF or until ctx is done. The
// channel is closed when the reader goroutine exits.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

func loadSources(leftPath, rightPath string) (left, right *wavio.Mono, sampleRate int, err error) {
	left, err = wavio.ReadMono16File(leftPath)
	if err != nil {
		return nil, nil, 0, err
	}
	right, err = wavio.ReadMono16File(rightPath)
	if err != nil {
		return nil, nil, 0, err
	}
	if left.SampleRate != right.SampleRate {
		return nil, nil, 0, fmt.Errorf("sample rates differ: %d Hz vs %d Hz", left.SampleRate, right.SampleRate)
	}
	return left, right, left.SampleRate, nil
}
