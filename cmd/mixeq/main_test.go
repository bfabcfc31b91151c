package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"

	"github.com/cwbudde/algo-mixeq/dsp/mixer"
	"github.com/cwbudde/algo-mixeq/internal/testutil"
	"github.com/cwbudde/algo-mixeq/internal/wavio"
)

func parse(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()
	var c CLI
	parser, err := kong.New(&c, kong.Name("mixeq"), kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	if err != nil {
		t.Fatal(err)
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return &c, ctx
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeSources(t *testing.T, left, right []int16) (string, string) {
	t.Helper()
	dir := t.TempDir()
	l := filepath.Join(dir, "l.wav")
	r := filepath.Join(dir, "r.wav")
	if err := wavio.WriteMono16File(l, left, 44000); err != nil {
		t.Fatal(err)
	}
	if err := wavio.WriteMono16File(r, right, 44000); err != nil {
		t.Fatal(err)
	}
	return l, r
}

func TestMixFlagsDefaults(t *testing.T) {
	l, r := writeSources(t, []int16{1}, []int16{1})

	c, ctx := parse(t, "render", l, r, "-o", filepath.Join(t.TempDir(), "out.wav"))
	if ctx.Command() != "render <left> <right>" {
		t.Fatalf("command = %q", ctx.Command())
	}
	if got := c.Render.Params(); got != mixer.DefaultParams() {
		t.Fatalf("defaults = %+v, want %+v", got, mixer.DefaultParams())
	}
	if c.Render.Crossover != 500 || c.Render.Q != 0.707 {
		t.Fatalf("crossover = %v Hz, Q = %v", c.Render.Crossover, c.Render.Q)
	}
}

func TestRenderCmd(t *testing.T) {
	src := testutil.SinePCM16(440, 44000, 8000, 2000)
	l, r := writeSources(t, src, src[:1500])
	out := filepath.Join(t.TempDir(), "out.wav")

	c, _ := parse(t, "render", l, r, "-o", out, "--pan", "1")
	if err := c.Render.Run(discardLogger()); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		t.Fatal(err)
	}
	if st.Size() < 4*1500 {
		t.Fatalf("output too small: %d bytes", st.Size())
	}
}

func TestDesignCmd(t *testing.T) {
	c, _ := parse(t, "design", "hsh", "--fc", "4000", "--sample-rate", "44000", "--gain=-6")
	if err := c.Design.Run(discardLogger()); err != nil {
		t.Fatal(err)
	}

	for _, args := range [][]string{
		{"design", "lpf", "--fc", "22000", "--sample-rate", "44000"},
		{"design", "lpf", "--fc", "30000", "--sample-rate", "44000"},
		{"design", "lpf", "--fc", "1000", "--sample-rate=-44000"},
	} {
		c, _ = parse(t, args...)
		if err := c.Design.Run(discardLogger()); err == nil {
			t.Fatalf("%v: expected error", args)
		}
	}

	c, _ = parse(t, "design", "allpass")
	if err := c.Design.Run(discardLogger()); err == nil {
		t.Fatal("expected error for unknown family")
	}
}

func TestRenderCmd_CrossoverAboveNyquist(t *testing.T) {
	src := testutil.SinePCM16(440, 44000, 8000, 100)
	l, r := writeSources(t, src, src)

	for _, xo := range []string{"22000", "30000"} {
		out := filepath.Join(t.TempDir(), "out.wav")
		c, _ := parse(t, "render", l, r, "-o", out, "--crossover", xo)
		if err := c.Render.Run(discardLogger()); err == nil {
			t.Fatalf("crossover %s Hz: expected error", xo)
		}
		if _, err := os.Stat(out); !os.IsNotExist(err) {
			t.Fatalf("crossover %s Hz: output written", xo)
		}
	}
}

func TestMixFlags_FiltersRejectsBadRate(t *testing.T) {
	f := MixFlags{Crossover: 500, Q: 0.707}
	if _, err := f.Filters(0); err == nil {
		t.Fatal("expected error for 0 Hz sample rate")
	}
	if _, err := f.Filters(44000); err != nil {
		t.Fatal(err)
	}
}

func TestResponseCmd_BadSize(t *testing.T) {
	c, _ := parse(t, "response", "--fft-size", "1000")
	if err := c.Response.Run(discardLogger()); err == nil {
		t.Fatal("expected error for non power-of-two fft size")
	}
}

func TestLoadSources_RateMismatch(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.wav")
	b := filepath.Join(dir, "b.wav")
	if err := wavio.WriteMono16File(a, []int16{1, 2}, 44000); err != nil {
		t.Fatal(err)
	}
	if err := wavio.WriteMono16File(b, []int16{1, 2}, 48000); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := loadSources(a, b); err == nil {
		t.Fatal("expected sample rate mismatch error")
	}
}

func TestReadLines(t *testing.T) {
	lines := readLines(context.Background(), strings.NewReader("bl 1.5\npan -1\n"))
	var got []string
	for l := range lines {
		got = append(got, l)
	}
	if len(got) != 2 || got[0] != "bl 1.5" || got[1] != "pan -1" {
		t.Fatalf("lines = %q", got)
	}
}

type endlessCommands struct{}

func (endlessCommands) Read(p []byte) (int, error) {
	const line = "g1 1\n"
	n := 0
	for n+len(line) <= len(p) {
		n += copy(p[n:], line)
	}
	return n, nil
}

func TestReadLines_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	lines := readLines(ctx, endlessCommands{})
	cancel()

	// The input never ends, so only ctx can close the channel.
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-lines:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("reader goroutine did not exit after cancel")
		}
	}
}
