// Command mixeq designs biquads, renders and plays the stereo two-band EQ
// mix, and measures its response.
//
// Usage:
//
//	mixeq design lowshelf --fc 0.01 --gain 6
//	mixeq render left.wav right.wav -o mix.wav --bass-l 4
//	mixeq response --bass 6 --treble 2
//	mixeq play left.wav right.wav
//
// While playing, stdin accepts control lines such as "bl 1.5" or "pan -0.2".
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/cwbudde/algo-mixeq/internal/cli"
)

var version = "0.1.0"

// CLI defines the command-line interface
type CLI struct {
	Version  versionFlag `short:"v" help:"Show version information"`
	Verbose  bool        `help:"Log debug output to stderr"`
	Design   DesignCmd   `cmd:"" help:"Print biquad coefficients for a filter family"`
	Render   RenderCmd   `cmd:"" help:"Mix two mono WAV files into a stereo WAV file"`
	Response ResponseCmd `cmd:"" help:"Compare the closed-form and measured EQ response"`
	Play     PlayCmd     `cmd:"" help:"Play the live mix; stdin takes control commands"`
}

type versionFlag bool

// BeforeApply prints the version and exits before any command runs.
func (versionFlag) BeforeApply(app *kong.Kong) error {
	cli.PrintVersion(version)
	app.Exit(0)
	return nil
}

func main() {
	var c CLI
	ctx := kong.Parse(&c,
		kong.Name("mixeq"),
		kong.Description("Stereo two-band EQ mixer"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
	)

	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := ctx.Run(logger); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}
