package main

import (
	"github.com/cwbudde/algo-mixeq/dsp/mixer"
)

// MixFlags are the mixer parameters shared by render and play. Defaults
// match the power-on settings of the reference device.
type MixFlags struct {
	Gain1   float64 `name:"g1" default:"0.7" help:"Base gain of the left source"`
	Gain2   float64 `name:"g2" default:"0.7" help:"Base gain of the right source"`
	Pan     float64 `default:"0" help:"Pan, -1 (left) to 1 (right)"`
	Master  float64 `default:"0.3" help:"Master gain"`
	BassL   float64 `name:"bass-l" default:"6" help:"Left bass weight"`
	TrebleL float64 `name:"treble-l" default:"2" help:"Left treble weight"`
	BassR   float64 `name:"bass-r" default:"6" help:"Right bass weight"`
	TrebleR float64 `name:"treble-r" default:"2" help:"Right treble weight"`

	Crossover float64 `default:"500" help:"Crossover frequency in Hz"`
	Q         float64 `default:"0.707" help:"Crossover quality factor"`
}

// Params converts the flags to mixer parameters.
func (f MixFlags) Params() mixer.Params {
	return mixer.Params{
		Gain1:   f.Gain1,
		Gain2:   f.Gain2,
		Pan:     f.Pan,
		BassL:   f.BassL,
		TrebleL: f.TrebleL,
		BassR:   f.BassR,
		TrebleR: f.TrebleR,
		Master:  f.Master,
	}
}

// Filters builds the band filters for sampleRate. The crossover must lie
// below Nyquist.
func (f MixFlags) Filters(sampleRate float64) (*mixer.Filters, error) {
	return mixer.NewFiltersHz(f.Crossover, f.Q, sampleRate)
}
