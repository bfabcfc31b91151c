package mixer

// Params are the per-call scalar inputs of the pipeline. None of them are
// validated by Process.
type Params struct {
	// Gain1 and Gain2 are the base gains of the left (src1) and right
	// (src2) channels before panning.
	Gain1 float64
	Gain2 float64

	// Pan shifts balance: positive attenuates left, negative attenuates
	// right. The nominal range is [-1, 1].
	Pan float64

	// Band weights applied to the crossover outputs of each channel.
	BassL   float64
	TrebleL float64
	BassR   float64
	TrebleR float64

	Master float64
}

// DefaultParams returns the power-on settings of the reference device.
func DefaultParams() Params {
	return Params{
		Gain1:   0.7,
		Gain2:   0.7,
		Pan:     0,
		BassL:   6,
		TrebleL: 2,
		BassR:   6,
		TrebleR: 2,
		Master:  0.3,
	}
}

// PanGains applies the linear pan law to the base gains g1 and g2.
// A positive pan scales the left gain by (1-pan), a negative pan scales
// the right gain by (1+pan). The other channel is left untouched, so this
// is not a constant-power law.
func PanGains(g1, g2, pan float64) (gL, gR float64) {
	gL, gR = g1, g2
	if pan > 0 {
		gL *= 1 - pan
	} else if pan < 0 {
		gR *= 1 + pan
	}
	return gL, gR
}
