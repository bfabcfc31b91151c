package design

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-mixeq/dsp/core"
	"github.com/cwbudde/algo-mixeq/dsp/filter/biquad"
)

var (
	// ErrUnsupportedFamily is returned for a family outside the defined set.
	ErrUnsupportedFamily = errors.New("unsupported filter family")

	// ErrInvalidSampleRate is returned by DesignHz for a non-positive or
	// non-finite sample rate.
	ErrInvalidSampleRate = errors.New("invalid sample rate")

	// ErrInvalidFrequency is returned by DesignHz for a cutoff outside
	// (0, sampleRate/2).
	ErrInvalidFrequency = errors.New("frequency out of range")
)

// Design returns the biquad coefficients for family at the normalized
// cutoff fc (fraction of the sampling frequency) with quality factor q.
// peakGainDB is only used by PeakingEQ, LowShelf and HighShelf; its sign
// selects the boost (>= 0) or cut (< 0) branch.
//
// The shelving families use a fixed sqrt(2) damping and ignore q.
//
// q and fc are not validated; see the package documentation.
func Design(family Family, fc, q, peakGainDB float64) (biquad.Coefficients, error) {
	k := math.Tan(math.Pi * fc)
	kk := k * k
	v := core.DBToLinear(math.Abs(peakGainDB))

	var c biquad.Coefficients

	switch family {
	case LowPass:
		norm := 1 / (1 + k/q + kk)
		c.A0 = kk * norm
		c.A1 = 2 * c.A0
		c.A2 = c.A0
		c.B1 = 2 * (kk - 1) * norm
		c.B2 = (1 - k/q + kk) * norm

	case HighPass:
		norm := 1 / (1 + k/q + kk)
		c.A0 = norm
		c.A1 = -2 * c.A0
		c.A2 = c.A0
		c.B1 = 2 * (kk - 1) * norm
		c.B2 = (1 - k/q + kk) * norm

	case BandPass:
		norm := 1 / (1 + k/q + kk)
		c.A0 = k / q * norm
		c.A1 = 0
		c.A2 = -c.A0
		c.B1 = 2 * (kk - 1) * norm
		c.B2 = (1 - k/q + kk) * norm

	case Notch:
		norm := 1 / (1 + k/q + kk)
		c.A0 = (1 + kk) * norm
		c.A1 = 2 * (kk - 1) * norm
		c.A2 = c.A0
		c.B1 = c.A1
		c.B2 = (1 - k/q + kk) * norm

	case PeakingEQ:
		if peakGainDB >= 0 {
			norm := 1 / (1 + 1/q*k + kk)
			c.A0 = (1 + v/q*k + kk) * norm
			c.A1 = 2 * (kk - 1) * norm
			c.A2 = (1 - v/q*k + kk) * norm
			c.B1 = c.A1
			c.B2 = (1 - 1/q*k + kk) * norm
		} else {
			norm := 1 / (1 + v/q*k + kk)
			c.A0 = (1 + 1/q*k + kk) * norm
			c.A1 = 2 * (kk - 1) * norm
			c.A2 = (1 - 1/q*k + kk) * norm
			c.B1 = c.A1
			c.B2 = (1 - v/q*k + kk) * norm
		}

	case LowShelf:
		if peakGainDB >= 0 {
			norm := 1 / (1 + math.Sqrt2*k + kk)
			c.A0 = (1 + math.Sqrt(2*v)*k + v*kk) * norm
			c.A1 = 2 * (v*kk - 1) * norm
			c.A2 = (1 - math.Sqrt(2*v)*k + v*kk) * norm
			c.B1 = 2 * (kk - 1) * norm
			c.B2 = (1 - math.Sqrt2*k + kk) * norm
		} else {
			norm := 1 / (1 + math.Sqrt(2*v)*k + v*kk)
			c.A0 = (1 + math.Sqrt2*k + kk) * norm
			c.A1 = 2 * (kk - 1) * norm
			c.A2 = (1 - math.Sqrt2*k + kk) * norm
			c.B1 = 2 * (v*kk - 1) * norm
			c.B2 = (1 - math.Sqrt(2*v)*k + v*kk) * norm
		}

	case HighShelf:
		if peakGainDB >= 0 {
			norm := 1 / (1 + math.Sqrt2*k + kk)
			c.A0 = (v + math.Sqrt(2*v)*k + kk) * norm
			c.A1 = 2 * (kk - v) * norm
			c.A2 = (v - math.Sqrt(2*v)*k + kk) * norm
			c.B1 = 2 * (kk - 1) * norm
			c.B2 = (1 - math.Sqrt2*k + kk) * norm
		} else {
			// Exact inverse of the boost transfer function: H(0)=1, H(Nyquist)=1/V.
			norm := 1 / (v + math.Sqrt(2*v)*k + kk)
			c.A0 = (1 + math.Sqrt2*k + kk) * norm
			c.A1 = 2 * (kk - 1) * norm
			c.A2 = (1 - math.Sqrt2*k + kk) * norm
			c.B1 = 2 * (kk - v) * norm
			c.B2 = (v - math.Sqrt(2*v)*k + kk) * norm
		}

	default:
		return biquad.Coefficients{}, fmt.Errorf("design: %w: %d", ErrUnsupportedFamily, int(family))
	}

	return c, nil
}

// New designs coefficients with [Design] and returns a filter with zero
// history. No filter is returned on error.
func New(family Family, fc, q, peakGainDB float64) (*biquad.Filter, error) {
	c, err := Design(family, fc, q, peakGainDB)
	if err != nil {
		return nil, err
	}
	return biquad.NewFilter(c), nil
}

// DesignHz is [Design] with the cutoff given in Hz at sampleRate. Unlike
// Design it rejects a cutoff at or above Nyquist.
func DesignHz(family Family, freqHz, sampleRate, q, peakGainDB float64) (biquad.Coefficients, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return biquad.Coefficients{}, fmt.Errorf("design: %w: %v", ErrInvalidSampleRate, sampleRate)
	}
	if freqHz <= 0 || freqHz >= sampleRate/2 || math.IsNaN(freqHz) {
		return biquad.Coefficients{}, fmt.Errorf("design: %w: %v Hz at %v Hz", ErrInvalidFrequency, freqHz, sampleRate)
	}
	return Design(family, freqHz/sampleRate, q, peakGainDB)
}
