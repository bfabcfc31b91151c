// Package design converts high-level filter parameters into biquad
// coefficients.
//
// [Design] implements the classic RBJ-cookbook bilinear designs for the
// seven [Family] variants, parameterised by a cutoff Fc normalized to the
// sampling frequency (0 < Fc < 0.5), a quality factor Q and, for the
// peaking and shelving families, a gain in dB. The result feeds
// dsp/filter/biquad for runtime processing.
//
// Inputs are not range-checked: Q must be strictly positive and Fc should
// stay inside (0, 0.5). The tangent pre-warp diverges as Fc approaches
// Nyquist, and keeping it in range is the caller's job.
package design
