// Package biquad provides the second-order recursive (biquad) filter runtime.
//
// A [Filter] pairs immutable [Coefficients] with a mutable Direct Form I
// history ([State]) and applies the recursion one sample at a time:
//
//	acc      = A0*x + A1*x1 + A2*x2
//	feedback = B1*y1 + B2*y2
//	y        = acc - feedback
//
// Filters are plain values. Each one owns its history exclusively, so two
// channels or two bands must never share a *Filter.
//
// Coefficient design lives in dsp/filter/design.
package biquad
