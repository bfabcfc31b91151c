// Package crossover splits one audio channel into bass and treble bands.
//
// A [Crossover] drives a second-order lowpass and a second-order highpass,
// designed at the same cutoff and Q, from the same input sample. The two
// bands are independent views of the input and are recombined by a weighted
// sum, not cascaded.
//
// With equal band weights the sum is not flat: for these second-order
// sections LP + HP = (1 + s^2) / (s^2 + s/Q + 1), a notch at the cutoff.
// Callers that want a flat unity path should weight the bands so that
// one of them dominates around the cutoff, or accept the dip as part of
// the tone-control character.
//
// Example:
//
//	xo, _ := crossover.NewHz(500, 0.707, 44000)
//	lo, hi := xo.ProcessSample(inputSample)
//	out := 6*lo + 2*hi
package crossover
