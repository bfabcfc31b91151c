// Package mixer is a stereo two-band EQ mixing pipeline for 16-bit PCM.
//
// Each call to [Process] takes two mono sources, splits each one into a
// bass and a treble band with its channel's [crossover.Crossover],
// recombines the bands with per-channel weights, applies the base gains
// after a linear pan law, scales by the master gain and saturates to
// int16. The output is interleaved L/R.
//
// The pipeline keeps no state of its own. Filter history lives in the
// caller-owned [Filters] and persists across calls; [Params] are passed
// fresh every call. Process does not allocate, block or log, so it can run
// inside an audio callback. It is not safe for concurrent use on the same
// Filters.
//
// [Controller] is the companion for hosts that update parameters from
// another goroutine: it stores Params atomically and parses the
// "<param> <value>" text commands of the control protocol.
package mixer
