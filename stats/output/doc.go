// Package output computes time-domain statistics of rendered audio.
//
// The block-based [Accumulator] is meant for render loops: folding each
// output block into the running statistics keeps the signal live past any
// dead-code elimination and yields peak, RMS and DC figures for the whole
// run without buffering it.
package output
