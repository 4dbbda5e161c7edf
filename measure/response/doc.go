// Package response measures frequency responses of processing blocks by
// transforming their impulse responses with an FFT.
//
// Analytic responses computed from filter coefficients verify a design;
// the FFT path verifies what the running processor actually does, which
// also catches state-handling bugs in the sample loop.
package response
