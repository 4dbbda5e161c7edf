// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form I processing for a single second-order
// section defined by [Coefficients]: a two-sample input and output history
// that persists across block boundaries until explicitly reset.
//
// This package provides the processing runtime only. Coefficient design
// (resonant lowpass/highpass) lives in dsp/filter/design.
package biquad
