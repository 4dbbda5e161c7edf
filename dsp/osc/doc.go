// Package osc provides phase-accumulator waveform oscillators.
//
// An [Oscillator] generates sine or sawtooth samples from a radian phase
// accumulator advanced by 2*pi*f/sampleRate per sample. The phase wraps via
// modulo, so precision does not degrade over arbitrarily long runs.
package osc
