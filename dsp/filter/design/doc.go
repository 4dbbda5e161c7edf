// Package design derives biquad coefficients for resonant lowpass and
// highpass filters from cutoff frequency, quality factor and sample rate.
//
// Parameters are validated eagerly: designs reject cutoff frequencies at or
// above Nyquist and non-positive Q instead of silently clamping.
package design
