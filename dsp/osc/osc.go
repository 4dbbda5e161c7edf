package osc

import (
	"fmt"
	"math"
)

const twoPi = 2 * math.Pi

// Shape identifies the waveform an [Oscillator] produces.
type Shape int

const (
	// ShapeSine produces sin(phase).
	ShapeSine Shape = iota
	// ShapeSawtooth produces a zero-DC ramp rising linearly from -1 to 1
	// across each cycle (phase/pi - 1).
	ShapeSawtooth
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeSine:
		return "sine"
	case ShapeSawtooth:
		return "sawtooth"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

func validShape(s Shape) bool {
	return s == ShapeSine || s == ShapeSawtooth
}

// Oscillator generates one periodic waveform sample at a time from a phase
// accumulator held in radians and wrapped to [0, 2*pi). Amplitude is not
// applied here; callers scale the output.
type Oscillator struct {
	sampleRate float64
	frequency  float64
	shape      Shape

	phase     float64
	phaseStep float64
}

// New creates an oscillator at the given sample rate, shape and frequency.
func New(sampleRate float64, shape Shape, freqHz float64) (*Oscillator, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("osc sample rate must be > 0: %f", sampleRate)
	}
	if !validShape(shape) {
		return nil, fmt.Errorf("osc shape unknown: %d", int(shape))
	}

	o := &Oscillator{sampleRate: sampleRate, shape: shape}
	if err := o.SetFrequency(freqHz); err != nil {
		return nil, err
	}
	return o, nil
}

// SetFrequency updates the oscillator frequency in Hz. The phase is left
// untouched so frequency changes are click-free.
func (o *Oscillator) SetFrequency(freqHz float64) error {
	if freqHz <= 0 || math.IsNaN(freqHz) || math.IsInf(freqHz, 0) {
		return fmt.Errorf("osc frequency must be > 0: %f", freqHz)
	}
	o.frequency = freqHz
	o.phaseStep = twoPi * freqHz / o.sampleRate
	return nil
}

// Frequency returns the configured frequency in Hz.
func (o *Oscillator) Frequency() float64 { return o.frequency }

// Shape returns the configured waveform shape.
func (o *Oscillator) Shape() Shape { return o.shape }

// Phase returns the current phase in [0, 2*pi).
func (o *Oscillator) Phase() float64 { return o.phase }

// Reset rewinds the phase accumulator to zero.
func (o *Oscillator) Reset() {
	o.phase = 0
}

// NextSample computes the sample for the current phase, then advances and
// wraps the phase.
func (o *Oscillator) NextSample() float64 {
	var s float64
	switch o.shape {
	case ShapeSawtooth:
		s = o.phase/math.Pi - 1
	default:
		s = math.Sin(o.phase)
	}

	o.phase += o.phaseStep
	if o.phase >= twoPi {
		// Mod instead of repeated subtraction keeps the wrap exact even
		// when phaseStep spans several cycles.
		o.phase = math.Mod(o.phase, twoPi)
	}

	return s
}

// ProcessBlock fills buf with consecutive samples. Zero-alloc.
func (o *Oscillator) ProcessBlock(buf []float64) {
	step := o.phaseStep
	phase := o.phase

	switch o.shape {
	case ShapeSawtooth:
		for i := range buf {
			buf[i] = phase/math.Pi - 1
			phase += step
			if phase >= twoPi {
				phase = math.Mod(phase, twoPi)
			}
		}
	default:
		for i := range buf {
			buf[i] = math.Sin(phase)
			phase += step
			if phase >= twoPi {
				phase = math.Mod(phase, twoPi)
			}
		}
	}

	o.phase = phase
}
