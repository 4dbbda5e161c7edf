package delay

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-synthgraph/dsp/core"
)

// Line is a fixed-capacity circular delay line with feedback.
//
// It uses a single index for both reads and writes: each ProcessSample
// call reads the oldest sample, mixes it into the output, overwrites the
// slot just read and advances. The effective delay therefore equals the
// active length in samples.
type Line struct {
	buffer   []float64
	length   int
	pos      int
	feedback float64
}

// New returns a delay line with the given capacity in samples. The active
// delay length starts at the full capacity and the feedback at 0.
func New(capacity int) (*Line, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("delay capacity must be > 0: %d", capacity)
	}
	return &Line{
		buffer: make([]float64, capacity),
		length: capacity,
	}, nil
}

// NewSeconds returns a delay line sized to ceil(seconds * sampleRate).
func NewSeconds(seconds, sampleRate float64) (*Line, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("delay sample rate must be > 0: %f", sampleRate)
	}
	if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return nil, fmt.Errorf("delay time must be > 0: %f", seconds)
	}
	return New(int(math.Ceil(seconds * sampleRate)))
}

// Capacity returns the buffer capacity in samples.
func (d *Line) Capacity() int { return cap(d.buffer) }

// DelaySamples returns the active delay length in samples.
func (d *Line) DelaySamples() int { return d.length }

// Feedback returns the feedback gain.
func (d *Line) Feedback() float64 { return d.feedback }

// SetDelaySamples sets the active delay length. n must be in
// [1, Capacity]. Changing the length rewinds the index, so reconfigure
// before processing, not mid-stream.
func (d *Line) SetDelaySamples(n int) error {
	if n <= 0 || n > cap(d.buffer) {
		return fmt.Errorf("delay length must be in [1, %d]: %d", cap(d.buffer), n)
	}
	d.length = n
	d.pos = 0
	return nil
}

// SetFeedback sets the feedback gain. Values outside [0, 1) are rejected
// rather than clamped: a gain of 1 or more would make the loop unstable.
func (d *Line) SetFeedback(g float64) error {
	if g < 0 || g >= 1 || math.IsNaN(g) {
		return fmt.Errorf("delay feedback must be in [0, 1): %f", g)
	}
	d.feedback = g
	return nil
}

// ProcessSample reads the sample delayed by the active length, computes
// output = input + feedback*delayed, writes the output into the slot just
// read and advances. The unit is causal: no lookahead.
func (d *Line) ProcessSample(x float64) float64 {
	delayed := d.buffer[d.pos]
	y := x + d.feedback*delayed

	d.buffer[d.pos] = core.FlushDenormals(y)
	d.pos++
	if d.pos >= d.length {
		d.pos = 0
	}

	return y
}

// ProcessBlock applies the delay to buf in place. Zero-alloc.
func (d *Line) ProcessBlock(buf []float64) {
	for i := range buf {
		buf[i] = d.ProcessSample(buf[i])
	}
}

// Reset zeroes the buffer contents and rewinds the index. Configuration
// (length, feedback) is kept.
func (d *Line) Reset() {
	core.Zero(d.buffer)
	d.pos = 0
}
