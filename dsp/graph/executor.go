package graph

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-synthgraph/dsp/core"
	"github.com/cwbudde/algo-synthgraph/dsp/delay"
	"github.com/cwbudde/algo-synthgraph/dsp/envelope"
	"github.com/cwbudde/algo-synthgraph/dsp/filter/biquad"
	"github.com/cwbudde/algo-synthgraph/dsp/filter/design"
	"github.com/cwbudde/algo-synthgraph/dsp/mix"
	"github.com/cwbudde/algo-synthgraph/dsp/osc"
)

// nodeRuntime holds the prepared processing state for one node. Exactly one
// of the processor fields is non-nil, matching the node kind.
type nodeRuntime struct {
	buf []float64

	oscillator *osc.Oscillator
	amplitude  float64

	filter *biquad.Section

	env *envelope.ADSR

	line *delay.Line

	// mix node: source buffers and gains resolved once at Prepare.
	srcs  [][]float64
	gains []float64
}

// Executor renders a validated graph block by block. Prepare allocates all
// per-node buffers up front; ProcessBlock never allocates.
type Executor struct {
	specs []nodeSpec
	nodes []nodeRuntime

	sampleRate   float64
	maxBlockSize int

	envScratch []float64
	mixScratch []float64

	prepared bool
}

// SampleRate returns the rate passed to the last Prepare, or 0 before it.
func (e *Executor) SampleRate() float64 { return e.sampleRate }

// MaxBlockSize returns the block capacity passed to the last Prepare.
func (e *Executor) MaxBlockSize() int { return e.maxBlockSize }

// NumNodes returns the node count of the built graph.
func (e *Executor) NumNodes() int { return len(e.specs) }

// Prepare builds every node's runtime state for the given sample rate and
// allocates block buffers of maxBlockSize samples. Envelope nodes receive a
// note-on, so rendering starts at the beginning of the attack segment.
// Prepare may be called again to re-run the graph from scratch.
func (e *Executor) Prepare(sampleRate float64, maxBlockSize int, opts ...core.ProcessorOption) error {
	if sampleRate <= 0 {
		return fmt.Errorf("graph sample rate must be positive: %f", sampleRate)
	}
	if maxBlockSize <= 0 {
		return fmt.Errorf("graph max block size must be positive: %d", maxBlockSize)
	}

	cfg := core.ApplyProcessorOptions(
		append([]core.ProcessorOption{
			core.WithSampleRate(sampleRate),
			core.WithMaxBlockSize(maxBlockSize),
		}, opts...)...)

	sampleRate = cfg.SampleRate
	maxBlockSize = cfg.MaxBlockSize

	nodes := make([]nodeRuntime, len(e.specs))

	for i, spec := range e.specs {
		rt := &nodes[i]
		rt.buf = make([]float64, maxBlockSize)

		switch spec.kind {
		case kindOscillator:
			o, err := osc.New(sampleRate, spec.shape, spec.freqHz)
			if err != nil {
				return fmt.Errorf("graph node %d: %w", i, err)
			}
			rt.oscillator = o
			rt.amplitude = spec.amplitude

		case kindMix:
			rt.srcs = make([][]float64, len(spec.inputs))
			rt.gains = make([]float64, len(spec.inputs))
			for j, in := range spec.inputs {
				rt.srcs[j] = nodes[in.Node].buf
				rt.gains[j] = in.Gain
			}

		case kindFilter:
			coeffs, err := design.Lowpass(spec.cutoffHz, spec.q, sampleRate)
			if err != nil {
				return fmt.Errorf("graph node %d: %w", i, err)
			}
			rt.filter = biquad.NewSection(coeffs)

		case kindEnvelope:
			env, err := envelope.New(sampleRate, spec.attackSec, spec.decaySec, spec.sustainLevel, spec.releaseSec)
			if err != nil {
				return fmt.Errorf("graph node %d: %w", i, err)
			}
			env.NoteOn()
			rt.env = env

		case kindDelay:
			line, err := delay.NewSeconds(spec.delaySeconds, sampleRate)
			if err != nil {
				return fmt.Errorf("graph node %d: %w", i, err)
			}
			if err := line.SetFeedback(spec.feedbackGain); err != nil {
				return fmt.Errorf("graph node %d: %w", i, err)
			}
			rt.line = line
		}
	}

	e.nodes = nodes
	e.sampleRate = sampleRate
	e.maxBlockSize = maxBlockSize
	e.envScratch = make([]float64, maxBlockSize)
	e.mixScratch = make([]float64, maxBlockSize)
	e.prepared = true

	return nil
}

// ProcessBlock renders blockSize samples through every node in order and
// returns the final node's output buffer. The returned slice aliases
// internal state and is valid until the next call.
func (e *Executor) ProcessBlock(blockSize int) ([]float64, error) {
	if !e.prepared {
		return nil, fmt.Errorf("graph executor is not prepared")
	}

	if blockSize <= 0 || blockSize > e.maxBlockSize {
		return nil, fmt.Errorf("block size must be in 1..%d: %d", e.maxBlockSize, blockSize)
	}

	for i := range e.nodes {
		rt := &e.nodes[i]
		dst := rt.buf[:blockSize]

		switch {
		case rt.oscillator != nil:
			rt.oscillator.ProcessBlock(dst)
			if rt.amplitude != 1 {
				vecmath.ScaleBlock(dst, dst, rt.amplitude)
			}

		case rt.srcs != nil:
			srcs := rt.srcs
			for j := range srcs {
				srcs[j] = e.nodes[e.specs[i].inputs[j].Node].buf[:blockSize]
			}
			if err := mix.WeightedInto(dst, e.mixScratch[:blockSize], srcs, rt.gains); err != nil {
				return nil, fmt.Errorf("graph node %d: %w", i, err)
			}

		case rt.filter != nil:
			src := e.nodes[e.specs[i].inputs[0].Node].buf[:blockSize]
			rt.filter.ProcessBlockTo(dst, src)

		case rt.env != nil:
			src := e.nodes[e.specs[i].inputs[0].Node].buf[:blockSize]
			env := e.envScratch[:blockSize]
			rt.env.ProcessBlock(env)
			vecmath.MulBlock(dst, src, env)

		case rt.line != nil:
			src := e.nodes[e.specs[i].inputs[0].Node].buf[:blockSize]
			core.CopyInto(dst, src)
			rt.line.ProcessBlock(dst)
		}
	}

	return e.nodes[len(e.nodes)-1].buf[:blockSize], nil
}

// NoteOn retriggers every envelope node.
func (e *Executor) NoteOn() {
	for i := range e.nodes {
		if env := e.nodes[i].env; env != nil {
			env.NoteOn()
		}
	}
}

// NoteOff releases every envelope node.
func (e *Executor) NoteOff() {
	for i := range e.nodes {
		if env := e.nodes[i].env; env != nil {
			env.NoteOff()
		}
	}
}

// Reset clears all node state without reallocating. Envelopes return to
// the triggered attack state, matching a fresh Prepare.
func (e *Executor) Reset() {
	for i := range e.nodes {
		rt := &e.nodes[i]
		switch {
		case rt.oscillator != nil:
			rt.oscillator.Reset()
		case rt.filter != nil:
			rt.filter.Reset()
		case rt.env != nil:
			rt.env.Reset()
			rt.env.NoteOn()
		case rt.line != nil:
			rt.line.Reset()
		}
	}
}
