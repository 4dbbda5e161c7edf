package graph

import (
	"fmt"

	"github.com/cwbudde/algo-synthgraph/dsp/osc"
)

type nodeKind int

const (
	kindOscillator nodeKind = iota
	kindMix
	kindFilter
	kindEnvelope
	kindDelay
)

func (k nodeKind) String() string {
	switch k {
	case kindOscillator:
		return "oscillator"
	case kindMix:
		return "mix"
	case kindFilter:
		return "filter"
	case kindEnvelope:
		return "envelope"
	case kindDelay:
		return "delay"
	default:
		return fmt.Sprintf("nodeKind(%d)", int(k))
	}
}

// Input references an earlier node's output buffer with a mix gain.
type Input struct {
	Node int
	Gain float64
}

// In is shorthand for a unity-gain [Input].
func In(node int) Input {
	return Input{Node: node, Gain: 1}
}

// InGain builds an [Input] with an explicit gain.
func InGain(node int, gain float64) Input {
	return Input{Node: node, Gain: gain}
}

// nodeSpec is the construction-time description of one node. Runtimes are
// built from specs at Prepare so an executor can be re-prepared at a
// different sample rate.
type nodeSpec struct {
	kind   nodeKind
	inputs []Input

	// oscillator
	shape     osc.Shape
	freqHz    float64
	amplitude float64

	// filter
	cutoffHz float64
	q        float64

	// envelope
	attackSec    float64
	decaySec     float64
	sustainLevel float64
	releaseSec   float64

	// delay
	delaySeconds float64
	feedbackGain float64
}

// Builder accumulates nodes in topological order. Node methods return the
// index of the added node; inputs may only reference earlier indices, so
// the resulting graph is acyclic by construction (the delay node's
// internal feedback is the only intentional loop).
type Builder struct {
	specs []nodeSpec
}

// NewBuilder returns an empty graph builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Oscillator adds a waveform source with the given shape, frequency and
// output amplitude.
func (b *Builder) Oscillator(shape osc.Shape, freqHz, amplitude float64) int {
	return b.add(nodeSpec{
		kind:      kindOscillator,
		shape:     shape,
		freqHz:    freqHz,
		amplitude: amplitude,
	})
}

// Mix adds a summing node over the given inputs.
func (b *Builder) Mix(inputs ...Input) int {
	return b.add(nodeSpec{kind: kindMix, inputs: inputs})
}

// Lowpass adds a resonant lowpass filter fed by input.
func (b *Builder) Lowpass(input int, cutoffHz, q float64) int {
	return b.add(nodeSpec{
		kind:     kindFilter,
		inputs:   []Input{In(input)},
		cutoffHz: cutoffHz,
		q:        q,
	})
}

// Envelope adds an ADSR gain stage multiplying input by the envelope level.
// The envelope is triggered at Prepare and, absent a NoteOff, settles into
// indefinite sustain, which is the steady state throughput runs measure.
func (b *Builder) Envelope(input int, attackSec, decaySec, sustainLevel, releaseSec float64) int {
	return b.add(nodeSpec{
		kind:         kindEnvelope,
		inputs:       []Input{In(input)},
		attackSec:    attackSec,
		decaySec:     decaySec,
		sustainLevel: sustainLevel,
		releaseSec:   releaseSec,
	})
}

// Delay adds a feedback delay line fed by input.
func (b *Builder) Delay(input int, delaySeconds, feedbackGain float64) int {
	return b.add(nodeSpec{
		kind:         kindDelay,
		inputs:       []Input{In(input)},
		delaySeconds: delaySeconds,
		feedbackGain: feedbackGain,
	})
}

func (b *Builder) add(spec nodeSpec) int {
	b.specs = append(b.specs, spec)
	return len(b.specs) - 1
}

// Build validates the wiring and returns an unprepared [Executor].
func (b *Builder) Build() (*Executor, error) {
	if len(b.specs) == 0 {
		return nil, fmt.Errorf("graph has no nodes")
	}

	for i, spec := range b.specs {
		switch spec.kind {
		case kindOscillator:
			if len(spec.inputs) != 0 {
				return nil, fmt.Errorf("graph node %d (%v) must not have inputs", i, spec.kind)
			}
		case kindMix:
			if len(spec.inputs) == 0 {
				return nil, fmt.Errorf("graph node %d (%v) needs at least one input", i, spec.kind)
			}
		default:
			if len(spec.inputs) != 1 {
				return nil, fmt.Errorf("graph node %d (%v) needs exactly one input", i, spec.kind)
			}
		}

		for _, in := range spec.inputs {
			if in.Node < 0 || in.Node >= i {
				return nil, fmt.Errorf("graph node %d (%v) input %d out of order", i, spec.kind, in.Node)
			}
		}
	}

	specs := make([]nodeSpec, len(b.specs))
	copy(specs, b.specs)

	return &Executor{specs: specs}, nil
}
