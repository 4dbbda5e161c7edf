package graph

import (
	"fmt"

	"github.com/cwbudde/algo-synthgraph/dsp/osc"
)

// Preset selects one of the reference benchmark topologies.
type Preset int

const (
	// PresetSimple is a single full-scale 440 Hz sine oscillator.
	PresetSimple Preset = iota

	// PresetMedium mixes a 440 Hz sine with a 442 Hz sawtooth, then runs
	// the sum through a 1 kHz lowpass (Q 0.7) and an ADSR gain stage.
	PresetMedium

	// PresetComplex runs five detuned oscillators through two parallel
	// filter and envelope branches, sums the branches and feeds the result
	// into a half-second feedback delay.
	PresetComplex
)

func (p Preset) String() string {
	switch p {
	case PresetSimple:
		return "simple"
	case PresetMedium:
		return "medium"
	case PresetComplex:
		return "complex"
	default:
		return fmt.Sprintf("Preset(%d)", int(p))
	}
}

// ParsePreset maps a preset name to its [Preset] value.
func ParsePreset(name string) (Preset, error) {
	switch name {
	case "simple":
		return PresetSimple, nil
	case "medium":
		return PresetMedium, nil
	case "complex":
		return PresetComplex, nil
	default:
		return 0, fmt.Errorf("unknown preset: %q", name)
	}
}

// NewPreset builds the executor for one of the reference topologies.
func NewPreset(p Preset) (*Executor, error) {
	switch p {
	case PresetSimple:
		return newSimple()
	case PresetMedium:
		return newMedium()
	case PresetComplex:
		return newComplex()
	default:
		return nil, fmt.Errorf("unknown preset: %v", p)
	}
}

func newSimple() (*Executor, error) {
	b := NewBuilder()
	b.Oscillator(osc.ShapeSine, 440, 1)
	return b.Build()
}

func newMedium() (*Executor, error) {
	b := NewBuilder()
	sine := b.Oscillator(osc.ShapeSine, 440, 1)
	saw := b.Oscillator(osc.ShapeSawtooth, 442, 1)
	sum := b.Mix(In(sine), In(saw))
	lp := b.Lowpass(sum, 1000, 0.7)
	b.Envelope(lp, 0.01, 0.1, 0.7, 0.2)
	return b.Build()
}

func newComplex() (*Executor, error) {
	b := NewBuilder()

	osc1 := b.Oscillator(osc.ShapeSine, 440, 0.3)
	osc2 := b.Oscillator(osc.ShapeSawtooth, 450, 0.3)
	osc3 := b.Oscillator(osc.ShapeSine, 460, 0.3)
	osc4 := b.Oscillator(osc.ShapeSawtooth, 470, 0.3)
	osc5 := b.Oscillator(osc.ShapeSine, 480, 0.3)

	mixA := b.Mix(In(osc1), In(osc2), In(osc3))
	lpA := b.Lowpass(mixA, 800, 0.5)
	envA := b.Envelope(lpA, 0.01, 0.1, 0.7, 0.2)

	mixB := b.Mix(In(osc4), In(osc5))
	lpB := b.Lowpass(mixB, 1200, 0.5)
	envB := b.Envelope(lpB, 0.02, 0.15, 0.6, 0.3)

	sum := b.Mix(In(envA), In(envB))
	b.Delay(sum, 0.5, 0.3)

	return b.Build()
}
