package output

import "math"

// Stats holds time-domain statistics of a rendered signal.
type Stats struct {
	Length        int
	DC            float64 // mean
	RMS           float64
	RMS_dB        float64
	Max           float64
	Min           float64
	Peak          float64 // max(|max|, |min|)
	Peak_dB       float64
	CrestFactor   float64 // peak / RMS (linear)
	Energy        float64 // sum of squares
	ZeroCrossings int
}

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

// emptyStats returns a zero-valued Stats with -Inf for the dB fields.
func emptyStats() Stats {
	return Stats{
		RMS_dB:  math.Inf(-1),
		Peak_dB: math.Inf(-1),
	}
}

// Accumulator gathers statistics incrementally across blocks, so a render
// loop can fold its output in as it goes without buffering the whole
// signal. Each sample is processed individually, which keeps the result
// bit-for-bit identical to a single [Calculate] over the concatenation.
type Accumulator struct {
	n             int
	sum           float64
	sumSq         float64
	maxVal        float64
	minVal        float64
	zeroCrossings int
	hasData       bool
	lastSample    float64
}

// NewAccumulator creates an empty statistics accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Add folds a block of samples into the running statistics.
func (a *Accumulator) Add(samples []float64) {
	for _, x := range samples {
		a.n++
		a.sum += x
		a.sumSq += x * x

		if !a.hasData {
			a.maxVal = x
			a.minVal = x
			a.hasData = true
		} else {
			if x > a.maxVal {
				a.maxVal = x
			}

			if x < a.minVal {
				a.minVal = x
			}
		}

		if a.n > 1 && a.lastSample*x < 0 {
			a.zeroCrossings++
		}

		a.lastSample = x
	}
}

// Count returns the number of samples folded in so far.
func (a *Accumulator) Count() int {
	return a.n
}

// Result computes the final statistics from the accumulated data.
func (a *Accumulator) Result() Stats {
	if a.n == 0 {
		return emptyStats()
	}

	nf := float64(a.n)
	rms := math.Sqrt(a.sumSq / nf)
	peak := math.Max(math.Abs(a.maxVal), math.Abs(a.minVal))

	var crest float64
	if rms > 0 {
		crest = peak / rms
	}

	return Stats{
		Length:        a.n,
		DC:            a.sum / nf,
		RMS:           rms,
		RMS_dB:        ampTodB(rms),
		Max:           a.maxVal,
		Min:           a.minVal,
		Peak:          peak,
		Peak_dB:       ampTodB(peak),
		CrestFactor:   crest,
		Energy:        a.sumSq,
		ZeroCrossings: a.zeroCrossings,
	}
}

// Reset clears all accumulated data so the Accumulator can be reused.
func (a *Accumulator) Reset() {
	*a = Accumulator{}
}

// Calculate computes the statistics of a signal in a single pass.
func Calculate(signal []float64) Stats {
	acc := NewAccumulator()
	acc.Add(signal)

	return acc.Result()
}
