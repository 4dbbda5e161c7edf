package mix

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-synthgraph/dsp/core"
)

// Into sums the sources sample-wise into dst: dst[i] = sum_k src_k[i].
// All sources must have the same length as dst. dst is overwritten.
func Into(dst []float64, sources ...[]float64) error {
	core.Zero(dst)
	return AccumulateInto(dst, sources...)
}

// AccumulateInto adds the sources sample-wise onto dst without clearing it.
func AccumulateInto(dst []float64, sources ...[]float64) error {
	for k, src := range sources {
		if len(src) != len(dst) {
			return fmt.Errorf("mix source %d length %d != dst length %d", k, len(src), len(dst))
		}
		vecmath.AddBlockInPlace(dst, src)
	}
	return nil
}

// WeightedInto sums the sources with per-source gains into dst:
// dst[i] = sum_k gains[k]*src_k[i]. scratch must be at least as long as
// dst; it is used to apply gains without allocating.
func WeightedInto(dst, scratch []float64, sources [][]float64, gains []float64) error {
	if len(gains) != len(sources) {
		return fmt.Errorf("mix gains length %d != sources length %d", len(gains), len(sources))
	}
	if len(scratch) < len(dst) {
		return fmt.Errorf("mix scratch length %d < dst length %d", len(scratch), len(dst))
	}

	core.Zero(dst)
	scratch = scratch[:len(dst)]

	for k, src := range sources {
		if len(src) != len(dst) {
			return fmt.Errorf("mix source %d length %d != dst length %d", k, len(src), len(dst))
		}

		if gains[k] == 1 {
			vecmath.AddBlockInPlace(dst, src)
			continue
		}

		vecmath.ScaleBlock(scratch, src, gains[k])
		vecmath.AddBlockInPlace(dst, scratch)
	}

	return nil
}
