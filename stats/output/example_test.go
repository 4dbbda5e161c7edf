package output_test

import (
	"fmt"

	"github.com/cwbudde/algo-synthgraph/stats/output"
)

func ExampleCalculate() {
	s := output.Calculate([]float64{1, -1, 1, -1})

	fmt.Printf("peak %.1f rms %.1f dc %.1f crossings %d\n", s.Peak, s.RMS, s.DC, s.ZeroCrossings)
	// Output:
	// peak 1.0 rms 1.0 dc 0.0 crossings 3
}

func ExampleAccumulator() {
	acc := output.NewAccumulator()
	acc.Add([]float64{0.5, 0.5})
	acc.Add([]float64{-0.5, -0.5})

	s := acc.Result()
	fmt.Printf("samples %d peak %.1f rms %.1f\n", s.Length, s.Peak, s.RMS)
	// Output:
	// samples 4 peak 0.5 rms 0.5
}
