package osc

import "testing"

func BenchmarkNextSampleSine(b *testing.B) {
	o, err := New(44100, ShapeSine, 440)
	if err != nil {
		b.Fatal(err)
	}

	var sink float64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink += o.NextSample()
	}
	_ = sink
}

func BenchmarkProcessBlock(b *testing.B) {
	for _, bc := range []struct {
		name  string
		shape Shape
	}{
		{"sine", ShapeSine},
		{"sawtooth", ShapeSawtooth},
	} {
		b.Run(bc.name, func(b *testing.B) {
			o, err := New(44100, bc.shape, 440)
			if err != nil {
				b.Fatal(err)
			}

			buf := make([]float64, 512)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				o.ProcessBlock(buf)
			}
		})
	}
}
