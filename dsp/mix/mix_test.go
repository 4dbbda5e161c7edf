package mix

import (
	"math"
	"testing"
)

func ramp(n int, start, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

func TestInto(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{10, 20, 30, 40}
	dst := []float64{99, 99, 99, 99} // must be overwritten

	if err := Into(dst, a, b); err != nil {
		t.Fatal(err)
	}

	want := []float64{11, 22, 33, 44}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestIntoLengthMismatch(t *testing.T) {
	dst := make([]float64, 4)
	if err := Into(dst, make([]float64, 3)); err == nil {
		t.Fatal("expected error for mismatched source length")
	}
}

func TestAccumulateInto(t *testing.T) {
	dst := []float64{1, 1}
	if err := AccumulateInto(dst, []float64{2, 3}); err != nil {
		t.Fatal(err)
	}
	if dst[0] != 3 || dst[1] != 4 {
		t.Fatalf("unexpected dst: %v", dst)
	}
}

func TestWeightedInto(t *testing.T) {
	a := ramp(8, 0, 1)
	b := ramp(8, 100, -1)
	dst := make([]float64, 8)
	scratch := make([]float64, 8)

	if err := WeightedInto(dst, scratch, [][]float64{a, b}, []float64{0.5, 2}); err != nil {
		t.Fatal(err)
	}

	for i := range dst {
		want := 0.5*a[i] + 2*b[i]
		if math.Abs(dst[i]-want) > 1e-12 {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], want)
		}
	}
}

func TestWeightedIntoUnityGainFastPath(t *testing.T) {
	a := ramp(16, 1, 0.25)
	dst := make([]float64, 16)
	scratch := make([]float64, 16)

	if err := WeightedInto(dst, scratch, [][]float64{a}, []float64{1}); err != nil {
		t.Fatal(err)
	}

	for i := range dst {
		if dst[i] != a[i] {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], a[i])
		}
	}
}

func TestWeightedIntoValidation(t *testing.T) {
	dst := make([]float64, 4)
	scratch := make([]float64, 4)
	src := make([]float64, 4)

	if err := WeightedInto(dst, scratch, [][]float64{src}, nil); err == nil {
		t.Fatal("expected error for gains length mismatch")
	}

	if err := WeightedInto(dst, make([]float64, 2), [][]float64{src}, []float64{1}); err == nil {
		t.Fatal("expected error for short scratch")
	}

	if err := WeightedInto(dst, scratch, [][]float64{make([]float64, 3)}, []float64{1}); err == nil {
		t.Fatal("expected error for short source")
	}
}

func TestMixLinearity(t *testing.T) {
	// mix([a,b]) == mix([a]) + mix([b]) sample-wise at unity gains.
	a := ramp(32, -1, 0.1)
	b := ramp(32, 5, -0.3)

	both := make([]float64, 32)
	onlyA := make([]float64, 32)
	onlyB := make([]float64, 32)

	if err := Into(both, a, b); err != nil {
		t.Fatal(err)
	}
	if err := Into(onlyA, a); err != nil {
		t.Fatal(err)
	}
	if err := Into(onlyB, b); err != nil {
		t.Fatal(err)
	}

	for i := range both {
		if both[i] != onlyA[i]+onlyB[i] {
			t.Fatalf("sample %d: %v != %v + %v", i, both[i], onlyA[i], onlyB[i])
		}
	}
}
