package design

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-synthgraph/dsp/filter/biquad"
	"github.com/cwbudde/algo-synthgraph/internal/testutil"
)

func TestLowpassValidation(t *testing.T) {
	tests := []struct {
		name string
		freq float64
		q    float64
		sr   float64
	}{
		{name: "zero freq", freq: 0, q: 0.7, sr: 48000},
		{name: "negative freq", freq: -100, q: 0.7, sr: 48000},
		{name: "at nyquist", freq: 24000, q: 0.7, sr: 48000},
		{name: "above nyquist", freq: 30000, q: 0.7, sr: 48000},
		{name: "zero q", freq: 1000, q: 0, sr: 48000},
		{name: "negative q", freq: 1000, q: -1, sr: 48000},
		{name: "zero sample rate", freq: 1000, q: 0.7, sr: 0},
		{name: "nan freq", freq: math.NaN(), q: 0.7, sr: 48000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Lowpass(tt.freq, tt.q, tt.sr); err == nil {
				t.Fatalf("Lowpass(%v, %v, %v): expected error", tt.freq, tt.q, tt.sr)
			}
			if _, err := Highpass(tt.freq, tt.q, tt.sr); err == nil {
				t.Fatalf("Highpass(%v, %v, %v): expected error", tt.freq, tt.q, tt.sr)
			}
		})
	}
}

func TestLowpassUnityDCGain(t *testing.T) {
	c, err := Lowpass(1000, 0.7071, 48000)
	if err != nil {
		t.Fatal(err)
	}

	// DC gain of a lowpass is (B0+B1+B2)/(1+A1+A2) = 1.
	dc := (c.B0 + c.B1 + c.B2) / (1 + c.A1 + c.A2)
	if math.Abs(dc-1) > 1e-12 {
		t.Fatalf("DC gain = %.15f, want 1", dc)
	}
}

func TestLowpassCutoffMinus3DB(t *testing.T) {
	// At critical damping (Q = 1/sqrt2) the magnitude at cutoff is -3.01 dB.
	const (
		sr     = 44100.0
		cutoff = 800.0
	)

	c, err := Lowpass(cutoff, 1/math.Sqrt2, sr)
	if err != nil {
		t.Fatal(err)
	}

	db := c.MagnitudeDB(cutoff, sr)
	want := 20 * math.Log10(1/math.Sqrt2)
	if math.Abs(db-want) > 0.01 {
		t.Fatalf("magnitude at cutoff = %.4f dB, want %.4f dB", db, want)
	}
}

func TestLowpassResonancePeak(t *testing.T) {
	// High Q produces a peak near cutoff of roughly Q in linear gain.
	const (
		sr     = 48000.0
		cutoff = 1000.0
		q      = 4.0
	)

	c, err := Lowpass(cutoff, q, sr)
	if err != nil {
		t.Fatal(err)
	}

	peak := math.Sqrt(c.MagnitudeSquared(cutoff, sr))
	if math.Abs(peak-q) > 0.1 {
		t.Fatalf("gain at cutoff = %.4f, want ~%v", peak, q)
	}
}

func TestLowpassStopbandRolloff(t *testing.T) {
	// Second-order lowpass: about -12 dB/octave well above cutoff.
	const (
		sr     = 48000.0
		cutoff = 500.0
	)

	c, err := Lowpass(cutoff, 1/math.Sqrt2, sr)
	if err != nil {
		t.Fatal(err)
	}

	oct1 := c.MagnitudeDB(4000, sr)
	oct2 := c.MagnitudeDB(8000, sr)
	slope := oct2 - oct1
	if slope > -10 || slope < -14 {
		t.Fatalf("rolloff = %.2f dB/octave, want ~-12", slope)
	}
}

func TestHighpassMirrorsLowpass(t *testing.T) {
	const (
		sr   = 48000.0
		freq = 2000.0
	)

	lp, err := Lowpass(freq, 1/math.Sqrt2, sr)
	if err != nil {
		t.Fatal(err)
	}
	hp, err := Highpass(freq, 1/math.Sqrt2, sr)
	if err != nil {
		t.Fatal(err)
	}

	// Butterworth LP/HP at the same cutoff are power-complementary.
	sum := lp.MagnitudeSquared(freq, sr) + hp.MagnitudeSquared(freq, sr)
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("|LP|^2+|HP|^2 at cutoff = %.12f, want 1", sum)
	}

	// HP blocks DC.
	dc := hp.B0 + hp.B1 + hp.B2
	if math.Abs(dc) > 1e-12 {
		t.Fatalf("highpass DC numerator = %v, want 0", dc)
	}
}

func TestLowpassSteadyStateSineGain(t *testing.T) {
	const (
		sr   = 44100.0
		freq = 1000.0
	)

	c, err := Lowpass(freq, 1/math.Sqrt2, sr)
	if err != nil {
		t.Fatal(err)
	}
	s := biquad.NewSection(c)

	// Two seconds of a unit sine at the cutoff; the second holds exactly
	// 1000 full cycles, so its RMS is free of partial-cycle bias.
	signal := testutil.DeterministicSine(freq, sr, 1, 2*44100)
	s.ProcessBlock(signal)

	var sumSq float64
	for _, v := range signal[44100:] {
		sumSq += v * v
	}
	rms := math.Sqrt(sumSq / 44100)

	// -3.01 dB: output RMS of the settled filter is (1/sqrt(2))^2.
	want := 0.5
	if math.Abs(rms-want) > 0.005 {
		t.Fatalf("steady-state RMS = %.4f, want %.4f", rms, want)
	}
}
