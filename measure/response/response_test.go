package response

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-synthgraph/dsp/filter/biquad"
	"github.com/cwbudde/algo-synthgraph/dsp/filter/design"
	"github.com/cwbudde/algo-synthgraph/internal/testutil"
)

func TestMagnitudeSpectrumValidation(t *testing.T) {
	tests := []struct {
		name    string
		signal  []float64
		fftSize int
		wantErr error
	}{
		{"empty signal", nil, 64, ErrEmptySignal},
		{"non power of two", []float64{1}, 48, ErrInvalidFFTSize},
		{"zero size", []float64{1}, 0, ErrInvalidFFTSize},
		{"signal too long", make([]float64, 128), 64, ErrSignalTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := MagnitudeSpectrum(tt.signal, tt.fftSize); err != tt.wantErr {
				t.Fatalf("MagnitudeSpectrum error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMagnitudeSpectrumImpulse(t *testing.T) {
	// A unit impulse has unit magnitude in every bin.
	impulse := testutil.Impulse(1, 0)

	mags, err := MagnitudeSpectrum(impulse, 64)
	if err != nil {
		t.Fatalf("MagnitudeSpectrum: %v", err)
	}

	if len(mags) != 33 {
		t.Fatalf("len(mags) = %d, want 33", len(mags))
	}

	for i, m := range mags {
		if math.Abs(m-1) > 1e-12 {
			t.Errorf("bin %d magnitude = %v, want 1", i, m)
		}
	}
}

func TestMagnitudeSpectrumSine(t *testing.T) {
	const (
		fftSize    = 1024
		sampleRate = 1024.0
		freq       = 64.0 // exactly bin 64
	)

	signal := testutil.DeterministicSine(freq, sampleRate, 1, fftSize)

	mags, err := MagnitudeSpectrum(signal, fftSize)
	if err != nil {
		t.Fatalf("MagnitudeSpectrum: %v", err)
	}

	peak := NearestBin(freq, fftSize, sampleRate)
	if peak != 64 {
		t.Fatalf("NearestBin = %d, want 64", peak)
	}

	// A full-scale bin-centered sine carries fftSize/2 in its bin.
	if want := float64(fftSize) / 2; math.Abs(mags[peak]-want) > 1e-6 {
		t.Errorf("peak magnitude = %v, want %v", mags[peak], want)
	}

	for i, m := range mags {
		if i == peak {
			continue
		}
		if m > 1e-6 {
			t.Errorf("bin %d magnitude = %v, want ~0", i, m)
		}
	}
}

func TestBinFrequency(t *testing.T) {
	if got := BinFrequency(512, 4096, 44100); math.Abs(got-5512.5) > 1e-12 {
		t.Errorf("BinFrequency(512, 4096, 44100) = %v, want 5512.5", got)
	}
}

func TestSectionMagnitudeDB(t *testing.T) {
	const sampleRate = 44100.0

	coeffs, err := design.Lowpass(1000, math.Sqrt2/2, sampleRate)
	if err != nil {
		t.Fatalf("Lowpass: %v", err)
	}
	s := biquad.NewSection(coeffs)

	const fftSize = 16384

	// Butterworth lowpass: unity at DC, -3 dB at the cutoff.
	dc, err := SectionMagnitudeDB(s, 0, sampleRate, fftSize)
	if err != nil {
		t.Fatalf("SectionMagnitudeDB: %v", err)
	}
	if math.Abs(dc) > 0.01 {
		t.Errorf("DC gain = %.3f dB, want 0", dc)
	}

	cutoff, err := SectionMagnitudeDB(s, 1000, sampleRate, fftSize)
	if err != nil {
		t.Fatalf("SectionMagnitudeDB: %v", err)
	}
	if math.Abs(cutoff-(-3.01)) > 0.1 {
		t.Errorf("cutoff gain = %.3f dB, want about -3.01", cutoff)
	}

	// Measurement must not disturb processing state.
	if s.State() != [4]float64{} {
		t.Errorf("section state changed by measurement: %v", s.State())
	}
}

func TestSectionMagnitudeDBValidation(t *testing.T) {
	s := biquad.NewSection(biquad.Coefficients{B0: 1})

	if _, err := SectionMagnitudeDB(s, 1000, 0, 1024); err != ErrInvalidSampleRate {
		t.Errorf("zero sample rate error = %v, want ErrInvalidSampleRate", err)
	}
	if _, err := SectionMagnitudeDB(s, 1000, 44100, 1000); err != ErrInvalidFFTSize {
		t.Errorf("non power of two error = %v, want ErrInvalidFFTSize", err)
	}
}
