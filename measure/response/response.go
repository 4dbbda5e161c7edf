package response

import (
	"errors"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-synthgraph/dsp/filter/biquad"
)

// Errors returned by response functions.
var (
	ErrEmptySignal       = errors.New("response: signal is empty")
	ErrInvalidFFTSize    = errors.New("response: fft size must be a positive power of two")
	ErrSignalTooLong     = errors.New("response: signal is longer than fft size")
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive")
)

// MagnitudeSpectrum returns the magnitude of the non-negative frequency
// bins [0..fftSize/2] of the zero-padded signal. fftSize must be a power
// of two no smaller than the signal length.
func MagnitudeSpectrum(signal []float64, fftSize int) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}

	if fftSize <= 0 || fftSize&(fftSize-1) != 0 {
		return nil, ErrInvalidFFTSize
	}

	if len(signal) > fftSize {
		return nil, ErrSignalTooLong
	}

	inData := make([]complex128, fftSize)
	for i, v := range signal {
		inData[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return nil, err
	}

	mags := make([]float64, fftSize/2+1)
	for i := range mags {
		mags[i] = cmplx.Abs(out[i])
	}

	return mags, nil
}

// BinFrequency returns the center frequency in Hz of an FFT bin.
func BinFrequency(bin, fftSize int, sampleRate float64) float64 {
	return float64(bin) * sampleRate / float64(fftSize)
}

// NearestBin returns the bin whose center frequency is closest to freqHz.
func NearestBin(freqHz float64, fftSize int, sampleRate float64) int {
	bin := int(math.Round(freqHz * float64(fftSize) / sampleRate))
	if bin < 0 {
		bin = 0
	}
	if bin > fftSize/2 {
		bin = fftSize / 2
	}
	return bin
}

// SectionMagnitudeDB measures a biquad section's magnitude response in dB
// at freqHz by transforming its impulse response. The section's processing
// state is untouched. Resolution is sampleRate/fftSize, so cutoff checks
// should use fftSize of at least a few thousand points.
func SectionMagnitudeDB(s *biquad.Section, freqHz, sampleRate float64, fftSize int) (float64, error) {
	if sampleRate <= 0 {
		return 0, ErrInvalidSampleRate
	}

	if fftSize <= 0 || fftSize&(fftSize-1) != 0 {
		return 0, ErrInvalidFFTSize
	}

	impulse := s.ImpulseResponse(fftSize)

	mags, err := MagnitudeSpectrum(impulse, fftSize)
	if err != nil {
		return 0, err
	}

	mag := mags[NearestBin(freqHz, fftSize, sampleRate)]
	if mag <= 0 {
		return math.Inf(-1), nil
	}

	return 20 * math.Log10(mag), nil
}
