// SPDX-License-Identifier: MIT
// Package: fsklab/analysis
//
// spectrum.go — dominant tone of a sampled window.

package analysis

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/fsklab/fsk"
	"gonum.org/v1/gonum/dsp/fourier"
)

// MethodDominantFrequency prefixes errors from DominantFrequency.
const MethodDominantFrequency = "DominantFrequency"

// MinSpectrumSamples is the smallest window DominantFrequency accepts.
const MinSpectrumSamples = 8

// DominantFrequency returns the frequency in Hz of the strongest non-DC bin of
// the Hann-windowed spectrum of samples. Resolution is sampleRate/len(samples).
//
// Errors: ErrTooFewSamples below MinSpectrumSamples, ErrDegenerateSpan when
// the first and last timestamps do not give a positive finite span.
//
// Complexity: O(n log n).
func DominantFrequency(samples []fsk.Sample) (float64, error) {
	n := len(samples)
	if n < MinSpectrumSamples {
		return 0, analysisErrorf(MethodDominantFrequency, ErrTooFewSamples, "need %d, got %d", MinSpectrumSamples, n)
	}
	span := samples[n-1].Time - samples[0].Time
	if !(span > 0) || math.IsInf(span, 0) {
		return 0, analysisErrorf(MethodDominantFrequency, ErrDegenerateSpan, "span %v", span)
	}
	sampleRate := float64(n-1) / span

	seq := make([]float64, n)
	for i, s := range samples {
		seq[i] = s.Value * hann(i, n)
	}

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, seq)

	best, bestMag := 1, -1.0
	for i := 1; i < len(coeffs); i++ {
		if mag := cmplx.Abs(coeffs[i]); mag > bestMag {
			best, bestMag = i, mag
		}
	}

	return fft.Freq(best) * sampleRate, nil
}

func hann(i, n int) float64 {
	return 0.5 * (1.0 - math.Cos(2.0*math.Pi*float64(i)/float64(n-1)))
}
