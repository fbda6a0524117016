// SPDX-License-Identifier: MIT
// Package: fsklab/analysis

package analysis

import (
	"math"

	"github.com/katalvlaran/fsklab/fsk"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the amplitude distribution of a window.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64 // sample standard deviation; 0 for a single value
	Min    float64
	Max    float64
	RMS    float64
}

// Summarize computes a Summary of values. An empty input yields the zero Summary.
func Summarize(values []float64) Summary {
	n := len(values)
	if n == 0 {
		return Summary{}
	}

	s := Summary{
		Count: n,
		Min:   floats.Min(values),
		Max:   floats.Max(values),
		RMS:   math.Sqrt(floats.Dot(values, values) / float64(n)),
	}
	if n == 1 {
		s.Mean = values[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(values, nil)

	return s
}

// Values extracts the sample values in order.
func Values(samples []fsk.Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Value
	}

	return out
}

// Transitions counts adjacent pairs of symbol samples with different values.
func Transitions(symbols []fsk.Sample) int {
	n := 0
	for i := 1; i < len(symbols); i++ {
		if symbols[i].Value != symbols[i-1].Value {
			n++
		}
	}

	return n
}
