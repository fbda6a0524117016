// SPDX-License-Identifier: MIT
// Package: fsklab/fsk
//
// synth.go — one carrier sample per call.
//
// Phase modes:
//   • Continuous (CPFSK): phase' = (prevPhase + 2π·f·dt) mod 2π. Only the slope
//     changes at a symbol boundary; the waveform itself has no jump.
//   • Discontinuous: phase = (2π·f·t) mod 2π from absolute time, carry reset
//     to 0. A phase jump at each symbol boundary is expected in this mode.
//
// Value = A·sin(phase) + noiseLevel·N(0,1). With noiseLevel 0 no variate is
// drawn and the value is exactly A·sin(phase).

package fsk

import (
	"math"
	"math/rand"
)

// Synthesize computes the sample at absolute time t for symbol under m.
// prevPhase is the carry returned by the previous call; dt is the time since
// that call. rng is used only when m has a non-zero noise level.
//
// Errors (ErrInvalidParameter): symbol outside [0, M-1], t or dt negative or
// not finite. Parameter-level failures are rejected earlier by Compile.
//
// Complexity: O(1).
func Synthesize(t float64, symbol int, m Modulation, prevPhase, dt float64, rng *rand.Rand) (Point, error) {
	if err := validateSymbol(MethodSynthesize, symbol, m.plan.Order()); err != nil {
		return Point{}, err
	}
	if err := validateDelta(MethodSynthesize, dt); err != nil {
		return Point{}, err
	}
	if !finite(t) || t < 0 {
		return Point{}, fskErrorf(MethodSynthesize, ErrInvalidParameter, "time must be finite and >= 0, got %v", t)
	}

	freq := m.plan.Frequency(symbol)

	var phase, carry float64
	if m.continuous {
		phase = wrapPhase(prevPhase + twoPi*freq*dt)
		carry = phase
	} else {
		phase = wrapPhase(twoPi * freq * t)
		carry = 0
	}

	value := m.amplitude * math.Sin(phase)
	if m.noise > 0 {
		value += m.noise * Gaussian(rng)
	}

	return Point{Value: value, Phase: phase, Carry: carry, Frequency: freq}, nil
}

// wrapPhase maps an angle into [0, 2π).
func wrapPhase(x float64) float64 {
	x = math.Mod(x, twoPi)
	if x < 0 {
		x += twoPi
	}
	if x >= twoPi {
		return 0
	}

	return x
}
