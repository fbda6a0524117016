// SPDX-License-Identifier: MIT
// Package: fsklab/fsk
//
// scheduler.go — symbol timing.
//
// Contract:
//   • Advance adds dt to SinceSymbol and draws one symbol per elapsed period.
//   • The residue is reduced with math.Mod, never a single subtraction, so a
//     slow tick covering several periods keeps the symbol clock in sync.
//   • dt must already be clamped by the driver (see ClampDelta); the loop runs
//     once per elapsed period.

package fsk

import (
	"math"
	"math/rand"
)

// Advance moves the symbol clock of s forward by dt and returns how many new
// symbols were drawn. Each draw is uniform over [0, M-1] and independent of the
// previous symbol; the last one becomes s.Symbol.
//
// Errors: ErrInvalidParameter when dt is negative or not finite; s is left
// untouched in that case.
//
// Complexity: O(1 + dt/period).
func Advance(s *State, m Modulation, dt float64, rng *rand.Rand) (int, error) {
	if err := validateDelta(MethodAdvance, dt); err != nil {
		return 0, err
	}

	since := s.SinceSymbol + dt
	if since < m.period {
		s.SinceSymbol = since

		return 0, nil
	}

	residue := math.Mod(since, m.period)
	// draws*period + residue == since, even when period is inexact.
	draws := int(math.Round((since - residue) / m.period))
	if draws < 1 {
		draws = 1
	}

	order := m.plan.Order()
	for i := 0; i < draws; i++ {
		s.Symbol = rng.Intn(order)
	}
	s.SinceSymbol = residue

	return draws, nil
}

// ClampDelta bounds a raw clock delta to [0, maxDelta]. NaN becomes 0.
// Drivers call it before Tick so a suspended session resumes without a huge
// time jump.
func ClampDelta(raw, maxDelta float64) float64 {
	if math.IsNaN(raw) || raw < 0 {
		return 0
	}
	if raw > maxDelta {
		return maxDelta
	}

	return raw
}
