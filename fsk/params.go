// SPDX-License-Identifier: MIT
// Package: fsklab/fsk
//
// params.go — operator-facing modulation parameters and their validation.
//
// Contract:
//   • ModulationParams is a plain value, replaced wholesale between ticks.
//   • Compile validates once and returns a Modulation with the frequency plan
//     already chosen; per-sample code never branches on M again.
//   • All rejections wrap ErrInvalidParameter.

package fsk

import (
	"math"
)

// ModulationParams is the full set of knobs an operator can change.
// Which frequency pair is used depends only on Order: Mark/Space for M=2,
// Base/Spacing for M>2. The inactive pair is still validated.
type ModulationParams struct {
	Order           int     // alphabet size M (>=2)
	MarkFreq        float64 // Hz, binary symbol 1
	SpaceFreq       float64 // Hz, binary symbol 0
	BaseFreq        float64 // Hz, M-ary symbol 0
	FreqSpacing     float64 // Hz between adjacent M-ary symbols
	BaudRate        float64 // symbols per second (>0)
	Amplitude       float64 // carrier peak (>=0)
	NoiseLevel      float64 // AWGN standard deviation (>=0)
	ContinuousPhase bool    // CPFSK when true
}

// DefaultParams returns the parameters a fresh session starts with.
func DefaultParams() ModulationParams {
	return ModulationParams{
		Order:           2,
		MarkFreq:        5,
		SpaceFreq:       2,
		BaseFreq:        2,
		FreqSpacing:     2,
		BaudRate:        1,
		Amplitude:       1,
		NoiseLevel:      0,
		ContinuousPhase: true,
	}
}

// Validate reports whether p would be accepted by Compile.
func (p ModulationParams) Validate() error {
	_, err := Compile(p)

	return err
}

// Modulation is the validated, compiled form of ModulationParams.
// The zero value is not usable; obtain one from Compile.
type Modulation struct {
	plan       FrequencyPlan
	period     float64
	amplitude  float64
	noise      float64
	continuous bool
}

// Compile validates p and selects its frequency plan.
//
// Rejected (ErrInvalidParameter): Order < 2, BaudRate <= 0, any negative
// frequency, negative Amplitude or NoiseLevel, and any NaN/Inf field.
//
// Complexity: O(1).
func Compile(p ModulationParams) (Modulation, error) {
	if p.Order < MinOrder {
		return Modulation{}, fskErrorf(MethodCompile, ErrInvalidParameter, "order must be >= %d, got %d", MinOrder, p.Order)
	}
	if !finite(p.BaudRate) || p.BaudRate <= 0 {
		return Modulation{}, fskErrorf(MethodCompile, ErrInvalidParameter, "baud rate must be > 0, got %v", p.BaudRate)
	}

	bounded := [...]struct {
		name  string
		value float64
	}{
		{"mark frequency", p.MarkFreq},
		{"space frequency", p.SpaceFreq},
		{"base frequency", p.BaseFreq},
		{"frequency spacing", p.FreqSpacing},
		{"amplitude", p.Amplitude},
		{"noise level", p.NoiseLevel},
	}
	for _, f := range bounded {
		if err := validateNonNegative(f.name, f.value); err != nil {
			return Modulation{}, err
		}
	}

	var plan FrequencyPlan
	if p.Order == BinaryOrder {
		plan = Binary{Mark: p.MarkFreq, Space: p.SpaceFreq}
	} else {
		plan = MAry{M: p.Order, Base: p.BaseFreq, Spacing: p.FreqSpacing}
	}

	return Modulation{
		plan:       plan,
		period:     1 / p.BaudRate,
		amplitude:  p.Amplitude,
		noise:      p.NoiseLevel,
		continuous: p.ContinuousPhase,
	}, nil
}

// Plan returns the frequency plan chosen by Compile.
func (m Modulation) Plan() FrequencyPlan { return m.plan }

// Order returns the alphabet size M.
func (m Modulation) Order() int { return m.plan.Order() }

// SymbolPeriod returns 1/baud in seconds.
func (m Modulation) SymbolPeriod() float64 { return m.period }

// Continuous reports whether phase is integrated across symbol boundaries.
func (m Modulation) Continuous() bool { return m.continuous }

// BitsPerSymbol returns log2(M). Non-power-of-two orders yield a fractional value.
func (m Modulation) BitsPerSymbol() float64 { return math.Log2(float64(m.plan.Order())) }

// Frequencies returns the carrier frequency of every symbol, indexed by symbol.
func (m Modulation) Frequencies() []float64 {
	out := make([]float64, m.plan.Order())
	for s := range out {
		out[s] = m.plan.Frequency(s)
	}

	return out
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
