// SPDX-License-Identifier: MIT
// Package: fsklab/fsk
//
// plan.go — symbol → carrier frequency mapping.
//
// This is the only place that knows about M-ary semantics. Everything else
// asks a FrequencyPlan for the frequency of a symbol.

package fsk

// FrequencyPlan maps a symbol in [0, Order()-1] to a carrier frequency in Hz.
// The set of implementations is closed: Binary and MAry.
type FrequencyPlan interface {
	Order() int
	Frequency(symbol int) float64
	isPlan()
}

// Binary is the classic mark/space plan used when M=2.
type Binary struct {
	Mark  float64 // frequency of symbol 1
	Space float64 // frequency of symbol 0
}

// Order always returns BinaryOrder.
func (Binary) Order() int { return BinaryOrder }

// Frequency returns Mark for MarkSymbol and Space otherwise.
func (b Binary) Frequency(symbol int) float64 {
	if symbol == MarkSymbol {
		return b.Mark
	}

	return b.Space
}

func (Binary) isPlan() {}

// MAry spaces M tones evenly: f(s) = Base + s*Spacing.
type MAry struct {
	M       int     // alphabet size (>2)
	Base    float64 // frequency of symbol 0
	Spacing float64 // distance between adjacent tones
}

// Order returns M.
func (p MAry) Order() int { return p.M }

// Frequency returns Base + symbol*Spacing.
func (p MAry) Frequency(symbol int) float64 {
	return p.Base + float64(symbol)*p.Spacing
}

func (MAry) isPlan() {}
