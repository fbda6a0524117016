package fsk

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func mustCompile(t testing.TB, p ModulationParams) Modulation {
	t.Helper()
	m, err := Compile(p)
	require.NoError(t, err)

	return m
}

func baudParams(baud float64, order int) ModulationParams {
	p := DefaultParams()
	p.BaudRate = baud
	p.Order = order

	return p
}

// TestAdvance_Periodicity: baud 2 (period 0.5 s), ticks summing to exactly
// 2.5 s, none longer than a period ⇒ exactly 5 draws and zero residue.
func TestAdvance_Periodicity(t *testing.T) {
	t.Parallel()

	m := mustCompile(t, baudParams(2, 2))
	sequences := map[string][]float64{
		"quarter":  repeat(0.25, 10),
		"eighth":   repeat(0.125, 20),
		"half":     repeat(0.5, 5),
		"uneven":   {0.5, 0.25, 0.125, 0.125, 0.375, 0.125, 0.0625, 0.4375, 0.5},
		"withZero": {0, 0.5, 0, 0.5, 0.5, 0, 0.5, 0.5},
	}
	for name, ticks := range sequences {
		t.Run(name, func(t *testing.T) {
			var s State
			rng := rand.New(rand.NewSource(1))
			total := 0
			for _, dt := range ticks {
				n, err := Advance(&s, m, dt, rng)
				require.NoError(t, err)
				total += n
			}
			assert.Equal(t, 5, total)
			assert.InDelta(t, 0, s.SinceSymbol, 1e-12)
		})
	}
}

// TestAdvance_PeriodicityProperty draws arbitrary dyadic tick sequences that
// sum to 2.5 s with no tick above the period.
func TestAdvance_PeriodicityProperty(t *testing.T) {
	m := mustCompile(t, baudParams(2, 4))

	rapid.Check(t, func(rt *rapid.T) {
		const unit = 1.0 / 64
		remaining := 160 // 2.5 s in 1/64 s units
		var s State
		rng := rand.New(rand.NewSource(rapid.Int64().Draw(rt, "seed")))
		total := 0
		for remaining > 0 {
			k := rapid.IntRange(1, min(32, remaining)).Draw(rt, "k")
			remaining -= k
			n, err := Advance(&s, m, float64(k)*unit, rng)
			require.NoError(rt, err)
			require.LessOrEqual(rt, n, 1)
			require.GreaterOrEqual(rt, s.Symbol, 0)
			require.Less(rt, s.Symbol, 4)
			total += n
		}
		assert.Equal(rt, 5, total)
		assert.Equal(rt, 0.0, s.SinceSymbol)
	})
}

// TestAdvance_ManyPeriodsOneTick verifies modulo reduction when one tick covers
// several symbol periods.
func TestAdvance_ManyPeriodsOneTick(t *testing.T) {
	m := mustCompile(t, baudParams(8, 2)) // period 0.125
	s := State{SinceSymbol: 0.0625}

	n, err := Advance(&s, m, 0.4375, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, 0.0, s.SinceSymbol)

	s = State{}
	n, err = Advance(&s, m, 0.4375, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 0.0625, s.SinceSymbol)
}

// TestAdvance_NoDrift runs a long session with an inexact period and checks
// that the number of draws tracks elapsed/period.
func TestAdvance_NoDrift(t *testing.T) {
	m := mustCompile(t, baudParams(3, 2)) // period 1/3 is not representable
	var s State
	rng := rand.New(rand.NewSource(9))
	total := 0
	const dt = 1.0 / 64
	for i := 0; i < 64*300; i++ {
		n, err := Advance(&s, m, dt, rng)
		require.NoError(t, err)
		total += n
	}
	assert.InDelta(t, 900, total, 1)
	assert.GreaterOrEqual(t, s.SinceSymbol, 0.0)
	assert.Less(t, s.SinceSymbol, m.SymbolPeriod())
}

// TestAdvance_RejectsBadDelta leaves the state untouched.
func TestAdvance_RejectsBadDelta(t *testing.T) {
	m := mustCompile(t, DefaultParams())
	s := State{Time: 1, SinceSymbol: 0.4, Symbol: 1, Phase: 2}
	before := s

	for _, dt := range []float64{-0.01, math.NaN(), math.Inf(1)} {
		_, err := Advance(&s, m, dt, rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, ErrInvalidParameter)
		assert.Equal(t, before, s)
	}
}

// TestAdvance_SymbolsCoverAlphabet checks draws stay in range and reach every symbol.
func TestAdvance_SymbolsCoverAlphabet(t *testing.T) {
	m := mustCompile(t, baudParams(100, 8))
	var s State
	rng := rand.New(rand.NewSource(5))
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		_, err := Advance(&s, m, 0.01, rng)
		require.NoError(t, err)
		require.GreaterOrEqual(t, s.Symbol, 0)
		require.Less(t, s.Symbol, 8)
		seen[s.Symbol] = true
	}
	assert.Len(t, seen, 8)
}

func TestClampDelta(t *testing.T) {
	assert.Equal(t, 0.05, ClampDelta(0.05, DefaultMaxDelta))
	assert.Equal(t, DefaultMaxDelta, ClampDelta(12.5, DefaultMaxDelta))
	assert.Equal(t, 0.0, ClampDelta(-1, DefaultMaxDelta))
	assert.Equal(t, 0.0, ClampDelta(math.NaN(), DefaultMaxDelta))
	assert.Equal(t, DefaultMaxDelta, ClampDelta(math.Inf(1), DefaultMaxDelta))
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}
