package fsk

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"pgregory.net/rapid"
)

// TestSynthesize_NoiseOffIsExact: noise level 0 ⇒ value == A·sin(phase) bit for bit.
func TestSynthesize_NoiseOffIsExact(t *testing.T) {
	t.Parallel()

	for _, continuous := range []bool{true, false} {
		p := DefaultParams()
		p.Amplitude = 1.7
		p.ContinuousPhase = continuous
		m := mustCompile(t, p)

		prev := 0.0
		for i := 1; i <= 100; i++ {
			tm := float64(i) / 60
			pt, err := Synthesize(tm, i%2, m, prev, 1.0/60, nil)
			require.NoError(t, err)
			assert.Equal(t, 1.7*math.Sin(pt.Phase), pt.Value)
			prev = pt.Carry
		}
	}
}

// TestSynthesize_ContinuousIncrement: consecutive phases differ by exactly
// mod(2π·f·dt, 2π), including across a symbol change.
func TestSynthesize_ContinuousIncrement(t *testing.T) {
	t.Parallel()

	m := mustCompile(t, DefaultParams()) // mark 5, space 2
	const dt = 1.0 / 60
	symbols := []int{0, 0, 0, 1, 1, 0, 1, 1, 1, 0}

	prev := 0.0
	for i, sym := range symbols {
		f := m.Plan().Frequency(sym)
		pt, err := Synthesize(float64(i+1)*dt, sym, m, prev, dt, nil)
		require.NoError(t, err)

		want := math.Mod(prev+2*math.Pi*f*dt, 2*math.Pi)
		assert.Equal(t, want, pt.Phase, "tick %d", i)
		assert.Equal(t, pt.Phase, pt.Carry)
		assert.Equal(t, f, pt.Frequency)
		prev = pt.Carry
	}
}

// TestSynthesize_ContinuousNoJump: at a symbol change the waveform moves no more
// than one step of the new frequency allows; only the slope changes.
func TestSynthesize_ContinuousNoJump(t *testing.T) {
	p := DefaultParams()
	p.MarkFreq, p.SpaceFreq = 9, 1
	m := mustCompile(t, p)
	const dt = 1.0 / 240

	prev := 0.0
	var last float64
	for i := 0; i < 480; i++ {
		sym := (i / 37) % 2
		pt, err := Synthesize(float64(i+1)*dt, sym, m, prev, dt, nil)
		require.NoError(t, err)
		if i > 0 {
			bound := 2 * math.Pi * 9 * dt * p.Amplitude
			assert.LessOrEqual(t, math.Abs(pt.Value-last), bound+1e-12, "tick %d", i)
		}
		last, prev = pt.Value, pt.Carry
	}
}

// TestSynthesize_DiscontinuousDependsOnTimeOnly: same time, different
// frequencies ⇒ different phases; prevPhase is ignored and the carry is 0.
func TestSynthesize_DiscontinuousDependsOnTimeOnly(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	p.ContinuousPhase = false
	m := mustCompile(t, p)

	space, err := Synthesize(0.3, 0, m, 1.234, 0.01, nil)
	require.NoError(t, err)
	mark, err := Synthesize(0.3, 1, m, 1.234, 0.01, nil)
	require.NoError(t, err)

	assert.NotEqual(t, space.Phase, mark.Phase)
	assert.Equal(t, phaseAt(2, 0.3), space.Phase)
	assert.Equal(t, phaseAt(5, 0.3), mark.Phase)
	assert.Equal(t, 0.0, space.Carry)
	assert.Equal(t, 0.0, mark.Carry)

	other, err := Synthesize(0.3, 0, m, 4.0, 0.02, nil)
	require.NoError(t, err)
	assert.Equal(t, space.Phase, other.Phase)
}

// phaseAt is the discontinuous-mode phase for frequency f at time tm.
func phaseAt(f, tm float64) float64 {
	return math.Mod(twoPi*f*tm, twoPi)
}

// TestSynthesize_ModesDiffer: the same inputs give different phases in the two modes.
func TestSynthesize_ModesDiffer(t *testing.T) {
	cont := DefaultParams()
	disc := cont
	disc.ContinuousPhase = false

	a, err := Synthesize(0.3, 1, mustCompile(t, cont), 0.5, 0.01, nil)
	require.NoError(t, err)
	b, err := Synthesize(0.3, 1, mustCompile(t, disc), 0.5, 0.01, nil)
	require.NoError(t, err)
	assert.NotEqual(t, a.Phase, b.Phase)
}

// TestSynthesize_FiniteProperty: valid params and inputs never give NaN/Inf.
func TestSynthesize_FiniteProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		p := ModulationParams{
			Order:           rapid.SampledFrom([]int{2, 4, 8, 16}).Draw(rt, "order"),
			MarkFreq:        rapid.Float64Range(0, 20).Draw(rt, "mark"),
			SpaceFreq:       rapid.Float64Range(0, 20).Draw(rt, "space"),
			BaseFreq:        rapid.Float64Range(0, 10).Draw(rt, "base"),
			FreqSpacing:     rapid.Float64Range(0, 5).Draw(rt, "spacing"),
			BaudRate:        rapid.Float64Range(0.2, 5).Draw(rt, "baud"),
			Amplitude:       rapid.Float64Range(0, 2).Draw(rt, "amplitude"),
			NoiseLevel:      rapid.Float64Range(0, 1).Draw(rt, "noise"),
			ContinuousPhase: rapid.Bool().Draw(rt, "continuous"),
		}
		m, err := Compile(p)
		require.NoError(rt, err)

		rng := rand.New(rand.NewSource(rapid.Int64().Draw(rt, "seed")))
		sym := rapid.IntRange(0, p.Order-1).Draw(rt, "symbol")
		tm := rapid.Float64Range(0, 1e4).Draw(rt, "time")
		dt := rapid.Float64Range(0, DefaultMaxDelta).Draw(rt, "dt")
		prev := rapid.Float64Range(0, 2*math.Pi).Draw(rt, "prev")

		pt, err := Synthesize(tm, sym, m, prev, dt, rng)
		require.NoError(rt, err)
		assert.False(rt, math.IsNaN(pt.Value) || math.IsInf(pt.Value, 0), "value %v", pt.Value)
		assert.GreaterOrEqual(rt, pt.Phase, 0.0)
		assert.Less(rt, pt.Phase, 2*math.Pi)
	})
}

// TestSynthesize_Rejects covers the input checks that Compile cannot make.
func TestSynthesize_Rejects(t *testing.T) {
	m := mustCompile(t, DefaultParams())

	_, err := Synthesize(1, 2, m, 0, 0.01, nil)
	assert.ErrorIs(t, err, ErrInvalidParameter, "symbol above M-1")
	_, err = Synthesize(1, -1, m, 0, 0.01, nil)
	assert.ErrorIs(t, err, ErrInvalidParameter, "negative symbol")
	_, err = Synthesize(1, 0, m, 0, -0.01, nil)
	assert.ErrorIs(t, err, ErrInvalidParameter, "negative dt")
	_, err = Synthesize(math.NaN(), 0, m, 0, 0.01, nil)
	assert.ErrorIs(t, err, ErrInvalidParameter, "NaN time")
}

// TestGaussian_Moments checks the Box–Muller output is standard normal.
func TestGaussian_Moments(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	xs := make([]float64, 50000)
	for i := range xs {
		xs[i] = Gaussian(rng)
	}
	mean, std := stat.MeanStdDev(xs, nil)
	assert.InDelta(t, 0, mean, 0.03)
	assert.InDelta(t, 1, std, 0.03)
}

// zeroFirst yields zeros before delegating, to exercise the (0,1) rejection.
type zeroFirst struct {
	zeros int
	rand.Source
}

func (z *zeroFirst) Int63() int64 {
	if z.zeros > 0 {
		z.zeros--
		return 0
	}

	return z.Source.Int63()
}

func TestGaussian_RejectsZeroDraw(t *testing.T) {
	rng := rand.New(&zeroFirst{zeros: 3, Source: rand.NewSource(1)})
	x := Gaussian(rng)
	assert.False(t, math.IsInf(x, 0) || math.IsNaN(x))
}

func TestWrapPhase(t *testing.T) {
	assert.Equal(t, 0.0, wrapPhase(0))
	assert.Equal(t, 0.0, wrapPhase(2*math.Pi))
	assert.InDelta(t, math.Pi, wrapPhase(3*math.Pi), 1e-12)
	assert.InDelta(t, 1.5*math.Pi, wrapPhase(-0.5*math.Pi), 1e-12)
	assert.Less(t, wrapPhase(-1e-300), 2*math.Pi)
}
