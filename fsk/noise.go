package fsk

import (
	"math"
	"math/rand"
)

// Gaussian returns a standard normal variate built with the Box–Muller
// transform from two independent uniform draws in (0,1). A zero draw is
// rejected and redrawn so the logarithm stays finite.
func Gaussian(rng *rand.Rand) float64 {
	u := openUnit(rng)
	v := openUnit(rng)

	return math.Sqrt(-2*math.Log(u)) * math.Cos(twoPi*v)
}

// openUnit draws from (0,1). rand.Float64 already excludes 1.
func openUnit(rng *rand.Rand) float64 {
	x := rng.Float64()
	for x == 0 {
		x = rng.Float64()
	}

	return x
}
