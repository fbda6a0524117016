// SPDX-License-Identifier: MIT
// Package: fsklab/fsk
//
// options.go — functional options for New.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and panic on meaningless inputs; the
//     simulator itself never panics.
//   • Determinism is explicit: seed via WithSeed or supply WithRand.

package fsk

import (
	"math/rand"
)

// Option customizes a Simulator before its first tick.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// WithRand supplies the random source used for symbol draws and noise.
// The simulator becomes its only user; do not share r across goroutines.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("fsk: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand from seed so runs are reproducible.
// Reset rewinds the stream to the same seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
		c.rng = nil
	}
}

// WithRetention sets the trailing window duration in seconds.
// Panics if seconds <= 0.
func WithRetention(seconds float64) Option {
	if !(seconds > 0) {
		panic("fsk: WithRetention(seconds<=0)")
	}
	return func(c *config) {
		c.retention = seconds
	}
}

// WithParams sets the parameters used before the first Tick and restored by
// Reset. Invalid params surface as an error from New.
func WithParams(p ModulationParams) Option {
	return func(c *config) {
		c.params = p
	}
}
