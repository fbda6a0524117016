// SPDX-License-Identifier: MIT
// Package: fsklab/fsk
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • retention = DefaultRetention (5 s)
//   • params    = DefaultParams()
//   • rng       = nil, resolved by rngFrom (seed if given, wall clock otherwise)

package fsk

import (
	"math/rand"
	"time"
)

// config aggregates every knob New understands. Passed by value.
type config struct {
	rng       *rand.Rand
	seed      int64
	seeded    bool
	retention float64
	params    ModulationParams
}

// newConfig builds a config with defaults and applies opts in order
// (later options override earlier ones).
// Complexity: O(len(opts)) time, O(1) space.
func newConfig(opts ...Option) config {
	cfg := config{
		retention: DefaultRetention,
		params:    DefaultParams(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFrom returns cfg.rng when supplied, a source seeded with cfg.seed when
// WithSeed was used, and a wall-clock seeded source otherwise.
func rngFrom(cfg config) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}
	if cfg.seeded {
		return rand.New(rand.NewSource(cfg.seed))
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
