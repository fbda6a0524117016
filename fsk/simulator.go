// SPDX-License-Identifier: MIT
// Package: fsklab/fsk
//
// simulator.go — one session: state, window and random source behind Tick.
//
// Contract:
//   • Tick(dt, params) is the only mutating entry point besides Reset.
//   • A tick either fully succeeds or returns an error with State, Window and
//     the resident params exactly as before (compute first, commit last).
//   • params are compiled once per distinct value and cached.
//   • Single writer: a Simulator is not safe for concurrent use. Independent
//     sessions use independent Simulators.

package fsk

import (
	"math/rand"
)

// Simulator drives the scheduler, synthesizer and window of one session.
type Simulator struct {
	cfg    config
	rng    *rand.Rand
	state  State
	window *Window

	params ModulationParams
	mod    Modulation
	// initial is cfg.params compiled by New, restored by Reset.
	initial Modulation
	// last describes the newest appended sample.
	last TickResult
}

// New creates a session at time 0 with symbol 0 and phase 0.
// Returns an error wrapping ErrInvalidParameter when WithParams supplied
// parameters Compile rejects.
func New(opts ...Option) (*Simulator, error) {
	cfg := newConfig(opts...)
	mod, err := Compile(cfg.params)
	if err != nil {
		return nil, err
	}

	return &Simulator{
		cfg:    cfg,
		rng:    rngFrom(cfg),
		window: NewWindow(),
		params:  cfg.params,
		mod:     mod,
		initial: mod,
	}, nil
}

// Tick advances the session by dt seconds under p and appends one sample to
// both window sequences, then prunes samples older than the retention.
//
// dt is expected to be clamped by the driver (ClampDelta). Once the window
// holds a sample, a dt that does not move the clock (zero, or too small to
// change Time) appends nothing and draws nothing: p becomes the resident
// params and the newest sample is reported with Draws 0.
//
// Errors: ErrInvalidParameter for rejected params or a negative / non-finite dt.
func (s *Simulator) Tick(dt float64, p ModulationParams) (TickResult, error) {
	mod, err := s.compile(p)
	if err != nil {
		return TickResult{}, err
	}
	if err = validateDelta(MethodTick, dt); err != nil {
		return TickResult{}, err
	}

	next := s.state
	next.Time += dt
	if s.window.Len() > 0 && !(next.Time > s.state.Time) {
		s.params, s.mod = p, mod
		res := s.last
		res.Draws = 0

		return res, nil
	}
	// A smaller alphabet may leave the held symbol out of range until the next
	// draw; fold it back so the symbol stays in [0, M-1].
	next.Symbol %= mod.Order()

	draws, err := Advance(&next, mod, dt, s.rng)
	if err != nil {
		return TickResult{}, err
	}
	pt, err := Synthesize(next.Time, next.Symbol, mod, s.state.Phase, dt, s.rng)
	if err != nil {
		return TickResult{}, err
	}
	next.Phase = pt.Carry

	if err = s.window.Append(next.Time, pt.Value, next.Symbol); err != nil {
		return TickResult{}, err
	}
	s.window.Prune(s.cfg.retention)

	s.state = next
	s.params, s.mod = p, mod
	s.last = TickResult{
		Time:      next.Time,
		Symbol:    next.Symbol,
		Value:     pt.Value,
		Frequency: pt.Frequency,
		Draws:     draws,
	}

	return s.last, nil
}

// Step is Tick with the resident params.
func (s *Simulator) Step(dt float64) (TickResult, error) {
	return s.Tick(dt, s.params)
}

// SetParams validates p and makes it the resident params without ticking.
func (s *Simulator) SetParams(p ModulationParams) error {
	mod, err := s.compile(p)
	if err != nil {
		return err
	}
	s.params, s.mod = p, mod

	return nil
}

// compile returns the cached modulation when p is unchanged.
func (s *Simulator) compile(p ModulationParams) (Modulation, error) {
	if p == s.params {
		return s.mod, nil
	}

	return Compile(p)
}

// Params returns a copy of the resident params.
func (s *Simulator) Params() ModulationParams { return s.params }

// Modulation returns the compiled form of the resident params.
func (s *Simulator) Modulation() Modulation { return s.mod }

// State returns a copy of the current simulation state.
func (s *Simulator) State() State { return s.state }

// Retention returns the window duration in seconds.
func (s *Simulator) Retention() float64 { return s.cfg.retention }

// Signal returns the retained signal samples. See Window.Signal for the
// sharing rules.
func (s *Simulator) Signal() []Sample { return s.window.Signal() }

// Symbols returns the retained symbol samples, index-aligned with Signal.
func (s *Simulator) Symbols() []Sample { return s.window.Symbols() }

// Snapshot copies both window sequences.
func (s *Simulator) Snapshot() Frame { return s.window.Snapshot() }

// Reset discards state and window and restores the initial params. A seeded
// simulator replays the same random stream after Reset; one built WithRand
// keeps drawing from the supplied source.
func (s *Simulator) Reset() {
	s.state = State{}
	s.window.Reset()
	s.rng = rngFrom(s.cfg)
	s.params = s.cfg.params
	s.mod = s.initial
	s.last = TickResult{}
}
