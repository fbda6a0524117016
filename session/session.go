// SPDX-License-Identifier: MIT
// Package: fsklab/session

package session

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/katalvlaran/fsklab/fsk"
)

// Session serializes access to one Simulator.
type Session struct {
	id     uuid.UUID
	mu     sync.Mutex
	sim    *fsk.Simulator
	logger *log.Logger
}

// ID returns the registry key of s.
func (s *Session) ID() uuid.UUID { return s.id }

// Tick forwards to fsk.Simulator.Tick. Rejected ticks are logged at warn level.
func (s *Session) Tick(dt float64, p fsk.ModulationParams) (fsk.TickResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.sim.Tick(dt, p)
	if err != nil {
		s.logger.Warn("tick rejected", "dt", dt, "err", err)
	}

	return res, err
}

// Snapshot copies the retained window.
func (s *Session) Snapshot() fsk.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sim.Snapshot()
}

// State returns a copy of the simulation state.
func (s *Session) State() fsk.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sim.State()
}

// Params returns a copy of the resident params.
func (s *Session) Params() fsk.ModulationParams {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sim.Params()
}

// Reset restarts the simulation from time 0.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sim.Reset()
	s.logger.Debug("session reset")
}
