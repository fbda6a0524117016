// SPDX-License-Identifier: MIT
// Package: fsklab/session
//
// manager.go — concurrent registry of simulation sessions.

package session

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/katalvlaran/fsklab/fsk"
)

// Option configures a Manager.
type Option func(*Manager)

// WithLogger routes Manager and Session logs to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("session: WithLogger(nil)")
	}

	return func(m *Manager) { m.logger = l }
}

// WithSimulatorOptions appends fsk options applied to every Create call
// before the per-call options.
func WithSimulatorOptions(opts ...fsk.Option) Option {
	return func(m *Manager) { m.simOpts = append(m.simOpts, opts...) }
}

// Manager is safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	logger   *log.Logger
	simOpts  []fsk.Option
}

// NewManager returns an empty registry. Without WithLogger logs are discarded.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		sessions: make(map[uuid.UUID]*Session),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Create builds a new Simulator from the manager options followed by opts and
// registers it under a fresh random id.
func (m *Manager) Create(opts ...fsk.Option) (*Session, error) {
	all := append(slices.Clone(m.simOpts), opts...)
	sim, err := fsk.New(all...)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	id := uuid.New()
	s := &Session{
		id:     id,
		sim:    sim,
		logger: m.logger.With("session", id.String()),
	}

	m.mu.Lock()
	m.sessions[id] = s
	n := len(m.sessions)
	m.mu.Unlock()

	m.logger.Debug("session created", "session", id.String(), "active", n)

	return s, nil
}

// Get returns the session registered under id.
func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("get %s: %w", id, ErrSessionNotFound)
	}

	return s, nil
}

// Remove unregisters id. Holders of the *Session may keep using it.
func (m *Manager) Remove(id uuid.UUID) error {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	n := len(m.sessions)
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("remove %s: %w", id, ErrSessionNotFound)
	}
	m.logger.Debug("session removed", "session", id.String(), "active", n)

	return nil
}

// Len reports the number of registered sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}

// IDs returns the registered ids in ascending byte order.
func (m *Manager) IDs() []uuid.UUID {
	m.mu.RLock()
	ids := make([]uuid.UUID, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	m.mu.RUnlock()

	slices.SortFunc(ids, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })

	return ids
}
