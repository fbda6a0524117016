// SPDX-License-Identifier: MIT
// Package: fsklab/fsk
//
// window.go — rolling time window of index-aligned signal/symbol samples.
//
// Invariants:
//   • Both sequences have the same length and sample i shares one timestamp.
//   • Timestamps are strictly increasing.
//   • Prune removes a contiguous prefix only; nothing with
//     time >= newest-retention is ever dropped. There is no count cap.
//
// Storage: live samples are signal[head:] / symbols[head:]. Prune finds the
// cut with a binary search and advances head; the arrays are compacted once the
// dead prefix is at least compactThreshold samples and at least half of the
// storage, so the amortized cost per tick is O(log n + k).

package fsk

import (
	"slices"
	"sort"
)

// Window holds the retained signal and symbol samples of one session.
// It is not safe for concurrent use.
type Window struct {
	signal  []Sample
	symbols []Sample
	head    int
}

// NewWindow returns an empty window.
func NewWindow() *Window {
	return &Window{}
}

// Len returns the number of retained samples in each sequence.
func (w *Window) Len() int {
	return len(w.signal) - w.head
}

// Newest returns the timestamp of the newest sample and false when empty.
func (w *Window) Newest() (float64, bool) {
	if w.Len() == 0 {
		return 0, false
	}

	return w.signal[len(w.signal)-1].Time, true
}

// Oldest returns the timestamp of the oldest retained sample and false when empty.
func (w *Window) Oldest() (float64, bool) {
	if w.Len() == 0 {
		return 0, false
	}

	return w.signal[w.head].Time, true
}

// Append pushes one sample onto both sequences.
// Returns ErrOutOfOrder when t is not strictly after the newest sample.
func (w *Window) Append(t, signal float64, symbol int) error {
	if newest, ok := w.Newest(); ok && !(t > newest) {
		return fskErrorf(MethodAppend, ErrOutOfOrder, "time %v is not after %v", t, newest)
	}
	w.signal = append(w.signal, Sample{Time: t, Value: signal})
	w.symbols = append(w.symbols, Sample{Time: t, Value: float64(symbol)})

	return nil
}

// Prune drops every sample with time < newest-retention and returns how many
// were removed.
func (w *Window) Prune(retention float64) int {
	newest, ok := w.Newest()
	if !ok {
		return 0
	}
	cutoff := newest - retention

	live := w.signal[w.head:]
	idx := sort.Search(len(live), func(i int) bool {
		return live[i].Time >= cutoff
	})
	if idx == 0 {
		return 0
	}
	w.head += idx
	w.compact()

	return idx
}

// compact moves the live samples to the front once the dead prefix dominates.
func (w *Window) compact() {
	if w.head < compactThreshold || w.head*2 < len(w.signal) {
		return
	}
	n := copy(w.signal, w.signal[w.head:])
	copy(w.symbols, w.symbols[w.head:])
	clear(w.signal[n:])
	clear(w.symbols[n:])
	w.signal = w.signal[:n]
	w.symbols = w.symbols[:n]
	w.head = 0
}

// Signal returns the retained signal samples, oldest first.
// The slice shares storage with the window: treat it as read-only and do not
// keep it past the next Append or Prune. Use Snapshot for a stable copy.
func (w *Window) Signal() []Sample {
	return w.signal[w.head:len(w.signal):len(w.signal)]
}

// Symbols returns the retained symbol samples, index-aligned with Signal.
// Same sharing rules as Signal.
func (w *Window) Symbols() []Sample {
	return w.symbols[w.head:len(w.symbols):len(w.symbols)]
}

// Snapshot copies both sequences.
func (w *Window) Snapshot() Frame {
	return Frame{
		Signal:  slices.Clone(w.Signal()),
		Symbols: slices.Clone(w.Symbols()),
	}
}

// Reset empties the window and releases its storage.
func (w *Window) Reset() {
	w.signal = nil
	w.symbols = nil
	w.head = 0
}
