// SPDX-License-Identifier: MIT
// Package: fsklab/fsk
//
// errors.go — sentinel errors for the fsk package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers branch with errors.Is(err, ErrX); never compare strings.
//   • Context is attached with fskErrorf, which keeps the sentinel reachable via %w.
//   • Option constructors (WithX) panic on meaningless input; Compile, Tick,
//     Synthesize and the scheduler return errors and never panic.

package fsk

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter reports a modulation parameter or tick input outside its
// domain: baud rate <= 0, order M < 2, a negative frequency, amplitude or noise
// level, a symbol outside [0, M-1], or a negative / non-finite time step.
// A tick rejected with this error leaves the simulator untouched.
var ErrInvalidParameter = errors.New("fsk: invalid parameter")

// ErrOutOfOrder reports a window append whose timestamp is not strictly greater
// than the newest retained sample.
var ErrOutOfOrder = errors.New("fsk: sample time out of order")

// fskErrorf prefixes a formatted message with the method name and wraps the
// sentinel, producing "<Method>: <message>: <sentinel>".
func fskErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
