// Package fsk defines the shared constants used by the simulation core so that
// defaults and error prefixes stay consistent across files.
package fsk

import "math"

//-----------------------------------------------------------------------------
// Method name constants
//   used to prefix errors with the operation that rejected the input.
//-----------------------------------------------------------------------------

const (
	// MethodCompile is the canonical name for parameter validation.
	MethodCompile = "Compile"
	// MethodAdvance is the canonical name for the symbol scheduler step.
	MethodAdvance = "Advance"
	// MethodSynthesize is the canonical name for sample synthesis.
	MethodSynthesize = "Synthesize"
	// MethodAppend is the canonical name for window appends.
	MethodAppend = "Append"
	// MethodTick is the canonical name for the simulator tick.
	MethodTick = "Tick"
)

//-----------------------------------------------------------------------------
// Modulation bounds
//-----------------------------------------------------------------------------

// MinOrder is the smallest alphabet size M. M=2 is binary FSK.
const MinOrder = 2

// BinaryOrder is the alphabet size handled by the mark/space plan.
const BinaryOrder = 2

// MarkSymbol is the binary symbol transmitted on the mark frequency.
// Every other binary symbol uses the space frequency.
const MarkSymbol = 1

//-----------------------------------------------------------------------------
// Window and clock defaults
//-----------------------------------------------------------------------------

// DefaultRetention is the trailing duration, in seconds, kept by the window.
const DefaultRetention = 5.0

// DefaultMaxDelta is the upper bound, in seconds, that drivers clamp a tick's
// dt to before handing it to the simulator.
const DefaultMaxDelta = 0.1

// compactThreshold is the minimum dead prefix, in samples, before the window
// moves its live samples back to the start of the backing arrays.
const compactThreshold = 64

// twoPi is one full carrier cycle in radians.
const twoPi = 2 * math.Pi
